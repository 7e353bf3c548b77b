// This file is part of Frontpanel.
//
// Frontpanel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frontpanel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frontpanel.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"fmt"
	"sync/atomic"
)

// Counts records the activity of a monitor loop. A nil Counts can be given
// to Poll() and Follow() if the counts are not required.
//
// The counts can be read while the loop is running.
type Counts struct {
	checks     atomic.Uint64
	deliveries atomic.Uint64
}

func (c *Counts) check() {
	if c != nil {
		c.checks.Add(1)
	}
}

func (c *Counts) deliver() {
	if c != nil {
		c.deliveries.Add(1)
	}
}

// Checks is the number of times the loop looked for a new value.
func (c *Counts) Checks() uint64 {
	if c == nil {
		return 0
	}
	return c.checks.Load()
}

// Deliveries is the number of times the callback was called.
func (c *Counts) Deliveries() uint64 {
	if c == nil {
		return 0
	}
	return c.deliveries.Load()
}

func (c *Counts) String() string {
	return fmt.Sprintf("checks=%d deliveries=%d", c.Checks(), c.Deliveries())
}
