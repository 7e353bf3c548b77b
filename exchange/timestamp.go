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

package exchange

import (
	"fmt"
	"time"
)

// Timestamp is a point on the program's monotonic clock, measured in
// nanoseconds. It is unaffected by changes to the wall clock.
type Timestamp int64

// all timestamps are measured relative to this value. time.Since() uses the
// monotonic reading of origin.
var origin = time.Now()

// now returns the current Timestamp.
func now() Timestamp {
	return Timestamp(time.Since(origin))
}

// Sub returns the duration between two timestamps.
func (ts Timestamp) Sub(o Timestamp) time.Duration {
	return time.Duration(ts - o)
}

// After returns true if the timestamp is strictly later than o.
func (ts Timestamp) After(o Timestamp) bool {
	return ts > o
}

// Age returns the time that has elapsed since the timestamp.
func (ts Timestamp) Age() time.Duration {
	return now().Sub(ts)
}

func (ts Timestamp) String() string {
	return fmt.Sprintf("@%v", time.Duration(ts))
}
