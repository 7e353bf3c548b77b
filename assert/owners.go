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

package assert

import (
	"fmt"
	"sync"
)

// Owners records the goroutines that are currently inside a critical section.
// The zero value is ready to use.
type Owners struct {
	ids sync.Map // uint64 -> struct{}
}

// Enter should be called before the critical section's lock is acquired. It
// panics if the calling goroutine is already inside the section.
func (o *Owners) Enter(resource string) {
	if !Enabled {
		return
	}
	id := GetGoRoutineID()
	if _, loaded := o.ids.LoadOrStore(id, struct{}{}); loaded {
		panic(fmt.Sprintf("assert: re-entrant access to %s by goroutine %d", resource, id))
	}
}

// Leave should be called after the critical section's lock is released.
func (o *Owners) Leave() {
	if !Enabled {
		return
	}
	o.ids.Delete(GetGoRoutineID())
}

// Outside panics if the calling goroutine is inside the critical section.
// Used by operations that block without taking the section's lock but which
// would never return if called from inside it.
func (o *Owners) Outside(resource string) {
	if !Enabled {
		return
	}
	id := GetGoRoutineID()
	if _, ok := o.ids.Load(id); ok {
		panic(fmt.Sprintf("assert: blocking on %s from inside its critical section (goroutine %d)", resource, id))
	}
}
