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
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/frontpanel/assert"
)

// name used in assertion messages.
const resource = "exchange.Slot"

// Slot holds exactly one value of type D and arbitrates access to it between
// goroutines. See the package documentation for the rules that callbacks must
// follow.
//
// A Slot must be created with NewSlot() and must not be copied.
type Slot[D any] struct {
	// crit protects data, lastUpdate and state. any number of Read() calls may
	// hold crit at the same time but Write() holds it exclusively
	crit       sync.RWMutex
	data       D
	lastUpdate Timestamp
	state      State

	// notify is a separate lock and condition for WaitForUpdate(). it holds
	// its own copy of the most recent timestamp so that waiting goroutines
	// never touch crit.
	//
	// lock order is crit then notify.crit. waiting goroutines only ever take
	// notify.crit
	notify struct {
		crit  sync.Mutex
		cond  *sync.Cond
		stamp Timestamp
	}

	owners assert.Owners

	reads   atomic.Uint64
	writes  atomic.Uint64
	waits   atomic.Uint64
	blocked atomic.Uint64
}

// NewSlot is the preferred method of initialisation for the Slot type. The
// value in the slot is the zero value of D and the last update timestamp is
// the time of construction.
func NewSlot[D any]() *Slot[D] {
	s := &Slot[D]{
		lastUpdate: now(),
		state:      Unwritten,
	}
	s.notify.cond = sync.NewCond(&s.notify.crit)
	s.notify.stamp = s.lastUpdate
	return s
}

// LastUpdate returns the timestamp of the most recent Write(). If there has
// been no write then the timestamp is the time the Slot was created.
func (s *Slot[D]) LastUpdate() Timestamp {
	s.owners.Enter(resource)
	defer s.owners.Leave()

	s.crit.RLock()
	defer s.crit.RUnlock()
	return s.lastUpdate
}

// State returns Unwritten if there has never been a call to Write().
func (s *Slot[D]) State() State {
	s.owners.Enter(resource)
	defer s.owners.Leave()

	s.crit.RLock()
	defer s.crit.RUnlock()
	return s.state
}

// Read calls f exactly once with access to the value in the slot. Other calls
// to Read() may be running at the same time but no call to Write() will be.
//
// The returned timestamp is that of the value seen by f.
//
// The function must not modify the value, must not keep the pointer after it
// returns, and must not call any other method of the Slot.
func (s *Slot[D]) Read(f func(*D)) Timestamp {
	s.owners.Enter(resource)
	defer s.owners.Leave()

	s.crit.RLock()
	defer s.crit.RUnlock()

	s.reads.Add(1)
	f(&s.data)
	return s.lastUpdate
}

// Snapshot returns a copy of the value in the slot and its timestamp. Note
// that the copy is shallow.
func (s *Slot[D]) Snapshot() (D, Timestamp) {
	var d D
	ts := s.Read(func(v *D) {
		d = *v
	})
	return d, ts
}

// Write calls f exactly once with exclusive access to the value in the slot.
// When f returns the last update timestamp is advanced and every goroutine
// waiting in WaitForUpdate() is woken.
//
// Returns the new timestamp, which is always later than the timestamp of any
// previous Write().
//
// The function must not keep the pointer after it returns and must not call
// any other method of the Slot. It should return as quickly as possible
// because every other user of the Slot is stalled until it does.
func (s *Slot[D]) Write(f func(*D)) Timestamp {
	s.owners.Enter(resource)
	defer s.owners.Leave()

	s.crit.Lock()
	defer s.crit.Unlock()

	f(&s.data)

	// the monotonic clock can return the same value twice on platforms with a
	// coarse timer
	stamp := now()
	if stamp <= s.lastUpdate {
		stamp = s.lastUpdate + 1
	}
	s.lastUpdate = stamp
	s.state = Live
	s.writes.Add(1)

	s.notify.crit.Lock()
	s.notify.stamp = stamp
	s.notify.cond.Broadcast()
	s.notify.crit.Unlock()

	return stamp
}

// WaitForUpdate blocks until the last update timestamp is later than since.
// It returns immediately if that is already the case. The return value is the
// timestamp that ended the wait.
//
// Intermediate writes are not reported individually. If several writes occur
// before the waiting goroutine is scheduled, only the latest is seen.
//
// The wait cannot be cancelled. Use WaitForUpdateContext() if that is needed.
func (s *Slot[D]) WaitForUpdate(since Timestamp) Timestamp {
	s.owners.Outside(resource)
	s.waits.Add(1)

	s.notify.crit.Lock()
	defer s.notify.crit.Unlock()

	if s.notify.stamp <= since {
		s.blocked.Add(1)
	}

	// the condition is checked in a loop because a wake-up does not guarantee
	// that the predicate holds
	for s.notify.stamp <= since {
		s.notify.cond.Wait()
	}
	return s.notify.stamp
}

// WaitForUpdateContext is the same as WaitForUpdate() except that it returns
// early with the context's error if the context is cancelled or reaches its
// deadline. In that case the returned timestamp is the most recent timestamp
// at the time of returning, which will not be later than since.
func (s *Slot[D]) WaitForUpdateContext(ctx context.Context, since Timestamp) (Timestamp, error) {
	s.owners.Outside(resource)
	s.waits.Add(1)

	// the context callback must take the notify lock before broadcasting. if
	// it didn't, the broadcast could happen between the check of ctx.Err() and
	// the call to Wait() and would be lost
	stop := context.AfterFunc(ctx, func() {
		s.notify.crit.Lock()
		defer s.notify.crit.Unlock()
		s.notify.cond.Broadcast()
	})
	defer stop()

	s.notify.crit.Lock()
	defer s.notify.crit.Unlock()

	if s.notify.stamp <= since {
		s.blocked.Add(1)
	}

	for s.notify.stamp <= since {
		if err := ctx.Err(); err != nil {
			return s.notify.stamp, err
		}
		s.notify.cond.Wait()
	}
	return s.notify.stamp, nil
}

// WaitForUpdateTimeout is the same as WaitForUpdate() except that it gives up
// after the timeout. Returns false if the wait timed out.
func (s *Slot[D]) WaitForUpdateTimeout(since Timestamp, timeout time.Duration) (Timestamp, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ts, err := s.WaitForUpdateContext(ctx, since)
	return ts, err == nil
}

// Stats contains counts of how a Slot has been used.
type Stats struct {
	Reads  uint64
	Writes uint64

	// number of calls to any of the WaitForUpdate() functions and the number
	// of those calls that had to block
	Waits   uint64
	Blocked uint64
}

// Stats returns the usage counts for the Slot. Safe to call from inside a
// callback.
func (s *Slot[D]) Stats() Stats {
	return Stats{
		Reads:   s.reads.Load(),
		Writes:  s.writes.Load(),
		Waits:   s.waits.Load(),
		Blocked: s.blocked.Load(),
	}
}
