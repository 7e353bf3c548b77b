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

package exchange_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/frontpanel/assert"
	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/test"
)

type status struct {
	lights  uint16
	x       int
	counter int
}

func TestUnwritten(t *testing.T) {
	before := time.Now()
	s := exchange.NewSlot[status]()

	test.ExpectEquality(t, s.State(), exchange.Unwritten)

	created := s.LastUpdate()
	test.ExpectEquality(t, s.LastUpdate(), created)
	test.ExpectSuccess(t, created.Age() <= time.Since(before))

	var seen status
	ts := s.Read(func(d *status) {
		seen = *d
	})
	test.ExpectEquality(t, ts, created)
	test.ExpectEquality(t, seen, status{})

	// the first write changes the state and the state never goes back
	w := s.Write(func(d *status) {})
	test.ExpectEquality(t, s.State(), exchange.Live)
	test.ExpectSuccess(t, w.After(created))
	s.Write(func(d *status) {})
	test.ExpectEquality(t, s.State(), exchange.Live)
}

func TestMutualExclusion(t *testing.T) {
	const writers = 64
	const increments = 100

	s := exchange.NewSlot[status]()

	var inside atomic.Int32
	var overlaps atomic.Int32

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				s.Write(func(d *status) {
					if inside.Add(1) > 1 {
						overlaps.Add(1)
					}
					d.counter++
					inside.Add(-1)
				})
			}
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, overlaps.Load(), int32(0))

	d, _ := s.Snapshot()
	test.ExpectEquality(t, d.counter, writers*increments)
	test.ExpectEquality(t, s.Stats().Writes, uint64(writers*increments))
}

func TestReaderWriterExclusion(t *testing.T) {
	const writers = 4
	const readers = 16
	const iterations = 500

	s := exchange.NewSlot[status]()

	var writing atomic.Int32
	var reading atomic.Int32
	var violations atomic.Int32

	var wg sync.WaitGroup

	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				s.Write(func(d *status) {
					writing.Add(1)
					if reading.Load() != 0 {
						violations.Add(1)
					}
					d.lights++
					writing.Add(-1)
				})
			}
		}()
	}

	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				s.Read(func(d *status) {
					reading.Add(1)
					if writing.Load() != 0 {
						violations.Add(1)
					}
					reading.Add(-1)
				})
			}
		}()
	}

	wg.Wait()
	test.ExpectEquality(t, violations.Load(), int32(0))
}

func TestReaderConcurrency(t *testing.T) {
	const readers = 8

	s := exchange.NewSlot[status]()

	// every reader waits inside its callback until all the other readers are
	// also inside their callbacks. this can only happen if the read lock is
	// shared
	var inside atomic.Int32
	var together atomic.Int32

	test.ExpectWithin(t, 5*time.Second, func() {
		var wg sync.WaitGroup
		for range readers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Read(func(d *status) {
					inside.Add(1)
					deadline := time.Now().Add(2 * time.Second)
					for inside.Load() < readers && time.Now().Before(deadline) {
						time.Sleep(time.Millisecond)
					}
					if inside.Load() == readers {
						together.Add(1)
					}
				})
			}()
		}
		wg.Wait()
	})

	test.ExpectEquality(t, together.Load(), int32(readers))
	test.ExpectEquality(t, s.Stats().Reads, uint64(readers))
}

func TestMonotonicity(t *testing.T) {
	s := exchange.NewSlot[status]()

	prev := s.LastUpdate()
	for i := range 1000 {
		ts := s.Write(func(d *status) {
			d.counter = i
		})
		if !test.ExpectSuccess(t, ts.After(prev), i) {
			break
		}
		test.ExpectEquality(t, s.LastUpdate(), ts)
		prev = ts
	}
}

func TestHappensBefore(t *testing.T) {
	s := exchange.NewSlot[status]()

	written := make(chan exchange.Timestamp)
	go func() {
		written <- s.Write(func(d *status) {
			d.x = 5
		})
	}()

	ws := <-written

	var x int
	rs := s.Read(func(d *status) {
		x = d.x
	})
	test.ExpectEquality(t, x, 5)
	test.ExpectSuccess(t, rs >= ws)
}

func TestWaitForUpdate(t *testing.T) {
	s := exchange.NewSlot[status]()

	// waiting on the current timestamp must block until there is a write
	current := s.LastUpdate()

	woken := make(chan exchange.Timestamp, 1)
	go func() {
		woken <- s.WaitForUpdate(current)
	}()

	test.ExpectBlocked(t, 50*time.Millisecond, woken)

	ws := s.Write(func(d *status) {
		d.lights = 1
	})

	select {
	case ts := <-woken:
		test.ExpectEquality(t, ts, ws)
	case <-time.After(5 * time.Second):
		t.Fatalf("waiting goroutine was not woken by write")
	}

	// waiting on an older timestamp returns immediately
	test.ExpectWithin(t, time.Second, func() {
		test.ExpectEquality(t, s.WaitForUpdate(current), ws)
	})

	// and waiting on the newest timestamp blocks again
	again := make(chan exchange.Timestamp, 1)
	go func() {
		again <- s.WaitForUpdate(ws)
	}()
	test.ExpectBlocked(t, 50*time.Millisecond, again)
	s.Write(func(d *status) {})
	test.ExpectWithin(t, 5*time.Second, func() {
		<-again
	})
}

func TestWaitBeforeFirstWrite(t *testing.T) {
	s := exchange.NewSlot[status]()
	test.ExpectEquality(t, s.State(), exchange.Unwritten)

	woken := make(chan exchange.Timestamp, 1)
	go func() {
		woken <- s.WaitForUpdate(s.LastUpdate())
	}()
	test.ExpectBlocked(t, 50*time.Millisecond, woken)

	s.Write(func(d *status) {})
	test.ExpectWithin(t, 5*time.Second, func() {
		<-woken
	})
	test.ExpectEquality(t, s.Stats().Blocked, uint64(1))
}

func TestWaitManyWaiters(t *testing.T) {
	const waiters = 16

	s := exchange.NewSlot[status]()
	since := s.LastUpdate()

	var ready sync.WaitGroup
	var done sync.WaitGroup
	for range waiters {
		ready.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			ready.Done()
			s.WaitForUpdate(since)
		}()
	}
	ready.Wait()

	s.Write(func(d *status) {})

	test.ExpectWithin(t, 5*time.Second, func() {
		done.Wait()
	})
}

func TestWaitCoalesces(t *testing.T) {
	s := exchange.NewSlot[status]()
	since := s.LastUpdate()

	var last exchange.Timestamp
	for i := range 10 {
		last = s.Write(func(d *status) {
			d.counter = i
		})
	}

	// a slow consumer sees only the latest write
	ts := s.WaitForUpdate(since)
	test.ExpectEquality(t, ts, last)

	d, rs := s.Snapshot()
	test.ExpectEquality(t, rs, last)
	test.ExpectEquality(t, d.counter, 9)
}

func TestWaitDoesNotBlockWriter(t *testing.T) {
	s := exchange.NewSlot[status]()

	for range 4 {
		go s.WaitForUpdate(s.LastUpdate() + exchange.Timestamp(time.Hour))
	}

	test.ExpectWithin(t, time.Second, func() {
		for range 100 {
			s.Write(func(d *status) {})
		}
	})
}

func TestWaitForUpdateContext(t *testing.T) {
	s := exchange.NewSlot[status]()
	since := s.LastUpdate()

	ctx, cancel := context.WithCancel(context.Background())

	type result struct {
		ts  exchange.Timestamp
		err error
	}
	res := make(chan result, 1)
	go func() {
		ts, err := s.WaitForUpdateContext(ctx, since)
		res <- result{ts: ts, err: err}
	}()

	test.ExpectBlocked(t, 50*time.Millisecond, res)
	cancel()

	select {
	case r := <-res:
		test.ExpectSuccess(t, errors.Is(r.err, context.Canceled))
		test.ExpectSuccess(t, !r.ts.After(since))
	case <-time.After(5 * time.Second):
		t.Fatalf("cancelled wait did not return")
	}

	// a write ends the wait without error
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	go func() {
		ts, err := s.WaitForUpdateContext(ctx, since)
		res <- result{ts: ts, err: err}
	}()
	ws := s.Write(func(d *status) {})

	select {
	case r := <-res:
		test.ExpectSuccess(t, r.err)
		test.ExpectEquality(t, r.ts, ws)
	case <-time.After(5 * time.Second):
		t.Fatalf("wait was not ended by write")
	}
}

func TestWaitForUpdateTimeout(t *testing.T) {
	s := exchange.NewSlot[status]()
	since := s.LastUpdate()

	ts, ok := s.WaitForUpdateTimeout(since, 20*time.Millisecond)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, ts, since)

	ws := s.Write(func(d *status) {})
	ts, ok = s.WaitForUpdateTimeout(since, time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ts, ws)
}

// a consumer polling LastUpdate() sees the write and reads the new value.
func TestPollingScenario(t *testing.T) {
	s := exchange.NewSlot[status]()
	t0 := s.LastUpdate()

	go s.Write(func(d *status) {
		d.lights = 0xff
	})

	test.ExpectWithin(t, 5*time.Second, func() {
		for !s.LastUpdate().After(t0) {
			time.Sleep(time.Millisecond)
		}
	})

	var lights uint16
	s.Read(func(d *status) {
		lights = d.lights
	})
	test.ExpectEquality(t, lights, uint16(0xff))
}

func recovered(f func()) (r any) {
	defer func() {
		r = recover()
	}()
	f()
	return nil
}

func TestReentrancy(t *testing.T) {
	if !assert.Enabled {
		t.Skip("re-entrancy is only detected with the assertions build tag")
	}

	s := exchange.NewSlot[status]()

	r := recovered(func() {
		s.Read(func(d *status) {
			s.Read(func(d *status) {})
		})
	})
	test.ExpectInequality(t, r, nil)

	r = recovered(func() {
		s.Write(func(d *status) {
			s.LastUpdate()
		})
	})
	test.ExpectInequality(t, r, nil)

	r = recovered(func() {
		s.Write(func(d *status) {
			s.WaitForUpdate(0)
		})
	})
	test.ExpectInequality(t, r, nil)

	// the slot is still usable after the panics
	test.ExpectWithin(t, time.Second, func() {
		s.Write(func(d *status) {
			d.counter = 1
		})
		d, _ := s.Snapshot()
		test.ExpectEquality(t, d.counter, 1)
	})
}
