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

package monitor_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/monitor"
	"github.com/jetsetilly/frontpanel/test"
)

type leds struct {
	lights uint8
}

// collector gathers the values delivered to a callback.
type collector struct {
	crit   sync.Mutex
	values []uint8
	stamps []exchange.Timestamp
	notify chan struct{}
}

func newCollector() *collector {
	return &collector{notify: make(chan struct{}, 100)}
}

func (c *collector) callback(d *leds, ts exchange.Timestamp) {
	c.crit.Lock()
	c.values = append(c.values, d.lights)
	c.stamps = append(c.stamps, ts)
	c.crit.Unlock()
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

func (c *collector) get() []uint8 {
	c.crit.Lock()
	defer c.crit.Unlock()
	return append([]uint8{}, c.values...)
}

// wait for the most recent delivery to be the value.
func (c *collector) waitFor(t *testing.T, v uint8) {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		vals := c.get()
		if len(vals) > 0 && vals[len(vals)-1] == v {
			return
		}
		select {
		case <-c.notify:
		case <-timeout:
			t.Fatalf("value %#x was never delivered (got %v)", v, vals)
		}
	}
}

func run(t *testing.T, f func(ctx context.Context) error) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- f(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			test.ExpectSuccess(t, errors.Is(err, context.Canceled))
		case <-time.After(time.Second):
			t.Errorf("monitor did not stop")
		}
	})
	return cancel
}

func TestPoll(t *testing.T) {
	slot := exchange.NewSlot[leds]()
	c := newCollector()
	var counts monitor.Counts

	run(t, func(ctx context.Context) error {
		return monitor.Poll(ctx, slot, time.Millisecond, &counts, c.callback)
	})

	// nothing is delivered while the slot is unwritten
	time.Sleep(20 * time.Millisecond)
	test.ExpectEquality(t, len(c.get()), 0)
	test.ExpectInequality(t, counts.Checks(), 0)

	slot.Write(func(d *leds) {
		d.lights = 0xff
	})
	c.waitFor(t, 0xff)

	// an unchanged slot is not delivered again
	n := counts.Deliveries()
	time.Sleep(20 * time.Millisecond)
	test.ExpectEquality(t, counts.Deliveries(), n)
	test.ExpectEquality(t, len(c.get()), int(n))

	slot.Write(func(d *leds) {
		d.lights = 0x0f
	})
	c.waitFor(t, 0x0f)
}

func TestPollDeadline(t *testing.T) {
	slot := exchange.NewSlot[leds]()

	// the deadline is sooner than the second poll
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := monitor.Poll(ctx, slot, time.Hour, nil, func(*leds, exchange.Timestamp) {})
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFollow(t *testing.T) {
	slot := exchange.NewSlot[leds]()
	c := newCollector()
	var counts monitor.Counts

	run(t, func(ctx context.Context) error {
		return monitor.Follow(ctx, slot, nil, &counts, c.callback)
	})

	for i := 1; i <= 3; i++ {
		slot.Write(func(d *leds) {
			d.lights = uint8(i)
		})
		c.waitFor(t, uint8(i))
	}

	// timestamps are delivered in order
	c.crit.Lock()
	for i := 1; i < len(c.stamps); i++ {
		test.ExpectSuccess(t, c.stamps[i].After(c.stamps[i-1]))
	}
	c.crit.Unlock()
}

func TestFollowLiveSlot(t *testing.T) {
	slot := exchange.NewSlot[leds]()
	slot.Write(func(d *leds) {
		d.lights = 0x42
	})

	c := newCollector()
	run(t, func(ctx context.Context) error {
		return monitor.Follow(ctx, slot, nil, nil, c.callback)
	})

	// the current value is delivered without another write
	c.waitFor(t, 0x42)
}

func TestFollowCoalesces(t *testing.T) {
	slot := exchange.NewSlot[leds]()
	c := newCollector()
	var counts monitor.Counts

	// at most one delivery every 50ms
	limit := rate.NewLimiter(rate.Every(50*time.Millisecond), 1)

	run(t, func(ctx context.Context) error {
		return monitor.Follow(ctx, slot, limit, &counts, c.callback)
	})

	for i := 1; i <= 100; i++ {
		slot.Write(func(d *leds) {
			d.lights = uint8(i)
		})
	}
	c.waitFor(t, 100)

	// far fewer deliveries than writes but the final value is always seen
	test.ExpectSuccess(t, counts.Deliveries() < 100)

	vals := c.get()
	for i := 1; i < len(vals); i++ {
		test.ExpectSuccess(t, vals[i] > vals[i-1])
	}
}

func TestNilCounts(t *testing.T) {
	var counts *monitor.Counts
	test.ExpectEquality(t, counts.Checks(), 0)
	test.ExpectEquality(t, counts.Deliveries(), 0)
	test.ExpectEquality(t, counts.String(), "checks=0 deliveries=0")
}

// an interval of zero does not result in a busy loop
func TestPollMinInterval(t *testing.T) {
	slot := exchange.NewSlot[leds]()
	c := newCollector()
	var counts monitor.Counts

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := monitor.Poll(ctx, slot, 0, &counts, c.callback)
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))

	// one check every MinInterval plus the initial burst. the tolerance allows
	// for a slow scheduler
	limit := uint64(50*time.Millisecond/monitor.MinInterval) + 1
	test.ExpectSuccess(t, counts.Checks() <= limit*2, counts.Checks())
	test.ExpectInequality(t, counts.Checks(), 0)
	test.ExpectEquality(t, len(c.get()), 0)
}
