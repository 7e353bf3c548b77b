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
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/logger"
)

// MinInterval is the shortest interval used by Poll().
const MinInterval = time.Millisecond

// Callback is called with a copy of the value in the slot and the timestamp
// of that value. The value is a shallow copy.
type Callback[D any] func(*D, exchange.Timestamp)

// Poll checks the slot once every interval and calls fn if the slot has been
// written since the previous call. A slot that has never been written is not
// delivered. An interval shorter than MinInterval is treated as MinInterval.
//
// Returns the error of the context when the context ends.
func Poll[D any](ctx context.Context, slot *exchange.Slot[D], interval time.Duration, counts *Counts, fn Callback[D]) error {
	interval = max(interval, MinInterval)

	logger.Logf(logger.Allow, "monitor", "polling every %v", interval)
	defer logger.Logf(logger.Allow, "monitor", "polling ended (%s)", counts)

	lim := rate.NewLimiter(rate.Every(interval), 1)

	var seen exchange.Timestamp
	for {
		if err := lim.Wait(ctx); err != nil {
			// Wait() returns early if the deadline of the context is before
			// the next poll
			<-ctx.Done()
			return ctx.Err()
		}

		counts.check()
		if slot.State() == exchange.Unwritten || !slot.LastUpdate().After(seen) {
			continue // for loop
		}

		d, ts := slot.Snapshot()
		seen = ts
		counts.deliver()
		fn(&d, ts)
	}
}

// Follow waits for the slot to be written and calls fn with the new value. If
// the slot has already been written then the current value is delivered
// straight away.
//
// The limiter can be nil. If it is not nil then Follow() waits for the
// limiter before waiting for the next write.
//
// Returns the error of the context when the context ends.
func Follow[D any](ctx context.Context, slot *exchange.Slot[D], limit *rate.Limiter, counts *Counts, fn Callback[D]) error {
	logger.Log(logger.Allow, "monitor", "following")
	defer logger.Logf(logger.Allow, "monitor", "following ended (%s)", counts)

	// the timestamp must be taken before the state. if it were the other way
	// round a write between the two calls would never be delivered
	seen := slot.LastUpdate()
	if slot.State() == exchange.Live {
		seen = 0
	}

	for {
		if limit != nil {
			if err := limit.Wait(ctx); err != nil {
				<-ctx.Done()
				return ctx.Err()
			}
		}

		counts.check()
		if _, err := slot.WaitForUpdateContext(ctx, seen); err != nil {
			return err
		}

		d, ts := slot.Snapshot()
		seen = ts
		counts.deliver()
		fn(&d, ts)
	}
}
