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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/logger"
	"github.com/jetsetilly/frontpanel/monitor"
	"github.com/jetsetilly/frontpanel/panel"
)

// interval used by the polling readers.
const pollInterval = 100 * time.Microsecond

// Params for a performance check.
type Params struct {
	Duration time.Duration
	Readers  int
	Writers  int
}

// Result of a performance check.
type Result struct {
	Params

	// the slot statistics at the end of the run
	Stats exchange.Stats

	// deliveries to the polling readers and to the following readers
	Polled   uint64
	Followed uint64

	// number of readers of each kind
	Pollers   int
	Followers int
}

// WritesPerSecond is the rate at which the writers managed to write.
func (r Result) WritesPerSecond() float64 {
	return float64(r.Stats.Writes) / r.Duration.Seconds()
}

// ReadsPerSecond is the rate of all reads of the slot.
func (r Result) ReadsPerSecond() float64 {
	return float64(r.Stats.Reads) / r.Duration.Seconds()
}

// Coalescing is the average number of writes for each delivery to a
// following reader. A value of one means that the followers saw every write.
func (r Result) Coalescing() float64 {
	if r.Followers == 0 || r.Followed == 0 {
		return 0
	}
	perFollower := float64(r.Followed) / float64(r.Followers)
	return float64(r.Stats.Writes) / perFollower
}

func (r Result) String() string {
	return fmt.Sprintf("%d writes (%.0f/s) %d reads (%.0f/s) %d waits (%d blocked) coalescing %.1f:1",
		r.Stats.Writes, r.WritesPerSecond(), r.Stats.Reads, r.ReadsPerSecond(),
		r.Stats.Waits, r.Stats.Blocked, r.Coalescing())
}

// Measure runs the writers and readers against a single slot for the duration
// in the parameters and returns the result.
func Measure(ctx context.Context, params Params) (Result, error) {
	if params.Duration <= 0 {
		return Result{}, fmt.Errorf("performance: duration must be positive")
	}
	if params.Writers < 1 {
		return Result{}, fmt.Errorf("performance: at least one writer is required")
	}
	if params.Readers < 0 {
		return Result{}, fmt.Errorf("performance: number of readers cannot be negative")
	}

	res := Result{
		Params:    params,
		Followers: params.Readers / 2,
	}
	res.Pollers = params.Readers - res.Followers

	slot := exchange.NewSlot[panel.Lights]()

	ctx, cancel := context.WithTimeout(ctx, params.Duration)
	defer cancel()

	var wg sync.WaitGroup

	for range params.Writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				slot.Write(func(l *panel.Lights) {
					l.PC = (l.PC + 1) & panel.WordMask
					l.AC = (l.AC + 3) & panel.WordMask
					l.Run = true
				})
			}
		}()
	}

	discard := func(*panel.Lights, exchange.Timestamp) {}

	polled := make([]monitor.Counts, res.Pollers)
	for i := range polled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = monitor.Poll(ctx, slot, pollInterval, &polled[i], discard)
		}()
	}

	followed := make([]monitor.Counts, res.Followers)
	for i := range followed {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = monitor.Follow(ctx, slot, nil, &followed[i], discard)
		}()
	}

	wg.Wait()

	// the parent context ending early is an error but the end of the
	// measurement period is not
	if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return res, fmt.Errorf("performance: %w", err)
	}

	res.Stats = slot.Stats()
	for i := range polled {
		res.Polled += polled[i].Deliveries()
	}
	for i := range followed {
		res.Followed += followed[i].Deliveries()
	}

	return res, nil
}

// Check the performance of an exchange.Slot under contention. The result is
// written to output.
//
// Profiling information is created as defined by the Profile argument.
func Check(ctx context.Context, output io.Writer, profile Profile, params Params) error {
	logger.Logf(logger.Allow, "performance", "%d writers, %d readers for %v", params.Writers, params.Readers, params.Duration)

	var res Result
	err := RunProfiler(profile, "performance", func() error {
		var err error
		res, err = Measure(ctx, params)
		return err
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(output, fmt.Sprintf("%s\n", res))
	return err
}
