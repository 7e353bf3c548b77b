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

package test

import (
	"testing"
	"time"
)

// ExpectWithin runs f in a new goroutine and fails the test if it has not
// returned before the duration has elapsed. Returns true if f completed in
// time.
//
// If f never returns then the goroutine is leaked. This is acceptable in a
// test that has already failed.
func ExpectWithin(t *testing.T, d time.Duration, f func(), tags ...any) bool {
	t.Helper()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()

	select {
	case <-done:
		return true
	case <-time.After(d):
		t.Errorf("%sfunction did not complete within %v", id(tags...), d)
		return false
	}
}

// ExpectBlocked fails the test if the done channel is closed (or receives a
// value) before the duration has elapsed. Returns true if the channel remained
// blocked for the whole of the duration.
func ExpectBlocked[T any](t *testing.T, d time.Duration, done <-chan T, tags ...any) bool {
	t.Helper()

	select {
	case <-done:
		t.Errorf("%sexpected to remain blocked for %v", id(tags...), d)
		return false
	case <-time.After(d):
		return true
	}
}
