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

// Package exchange provides the Slot type, a container for exactly one value
// that is shared between the goroutine running an emulation and the goroutines
// that present or drive its state. The usual example is the lights and
// switches of a front panel.
//
// The value is never handed out by reference except inside a callback. For
// example, a producer updating the accumulator lamps:
//
//	lights.Write(func(l *panel.Lights) {
//		l.AC = ac
//	})
//
// And a consumer that wants to redraw only when something has changed:
//
//	seen := lights.LastUpdate()
//	for {
//		seen = lights.WaitForUpdate(seen)
//		lights.Read(func(l *panel.Lights) {
//			draw(l)
//		})
//	}
//
// Callbacks must be short. A Write callback holds the exclusive lock for its
// entire duration and so stalls every reader and writer. Callbacks must not
// call any method of the same Slot and must not keep the pointer they are
// given. A Read callback must not modify the value. None of these rules are
// checked unless the program is built with the "assertions" build tag, in
// which case a re-entrant call panics rather than deadlocks.
//
// Waiting has at-most-latest semantics. A goroutine in WaitForUpdate() wakes
// once the most recent write is newer than the timestamp it is waiting on.
// Writes that happen while the consumer is busy elsewhere are coalesced; the
// Slot is not an event queue.
//
// Waiting consumers never hold the lock that protects the value, so a slow or
// blocked consumer cannot hold up the producer.
package exchange
