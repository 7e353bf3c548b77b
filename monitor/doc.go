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

// Package monitor contains the two ways of consuming the value in an
// exchange.Slot.
//
// Poll() checks the timestamp of the slot at a fixed rate and only reads the
// value if it has changed. This is the right choice for a display that
// redraws at a fixed rate.
//
// Follow() waits for the slot to be written and then reads the value. An
// optional rate limiter caps how often the callback is called. Writes that
// happen while the callback is running, or while the limiter is waiting, are
// coalesced and only the most recent value is delivered.
//
// In both cases the callback is given a copy of the value and is called
// without any lock on the slot being held. The callback is free to take as
// long as it likes without stalling the producer.
package monitor
