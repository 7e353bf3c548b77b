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

// Package machine is a small PDP-8 processor that drives a front panel. The
// state of the processor is published to a lights Slot and the processor is
// controlled by reading a switches Slot.
//
// The machine goroutine is both a producer and a consumer. While the
// processor is halted the goroutine waits for the switches to change with
// WaitForUpdateContext(). While it is running it checks the switches between
// chunks of instructions and publishes the lights at a limited rate.
//
// The instruction set is the basic PDP-8 set: the six memory reference
// instructions with indirect and current page addressing, the group 1 and
// group 2 operate microinstructions, and IOT which is executed as a no-op.
// There is one field of memory.
package machine
