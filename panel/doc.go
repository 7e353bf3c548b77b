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

// Package panel defines the values shown on and read from the front panel of a
// PDP-8. Lights are written by the machine and read by whatever is presenting
// the panel. Switches are written by whatever is driving the panel and read by
// the machine. Both are intended to be held in an exchange.Slot.
//
// The types are plain values with no references so a copy is always a
// complete snapshot.
package panel
