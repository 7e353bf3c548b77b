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

// State of the Slot. A Slot begins Unwritten and becomes Live on the first
// call to Write(). It never returns to Unwritten.
type State int

// List of possible Slot states.
const (
	Unwritten State = iota
	Live
)

func (s State) String() string {
	switch s {
	case Unwritten:
		return "Unwritten"
	case Live:
		return "Live"
	}
	return ""
}
