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

// Package console is a front panel for a terminal. The lights are drawn as
// rows of lamps by the Renderer and the switches are operated by typing
// commands.
//
// There are two ways of operating the switches. LineInput() reads whole
// command lines with line editing and history. KeyInput() reads single
// keystrokes with the terminal in cbreak mode and is the closer of the two
// to the feel of a real panel. Both produce values of the Command type,
// which are executed by the Execute() function of the Console type.
//
// Every command that changes the switches does so with a single Write() to
// the switches Slot. Momentary keys are recorded with Switches.Press() so
// that the machine can tell one press from the next.
package console
