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

// Package prefs facilitates the storage of preferential values in the
// application. Values are stored in a Disk instance, which loads and saves
// them from a text file of "key :: value" lines.
//
// A package that needs preferences creates the values and adds them to a Disk
// under a unique key. For example:
//
//	var rate prefs.Float
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("machine.publishrate", &rate)
//	err = dsk.Load(true)
//
// Each value type is safe to read and set from any goroutine.
//
// Values can be overridden for the duration of a run with the command line
// stack. A prefs string is a list of "key::value" pairs separated by
// semi-colons:
//
//	prefs.PushCommandLineStack("machine.publishrate::30; console.colour::false")
//
// Values on the stack are applied when Load() is called and are deleted from
// the stack as they are used.
package prefs
