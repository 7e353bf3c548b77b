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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/frontpanel/prefs"
	"github.com/jetsetilly/frontpanel/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.DemandEquality(t, prefs.SizeCommandLineStack(), 0)

	// whitespace around keys and values is ignored and keys are case
	// insensitive
	prefs.PushCommandLineStack("  Console.Refresh ::  20ms ")
	ok, v := prefs.GetCommandLinePref("console.refresh")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("20ms"))

	// values are consumed by GetCommandLinePref()
	ok, _ = prefs.GetCommandLinePref("console.refresh")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// malformed entries are dropped and empty entries are ignored. unused
	// entries are returned sorted by key
	prefs.PushCommandLineStack(";machine.publishrate::30;console.follow;;console.keymode::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "console.keymode::true; machine.publishrate::30")

	// an entry with too many separators is malformed
	prefs.PushCommandLineStack("console.colour::false::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	// popping an empty stack is allowed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("console.follow::false")
	prefs.PushCommandLineStack("console.keymode::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top of the stack is visible
	ok, _ := prefs.GetCommandLinePref("console.follow")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "console.keymode::true")

	ok, v := prefs.GetCommandLinePref("console.follow")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("false"))

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
