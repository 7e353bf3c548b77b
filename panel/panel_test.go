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

package panel_test

import (
	"testing"

	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/panel"
	"github.com/jetsetilly/frontpanel/test"
)

func TestOctal(t *testing.T) {
	test.ExpectEquality(t, panel.Octal(0o200, 4), "0200")
	test.ExpectEquality(t, panel.Octal(0o7777, 4), "7777")
	test.ExpectEquality(t, panel.Octal(0o17777, 4), "7777")
	test.ExpectEquality(t, panel.Octal(5, 1), "5")
	test.ExpectEquality(t, panel.Octal(5, 0), "")
}

func TestLamps(t *testing.T) {
	test.ExpectEquality(t, panel.Lamps(0o7070, 12, '*', '.'), "*** ... *** ...")
	test.ExpectEquality(t, panel.Lamps(0o5, 3, '*', '.'), "*.*")
	test.ExpectEquality(t, panel.Lamps(0o21, 5, '*', '.'), "*. ..*")
}

func TestParseOctal(t *testing.T) {
	v, err := panel.ParseOctal("7402", panel.WordBits)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0o7402))

	v, err = panel.ParseOctal(" 0o200 ", panel.WordBits)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0o200))

	_, err = panel.ParseOctal("789", panel.WordBits)
	test.ExpectSuccess(t, curated.Is(err, panel.InvalidOctal))

	_, err = panel.ParseOctal("", panel.WordBits)
	test.ExpectSuccess(t, curated.Is(err, panel.InvalidOctal))

	_, err = panel.ParseOctal("10", panel.FieldBits)
	test.ExpectSuccess(t, curated.Is(err, panel.OctalRange))

	_, err = panel.ParseOctal("10000", panel.WordBits)
	test.ExpectSuccess(t, curated.Is(err, panel.OctalRange))
}

func TestSwitches(t *testing.T) {
	var sw panel.Switches

	sw.ToggleSR(0)
	test.ExpectEquality(t, sw.SR, uint16(0o4000))
	sw.ToggleSR(11)
	test.ExpectEquality(t, sw.SR, uint16(0o4001))
	sw.ToggleSR(0)
	test.ExpectEquality(t, sw.SR, uint16(0o0001))

	// out of range bits are ignored
	sw.ToggleSR(12)
	sw.ToggleSR(-1)
	test.ExpectEquality(t, sw.SR, uint16(0o0001))

	sw.Press(panel.KeyDeposit)
	sw.Press(panel.KeyDeposit)
	test.ExpectEquality(t, sw.Key, panel.KeyDeposit)
	test.ExpectEquality(t, sw.Presses, uint64(2))
	test.ExpectEquality(t, sw.String(), "SR=0001 DF=0 IF=0 last=Dep")
}

func TestLightsString(t *testing.T) {
	l := panel.Lights{
		PC:   0o200,
		MA:   0o177,
		MB:   0o7402,
		AC:   0o1234,
		Link: true,
		IR:   7,
		Run:  true,
	}
	test.ExpectEquality(t, l.String(), "PC=0200 MA=0177 MB=7402 AC=1234 L=1 IR=7 DF=0 IF=0 Fetch RUN")
}
