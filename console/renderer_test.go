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

package console_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/frontpanel/console"
	"github.com/jetsetilly/frontpanel/console/ansi"
	"github.com/jetsetilly/frontpanel/panel"
	"github.com/jetsetilly/frontpanel/test"
)

func TestFormat(t *testing.T) {
	l := panel.Lights{
		PC:    0o0200,
		AC:    0o7777,
		Link:  true,
		IR:    5,
		DF:    1,
		State: panel.Execute,
		Run:   true,
	}
	sw := panel.Switches{SR: 0o4001, SingleInst: true}
	sw.Press(panel.KeyStart)

	lines := console.Format(l, sw, console.DefaultStyle)
	test.ExpectEquality(t, len(lines), 8)
	test.ExpectEquality(t, lines[0], "PC  ○○○ ○●○ ○○○ ○○○  0200")
	test.ExpectEquality(t, lines[3], "AC  ●●● ●●● ●●● ●●●  7777  L ●")
	test.ExpectEquality(t, lines[4], "IR              ●○●  5  DF ○○●  IF ○○○")
	test.ExpectEquality(t, lines[5], "    FETCH ○  DEFER ○  EXEC ●  RUN ●  ION ○  PAUSE ○")
	test.ExpectEquality(t, lines[6], "SR  ●○○ ○○○ ○○○ ○○●  4001")
	test.ExpectEquality(t, lines[7], "    SINST  last key: Start")

	// no colour codes unless asked for
	for _, s := range lines {
		test.ExpectFailure(t, strings.Contains(s, "\033"))
	}

	st := console.DefaultStyle
	st.Colour = true
	lines = console.Format(l, sw, st)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], ansi.PenStyles["bold"]+"PC "))
	test.ExpectSuccess(t, strings.Contains(lines[0], ansi.Pens["yellow"]+"●"+ansi.NormalPen))
	test.ExpectSuccess(t, strings.Contains(lines[0], ansi.DimPens["white"]+"○"+ansi.NormalPen))
	test.ExpectSuccess(t, strings.Contains(lines[7], ansi.DimPens["cyan"]+"SINST"))

	// an unknown pen falls back to the default
	st.Pen = "mauve"
	lines = console.Format(l, sw, st)
	test.ExpectSuccess(t, strings.Contains(lines[0], ansi.Pens["yellow"]+"●"))

	// alternative lamp characters
	st = console.Style{LampOn: '*', LampOff: '.'}
	lines = console.Format(l, sw, st)
	test.ExpectEquality(t, lines[0], "PC  ... .*. ... ...  0200")
}

func TestRendererInPlace(t *testing.T) {
	tw := &test.Writer{}
	r := console.NewRenderer(tw, console.DefaultStyle, true)

	r.Draw()
	first := tw.String()
	test.ExpectFailure(t, strings.Contains(first, ansi.CursorUp(8)))
	test.ExpectEquality(t, strings.Count(first, ansi.ClearLine), 8)

	// the second drawing moves back over the first
	tw.Reset()
	r.UpdateLights(&panel.Lights{PC: 0o7777}, 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), ansi.CursorUp(8)))
	test.ExpectSuccess(t, tw.Contains("●●● ●●● ●●● ●●●  7777"))
}

func TestRendererNotInPlace(t *testing.T) {
	tw := &test.Writer{}
	r := console.NewRenderer(tw, console.DefaultStyle, false)
	r.Draw()
	r.Draw()
	test.ExpectFailure(t, tw.Contains("\033"))
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 16)
}
