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

package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/frontpanel/console/ansi"
	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/panel"
)

// Style of a drawing of the panel.
type Style struct {
	// draw with ANSI colour codes
	Colour bool

	// characters for lit and unlit lamps
	LampOn  rune
	LampOff rune

	// colour of lit lamps. a name from the ansi.Pens table
	Pen string
}

// DefaultStyle draws without colour using round lamps.
var DefaultStyle = Style{
	LampOn:  '●',
	LampOff: '○',
	Pen:     "yellow",
}

// Renderer draws the lights and switches of the panel. The Update functions
// have the signature of a monitor.Callback and can be used directly with the
// monitor package.
type Renderer struct {
	crit sync.Mutex

	output io.Writer
	style  Style

	// redraw over the top of the previous drawing
	inPlace bool
	drawn   int

	lights   panel.Lights
	switches panel.Switches
}

// NewRenderer is the preferred method of initialisation for the Renderer type.
func NewRenderer(output io.Writer, style Style, inPlace bool) *Renderer {
	return &Renderer{
		output:  output,
		style:   style,
		inPlace: inPlace,
	}
}

// UpdateLights stores a new value for the lights and redraws the panel.
func (r *Renderer) UpdateLights(l *panel.Lights, _ exchange.Timestamp) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.lights = *l
	r.draw()
}

// UpdateSwitches stores a new value for the switches and redraws the panel.
func (r *Renderer) UpdateSwitches(sw *panel.Switches, _ exchange.Timestamp) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.switches = *sw
	r.draw()
}

// Draw the panel with the most recent values. The values are zero until the
// first update.
func (r *Renderer) Draw() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.draw()
}

func (r *Renderer) draw() {
	lines := Format(r.lights, r.switches, r.style)

	s := strings.Builder{}
	if r.inPlace {
		s.WriteString(ansi.CursorUp(r.drawn))
	}
	for _, l := range lines {
		if r.inPlace {
			s.WriteString(ansi.ClearLine)
		}
		s.WriteString(l)
		s.WriteString("\n")
	}
	r.drawn = len(lines)

	_, _ = io.WriteString(r.output, s.String())
}

func (st Style) pen() string {
	if p, ok := ansi.Pens[st.Pen]; ok {
		return p
	}
	return ansi.Pens[DefaultStyle.Pen]
}

// lamps returns a row of lamps for the least significant bits of v.
func (st Style) lamps(v uint16, bits int) string {
	s := panel.Lamps(v, bits, st.LampOn, st.LampOff)
	if !st.Colour {
		return s
	}

	on := fmt.Sprintf("%s%c%s", st.pen(), st.LampOn, ansi.NormalPen)
	off := fmt.Sprintf("%s%c%s", ansi.DimPens["white"], st.LampOff, ansi.NormalPen)

	b := strings.Builder{}
	for _, c := range s {
		switch c {
		case st.LampOn:
			b.WriteString(on)
		case st.LampOff:
			b.WriteString(off)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func (st Style) lamp(on bool) string {
	if on {
		return st.lamps(1, 1)
	}
	return st.lamps(0, 1)
}

// label is padded to the width of the register labels.
func (st Style) label(s string) string {
	s = fmt.Sprintf("%-3s", s)
	if st.Colour {
		return fmt.Sprintf("%s%s%s", ansi.PenStyles["bold"], s, ansi.NormalPen)
	}
	return s
}

// Format returns the lines of a drawing of the panel.
func Format(l panel.Lights, sw panel.Switches, st Style) []string {
	row := func(label string, v uint16, bits int, digits int) string {
		// registers narrower than a word are aligned to the right of the row
		pad := strings.Repeat(" ", (panel.WordBits-bits)+(panel.WordBits-bits)/3)
		return fmt.Sprintf("%s %s%s  %s", st.label(label), pad, st.lamps(v, bits), panel.Octal(v, digits))
	}

	lines := []string{
		row("PC", l.PC, panel.WordBits, 4),
		row("MA", l.MA, panel.WordBits, 4),
		row("MB", l.MB, panel.WordBits, 4),
		fmt.Sprintf("%s  L %s", row("AC", l.AC, panel.WordBits, 4), st.lamp(l.Link)),
		fmt.Sprintf("%s  DF %s  IF %s", row("IR", uint16(l.IR), panel.IRBits, 1),
			st.lamps(uint16(l.DF), panel.FieldBits), st.lamps(uint16(l.IF), panel.FieldBits)),
		fmt.Sprintf("    FETCH %s  DEFER %s  EXEC %s  RUN %s  ION %s  PAUSE %s",
			st.lamp(l.State == panel.Fetch), st.lamp(l.State == panel.Defer),
			st.lamp(l.State == panel.Execute), st.lamp(l.Run),
			st.lamp(l.Ion), st.lamp(l.Pause)),
		row("SR", sw.SR, panel.WordBits, 4),
	}

	var modes []string
	if sw.SingleStep {
		modes = append(modes, "SSTEP")
	}
	if sw.SingleInst {
		modes = append(modes, "SINST")
	}
	if sw.Presses > 0 {
		modes = append(modes, fmt.Sprintf("last key: %s", sw.Key))
	}

	m := strings.Join(modes, "  ")
	if st.Colour && m != "" {
		m = fmt.Sprintf("%s%s%s", ansi.DimPens["cyan"], m, ansi.NormalPen)
	}
	lines = append(lines, strings.TrimRight("    "+m, " "))

	return lines
}
