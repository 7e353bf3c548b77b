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
	"sync/atomic"
	"time"
	"unicode"

	"github.com/jetsetilly/frontpanel/console/ansi"
	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/monitor"
	"github.com/jetsetilly/frontpanel/paths"
	"github.com/jetsetilly/frontpanel/prefs"
)

// the shortest refresh interval that will be used regardless of the
// preference value.
const minRefresh = monitor.MinInterval

// lamp characters used when the lamps preference is empty.
const defaultLamps = "●○"

// Sentinal errors for invalid preference values.
const (
	InvalidLamps = "console: lamps must be two different printable characters (%s)"
	InvalidPen   = "console: unknown lamp colour (%s)"
)

// the longest name in the ansi.Pens table.
var maxPenName int

func init() {
	for n := range ansi.Pens {
		maxPenName = max(maxPenName, len(n))
	}
}

// Preferences defines and collates all the preference values used by the
// console.
type Preferences struct {
	dsk *prefs.Disk

	// how often the lights are redrawn
	Refresh prefs.Duration

	// follow the lights Slot rather than polling it
	Follow prefs.Bool

	// draw lamps with ANSI colours
	Colour prefs.Bool

	// single keystroke input rather than command lines
	KeyMode prefs.Bool

	// the characters for a lit and an unlit lamp. for terminals without
	// the default characters
	Lamps *prefs.Generic
	lamps atomic.Value // []rune

	// colour of lit lamps when drawing with colour
	LampColour prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.Lamps = prefs.NewGeneric(p.setLamps, p.getLamps)
	p.LampColour.SetMaxLen(maxPenName)
	p.LampColour.SetHookPost(func(v prefs.Value) error {
		if _, ok := ansi.Pens[v.(string)]; !ok {
			return curated.Errorf(InvalidPen, v)
		}
		return nil
	})
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("console.refresh", &p.Refresh)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("console.follow", &p.Follow)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("console.colour", &p.Colour)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("console.keymode", &p.KeyMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("console.lamps", p.Lamps)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("console.lampcolour", &p.LampColour)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all console settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Refresh.Set(50 * time.Millisecond)
	_ = p.Follow.Set(true)
	_ = p.Colour.Set(true)
	_ = p.KeyMode.Set(false)
	_ = p.Lamps.Set(defaultLamps)
	_ = p.LampColour.Set("yellow")
}

// Load current console preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current console preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// refresh returns the refresh interval, never shorter than minRefresh.
func (p *Preferences) refresh() time.Duration {
	return max(p.Refresh.Get(), minRefresh)
}

// the empty string selects the default lamps.
func (p *Preferences) setLamps(s string) error {
	if s == "" {
		s = defaultLamps
	}
	r := []rune(s)
	if len(r) != 2 || r[0] == r[1] {
		return curated.Errorf(InvalidLamps, s)
	}
	for _, c := range r {
		if !unicode.IsPrint(c) || unicode.IsSpace(c) {
			return curated.Errorf(InvalidLamps, s)
		}
	}
	p.lamps.Store(r)
	return nil
}

func (p *Preferences) getLamps() string {
	r, _ := p.lamps.Load().([]rune)
	return string(r)
}

// Style returns the drawing style described by the preferences.
func (p *Preferences) Style() Style {
	st := DefaultStyle
	if r, ok := p.lamps.Load().([]rune); ok {
		st.LampOn, st.LampOff = r[0], r[1]
	}
	st.Colour = p.Colour.Get()
	st.Pen = p.LampColour.Get()
	return st
}
