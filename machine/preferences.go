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

package machine

import (
	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/paths"
	"github.com/jetsetilly/frontpanel/prefs"
)

// Preferences defines and collates all the preference values used by the
// machine.
type Preferences struct {
	dsk *prefs.Disk

	// maximum number of times per second that the lights are published while
	// the machine is running. a value of zero or less means that the lights
	// are published after every chunk
	PublishRate prefs.Float

	// number of instructions executed between checks of the switches
	StepsPerChunk prefs.Int

	// add key presses to the log
	LogKeys prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.publishrate", &p.PublishRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.stepsperchunk", &p.StepsPerChunk)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.logkeys", &p.LogKeys)
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

// SetDefaults reverts all machine settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.PublishRate.Set(60.0)
	_ = p.StepsPerChunk.Set(1000)
	_ = p.LogKeys.Set(true)
}

// Load current machine preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current machine preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
