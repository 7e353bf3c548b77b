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
	"bytes"
	"fmt"

	"github.com/bradleyjkemp/memviz"
	"github.com/natefinch/atomic"

	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/panel"
	"github.com/jetsetilly/frontpanel/paths"
)

// the value given to memviz. exported fields are required for the field
// names to appear in the diagram.
type dumpState struct {
	Lights        panel.Lights
	LightsStamp   exchange.Timestamp
	Switches      panel.Switches
	SwitchesStamp exchange.Timestamp
}

// dump writes a graphviz diagram of the lights and switches to a file. If
// the filename is empty then a unique filename in the dumps directory is
// used.
func (con *Console) dump(pth string) error {
	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("dumps", fmt.Sprintf("%s.dot", paths.UniqueFilename("panel", "")))
		if err != nil {
			return curated.Errorf(DumpError, err)
		}
	}

	var state dumpState
	state.Lights, state.LightsStamp = con.lights.Snapshot()
	state.Switches, state.SwitchesStamp = con.switches.Snapshot()

	buf := &bytes.Buffer{}
	memviz.Map(buf, &state)

	if err := atomic.WriteFile(pth, buf); err != nil {
		return curated.Errorf(DumpError, err)
	}

	fmt.Fprintf(con.output, "panel state written to %s\n", pth)
	return nil
}
