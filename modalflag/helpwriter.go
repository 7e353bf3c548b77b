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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter prepares the help message for a mode from the flag usage
// information and the list of sub-modes.
type helpWriter struct {
	output io.Writer
}

func (hw helpWriter) write(s string) {
	if hw.output == nil {
		return
	}
	_, _ = io.WriteString(hw.output, s)
}

func (hw helpWriter) help(banner string, flagUsage string, subModes []string, additionalHelp string) {
	// output "no help available" message if there is no flag information and no
	// sub-modes
	if flagUsage == "" && len(subModes) == 0 && additionalHelp == "" {
		hw.write("No help available")
		if banner != "" {
			hw.write(fmt.Sprintf(" for %s", banner))
		}
		hw.write("\n")
		return
	}

	if banner != "" {
		hw.write(fmt.Sprintf("Usage for %s mode:\n", banner))
	} else {
		hw.write("Usage:\n")
	}

	hw.write(flagUsage)

	// add sub-mode information
	if len(subModes) > 0 {
		// add an additional new line if we've already printed flag information
		if flagUsage != "" {
			hw.write("\n")
		}

		hw.write(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		hw.write(fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		hw.write("\n")
		hw.write(additionalHelp)
		hw.write("\n")
	}
}
