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

package paths

import (
	"strings"
	"time"
)

// layout of the timestamp in a unique filename.
const uniqueLayout = "20060102_150405"

// UniqueFilename returns a filename made from the prepend string, the label
// and the current time:
//
//	prepend_label_YYYYMMDD_HHMMSS
//
// The label is trimmed of whitespace and omitted if it is empty. Filenames
// only differ from one second to the next so two calls in quick succession
// can return the same string.
func UniqueFilename(prepend string, label string) string {
	parts := []string{prepend}
	if l := strings.TrimSpace(label); l != "" {
		parts = append(parts, l)
	}
	parts = append(parts, time.Now().Format(uniqueLayout))
	return strings.Join(parts, "_")
}
