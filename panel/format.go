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

package panel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/frontpanel/curated"
)

// Octal formats the value with the specified number of octal digits. Higher
// digits are discarded.
func Octal(v uint16, digits int) string {
	if digits <= 0 {
		return ""
	}
	mask := uint16(1<<(3*digits) - 1)
	return fmt.Sprintf("%0*o", digits, v&mask)
}

// Lamps formats the least significant bits of the value as a row of lamps,
// most significant bit first. A space separates each group of three lamps,
// which matches the colour grouping of the switches on the panel.
func Lamps(v uint16, bits int, on, off rune) string {
	s := strings.Builder{}
	for i := bits - 1; i >= 0; i-- {
		if v&(1<<i) != 0 {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
		if i > 0 && i%3 == 0 {
			s.WriteRune(' ')
		}
	}
	return s.String()
}

// Sentinal errors returned by ParseOctal().
const (
	InvalidOctal = "invalid octal value: %s"
	OctalRange   = "octal value too large for %d bits: %s"
)

// ParseOctal parses an octal string for a register of the specified width. A
// leading "0o" is allowed.
func ParseOctal(s string, bits int) (uint16, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "0o")
	v, err := strconv.ParseUint(t, 8, 16)
	if err != nil || t == "" {
		return 0, curated.Errorf(InvalidOctal, s)
	}
	if v >= 1<<bits {
		return 0, curated.Errorf(OctalRange, bits, s)
	}
	return uint16(v), nil
}
