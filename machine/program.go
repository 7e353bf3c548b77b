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
	"bufio"
	"io"
	"strings"

	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/panel"
)

// DefaultOrigin is the address that words are loaded at if a program does
// not specify an address.
const DefaultOrigin = 0o200

// Sentinal errors returned by LoadProgram().
const (
	ProgramError = "machine: program line %d: %v"
	EmptyProgram = "machine: program contains no words"
)

// LoadProgram deposits the words of a program into memory and sets the
// program counter to the address of the first word. Must not be called while
// Run() is running.
//
// The program is text. Each line has an optional address followed by a colon
// and then any number of words, all in octal. Words without an address are
// deposited after the previous word, starting at DefaultOrigin. A slash
// starts a comment that runs to the end of the line.
//
//	/ add two numbers
//	0200: 7300 1205 1206 3207 7402
//	0205: 0002 0003
func (m *Machine) LoadProgram(r io.Reader) error {
	loc := uint16(DefaultOrigin)
	first := true

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		s, _, _ := strings.Cut(scanner.Text(), "/")

		if a, w, ok := strings.Cut(s, ":"); ok {
			addr, err := panel.ParseOctal(a, panel.WordBits)
			if err != nil {
				return curated.Errorf(ProgramError, line, err)
			}
			loc = addr
			s = w
		}

		for _, f := range strings.Fields(s) {
			w, err := panel.ParseOctal(f, panel.WordBits)
			if err != nil {
				return curated.Errorf(ProgramError, line, err)
			}
			if first {
				m.SetPC(loc)
				first = false
			}
			m.Deposit(loc, w)
			loc = (loc + 1) & panel.WordMask
		}
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf(ProgramError, line, err)
	}

	if first {
		return curated.Errorf(EmptyProgram)
	}

	return nil
}
