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
	"strings"
)

// Widths of the registers on the panel, in bits.
const (
	WordBits  = 12
	FieldBits = 3
	SCBits    = 5
	IRBits    = 3
)

// Masks for the register widths.
const (
	WordMask  = 0o7777
	FieldMask = 0o7
	SCMask    = 0o37
	IRMask    = 0o7
)

// MajorState is the major state lamp that is lit.
type MajorState int

// List of major states.
const (
	Fetch MajorState = iota
	Defer
	Execute
)

func (m MajorState) String() string {
	switch m {
	case Fetch:
		return "Fetch"
	case Defer:
		return "Defer"
	case Execute:
		return "Execute"
	}
	return ""
}

// Lights is the state of every indicator on the front panel.
type Lights struct {
	PC uint16
	MA uint16
	MB uint16
	AC uint16

	Link bool

	// the instruction register only holds the opcode
	IR uint8

	DF uint8
	IF uint8

	// step counter
	SC uint8

	State MajorState

	Run   bool
	Ion   bool
	Pause bool
}

func (l Lights) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%s MA=%s MB=%s AC=%s L=%d IR=%s",
		Octal(l.PC, 4), Octal(l.MA, 4), Octal(l.MB, 4), Octal(l.AC, 4),
		bit(l.Link), Octal(uint16(l.IR), 1)))
	s.WriteString(fmt.Sprintf(" DF=%s IF=%s %s", Octal(uint16(l.DF), 1), Octal(uint16(l.IF), 1), l.State))
	if l.Run {
		s.WriteString(" RUN")
	}
	if l.Ion {
		s.WriteString(" ION")
	}
	if l.Pause {
		s.WriteString(" PAUSE")
	}
	return s.String()
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
