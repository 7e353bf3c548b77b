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

// Key is one of the momentary switches on the front panel.
type Key int

// List of momentary switches.
const (
	KeyNone Key = iota
	KeyStart
	KeyLoadAdd
	KeyDeposit
	KeyExamine
	KeyContinue
	KeyStop
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyStart:
		return "Start"
	case KeyLoadAdd:
		return "Load Add"
	case KeyDeposit:
		return "Dep"
	case KeyExamine:
		return "Exam"
	case KeyContinue:
		return "Cont"
	case KeyStop:
		return "Stop"
	}
	return ""
}

// Switches is the state of every switch on the front panel.
//
// Momentary switches are recorded as the most recently pressed Key and a
// count of presses. The count distinguishes one press of a key from the next
// press of the same key. A reader that is slower than the person at the panel
// will only see the most recent press.
type Switches struct {
	// switch register
	SR uint16

	DF uint8
	IF uint8

	SingleStep bool
	SingleInst bool

	Key     Key
	Presses uint64
}

// Press records a press of a momentary switch.
func (sw *Switches) Press(k Key) {
	sw.Key = k
	sw.Presses++
}

// ToggleSR flips one bit of the switch register. Bit 0 is the leftmost switch
// on the panel, which is the most significant bit of the word.
func (sw *Switches) ToggleSR(bit int) {
	if bit < 0 || bit >= WordBits {
		return
	}
	sw.SR ^= 1 << (WordBits - 1 - bit)
}

func (sw Switches) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SR=%s DF=%s IF=%s", Octal(sw.SR, 4), Octal(uint16(sw.DF), 1), Octal(uint16(sw.IF), 1)))
	if sw.SingleStep {
		s.WriteString(" SSTEP")
	}
	if sw.SingleInst {
		s.WriteString(" SINST")
	}
	if sw.Presses > 0 {
		s.WriteString(fmt.Sprintf(" last=%s", sw.Key))
	}
	return s.String()
}
