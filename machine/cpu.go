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

import "github.com/jetsetilly/frontpanel/panel"

// MemorySize is the number of words in the single field of memory.
const MemorySize = 4096

// instruction opcodes. the opcode is the top three bits of the instruction
const (
	opAND = iota
	opTAD
	opISZ
	opDCA
	opJMS
	opJMP
	opIOT
	opOPR
)

// bits of a memory reference instruction.
const (
	mrIndirect = 0o400
	mrPage     = 0o200
	mrOffset   = 0o177
	pageMask   = 0o7600
)

// group 1 microinstructions.
const (
	g1CLA = 0o200
	g1CLL = 0o100
	g1CMA = 0o040
	g1CML = 0o020
	g1RAR = 0o010
	g1RAL = 0o004
	g1TWO = 0o002
	g1IAC = 0o001
)

// group 2 microinstructions.
const (
	g2CLA = 0o200
	g2SMA = 0o100
	g2SZA = 0o040
	g2SNL = 0o020
	g2REV = 0o010
	g2OSR = 0o004
	g2HLT = 0o002
)

// bits that select the group of an operate instruction.
const (
	oprGroup2 = 0o400
	oprGroup3 = 0o001
)

// the auto-index locations. an indirect reference through one of these
// locations increments the location before it is used.
const (
	autoIndexFirst = 0o10
	autoIndexLast  = 0o17
)

// cpu is the register and memory state of the processor.
type cpu struct {
	mem [MemorySize]uint16

	pc uint16
	ma uint16
	mb uint16
	ac uint16
	ir uint8

	link bool

	df     uint8
	ifield uint8

	state panel.MajorState
	run   bool

	// the switch register as it was when the switches were last read. the
	// OSR instruction uses this value
	sr uint16
}

func (c *cpu) read(addr uint16) uint16 {
	c.ma = addr & panel.WordMask
	c.mb = c.mem[c.ma]
	return c.mb
}

func (c *cpu) write(addr uint16, v uint16) {
	c.ma = addr & panel.WordMask
	c.mb = v & panel.WordMask
	c.mem[c.ma] = c.mb
}

// effectiveAddress of a memory reference instruction located at addr.
func (c *cpu) effectiveAddress(addr uint16, inst uint16) uint16 {
	ea := inst & mrOffset
	if inst&mrPage != 0 {
		ea |= addr & pageMask
	}

	if inst&mrIndirect != 0 {
		c.state = panel.Defer
		if ea >= autoIndexFirst && ea <= autoIndexLast {
			c.write(ea, c.read(ea)+1)
		}
		ea = c.read(ea)
	}

	return ea
}

// step executes a single instruction. The run flag is cleared if the
// instruction is HLT.
func (c *cpu) step() {
	addr := c.pc
	c.state = panel.Fetch
	inst := c.read(addr)
	c.pc = (c.pc + 1) & panel.WordMask
	c.ir = uint8(inst >> 9)

	switch c.ir {
	case opIOT:
		return
	case opOPR:
		c.state = panel.Execute
		c.operate(inst)
		return
	}

	ea := c.effectiveAddress(addr, inst)
	c.state = panel.Execute

	switch c.ir {
	case opAND:
		c.ac &= c.read(ea)
	case opTAD:
		sum := c.ac + c.read(ea)
		if sum > panel.WordMask {
			c.link = !c.link
		}
		c.ac = sum & panel.WordMask
	case opISZ:
		v := (c.read(ea) + 1) & panel.WordMask
		c.write(ea, v)
		if v == 0 {
			c.pc = (c.pc + 1) & panel.WordMask
		}
	case opDCA:
		c.write(ea, c.ac)
		c.ac = 0
	case opJMS:
		c.write(ea, c.pc)
		c.pc = (ea + 1) & panel.WordMask
	case opJMP:
		c.pc = ea
	}
}

func (c *cpu) operate(inst uint16) {
	if inst&oprGroup2 == 0 {
		c.group1(inst)
		return
	}

	// group 3 (the MQ instructions) is not supported except for CLA, which is
	// common to all groups
	if inst&oprGroup3 != 0 {
		if inst&g2CLA != 0 {
			c.ac = 0
		}
		return
	}

	c.group2(inst)
}

func (c *cpu) group1(inst uint16) {
	// event time 1
	if inst&g1CLA != 0 {
		c.ac = 0
	}
	if inst&g1CLL != 0 {
		c.link = false
	}

	// event time 2
	if inst&g1CMA != 0 {
		c.ac ^= panel.WordMask
	}
	if inst&g1CML != 0 {
		c.link = !c.link
	}

	// event time 3
	if inst&g1IAC != 0 {
		c.ac++
		if c.ac > panel.WordMask {
			c.link = !c.link
			c.ac &= panel.WordMask
		}
	}

	// event time 4
	n := 1
	if inst&g1TWO != 0 {
		n = 2
	}
	switch {
	case inst&g1RAR != 0:
		for range n {
			c.rotateRight()
		}
	case inst&g1RAL != 0:
		for range n {
			c.rotateLeft()
		}
	case inst&g1TWO != 0:
		// byte swap
		c.ac = (c.ac>>6)&0o77 | (c.ac&0o77)<<6
	}
}

// rotations are through the 13 bits made up of the link and the accumulator.
func (c *cpu) rotateRight() {
	low := c.ac&1 != 0
	c.ac >>= 1
	if c.link {
		c.ac |= 0o4000
	}
	c.link = low
}

func (c *cpu) rotateLeft() {
	high := c.ac&0o4000 != 0
	c.ac = (c.ac << 1) & panel.WordMask
	if c.link {
		c.ac |= 1
	}
	c.link = high
}

func (c *cpu) group2(inst uint16) {
	negative := c.ac&0o4000 != 0
	zero := c.ac == 0

	var skip bool
	if inst&g2REV == 0 {
		// OR group. skip if any condition is met
		skip = (inst&g2SMA != 0 && negative) ||
			(inst&g2SZA != 0 && zero) ||
			(inst&g2SNL != 0 && c.link)
	} else {
		// AND group. skip if every condition is met. with no conditions
		// selected this is SKP
		skip = (inst&g2SMA == 0 || !negative) &&
			(inst&g2SZA == 0 || !zero) &&
			(inst&g2SNL == 0 || !c.link)
	}

	if skip {
		c.pc = (c.pc + 1) & panel.WordMask
	}

	if inst&g2CLA != 0 {
		c.ac = 0
	}
	if inst&g2OSR != 0 {
		c.ac |= c.sr
	}
	if inst&g2HLT != 0 {
		c.run = false
	}
}

// lights copies the processor state to the lights on the panel.
func (c *cpu) lights(l *panel.Lights) {
	l.PC = c.pc
	l.MA = c.ma
	l.MB = c.mb
	l.AC = c.ac
	l.Link = c.link
	l.IR = c.ir
	l.DF = c.df
	l.IF = c.ifield
	l.State = c.state
	l.Run = c.run
}
