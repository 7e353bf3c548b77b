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
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/logger"
	"github.com/jetsetilly/frontpanel/panel"
	"github.com/jetsetilly/frontpanel/prefs"
)

// Machine connects a processor to the lights and switches of a front panel.
type Machine struct {
	Prefs *Preferences

	lights   *exchange.Slot[panel.Lights]
	switches *exchange.Slot[panel.Switches]

	// the processor is only accessed by the goroutine running Run()
	cpu cpu

	// timestamp of the most recently read switches and the number of key
	// presses seen at that time
	switchStamp exchange.Timestamp
	presses     uint64

	// the single instruction switch as it was when the switches were last
	// read
	singleInst bool

	limiter *rate.Limiter

	// the single instruction switch halts the processor after every
	// instruction. those halts are not logged
	haltLog logger.Permission

	// number of instructions executed. safe to read from any goroutine
	instructions atomic.Uint64
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(p *Preferences, lights *exchange.Slot[panel.Lights], switches *exchange.Slot[panel.Switches]) *Machine {
	m := &Machine{
		Prefs:    p,
		lights:   lights,
		switches: switches,
		limiter:  rate.NewLimiter(publishLimit(p.PublishRate.Get()), 1),
	}

	m.haltLog = logger.PermissionFunc(func() bool {
		return !m.singleInst
	})

	p.PublishRate.SetHookPost(func(v prefs.Value) error {
		m.limiter.SetLimit(publishLimit(v.(float64)))
		return nil
	})

	return m
}

func publishLimit(hz float64) rate.Limit {
	if hz <= 0 {
		return rate.Inf
	}
	return rate.Limit(hz)
}

// Deposit words into memory starting at the address. Addresses wrap around
// at the end of memory. Must not be called while Run() is running.
func (m *Machine) Deposit(addr uint16, words ...uint16) {
	for _, w := range words {
		m.cpu.mem[addr&panel.WordMask] = w & panel.WordMask
		addr++
	}
}

// SetPC sets the program counter. Must not be called while Run() is running.
func (m *Machine) SetPC(addr uint16) {
	m.cpu.pc = addr & panel.WordMask
}

// Instructions returns the number of instructions that have been executed.
func (m *Machine) Instructions() uint64 {
	return m.instructions.Load()
}

// Run the machine until the context is cancelled. The machine starts halted
// and will do nothing until the Start or Continue key is pressed on the
// switches.
//
// Returns the error of the context.
func (m *Machine) Run(ctx context.Context) error {
	logger.Log(logger.Allow, "machine", "started")
	defer logger.Log(logger.Allow, "machine", "stopped")

	// a key pressed before the machine started is acted on
	if key, ok := m.readSwitches(); ok {
		m.key(key)
	}
	m.publish()

	for {
		if m.cpu.run {
			if err := ctx.Err(); err != nil {
				return err
			}
		} else if _, err := m.switches.WaitForUpdateContext(ctx, m.switchStamp); err != nil {
			return err
		}

		if m.switches.LastUpdate().After(m.switchStamp) {
			if key, ok := m.readSwitches(); ok {
				m.key(key)
			}
		}

		if m.cpu.run {
			m.chunk()
		}
	}
}

// readSwitches copies the switches from the Slot. Returns the key that was
// pressed and true if there has been a key press since the previous call.
func (m *Machine) readSwitches() (panel.Key, bool) {
	var sw panel.Switches
	m.switchStamp = m.switches.Read(func(s *panel.Switches) {
		sw = *s
	})

	m.cpu.sr = sw.SR
	m.singleInst = sw.SingleInst || sw.SingleStep

	if sw.Presses == m.presses {
		return panel.KeyNone, false
	}
	m.presses = sw.Presses

	// the field switches are only loaded by the Load Add key
	if sw.Key == panel.KeyLoadAdd {
		m.cpu.df = sw.DF & panel.FieldMask
		m.cpu.ifield = sw.IF & panel.FieldMask
	}

	return sw.Key, true
}

// key performs the action of a momentary switch.
func (m *Machine) key(key panel.Key) {
	c := &m.cpu

	switch key {
	case panel.KeyLoadAdd:
		c.pc = c.sr
		c.ma = c.sr
	case panel.KeyDeposit:
		c.write(c.pc, c.sr)
		c.pc = (c.pc + 1) & panel.WordMask
	case panel.KeyExamine:
		c.read(c.pc)
		c.pc = (c.pc + 1) & panel.WordMask
	case panel.KeyStart:
		c.ac = 0
		c.link = false
		c.run = true
	case panel.KeyContinue:
		c.run = true
	case panel.KeyStop:
		c.run = false
	default:
		return
	}

	logger.Logf(&m.Prefs.LogKeys, "machine", "%s key", key)

	// the lights always reflect the result of a key press
	m.publish()
}

// chunk runs a number of instructions and publishes the lights if the
// publish rate allows it. The lights are always published if the processor
// halts.
func (m *Machine) chunk() {
	c := &m.cpu

	n := m.Prefs.StepsPerChunk.Get()
	if n < 1 || m.singleInst {
		n = 1
	}

	for range n {
		c.step()
		m.instructions.Add(1)
		if !c.run {
			break // for loop
		}
	}

	if m.singleInst {
		c.run = false
	}

	if !c.run {
		logger.Logf(m.haltLog, "machine", "halted at %s", panel.Octal(c.pc, 4))
		m.publish()
		return
	}

	if m.limiter.Allow() {
		m.publish()
	}
}

func (m *Machine) publish() {
	m.lights.Write(m.cpu.lights)
}
