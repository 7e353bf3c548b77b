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
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/logger"
	"github.com/jetsetilly/frontpanel/monitor"
	"github.com/jetsetilly/frontpanel/panel"
)

// default duration of the watch command.
const defaultWatch = 5 * time.Second

// Console operates the switches of a front panel and draws its lights.
type Console struct {
	Prefs *Preferences

	lights   *exchange.Slot[panel.Lights]
	switches *exchange.Slot[panel.Switches]

	output io.Writer

	// activity of the lights monitor in every call to Monitor()
	Counts monitor.Counts
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(p *Preferences, lights *exchange.Slot[panel.Lights], switches *exchange.Slot[panel.Switches], output io.Writer) *Console {
	return &Console{
		Prefs:    p,
		lights:   lights,
		switches: switches,
		output:   output,
	}
}

// Execute the command. Returns an error with the Quit pattern if the command
// was the quit command.
func (con *Console) Execute(ctx context.Context, cmd Command) error {
	if cmd.Name == "" {
		return nil
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	arg := func(i int) string {
		if i < len(cmd.Args) {
			return cmd.Args[i]
		}
		return ""
	}

	switch cmd.Name {
	case "sr":
		v, err := panel.ParseOctal(arg(0), panel.WordBits)
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd.Name, err)
		}
		con.switches.Write(func(sw *panel.Switches) {
			sw.SR = v
		})

	case "toggle":
		b, err := strconv.Atoi(arg(0))
		if err != nil || b < 0 || b >= panel.WordBits {
			return curated.Errorf(InvalidArgument, cmd.Name, fmt.Sprintf("bit must be between 0 and %d", panel.WordBits-1))
		}
		con.switches.Write(func(sw *panel.Switches) {
			sw.ToggleSR(b)
		})

	case "df", "if":
		v, err := panel.ParseOctal(arg(0), panel.FieldBits)
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd.Name, err)
		}
		con.switches.Write(func(sw *panel.Switches) {
			if cmd.Name == "df" {
				sw.DF = uint8(v)
			} else {
				sw.IF = uint8(v)
			}
		})

	case "load":
		con.press(panel.KeyLoadAdd)
	case "dep":
		con.press(panel.KeyDeposit)
	case "exam":
		con.press(panel.KeyExamine)
	case "start":
		con.press(panel.KeyStart)
	case "cont":
		con.press(panel.KeyContinue)
	case "stop":
		con.press(panel.KeyStop)

	case "sstep", "sinst":
		on, err := onOff(arg(0))
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd.Name, err)
		}
		con.switches.Write(func(sw *panel.Switches) {
			if cmd.Name == "sstep" {
				sw.SingleStep = on
			} else {
				sw.SingleInst = on
			}
		})

	case "show":
		con.Show()

	case "watch":
		d := defaultWatch
		if s := arg(0); s != "" {
			var err error
			d, err = time.ParseDuration(s)
			if err != nil {
				return curated.Errorf(InvalidArgument, cmd.Name, err)
			}
		}
		return con.watch(ctx, d)

	case "dump":
		return con.dump(arg(0))

	case "log":
		switch s := arg(0); s {
		case "":
			logger.WriteRecent(con.output)
		case "all":
			logger.Write(con.output)
		case "clear":
			logger.Clear()
		default:
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return curated.Errorf(InvalidArgument, cmd.Name, "expected all, clear or a positive number")
			}
			logger.Tail(con.output, n)
		}

	case "prefs":
		switch arg(0) {
		case "":
		case "defaults":
			con.Prefs.SetDefaults()
		case "save":
			if err := con.Prefs.Save(); err != nil {
				return err
			}
		default:
			return curated.Errorf(InvalidArgument, cmd.Name, "expected defaults or save")
		}
		fmt.Fprint(con.output, con.Prefs)

	case "help":
		Help(con.output)

	case "quit":
		return curated.Errorf(Quit)
	}

	return nil
}

func (con *Console) press(k panel.Key) {
	con.switches.Write(func(sw *panel.Switches) {
		sw.Press(k)
	})
}

func onOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %s", s)
}

// Show draws the current lights and switches.
func (con *Console) Show() {
	r := NewRenderer(con.output, con.Prefs.Style(), false)

	l, ts := con.lights.Snapshot()
	sw, _ := con.switches.Snapshot()
	r.lights = l
	r.switches = sw
	r.Draw()

	if con.lights.State() == exchange.Live {
		fmt.Fprintf(con.output, "    lights published %v ago\n", ts.Age().Round(time.Millisecond))
	}
}

// Monitor draws the lights and switches with the renderer as they change,
// until the context ends. The lights are followed or polled depending on the
// preferences. The switches are always followed.
//
// Returns the error of the context.
func (con *Console) Monitor(ctx context.Context, r *Renderer) error {
	// polling does not deliver an unwritten slot so draw the panel
	// straight away
	r.Draw()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = monitor.Follow(ctx, con.switches, nil, nil, r.UpdateSwitches)
	}()

	var err error
	if con.Prefs.Follow.Get() {
		lim := rate.NewLimiter(rate.Every(con.Prefs.refresh()), 1)
		err = monitor.Follow(ctx, con.lights, lim, &con.Counts, r.UpdateLights)
	} else {
		err = monitor.Poll(ctx, con.lights, con.Prefs.refresh(), &con.Counts, r.UpdateLights)
	}

	wg.Wait()
	return err
}

// watch draws the lights in place for a duration.
func (con *Console) watch(ctx context.Context, d time.Duration) error {
	wctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	r := NewRenderer(con.output, con.Prefs.Style(), true)
	err := con.Monitor(wctx, r)

	// the end of the watch period is not an error but the end of the parent
	// context is
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil
	}
	return err
}
