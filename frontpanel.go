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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/frontpanel/console"
	"github.com/jetsetilly/frontpanel/console/ansi"
	"github.com/jetsetilly/frontpanel/exchange"
	"github.com/jetsetilly/frontpanel/logger"
	"github.com/jetsetilly/frontpanel/machine"
	"github.com/jetsetilly/frontpanel/modalflag"
	"github.com/jetsetilly/frontpanel/panel"
	"github.com/jetsetilly/frontpanel/performance"
	"github.com/jetsetilly/frontpanel/prefs"
	"github.com/jetsetilly/frontpanel/statsview"
	"github.com/jetsetilly/frontpanel/version"
)

// exit values.
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// an interrupt ends the context. line input sees ctrl-c itself because
	// liner puts the terminal in raw mode while a line is being edited
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "PERFORMANCE":
		err = perform(ctx, md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "override preferences for this run (key::value; ...)")
	keys := md.AddBool("keys", false, "single key input instead of command lines")
	poll := md.AddBool("poll", false, "poll the lights instead of following them")
	rate := md.AddFloat64("rate", 0, "maximum number of times per second the lights are published while running. zero for no limit")
	log := md.AddBool("log", false, "echo log to stderr")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("The optional program file is a list of octal words. Each line can begin with\n" +
		"an address followed by a colon. Words without an address are loaded from 0200.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(runPrefs(md, *prefsOverride, *keys, *poll, *rate))
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}()

	mp, err := machine.NewPreferences()
	if err != nil {
		return err
	}
	cp, err := console.NewPreferences()
	if err != nil {
		return err
	}

	lights := exchange.NewSlot[panel.Lights]()
	switches := exchange.NewSlot[panel.Switches]()
	m := machine.NewMachine(mp, lights, switches)

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		err = m.LoadProgram(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "machine", "loaded %s", md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if stats != nil && *stats {
		statsview.Launch(ctx, md.Output)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	machineDone := make(chan error, 1)
	go func() {
		machineDone <- m.Run(ctx)
	}()

	con := console.NewConsole(cp, lights, switches, md.Output)
	if cp.KeyMode.Get() {
		err = keyMode(ctx, con, md.Output)
	} else {
		err = lineMode(ctx, con, md.Output)
	}

	cancel()
	<-machineDone

	logger.Logf(logger.Allow, "machine", "%d instructions executed", m.Instructions())

	return err
}

// runPrefs returns the command line preferences for the RUN mode. flags that
// are also preferences follow the --prefs value so that they take precedence.
func runPrefs(md *modalflag.Modes, override string, keys bool, poll bool, rate float64) string {
	cl := []string{override}
	if keys {
		cl = append(cl, "console.keymode::true")
	}
	if poll {
		cl = append(cl, "console.follow::false")
	}

	// the rate flag has no default of its own. it only overrides the
	// preference if it has been used
	md.Visit(func(flag string) {
		if flag == "rate" {
			cl = append(cl, fmt.Sprintf("machine.publishrate::%v", rate))
		}
	})

	return strings.Join(cl, ";")
}

func lineMode(ctx context.Context, con *console.Console, output io.Writer) error {
	ln := console.NewLiner()
	defer ln.Close()

	fmt.Fprintf(output, "%s. type help for a list of commands\n", version.Summary())
	return con.LineInput(ctx, ln)
}

func keyMode(ctx context.Context, con *console.Console, output io.Writer) error {
	t, err := console.OpenTerminal()
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Restore()
		_ = t.Close()
	}()

	fmt.Fprintf(output, "%s\n", version.Summary())
	fmt.Fprintf(output, "0-9 a b: switch register   l: load add   d: dep   x: exam   s: start   c: cont   h: stop   q: quit\n\n")

	fmt.Fprint(output, ansi.HideCursor)
	defer fmt.Fprint(output, ansi.ShowCursor)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := console.NewRenderer(output, con.Prefs.Style(), true)
	monitorDone := make(chan error, 1)
	go func() {
		monitorDone <- con.Monitor(ctx, r)
	}()

	// a read from the terminal can't be interrupted so the input runs in its
	// own goroutine. it is abandoned if the context ends first
	inputDone := make(chan error, 1)
	go func() {
		inputDone <- con.KeyInput(ctx, t)
	}()

	select {
	case err = <-inputDone:
	case <-ctx.Done():
	}

	cancel()
	<-monitorDone

	return err
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	readers := md.AddInt("readers", 4, "number of reading goroutines. half poll and half follow")
	writers := md.AddInt("writers", 1, "number of writing goroutines")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all, none (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(ctx, md.Output, prf, performance.Params{
		Duration: *duration,
		Readers:  *readers,
		Writers:  *writers,
	})
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(md.Output, r)
		return nil
	}

	fmt.Fprintln(md.Output, version.Summary())
	return nil
}
