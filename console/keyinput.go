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
	"io"
	"strconv"

	"github.com/pkg/term"

	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/logger"
)

// keyInterrupt is the end-of-text character. in cbreak mode it is normally
// turned into a signal by the terminal but a terminal without signals will
// send the character.
const keyInterrupt = 3

// momentary switches and other single key commands.
var keyCommands = map[byte]Command{
	'l':          {Name: "load"},
	'd':          {Name: "dep"},
	'x':          {Name: "exam"},
	's':          {Name: "start"},
	'c':          {Name: "cont"},
	'h':          {Name: "stop"},
	'q':          {Name: "quit"},
	keyInterrupt: {Name: "quit"},
}

// KeyCommand returns the Command for a single keystroke. The keys 0 to 9, a
// and b toggle the switch register switches from left to right. Returns
// false if the key has no meaning.
func KeyCommand(k byte) (Command, bool) {
	switch {
	case k >= '0' && k <= '9':
		return Command{Name: "toggle", Args: []string{strconv.Itoa(int(k - '0'))}}, true
	case k == 'a' || k == 'b':
		return Command{Name: "toggle", Args: []string{strconv.Itoa(int(k-'a') + 10)}}, true
	}
	cmd, ok := keyCommands[k]
	return cmd, ok
}

// OpenTerminal opens the controlling terminal in cbreak mode. The caller must
// Restore() and Close() the terminal when it is no longer needed.
func OpenTerminal() (*term.Term, error) {
	return term.Open("/dev/tty", term.CBreakMode)
}

// KeyInput reads single keystrokes from the input and executes the matching
// command. Keys that have no meaning are ignored. Errors from commands are
// logged because the output is being used by the renderer.
//
// Returns nil when the quit key is pressed or at the end of input. Note that
// a blocked read of the input can not be interrupted by the context.
func (con *Console) KeyInput(ctx context.Context, input io.Reader) error {
	b := make([]byte, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := input.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if n == 0 {
			continue // for loop
		}

		cmd, ok := KeyCommand(b[0])
		if !ok {
			continue // for loop
		}

		if err := con.Execute(ctx, cmd); err != nil {
			if curated.Is(err, Quit) {
				return nil
			}
			logger.Log(logger.Allow, "console", err)
		}
	}
}
