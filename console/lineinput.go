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

	"github.com/peterh/liner"

	"github.com/jetsetilly/frontpanel/curated"
	"github.com/jetsetilly/frontpanel/logger"
	"github.com/jetsetilly/frontpanel/panel"
)

// LineSource is a source of command lines. It is satisfied by *liner.State.
type LineSource interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// NewLiner creates a liner.State that is ready to be used with LineInput().
// The caller must Close() it when it is no longer needed so that the
// terminal is restored.
func NewLiner() *liner.State {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(Complete)
	return ln
}

// the prompt shows the program counter and whether the machine is running.
func (con *Console) prompt() string {
	l, _ := con.lights.Snapshot()
	if l.Run {
		return fmt.Sprintf("[%s run] > ", panel.Octal(l.PC, 4))
	}
	return fmt.Sprintf("[%s] > ", panel.Octal(l.PC, 4))
}

// LineInput reads and executes commands from the source until the quit
// command, the end of input, or the end of the context. Errors from commands
// are printed and do not end the input.
//
// Returns nil unless there is a problem with the source or the context ends.
func (con *Console) LineInput(ctx context.Context, src LineSource) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := src.Prompt(con.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return err
		}

		cmd, err := ParseCommand(input)
		if err == nil && cmd.Name != "" {
			src.AppendHistory(input)
			err = con.Execute(ctx, cmd)
		}

		if err != nil {
			if curated.Is(err, Quit) {
				return nil
			}
			fmt.Fprintln(con.output, err)

			// errors that aren't the result of a mistyped command are kept
			if !curated.IsAny(err) {
				logger.Log(logger.Allow, "console", err)
			}
		}
	}
}
