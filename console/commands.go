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
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jetsetilly/frontpanel/curated"
)

// Sentinal errors returned by ParseCommand() and Execute().
const (
	UnknownCommand  = "console: unknown command (%s)"
	ArgumentCount   = "console: %s: wrong number of arguments (usage: %s)"
	InvalidArgument = "console: %s: %v"
	DumpError       = "console: dump: %v"

	// Quit is returned by Execute() when the quit command is executed. It is
	// not an error as such.
	Quit = "console: quit"
)

// Command is a single instruction for the console. Names are always lower
// case.
type Command struct {
	Name string
	Args []string
}

func (cmd Command) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", cmd.Name, strings.Join(cmd.Args, " ")))
}

type definition struct {
	minArgs int
	maxArgs int
	usage   string
	help    string
}

var definitions = map[string]definition{
	"sr":     {1, 1, "sr <octal>", "set the switch register"},
	"toggle": {1, 1, "toggle <bit>", "toggle one switch of the switch register. bit 0 is the leftmost switch"},
	"df":     {1, 1, "df <octal>", "set the data field switches"},
	"if":     {1, 1, "if <octal>", "set the instruction field switches"},
	"load":   {0, 0, "load", "press the Load Add key"},
	"dep":    {0, 0, "dep", "press the Dep key"},
	"exam":   {0, 0, "exam", "press the Exam key"},
	"start":  {0, 0, "start", "press the Start key"},
	"cont":   {0, 0, "cont", "press the Cont key"},
	"stop":   {0, 0, "stop", "press the Stop key"},
	"sstep":  {1, 1, "sstep on|off", "set the single step switch"},
	"sinst":  {1, 1, "sinst on|off", "set the single instruction switch"},
	"show":   {0, 0, "show", "draw the lights and switches"},
	"watch":  {0, 1, "watch [duration]", "draw the lights as they change for a duration (default 5s)"},
	"dump":   {0, 1, "dump [file]", "write a graphviz diagram of the lights and switches"},
	"log":    {0, 1, "log [n|all|clear]", "show new log entries, the last n entries or all entries. or clear the log"},
	"prefs":  {0, 1, "prefs [defaults|save]", "show the console preferences. optionally revert to the defaults or save first"},
	"help":   {0, 0, "help", "list the commands"},
	"quit":   {0, 0, "quit", "leave the program"},
}

// sorted list of command names.
var commandNames []string

func init() {
	for n := range definitions {
		commandNames = append(commandNames, n)
	}
	sort.Strings(commandNames)
}

// ParseCommand splits the input into a Command and checks it against the
// list of commands. An empty input returns a Command with an empty name and
// no error.
func ParseCommand(input string) (Command, error) {
	f := strings.Fields(input)
	if len(f) == 0 {
		return Command{}, nil
	}

	cmd := Command{
		Name: strings.ToLower(f[0]),
		Args: f[1:],
	}

	return cmd, cmd.validate()
}

func (cmd Command) validate() error {
	def, ok := definitions[cmd.Name]
	if !ok {
		return curated.Errorf(UnknownCommand, cmd.Name)
	}
	if len(cmd.Args) < def.minArgs || len(cmd.Args) > def.maxArgs {
		return curated.Errorf(ArgumentCount, cmd.Name, def.usage)
	}
	return nil
}

// Complete returns the command names that begin with the input. Suitable for
// use as a liner.Completer.
func Complete(line string) []string {
	line = strings.ToLower(strings.TrimLeft(line, " "))
	if strings.Contains(line, " ") {
		return nil
	}

	var c []string
	for _, n := range commandNames {
		if strings.HasPrefix(n, line) {
			c = append(c, n)
		}
	}
	return c
}

// Help writes the list of commands to the output.
func Help(output io.Writer) {
	w := 0
	for _, n := range commandNames {
		w = max(w, len(definitions[n].usage))
	}
	for _, n := range commandNames {
		d := definitions[n]
		fmt.Fprintf(output, "  %-*s  %s\n", w, d.usage, d.help)
	}
}
