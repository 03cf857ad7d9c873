// This file is part of Orchid.
//
// Orchid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orchid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orchid.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/jetsetilly/orchid/monitor/terminal"
	"github.com/jetsetilly/orchid/script"
	"github.com/spf13/afero"
)

// Monitor is the command line interface to a board.
type Monitor struct {
	b    *board.Board
	term terminal.Terminal

	// the filesystem used by commands that read or write files
	fs afero.Fs

	// lua interpreter used by the SCRIPT command
	lua *script.Script

	// the Run() loop continues while this is true
	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(b *board.Board, term terminal.Terminal, fs afero.Fs) *Monitor {
	return &Monitor{
		b:    b,
		term: term,
		fs:   fs,
		lua:  script.NewScript(b),
	}
}

func (mon *Monitor) prompt() string {
	return fmt.Sprintf("[%d:%03d] > ", mon.b.Scr.Frame(), mon.b.Scr.Scanline())
}

// print a multi-line string one line at a time
func (mon *Monitor) print(style terminal.Style, s string) {
	s = strings.TrimRight(s, "\n")
	for _, l := range strings.Split(s, "\n") {
		mon.term.TermPrintLine(style, l)
	}
}

func (mon *Monitor) printf(style terminal.Style, pattern string, args ...any) {
	mon.print(style, fmt.Sprintf(pattern, args...))
}

// Run the monitor until the QUIT command or until there is no more input.
func (mon *Monitor) Run() error {
	if err := mon.term.Initialise(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer mon.term.CleanUp()
	defer mon.lua.Close()

	mon.running = true
	for mon.running {
		input, err := mon.term.TermRead(mon.prompt())
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		mon.term.TermPrintLine(terminal.StyleEcho, input)

		if err := mon.Command(input); err != nil {
			mon.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// Command parses and runs a single line of input.
func (mon *Monitor) Command(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	cmd, err := lookup(tokens[0])
	if err != nil {
		return err
	}

	args := tokens[1:]
	if len(args) < cmd.minArgs {
		return curated.Errorf(TooFewArguments, cmd.name)
	}
	if cmd.maxArgs >= 0 && len(args) > cmd.maxArgs {
		return curated.Errorf(TooManyArguments, cmd.name)
	}

	return cmd.fn(mon, args)
}
