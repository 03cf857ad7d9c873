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

//go:build !windows

// Package colorterm implements the Terminal interface for the monitor. It
// puts the terminal into cbreak mode while reading input, which allows for
// a command history. Output is coloured according to the style of the text.
package colorterm

import (
	"bufio"
	"io"
	"os"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/monitor/terminal"
	"github.com/pkg/term"
)

// ColorTerminal implements the terminal.Terminal interface with an ANSI
// terminal.
type ColorTerminal struct {
	tty    *term.Term
	reader *bufio.Reader
	output io.Writer
	editor lineEditor

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	var err error

	ct.tty, err = term.Open("/dev/tty")
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.reader = bufio.NewReader(ct.tty)
	ct.output = os.Stdout

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	if ct.tty == nil {
		return
	}
	_ = ct.tty.Restore()
	_ = ct.tty.Close()
	ct.tty = nil
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed by TermRead()
	if style == terminal.StyleEcho {
		return
	}

	io.WriteString(ct.output, render(style, s))
	io.WriteString(ct.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	if err := ct.tty.SetCbreak(); err != nil {
		return "", curated.Errorf("colorterm: %v", err)
	}
	defer ct.tty.Restore()

	return ct.editor.read(ct.reader, ct.output, promptStyle.Render(prompt))
}
