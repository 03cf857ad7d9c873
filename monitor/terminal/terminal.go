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

// Package terminal defines the operations required by the monitor's command
// line interface. The plainterm and colorterm packages are implementations.
package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. Implementations can choose how to
// present the different styles.
type Style int

// List of terminal styles.
const (
	// the input from the user as normalised by the monitor. implementations
	// that echo input as it is typed will not need to output this
	StyleEcho Style = iota

	// the output of a command
	StyleFeedback

	// help text
	StyleHelp

	// the output of register and status commands
	StyleRegister

	// log entries
	StyleLog

	// error messages
	StyleError
)

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "terminal: user interrupt"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input without the line terminator.
	// The io.EOF error is returned when there is no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
