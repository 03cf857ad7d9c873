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

package colorterm

import (
	"io"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/monitor/terminal"
)

// maximum number of entries in the command history
const maxHistory = 100

// lineEditor reads a single line of input a byte at a time. the terminal
// should be in cbreak mode so that the bytes arrive as they are typed
type lineEditor struct {
	history [][]byte
}

func (ed *lineEditor) redraw(w io.Writer, prompt string, input []byte) {
	io.WriteString(w, clearLine)
	io.WriteString(w, prompt)
	w.Write(input)
}

// addHistory appends the input to the history unless it is the same as the
// most recent entry
func (ed *lineEditor) addHistory(input []byte) {
	if len(input) == 0 {
		return
	}
	if len(ed.history) > 0 && string(ed.history[len(ed.history)-1]) == string(input) {
		return
	}
	ed.history = append(ed.history, append([]byte{}, input...))
	if len(ed.history) > maxHistory {
		ed.history = ed.history[1:]
	}
}

func (ed *lineEditor) read(r io.ByteReader, w io.Writer, prompt string) (string, error) {
	input := make([]byte, 0, 80)

	// position in history. equal to len(history) when editing new input
	hist := len(ed.history)

	// the input being edited before the user moved into the history
	var pending []byte

	ed.redraw(w, prompt, input)

	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}

		switch b {
		case keyCarriageReturn, keyLineFeed:
			ed.addHistory(input)
			io.WriteString(w, "\n")
			return string(input), nil

		case keyInterrupt:
			io.WriteString(w, "\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyEOF:
			if len(input) == 0 {
				io.WriteString(w, "\n")
				return "", io.EOF
			}

		case keyBackspace, keyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				ed.redraw(w, prompt, input)
			}

		case keyTab:

		case keyEsc:
			b, err = r.ReadByte()
			if err != nil {
				return "", err
			}
			if b != escCursor {
				continue
			}
			b, err = r.ReadByte()
			if err != nil {
				return "", err
			}

			switch b {
			case cursorUp:
				if hist > 0 {
					if hist == len(ed.history) {
						pending = append(pending[:0], input...)
					}
					hist--
					input = append(input[:0], ed.history[hist]...)
					ed.redraw(w, prompt, input)
				}
			case cursorDown:
				if hist < len(ed.history) {
					hist++
					if hist == len(ed.history) {
						input = append(input[:0], pending...)
					} else {
						input = append(input[:0], ed.history[hist]...)
					}
					ed.redraw(w, prompt, input)
				}
			case cursorForward, cursorBackward:
				// the cursor always stays at the end of the input
			}

		default:
			if b >= ' ' && b < keyDelete {
				input = append(input, b)
				w.Write([]byte{b})
			}
		}
	}
}
