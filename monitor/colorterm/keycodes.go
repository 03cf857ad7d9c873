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

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3 // end-of-text character
	keyEOF            = 4 // end-of-transmission character
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of ASCII codes for characters that can follow keyEsc
const (
	escCursor = '['
)

// list of ASCII codes for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// ANSI sequence to clear the current line and return the cursor to the start
const clearLine = "\r\x1b[K"
