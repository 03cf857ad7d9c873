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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// each entry is emphasised and the detail is left as it is.
type Colorizer struct {
	out io.Writer
	tag lipgloss.Style
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out: out,
		tag: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
	}
}

// Write implements the io.Writer interface. The number of bytes returned is
// the number of bytes consumed from p and not the number of bytes written to
// the underlying writer, which will be larger because of styling.
func (c Colorizer) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			l = c.tag.Render(tag) + ": " + detail
		}
		if _, err := io.WriteString(c.out, l+"\n"); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
