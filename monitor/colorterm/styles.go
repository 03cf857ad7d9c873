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
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/orchid/monitor/terminal"
)

// the presentation of each terminal style
var styles = map[terminal.Style]lipgloss.Style{
	terminal.StyleFeedback: lipgloss.NewStyle(),
	terminal.StyleHelp:     lipgloss.NewStyle().Faint(true),
	terminal.StyleRegister: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	terminal.StyleLog:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	terminal.StyleError:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// the prompt is drawn in the same colour as register output
var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)

func render(style terminal.Style, s string) string {
	if style == terminal.StyleError {
		s = "* " + s
	}
	if st, ok := styles[style]; ok {
		return st.Render(s)
	}
	return s
}
