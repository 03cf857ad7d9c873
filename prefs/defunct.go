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

package prefs

import "slices"

// list of preference keys that are no longer used. they are dropped from the
// preferences file the next time it is saved.
var defunct = []string{
	"mb86292.viewer",
	"mb86292.viewer.offset",
}

func isDefunct(key string) bool {
	return slices.Contains(defunct, key)
}
