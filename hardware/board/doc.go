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

// Package board wires the MB86292 graphics controller to its video memory and
// to a virtual screen. The result is the smallest runnable Orchid system: the
// host writes registers and video memory, the board runs frames and the
// output can be scanned out to an image.
//
// The board keeps track of the interrupt line. The number of rising edges is
// counted so that a monitor can show interrupt activity without installing
// its own callback.
package board
