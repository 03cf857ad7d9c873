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

// Package gui contains the parts shared by the viewers that present the
// screen of an Orchid board. The viewers are in the sdlscreen and tcellscreen
// sub-packages.
//
// A viewer translates its own input events into Actions and hands them to a
// Loop, which runs the board and paces the emulation.
package gui
