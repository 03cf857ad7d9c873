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

// Package screen provides the timing services used by the emulated devices.
//
// The Scheduler keeps virtual time. Devices create Timers and adjust them to
// fire after a duration. Time only advances when Run() is called and timers
// fire in time order. A timer callback is free to adjust any timer, including
// its own.
//
// The Screen models the raster of a display. Once configured with the total
// size of the raster, the visible area and the frame period, the Screen can
// report the position of the beam and the time until the beam reaches a
// scanline.
package screen
