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

// Package preferences holds the preference values that affect the emulated
// hardware. The values are stored in the global preferences file.
//
//	mb86292.dasm        log display list disassembly
//	vram.size           size of video memory in bytes
//	vram.randomise      fill video memory with random values on reset
//	screen.frameperiod  frequency of the screen in Hz
//	sbp.patch           patch the CPU ROM of SBP cartridges
package preferences
