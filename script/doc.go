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

// Package script runs Lua scripts against an Orchid board. Scripts are used to
// program the registers of the graphics controller and to fill video memory
// before running the board for a number of frames.
//
// The functions are in the "orchid" table:
//
//	orchid.write(addr, value)      write a 32-bit register
//	orchid.write8(addr, value)     write an 8-bit register
//	orchid.write16(addr, value)    write a 16-bit register
//	orchid.read(addr)              read a 32-bit register
//	orchid.read16(addr)            read a 16-bit register
//	orchid.poke(addr, value)       write a 32-bit word to video memory
//	orchid.poke16(addr, value)     write a 16-bit word to video memory
//	orchid.peek(addr)              read a 32-bit word from video memory
//	orchid.fill(addr, n, value)    fill n 16-bit words of video memory
//	orchid.frames(n)               run the board for n frames
//	orchid.reset()                 reset the board
//	orchid.irq()                   level of the interrupt line
//	orchid.edges()                 number of interrupt edges since reset
//	orchid.log(msg)                add an entry to the log
//
// The register names of the graphics controller are predefined as globals.
// For example:
//
//	orchid.write(HTP, 799)
//	orchid.write(LSA, 0x1000)
//	orchid.write(LREQ, 1)
package script
