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

// Package mb86292 emulates the Fujitsu MB86292 "Orchid" graphics controller.
//
// The emulation covers the register file, the CRTC timing registers, the
// interrupt controller, the display list processor and the scanout of the
// frame buffer. The geometry engine is not emulated. Geometry commands in a
// display list are decoded and skipped.
//
// The registers are in two windows of the device's address space. The host
// and display window is at 0x00000 to 0x1ffff and the drawing engine window is
// at 0x30000 to 0x3ffff. Accesses are 32-bit little-endian with a byte lane
// mask. The Read8/16/32 and Write8/16/32 functions are convenient for narrow
// accesses.
//
// Writing one to the LREQ register runs the display list at LSA to
// completion before the write returns. An LCO value of zero means a list
// spanning 0x1000000 bytes.
//
// Video memory addresses wrap at the end of video memory. See the vram
// package.
//
// Interlaced timing is not supported. The CRTC is always progressive.
package mb86292
