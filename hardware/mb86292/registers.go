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

package mb86292

import "fmt"

// CRTC timing registers. Each register holds the count minus one.
type CRTC struct {
	HTP uint16
	HDP uint16
	HDB uint16
	HSP uint16
	HSW uint8
	VTR uint16
	VSP uint16
	VDP uint16
	VSW uint8
}

// DisplayList registers.
type DisplayList struct {
	LSA  uint32
	LCO  uint32
	LREQ bool
}

// IRQ registers.
type IRQ struct {
	IST  uint32
	MASK uint32
}

// FrameBuffer registers in the drawing engine window.
type FrameBuffer struct {
	Base uint32
	XRES uint32
}

// Draw colour registers.
type Draw struct {
	FC uint32
	BC uint32
}

// ConsoleLayer registers. The geometry of the layer is derived from the mode
// register.
type ConsoleLayer struct {
	CM  uint32
	CDA uint32
}

// Height of the console layer in lines.
func (c ConsoleLayer) Height() uint32 {
	return (c.CM & 0xfff) + 1
}

// Width of the console layer in bytes.
func (c ConsoleLayer) Width() uint32 {
	return ((c.CM >> 16) & 0x3f) * 64
}

// Direct returns true if the console layer is in direct colour mode.
func (c ConsoleLayer) Direct() bool {
	return c.CM&0x80000000 != 0
}

// Registers of the MB86292.
type Registers struct {
	DCE    uint16
	List   DisplayList
	CRTC   CRTC
	IRQ    IRQ
	FB     FrameBuffer
	Draw   Draw
	CLayer ConsoleLayer
}

func (r Registers) String() string {
	return fmt.Sprintf("DCE=%04x LSA=%06x LCO=%06x LREQ=%v IST=%08x MASK=%08x FBR=%07x XRES=%d FC=%04x BC=%04x CM=%08x CDA=%07x",
		r.DCE, r.List.LSA, r.List.LCO, r.List.LREQ, r.IRQ.IST, r.IRQ.MASK,
		r.FB.Base, r.FB.XRES, r.Draw.FC, r.Draw.BC, r.CLayer.CM, r.CLayer.CDA)
}

// combine merges the data into the old value. only bits in the mask change
func combine(old uint32, data uint32, mask uint32) uint32 {
	return (old &^ mask) | (data & mask)
}

func combine16(old uint16, data uint32, mask uint32) uint16 {
	return uint16(combine(uint32(old), data, mask))
}
