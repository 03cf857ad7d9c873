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

import (
	"image"
	"image/color"
)

// Commit copies the console layer to the frame buffer. The area copied is
// the display area described by the CRTC registers.
func (gc *MB86292) Commit() {
	r := &gc.regs
	stride := r.FB.XRES << 1
	for y := uint32(0); y <= uint32(r.CRTC.VDP); y++ {
		dst := r.FB.Base + y*stride
		src := r.CLayer.CDA + r.CLayer.Width()*y
		for x := uint32(0); x <= uint32(r.CRTC.HDP); x++ {
			gc.mem.Write16(dst+(x<<1), gc.mem.Read16(src+(x<<1)))
		}
	}
}

// Enabled returns true if the display controller is enabled and at least one
// layer is enabled.
func (gc *MB86292) Enabled() bool {
	return gc.regs.DCE&0x8000 != 0 && gc.regs.DCE&0x000f != 0
}

// pal5bit expands a 5-bit colour component to 8 bits
func pal5bit(v uint16) uint8 {
	v &= 0x1f
	return uint8(v<<3 | v>>2)
}

// Pal555 converts a frame buffer pixel to a colour. The pixel is packed with
// red in bits 14 to 10, green in bits 9 to 5 and blue in bits 4 to 0. Bit 15
// is ignored.
func Pal555(pixel uint16) color.RGBA {
	return color.RGBA{
		R: pal5bit(pixel >> 10),
		G: pal5bit(pixel >> 5),
		B: pal5bit(pixel),
		A: 0xff,
	}
}

// Scanout draws the region of the frame buffer to the image. The region is
// clipped to the bounds of the image. If the display is not enabled the region
// is filled with black.
//
// Scanout does not change the state of the device.
func (gc *MB86292) Scanout(region image.Rectangle, dst *image.RGBA) {
	region = region.Intersect(dst.Bounds())
	if region.Empty() {
		return
	}

	if !gc.Enabled() {
		black := color.RGBA{A: 0xff}
		for y := region.Min.Y; y < region.Max.Y; y++ {
			for x := region.Min.X; x < region.Max.X; x++ {
				dst.SetRGBA(x, y, black)
			}
		}
		return
	}

	stride := gc.regs.FB.XRES << 1
	for y := region.Min.Y; y < region.Max.Y; y++ {
		src := gc.regs.FB.Base + uint32(y)*stride
		for x := region.Min.X; x < region.Max.X; x++ {
			dst.SetRGBA(x, y, Pal555(gc.mem.Read16(src+uint32(x)<<1)))
		}
	}
}
