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

	"github.com/jetsetilly/orchid/hardware/screen"
	"github.com/jetsetilly/orchid/logger"
)

// Geometry is the screen geometry described by the CRTC registers.
type Geometry struct {
	// the visible area
	Width  int
	Height int

	// the total raster including blanking and sync
	TotalWidth  int
	TotalHeight int
}

// Geometry returns the geometry described by the CRTC registers. The bool
// is false if the registers do not describe a valid geometry, in which case
// the display is off.
//
// The result depends only on the CRTC registers.
func (c CRTC) Geometry() (Geometry, bool) {
	if !c.horizontal() || !c.vertical() {
		return Geometry{}, false
	}
	return Geometry{
		Width:       int(c.HDP) + 1,
		Height:      int(c.VDP) + 1,
		TotalWidth:  int(c.HTP) + 1,
		TotalHeight: int(c.VTR) + 1,
	}, true
}

// the registers hold count-minus-one so all values are adjusted before
// testing. the sync end is the sync position plus the sync width

func (c CRTC) horizontal() bool {
	hdb := uint32(c.HDB) + 1
	hdp := uint32(c.HDP) + 1
	hsp := uint32(c.HSP) + 1
	hse := hsp + uint32(c.HSW) + 1
	htp := uint32(c.HTP) + 1
	return 0 < hdb && hdb <= hdp && hdp < hsp && hsp < hse && hse < htp && hdp >= 320
}

func (c CRTC) vertical() bool {
	vdp := uint32(c.VDP) + 1
	vsp := uint32(c.VSP) + 1
	vse := vsp + uint32(c.VSW) + 1
	vtr := uint32(c.VTR) + 1
	return 0 < vdp && vdp <= vsp && vsp < vse && vse < vtr && vdp >= 234
}

// reconfigure the screen after a change to the CRTC registers. an invalid
// geometry turns the display off, which stops the vsync event
func (gc *MB86292) reconfigure() {
	g, ok := gc.regs.CRTC.Geometry()
	if !ok {
		if !gc.regs.CRTC.horizontal() {
			logger.Log(gc.perm, "CRTC", "Screen off (H)")
		} else {
			logger.Log(gc.perm, "CRTC", "Screen off (V)")
		}
		gc.vsync.Never()
		return
	}

	logger.Logf(gc.perm, "CRTC", "Setting screen to %d x %d (total: %d x %d)", g.Width, g.Height, g.TotalWidth, g.TotalHeight)

	period := screen.Hz(gc.env.Prefs.FramePeriod.Get().(float64))
	gc.scr.Configure(g.TotalWidth, g.TotalHeight, image.Rect(0, 0, g.Width, g.Height), period)
	gc.vsync.Adjust(gc.scr.TimeUntilScanline(g.Height))
}
