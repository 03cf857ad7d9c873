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
	"encoding/binary"

	"github.com/jetsetilly/orchid/curated"
)

// Sentinal error patterns.
const (
	SnapshotLength  = "mb86292: snapshot: wrong length (%d bytes)"
	SnapshotVersion = "mb86292: snapshot: unsupported version (%d)"
)

const snapshotVersion = 1

// the order of fields is the layout of the snapshot. derived values and the
// display list cursor are not saved
type snapshot struct {
	Version uint8
	DCE     uint16
	LSA     uint32
	LCO     uint32
	LREQ    bool
	HTP     uint16
	HDP     uint16
	HDB     uint16
	HSP     uint16
	HSW     uint8
	VTR     uint16
	VSP     uint16
	VDP     uint16
	VSW     uint8
	IST     uint32
	MASK    uint32
	FBR     uint32
	XRES    uint32
	FC      uint32
	BC      uint32
	CM      uint32
	CDA     uint32
}

// Snapshot implements the device.Serializable interface.
func (gc *MB86292) Snapshot() []byte {
	r := gc.regs
	s := snapshot{
		Version: snapshotVersion,
		DCE:     r.DCE,
		LSA:     r.List.LSA,
		LCO:     r.List.LCO,
		LREQ:    r.List.LREQ,
		HTP:     r.CRTC.HTP,
		HDP:     r.CRTC.HDP,
		HDB:     r.CRTC.HDB,
		HSP:     r.CRTC.HSP,
		HSW:     r.CRTC.HSW,
		VTR:     r.CRTC.VTR,
		VSP:     r.CRTC.VSP,
		VDP:     r.CRTC.VDP,
		VSW:     r.CRTC.VSW,
		IST:     r.IRQ.IST,
		MASK:    r.IRQ.MASK,
		FBR:     r.FB.Base,
		XRES:    r.FB.XRES,
		FC:      r.Draw.FC,
		BC:      r.Draw.BC,
		CM:      r.CLayer.CM,
		CDA:     r.CLayer.CDA,
	}

	// every field of the snapshot type is fixed size so encoding cannot fail
	data, _ := binary.Append(nil, binary.LittleEndian, &s)
	return data
}

// Plumb implements the device.Serializable interface. The screen geometry and
// the vsync event are recalculated from the restored registers and the
// interrupt line is re-evaluated.
func (gc *MB86292) Plumb(data []byte) error {
	var s snapshot
	if len(data) != binary.Size(&s) {
		return curated.Errorf(SnapshotLength, len(data))
	}
	if _, err := binary.Decode(data, binary.LittleEndian, &s); err != nil {
		return curated.Errorf("mb86292: snapshot: %v", err)
	}
	if s.Version != snapshotVersion {
		return curated.Errorf(SnapshotVersion, s.Version)
	}

	gc.regs = Registers{
		DCE: s.DCE,
		List: DisplayList{
			LSA:  s.LSA & 0xffffff,
			LCO:  s.LCO & 0xffffff,
			LREQ: s.LREQ,
		},
		CRTC: CRTC{
			HTP: s.HTP & 0xfff,
			HDP: s.HDP & 0xfff,
			HDB: s.HDB & 0xfff,
			HSP: s.HSP & 0xfff,
			HSW: s.HSW & 0x3f,
			VTR: s.VTR & 0xfff,
			VSP: s.VSP & 0xfff,
			VDP: s.VDP & 0xfff,
			VSW: s.VSW & 0x3f,
		},
		IRQ: IRQ{
			IST:  s.IST,
			MASK: s.MASK,
		},
		FB: FrameBuffer{
			Base: s.FBR & 0x3ffffff,
			XRES: s.XRES & 0xfff,
		},
		Draw: Draw{
			FC: s.FC & 0xffff,
			BC: s.BC & 0xffff,
		},
		CLayer: ConsoleLayer{
			CM:  s.CM,
			CDA: s.CDA & 0x3ffffff,
		},
	}
	gc.cursor = gc.regs.List.LSA

	gc.reconfigure()
	gc.checkIRQs()

	return nil
}
