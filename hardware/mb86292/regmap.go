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

import "github.com/jetsetilly/orchid/logger"

// Register addresses in the host and display window.
const (
	IST  = 0x00020
	MASK = 0x00024
	LSA  = 0x00040
	LCO  = 0x00044
	LREQ = 0x00048
	DCE  = 0x10002
	HTP  = 0x10006
	HDP  = 0x10008
	HDB  = 0x1000a
	HSP  = 0x1000c
	HSW  = 0x1000e
	VSW  = 0x1000f
	VTR  = 0x10012
	VSP  = 0x10014
	VDP  = 0x10016
	CM   = 0x10020
	CDA  = 0x10028
)

// DrawBase is the start of the drawing engine window.
const DrawBase = 0x30000

// Register addresses in the drawing engine window. The offsets relative to
// DrawBase are the addresses used by the SetRegister display list command.
const (
	FBR  = DrawBase + 0x0440
	XRES = DrawBase + 0x0444
	FC   = DrawBase + 0x0480
	BC   = DrawBase + 0x0484
)

// installRegisters adds every register to the address map
func (gc *MB86292) installRegisters() error {
	r := &gc.regs

	type def struct {
		offset uint32
		width  uint32
		name   string
		read   func(mask uint32) uint32
		write  func(data uint32, mask uint32)
	}

	// a 12-bit CRTC register. every write causes the CRTC to be reconfigured
	crtc := func(offset uint32, name string, reg *uint16) def {
		return def{offset, 2, name,
			func(_ uint32) uint32 { return uint32(*reg) },
			func(data uint32, mask uint32) {
				*reg = combine16(*reg, data, mask) & 0xfff
				logger.Logf(gc.perm, "CRTC", "%s %04x & %04x -> %d", name, data, mask, *reg+1)
				gc.reconfigure()
			},
		}
	}

	// the 6-bit sync width registers ignore the mask
	width := func(offset uint32, name string, reg *uint8) def {
		return def{offset, 1, name,
			func(_ uint32) uint32 { return uint32(*reg) },
			func(data uint32, _ uint32) {
				*reg = uint8(data & 0x3f)
				logger.Logf(gc.perm, "CRTC", "%s %04x -> %d", name, data, *reg+1)
				gc.reconfigure()
			},
		}
	}

	// a 32-bit register masked to the width of the field
	field := func(offset uint32, name string, reg *uint32, fieldMask uint32) def {
		return def{offset, 4, name,
			func(_ uint32) uint32 { return *reg },
			func(data uint32, mask uint32) {
				*reg = combine(*reg, data, mask) & fieldMask
				logger.Logf(gc.perm, gc.ID(), "%s %08x & %08x -> %08x", name, data, mask, *reg)
			},
		}
	}

	defs := []def{
		{IST, 4, "IST",
			func(_ uint32) uint32 { return r.IRQ.IST },
			func(data uint32, mask uint32) {
				// clear-on-write. lanes not in the mask are unaffected
				r.IRQ.IST &= data | ^mask
				gc.checkIRQs()
				logger.Logf(gc.perm, gc.ID(), "IST ack %08x & %08x -> %08x", data, mask, r.IRQ.IST)
			},
		},
		{MASK, 4, "MASK",
			func(_ uint32) uint32 { return r.IRQ.MASK },
			func(data uint32, mask uint32) {
				r.IRQ.MASK = combine(r.IRQ.MASK, data, mask)
				gc.checkIRQs()
				logger.Logf(gc.perm, gc.ID(), "MASK %08x & %08x -> %08x", data, mask, r.IRQ.MASK)
			},
		},
		field(LSA, "LSA", &r.List.LSA, 0xffffff),
		field(LCO, "LCO", &r.List.LCO, 0xffffff),
		{LREQ, 1, "LREQ",
			func(_ uint32) uint32 {
				if r.List.LREQ {
					return 1
				}
				return 0
			},
			func(data uint32, _ uint32) {
				r.List.LREQ = data&0x01 == 0x01
				logger.Logf(gc.perm, gc.ID(), "LREQ %02x", data)
				gc.processDisplayList()
			},
		},
		{DCE, 2, "DCE",
			func(_ uint32) uint32 { return uint32(r.DCE) },
			func(data uint32, mask uint32) {
				r.DCE = combine16(r.DCE, data, mask)
				logger.Logf(gc.perm, gc.ID(), "DCE %04x & %04x", data, mask)
			},
		},
		crtc(HTP, "HTP", &r.CRTC.HTP),
		crtc(HDP, "HDP", &r.CRTC.HDP),
		crtc(HDB, "HDB", &r.CRTC.HDB),
		crtc(HSP, "HSP", &r.CRTC.HSP),
		width(HSW, "HSW", &r.CRTC.HSW),
		width(VSW, "VSW", &r.CRTC.VSW),
		crtc(VTR, "VTR", &r.CRTC.VTR),
		crtc(VSP, "VSP", &r.CRTC.VSP),
		crtc(VDP, "VDP", &r.CRTC.VDP),
		{CM, 4, "CM",
			func(_ uint32) uint32 { return r.CLayer.CM },
			func(data uint32, mask uint32) {
				r.CLayer.CM = combine(r.CLayer.CM, data, mask)
				logger.Logf(gc.perm, gc.ID(), "CM %08x & %08x -> CW %d CH %d CC %v",
					data, mask, r.CLayer.Width(), r.CLayer.Height(), r.CLayer.Direct())
			},
		},
		field(CDA, "CDA", &r.CLayer.CDA, 0x3ffffff),
		field(FBR, "FBR", &r.FB.Base, 0x3ffffff),
		field(XRES, "XRES", &r.FB.XRES, 0xfff),
		field(FC, "FC", &r.Draw.FC, 0xffff),
		field(BC, "BC", &r.Draw.BC, 0xffff),
	}

	for _, d := range defs {
		if err := gc.io.Install(d.offset, d.width, d.name, d.read, d.write); err != nil {
			return err
		}
	}

	return nil
}
