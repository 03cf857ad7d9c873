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

// processDisplayList runs the display list to completion. a request made by
// the display list itself (with SetRegister) is deferred until the current
// list has finished
func (gc *MB86292) processDisplayList() {
	if !gc.regs.List.LREQ {
		// a request made while running can be withdrawn before the running
		// list finishes
		if gc.running {
			gc.deferred = false
		}
		return
	}

	if gc.running {
		gc.deferred = true
		return
	}

	gc.running = true
	defer func() {
		gc.running = false
	}()

	for {
		gc.runList()
		gc.regs.List.LREQ = false

		if !gc.deferred {
			break // for loop
		}
		gc.deferred = false
		gc.regs.List.LREQ = true
	}
}

func (gc *MB86292) runList() {
	gc.lists++

	gc.cursor = gc.regs.List.LSA
	end := gc.regs.List.LSA + listSpan(gc.regs.List.LCO)

	for gc.cursor < end {
		op := gc.mem.Read32(gc.cursor)

		if gc.dasm.AllowLogging() {
			logger.Log(gc.dasm, "DASM", Decode(gc.mem, gc.cursor))
		}

		cmd := (op >> 16) & 0xff

		switch op >> 24 {
		case OpDrawRectP:
			if cmd == 0x41 {
				gc.bltFill()
			}

		case OpBltCopyAlternateP:
			gc.bltCopy()

		case OpDraw:
			if cmd == 0xc1 {
				gc.Commit()
			}

		case OpSetRegister:
			reg := (op & 0xffff) << 2
			for i := range cmd {
				data := gc.mem.Read32(gc.cursor + 4 + i*4)
				gc.io.Write(DrawBase|((reg+i*4)&0xffff), data, 0xffffffff)
			}

		case OpInterrupt:
			gc.regs.IRQ.IST |= IRQCEND
			gc.checkIRQs()
		}

		gc.cursor += (1 + operands(op)) << 2
	}
}

// fill a rectangle of the frame buffer with the foreground colour. the size
// operands are the exclusive end coordinates of the rectangle
func (gc *MB86292) bltFill() {
	rxs := uint32(gc.mem.Read16(gc.cursor + 0x04))
	rys := uint32(gc.mem.Read16(gc.cursor + 0x06))
	rsizex := uint32(gc.mem.Read16(gc.cursor + 0x08))
	rsizey := uint32(gc.mem.Read16(gc.cursor + 0x0a))

	fc := uint16(gc.regs.Draw.FC)
	stride := gc.regs.FB.XRES << 1

	for y := rys; y < rsizey; y++ {
		dst := gc.regs.FB.Base + y*stride
		for x := rxs; x < rsizex; x++ {
			gc.mem.Write16(dst+(x<<1), fc)
		}
	}
}

// copy a block of pixels. source and destination are addressed as 16-bit
// pixel buffers with their own stride
func (gc *MB86292) bltCopy() {
	saddr := gc.mem.Read32(gc.cursor + 0x04)
	sstride := gc.mem.Read32(gc.cursor + 0x08)
	srx := uint32(gc.mem.Read16(gc.cursor + 0x0c))
	sry := uint32(gc.mem.Read16(gc.cursor + 0x0e))
	daddr := gc.mem.Read32(gc.cursor + 0x10)
	dstride := gc.mem.Read32(gc.cursor + 0x14)
	drx := uint32(gc.mem.Read16(gc.cursor + 0x18))
	dry := uint32(gc.mem.Read16(gc.cursor + 0x1a))
	width := uint32(gc.mem.Read16(gc.cursor + 0x1c))
	height := uint32(gc.mem.Read16(gc.cursor + 0x1e))

	for yi := range height {
		src := saddr + ((sry+yi)*sstride)<<1
		dst := daddr + ((dry+yi)*dstride)<<1
		for xi := range width {
			p := gc.mem.Read16(src + ((srx + xi) << 1))
			gc.mem.Write16(dst+((drx+xi)<<1), p)
		}
	}
}
