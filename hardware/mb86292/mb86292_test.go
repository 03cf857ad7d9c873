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

package mb86292_test

import (
	"bytes"
	"image"
	"testing"
	"time"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/hardware/device"
	"github.com/jetsetilly/orchid/hardware/mb86292"
	"github.com/jetsetilly/orchid/hardware/memory/vram"
	"github.com/jetsetilly/orchid/hardware/preferences"
	"github.com/jetsetilly/orchid/hardware/screen"
	"github.com/jetsetilly/orchid/test"
	"github.com/spf13/afero"
)

type rig struct {
	gc  *mb86292.MB86292
	mem *vram.VRAM
	sch *screen.Scheduler
	scr *screen.Screen
}

func newRig(t *testing.T) *rig {
	t.Helper()

	prefs, err := preferences.NewPreferencesFs(afero.NewMemMapFs(), "preferences")
	test.DemandSuccess(t, err)

	r := &rig{}
	r.sch = screen.NewScheduler()
	r.scr = screen.NewScreen(r.sch, screen.Hz(60))

	env, err := environment.NewEnvironment(r.scr, prefs)
	test.DemandSuccess(t, err)
	env.Normalise()

	r.mem, err = vram.NewVRAM(env, 0x400000)
	test.DemandSuccess(t, err)

	r.gc, err = mb86292.NewMB86292(env, r.mem, r.sch, r.scr)
	test.DemandSuccess(t, err)

	return r
}

// write the words to video memory starting at the address
func (r *rig) list(addr uint32, words ...uint32) {
	for i, w := range words {
		r.mem.Write32(addr+uint32(i*4), w)
	}
}

// run the display list at the address
func (r *rig) run(lsa uint32, lco uint32) {
	r.gc.Write32(mb86292.LSA, lsa)
	r.gc.Write32(mb86292.LCO, lco)
	r.gc.Write8(mb86292.LREQ, 1)
}

// program the CRTC for a 640x480 display
func (r *rig) crtc640x480() {
	r.gc.Write16(mb86292.HTP, 799)
	r.gc.Write16(mb86292.HDB, 639)
	r.gc.Write16(mb86292.HDP, 639)
	r.gc.Write16(mb86292.HSP, 655)
	r.gc.Write8(mb86292.HSW, 95)
	r.gc.Write16(mb86292.VTR, 524)
	r.gc.Write16(mb86292.VDP, 479)
	r.gc.Write16(mb86292.VSP, 489)
	r.gc.Write8(mb86292.VSW, 1)
}

func TestInterfaces(t *testing.T) {
	r := newRig(t)
	test.DemandImplements[device.Addressable](t, r.gc)
	test.DemandImplements[device.Resettable](t, r.gc)
	test.DemandImplements[device.Serializable](t, r.gc)
	test.DemandImplements[device.Named](t, r.gc)
	test.ExpectEquality(t, r.gc.ID(), "MB86292")
}

func TestMaskedWrite(t *testing.T) {
	r := newRig(t)

	regs := []struct {
		addr  uint32
		width uint32
	}{
		{mb86292.MASK, 0xffffffff},
		{mb86292.LSA, 0xffffff},
		{mb86292.LCO, 0xffffff},
		{mb86292.CM, 0xffffffff},
		{mb86292.CDA, 0x3ffffff},
		{mb86292.FBR, 0x3ffffff},
		{mb86292.XRES, 0xfff},
		{mb86292.FC, 0xffff},
		{mb86292.BC, 0xffff},
	}

	masks := []uint32{0xffffffff, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000, 0x0000ffff, 0xffff0000}
	data := []uint32{0x12345678, 0xffffffff, 0x00000000, 0xa5a55a5a}

	for _, reg := range regs {
		for _, m := range masks {
			for _, d := range data {
				old := r.gc.Read(reg.addr, 0xffffffff)
				r.gc.Write(reg.addr, d, m)
				expected := ((old &^ m) | (d & m)) & reg.width
				test.ExpectEquality(t, r.gc.Read(reg.addr, 0xffffffff), expected, reg.addr, m, d)
			}
		}
	}

	// the 16-bit registers share a dword with their neighbours
	r.gc.Write(mb86292.DCE&^3, 0x80010000, 0xffff0000)
	test.ExpectEquality(t, r.gc.Registers().DCE, uint16(0x8001))
	r.gc.Write(mb86292.DCE&^3, 0x00ff0000, 0x00ff0000)
	test.ExpectEquality(t, r.gc.Registers().DCE, uint16(0x80ff))

	// the 12-bit CRTC registers are truncated
	r.gc.Write16(mb86292.HTP, 0xffff)
	test.ExpectEquality(t, r.gc.Registers().CRTC.HTP, uint16(0xfff))
	r.gc.Write8(mb86292.HSW, 0xff)
	test.ExpectEquality(t, r.gc.Registers().CRTC.HSW, uint8(0x3f))
}

func TestConsoleLayerGeometry(t *testing.T) {
	r := newRig(t)
	r.gc.Write32(mb86292.CM, 0x800501df)
	cl := r.gc.Registers().CLayer
	test.ExpectEquality(t, cl.Width(), uint32(5*64))
	test.ExpectEquality(t, cl.Height(), uint32(0x1e0))
	test.ExpectEquality(t, cl.Direct(), true)
}

func TestInterruptStatusClearOnWrite(t *testing.T) {
	r := newRig(t)

	// vsync and command end
	r.crtc640x480()
	r.sch.Run(time.Second / 60)
	r.list(0x1000, 0xfd000000)
	r.run(0x1000, 1)
	test.ExpectEquality(t, r.gc.Registers().IRQ.IST, uint32(mb86292.IRQVSYNC|mb86292.IRQCEND))

	// writing ones never sets a bit
	r.gc.Write32(mb86292.IST, 0xffffffff)
	test.ExpectEquality(t, r.gc.Registers().IRQ.IST, uint32(mb86292.IRQVSYNC|mb86292.IRQCEND))

	// zero bits clear
	r.gc.Write32(mb86292.IST, ^uint32(mb86292.IRQCEND))
	test.ExpectEquality(t, r.gc.Registers().IRQ.IST, uint32(mb86292.IRQVSYNC))

	r.gc.Write32(mb86292.IST, 0)
	test.ExpectEquality(t, r.gc.Registers().IRQ.IST, uint32(0))
}

func TestCRTC(t *testing.T) {
	r := newRig(t)

	r.crtc640x480()
	test.ExpectEquality(t, r.scr.Configured(), true)
	test.ExpectEquality(t, r.scr.Visible(), image.Rect(0, 0, 640, 480))
	w, h := r.scr.Total()
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 525)

	g, ok := r.gc.Registers().CRTC.Geometry()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, g, mb86292.Geometry{Width: 640, Height: 480, TotalWidth: 800, TotalHeight: 525})

	// vsync is running
	r.gc.Write32(mb86292.MASK, mb86292.IRQVSYNC)
	r.sch.Run(time.Second / 60)
	test.ExpectEquality(t, r.gc.InterruptLine(), true)

	// display period too small. the screen keeps its geometry but the vsync
	// stops
	r.gc.Write32(mb86292.IST, 0)
	r.gc.Write16(mb86292.HDP, 99)
	r.sch.Run(time.Second)
	test.ExpectEquality(t, r.gc.InterruptLine(), false)
	test.ExpectEquality(t, r.scr.Visible(), image.Rect(0, 0, 640, 480))
	_, ok = r.gc.Registers().CRTC.Geometry()
	test.ExpectEquality(t, ok, false)
}

func TestCRTCBoundaries(t *testing.T) {
	base := mb86292.CRTC{HTP: 799, HDB: 639, HDP: 639, HSP: 655, HSW: 31, VTR: 524, VDP: 479, VSP: 489, VSW: 1}

	for _, c := range []struct {
		name   string
		adjust func(c *mb86292.CRTC)
		ok     bool
	}{
		{"base", func(c *mb86292.CRTC) {}, true},

		// minimum display periods
		{"hdp 320", func(c *mb86292.CRTC) { c.HDP = 319; c.HDB = 319 }, true},
		{"hdp 319", func(c *mb86292.CRTC) { c.HDP = 318; c.HDB = 318 }, false},
		{"vdp 234", func(c *mb86292.CRTC) { c.VDP = 233 }, true},
		{"vdp 233", func(c *mb86292.CRTC) { c.VDP = 232 }, false},

		// display boundary and display period
		{"hdb less than hdp", func(c *mb86292.CRTC) { c.HDB = 600 }, true},
		{"hdb equal to hdp", func(c *mb86292.CRTC) { c.HDB = c.HDP }, true},
		{"hdb greater than hdp", func(c *mb86292.CRTC) { c.HDB = c.HDP + 1 }, false},

		// display period and sync position
		{"hsp equal to hdp", func(c *mb86292.CRTC) { c.HSP = c.HDP }, false},
		{"hsp one after hdp", func(c *mb86292.CRTC) { c.HSP = c.HDP + 1 }, true},
		{"vsp equal to vdp", func(c *mb86292.CRTC) { c.VSP = c.VDP }, true},
		{"vsp less than vdp", func(c *mb86292.CRTC) { c.VSP = c.VDP - 1 }, false},

		// sync end and total period. the horizontal sync ends at 656+32 and
		// the vertical sync ends at 490+2
		{"hse equal to htp", func(c *mb86292.CRTC) { c.HTP = 687 }, false},
		{"hse one before htp", func(c *mb86292.CRTC) { c.HTP = 688 }, true},
		{"vse equal to vtr", func(c *mb86292.CRTC) { c.VTR = 491 }, false},
		{"vse one before vtr", func(c *mb86292.CRTC) { c.VTR = 492 }, true},
	} {
		crtc := base
		c.adjust(&crtc)

		g, ok := crtc.Geometry()
		if ok != c.ok {
			t.Errorf("%s: geometry valid is %v, expected %v", c.name, ok, c.ok)
			continue
		}

		if ok {
			test.ExpectEquality(t, g, mb86292.Geometry{
				Width:       int(crtc.HDP) + 1,
				Height:      int(crtc.VDP) + 1,
				TotalWidth:  int(crtc.HTP) + 1,
				TotalHeight: int(crtc.VTR) + 1,
			})
		} else {
			test.ExpectEquality(t, g, mb86292.Geometry{})
		}
	}
}

func TestCRTCPurity(t *testing.T) {
	a := mb86292.CRTC{HTP: 799, HDB: 639, HDP: 639, HSP: 655, HSW: 95, VTR: 524, VDP: 479, VSP: 489, VSW: 1}
	b := a

	ga, oka := a.Geometry()
	gb, okb := b.Geometry()
	test.ExpectEquality(t, ga, gb)
	test.ExpectEquality(t, oka, okb)

	// vertical display too small
	a.VDP = 100
	a.VSP = 101
	_, ok := a.Geometry()
	test.ExpectEquality(t, ok, false)

	// horizontal sync end beyond total
	b.HSW = 63
	b.HSP = 760
	_, ok = b.Geometry()
	test.ExpectEquality(t, ok, false)

	// two devices programmed in a different order arrive at the same state
	r1 := newRig(t)
	r2 := newRig(t)
	r1.crtc640x480()
	r2.gc.Write8(mb86292.VSW, 1)
	r2.gc.Write16(mb86292.VSP, 489)
	r2.gc.Write16(mb86292.VDP, 479)
	r2.gc.Write16(mb86292.VTR, 524)
	r2.gc.Write8(mb86292.HSW, 95)
	r2.gc.Write16(mb86292.HSP, 655)
	r2.gc.Write16(mb86292.HDP, 639)
	r2.gc.Write16(mb86292.HDB, 639)
	r2.gc.Write16(mb86292.HTP, 799)
	test.ExpectEquality(t, r1.gc.Registers(), r2.gc.Registers())
	test.ExpectEquality(t, r1.scr.Visible(), r2.scr.Visible())
}

func TestMaximumSpan(t *testing.T) {
	r := newRig(t)

	// an LCO of zero is the maximum span, not an empty list
	r.run(0x1000, 0)
	test.ExpectEquality(t, r.gc.Cursor(), uint32(0x1000+0x1000000))
	test.ExpectEquality(t, r.gc.Registers().List.LREQ, false)
}

func TestBltFill(t *testing.T) {
	r := newRig(t)

	const base = 0x10000
	r.gc.Write32(mb86292.FBR, base)
	r.gc.Write32(mb86292.XRES, 512)
	r.gc.Write32(mb86292.FC, 0x1234)

	r.list(0x1000,
		0x09410000,
		10|5<<16,  // rxs, rys
		20|10<<16, // rsizex, rsizey
	)

	before := bytes.Clone(r.mem.Bytes())
	r.run(0x1000, 3)
	after := r.mem.Bytes()

	var changed int
	for a := 0; a < len(after); a += 2 {
		if before[a] != after[a] || before[a+1] != after[a+1] {
			changed++
		}
	}
	test.ExpectEquality(t, changed, 50)

	for y := uint32(5); y < 10; y++ {
		for x := uint32(10); x < 20; x++ {
			test.ExpectEquality(t, r.mem.Read16(base+y*1024+x*2), uint16(0x1234), x, y)
		}
	}
}

func TestBltCopy(t *testing.T) {
	r := newRig(t)

	const src = 0x20000
	const dst = 0x30000
	const stride = 16

	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			r.mem.Write16(src+(y*stride+x)*2, uint16(0x100+y*4+x))
		}
	}

	r.list(0x1000,
		0x0f440000,
		src, stride,
		0|0<<16, // srx, sry
		dst, stride,
		2|1<<16, // drx, dry
		4|4<<16, // width, height
	)

	before := bytes.Clone(r.mem.Bytes())
	r.run(0x1000, 8)
	after := r.mem.Bytes()

	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			s := r.mem.Read16(src + (y*stride+x)*2)
			d := r.mem.Read16(dst + ((1+y)*stride+2+x)*2)
			test.ExpectEquality(t, d, s, x, y)
		}
	}

	// only the destination block has changed
	var changed int
	for a := 0; a < len(after); a += 2 {
		if before[a] != after[a] || before[a+1] != after[a+1] {
			changed++
		}
	}
	test.ExpectEquality(t, changed, 16)

	// the display list itself is untouched
	test.ExpectEquality(t, r.mem.Read32(0x1000), uint32(0x0f440000))
	test.ExpectEquality(t, r.mem.Read32(0x101c), uint32(4|4<<16))
}

func TestUnknownOpcode(t *testing.T) {
	r := newRig(t)

	r.list(0x1000, 0x55aa1234)
	r.gc.Write32(mb86292.LSA, 0x1000)
	r.gc.Write32(mb86292.LCO, 1)

	regs := r.gc.Registers()
	before := bytes.Clone(r.mem.Bytes())

	r.gc.Write8(mb86292.LREQ, 1)

	test.ExpectEquality(t, r.gc.Cursor(), uint32(0x1004))
	test.ExpectEquality(t, r.gc.Registers(), regs)
	test.ExpectEquality(t, bytes.Equal(before, r.mem.Bytes()), true)
}

func TestNoOperation(t *testing.T) {
	r := newRig(t)

	r.list(0x1000, 0x20000000)
	r.gc.Write32(mb86292.LSA, 0x1000)
	r.gc.Write32(mb86292.LCO, 1)

	regs := r.gc.Registers()
	before := bytes.Clone(r.mem.Bytes())

	r.gc.Write8(mb86292.LREQ, 1)

	test.ExpectEquality(t, r.gc.Registers().List.LREQ, false)
	test.ExpectEquality(t, r.gc.Read8(mb86292.LREQ), uint8(0))
	test.ExpectEquality(t, r.gc.Cursor(), uint32(0x1004))
	test.ExpectEquality(t, r.gc.Registers(), regs)
	test.ExpectEquality(t, bytes.Equal(before, r.mem.Bytes()), true)
	test.ExpectEquality(t, r.gc.Lists(), 1)
}

func TestRequestFlagZero(t *testing.T) {
	r := newRig(t)

	r.list(0x1000, 0xfd000000)
	r.gc.Write32(mb86292.LSA, 0x1000)
	r.gc.Write32(mb86292.LCO, 1)
	r.gc.Write8(mb86292.LREQ, 0)
	test.ExpectEquality(t, r.gc.Lists(), 0)
	test.ExpectEquality(t, r.gc.Registers().IRQ.IST, uint32(0))
}

func TestSetRegister(t *testing.T) {
	r := newRig(t)

	// FBR and XRES are consecutive registers in the drawing engine window
	r.list(0x1000,
		0xf1020000|(mb86292.FBR-mb86292.DrawBase)>>2,
		0x00100000,
		0x00000200,
		0xf1010000|(mb86292.FC-mb86292.DrawBase)>>2,
		0xffff7c00,
	)
	r.run(0x1000, 5)

	regs := r.gc.Registers()
	test.ExpectEquality(t, regs.FB.Base, uint32(0x00100000))
	test.ExpectEquality(t, regs.FB.XRES, uint32(0x200))
	test.ExpectEquality(t, regs.Draw.FC, uint32(0x7c00))
	test.ExpectEquality(t, r.gc.Cursor(), uint32(0x1014))
}

func TestInterruptCallback(t *testing.T) {
	r := newRig(t)

	var levels []bool
	r.gc.SetInterruptCallback(func(level bool) {
		levels = append(levels, level)
	})

	r.gc.Write32(mb86292.MASK, mb86292.IRQCEND)
	test.ExpectEquality(t, len(levels), 1)
	test.ExpectEquality(t, levels[0], false)

	r.list(0x1000, 0xfd000000)
	r.run(0x1000, 1)
	test.ExpectEquality(t, len(levels), 2)
	test.ExpectEquality(t, levels[1], true)

	// no debouncing. the same level is reported again
	r.gc.Write32(mb86292.MASK, mb86292.IRQCEND)
	test.ExpectEquality(t, len(levels), 3)
	test.ExpectEquality(t, levels[2], true)

	r.gc.Write32(mb86292.IST, ^uint32(mb86292.IRQCEND))
	test.ExpectEquality(t, len(levels), 4)
	test.ExpectEquality(t, levels[3], false)

	// vsync is masked so the line stays low
	r.crtc640x480()
	r.sch.Run(time.Second / 60)
	test.ExpectEquality(t, len(levels), 5)
	test.ExpectEquality(t, levels[4], false)
}

func TestRequestFromCallback(t *testing.T) {
	r := newRig(t)

	r.list(0x1000, 0xfd000000)
	r.gc.Write32(mb86292.MASK, mb86292.IRQCEND)

	// the interrupt handler acknowledges and starts another list. the second
	// list is run after the first has finished
	var requests int
	r.gc.SetInterruptCallback(func(level bool) {
		if level && requests < 1 {
			requests++
			r.gc.Write32(mb86292.IST, 0)
			r.gc.Write8(mb86292.LREQ, 1)
		}
	})

	r.run(0x1000, 1)
	test.ExpectEquality(t, r.gc.Lists(), 2)
	test.ExpectEquality(t, r.gc.Registers().List.LREQ, false)
}

func TestRequestWithdrawn(t *testing.T) {
	r := newRig(t)

	r.list(0x1000, 0xfd000000)
	r.gc.Write32(mb86292.MASK, mb86292.IRQCEND)

	// the interrupt handler requests another list and then withdraws the
	// request before the running list has finished
	var requests int
	r.gc.SetInterruptCallback(func(level bool) {
		if level && requests < 1 {
			requests++
			r.gc.Write32(mb86292.IST, 0)
			r.gc.Write8(mb86292.LREQ, 1)
			r.gc.Write8(mb86292.LREQ, 0)
		}
	})

	r.run(0x1000, 1)
	test.ExpectEquality(t, requests, 1)
	test.ExpectEquality(t, r.gc.Lists(), 1)
	test.ExpectEquality(t, r.gc.Registers().List.LREQ, false)

	// a later request is not affected
	r.run(0x1000, 1)
	test.ExpectEquality(t, r.gc.Lists(), 2)
}

func TestCommit(t *testing.T) {
	r := newRig(t)
	r.crtc640x480()

	const cda = 0x40000
	const fbr = 0x80000

	// console layer is 2048 bytes wide
	r.gc.Write32(mb86292.CM, 32<<16|479)
	r.gc.Write32(mb86292.CDA, cda)
	r.gc.Write32(mb86292.FBR, fbr)
	r.gc.Write32(mb86292.XRES, 640)

	r.mem.Write16(cda, 0x1111)
	r.mem.Write16(cda+2048*10+20*2, 0x2222)
	r.mem.Write16(cda+2048*479+639*2, 0x3333)

	r.list(0x1000, 0xf0c10000)
	r.run(0x1000, 1)

	test.ExpectEquality(t, r.mem.Read16(fbr), uint16(0x1111))
	test.ExpectEquality(t, r.mem.Read16(fbr+1280*10+20*2), uint16(0x2222))
	test.ExpectEquality(t, r.mem.Read16(fbr+1280*479+639*2), uint16(0x3333))
}

func TestScanout(t *testing.T) {
	r := newRig(t)

	const fbr = 0x80000
	r.gc.Write32(mb86292.FBR, fbr)
	r.gc.Write32(mb86292.XRES, 16)
	r.mem.Write16(fbr, 0x7c00)
	r.mem.Write16(fbr+2, 0x03e0)
	r.mem.Write16(fbr+32+2, 0x801f)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	// not enabled. everything is black
	r.gc.Scanout(img.Bounds(), img)
	test.ExpectEquality(t, img.RGBAAt(0, 0), mb86292.Pal555(0))

	// enabled but no layers
	r.gc.Write16(mb86292.DCE, 0x8000)
	r.gc.Scanout(img.Bounds(), img)
	test.ExpectEquality(t, img.RGBAAt(0, 0), mb86292.Pal555(0))

	r.gc.Write16(mb86292.DCE, 0x8001)
	r.gc.Scanout(img.Bounds(), img)
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(0, 0).G, uint8(0x00))
	test.ExpectEquality(t, img.RGBAAt(1, 0).G, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(1, 1).B, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(1, 1).R, uint8(0x00))
}

func TestPal555(t *testing.T) {
	c := mb86292.Pal555(0x4210)
	test.ExpectEquality(t, c.R, uint8(0x84))
	test.ExpectEquality(t, c.G, uint8(0x84))
	test.ExpectEquality(t, c.B, uint8(0x84))
	test.ExpectEquality(t, c.A, uint8(0xff))
}

func TestSnapshot(t *testing.T) {
	r := newRig(t)
	r.crtc640x480()
	r.gc.Write16(mb86292.DCE, 0x8001)
	r.gc.Write32(mb86292.MASK, mb86292.IRQVSYNC)
	r.gc.Write32(mb86292.CM, 0x800501df)
	r.gc.Write32(mb86292.FBR, 0x123456)
	r.gc.Write32(mb86292.FC, 0x7fff)
	r.list(0x1000, 0x20000000)
	r.run(0x1000, 1)

	regs := r.gc.Registers()
	snap := r.gc.Snapshot()

	r.gc.Reset()
	test.ExpectInequality(t, r.gc.Registers(), regs)

	test.DemandSuccess(t, r.gc.Plumb(snap))
	test.ExpectEquality(t, r.gc.Registers(), regs)

	// the vsync event is running again
	r.sch.Run(time.Second / 60)
	test.ExpectEquality(t, r.gc.InterruptLine(), true)

	err := r.gc.Plumb(snap[1:])
	test.ExpectEquality(t, curated.Is(err, mb86292.SnapshotLength), true)

	snap[0] = 99
	err = r.gc.Plumb(snap)
	test.ExpectEquality(t, curated.Is(err, mb86292.SnapshotVersion), true)
}

func TestSnapshotInterruptLine(t *testing.T) {
	r := newRig(t)

	r.list(0x1000, 0xfd000000)
	r.gc.Write32(mb86292.MASK, mb86292.IRQCEND)
	r.run(0x1000, 1)
	test.DemandEquality(t, r.gc.InterruptLine(), true)

	snap := r.gc.Snapshot()
	r.gc.Reset()
	test.DemandEquality(t, r.gc.InterruptLine(), false)

	var levels []bool
	r.gc.SetInterruptCallback(func(level bool) {
		levels = append(levels, level)
	})

	// restoring the interrupt status and mask drives the interrupt line
	test.DemandSuccess(t, r.gc.Plumb(snap))
	test.ExpectEquality(t, r.gc.InterruptLine(), true)
	test.DemandEquality(t, len(levels), 1)
	test.ExpectEquality(t, levels[0], true)

	// and restoring a state with nothing pending lowers it again
	r.gc.Reset()
	idle := r.gc.Snapshot()
	test.DemandSuccess(t, r.gc.Plumb(snap))
	levels = levels[:0]
	test.DemandSuccess(t, r.gc.Plumb(idle))
	test.DemandEquality(t, len(levels), 1)
	test.ExpectEquality(t, levels[0], false)
}

func TestReset(t *testing.T) {
	r := newRig(t)
	r.crtc640x480()
	r.gc.Write32(mb86292.MASK, mb86292.IRQVSYNC)
	r.gc.Reset()

	test.ExpectEquality(t, r.gc.Registers(), mb86292.Registers{})

	// vsync has been cancelled
	r.gc.Write32(mb86292.MASK, mb86292.IRQVSYNC)
	r.sch.Run(time.Second)
	test.ExpectEquality(t, r.gc.InterruptLine(), false)
}
