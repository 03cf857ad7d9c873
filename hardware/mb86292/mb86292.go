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
	"fmt"
	"strings"

	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/hardware/memory/iomap"
	"github.com/jetsetilly/orchid/hardware/memory/vram"
	"github.com/jetsetilly/orchid/hardware/screen"
	"github.com/jetsetilly/orchid/logger"
)

// MB86292 is the graphics controller.
type MB86292 struct {
	env *environment.Environment

	// permission for register and CRTC trace logging
	perm logger.Permission

	// permission for display list disassembly logging
	dasm logger.Permission

	mem *vram.VRAM
	scr *screen.Screen
	io  *iomap.Map

	regs Registers

	// the address of the display list command being executed. not part of
	// the register file and not saved
	cursor uint32

	vsync *screen.Timer

	// called with the level of the interrupt line every time it is evaluated
	irq func(level bool)

	// number of display lists run since reset
	lists int

	// a display list is being processed. a request made while running is
	// deferred until the list has finished
	running  bool
	deferred bool
}

// NewMB86292 is the preferred method of initialisation for the MB86292 type.
func NewMB86292(env *environment.Environment, mem *vram.VRAM, sch *screen.Scheduler, scr *screen.Screen) (*MB86292, error) {
	gc := &MB86292{
		env:  env,
		perm: env,
		mem:  mem,
		scr:  scr,
	}

	gc.dasm = logger.PermissionFunc(func() bool {
		return env.AllowLogging() && env.Prefs.Disasm.AllowLogging()
	})

	gc.vsync = sch.NewTimer("vsync", gc.vsyncCallback)

	gc.io = iomap.NewMap(gc.ID(), gc.perm)
	if err := gc.installRegisters(); err != nil {
		return nil, err
	}

	gc.Reset()

	return gc, nil
}

// ID implements the device.Named interface.
func (gc *MB86292) ID() string {
	return "MB86292"
}

func (gc *MB86292) String() string {
	return fmt.Sprintf("%s: %s", gc.ID(), gc.scr)
}

// Reset implements the device.Resettable interface. The register file is
// zeroed and the vsync event is cancelled.
func (gc *MB86292) Reset() {
	gc.vsync.Never()
	gc.regs = Registers{}
	gc.cursor = 0
	gc.lists = 0
	gc.deferred = false
}

// SetInterruptCallback sets the function that is called with the level of
// the interrupt line.
func (gc *MB86292) SetInterruptCallback(f func(level bool)) {
	gc.irq = f
}

// Registers returns a copy of the register file.
func (gc *MB86292) Registers() Registers {
	return gc.regs
}

// Cursor returns the address of the most recent display list command. After
// a display list has run this is the end address of the list.
func (gc *MB86292) Cursor() uint32 {
	return gc.cursor
}

// Lists returns the number of display lists run since reset.
func (gc *MB86292) Lists() int {
	return gc.lists
}

// Status returns a multi-line summary of the state of the device.
func (gc *MB86292) Status() string {
	s := strings.Builder{}
	r := gc.regs
	s.WriteString(fmt.Sprintf("DCE  %04x (enable=%v layers=%04b)\n", r.DCE, r.DCE&0x8000 != 0, r.DCE&0xf))
	s.WriteString(fmt.Sprintf("LSA  %06x LCO %06x LREQ %v cursor %08x\n", r.List.LSA, r.List.LCO, r.List.LREQ, gc.cursor))
	s.WriteString(fmt.Sprintf("IST  %08x MASK %08x line %v\n", r.IRQ.IST, r.IRQ.MASK, gc.level()))
	s.WriteString(fmt.Sprintf("HTP  %d HDP %d HDB %d HSP %d HSW %d\n", r.CRTC.HTP+1, r.CRTC.HDP+1, r.CRTC.HDB+1, r.CRTC.HSP+1, r.CRTC.HSW+1))
	s.WriteString(fmt.Sprintf("VTR  %d VDP %d VSP %d VSW %d\n", r.CRTC.VTR+1, r.CRTC.VDP+1, r.CRTC.VSP+1, r.CRTC.VSW+1))
	s.WriteString(fmt.Sprintf("FBR  %07x XRES %d FC %04x BC %04x\n", r.FB.Base, r.FB.XRES, r.Draw.FC, r.Draw.BC))
	s.WriteString(fmt.Sprintf("CM   %08x (w=%d h=%d direct=%v) CDA %07x\n", r.CLayer.CM, r.CLayer.Width(), r.CLayer.Height(), r.CLayer.Direct(), r.CLayer.CDA))
	s.WriteString(gc.vsync.String())
	s.WriteString("\n")
	return s.String()
}

// Read implements the device.Addressable interface.
func (gc *MB86292) Read(addr uint32, mask uint32) uint32 {
	return gc.io.Read(addr, mask)
}

// Write implements the device.Addressable interface.
func (gc *MB86292) Write(addr uint32, data uint32, mask uint32) {
	gc.io.Write(addr, data, mask)
}

// Read8 reads the register byte at the address.
func (gc *MB86292) Read8(addr uint32) uint8 {
	return gc.io.Read8(addr)
}

// Read16 reads the register word at the address.
func (gc *MB86292) Read16(addr uint32) uint16 {
	return gc.io.Read16(addr)
}

// Read32 reads the register dword at the address.
func (gc *MB86292) Read32(addr uint32) uint32 {
	return gc.io.Read32(addr)
}

// Write8 writes the register byte at the address.
func (gc *MB86292) Write8(addr uint32, data uint8) {
	gc.io.Write8(addr, data)
}

// Write16 writes the register word at the address.
func (gc *MB86292) Write16(addr uint32, data uint16) {
	gc.io.Write16(addr, data)
}

// Write32 writes the register dword at the address.
func (gc *MB86292) Write32(addr uint32, data uint32) {
	gc.io.Write32(addr, data)
}

// RegisterMap returns a listing of the installed registers.
func (gc *MB86292) RegisterMap() string {
	return gc.io.String()
}
