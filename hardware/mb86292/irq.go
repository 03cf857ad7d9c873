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

// Interrupt status bits.
const (
	IRQCERR    = 1 << 0 // command error
	IRQCEND    = 1 << 1 // command end
	IRQVSYNC   = 1 << 2
	IRQFSYNC   = 1 << 3 // frame sync
	IRQSYNCERR = 1 << 4
)

func (gc *MB86292) level() bool {
	return gc.regs.IRQ.IST&gc.regs.IRQ.MASK != 0
}

// checkIRQs evaluates the interrupt line. the callback is called every time,
// even if the level has not changed
func (gc *MB86292) checkIRQs() {
	lvl := gc.level()
	if gc.irq != nil {
		gc.irq(lvl)
	}
}

// InterruptLine returns the current level of the interrupt line.
func (gc *MB86292) InterruptLine() bool {
	return gc.level()
}

func (gc *MB86292) vsyncCallback() {
	gc.regs.IRQ.IST |= IRQVSYNC
	gc.checkIRQs()
	gc.vsync.Adjust(gc.scr.TimeUntilScanline(int(gc.regs.CRTC.VDP) + 1))
}
