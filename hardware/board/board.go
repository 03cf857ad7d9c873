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

package board

import (
	"fmt"
	"image"
	"time"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/hardware/mb86292"
	"github.com/jetsetilly/orchid/hardware/memory/vram"
	"github.com/jetsetilly/orchid/hardware/preferences"
	"github.com/jetsetilly/orchid/hardware/screen"
)

// Board is an MB86292 with video memory and a screen.
type Board struct {
	Env *environment.Environment

	Sch *screen.Scheduler
	Scr *screen.Screen
	Mem *vram.VRAM
	GC  *mb86292.MB86292

	// level of the interrupt line the last time it was evaluated
	irq bool

	// number of rising edges of the interrupt line since reset
	edges int

	// optional function called on every change of the interrupt line
	onIRQ func(level bool)
}

// NewBoard is the preferred method of initialisation for the Board type. If
// the prefs argument is nil then the preferences are loaded from the global
// preferences file.
func NewBoard(label environment.Label, prefs *preferences.Preferences) (*Board, error) {
	b := &Board{}

	b.Sch = screen.NewScheduler()
	b.Scr = screen.NewScreen(b.Sch, screen.Hz(preferences.DefaultFramePeriod))

	var err error

	b.Env, err = environment.NewEnvironment(b.Scr, prefs)
	if err != nil {
		return nil, curated.Errorf("board: %v", err)
	}
	b.Env.Label = label

	b.Mem, err = vram.NewVRAM(b.Env, b.Env.Prefs.VRAMSize.Get().(int))
	if err != nil {
		return nil, curated.Errorf("board: %v", err)
	}

	b.GC, err = mb86292.NewMB86292(b.Env, b.Mem, b.Sch, b.Scr)
	if err != nil {
		return nil, curated.Errorf("board: %v", err)
	}

	b.GC.SetInterruptCallback(b.interrupt)

	return b, nil
}

func (b *Board) String() string {
	return fmt.Sprintf("frame %d scanline %d: %s", b.Scr.Frame(), b.Scr.Scanline(), b.GC)
}

func (b *Board) interrupt(level bool) {
	if level && !b.irq {
		b.edges++
	}
	changed := level != b.irq
	b.irq = level
	if changed && b.onIRQ != nil {
		b.onIRQ(level)
	}
}

// SetInterruptHook sets a function to be called whenever the level of the
// interrupt line changes.
func (b *Board) SetInterruptHook(f func(level bool)) {
	b.onIRQ = f
}

// InterruptLine returns the level of the interrupt line.
func (b *Board) InterruptLine() bool {
	return b.irq
}

// InterruptEdges returns the number of rising edges of the interrupt line
// since the last reset.
func (b *Board) InterruptEdges() int {
	return b.edges
}

// Reset the graphics controller and video memory.
func (b *Board) Reset() {
	b.Mem.Reset()
	b.GC.Reset()
	b.irq = false
	b.edges = 0
}

// LoadVRAM copies data into video memory at the offset.
func (b *Board) LoadVRAM(offset uint32, data []byte) error {
	if err := b.Mem.Load(offset, data); err != nil {
		return curated.Errorf("board: %v", err)
	}
	return nil
}

// Snapshot returns the register state of the graphics controller. Video
// memory is not included.
func (b *Board) Snapshot() []byte {
	return b.GC.Snapshot()
}

// Plumb restores a register state returned by Snapshot(). The interrupt line
// takes the level of the restored state.
func (b *Board) Plumb(data []byte) error {
	if err := b.GC.Plumb(data); err != nil {
		return curated.Errorf("board: %v", err)
	}
	return nil
}

// RunFrames advances the board by the number of frames. A frame is one frame
// period of the screen.
func (b *Board) RunFrames(n int) {
	if n <= 0 {
		return
	}
	b.Sch.Run(time.Duration(n) * b.Scr.FramePeriod())
}

// Frame returns the visible area of the screen as an image. The image is
// empty if the CRTC has never been configured.
func (b *Board) Frame() *image.RGBA {
	img := image.NewRGBA(b.Scr.Visible())
	b.GC.Scanout(img.Bounds(), img)
	return img
}
