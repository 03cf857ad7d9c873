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

package tcellscreen_test

import (
	"testing"

	"github.com/gdamore/tcell"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/gui"
	"github.com/jetsetilly/orchid/gui/tcellscreen"
	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/jetsetilly/orchid/hardware/mb86292"
	"github.com/jetsetilly/orchid/hardware/preferences"
	"github.com/jetsetilly/orchid/test"
	"github.com/spf13/afero"
)

func newViewer(t *testing.T) (*tcellscreen.Viewer, tcell.SimulationScreen, *board.Board) {
	t.Helper()

	fs := afero.NewMemMapFs()

	prefs, err := preferences.NewPreferencesFs(fs, "preferences")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.VRAMSize.Set(0x100000))

	b, err := board.NewBoard(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)
	b.Env.Normalise()
	b.Reset()

	sim := tcell.NewSimulationScreen("UTF-8")
	v, err := tcellscreen.NewViewer(b, sim, fs, 0)
	test.DemandSuccess(t, err)
	t.Cleanup(v.Close)

	sim.SetSize(80, 25)

	return v, sim, b
}

// a red frame buffer at address zero
func redScreen(b *board.Board) {
	gc := b.GC
	gc.Write16(mb86292.HTP, 799)
	gc.Write16(mb86292.HDB, 639)
	gc.Write16(mb86292.HDP, 639)
	gc.Write16(mb86292.HSP, 655)
	gc.Write8(mb86292.HSW, 31)
	gc.Write16(mb86292.VTR, 524)
	gc.Write16(mb86292.VDP, 479)
	gc.Write16(mb86292.VSP, 489)
	gc.Write8(mb86292.VSW, 1)
	gc.Write32(mb86292.FBR, 0)
	gc.Write32(mb86292.XRES, 640)
	gc.Write16(mb86292.DCE, 0x8001)
	for i := uint32(0); i < 640*480; i++ {
		b.Mem.Write16(i*2, 0x7c00)
	}
}

func TestInterfaces(t *testing.T) {
	v, _, _ := newViewer(t)
	test.DemandImplements[gui.Viewer](t, v)
}

func TestDraw(t *testing.T) {
	v, sim, b := newViewer(t)
	redScreen(b)

	v.Draw(b.Frame())

	cells, w, h := sim.GetContents()
	test.DemandEquality(t, w, 80)
	test.DemandEquality(t, h, 25)

	red := tcell.NewRGBColor(0xff, 0, 0)

	c := cells[0]
	test.DemandEquality(t, len(c.Runes), 1)
	test.ExpectEquality(t, c.Runes[0], '▀')
	fg, bg, _ := c.Style.Decompose()
	test.ExpectEquality(t, fg, red)
	test.ExpectEquality(t, bg, red)

	c = cells[w*h-1]
	fg, bg, _ = c.Style.Decompose()
	test.ExpectEquality(t, fg, red)
	test.ExpectEquality(t, bg, red)
}

func TestDrawUnconfigured(t *testing.T) {
	v, sim, b := newViewer(t)

	v.Draw(b.Frame())

	cells, _, _ := sim.GetContents()
	test.DemandEquality(t, len(cells[0].Runes), 1)
	test.ExpectEquality(t, cells[0].Runes[0], ' ')
}

func TestRun(t *testing.T) {
	v, sim, b := newViewer(t)
	redScreen(b)

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	test.ExpectSuccess(t, v.Run())
	test.ExpectSuccess(t, b.Scr.Frame() > 0)
}
