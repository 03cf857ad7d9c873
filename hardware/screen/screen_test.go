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

package screen_test

import (
	"image"
	"testing"
	"time"

	"github.com/jetsetilly/orchid/hardware/screen"
	"github.com/jetsetilly/orchid/test"
)

func TestTimerOrder(t *testing.T) {
	sch := screen.NewScheduler()

	var order []string
	a := sch.NewTimer("a", func() { order = append(order, "a") })
	b := sch.NewTimer("b", func() { order = append(order, "b") })

	a.Adjust(20 * time.Millisecond)
	b.Adjust(10 * time.Millisecond)
	test.ExpectEquality(t, a.Pending(), true)

	sch.Run(15 * time.Millisecond)
	test.ExpectEquality(t, len(order), 1)
	test.ExpectEquality(t, order[0], "b")
	test.ExpectEquality(t, b.Pending(), false)
	test.ExpectEquality(t, a.Remaining(), 5*time.Millisecond)

	sch.Run(15 * time.Millisecond)
	test.ExpectEquality(t, len(order), 2)
	test.ExpectEquality(t, order[1], "a")
	test.ExpectEquality(t, sch.Now(), 30*time.Millisecond)
}

func TestTimerReschedule(t *testing.T) {
	sch := screen.NewScheduler()

	var tm *screen.Timer
	tm = sch.NewTimer("tick", func() {
		tm.Adjust(time.Millisecond)
	})
	tm.Adjust(time.Millisecond)

	sch.Run(10 * time.Millisecond)
	test.ExpectEquality(t, tm.Fired(), 10)
	test.ExpectEquality(t, tm.Pending(), true)

	tm.Never()
	sch.Run(10 * time.Millisecond)
	test.ExpectEquality(t, tm.Fired(), 10)
}

func TestScreenPosition(t *testing.T) {
	sch := screen.NewScheduler()
	scr := screen.NewScreen(sch, 100*time.Millisecond)
	test.ExpectEquality(t, scr.Configured(), false)

	scr.Configure(800, 100, image.Rect(0, 0, 640, 80), 0)
	test.ExpectEquality(t, scr.Configured(), true)
	test.ExpectEquality(t, scr.FramePeriod(), 100*time.Millisecond)

	// one millisecond per scanline
	test.ExpectEquality(t, scr.TimeUntilScanline(80), 80*time.Millisecond)

	sch.Run(80 * time.Millisecond)
	test.ExpectEquality(t, scr.Scanline(), 80)

	// beam is at the start of the scanline so a full frame is returned
	test.ExpectEquality(t, scr.TimeUntilScanline(80), 100*time.Millisecond)
	test.ExpectEquality(t, scr.TimeUntilScanline(81), time.Millisecond)

	sch.Run(250 * time.Millisecond)
	test.ExpectEquality(t, scr.Frame(), 3)
	test.ExpectEquality(t, scr.Scanline(), 30)
}

func TestHz(t *testing.T) {
	test.ExpectEquality(t, screen.Hz(50), 20*time.Millisecond)
	test.ExpectEquality(t, screen.Hz(0), time.Duration(0))
}
