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

package screen

import (
	"fmt"
	"image"
	"time"
)

// Hz converts a frequency to a frame period.
func Hz(f float64) time.Duration {
	if f <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / f)
}

// Screen models the raster of a display.
type Screen struct {
	sch *Scheduler

	totalW  int
	totalH  int
	visible image.Rectangle
	period  time.Duration

	configured bool

	// the time at which the current geometry took effect and the number of
	// frames that had elapsed by that time
	epoch       time.Duration
	epochFrames int
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The frame period is used until the screen is configured.
func NewScreen(sch *Scheduler, framePeriod time.Duration) *Screen {
	return &Screen{
		sch:    sch,
		period: framePeriod,
	}
}

func (scr *Screen) String() string {
	if !scr.configured {
		return "screen: not configured"
	}
	return fmt.Sprintf("screen: %d x %d (total: %d x %d) at %.2fHz",
		scr.visible.Dx(), scr.visible.Dy(), scr.totalW, scr.totalH,
		float64(time.Second)/float64(scr.period))
}

// Configure the screen. The visible rectangle is inclusive of its minimum
// point and exclusive of its maximum point. A frame period of zero leaves the
// current frame period unchanged.
func (scr *Screen) Configure(totalW int, totalH int, visible image.Rectangle, framePeriod time.Duration) {
	scr.epochFrames = scr.Frame()
	scr.epoch = scr.sch.Now()

	scr.totalW = totalW
	scr.totalH = totalH
	scr.visible = visible
	if framePeriod > 0 {
		scr.period = framePeriod
	}
	scr.configured = true
}

// Configured returns true if Configure() has been called.
func (scr *Screen) Configured() bool {
	return scr.configured
}

// Visible returns the visible area of the raster.
func (scr *Screen) Visible() image.Rectangle {
	return scr.visible
}

// Total returns the size of the raster including the non-visible area.
func (scr *Screen) Total() (int, int) {
	return scr.totalW, scr.totalH
}

// FramePeriod returns the duration of a frame.
func (scr *Screen) FramePeriod() time.Duration {
	return scr.period
}

func (scr *Screen) scanlinePeriod() time.Duration {
	if scr.totalH <= 0 {
		return scr.period
	}
	return scr.period / time.Duration(scr.totalH)
}

// position of the beam within the current frame
func (scr *Screen) beam() time.Duration {
	if scr.period <= 0 {
		return 0
	}
	return (scr.sch.Now() - scr.epoch) % scr.period
}

// Frame returns the number of frames that have elapsed.
func (scr *Screen) Frame() int {
	if scr.period <= 0 {
		return scr.epochFrames
	}
	return scr.epochFrames + int((scr.sch.Now()-scr.epoch)/scr.period)
}

// Scanline returns the scanline the beam is currently on.
func (scr *Screen) Scanline() int {
	if !scr.configured {
		return 0
	}
	return int(scr.beam() / scr.scanlinePeriod())
}

// TimeUntilScanline returns the time until the beam reaches the start of the
// scanline. If the beam is at or past the start of the scanline then the time
// until the scanline in the next frame is returned.
func (scr *Screen) TimeUntilScanline(n int) time.Duration {
	if !scr.configured || scr.totalH <= 0 {
		return scr.period
	}
	target := time.Duration(n%scr.totalH) * scr.scanlinePeriod()
	d := target - scr.beam()
	if d <= 0 {
		d += scr.period
	}
	return d
}
