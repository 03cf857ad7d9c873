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

package gui

import (
	"image"

	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/jetsetilly/orchid/logger"
	"github.com/jetsetilly/orchid/performance/limiter"
	"github.com/jetsetilly/orchid/screenshot"
	"github.com/spf13/afero"
)

// Action is a request from the user of a viewer.
type Action int

// List of valid actions.
const (
	Quit Action = iota
	TogglePause
	Screenshot
)

func (a Action) String() string {
	switch a {
	case Quit:
		return "quit"
	case TogglePause:
		return "pause"
	case Screenshot:
		return "screenshot"
	}
	return "unknown action"
}

// Viewer presents the screen of a board until the user quits.
type Viewer interface {
	Run() error
	Close()
}

// Loop runs a board on behalf of a viewer.
type Loop struct {
	b  *board.Board
	fs afero.Fs

	// number of frames per second. a value of zero or less runs the board as
	// quickly as possible
	framerate float64

	paused bool

	// path of the most recent screenshot
	lastScreenshot string
}

// NewLoop is the preferred method of initialisation for the Loop type.
// Screenshots are saved to the filesystem.
func NewLoop(b *board.Board, fs afero.Fs, framerate float64) *Loop {
	return &Loop{
		b:         b,
		fs:        fs,
		framerate: framerate,
	}
}

// Paused returns true if the loop is paused.
func (l *Loop) Paused() bool {
	return l.paused
}

// LastScreenshot returns the path of the most recent screenshot. The empty
// string is returned if no screenshot has been saved.
func (l *Loop) LastScreenshot() string {
	return l.lastScreenshot
}

func (l *Loop) screenshot() {
	path, err := screenshot.Save(l.fs, "", "orchid", l.b.Frame(), screenshot.Options{
		Scale: 2,
	})
	if err != nil {
		logger.Log(logger.Allow, "gui", err)
		return
	}
	l.lastScreenshot = path
}

// Run the board until a Quit action or an error from the present function.
// The poll function returns the actions requested since it was last called.
// The present function is called with the screen image after every frame
// that is run.
func (l *Loop) Run(poll func() []Action, present func(img *image.RGBA) error) error {
	lim := limiter.NewFPSLimiter(l.framerate)
	defer lim.Stop()

	return l.b.Run(func() (board.State, error) {
		if !l.paused {
			if err := present(l.b.Frame()); err != nil {
				return board.Ending, err
			}
		}

		for _, a := range poll() {
			switch a {
			case Quit:
				return board.Ending, nil
			case TogglePause:
				l.paused = !l.paused
				logger.Logf(logger.Allow, "gui", "%s: %v", a, l.paused)
			case Screenshot:
				l.screenshot()
			}
		}

		lim.Wait()

		if l.paused {
			return board.Paused, nil
		}
		return board.Running, nil
	})
}
