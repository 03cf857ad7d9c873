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

// Package tcellscreen presents the screen of an Orchid board in a text
// terminal. Each character cell shows two pixels, one above the other, by
// drawing the upper half block character with different foreground and
// background colours. The image is scaled to fit the terminal.
//
// Keys:
//
//	q or ESC    quit
//	space       pause
//	s           screenshot
package tcellscreen

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell"
	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/gui"
	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/spf13/afero"
	"golang.org/x/image/draw"
)

// the character used to draw two pixels in a single cell
const halfBlock = '▀'

// Viewer implements the gui.Viewer interface for text terminals.
type Viewer struct {
	b    *board.Board
	scr  tcell.Screen
	loop *gui.Loop

	events chan tcell.Event

	// image scaled to the size of the terminal. reused between frames
	scaled *image.RGBA
}

// NewViewer is the preferred method of initialisation for the Viewer type. If
// the screen argument is nil a screen is created for the current terminal.
func NewViewer(b *board.Board, scr tcell.Screen, fs afero.Fs, framerate float64) (*Viewer, error) {
	var err error

	if scr == nil {
		scr, err = tcell.NewScreen()
		if err != nil {
			return nil, curated.Errorf("tcellscreen: %v", err)
		}
	}

	err = scr.Init()
	if err != nil {
		return nil, curated.Errorf("tcellscreen: %v", err)
	}
	scr.HideCursor()
	scr.Clear()

	v := &Viewer{
		b:      b,
		scr:    scr,
		loop:   gui.NewLoop(b, fs, framerate),
		events: make(chan tcell.Event, 16),
	}

	// PollEvent() returns nil once the screen has been finalised
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(v.events)
				return
			}
			v.events <- ev
		}
	}()

	return v, nil
}

// Close implements the gui.Viewer interface.
func (v *Viewer) Close() {
	v.scr.Fini()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw the image to the terminal.
func (v *Viewer) Draw(img *image.RGBA) {
	w, h := v.scr.Size()
	if img.Bounds().Empty() || w <= 0 || h <= 0 {
		v.scr.Clear()
		v.scr.Show()
		return
	}

	// two pixels for every row of character cells
	sz := image.Rect(0, 0, w, h*2)
	if v.scaled == nil || v.scaled.Bounds() != sz {
		v.scaled = image.NewRGBA(sz)
	}
	draw.NearestNeighbor.Scale(v.scaled, sz, img, img.Bounds(), draw.Src, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			st := tcell.StyleDefault.
				Foreground(rgb(v.scaled.RGBAAt(x, y*2))).
				Background(rgb(v.scaled.RGBAAt(x, y*2+1)))
			v.scr.SetContent(x, y, halfBlock, nil, st)
		}
	}

	v.scr.Show()
}

// translate tcell events into actions
func (v *Viewer) poll() []gui.Action {
	var actions []gui.Action
	for {
		select {
		case ev, ok := <-v.events:
			if !ok {
				return append(actions, gui.Quit)
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape:
					actions = append(actions, gui.Quit)
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					actions = append(actions, gui.Quit)
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					actions = append(actions, gui.TogglePause)
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 's' || ev.Rune() == 'S'):
					actions = append(actions, gui.Screenshot)
				}
			case *tcell.EventResize:
				v.scr.Sync()
			}
		default:
			return actions
		}
	}
}

// Run implements the gui.Viewer interface.
func (v *Viewer) Run() error {
	return v.loop.Run(v.poll, func(img *image.RGBA) error {
		v.Draw(img)
		return nil
	})
}
