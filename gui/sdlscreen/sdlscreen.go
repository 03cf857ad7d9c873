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

// Package sdlscreen presents the screen of an Orchid board in an SDL window.
// The scanout image is copied to a streaming texture every frame and the
// renderer scales the texture to the size of the window.
//
// Keys:
//
//	q or ESC    quit
//	space       pause
//	s           screenshot
//	f           toggle fullscreen
//
// SDL requires that the functions in this package are called from the main
// thread.
package sdlscreen

import (
	"image"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/gui"
	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/jetsetilly/orchid/logger"
	"github.com/spf13/afero"
	"github.com/veandco/go-sdl2/sdl"
)

// window size used before the screen is configured
const (
	defaultWidth  = 640
	defaultHeight = 480
)

// number of bytes per pixel in the texture
const pixelDepth = 4

// Viewer implements the gui.Viewer interface with an SDL window.
type Viewer struct {
	b    *board.Board
	loop *gui.Loop

	window   *sdl.Window
	renderer *sdl.Renderer

	// the texture is recreated whenever the size of the screen changes
	texture *sdl.Texture
	texW    int
	texH    int

	fullscreen bool
}

// NewViewer is the preferred method of initialisation for the Viewer type. The
// scale value is the initial size of the window as a multiple of the screen
// size.
func NewViewer(b *board.Board, fs afero.Fs, framerate float64, scale int) (*Viewer, error) {
	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	v := &Viewer{
		b:    b,
		loop: gui.NewLoop(b, fs, framerate),
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	v.window, err = sdl.CreateWindow("Orchid",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(defaultWidth*scale), int32(defaultHeight*scale),
		uint32(sdl.WINDOW_SHOWN)|uint32(sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	v.renderer, err = sdl.CreateRenderer(v.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		v.Close()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	return v, nil
}

// Close implements the gui.Viewer interface.
func (v *Viewer) Close() {
	if v.texture != nil {
		_ = v.texture.Destroy()
		v.texture = nil
	}
	if v.renderer != nil {
		_ = v.renderer.Destroy()
		v.renderer = nil
	}
	if v.window != nil {
		_ = v.window.Destroy()
		v.window = nil
	}
	sdl.Quit()
}

// prepare the texture for an image of the width and height
func (v *Viewer) resize(w int, h int) error {
	if v.texture != nil && v.texW == w && v.texH == h {
		return nil
	}

	if v.texture != nil {
		_ = v.texture.Destroy()
		v.texture = nil
	}

	var err error
	v.texture, err = v.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), int32(w), int32(h))
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	v.texW = w
	v.texH = h

	err = v.renderer.SetLogicalSize(int32(w), int32(h))
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	logger.Logf(logger.Allow, "sdlscreen", "texture resized to %d x %d", w, h)

	return nil
}

// present the image in the window
func (v *Viewer) present(img *image.RGBA) error {
	_ = v.renderer.SetDrawColor(0, 0, 0, 0xff)
	_ = v.renderer.Clear()

	b := img.Bounds()
	if !b.Empty() {
		if err := v.resize(b.Dx(), b.Dy()); err != nil {
			return err
		}

		// the ABGR8888 format has the same byte order as image.RGBA on little
		// endian machines
		if img.Stride != b.Dx()*pixelDepth {
			return curated.Errorf("sdlscreen: unexpected image stride (%d)", img.Stride)
		}
		if err := v.texture.Update(nil, img.Pix, img.Stride); err != nil {
			return curated.Errorf("sdlscreen: %v", err)
		}
		if err := v.renderer.Copy(v.texture, nil, nil); err != nil {
			return curated.Errorf("sdlscreen: %v", err)
		}
	}

	v.renderer.Present()

	return nil
}

func (v *Viewer) toggleFullscreen() {
	v.fullscreen = !v.fullscreen
	var flags uint32
	if v.fullscreen {
		flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	if err := v.window.SetFullscreen(flags); err != nil {
		logger.Log(logger.Allow, "sdlscreen", err)
	}
}

// translate SDL events into actions
func (v *Viewer) poll() []gui.Action {
	var actions []gui.Action

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			actions = append(actions, gui.Quit)

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue // for loop
			}
			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
				actions = append(actions, gui.Quit)
			case sdl.SCANCODE_SPACE:
				actions = append(actions, gui.TogglePause)
			case sdl.SCANCODE_S:
				actions = append(actions, gui.Screenshot)
			case sdl.SCANCODE_F:
				v.toggleFullscreen()
			}
		}
	}

	return actions
}

// Run implements the gui.Viewer interface.
func (v *Viewer) Run() error {
	return v.loop.Run(v.poll, v.present)
}
