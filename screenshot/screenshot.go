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

// Package screenshot encodes the scanout of the board as a PNG image. The
// image can be scaled and a caption can be drawn along the bottom edge.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/logger"
	"github.com/jetsetilly/orchid/paths"
	"github.com/spf13/afero"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Sentinal error patterns.
const (
	EmptyImage = "screenshot: image is empty"
	BadScale   = "screenshot: scale must be between 1 and %d"
)

// MaxScale is the largest scaling factor accepted by Encode().
const MaxScale = 8

// Options for the encoded image.
type Options struct {
	// a scale of zero is treated as one
	Scale int

	// drawn in the bottom left corner of the image if not empty
	Caption string
}

// Scale returns a copy of the image scaled by the factor. Scaling is nearest
// neighbour so that individual pixels stay sharp.
func Scale(img image.Image, scale int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// the caption is drawn with a dark shadow so that it is readable on any
// background
func caption(dst *image.RGBA, s string) {
	face := basicfont.Face7x13
	base := dst.Bounds().Max.Y - face.Descent - 1

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 0xff}),
		Face: face,
		Dot:  fixed.P(3, base+1),
	}
	d.DrawString(s)

	d.Src = image.NewUniform(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	d.Dot = fixed.P(2, base)
	d.DrawString(s)
}

// Encode the image as a PNG to the writer.
func Encode(w io.Writer, img image.Image, opts Options) error {
	if img == nil || img.Bounds().Empty() {
		return curated.Errorf(EmptyImage)
	}

	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Scale < 1 || opts.Scale > MaxScale {
		return curated.Errorf(BadScale, MaxScale)
	}

	dst := Scale(img, opts.Scale)
	if opts.Caption != "" {
		caption(dst, opts.Caption)
	}

	if err := png.Encode(w, dst); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}

// Save the image as a PNG file. If path is empty a unique filename is
// created from the name argument. The path of the saved file is returned.
func Save(fs afero.Fs, path string, name string, img image.Image, opts Options) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", name))
	}

	f, err := fs.Create(path)
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	err = Encode(f, img, opts)
	if err != nil {
		_ = f.Close()
		return "", err
	}

	err = f.Close()
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return path, nil
}
