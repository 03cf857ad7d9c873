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

package screenshot_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/screenshot"
	"github.com/jetsetilly/orchid/test"
	"github.com/spf13/afero"
)

func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
			} else {
				img.Set(x, y, color.RGBA{B: 0xff, A: 0xff})
			}
		}
	}
	return img
}

func TestScale(t *testing.T) {
	img := screenshot.Scale(checkerboard(4, 2), 3)
	test.ExpectEquality(t, img.Bounds().Dx(), 12)
	test.ExpectEquality(t, img.Bounds().Dy(), 6)

	// each source pixel becomes a 3x3 block
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(2, 2), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(3, 0), color.RGBA{B: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(3, 3), color.RGBA{R: 0xff, A: 0xff})
}

func TestEncode(t *testing.T) {
	var b bytes.Buffer
	err := screenshot.Encode(&b, checkerboard(4, 2), screenshot.Options{Scale: 2})
	test.DemandSuccess(t, err)

	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 8, 4))

	r, g, bl, _ := img.At(2, 0).RGBA()
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, g, 0)
	test.ExpectEquality(t, bl, 0xffff)
}

func TestEncodeErrors(t *testing.T) {
	var b bytes.Buffer

	err := screenshot.Encode(&b, image.NewRGBA(image.Rectangle{}), screenshot.Options{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, screenshot.EmptyImage))

	err = screenshot.Encode(&b, checkerboard(2, 2), screenshot.Options{Scale: screenshot.MaxScale + 1})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, screenshot.BadScale))

	err = screenshot.Encode(&b, checkerboard(2, 2), screenshot.Options{Scale: -1})
	test.ExpectFailure(t, err)
}

func TestCaption(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))

	var b bytes.Buffer
	err := screenshot.Encode(&b, img, screenshot.Options{Caption: "ORCHID"})
	test.DemandSuccess(t, err)

	dec, err := png.Decode(&b)
	test.DemandSuccess(t, err)

	var white int
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			r, g, bl, _ := dec.At(x, y).RGBA()
			if r == 0xffff && g == 0xffff && bl == 0xffff {
				white++
			}
		}
	}
	test.ExpectSuccess(t, white > 0)
}

func TestSave(t *testing.T) {
	fs := afero.NewMemMapFs()

	pth, err := screenshot.Save(fs, "frame.png", "", checkerboard(2, 2), screenshot.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, "frame.png")

	ok, err := afero.Exists(fs, "frame.png")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	pth, err = screenshot.Save(fs, "", "demo", checkerboard(2, 2), screenshot.Options{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(pth, "screenshot_demo_"))
	test.ExpectSuccess(t, strings.HasSuffix(pth, ".png"))
}
