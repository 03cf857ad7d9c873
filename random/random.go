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

package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Coords is the source of the emulation position used to seed the random
// number generator.
type Coords interface {
	Frame() int
	Scanline() int
}

// an upper limit on the number of scanlines in a frame. used to convert
// coordinates to a single number
const maxScanlines = 4096

// Random is a random number generator seeded from the emulation position.
type Random struct {
	coords Coords

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(coords Coords) *Random {
	return &Random{
		coords: coords,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var seed int64
	if rnd.coords != nil {
		seed = int64(rnd.coords.Frame())*maxScanlines + int64(rnd.coords.Scanline())
	}
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(p []byte) {
	r := rnd.rand()
	for i := range p {
		p[i] = byte(r.Intn(256))
	}
}
