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

package neogeo

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/logger"
)

// Sentinal error patterns.
const (
	PatchTooSmall = "sbp: cpu rom too small to patch (%d bytes)"
	OddLength     = "sbp: rom data has odd length (%d bytes)"
)

// the protected area starts at this byte offset in the ROM
const protectedBase = 0x200

// reads from this address are not scrambled
const plainAddress = 0xd5e

// the game writes to this address as a matter of course
const watchdogAddress = 0x1080

// SBP is the protection device.
type SBP struct {
	env *environment.Environment
	rom []uint16

	// writes that were not expected. the count is reset on Reset()
	unexpected int
}

// NewSBP is the preferred method of initialisation for the SBP type. The ROM
// is the cartridge ROM as a slice of words.
func NewSBP(env *environment.Environment, rom []uint16) *SBP {
	return &SBP{
		env: env,
		rom: rom,
	}
}

// Words converts little-endian ROM data to the word slice expected by
// NewSBP().
func Words(data []byte) ([]uint16, error) {
	if len(data)&1 != 0 {
		return nil, curated.Errorf(OddLength, len(data))
	}
	w := make([]uint16, len(data)/2)
	for i := range w {
		w[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return w, nil
}

// ID returns the name of the device.
func (sbp *SBP) ID() string {
	return "SBP"
}

func (sbp *SBP) String() string {
	return fmt.Sprintf("%s: %d words (%d unexpected writes)", sbp.ID(), len(sbp.rom), sbp.unexpected)
}

// Reset the device.
func (sbp *SBP) Reset() {
	sbp.unexpected = 0
}

// UnexpectedWrites returns the number of writes that were logged since the
// last reset.
func (sbp *SBP) UnexpectedWrites() int {
	return sbp.unexpected
}

// swap the nibbles in each byte of the word
func swap(v uint16) uint16 {
	return (v&0x0f0f)<<4 | (v&0xf0f0)>>4
}

// Read the word at the offset in the protected area. The offset is in words.
func (sbp *SBP) Read(offset uint32) uint16 {
	idx := offset + protectedBase/2

	var raw uint16
	if int(idx) < len(sbp.rom) {
		raw = sbp.rom[idx]
	} else {
		raw = 0xffff
	}
	data := swap(raw)

	addr := protectedBase + offset*2
	logger.Logf(sbp.env, sbp.ID(), "offset %08x data %04x", addr, data)

	if addr == plainAddress {
		return raw
	}
	return data
}

// Write to the protected area. The offset is in words. Writes do not change
// the ROM.
func (sbp *SBP) Write(offset uint32, data uint16, mask uint16) {
	addr := protectedBase + offset*2

	if addr == watchdogAddress && (data == 0x4e75 || data == 0xffff) {
		return
	}

	sbp.unexpected++
	logger.Logf(sbp.env, sbp.ID(), "unexpected write: offset %08x data %04x & %04x", addr, data, mask)
}

// the patches made to the CPU ROM. the addresses are byte addresses and are
// rounded down to the word
var patches = []struct {
	addr uint32
	data uint16
}{
	// the game clears the text overlay immediately after writing it
	{0x2a6f8, 0x4e71},
	{0x2a6fa, 0x4e71},
	{0x2a6fc, 0x4e71},

	// joystick inputs
	{0x3ff2d, 0x7001},
}

// Patch the CPU ROM. The ROM is viewed as a sequence of little-endian words.
func (sbp *SBP) Patch(cpurom []byte) error {
	for _, p := range patches {
		idx := (p.addr / 2) * 2
		if int(idx)+2 > len(cpurom) {
			return curated.Errorf(PatchTooSmall, len(cpurom))
		}
	}

	for _, p := range patches {
		idx := (p.addr / 2) * 2
		binary.LittleEndian.PutUint16(cpurom[idx:], p.data)
	}

	logger.Logf(sbp.env, sbp.ID(), "patched cpu rom (%d bytes)", len(cpurom))

	return nil
}

// DecryptAll prepares the CPU ROM. The ROM is patched if the sbp.patch
// preference is set.
func (sbp *SBP) DecryptAll(cpurom []byte) error {
	if !sbp.env.Prefs.SBPPatch.Get().(bool) {
		return nil
	}
	return sbp.Patch(cpurom)
}

// Descramble returns the protected area as the CPU would see it. The number
// of words is limited by the size of the ROM.
func (sbp *SBP) Descramble(words int) []uint16 {
	n := len(sbp.rom) - protectedBase/2
	if n < 0 {
		n = 0
	}
	if words < n {
		n = words
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = sbp.Read(uint32(i))
	}
	return out
}
