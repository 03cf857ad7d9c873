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

package vram

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/logger"
)

// Sentinal error patterns.
const (
	BadSize     = "vram: bad size (%d)"
	LoadOverrun = "vram: load of %d bytes at %#x overruns memory (%d bytes)"
)

// VRAM is the video memory.
type VRAM struct {
	env  *environment.Environment
	perm logger.Permission
	data []byte

	// whether an access has wrapped since the last reset
	wrapped bool
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM(env *environment.Environment, size int) (*VRAM, error) {
	if size <= 0 {
		return nil, curated.Errorf(BadSize, size)
	}
	mem := &VRAM{
		env:  env,
		perm: logger.Allow,
		data: make([]byte, size),
	}
	if env != nil {
		mem.perm = env
	}
	mem.Reset()
	return mem, nil
}

// ID implements the device.Named interface.
func (mem *VRAM) ID() string {
	return "VRAM"
}

func (mem *VRAM) String() string {
	return fmt.Sprintf("%s: %d bytes", mem.ID(), len(mem.data))
}

// Reset implements the device.Resettable interface. The contents are cleared
// or randomised depending on the vram.randomise preference.
func (mem *VRAM) Reset() {
	mem.wrapped = false
	if mem.env != nil && mem.env.Prefs.VRAMRandomise.Get().(bool) {
		mem.env.Random.Fill(mem.data)
		return
	}
	clear(mem.data)
}

// Size returns the number of bytes of video memory.
func (mem *VRAM) Size() int {
	return len(mem.data)
}

// Bytes returns the underlying array. The array is not a copy.
func (mem *VRAM) Bytes() []byte {
	return mem.data
}

// Load copies the data into video memory at the offset.
func (mem *VRAM) Load(offset uint32, data []byte) error {
	if uint64(offset)+uint64(len(data)) > uint64(len(mem.data)) {
		return curated.Errorf(LoadOverrun, len(data), offset, len(mem.data))
	}
	copy(mem.data[offset:], data)
	return nil
}

// wrap returns the index into the array for the address
func (mem *VRAM) wrap(addr uint32) uint32 {
	sz := uint32(len(mem.data))
	if addr < sz {
		return addr
	}
	if !mem.wrapped {
		mem.wrapped = true
		logger.Logf(mem.perm, mem.ID(), "access at %08x wraps (size %08x)", addr, sz)
	}
	return addr % sz
}

// Read8 returns the byte at the address.
func (mem *VRAM) Read8(addr uint32) uint8 {
	return mem.data[mem.wrap(addr)]
}

// Read16 returns the little-endian word at the address.
func (mem *VRAM) Read16(addr uint32) uint16 {
	i := mem.wrap(addr)
	if int(i)+2 <= len(mem.data) {
		return binary.LittleEndian.Uint16(mem.data[i:])
	}
	return uint16(mem.Read8(addr)) | uint16(mem.Read8(addr+1))<<8
}

// Read32 returns the little-endian dword at the address.
func (mem *VRAM) Read32(addr uint32) uint32 {
	i := mem.wrap(addr)
	if int(i)+4 <= len(mem.data) {
		return binary.LittleEndian.Uint32(mem.data[i:])
	}
	return uint32(mem.Read16(addr)) | uint32(mem.Read16(addr+2))<<16
}

// Write8 stores the byte at the address.
func (mem *VRAM) Write8(addr uint32, data uint8) {
	mem.data[mem.wrap(addr)] = data
}

// Write16 stores the little-endian word at the address.
func (mem *VRAM) Write16(addr uint32, data uint16) {
	i := mem.wrap(addr)
	if int(i)+2 <= len(mem.data) {
		binary.LittleEndian.PutUint16(mem.data[i:], data)
		return
	}
	mem.Write8(addr, uint8(data))
	mem.Write8(addr+1, uint8(data>>8))
}

// Write32 stores the little-endian dword at the address.
func (mem *VRAM) Write32(addr uint32, data uint32) {
	i := mem.wrap(addr)
	if int(i)+4 <= len(mem.data) {
		binary.LittleEndian.PutUint32(mem.data[i:], data)
		return
	}
	mem.Write16(addr, uint16(data))
	mem.Write16(addr+2, uint16(data>>16))
}

// Read implements the device.Addressable interface.
func (mem *VRAM) Read(addr uint32, mask uint32) uint32 {
	return mem.Read32(addr&^3) & mask
}

// Write implements the device.Addressable interface.
func (mem *VRAM) Write(addr uint32, data uint32, mask uint32) {
	addr &^= 3
	v := mem.Read32(addr)
	mem.Write32(addr, (v&^mask)|(data&mask))
}
