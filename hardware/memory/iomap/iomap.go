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

package iomap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/logger"
)

// ReadFunc returns the value of a register. The mask is relative to the
// register and selects the bits being read.
type ReadFunc func(mask uint32) uint32

// WriteFunc updates a register. The data and mask are relative to the
// register.
type WriteFunc func(data uint32, mask uint32)

// Sentinal error patterns.
const (
	BadWidth     = "iomap: %s: bad register width (%d)"
	Misaligned   = "iomap: %s: misaligned register (%#x)"
	AlreadyInUse = "iomap: %s: address already in use (%#x by %s)"
)

type register struct {
	name   string
	offset uint32
	width  uint32
	read   ReadFunc
	write  WriteFunc
}

func (r *register) mask() uint32 {
	if r.width == 4 {
		return 0xffffffff
	}
	return (1 << (r.width * 8)) - 1
}

// Map of registers in an address space.
type Map struct {
	id   string
	perm logger.Permission

	// keyed by the address of every byte covered by the register
	regs map[uint32]*register
}

// NewMap is the preferred method of initialisation for the Map type. The ID
// is used when logging unmapped accesses.
func NewMap(id string, perm logger.Permission) *Map {
	return &Map{
		id:   id,
		perm: perm,
		regs: make(map[uint32]*register),
	}
}

// Install a register at the offset. The width is in bytes. Either of the
// read or write functions can be nil, in which case the register is
// write-only or read-only.
func (m *Map) Install(offset uint32, width uint32, name string, read ReadFunc, write WriteFunc) error {
	switch width {
	case 1, 2, 4:
	default:
		return curated.Errorf(BadWidth, name, width)
	}
	if offset%width != 0 {
		return curated.Errorf(Misaligned, name, offset)
	}
	for i := range width {
		if r, ok := m.regs[offset+i]; ok {
			return curated.Errorf(AlreadyInUse, name, offset+i, r.name)
		}
	}

	r := &register{
		name:   name,
		offset: offset,
		width:  width,
		read:   read,
		write:  write,
	}
	for i := range width {
		m.regs[offset+i] = r
	}

	return nil
}

// Lookup returns the name of the register at the address.
func (m *Map) Lookup(addr uint32) (string, bool) {
	if r, ok := m.regs[addr]; ok {
		return r.name, true
	}
	return "", false
}

// visit each register touched by the masked dword access. the function is
// called with the shift of the register in the dword and the register's
// relative mask. the returned mask is the set of lanes not covered by a
// register
func (m *Map) visit(addr uint32, mask uint32, f func(r *register, shift uint32, rmask uint32)) uint32 {
	addr &^= 3
	var unmapped uint32

	for lane := uint32(0); lane < 4; {
		laneMask := uint32(0xff) << (lane * 8)

		r, ok := m.regs[addr+lane]
		if !ok {
			unmapped |= mask & laneMask
			lane++
			continue
		}

		shift := (r.offset - addr) * 8
		rmask := (mask >> shift) & r.mask()
		if rmask != 0 {
			f(r, shift, rmask)
		}
		lane += r.width
	}

	return unmapped
}

// Read the dword at the address. Only the lanes selected by the mask are read.
func (m *Map) Read(addr uint32, mask uint32) uint32 {
	var data uint32
	unmapped := m.visit(addr, mask, func(r *register, shift uint32, rmask uint32) {
		if r.read != nil {
			data |= (r.read(rmask) & rmask) << shift
		}
	})
	if unmapped != 0 {
		logger.Logf(m.perm, m.id, "unmapped read at %05x & %08x", addr&^3, unmapped)
	}
	return data
}

// Write the dword at the address. Only the lanes selected by the mask are
// written.
func (m *Map) Write(addr uint32, data uint32, mask uint32) {
	unmapped := m.visit(addr, mask, func(r *register, shift uint32, rmask uint32) {
		if r.write != nil {
			r.write((data>>shift)&r.mask(), rmask)
		}
	})
	if unmapped != 0 {
		logger.Logf(m.perm, m.id, "unmapped write at %05x: %08x & %08x", addr&^3, data, unmapped)
	}
}

// Read8 reads the byte at the address.
func (m *Map) Read8(addr uint32) uint8 {
	shift := (addr & 3) * 8
	return uint8(m.Read(addr, 0xff<<shift) >> shift)
}

// Read16 reads the little-endian word at the address.
func (m *Map) Read16(addr uint32) uint16 {
	if addr&1 != 0 {
		return uint16(m.Read8(addr)) | uint16(m.Read8(addr+1))<<8
	}
	shift := (addr & 3) * 8
	return uint16(m.Read(addr, 0xffff<<shift) >> shift)
}

// Read32 reads the little-endian dword at the address.
func (m *Map) Read32(addr uint32) uint32 {
	if addr&3 != 0 {
		return uint32(m.Read16(addr)) | uint32(m.Read16(addr+2))<<16
	}
	return m.Read(addr, 0xffffffff)
}

// Write8 writes the byte at the address.
func (m *Map) Write8(addr uint32, data uint8) {
	shift := (addr & 3) * 8
	m.Write(addr, uint32(data)<<shift, 0xff<<shift)
}

// Write16 writes the little-endian word at the address.
func (m *Map) Write16(addr uint32, data uint16) {
	if addr&1 != 0 {
		m.Write8(addr, uint8(data))
		m.Write8(addr+1, uint8(data>>8))
		return
	}
	shift := (addr & 3) * 8
	m.Write(addr, uint32(data)<<shift, 0xffff<<shift)
}

// Write32 writes the little-endian dword at the address.
func (m *Map) Write32(addr uint32, data uint32) {
	if addr&3 != 0 {
		m.Write16(addr, uint16(data))
		m.Write16(addr+2, uint16(data>>16))
		return
	}
	m.Write(addr, data, 0xffffffff)
}

// String returns a listing of the installed registers in address order.
func (m *Map) String() string {
	seen := make(map[*register]bool)
	regs := make([]*register, 0, len(m.regs))
	for _, r := range m.regs {
		if !seen[r] {
			seen[r] = true
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].offset < regs[j].offset
	})

	s := strings.Builder{}
	for _, r := range regs {
		s.WriteString(fmt.Sprintf("%05x %-6s %d\n", r.offset, r.name, r.width*8))
	}
	return s.String()
}
