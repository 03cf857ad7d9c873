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

package mb86292

import (
	"fmt"
	"strings"
)

// Memory is the video memory as seen by the disassembler.
type Memory interface {
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
}

// Display list command types. The command type is the top byte of the first
// word of a command.
const (
	OpDrawRectP         = 0x09
	OpBltCopyAlternateP = 0x0f
	OpGNop              = 0x20
	OpGInit             = 0x40
	OpGViewport         = 0x41
	OpGDepthRange       = 0x42
	OpGViewVolumeXYClip = 0x44
	OpGViewVolumeZClip  = 0x45
	OpDraw              = 0xf0
	OpSetRegister       = 0xf1
	OpInterrupt         = 0xfd
)

// the end of the display list when the LCO register is zero
const maxListSpan = 0x1000000

// listSpan returns the number of bytes in a display list of count words
func listSpan(count uint32) uint32 {
	if count == 0 {
		return maxListSpan
	}
	return count << 2
}

// operands returns the number of words that follow the opcode word
func operands(op uint32) uint32 {
	switch op >> 24 {
	case OpDrawRectP:
		return 2
	case OpBltCopyAlternateP:
		return 7
	case OpGViewport, OpGViewVolumeXYClip:
		return 4
	case OpGDepthRange, OpGViewVolumeZClip:
		return 2
	case OpSetRegister:
		return (op >> 16) & 0xff
	}
	return 0
}

// Entry is a single disassembled display list command.
type Entry struct {
	Address uint32
	Opcode  uint32
	Name    string

	// the decoded operands. one line for each group of operands
	Operands string

	// the number of words in the command, including the opcode
	Words uint32
}

func (e Entry) String() string {
	s := fmt.Sprintf("PC=%08x %08x %s", e.Address, e.Opcode, e.Name)
	if e.Operands == "" {
		return s
	}
	return fmt.Sprintf("%s\n\t%s", s, strings.ReplaceAll(e.Operands, "\n", "\n\t"))
}

// Decode the command at the address.
func Decode(mem Memory, addr uint32) Entry {
	op := mem.Read32(addr)
	cmd := (op >> 16) & 0xff

	e := Entry{
		Address: addr,
		Opcode:  op,
		Words:   1 + operands(op),
	}

	word := func(o uint32) uint16 {
		return mem.Read16(addr + o)
	}
	dword := func(o uint32) uint32 {
		return mem.Read32(addr + o)
	}

	switch op >> 24 {
	case OpDrawRectP:
		switch cmd {
		case 0x41:
			e.Name = "DrawRectP (BltFill)"
		case 0xe2:
			e.Name = "DrawRectP (ClearPolyFlag)"
		default:
			e.Name = "DrawRectP (<reserved>)"
		}
		e.Operands = fmt.Sprintf("%04x|%04x\n%04x|%04x", word(0x06), word(0x04), word(0x0a), word(0x08))

	case OpBltCopyAlternateP:
		if cmd == 0x44 {
			e.Name = "BltCopyAlternateP (TopLeft)"
		} else {
			e.Name = "BltCopyAlternateP (<reserved>)"
		}
		e.Operands = fmt.Sprintf("%08x %08x %04x|%04x\n%08x %08x %04x|%04x\n%04x|%04x",
			dword(0x04), dword(0x08), word(0x0e), word(0x0c),
			dword(0x10), dword(0x14), word(0x1a), word(0x18),
			word(0x1e), word(0x1c))

	case OpGNop:
		e.Name = "G_Nop"

	case OpGInit:
		e.Name = "G_Init"

	case OpGViewport:
		e.Name = "G_Viewport"
		e.Operands = fmt.Sprintf("%08x %08x %08x %08x", dword(0x04), dword(0x08), dword(0x0c), dword(0x10))

	case OpGDepthRange:
		e.Name = "G_DepthRange"
		e.Operands = fmt.Sprintf("%08x %08x", dword(0x04), dword(0x08))

	case OpGViewVolumeXYClip:
		e.Name = "G_ViewVolumeXYClip"
		e.Operands = fmt.Sprintf("%08x %08x %08x %08x", dword(0x04), dword(0x08), dword(0x0c), dword(0x10))

	case OpGViewVolumeZClip:
		e.Name = "G_ViewVolumeZClip"
		e.Operands = fmt.Sprintf("%08x %08x", dword(0x04), dword(0x08))

	case OpDraw:
		switch cmd {
		case 0xc1:
			e.Name = "Draw (Flush_FB)"
		case 0xc2:
			e.Name = "Draw (Flush_Z)"
		case 0xe1:
			e.Name = "Draw (PolygonEnd)"
		default:
			e.Name = "Draw (<reserved>)"
		}

	case OpSetRegister:
		e.Name = fmt.Sprintf("SetRegister (count=%d)", cmd)
		reg := (op & 0xffff) << 2
		s := make([]string, 0, cmd)
		for i := range cmd {
			s = append(s, fmt.Sprintf("[%05x] -> %08x", DrawBase|((reg+i*4)&0xffff), dword(4+i*4)))
		}
		e.Operands = strings.Join(s, "\n")

	case OpInterrupt:
		e.Name = "Interrupt"

	default:
		e.Name = "<unsupported>"
	}

	return e
}

// Disassemble the display list at address lsa of count words. An LCO of zero
// is treated the same way as the LCO register. No more than max entries are
// returned. A max of zero or less means no limit.
func Disassemble(mem Memory, lsa uint32, lco uint32, max int) []Entry {
	var ents []Entry

	end := lsa + listSpan(lco)
	for addr := lsa; addr < end; {
		if max > 0 && len(ents) >= max {
			break // for loop
		}
		e := Decode(mem, addr)
		ents = append(ents, e)
		addr += e.Words << 2
	}

	return ents
}
