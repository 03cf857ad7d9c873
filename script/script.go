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

package script

import (
	"fmt"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/jetsetilly/orchid/hardware/mb86292"
	"github.com/jetsetilly/orchid/logger"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %v"
	NoScript    = "script: cannot open %s"
)

// MaxFrames is the largest number of frames a single call to orchid.frames()
// can run.
const MaxFrames = 36000

// registers available to scripts as global values
var registers = map[string]uint32{
	"IST":  mb86292.IST,
	"MASK": mb86292.MASK,
	"LSA":  mb86292.LSA,
	"LCO":  mb86292.LCO,
	"LREQ": mb86292.LREQ,
	"DCE":  mb86292.DCE,
	"HTP":  mb86292.HTP,
	"HDP":  mb86292.HDP,
	"HDB":  mb86292.HDB,
	"HSP":  mb86292.HSP,
	"HSW":  mb86292.HSW,
	"VSW":  mb86292.VSW,
	"VTR":  mb86292.VTR,
	"VSP":  mb86292.VSP,
	"VDP":  mb86292.VDP,
	"CM":   mb86292.CM,
	"CDA":  mb86292.CDA,
	"FBR":  mb86292.FBR,
	"XRES": mb86292.XRES,
	"FC":   mb86292.FC,
	"BC":   mb86292.BC,
}

// Script is a Lua interpreter bound to a board.
type Script struct {
	b *board.Board
	L *lua.LState

	// number of frames run by the script since creation
	frames int
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the Script is no longer
// required.
func NewScript(b *board.Board) *Script {
	scr := &Script{
		b: b,
		L: lua.NewState(),
	}

	tbl := scr.L.SetFuncs(scr.L.NewTable(), map[string]lua.LGFunction{
		"write":   scr.write,
		"write8":  scr.write8,
		"write16": scr.write16,
		"read":    scr.read,
		"read16":  scr.read16,
		"poke":    scr.poke,
		"poke16":  scr.poke16,
		"peek":    scr.peek,
		"fill":    scr.fill,
		"frames":  scr.runFrames,
		"reset":   scr.reset,
		"irq":     scr.irq,
		"edges":   scr.edges,
		"log":     scr.log,

		"snapshot": scr.snapshot,
		"plumb":    scr.plumb,
	})
	scr.L.SetGlobal("orchid", tbl)

	for name, addr := range registers {
		scr.L.SetGlobal(name, lua.LNumber(addr))
	}

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// Frames returns the number of frames run by the script.
func (scr *Script) Frames() int {
	return scr.frames
}

// RunString runs the Lua source.
func (scr *Script) RunString(src string) error {
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile loads and runs the named Lua file from the filesystem.
func (scr *Script) RunFile(fs afero.Fs, filename string) error {
	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return curated.Errorf(NoScript, filename)
	}
	logger.Logf(logger.Allow, "script", "running %s", filename)
	return scr.RunString(string(src))
}

func checkAddress(L *lua.LState, n int) uint32 {
	v := L.CheckInt64(n)
	if v < 0 || v > 0xffffffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", v))
	}
	return uint32(v)
}

func checkValue(L *lua.LState, n int) uint32 {
	// negative values are accepted and truncated to 32 bits
	return uint32(L.CheckInt64(n))
}

func (scr *Script) write(L *lua.LState) int {
	scr.b.GC.Write32(checkAddress(L, 1), checkValue(L, 2))
	return 0
}

func (scr *Script) write8(L *lua.LState) int {
	scr.b.GC.Write8(checkAddress(L, 1), uint8(checkValue(L, 2)))
	return 0
}

func (scr *Script) write16(L *lua.LState) int {
	scr.b.GC.Write16(checkAddress(L, 1), uint16(checkValue(L, 2)))
	return 0
}

func (scr *Script) read(L *lua.LState) int {
	L.Push(lua.LNumber(scr.b.GC.Read32(checkAddress(L, 1))))
	return 1
}

func (scr *Script) read16(L *lua.LState) int {
	L.Push(lua.LNumber(scr.b.GC.Read16(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.b.Mem.Write32(checkAddress(L, 1), checkValue(L, 2))
	return 0
}

func (scr *Script) poke16(L *lua.LState) int {
	scr.b.Mem.Write16(checkAddress(L, 1), uint16(checkValue(L, 2)))
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.b.Mem.Read32(checkAddress(L, 1))))
	return 1
}

func (scr *Script) fill(L *lua.LState) int {
	addr := checkAddress(L, 1)
	n := L.CheckInt(2)
	v := uint16(checkValue(L, 3))
	for i := 0; i < n; i++ {
		scr.b.Mem.Write16(addr+uint32(i*2), v)
	}
	return 0
}

func (scr *Script) runFrames(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > MaxFrames {
		L.ArgError(1, fmt.Sprintf("number of frames must be between 0 and %d", MaxFrames))
	}
	scr.b.RunFrames(n)
	scr.frames += n
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.b.Reset()
	return 0
}

func (scr *Script) irq(L *lua.LState) int {
	L.Push(lua.LBool(scr.b.InterruptLine()))
	return 1
}

func (scr *Script) edges(L *lua.LState) int {
	L.Push(lua.LNumber(scr.b.InterruptEdges()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) snapshot(L *lua.LState) int {
	L.Push(lua.LString(scr.b.Snapshot()))
	return 1
}

func (scr *Script) plumb(L *lua.LState) int {
	if err := scr.b.Plumb([]byte(L.CheckString(1))); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
