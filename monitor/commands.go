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

package monitor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/hardware/mb86292"
	"github.com/jetsetilly/orchid/logger"
	"github.com/jetsetilly/orchid/monitor/terminal"
	"github.com/jetsetilly/orchid/romloader"
	"github.com/jetsetilly/orchid/screenshot"
	"github.com/spf13/afero"
)

// Sentinal error patterns.
const (
	UnknownCommand   = "monitor: unknown command (%s)"
	AmbiguousCommand = "monitor: ambiguous command (%s)"
	TooFewArguments  = "monitor: %s: too few arguments"
	TooManyArguments = "monitor: %s: too many arguments"
	BadArgument      = "monitor: %s: bad argument (%s)"
)

// list of command names
const (
	cmdDisasm     = "DISASM"
	cmdFrames     = "FRAMES"
	cmdHelp       = "HELP"
	cmdIRQ        = "IRQ"
	cmdLoad       = "LOAD"
	cmdLog        = "LOG"
	cmdMemviz     = "MEMVIZ"
	cmdPeek       = "PEEK"
	cmdPoke       = "POKE"
	cmdQuit       = "QUIT"
	cmdRead       = "READ"
	cmdRegmap     = "REGMAP"
	cmdReset      = "RESET"
	cmdRestore    = "RESTORE"
	cmdSave       = "SAVE"
	cmdScreenshot = "SCREENSHOT"
	cmdScript     = "SCRIPT"
	cmdStatus     = "STATUS"
	cmdWrite      = "WRITE"
)

// limits on the amount of output from a single command
const (
	defaultDisasm = 32
	maxPeek       = 256
	defaultLog    = 10
)

type command struct {
	name  string
	usage string
	help  string

	// a maxArgs value of -1 means there is no limit
	minArgs int
	maxArgs int

	fn func(mon *Monitor, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{cmdDisasm, "DISASM [lsa] [lco] [max]", "disassemble a display list. defaults to the LSA and LCO registers", 0, 3, disasm},
		{cmdFrames, "FRAMES [n]", "run the board for n frames", 0, 1, frames},
		{cmdHelp, "HELP [command]", "list commands or show help for a command", 0, 1, help},
		{cmdIRQ, "IRQ", "show the interrupt line", 0, 0, irq},
		{cmdLoad, "LOAD file [offset]", "load a file or archive into video memory", 1, 2, load},
		{cmdLog, "LOG [n]", "show the most recent log entries", 0, 1, showLog},
		{cmdMemviz, "MEMVIZ file", "write the register file as a graphviz document", 1, 1, memvizRegisters},
		{cmdPeek, "PEEK addr [count]", "read 32-bit words from video memory", 1, 2, peek},
		{cmdPoke, "POKE addr value [value...]", "write 32-bit words to video memory", 2, -1, poke},
		{cmdQuit, "QUIT", "leave the monitor", 0, 0, quit},
		{cmdRead, "READ addr [8|16|32]", "read a register", 1, 2, read},
		{cmdRegmap, "REGMAP", "list the register map", 0, 0, regmap},
		{cmdReset, "RESET", "reset the board", 0, 0, reset},
		{cmdRestore, "RESTORE file", "restore the register state from a file", 1, 1, restoreState},
		{cmdSave, "SAVE file", "save the register state to a file", 1, 1, saveState},
		{cmdScreenshot, "SCREENSHOT [file] [scale]", "save the visible screen as a PNG", 0, 2, shot},
		{cmdScript, "SCRIPT file", "run a Lua script", 1, 1, runScript},
		{cmdStatus, "STATUS", "show the state of the graphics controller", 0, 0, status},
		{cmdWrite, "WRITE addr value [8|16|32]", "write a register", 2, 3, write},
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].name < commands[j].name
	})
}

// lookup finds the command for the keyword. a keyword can be an abbreviation
// of the command if the abbreviation is unique
func lookup(keyword string) (command, error) {
	keyword = strings.ToUpper(keyword)

	var found []command
	for _, c := range commands {
		if c.name == keyword {
			return c, nil
		}
		if strings.HasPrefix(c.name, keyword) {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return command{}, curated.Errorf(UnknownCommand, keyword)
	case 1:
		return found[0], nil
	}

	return command{}, curated.Errorf(AmbiguousCommand, keyword)
}

// parseNumber accepts decimal and hexadecimal numbers. hexadecimal numbers
// are prefixed with 0x or $
func parseNumber(cmd string, s string) (uint32, error) {
	v := s
	base := 0
	if strings.HasPrefix(v, "$") {
		v = v[1:]
		base = 16
	}
	n, err := strconv.ParseUint(v, base, 32)
	if err != nil {
		return 0, curated.Errorf(BadArgument, cmd, s)
	}
	return uint32(n), nil
}

func parseWidth(cmd string, args []string, idx int) (int, error) {
	if len(args) <= idx {
		return 32, nil
	}
	switch args[idx] {
	case "8":
		return 8, nil
	case "16":
		return 16, nil
	case "32":
		return 32, nil
	}
	return 0, curated.Errorf(BadArgument, cmd, args[idx])
}

func help(mon *Monitor, args []string) error {
	if len(args) == 1 {
		c, err := lookup(args[0])
		if err != nil {
			return err
		}
		mon.print(terminal.StyleHelp, c.usage)
		mon.print(terminal.StyleHelp, c.help)
		return nil
	}

	for _, c := range commands {
		mon.printf(terminal.StyleHelp, "%-28s %s", c.usage, c.help)
	}
	return nil
}

func status(mon *Monitor, _ []string) error {
	mon.print(terminal.StyleRegister, mon.b.GC.Status())
	mon.print(terminal.StyleRegister, mon.b.String())
	return nil
}

func regmap(mon *Monitor, _ []string) error {
	mon.print(terminal.StyleRegister, mon.b.GC.RegisterMap())
	return nil
}

func read(mon *Monitor, args []string) error {
	addr, err := parseNumber(cmdRead, args[0])
	if err != nil {
		return err
	}
	width, err := parseWidth(cmdRead, args, 1)
	if err != nil {
		return err
	}

	switch width {
	case 8:
		mon.printf(terminal.StyleRegister, "%05x: %02x", addr, mon.b.GC.Read8(addr))
	case 16:
		mon.printf(terminal.StyleRegister, "%05x: %04x", addr, mon.b.GC.Read16(addr))
	default:
		mon.printf(terminal.StyleRegister, "%05x: %08x", addr, mon.b.GC.Read32(addr))
	}
	return nil
}

func write(mon *Monitor, args []string) error {
	addr, err := parseNumber(cmdWrite, args[0])
	if err != nil {
		return err
	}
	data, err := parseNumber(cmdWrite, args[1])
	if err != nil {
		return err
	}
	width, err := parseWidth(cmdWrite, args, 2)
	if err != nil {
		return err
	}

	switch width {
	case 8:
		mon.b.GC.Write8(addr, uint8(data))
	case 16:
		mon.b.GC.Write16(addr, uint16(data))
	default:
		mon.b.GC.Write32(addr, data)
	}
	return nil
}

func peek(mon *Monitor, args []string) error {
	addr, err := parseNumber(cmdPeek, args[0])
	if err != nil {
		return err
	}

	count := uint32(4)
	if len(args) > 1 {
		count, err = parseNumber(cmdPeek, args[1])
		if err != nil {
			return err
		}
		if count == 0 || count > maxPeek {
			return curated.Errorf(BadArgument, cmdPeek, args[1])
		}
	}

	s := strings.Builder{}
	for i := uint32(0); i < count; i++ {
		a := addr + i*4
		if i%4 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%07x:", a))
		}
		s.WriteString(fmt.Sprintf(" %08x", mon.b.Mem.Read32(a)))
	}
	mon.print(terminal.StyleFeedback, s.String())

	return nil
}

func poke(mon *Monitor, args []string) error {
	addr, err := parseNumber(cmdPoke, args[0])
	if err != nil {
		return err
	}

	// parse every value before writing any of them
	data := make([]uint32, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := parseNumber(cmdPoke, a)
		if err != nil {
			return err
		}
		data = append(data, v)
	}

	for i, v := range data {
		mon.b.Mem.Write32(addr+uint32(i*4), v)
	}
	return nil
}

func load(mon *Monitor, args []string) error {
	var offset uint32
	if len(args) > 1 {
		var err error
		offset, err = parseNumber(cmdLoad, args[1])
		if err != nil {
			return err
		}
	}

	ld := romloader.NewLoaderFs(mon.fs, args[0])
	if err := ld.Load(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	if err := mon.b.LoadVRAM(offset, ld.Data); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	mon.printf(terminal.StyleFeedback, "loaded %s (%d bytes) at %07x", ld.ShortName(), len(ld.Data), offset)
	return nil
}

func disasm(mon *Monitor, args []string) error {
	regs := mon.b.GC.Registers()
	lsa := regs.List.LSA
	lco := regs.List.LCO
	limit := defaultDisasm

	nums := make([]uint32, len(args))
	for i, a := range args {
		var err error
		nums[i], err = parseNumber(cmdDisasm, a)
		if err != nil {
			return err
		}
	}
	if len(nums) > 0 {
		lsa = nums[0]
	}
	if len(nums) > 1 {
		lco = nums[1]
	}
	if len(nums) > 2 {
		limit = int(nums[2])
	}

	for _, e := range mb86292.Disassemble(mon.b.Mem, lsa, lco, limit) {
		mon.print(terminal.StyleFeedback, e.String())
	}
	return nil
}

func frames(mon *Monitor, args []string) error {
	n := uint32(1)
	if len(args) > 0 {
		var err error
		n, err = parseNumber(cmdFrames, args[0])
		if err != nil {
			return err
		}
	}
	mon.b.RunFrames(int(n))
	mon.print(terminal.StyleFeedback, mon.b.String())
	return nil
}

func reset(mon *Monitor, _ []string) error {
	mon.b.Reset()
	return nil
}

func irq(mon *Monitor, _ []string) error {
	regs := mon.b.GC.Registers()
	mon.printf(terminal.StyleRegister, "line %v edges %d IST %08x MASK %08x",
		mon.b.InterruptLine(), mon.b.InterruptEdges(), regs.IRQ.IST, regs.IRQ.MASK)
	return nil
}

func showLog(mon *Monitor, args []string) error {
	n := uint32(defaultLog)
	if len(args) > 0 {
		var err error
		n, err = parseNumber(cmdLog, args[0])
		if err != nil {
			return err
		}
	}

	s := strings.Builder{}
	logger.Tail(&s, int(n))
	if s.Len() > 0 {
		mon.print(terminal.StyleLog, s.String())
	}
	return nil
}

func memvizRegisters(mon *Monitor, args []string) error {
	f, err := mon.fs.Create(args[0])
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer f.Close()

	regs := mon.b.GC.Registers()
	memviz.Map(f, &regs)

	mon.printf(terminal.StyleFeedback, "register graph written to %s", args[0])
	return nil
}

func shot(mon *Monitor, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	opts := screenshot.Options{
		Caption: fmt.Sprintf("frame %d", mon.b.Scr.Frame()),
	}
	if len(args) > 1 {
		scale, err := parseNumber(cmdScreenshot, args[1])
		if err != nil {
			return err
		}
		opts.Scale = int(scale)
	}

	path, err := screenshot.Save(mon.fs, path, "orchid", mon.b.Frame(), opts)
	if err != nil {
		return err
	}

	mon.printf(terminal.StyleFeedback, "screenshot saved to %s", path)
	return nil
}

func saveState(mon *Monitor, args []string) error {
	if err := afero.WriteFile(mon.fs, args[0], mon.b.Snapshot(), 0o644); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	mon.printf(terminal.StyleFeedback, "register state saved to %s", args[0])
	return nil
}

func restoreState(mon *Monitor, args []string) error {
	data, err := afero.ReadFile(mon.fs, args[0])
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	if err := mon.b.Plumb(data); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	mon.printf(terminal.StyleFeedback, "register state restored from %s", args[0])
	return nil
}

func runScript(mon *Monitor, args []string) error {
	return mon.lua.RunFile(mon.fs, args[0])
}

func quit(mon *Monitor, _ []string) error {
	mon.running = false
	return nil
}
