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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/environment"
	"github.com/jetsetilly/orchid/gui/sdlscreen"
	"github.com/jetsetilly/orchid/gui/tcellscreen"
	"github.com/jetsetilly/orchid/hardware/board"
	"github.com/jetsetilly/orchid/hardware/cartridge/neogeo"
	"github.com/jetsetilly/orchid/hardware/expansion/zxbus"
	"github.com/jetsetilly/orchid/hardware/mb86292"
	"github.com/jetsetilly/orchid/hardware/preferences"
	"github.com/jetsetilly/orchid/logger"
	"github.com/jetsetilly/orchid/modalflag"
	"github.com/jetsetilly/orchid/monitor"
	"github.com/jetsetilly/orchid/monitor/colorterm"
	"github.com/jetsetilly/orchid/monitor/plainterm"
	"github.com/jetsetilly/orchid/monitor/terminal"
	"github.com/jetsetilly/orchid/performance"
	"github.com/jetsetilly/orchid/prefs"
	"github.com/jetsetilly/orchid/romloader"
	"github.com/jetsetilly/orchid/screenshot"
	"github.com/jetsetilly/orchid/script"
	"github.com/jetsetilly/orchid/statsview"
	"github.com/spf13/afero"
)

// default values for the PERFORMANCE mode
const (
	defaultDuration = 5 * time.Second
	defaultLeadtime = time.Second
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has a better way
	// of handling ctrl-c. for example, the monitor and the tcell viewer.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window creation and event handling to
// occur on the main thread.
type mainSync struct {
	state chan stateRequest

	// functions sent on the mainthread channel are run on the main thread.
	// the error is returned on the result channel
	mainthread chan func() error
	result     chan error
}

func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:      make(chan stateRequest),
		mainthread: make(chan func() error),
		result:     make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case f := <-sync.mainthread:
			sync.result <- f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to run
// functions on the main thread and to quit.
func launch(sync *mainSync, args []string) {
	a := &app{
		output: os.Stdout,
		fs:     afero.NewOsFs(),
		onMain: func(f func() error) error {
			sync.mainthread <- f
			return <-sync.result
		},
		noIntSig: func() {
			sync.state <- stateRequest{req: reqNoIntSig}
		},
	}

	sync.state <- stateRequest{req: reqQuit, args: a.launch(args)}
}

// app is the context shared by every mode.
type app struct {
	output io.Writer
	fs     afero.Fs

	// preferences used when creating a board. nil means that the global
	// preferences file is used
	prefs *preferences.Preferences

	// run a function on the main thread
	onMain func(f func() error) error

	// turn off default ctrl-c handling
	noIntSig func()
}

// launch the mode named by the arguments. returns the exit status.
func (a *app) launch(args []string) int {
	md := &modalflag.Modes{Output: a.output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "MONITOR", "SBP", "ZXBUS", "SCREENSHOT", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(a.output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = a.run(md)

	case "DISASM":
		err = a.disasm(md)

	case "MONITOR":
		err = a.monitor(md)

	case "SBP":
		err = a.sbp(md)

	case "ZXBUS":
		err = a.zxbus(md)

	case "SCREENSHOT":
		err = a.screenshot(md)

	case "PERFORMANCE":
		err = a.perform(md)
	}

	if err != nil {
		fmt.Fprintf(a.output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags that are common to every mode
type common struct {
	log   *bool
	prefs *string
}

func (a *app) addCommon(md *modalflag.Modes) common {
	return common{
		log:   md.AddBool("log", false, "echo log to stdout"),
		prefs: md.AddString("prefs", "", "preferences for this run. eg. \"vram.size::0x100000; mb86292.dasm::true\""),
	}
}

// apply the common flags. must be called after a successful call to Parse()
func (a *app) applyCommon(c common) {
	if *c.log {
		logger.SetEcho(logger.NewColorizer(a.output), false)
	} else {
		logger.SetEcho(nil, false)
	}

	// an entry is always pushed so that the stack can be popped without
	// worrying about whether anything was pushed
	prefs.PushCommandLineStack(*c.prefs)
}

// pop the command line stack and report any preferences that were not used
func (a *app) popCommon() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(a.output, "! unused preferences: %s\n", unused)
	}
}

func (a *app) newBoard() (*board.Board, error) {
	b, err := board.NewBoard(environment.MainEmulation, a.prefs)
	if err != nil {
		return nil, err
	}
	b.Reset()
	return b, nil
}

// load the VRAM image and run the register script. either can be empty
func (a *app) prepare(b *board.Board, image string, offset uint, scriptFile string) (string, error) {
	name := "orchid"

	if image != "" {
		ld := romloader.NewLoaderFs(a.fs, image)
		if err := ld.Load(); err != nil {
			return name, err
		}
		if err := b.LoadVRAM(uint32(offset), ld.Data); err != nil {
			return name, err
		}
		name = ld.ShortName()
		logger.Logf(logger.Allow, "orchid", "loaded %s", ld)
	}

	if scriptFile != "" {
		scr := script.NewScript(b)
		defer scr.Close()
		if err := scr.RunFile(a.fs, scriptFile); err != nil {
			return name, err
		}
	}

	return name, nil
}

// the optional VRAM image argument. more than one argument is an error
func optionalImage(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf("too many arguments for %s mode", md)
}

func (a *app) run(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("output", "SDL", "output type: SDL, TCELL, HEADLESS")
	offset := md.AddUint("offset", 0, "VRAM offset of the image")
	scriptFile := md.AddString("script", "", "register script to run before presentation")
	fps := md.AddFloat64("fps", 60.0, "frame rate cap (zero for no cap)")
	scale := md.AddInt("scale", 2, "window scale (SDL only)")
	frames := md.AddInt("frames", 0, "number of frames to run (HEADLESS only, zero runs until interrupted)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	c := a.addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	a.applyCommon(c)

	image, err := optionalImage(md)
	if err != nil {
		return err
	}
	if image == "" && *scriptFile == "" {
		return curated.Errorf("VRAM image or script required for %s mode", md)
	}

	b, err := a.newBoard()
	if err != nil {
		return err
	}
	a.popCommon()

	if _, err := a.prepare(b, image, *offset, *scriptFile); err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(a.output)
		} else {
			fmt.Fprintln(a.output, "! stats server not available in this build")
		}
	}

	switch strings.ToUpper(*output) {
	case "SDL":
		return a.onMain(func() error {
			v, err := sdlscreen.NewViewer(b, a.fs, *fps, *scale)
			if err != nil {
				return err
			}
			defer v.Close()
			return v.Run()
		})

	case "TCELL":
		v, err := tcellscreen.NewViewer(b, nil, a.fs, *fps)
		if err != nil {
			return err
		}
		defer v.Close()
		a.noIntSig()
		return v.Run()

	case "HEADLESS":
		if *frames <= 0 {
			return b.Run(nil)
		}
		err := b.RunForFrameCount(*frames, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.output, b)
		fmt.Fprintf(a.output, "interrupt line %v (%d edges)\n", b.InterruptLine(), b.InterruptEdges())
		return nil
	}

	return curated.Errorf("unknown output type (%s)", *output)
}

func (a *app) disasm(md *modalflag.Modes) error {
	md.NewMode()

	offset := md.AddUint("offset", 0, "VRAM offset of the image")
	lsa := md.AddUint("lsa", 0, "VRAM address of the display list")
	lco := md.AddUint("lco", 0, "number of words in the display list (zero for the maximum)")
	limit := md.AddInt("max", 0, "maximum number of commands to disassemble (zero for no limit)")
	c := a.addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	a.applyCommon(c)

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("VRAM image required for %s mode", md)
	}

	b, err := a.newBoard()
	if err != nil {
		return err
	}
	a.popCommon()

	if _, err := a.prepare(b, md.GetArg(0), *offset, ""); err != nil {
		return err
	}

	for _, e := range mb86292.Disassemble(b.Mem, uint32(*lsa), uint32(*lco), *limit) {
		fmt.Fprintln(a.output, e)
	}

	return nil
}

func (a *app) monitor(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type: COLOR, PLAIN")
	offset := md.AddUint("offset", 0, "VRAM offset of the image")
	scriptFile := md.AddString("script", "", "register script to run before the monitor starts")
	c := a.addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	a.applyCommon(c)

	image, err := optionalImage(md)
	if err != nil {
		return err
	}

	b, err := a.newBoard()
	if err != nil {
		return err
	}
	a.popCommon()

	if _, err := a.prepare(b, image, *offset, *scriptFile); err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, a.output)
	default:
		return curated.Errorf("unknown terminal type (%s)", *termType)
	}

	// the monitor handles ctrl-c itself
	a.noIntSig()

	return monitor.NewMonitor(b, term, a.fs).Run()
}

func (a *app) sbp(md *modalflag.Modes) error {
	md.NewMode()

	words := md.AddInt("words", 16, "number of protected words to show")
	patch := md.AddString("patch", "", "CPU ROM to patch")
	out := md.AddString("out", "", "filename of the patched CPU ROM (default is the CPU ROM with .patched appended)")
	c := a.addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	a.applyCommon(c)

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("ROM required for %s mode", md)
	}

	b, err := a.newBoard()
	if err != nil {
		return err
	}
	a.popCommon()

	ld := romloader.NewLoaderFs(a.fs, md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	rom, err := neogeo.Words(ld.Data)
	if err != nil {
		return err
	}

	sbp := neogeo.NewSBP(b.Env, rom)
	fmt.Fprintln(a.output, sbp)

	data := sbp.Descramble(*words)
	for i := 0; i < len(data); i += 8 {
		s := strings.Builder{}
		fmt.Fprintf(&s, "%05x:", 0x200+i*2)
		for _, w := range data[i:min(i+8, len(data))] {
			fmt.Fprintf(&s, " %04x", w)
		}
		fmt.Fprintln(a.output, s.String())
	}

	if *patch == "" {
		return nil
	}

	cpurom, err := afero.ReadFile(a.fs, *patch)
	if err != nil {
		return curated.Errorf("sbp: %v", err)
	}

	if err := sbp.Patch(cpurom); err != nil {
		return err
	}

	if *out == "" {
		*out = fmt.Sprintf("%s.patched", *patch)
	}

	if err := afero.WriteFile(a.fs, *out, cpurom, 0o644); err != nil {
		return curated.Errorf("sbp: %v", err)
	}

	fmt.Fprintf(a.output, "patched %s -> %s\n", *patch, *out)

	return nil
}

func (a *app) zxbus(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("available cards: %s", strings.Join(zxbus.Cards(), ", ")))

	nvram := md.AddString("nvram", "", "file to load into the SMUC NVRAM")
	samples := md.AddString("samples", "", "comma separated list of WAV or MP3 files to load into the NeoGS")
	c := a.addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	a.applyCommon(c)

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf("at least one card required for %s mode (%s)", md, strings.Join(zxbus.Cards(), ", "))
	}

	b, err := a.newBoard()
	if err != nil {
		return err
	}
	a.popCommon()

	bus := zxbus.NewBus(b.Env)
	for _, opt := range md.RemainingArgs() {
		if _, err := zxbus.NewSlot(bus, strings.ToLower(opt)); err != nil {
			return err
		}
	}

	if err := bus.Start(); err != nil {
		return err
	}

	for _, sl := range bus.Slots() {
		switch card := sl.Card().(type) {
		case *zxbus.SMUC:
			if *nvram != "" {
				if err := card.LoadNVRAM(a.fs, *nvram); err != nil {
					return err
				}
			}
		case *zxbus.NeoGS:
			if *samples == "" {
				continue // for loop
			}
			for _, fn := range strings.Split(*samples, ",") {
				if err := a.loadSample(card, strings.TrimSpace(fn)); err != nil {
					return err
				}
			}
		}
	}

	fmt.Fprintln(a.output, bus)
	fmt.Fprint(a.output, bus.IO())

	return nil
}

func (a *app) loadSample(gs *zxbus.NeoGS, filename string) error {
	f, err := a.fs.Open(filename)
	if err != nil {
		return curated.Errorf("zxbus: %v", err)
	}
	defer f.Close()

	idx, err := gs.LoadSample(filename, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.output, "sample %d: %s (%d bytes free)\n", idx, filename, gs.Free())

	return nil
}

func (a *app) screenshot(md *modalflag.Modes) error {
	md.NewMode()

	offset := md.AddUint("offset", 0, "VRAM offset of the image")
	scriptFile := md.AddString("script", "", "register script to run before the frames")
	frames := md.AddInt("frames", 1, "number of frames to run before the screenshot")
	scale := md.AddInt("scale", 1, fmt.Sprintf("scale of the screenshot (1 to %d)", screenshot.MaxScale))
	caption := md.AddString("caption", "", "caption to draw in the screenshot")
	out := md.AddString("out", "", "filename of the screenshot (default is a unique filename)")
	c := a.addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	a.applyCommon(c)

	image, err := optionalImage(md)
	if err != nil {
		return err
	}

	b, err := a.newBoard()
	if err != nil {
		return err
	}
	a.popCommon()

	name, err := a.prepare(b, image, *offset, *scriptFile)
	if err != nil {
		return err
	}

	b.RunFrames(*frames)

	path, err := screenshot.Save(a.fs, *out, name, b.Frame(), screenshot.Options{
		Scale:   *scale,
		Caption: *caption,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.output, "saved %s\n", path)

	return nil
}

func (a *app) perform(md *modalflag.Modes) error {
	md.NewMode()

	offset := md.AddUint("offset", 0, "VRAM offset of the image")
	scriptFile := md.AddString("script", "", "register script to run before the measurement")
	duration := md.AddDuration("duration", defaultDuration, "duration of the measurement")
	leadtime := md.AddDuration("leadtime", defaultLeadtime, "time to run before the measurement starts")
	profile := md.AddBool("profile", false, fmt.Sprintf("write %s and %s", performance.CPUProfile, performance.MemProfile))
	c := a.addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	a.applyCommon(c)

	image, err := optionalImage(md)
	if err != nil {
		return err
	}

	b, err := a.newBoard()
	if err != nil {
		return err
	}
	a.popCommon()

	if _, err := a.prepare(b, image, *offset, *scriptFile); err != nil {
		return err
	}

	return performance.Check(a.output, a.fs, *profile, b, *leadtime, *duration)
}
