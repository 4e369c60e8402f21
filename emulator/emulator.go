// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"
	"sync"

	"github.com/ezrec/chip8/config"
	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/internal"
	"github.com/ezrec/chip8/io"
)

var _emulator_defines = map[string]int{
	"CPU_HZ":   config.Default().CpuHz,
	"TIMER_HZ": config.Default().TimerHz,
	"SCALE":    config.Default().Scale,
}

var _key_defines = func() (keys map[string]int) {
	keys = map[string]int{}
	for key := range cpu.KEYPAD_SIZE {
		keys[fmt.Sprintf("%X", key)] = key
	}
	return
}()

// Defines returns an iterator over the constants visible to configuration
// scripts: machine limits, default rates, and KEY_0 through KEY_F.
func Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		(*cpu.Cpu)(nil).Defines(),
		internal.IterSeq2Prefix("KEY_", maps.All(_key_defines)),
	)
}

// Emulator is a CPU paced by its configuration.
// The methods of Emulator itself are safe for use from multiple goroutines.
// Methods promoted from the embedded Cpu are not locked, and must not run
// concurrently with them.
type Emulator struct {
	Verbose  bool           // If set, enables verbose logging.
	*cpu.Cpu                // Reference to the CPU simulation.
	Program  *cpu.Program   // Reference to the currently loaded program.
	Config   *config.Config // Machine and host configuration.

	mu sync.Mutex
}

// NewEmulator creates a new emulator. A nil configuration uses the
// defaults.
func NewEmulator(cfg *config.Config) (emu *Emulator) {
	if cfg == nil {
		cfg = config.Default()
	}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Config:  cfg,
	}

	emu.Cpu.Quirks = cfg.Quirks
	emu.Cpu.Random = cpu.NewRandom(cfg.Seed)

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return Defines()
}

// CyclesPerFrame is the number of instructions run by Frame.
func (emu *Emulator) CyclesPerFrame() int {
	return emu.Config.CyclesPerFrame()
}

// Load replaces the program with a ROM image, and resets.
func (emu *Emulator) Load(rom *io.Rom) (err error) {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	emu.Program = rom.Program()

	err = emu.reset()
	return
}

// Reset the machine, and reload the program.
func (emu *Emulator) Reset() (err error) {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	err = emu.reset()
	return
}

func (emu *Emulator) reset() (err error) {
	if emu.Program == nil {
		err = ErrNoProgram
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Quirks = emu.Config.Quirks
	if emu.Config.Seed != 0 {
		emu.Cpu.Random = cpu.NewRandom(emu.Config.Seed)
	}

	emu.Cpu.Memory.Reset()
	emu.Cpu.Reset()

	err = emu.Cpu.LoadProgram(emu.Program.Binary())
	return
}

// Tick performs a single instruction step.
func (emu *Emulator) Tick() (frame cpu.Frame, err error) {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	frame, err = emu.step()
	return
}

func (emu *Emulator) step() (frame cpu.Frame, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	frame, err = emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Frame runs one frame: CyclesPerFrame steps, then a single timer tick.
// The frame is reported changed if any step changed the display.
// On error the timers are not ticked.
func (emu *Emulator) Frame() (frame cpu.Frame, err error) {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	changed := false
	defer func() {
		frame.Changed = changed
	}()

	for range emu.Config.CyclesPerFrame() {
		frame, err = emu.step()
		changed = changed || frame.Changed
		if err != nil {
			return
		}
	}

	emu.Cpu.TickTimers()

	return
}

// SetKey sets the pressed state of a keypad key.
func (emu *Emulator) SetKey(key uint8, pressed bool) (err error) {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	err = emu.Cpu.SetKey(key, pressed)
	return
}

// HostKey sets the keypad key bound to a host key name.
func (emu *Emulator) HostKey(name string, pressed bool) (err error) {
	key, err := emu.Config.Keymap.Key(name)
	if err != nil {
		return
	}

	err = emu.SetKey(key, pressed)
	return
}

// Snapshot copies the display without clearing its changed state.
func (emu *Emulator) Snapshot() (frame cpu.Frame) {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	frame.Pixel = emu.Cpu.Display.Pixel
	frame.Changed = emu.Cpu.Display.Dirty
	return
}

// Status reports execution counters for display by a host.
func (emu *Emulator) Status() (status Status) {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	status = Status{
		Pc:       emu.Cpu.Pc,
		Ticks:    emu.Cpu.Ticks,
		State:    emu.Cpu.State,
		Sounding: emu.Cpu.Timers.Sounding(),
	}
	return
}

// Status is a summary of the execution state.
type Status struct {
	Pc       uint16
	Ticks    int
	State    cpu.State
	Sounding bool
}

func (status Status) String() string {
	sound := ""
	if status.Sounding {
		sound = " beep"
	}
	return fmt.Sprintf("pc:%03X ticks:%d %v%s", status.Pc, status.Ticks, status.State, sound)
}
