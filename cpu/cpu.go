// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING   = State(0) // running
	STATE_AWAIT_KEY = State(1) // await.key
)

var _cpu_defines = map[string]int{
	"MEMORY_SIZE":     MEMORY_SIZE,
	"PROGRAM_START":   PROGRAM_START,
	"PROGRAM_LIMIT":   PROGRAM_LIMIT,
	"FONT_START":      FONT_START,
	"FONT_GLYPH_SIZE": FONT_GLYPH_SIZE,
	"STACK_LIMIT":     STACK_LIMIT,
	"KEYPAD_SIZE":     KEYPAD_SIZE,
	"DISPLAY_WIDTH":   DISPLAY_WIDTH,
	"DISPLAY_HEIGHT":  DISPLAY_HEIGHT,
}

// Cpu is the complete state of a CHIP-8 machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Quirks Quirks // Dialect behaviour switches.
	Random Random // Source for the RND instruction.

	Memory  Memory    // Address space, with font and program.
	V       [16]uint8 // Register bank. VF is also the flag register.
	I       uint16    // Address register.
	Pc      uint16    // Program counter.
	Stack   Stack     // Return address stack.
	Timers  Timers    // Delay and sound timers.
	Display Display   // Framebuffer.
	Keypad  Keypad    // Key state, written by the host.

	State State // Execution state.
	Ticks int   // Instructions executed since reset.

	awaitReg uint8 // Destination register of a pending key wait.
}

// NewCpu creates a CPU with a wall clock seeded random source.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Random: NewRandom(0),
	}

	cpu.Memory.Reset()
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state, preserving memory contents.
// - Clears the registers, stack, timers, keypad and display.
// - Sets the program counter to the program start.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.V[:])
	cpu.I = 0
	cpu.Pc = PROGRAM_START
	cpu.Stack.Reset()
	cpu.Timers.Reset()
	cpu.Keypad.Reset()
	cpu.Display = Display{}
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0
	cpu.awaitReg = 0
}

// LoadProgram copies a program image to PROGRAM_START.
// The image is not validated beyond its size.
func (cpu *Cpu) LoadProgram(data []byte) (err error) {
	if len(data) > PROGRAM_LIMIT {
		err = ErrSize{Size: len(data), Limit: PROGRAM_LIMIT}
		return
	}

	clear(cpu.Memory[PROGRAM_START:])
	copy(cpu.Memory[PROGRAM_START:], data)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes at 0x%03x", len(data), PROGRAM_START)
	}

	return
}

// SetKey sets the pressed state of a key.
// A press while waiting on Fx0A completes that instruction.
func (cpu *Cpu) SetKey(key uint8, pressed bool) (err error) {
	if int(key) >= len(cpu.Keypad) {
		err = fmt.Errorf("%w: %d", ErrKeyInvalid, key)
		return
	}

	cpu.Keypad[key] = pressed

	if pressed && cpu.State == STATE_AWAIT_KEY {
		cpu.resume(key)
	}

	return
}

// resume completes a pending key wait with the given key.
func (cpu *Cpu) resume(key uint8) {
	if cpu.Verbose {
		log.Printf("cpu: key %X -> v%X", key, cpu.awaitReg)
	}

	cpu.V[cpu.awaitReg] = key
	cpu.Pc += 2
	cpu.State = STATE_RUNNING
}

// TickTimers decrements the delay and sound timers.
func (cpu *Cpu) TickTimers() {
	cpu.Timers.Tick()
}

// Frame reports the display, and clears its changed flag.
func (cpu *Cpu) Frame() Frame {
	return cpu.Display.Snapshot()
}

// Waiting is true while the CPU is blocked on a key press.
func (cpu *Cpu) Waiting() bool {
	return cpu.State == STATE_AWAIT_KEY
}

// Step executes a single fetch, decode and execute cycle, and reports
// the display. While waiting on a key no instruction is decoded.
func (cpu *Cpu) Step() (frame Frame, err error) {
	switch cpu.State {
	case STATE_AWAIT_KEY:
		key, ok := cpu.Keypad.Pressed()
		if ok {
			cpu.resume(key)
		}
	default:
		err = cpu.Execute(cpu.Memory.Fetch(cpu.Pc))
	}

	frame = cpu.Frame()
	return
}

// Execute executes a single decoded instruction at the current program
// counter. On error the CPU state is unchanged.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc, code)
	}

	next, err := dispatch[code.Op()](cpu, code, cpu.Pc+2)
	if err != nil {
		return
	}

	cpu.Pc = next
	cpu.Ticks++

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%5s: %03X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("%5s: %03X\n", "i", cpu.I)
	for n, val := range cpu.V {
		text += fmt.Sprintf("%5s: %02X\n", fmt.Sprintf("v%X", n), val)
	}
	var strval string
	val, ok := cpu.Stack.Peek()
	if ok {
		strval = fmt.Sprintf("%03X", val)
	} else {
		strval = "---"
	}
	text += fmt.Sprintf("%5s: %v (%d)\n", "stack", strval, cpu.Stack.Len())
	text += fmt.Sprintf("%5s: %02X\n", "dt", cpu.Timers.Delay)
	text += fmt.Sprintf("%5s: %02X\n", "st", cpu.Timers.Sound)
	text += fmt.Sprintf("%5s: %v\n", "state", cpu.State)

	return
}
