package cpu

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Load errors
	ErrProgramSize = errors.New(f("program too large"))

	// Host errors
	ErrKeyInvalid = errors.New(f("key invalid"))

	// Execution errors
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrStackFull  = errors.New(f("stack full"))
)

// ErrOpcode identifies the instruction that failed to execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).Op().String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSize reports a program image that does not fit in program memory.
type ErrSize struct {
	Size  int
	Limit int
}

func (err ErrSize) Error() string {
	return f("%d bytes exceeds %d byte limit", err.Size, err.Limit)
}

func (err ErrSize) Unwrap() error {
	return ErrProgramSize
}
