// Package io provides the host side collaborators of the CHIP-8 machine.
// It reads ROM images, maps host key names to keypad keys, and renders
// frames as images.
package io

import (
	"fmt"
	"io"

	"github.com/ezrec/chip8/cpu"
)

// ROM_LIMIT is the largest ROM image that fits in program memory.
const ROM_LIMIT = cpu.PROGRAM_LIMIT

// Rom is a raw CHIP-8 program image.
type Rom struct {
	Name string // Source of the image, for messages.
	Data []byte
}

// ReadRom reads a complete ROM image from r.
// Images larger than ROM_LIMIT are rejected without reading past the limit.
func ReadRom(r io.Reader) (rom *Rom, err error) {
	data, err := io.ReadAll(io.LimitReader(r, ROM_LIMIT+1))
	if err != nil {
		return
	}

	switch {
	case len(data) == 0:
		err = ErrRomEmpty
		return
	case len(data) > ROM_LIMIT:
		err = fmt.Errorf("%w: more than %d bytes", ErrRomTooLarge, ROM_LIMIT)
		return
	}

	rom = &Rom{Data: data}
	return
}

// Program returns the ROM as a loadable program.
func (rom *Rom) Program() *cpu.Program {
	return &cpu.Program{Data: rom.Data}
}
