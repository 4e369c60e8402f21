package main

import (
	"fmt"
	"io"

	"github.com/ezrec/chip8/emulator"
)

// runHeadless runs a number of frames, then prints the display.
func runHeadless(emu *emulator.Emulator, frames int, w io.Writer) (err error) {
	for range frames {
		_, err = emu.Frame()
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprint(w, emu.Snapshot().String())
	return
}
