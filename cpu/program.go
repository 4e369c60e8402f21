package cpu

import (
	"iter"
)

// Program is a raw program image, a sequence of big-endian instruction
// words and sprite data with no header.
type Program struct {
	Data []byte
}

// ProgramOf assembles instruction words into a program image.
func ProgramOf(codes ...Code) (prog *Program) {
	prog = &Program{Data: make([]byte, 0, 2*len(codes))}
	for _, code := range codes {
		prog.Data = append(prog.Data, byte(code>>8), byte(code))
	}

	return
}

// Binary returns the image to load at PROGRAM_START.
func (prog *Program) Binary() []byte {
	return prog.Data
}

// Codes iterates over the image as instruction words, by load address.
// A trailing odd byte is returned as the high byte of a final word.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(addr uint16, code Code) bool) {
		for n := 0; n < len(prog.Data); n += 2 {
			word := uint16(prog.Data[n]) << 8
			if n+1 < len(prog.Data) {
				word |= uint16(prog.Data[n+1])
			}
			if !yield(uint16(PROGRAM_START+n), Code(word)) {
				return
			}
		}
	}
}
