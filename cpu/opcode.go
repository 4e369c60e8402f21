package cpu

import (
	"fmt"
)

// Op is a decoded CHIP-8 operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_UNKNOWN   = Op(0)  // unknown
	OP_SYS       = Op(1)  // sys
	OP_CLS       = Op(2)  // cls
	OP_RET       = Op(3)  // ret
	OP_JP        = Op(4)  // jp
	OP_CALL      = Op(5)  // call
	OP_SE_BYTE   = Op(6)  // se.byte
	OP_SNE_BYTE  = Op(7)  // sne.byte
	OP_SE_REG    = Op(8)  // se.reg
	OP_LD_BYTE   = Op(9)  // ld.byte
	OP_ADD_BYTE  = Op(10) // add.byte
	OP_LD_REG    = Op(11) // ld.reg
	OP_OR        = Op(12) // or
	OP_AND       = Op(13) // and
	OP_XOR       = Op(14) // xor
	OP_ADD_REG   = Op(15) // add.reg
	OP_SUB       = Op(16) // sub
	OP_SHR       = Op(17) // shr
	OP_SUBN      = Op(18) // subn
	OP_SHL       = Op(19) // shl
	OP_SNE_REG   = Op(20) // sne.reg
	OP_LD_I      = Op(21) // ld.i
	OP_JP_V0     = Op(22) // jp.v0
	OP_RND       = Op(23) // rnd
	OP_DRW       = Op(24) // drw
	OP_SKP       = Op(25) // skp
	OP_SKNP      = Op(26) // sknp
	OP_LD_VX_DT  = Op(27) // ld.vx.dt
	OP_LD_VX_K   = Op(28) // ld.vx.k
	OP_LD_DT_VX  = Op(29) // ld.dt.vx
	OP_LD_ST_VX  = Op(30) // ld.st.vx
	OP_ADD_I     = Op(31) // add.i
	OP_LD_F      = Op(32) // ld.f
	OP_LD_B      = Op(33) // ld.b
	OP_LD_MEM_VX = Op(34) // ld.mem.vx
	OP_LD_VX_MEM = Op(35) // ld.vx.mem
)

// OP_COUNT is the size of the dispatch table.
const OP_COUNT = int(OP_LD_VX_MEM) + 1

// Code is a single 16-bit instruction word.
type Code uint16

// Nibbles returns the four 4-bit fields, most significant first.
func (code Code) Nibbles() (n [4]uint8) {
	word := uint16(code)
	n[0] = uint8((word >> 12) & 0xf)
	n[1] = uint8((word >> 8) & 0xf)
	n[2] = uint8((word >> 4) & 0xf)
	n[3] = uint8((word >> 0) & 0xf)
	return
}

// X is the first register operand, bits 8-11.
func (code Code) X() uint8 {
	return uint8((uint16(code) >> 8) & 0xf)
}

// Y is the second register operand, bits 4-7.
func (code Code) Y() uint8 {
	return uint8((uint16(code) >> 4) & 0xf)
}

// N is the low nibble.
func (code Code) N() uint8 {
	return uint8(uint16(code) & 0xf)
}

// KK is the low byte immediate.
func (code Code) KK() uint8 {
	return uint8(uint16(code) & 0xff)
}

// NNN is the low 12-bit address.
func (code Code) NNN() uint16 {
	return uint16(code) & 0xfff
}

// Op decodes the operation from the nibble fields.
// Bit patterns outside the instruction set decode to OP_UNKNOWN.
func (code Code) Op() Op {
	n := code.Nibbles()

	switch n[0] {
	case 0x0:
		switch code {
		case 0x00E0:
			return OP_CLS
		case 0x00EE:
			return OP_RET
		}
		return OP_SYS
	case 0x1:
		return OP_JP
	case 0x2:
		return OP_CALL
	case 0x3:
		return OP_SE_BYTE
	case 0x4:
		return OP_SNE_BYTE
	case 0x5:
		if n[3] == 0x0 {
			return OP_SE_REG
		}
	case 0x6:
		return OP_LD_BYTE
	case 0x7:
		return OP_ADD_BYTE
	case 0x8:
		switch n[3] {
		case 0x0:
			return OP_LD_REG
		case 0x1:
			return OP_OR
		case 0x2:
			return OP_AND
		case 0x3:
			return OP_XOR
		case 0x4:
			return OP_ADD_REG
		case 0x5:
			return OP_SUB
		case 0x6:
			return OP_SHR
		case 0x7:
			return OP_SUBN
		case 0xE:
			return OP_SHL
		}
	case 0x9:
		if n[3] == 0x0 {
			return OP_SNE_REG
		}
	case 0xA:
		return OP_LD_I
	case 0xB:
		return OP_JP_V0
	case 0xC:
		return OP_RND
	case 0xD:
		return OP_DRW
	case 0xE:
		switch code.KK() {
		case 0x9E:
			return OP_SKP
		case 0xA1:
			return OP_SKNP
		}
	case 0xF:
		switch code.KK() {
		case 0x07:
			return OP_LD_VX_DT
		case 0x0A:
			return OP_LD_VX_K
		case 0x15:
			return OP_LD_DT_VX
		case 0x18:
			return OP_LD_ST_VX
		case 0x1E:
			return OP_ADD_I
		case 0x29:
			return OP_LD_F
		case 0x33:
			return OP_LD_B
		case 0x55:
			return OP_LD_MEM_VX
		case 0x65:
			return OP_LD_VX_MEM
		}
	}

	return OP_UNKNOWN
}

// String returns the instruction word and its operation.
func (code Code) String() string {
	return fmt.Sprintf("%04X %v", uint16(code), code.Op())
}
