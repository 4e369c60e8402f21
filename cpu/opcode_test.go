package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Fields(t *testing.T) {
	assert := assert.New(t)

	code := Code(0xD7A5)
	assert.Equal([4]uint8{0xD, 0x7, 0xA, 0x5}, code.Nibbles())
	assert.Equal(uint8(0x7), code.X())
	assert.Equal(uint8(0xA), code.Y())
	assert.Equal(uint8(0x5), code.N())
	assert.Equal(uint8(0xA5), code.KK())
	assert.Equal(uint16(0x7A5), code.NNN())
}

func TestCode_Op(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		op   Op
	}){
		{0x0000, OP_SYS},
		{0x0123, OP_SYS},
		{0x00E0, OP_CLS},
		{0x00EE, OP_RET},
		{0x1ABC, OP_JP},
		{0x2ABC, OP_CALL},
		{0x3A12, OP_SE_BYTE},
		{0x4A12, OP_SNE_BYTE},
		{0x5AB0, OP_SE_REG},
		{0x6A12, OP_LD_BYTE},
		{0x7A12, OP_ADD_BYTE},
		{0x8AB0, OP_LD_REG},
		{0x8AB1, OP_OR},
		{0x8AB2, OP_AND},
		{0x8AB3, OP_XOR},
		{0x8AB4, OP_ADD_REG},
		{0x8AB5, OP_SUB},
		{0x8AB6, OP_SHR},
		{0x8AB7, OP_SUBN},
		{0x8ABE, OP_SHL},
		{0x9AB0, OP_SNE_REG},
		{0xA123, OP_LD_I},
		{0xB123, OP_JP_V0},
		{0xCA12, OP_RND},
		{0xDAB5, OP_DRW},
		{0xEA9E, OP_SKP},
		{0xEAA1, OP_SKNP},
		{0xFA07, OP_LD_VX_DT},
		{0xFA0A, OP_LD_VX_K},
		{0xFA15, OP_LD_DT_VX},
		{0xFA18, OP_LD_ST_VX},
		{0xFA1E, OP_ADD_I},
		{0xFA29, OP_LD_F},
		{0xFA33, OP_LD_B},
		{0xFA55, OP_LD_MEM_VX},
		{0xFA65, OP_LD_VX_MEM},

		{0x5AB1, OP_UNKNOWN},
		{0x8AB8, OP_UNKNOWN},
		{0x8ABF, OP_UNKNOWN},
		{0x9ABF, OP_UNKNOWN},
		{0xEA9F, OP_UNKNOWN},
		{0xFA00, OP_UNKNOWN},
		{0xFAFF, OP_UNKNOWN},
	}

	seen := map[Op]bool{}
	for _, entry := range table {
		assert.Equal(entry.op, entry.code.Op(), fmt.Sprintf("%04X", uint16(entry.code)))
		seen[entry.op] = true
	}

	// Every operation, plus unknown, is reachable from some pattern.
	assert.Equal(OP_COUNT, len(seen))
}

func TestCode_Op_Exhaustive(t *testing.T) {
	assert := assert.New(t)

	counts := make([]int, OP_COUNT)
	for word := range 0x10000 {
		op := Code(word).Op()
		if !assert.True(op >= 0 && int(op) < OP_COUNT) {
			return
		}
		counts[op]++
	}

	// Single-pattern operations.
	for _, op := range []Op{OP_CLS, OP_RET} {
		assert.Equal(1, counts[op], op.String())
	}
	// 0x0000-0x0FFF, less CLS and RET
	assert.Equal(0x1000-2, counts[OP_SYS])
	assert.Equal(0x1000, counts[OP_JP])
	assert.Equal(0x100, counts[OP_SE_REG])
	assert.Equal(0x10, counts[OP_SKP])
	assert.Equal(0x10, counts[OP_LD_VX_MEM])
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("6A12 ld.byte", Code(0x6A12).String())
	assert.Equal("FFFF unknown", Code(0xFFFF).String())
	assert.Equal("Op(99)", Op(99).String())
	assert.Equal("await.key", STATE_AWAIT_KEY.String())
}
