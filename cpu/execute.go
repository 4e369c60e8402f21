package cpu

// handler applies an operation, returning the next program counter.
// next is the address of the following instruction.
type handler func(cpu *Cpu, code Code, next uint16) (uint16, error)

// dispatch maps each decoded operation to its handler.
var dispatch = [OP_COUNT]handler{
	OP_UNKNOWN:   (*Cpu).opNop,
	OP_SYS:       (*Cpu).opNop,
	OP_CLS:       (*Cpu).opCls,
	OP_RET:       (*Cpu).opRet,
	OP_JP:        (*Cpu).opJp,
	OP_CALL:      (*Cpu).opCall,
	OP_SE_BYTE:   (*Cpu).opSeByte,
	OP_SNE_BYTE:  (*Cpu).opSneByte,
	OP_SE_REG:    (*Cpu).opSeReg,
	OP_LD_BYTE:   (*Cpu).opLdByte,
	OP_ADD_BYTE:  (*Cpu).opAddByte,
	OP_LD_REG:    (*Cpu).opLdReg,
	OP_OR:        (*Cpu).opOr,
	OP_AND:       (*Cpu).opAnd,
	OP_XOR:       (*Cpu).opXor,
	OP_ADD_REG:   (*Cpu).opAddReg,
	OP_SUB:       (*Cpu).opSub,
	OP_SHR:       (*Cpu).opShr,
	OP_SUBN:      (*Cpu).opSubn,
	OP_SHL:       (*Cpu).opShl,
	OP_SNE_REG:   (*Cpu).opSneReg,
	OP_LD_I:      (*Cpu).opLdI,
	OP_JP_V0:     (*Cpu).opJpV0,
	OP_RND:       (*Cpu).opRnd,
	OP_DRW:       (*Cpu).opDrw,
	OP_SKP:       (*Cpu).opSkp,
	OP_SKNP:      (*Cpu).opSknp,
	OP_LD_VX_DT:  (*Cpu).opLdVxDt,
	OP_LD_VX_K:   (*Cpu).opLdVxK,
	OP_LD_DT_VX:  (*Cpu).opLdDtVx,
	OP_LD_ST_VX:  (*Cpu).opLdStVx,
	OP_ADD_I:     (*Cpu).opAddI,
	OP_LD_F:      (*Cpu).opLdF,
	OP_LD_B:      (*Cpu).opLdB,
	OP_LD_MEM_VX: (*Cpu).opLdMemVx,
	OP_LD_VX_MEM: (*Cpu).opLdVxMem,
}

// skipIf skips the following instruction when cond holds.
func skipIf(cond bool, next uint16) (uint16, error) {
	if cond {
		next += 2
	}
	return next, nil
}

// setFlag writes VF after the result, so the flag wins when x is F.
func (cpu *Cpu) setFlag(flag bool) {
	if flag {
		cpu.V[0xf] = 1
	} else {
		cpu.V[0xf] = 0
	}
}

// 0nnn, and any unknown pattern.
func (cpu *Cpu) opNop(code Code, next uint16) (uint16, error) {
	return next, nil
}

// 00E0
func (cpu *Cpu) opCls(code Code, next uint16) (uint16, error) {
	cpu.Display.Clear()
	return next, nil
}

// 00EE
func (cpu *Cpu) opRet(code Code, next uint16) (uint16, error) {
	addr, ok := cpu.Stack.Pop()
	if !ok {
		return cpu.Pc, ErrStackEmpty
	}
	return addr, nil
}

// 1nnn
func (cpu *Cpu) opJp(code Code, next uint16) (uint16, error) {
	return code.NNN(), nil
}

// 2nnn
func (cpu *Cpu) opCall(code Code, next uint16) (uint16, error) {
	if !cpu.Stack.Push(next) {
		return cpu.Pc, ErrStackFull
	}
	return code.NNN(), nil
}

// 3xkk
func (cpu *Cpu) opSeByte(code Code, next uint16) (uint16, error) {
	return skipIf(cpu.V[code.X()] == code.KK(), next)
}

// 4xkk
func (cpu *Cpu) opSneByte(code Code, next uint16) (uint16, error) {
	return skipIf(cpu.V[code.X()] != code.KK(), next)
}

// 5xy0
func (cpu *Cpu) opSeReg(code Code, next uint16) (uint16, error) {
	return skipIf(cpu.V[code.X()] == cpu.V[code.Y()], next)
}

// 6xkk
func (cpu *Cpu) opLdByte(code Code, next uint16) (uint16, error) {
	cpu.V[code.X()] = code.KK()
	return next, nil
}

// 7xkk
func (cpu *Cpu) opAddByte(code Code, next uint16) (uint16, error) {
	cpu.V[code.X()] += code.KK()
	return next, nil
}

// 8xy0
func (cpu *Cpu) opLdReg(code Code, next uint16) (uint16, error) {
	cpu.V[code.X()] = cpu.V[code.Y()]
	return next, nil
}

// logic applies a bitwise operation, then clears VF unless the
// LogicKeepVF quirk is set.
func (cpu *Cpu) logic(code Code, next uint16, op func(a, b uint8) uint8) (uint16, error) {
	x := code.X()
	cpu.V[x] = op(cpu.V[x], cpu.V[code.Y()])
	if !cpu.Quirks.LogicKeepVF {
		cpu.V[0xf] = 0
	}
	return next, nil
}

// 8xy1
func (cpu *Cpu) opOr(code Code, next uint16) (uint16, error) {
	return cpu.logic(code, next, func(a, b uint8) uint8 { return a | b })
}

// 8xy2
func (cpu *Cpu) opAnd(code Code, next uint16) (uint16, error) {
	return cpu.logic(code, next, func(a, b uint8) uint8 { return a & b })
}

// 8xy3
func (cpu *Cpu) opXor(code Code, next uint16) (uint16, error) {
	return cpu.logic(code, next, func(a, b uint8) uint8 { return a ^ b })
}

// 8xy4
func (cpu *Cpu) opAddReg(code Code, next uint16) (uint16, error) {
	x := code.X()
	sum := uint16(cpu.V[x]) + uint16(cpu.V[code.Y()])
	cpu.V[x] = uint8(sum)
	cpu.setFlag(sum > 0xff)
	return next, nil
}

// 8xy5
func (cpu *Cpu) opSub(code Code, next uint16) (uint16, error) {
	x := code.X()
	vx, vy := cpu.V[x], cpu.V[code.Y()]
	cpu.V[x] = vx - vy
	cpu.setFlag(vx >= vy)
	return next, nil
}

// 8xy7
func (cpu *Cpu) opSubn(code Code, next uint16) (uint16, error) {
	x := code.X()
	vx, vy := cpu.V[x], cpu.V[code.Y()]
	cpu.V[x] = vy - vx
	cpu.setFlag(vy >= vx)
	return next, nil
}

// shiftSource is Vx, or Vy with the ShiftVy quirk.
func (cpu *Cpu) shiftSource(code Code) uint8 {
	if cpu.Quirks.ShiftVy {
		return cpu.V[code.Y()]
	}
	return cpu.V[code.X()]
}

// 8xy6
func (cpu *Cpu) opShr(code Code, next uint16) (uint16, error) {
	src := cpu.shiftSource(code)
	cpu.V[code.X()] = src >> 1
	cpu.setFlag(src&0x01 != 0)
	return next, nil
}

// 8xyE
func (cpu *Cpu) opShl(code Code, next uint16) (uint16, error) {
	src := cpu.shiftSource(code)
	cpu.V[code.X()] = src << 1
	cpu.setFlag(src&0x80 != 0)
	return next, nil
}

// 9xy0
func (cpu *Cpu) opSneReg(code Code, next uint16) (uint16, error) {
	return skipIf(cpu.V[code.X()] != cpu.V[code.Y()], next)
}

// Annn
func (cpu *Cpu) opLdI(code Code, next uint16) (uint16, error) {
	cpu.I = code.NNN()
	return next, nil
}

// Bnnn
func (cpu *Cpu) opJpV0(code Code, next uint16) (uint16, error) {
	return code.NNN() + uint16(cpu.V[0]), nil
}

// Cxkk
func (cpu *Cpu) opRnd(code Code, next uint16) (uint16, error) {
	cpu.V[code.X()] = uint8(cpu.Random.Uint32()) & code.KK()
	return next, nil
}

// Dxyn
func (cpu *Cpu) opDrw(code Code, next uint16) (uint16, error) {
	var sprite [15]byte
	rows := sprite[:code.N()]
	for n := range rows {
		rows[n] = cpu.Memory.Read(cpu.I + uint16(n))
	}

	collision := cpu.Display.Sprite(cpu.V[code.X()], cpu.V[code.Y()], rows)
	cpu.setFlag(collision)
	return next, nil
}

// Ex9E
func (cpu *Cpu) opSkp(code Code, next uint16) (uint16, error) {
	return skipIf(cpu.Keypad.Down(cpu.V[code.X()]), next)
}

// ExA1
func (cpu *Cpu) opSknp(code Code, next uint16) (uint16, error) {
	return skipIf(!cpu.Keypad.Down(cpu.V[code.X()]), next)
}

// Fx07
func (cpu *Cpu) opLdVxDt(code Code, next uint16) (uint16, error) {
	cpu.V[code.X()] = cpu.Timers.Delay
	return next, nil
}

// Fx0A completes at once if a key is down, otherwise holds the program
// counter here and waits for SetKey.
func (cpu *Cpu) opLdVxK(code Code, next uint16) (uint16, error) {
	key, ok := cpu.Keypad.Pressed()
	if ok {
		cpu.V[code.X()] = key
		return next, nil
	}

	cpu.awaitReg = code.X()
	cpu.State = STATE_AWAIT_KEY
	return cpu.Pc, nil
}

// Fx15
func (cpu *Cpu) opLdDtVx(code Code, next uint16) (uint16, error) {
	cpu.Timers.Delay = cpu.V[code.X()]
	return next, nil
}

// Fx18
func (cpu *Cpu) opLdStVx(code Code, next uint16) (uint16, error) {
	cpu.Timers.Sound = cpu.V[code.X()]
	return next, nil
}

// Fx1E
func (cpu *Cpu) opAddI(code Code, next uint16) (uint16, error) {
	cpu.I += uint16(cpu.V[code.X()])
	return next, nil
}

// Fx29
func (cpu *Cpu) opLdF(code Code, next uint16) (uint16, error) {
	cpu.I = FONT_START + uint16(cpu.V[code.X()])*FONT_GLYPH_SIZE
	return next, nil
}

// Fx33
func (cpu *Cpu) opLdB(code Code, next uint16) (uint16, error) {
	vx := cpu.V[code.X()]
	cpu.Memory.Write(cpu.I+0, vx/100)
	cpu.Memory.Write(cpu.I+1, (vx/10)%10)
	cpu.Memory.Write(cpu.I+2, vx%10)
	return next, nil
}

// Fx55
func (cpu *Cpu) opLdMemVx(code Code, next uint16) (uint16, error) {
	x := uint16(code.X())
	for n := uint16(0); n <= x; n++ {
		cpu.Memory.Write(cpu.I+n, cpu.V[n])
	}
	if !cpu.Quirks.LoadStoreKeepI {
		cpu.I += x + 1
	}
	return next, nil
}

// Fx65
func (cpu *Cpu) opLdVxMem(code Code, next uint16) (uint16, error) {
	x := uint16(code.X())
	for n := uint16(0); n <= x; n++ {
		cpu.V[n] = cpu.Memory.Read(cpu.I + n)
	}
	if !cpu.Quirks.LoadStoreKeepI {
		cpu.I += x + 1
	}
	return next, nil
}
