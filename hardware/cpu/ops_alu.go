// This file is part of Gopherswan.
//
// Gopherswan is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherswan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherswan.  If not, see <https://www.gnu.org/licenses/>.

package cpu

// opALU implements the eight arithmetic and logic operations in their six
// basic forms (opcodes 0x00 to 0x3d).
func opALU(mc *CPU) int {
	op := int(mc.opcode>>3) & 0x07

	switch mc.opcode & 0x07 {
	case 0: // r/m8, r8
		mc.decodeModRM()
		if r, ok := mc.alu(op, uint32(mc.rm8()), uint32(mc.reg8()), byteWidth); ok {
			mc.setRM8(uint8(r))
		}
		return mc.cost(1, 3)
	case 1: // r/m16, r16
		mc.decodeModRM()
		if r, ok := mc.alu(op, uint32(mc.rm16()), uint32(mc.reg16().Value()), wordWidth); ok {
			mc.setRM16(uint16(r))
		}
		return mc.cost(1, 3)
	case 2: // r8, r/m8
		mc.decodeModRM()
		if r, ok := mc.alu(op, uint32(mc.reg8()), uint32(mc.rm8()), byteWidth); ok {
			mc.setReg8(uint8(r))
		}
		return mc.cost(1, 2)
	case 3: // r16, r/m16
		mc.decodeModRM()
		if r, ok := mc.alu(op, uint32(mc.reg16().Value()), uint32(mc.rm16()), wordWidth); ok {
			mc.reg16().Load(uint16(r))
		}
		return mc.cost(1, 2)
	case 4: // AL, imm8
		if r, ok := mc.alu(op, uint32(mc.AX.Lo()), uint32(mc.fetch8()), byteWidth); ok {
			mc.AX.LoadLo(uint8(r))
		}
		return 1
	}

	// AX, imm16
	if r, ok := mc.alu(op, uint32(mc.AX.Value()), uint32(mc.fetch16()), wordWidth); ok {
		mc.AX.Load(uint16(r))
	}
	return 1
}

// opIncDec16 implements INC r16 (0x40 to 0x47) and DEC r16 (0x48 to 0x4f).
func opIncDec16(mc *CPU) int {
	r := mc.Reg16(int(mc.opcode & 0x07))
	if mc.opcode&0x08 == 0 {
		r.Load(uint16(mc.inc(uint32(r.Value()), wordWidth)))
	} else {
		r.Load(uint16(mc.dec(uint32(r.Value()), wordWidth)))
	}
	return 1
}

// opGroup1 implements the immediate forms of the arithmetic and logic
// operations (opcodes 0x80 to 0x83).
func opGroup1(mc *CPU) int {
	mc.decodeModRM()
	op := mc.modrm.reg

	switch mc.opcode {
	case 0x80, 0x82:
		a := uint32(mc.rm8())
		if r, ok := mc.alu(op, a, uint32(mc.fetch8()), byteWidth); ok {
			mc.setRM8(uint8(r))
		}
	case 0x81:
		a := uint32(mc.rm16())
		if r, ok := mc.alu(op, a, uint32(mc.fetch16()), wordWidth); ok {
			mc.setRM16(uint16(r))
		}
	case 0x83:
		a := uint32(mc.rm16())
		b := uint32(uint16(int8(mc.fetch8())))
		if r, ok := mc.alu(op, a, b, wordWidth); ok {
			mc.setRM16(uint16(r))
		}
	}

	if op == aluCMP {
		return mc.cost(1, 2)
	}
	return mc.cost(1, 3)
}

// opTest implements TEST r/m, reg (0x84, 0x85) and TEST acc, imm (0xa8, 0xa9).
func opTest(mc *CPU) int {
	switch mc.opcode {
	case 0x84:
		mc.decodeModRM()
		mc.logic(uint32(mc.rm8()&mc.reg8()), byteWidth)
		return mc.cost(1, 2)
	case 0x85:
		mc.decodeModRM()
		mc.logic(uint32(mc.rm16()&mc.reg16().Value()), wordWidth)
		return mc.cost(1, 2)
	case 0xa8:
		mc.logic(uint32(mc.AX.Lo()&mc.fetch8()), byteWidth)
		return 1
	}
	mc.logic(uint32(mc.AX.Value()&mc.fetch16()), wordWidth)
	return 1
}

// opGroup2 implements the shift and rotate instructions (opcodes 0xc0, 0xc1
// and 0xd0 to 0xd3).
func opGroup2(mc *CPU) int {
	mc.decodeModRM()
	op := mc.modrm.reg

	word := mc.opcode&0x01 == 0x01

	var v uint32
	if word {
		v = uint32(mc.rm16())
	} else {
		v = uint32(mc.rm8())
	}

	var count uint8
	var cycles int

	switch mc.opcode {
	case 0xc0, 0xc1:
		count = mc.fetch8()
		cycles = mc.cost(3, 5)
	case 0xd0, 0xd1:
		count = 1
		cycles = mc.cost(1, 3)
	default:
		count = mc.CX.Lo()
		cycles = mc.cost(3, 5)
	}

	if word {
		mc.setRM16(uint16(mc.shift(op, v, count, wordWidth)))
	} else {
		mc.setRM8(uint8(mc.shift(op, v, count, byteWidth)))
	}

	return cycles
}

// opGroup3 implements TEST, NOT, NEG, MUL, IMUL, DIV and IDIV with a single
// r/m operand (opcodes 0xf6 and 0xf7).
func opGroup3(mc *CPU) int {
	mc.decodeModRM()
	if mc.opcode == 0xf6 {
		return mc.group3Byte()
	}
	return mc.group3Word()
}

func (mc *CPU) group3Byte() int {
	v := mc.rm8()

	switch mc.modrm.reg {
	case 0, 1: // TEST
		mc.logic(uint32(v&mc.fetch8()), byteWidth)
		return mc.cost(1, 2)
	case 2: // NOT
		mc.setRM8(^v)
		return mc.cost(1, 3)
	case 3: // NEG
		mc.setRM8(uint8(mc.sub(0, uint32(v), 0, byteWidth)))
		return mc.cost(1, 3)
	case 4: // MUL
		r := uint16(mc.AX.Lo()) * uint16(v)
		mc.AX.Load(r)
		mc.Flags.Carry = r&0xff00 != 0
		mc.Flags.Overflow = mc.Flags.Carry
		return mc.cost(3, 4)
	case 5: // IMUL
		r := int16(int8(mc.AX.Lo())) * int16(int8(v))
		mc.AX.Load(uint16(r))
		mc.Flags.Carry = r != int16(int8(r))
		mc.Flags.Overflow = mc.Flags.Carry
		return mc.cost(3, 4)
	case 6: // DIV
		if v == 0 {
			return mc.divideError()
		}
		q := mc.AX.Value() / uint16(v)
		if q > 0xff {
			return mc.divideError()
		}
		mc.AX.LoadHi(uint8(mc.AX.Value() % uint16(v)))
		mc.AX.LoadLo(uint8(q))
		return mc.cost(15, 16)
	}

	// IDIV
	if v == 0 {
		return mc.divideError()
	}
	a := int16(mc.AX.Value())
	q := a / int16(int8(v))
	if q > 127 || q < -128 {
		return mc.divideError()
	}
	mc.AX.LoadHi(uint8(a % int16(int8(v))))
	mc.AX.LoadLo(uint8(q))
	return mc.cost(17, 18)
}

func (mc *CPU) group3Word() int {
	v := mc.rm16()

	switch mc.modrm.reg {
	case 0, 1: // TEST
		mc.logic(uint32(v&mc.fetch16()), wordWidth)
		return mc.cost(1, 2)
	case 2: // NOT
		mc.setRM16(^v)
		return mc.cost(1, 3)
	case 3: // NEG
		mc.setRM16(uint16(mc.sub(0, uint32(v), 0, wordWidth)))
		return mc.cost(1, 3)
	case 4: // MUL
		r := uint32(mc.AX.Value()) * uint32(v)
		mc.AX.Load(uint16(r))
		mc.DX.Load(uint16(r >> 16))
		mc.Flags.Carry = r&0xffff0000 != 0
		mc.Flags.Overflow = mc.Flags.Carry
		return mc.cost(3, 4)
	case 5: // IMUL
		r := int32(int16(mc.AX.Value())) * int32(int16(v))
		mc.AX.Load(uint16(r))
		mc.DX.Load(uint16(uint32(r) >> 16))
		mc.Flags.Carry = r != int32(int16(r))
		mc.Flags.Overflow = mc.Flags.Carry
		return mc.cost(3, 4)
	case 6: // DIV
		if v == 0 {
			return mc.divideError()
		}
		a := uint32(mc.DX.Value())<<16 | uint32(mc.AX.Value())
		q := a / uint32(v)
		if q > 0xffff {
			return mc.divideError()
		}
		mc.DX.Load(uint16(a % uint32(v)))
		mc.AX.Load(uint16(q))
		return mc.cost(23, 24)
	}

	// IDIV
	if v == 0 {
		return mc.divideError()
	}
	a := int32(uint32(mc.DX.Value())<<16 | uint32(mc.AX.Value()))
	q := a / int32(int16(v))
	if q > 32767 || q < -32768 {
		return mc.divideError()
	}
	mc.DX.Load(uint16(a % int32(int16(v))))
	mc.AX.Load(uint16(q))
	return mc.cost(24, 25)
}

// opIMulImm implements IMUL r16, r/m16, imm (0x69 and 0x6b).
func opIMulImm(mc *CPU) int {
	mc.decodeModRM()
	a := int32(int16(mc.rm16()))

	var b int32
	if mc.opcode == 0x69 {
		b = int32(int16(mc.fetch16()))
	} else {
		b = int32(int8(mc.fetch8()))
	}

	r := a * b
	mc.reg16().Load(uint16(r))
	mc.Flags.Carry = r != int32(int16(r))
	mc.Flags.Overflow = mc.Flags.Carry
	return mc.cost(3, 4)
}

// opGroup4 implements INC and DEC r/m8 (0xfe). The other operations of the
// group are not defined and do nothing.
func opGroup4(mc *CPU) int {
	mc.decodeModRM()
	switch mc.modrm.reg {
	case 0:
		mc.setRM8(uint8(mc.inc(uint32(mc.rm8()), byteWidth)))
	case 1:
		mc.setRM8(uint8(mc.dec(uint32(mc.rm8()), byteWidth)))
	default:
		return 1
	}
	return mc.cost(1, 3)
}

func opDAA(mc *CPU) int {
	al := mc.AX.Lo()
	v := al
	if al&0x0f > 0x09 || mc.Flags.Auxiliary {
		v += 0x06
		mc.Flags.Auxiliary = true
	} else {
		mc.Flags.Auxiliary = false
	}
	if al > 0x99 || mc.Flags.Carry {
		v += 0x60
		mc.Flags.Carry = true
	} else {
		mc.Flags.Carry = false
	}
	mc.AX.LoadLo(v)
	mc.setSZP(uint32(v), byteWidth)
	return 10
}

func opDAS(mc *CPU) int {
	al := mc.AX.Lo()
	v := al
	if al&0x0f > 0x09 || mc.Flags.Auxiliary {
		v -= 0x06
		mc.Flags.Auxiliary = true
	} else {
		mc.Flags.Auxiliary = false
	}
	if al > 0x99 || mc.Flags.Carry {
		v -= 0x60
		mc.Flags.Carry = true
	} else {
		mc.Flags.Carry = false
	}
	mc.AX.LoadLo(v)
	mc.setSZP(uint32(v), byteWidth)
	return 10
}

func opAAA(mc *CPU) int {
	if mc.AX.Lo()&0x0f > 0x09 || mc.Flags.Auxiliary {
		mc.AX.LoadLo(mc.AX.Lo() + 0x06)
		mc.AX.LoadHi(mc.AX.Hi() + 0x01)
		mc.Flags.Auxiliary = true
		mc.Flags.Carry = true
	} else {
		mc.Flags.Auxiliary = false
		mc.Flags.Carry = false
	}
	mc.AX.LoadLo(mc.AX.Lo() & 0x0f)
	return 9
}

func opAAS(mc *CPU) int {
	if mc.AX.Lo()&0x0f > 0x09 || mc.Flags.Auxiliary {
		mc.AX.LoadLo(mc.AX.Lo() - 0x06)
		mc.AX.LoadHi(mc.AX.Hi() - 0x01)
		mc.Flags.Auxiliary = true
		mc.Flags.Carry = true
	} else {
		mc.Flags.Auxiliary = false
		mc.Flags.Carry = false
	}
	mc.AX.LoadLo(mc.AX.Lo() & 0x0f)
	return 9
}

func opAAM(mc *CPU) int {
	base := mc.fetch8()
	if base == 0 {
		return mc.divideError()
	}
	al := mc.AX.Lo()
	mc.AX.LoadHi(al / base)
	mc.AX.LoadLo(al % base)
	mc.setSZP(uint32(mc.AX.Lo()), byteWidth)
	return 16
}

func opAAD(mc *CPU) int {
	base := mc.fetch8()
	mc.AX.Load(uint16(mc.AX.Lo() + mc.AX.Hi()*base))
	mc.setSZP(uint32(mc.AX.Lo()), byteWidth)
	return 6
}

// opSALC sets AL to 0xff if the carry flag is set and to 0x00 if it is not.
func opSALC(mc *CPU) int {
	if mc.Flags.Carry {
		mc.AX.LoadLo(0xff)
	} else {
		mc.AX.LoadLo(0x00)
	}
	return 8
}

func opCBW(mc *CPU) int {
	mc.AX.Load(uint16(int16(int8(mc.AX.Lo()))))
	return 1
}

func opCWD(mc *CPU) int {
	if mc.AX.Value()&0x8000 == 0x8000 {
		mc.DX.Load(0xffff)
	} else {
		mc.DX.Load(0x0000)
	}
	return 1
}

// opFlags implements the instructions that change a single flag (0xf5 and
// 0xf8 to 0xfd).
func opFlags(mc *CPU) int {
	switch mc.opcode {
	case 0xf5:
		mc.Flags.Carry = !mc.Flags.Carry
	case 0xf8:
		mc.Flags.Carry = false
	case 0xf9:
		mc.Flags.Carry = true
	case 0xfa:
		mc.Flags.InterruptEnable = false
	case 0xfb:
		mc.Flags.InterruptEnable = true
	case 0xfc:
		mc.Flags.Direction = false
	case 0xfd:
		mc.Flags.Direction = true
	}
	return 4
}

func opLAHF(mc *CPU) int {
	mc.AX.LoadHi(uint8(mc.Flags.Value()))
	return 2
}

func opSAHF(mc *CPU) int {
	v := mc.Flags.Value()&0xff00 | uint16(mc.AX.Hi())
	mc.Flags.Load(v)
	return 4
}

func opPushF(mc *CPU) int {
	mc.push(mc.Flags.Value())
	return 2
}

func opPopF(mc *CPU) int {
	mc.Flags.Load(mc.pop())
	return 3
}
