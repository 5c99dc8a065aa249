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

// condition returns the result of the condition encoded in the low nibble of
// the conditional jump opcodes.
func (mc *CPU) condition(cc uint8) bool {
	var r bool

	switch cc >> 1 {
	case 0:
		r = mc.Flags.Overflow
	case 1:
		r = mc.Flags.Carry
	case 2:
		r = mc.Flags.Zero
	case 3:
		r = mc.Flags.Carry || mc.Flags.Zero
	case 4:
		r = mc.Flags.Sign
	case 5:
		r = mc.Flags.Parity
	case 6:
		r = mc.Flags.Sign != mc.Flags.Overflow
	case 7:
		r = mc.Flags.Zero || mc.Flags.Sign != mc.Flags.Overflow
	}

	// odd conditions are the negation of the even condition
	if cc&0x01 == 0x01 {
		return !r
	}
	return r
}

// relative jump by a signed 8 bit displacement
func (mc *CPU) jumpShort(disp uint8) {
	mc.IP.Add(uint16(int8(disp)))
}

// opJcc implements the conditional jumps (0x70 to 0x7f).
func opJcc(mc *CPU) int {
	disp := mc.fetch8()
	if mc.condition(mc.opcode & 0x0f) {
		mc.jumpShort(disp)
		return 4
	}
	return 1
}

// opLoop implements LOOPNE (0xe0), LOOPE (0xe1), LOOP (0xe2) and JCXZ
// (0xe3).
func opLoop(mc *CPU) int {
	disp := mc.fetch8()

	if mc.opcode == 0xe3 {
		if mc.CX.Value() == 0 {
			mc.jumpShort(disp)
			return 4
		}
		return 1
	}

	mc.CX.Add(0xffff)
	jump := mc.CX.Value() != 0

	switch mc.opcode {
	case 0xe0:
		jump = jump && !mc.Flags.Zero
	case 0xe1:
		jump = jump && mc.Flags.Zero
	}

	if jump {
		mc.jumpShort(disp)
		return 6
	}
	return 3
}

func opJmpShort(mc *CPU) int {
	mc.jumpShort(mc.fetch8())
	return 4
}

func opJmpNear(mc *CPU) int {
	disp := mc.fetch16()
	mc.IP.Add(disp)
	return 4
}

func opJmpFar(mc *CPU) int {
	offset := mc.fetch16()
	seg := mc.fetch16()
	mc.IP.Load(offset)
	mc.CS.Load(seg)
	return 7
}

func opCallNear(mc *CPU) int {
	disp := mc.fetch16()
	mc.push(mc.IP.Value())
	mc.IP.Add(disp)
	return 5
}

func opCallFar(mc *CPU) int {
	offset := mc.fetch16()
	seg := mc.fetch16()
	mc.push(mc.CS.Value())
	mc.push(mc.IP.Value())
	mc.IP.Load(offset)
	mc.CS.Load(seg)
	return 10
}

// opRet implements RET (0xc3) and RET imm16 (0xc2).
func opRet(mc *CPU) int {
	var n uint16
	if mc.opcode == 0xc2 {
		n = mc.fetch16()
	}
	mc.IP.Load(mc.pop())
	mc.SP.Add(n)
	if mc.opcode == 0xc2 {
		return 6
	}
	return 5
}

// opRetFar implements RETF (0xcb) and RETF imm16 (0xca).
func opRetFar(mc *CPU) int {
	var n uint16
	if mc.opcode == 0xca {
		n = mc.fetch16()
	}
	mc.IP.Load(mc.pop())
	mc.CS.Load(mc.pop())
	mc.SP.Add(n)
	if mc.opcode == 0xca {
		return 9
	}
	return 8
}

// opGroup5 implements INC, DEC, CALL, JMP and PUSH with an r/m16 operand
// (0xff).
func opGroup5(mc *CPU) int {
	mc.decodeModRM()

	switch mc.modrm.reg {
	case 0:
		mc.setRM16(uint16(mc.inc(uint32(mc.rm16()), wordWidth)))
		return mc.cost(1, 3)
	case 1:
		mc.setRM16(uint16(mc.dec(uint32(mc.rm16()), wordWidth)))
		return mc.cost(1, 3)
	case 2: // CALL near
		v := mc.rm16()
		mc.push(mc.IP.Value())
		mc.IP.Load(v)
		return mc.cost(5, 6)
	case 3: // CALL far
		if !mc.isMem() {
			return 1
		}
		offset, seg := mc.rmFar()
		mc.push(mc.CS.Value())
		mc.push(mc.IP.Value())
		mc.IP.Load(offset)
		mc.CS.Load(seg)
		return 12
	case 4: // JMP near
		mc.IP.Load(mc.rm16())
		return mc.cost(4, 5)
	case 5: // JMP far
		if !mc.isMem() {
			return 1
		}
		offset, seg := mc.rmFar()
		mc.IP.Load(offset)
		mc.CS.Load(seg)
		return 9
	case 6: // PUSH
		mc.push(mc.rm16())
		return mc.cost(1, 2)
	}

	// undefined
	return 1
}

// opInt implements INT3 (0xcc), INT imm8 (0xcd) and INTO (0xce).
func opInt(mc *CPU) int {
	switch mc.opcode {
	case 0xcc:
		mc.interrupt(3)
		return 9
	case 0xcd:
		mc.interrupt(mc.fetch8())
		return 10
	}
	if mc.Flags.Overflow {
		mc.interrupt(4)
		return 13
	}
	return 6
}

func opIret(mc *CPU) int {
	mc.IP.Load(mc.pop())
	mc.CS.Load(mc.pop())
	mc.Flags.Load(mc.pop())
	return 10
}

func opHalt(mc *CPU) int {
	mc.Halted = true
	return 9
}

// opWait does nothing. There is no coprocessor to wait for.
func opWait(mc *CPU) int {
	return 1
}

// opEnter implements ENTER imm16, imm8 (0xc8).
func opEnter(mc *CPU) int {
	size := mc.fetch16()
	level := mc.fetch8() & 0x1f

	mc.push(mc.BP.Value())
	frame := mc.SP.Value()

	cycles := 7
	if level > 0 {
		bp := mc.BP.Value()
		for range level - 1 {
			bp -= 2
			mc.push(mc.read16(mc.SS.Value(), bp))
			cycles += 4
		}
		mc.push(frame)
		cycles += 6
	}

	mc.BP.Load(frame)
	mc.SP.Add(-size)
	return cycles
}

func opLeave(mc *CPU) int {
	mc.SP.Load(mc.BP.Value())
	mc.BP.Load(mc.pop())
	return 2
}

// opBound implements BOUND r16, m16&16 (0x62). An index outside of the
// bounds raises interrupt 5.
func opBound(mc *CPU) int {
	mc.decodeModRM()
	if !mc.isMem() {
		return 1
	}
	lower, upper := mc.rmFar()
	v := int16(mc.reg16().Value())
	if v < int16(lower) || v > int16(upper) {
		mc.interrupt(5)
		return 13
	}
	return 12
}
