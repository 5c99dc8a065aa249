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

import "github.com/jetsetilly/gopherswan/hardware/cpu/registers"

// opMov implements the register and memory forms of MOV (0x88 to 0x8b).
func opMov(mc *CPU) int {
	mc.decodeModRM()
	switch mc.opcode {
	case 0x88:
		mc.setRM8(mc.reg8())
	case 0x89:
		mc.setRM16(mc.reg16().Value())
	case 0x8a:
		mc.setReg8(mc.rm8())
	case 0x8b:
		mc.reg16().Load(mc.rm16())
	}
	return 1
}

// opMovSeg implements MOV r/m16, sreg (0x8c) and MOV sreg, r/m16 (0x8e).
func opMovSeg(mc *CPU) int {
	mc.decodeModRM()
	if mc.opcode == 0x8c {
		mc.setRM16(mc.Seg(mc.modrm.reg).Value())
		return mc.cost(1, 3)
	}
	mc.Seg(mc.modrm.reg).Load(mc.rm16())
	return mc.cost(2, 3)
}

// opMovImm implements MOV r, imm (0xb0 to 0xbf).
func opMovImm(mc *CPU) int {
	r := int(mc.opcode & 0x07)
	if mc.opcode&0x08 == 0 {
		mc.LoadReg8(r, mc.fetch8())
	} else {
		mc.Reg16(r).Load(mc.fetch16())
	}
	return 1
}

// opMovRMImm implements MOV r/m, imm (0xc6 and 0xc7).
func opMovRMImm(mc *CPU) int {
	mc.decodeModRM()
	if mc.opcode == 0xc6 {
		mc.setRM8(mc.fetch8())
	} else {
		mc.setRM16(mc.fetch16())
	}
	return 1
}

// opMovAcc implements MOV between the accumulator and a direct memory
// address (0xa0 to 0xa3).
func opMovAcc(mc *CPU) int {
	offset := mc.fetch16()
	seg := mc.segment(registers.DS)
	switch mc.opcode {
	case 0xa0:
		mc.AX.LoadLo(mc.read8(seg, offset))
	case 0xa1:
		mc.AX.Load(mc.read16(seg, offset))
	case 0xa2:
		mc.write8(seg, offset, mc.AX.Lo())
	case 0xa3:
		mc.write16(seg, offset, mc.AX.Value())
	}
	return 1
}

// opXchg implements XCHG r/m, r (0x86 and 0x87).
func opXchg(mc *CPU) int {
	mc.decodeModRM()
	if mc.opcode == 0x86 {
		v := mc.rm8()
		mc.setRM8(mc.reg8())
		mc.setReg8(v)
	} else {
		v := mc.rm16()
		mc.setRM16(mc.reg16().Value())
		mc.reg16().Load(v)
	}
	return mc.cost(3, 5)
}

// opXchgAX implements XCHG AX, r16 (0x91 to 0x97).
func opXchgAX(mc *CPU) int {
	r := mc.Reg16(int(mc.opcode & 0x07))
	v := r.Value()
	r.Load(mc.AX.Value())
	mc.AX.Load(v)
	return 3
}

func opNop(mc *CPU) int {
	return 1
}

// opEscape implements the coprocessor escape instructions (0xd8 to 0xdf).
// There is no coprocessor and the instruction does nothing except consume
// the addressing mode.
func opEscape(mc *CPU) int {
	mc.decodeModRM()
	return 1
}

func opLea(mc *CPU) int {
	mc.decodeModRM()
	mc.reg16().Load(mc.modrm.offset)
	return 1
}

// opLoadFar implements LES (0xc4) and LDS (0xc5).
func opLoadFar(mc *CPU) int {
	mc.decodeModRM()
	offset, seg := mc.rmFar()
	mc.reg16().Load(offset)
	if mc.opcode == 0xc4 {
		mc.ES.Load(seg)
	} else {
		mc.DS.Load(seg)
	}
	return 6
}

// opPushReg implements PUSH r16 (0x50 to 0x57).
func opPushReg(mc *CPU) int {
	mc.push(mc.Reg16(int(mc.opcode & 0x07)).Value())
	return 1
}

// opPopReg implements POP r16 (0x58 to 0x5f).
func opPopReg(mc *CPU) int {
	mc.Reg16(int(mc.opcode & 0x07)).Load(mc.pop())
	return 1
}

// opPushSeg implements PUSH sreg (0x06, 0x0e, 0x16 and 0x1e).
func opPushSeg(mc *CPU) int {
	mc.push(mc.Seg(int(mc.opcode>>3) & 0x03).Value())
	return 2
}

// opPopSeg implements POP sreg (0x07, 0x17 and 0x1f).
func opPopSeg(mc *CPU) int {
	mc.Seg(int(mc.opcode>>3) & 0x03).Load(mc.pop())
	return 3
}

// opPopRM implements POP r/m16 (0x8f).
func opPopRM(mc *CPU) int {
	v := mc.pop()
	mc.decodeModRM()
	mc.setRM16(v)
	return mc.cost(1, 3)
}

// opPushImm implements PUSH imm16 (0x68) and PUSH imm8 (0x6a). The 8 bit
// immediate value is sign extended.
func opPushImm(mc *CPU) int {
	if mc.opcode == 0x68 {
		mc.push(mc.fetch16())
	} else {
		mc.push(uint16(int8(mc.fetch8())))
	}
	return 1
}

func opPushA(mc *CPU) int {
	sp := mc.SP.Value()
	mc.push(mc.AX.Value())
	mc.push(mc.CX.Value())
	mc.push(mc.DX.Value())
	mc.push(mc.BX.Value())
	mc.push(sp)
	mc.push(mc.BP.Value())
	mc.push(mc.SI.Value())
	mc.push(mc.DI.Value())
	return 9
}

// opPopA restores the general registers. The value of SP on the stack is
// discarded.
func opPopA(mc *CPU) int {
	mc.DI.Load(mc.pop())
	mc.SI.Load(mc.pop())
	mc.BP.Load(mc.pop())
	mc.pop()
	mc.BX.Load(mc.pop())
	mc.DX.Load(mc.pop())
	mc.CX.Load(mc.pop())
	mc.AX.Load(mc.pop())
	return 8
}

func opXlat(mc *CPU) int {
	offset := mc.BX.Value() + uint16(mc.AX.Lo())
	mc.AX.LoadLo(mc.read8(mc.segment(registers.DS), offset))
	return 5
}

// opIn implements the IN instructions (0xe4, 0xe5, 0xec and 0xed).
func opIn(mc *CPU) int {
	var port uint8
	if mc.opcode&0x08 == 0 {
		port = mc.fetch8()
	} else {
		port = uint8(mc.DX.Value())
	}

	mc.AX.LoadLo(mc.mem.ReadPort(port))
	if mc.opcode&0x01 == 0x01 {
		mc.AX.LoadHi(mc.mem.ReadPort(port + 1))
	}
	return 6
}

// opOut implements the OUT instructions (0xe6, 0xe7, 0xee and 0xef).
func opOut(mc *CPU) int {
	var port uint8
	if mc.opcode&0x08 == 0 {
		port = mc.fetch8()
	} else {
		port = uint8(mc.DX.Value())
	}

	mc.mem.WritePort(port, mc.AX.Lo())
	if mc.opcode&0x01 == 0x01 {
		mc.mem.WritePort(port+1, mc.AX.Hi())
	}
	return 6
}
