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

// modrm is the decoded addressing mode byte.
type modrm struct {
	mod int
	reg int
	rm  int

	// segment and offset of a memory operand. only valid if mod != 3
	seg    uint16
	offset uint16
}

// decodeModRM reads the addressing mode byte and any displacement that
// follows it.
func (mc *CPU) decodeModRM() {
	b := mc.fetch8()
	mc.modrm.mod = int(b >> 6)
	mc.modrm.reg = int(b>>3) & 0x07
	mc.modrm.rm = int(b) & 0x07

	if mc.modrm.mod == 3 {
		return
	}

	var offset uint16
	def := registers.DS

	switch mc.modrm.rm {
	case 0:
		offset = mc.BX.Value() + mc.SI.Value()
	case 1:
		offset = mc.BX.Value() + mc.DI.Value()
	case 2:
		offset = mc.BP.Value() + mc.SI.Value()
		def = registers.SS
	case 3:
		offset = mc.BP.Value() + mc.DI.Value()
		def = registers.SS
	case 4:
		offset = mc.SI.Value()
	case 5:
		offset = mc.DI.Value()
	case 6:
		if mc.modrm.mod == 0 {
			offset = mc.fetch16()
		} else {
			offset = mc.BP.Value()
			def = registers.SS
		}
	case 7:
		offset = mc.BX.Value()
	}

	switch mc.modrm.mod {
	case 1:
		offset += uint16(int8(mc.fetch8()))
	case 2:
		offset += mc.fetch16()
	}

	mc.modrm.seg = mc.segment(def)
	mc.modrm.offset = offset
}

// isMem returns true if the decoded operand is in memory.
func (mc *CPU) isMem() bool {
	return mc.modrm.mod != 3
}

// cost returns reg if the decoded operand is a register and mem if the
// operand is in memory.
func (mc *CPU) cost(reg int, mem int) int {
	if mc.isMem() {
		return mem
	}
	return reg
}

func (mc *CPU) rm8() uint8 {
	if mc.isMem() {
		return mc.read8(mc.modrm.seg, mc.modrm.offset)
	}
	return mc.Reg8(mc.modrm.rm)
}

func (mc *CPU) setRM8(v uint8) {
	if mc.isMem() {
		mc.write8(mc.modrm.seg, mc.modrm.offset, v)
		return
	}
	mc.LoadReg8(mc.modrm.rm, v)
}

func (mc *CPU) rm16() uint16 {
	if mc.isMem() {
		return mc.read16(mc.modrm.seg, mc.modrm.offset)
	}
	return mc.Reg16(mc.modrm.rm).Value()
}

func (mc *CPU) setRM16(v uint16) {
	if mc.isMem() {
		mc.write16(mc.modrm.seg, mc.modrm.offset, v)
		return
	}
	mc.Reg16(mc.modrm.rm).Load(v)
}

// far pointer at the memory operand. returns the offset and the segment
func (mc *CPU) rmFar() (uint16, uint16) {
	offset := mc.read16(mc.modrm.seg, mc.modrm.offset)
	seg := mc.read16(mc.modrm.seg, mc.modrm.offset+2)
	return offset, seg
}

func (mc *CPU) reg8() uint8 {
	return mc.Reg8(mc.modrm.reg)
}

func (mc *CPU) setReg8(v uint8) {
	mc.LoadReg8(mc.modrm.reg, v)
}

func (mc *CPU) reg16() *registers.Register {
	return mc.Reg16(mc.modrm.reg)
}
