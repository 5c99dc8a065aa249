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

import "math/bits"

// operand widths
const (
	byteWidth = 8
	wordWidth = 16
)

func signBit(w int) uint32 {
	return 1 << (w - 1)
}

func widthMask(w int) uint32 {
	return 1<<w - 1
}

// setSZP sets the sign, zero and parity flags for the result.
func (mc *CPU) setSZP(v uint32, w int) {
	v &= widthMask(w)
	mc.Flags.Sign = v&signBit(w) != 0
	mc.Flags.Zero = v == 0
	mc.Flags.Parity = bits.OnesCount8(uint8(v))%2 == 0
}

func (mc *CPU) add(a uint32, b uint32, carry uint32, w int) uint32 {
	r := a + b + carry
	mc.Flags.Carry = r > widthMask(w)
	mc.Flags.Auxiliary = (a^b^r)&0x10 != 0
	mc.Flags.Overflow = (r^a)&(r^b)&signBit(w) != 0
	mc.setSZP(r, w)
	return r & widthMask(w)
}

func (mc *CPU) sub(a uint32, b uint32, borrow uint32, w int) uint32 {
	r := a - b - borrow
	mc.Flags.Carry = b+borrow > a
	mc.Flags.Auxiliary = (a^b^r)&0x10 != 0
	mc.Flags.Overflow = (a^b)&(a^r)&signBit(w) != 0
	mc.setSZP(r, w)
	return r & widthMask(w)
}

func (mc *CPU) logic(r uint32, w int) uint32 {
	mc.Flags.Carry = false
	mc.Flags.Overflow = false
	mc.Flags.Auxiliary = false
	mc.setSZP(r, w)
	return r & widthMask(w)
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// operations selected by bits 3 to 5 of the opcode or by the reg field of the
// addressing mode byte
const (
	aluADD = iota
	aluOR
	aluADC
	aluSBB
	aluAND
	aluSUB
	aluXOR
	aluCMP
)

// alu performs the operation and returns the result. The boolean is false if
// the result should not be written (CMP).
func (mc *CPU) alu(op int, a uint32, b uint32, w int) (uint32, bool) {
	switch op {
	case aluADD:
		return mc.add(a, b, 0, w), true
	case aluOR:
		return mc.logic(a|b, w), true
	case aluADC:
		return mc.add(a, b, boolBit(mc.Flags.Carry), w), true
	case aluSBB:
		return mc.sub(a, b, boolBit(mc.Flags.Carry), w), true
	case aluAND:
		return mc.logic(a&b, w), true
	case aluSUB:
		return mc.sub(a, b, 0, w), true
	case aluXOR:
		return mc.logic(a^b, w), true
	}
	mc.sub(a, b, 0, w)
	return a, false
}

// inc and dec do not change the carry flag
func (mc *CPU) inc(v uint32, w int) uint32 {
	c := mc.Flags.Carry
	r := mc.add(v, 1, 0, w)
	mc.Flags.Carry = c
	return r
}

func (mc *CPU) dec(v uint32, w int) uint32 {
	c := mc.Flags.Carry
	r := mc.sub(v, 1, 0, w)
	mc.Flags.Carry = c
	return r
}

// operations selected by the reg field of the addressing mode byte for the
// shift and rotate instructions
const (
	shiftROL = iota
	shiftROR
	shiftRCL
	shiftRCR
	shiftSHL
	shiftSHR
	shiftSAL
	shiftSAR
)

// shift performs the shift or rotate operation count times. A count of zero
// changes nothing, including the flags.
func (mc *CPU) shift(op int, v uint32, count uint8, w int) uint32 {
	count &= 0x1f
	if count == 0 {
		return v
	}

	sb := signBit(w)
	mask := widthMask(w)
	v &= mask

	for range count {
		switch op {
		case shiftROL:
			mc.Flags.Carry = v&sb != 0
			v = (v<<1 | boolBit(mc.Flags.Carry)) & mask
			mc.Flags.Overflow = (v&sb != 0) != mc.Flags.Carry
		case shiftROR:
			mc.Flags.Carry = v&1 != 0
			v = v>>1 | boolBit(mc.Flags.Carry)<<(w-1)
			mc.Flags.Overflow = (v^v<<1)&sb != 0
		case shiftRCL:
			c := v&sb != 0
			v = (v<<1 | boolBit(mc.Flags.Carry)) & mask
			mc.Flags.Carry = c
			mc.Flags.Overflow = (v&sb != 0) != mc.Flags.Carry
		case shiftRCR:
			c := v&1 != 0
			v = v>>1 | boolBit(mc.Flags.Carry)<<(w-1)
			mc.Flags.Carry = c
			mc.Flags.Overflow = (v^v<<1)&sb != 0
		case shiftSHL, shiftSAL:
			mc.Flags.Carry = v&sb != 0
			v = (v << 1) & mask
			mc.Flags.Overflow = (v&sb != 0) != mc.Flags.Carry
		case shiftSHR:
			mc.Flags.Carry = v&1 != 0
			mc.Flags.Overflow = v&sb != 0
			v >>= 1
		case shiftSAR:
			mc.Flags.Carry = v&1 != 0
			mc.Flags.Overflow = false
			v = v>>1 | v&sb
		}
	}

	if op >= shiftSHL {
		mc.setSZP(v, w)
	}

	return v
}
