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

// stringStep returns the amount that SI and DI change by after each
// iteration of a string instruction.
func (mc *CPU) stringStep(word bool) uint16 {
	var n uint16 = 1
	if word {
		n = 2
	}
	if mc.Flags.Direction {
		return -n
	}
	return n
}

// repeat handles the REP prefix for a string instruction. The iteration
// function performs one iteration of the instruction. If compare is true the
// REPE/REPNE condition is checked after each iteration.
//
// The instruction pointer is rewound to the start of the instruction until
// the repetition is complete.
func (mc *CPU) repeat(cycles int, compare bool, iteration func()) int {
	if mc.rep == 0 {
		iteration()
		return cycles
	}

	if mc.CX.Value() == 0 {
		return 1
	}

	iteration()
	mc.CX.Add(0xffff)

	if mc.CX.Value() == 0 {
		return cycles
	}

	if compare {
		// REPNE (0xf2) ends when the zero flag is set. REPE (0xf3) ends when
		// the zero flag is clear
		if (mc.rep == 0xf2) == mc.Flags.Zero {
			return cycles
		}
	}

	mc.IP.Load(mc.start)
	return cycles
}

// opStringMove implements MOVSB and MOVSW (0xa4 and 0xa5).
func opStringMove(mc *CPU) int {
	word := mc.opcode&0x01 == 0x01
	return mc.repeat(5, false, func() {
		src := mc.segment(registers.DS)
		if word {
			mc.write16(mc.ES.Value(), mc.DI.Value(), mc.read16(src, mc.SI.Value()))
		} else {
			mc.write8(mc.ES.Value(), mc.DI.Value(), mc.read8(src, mc.SI.Value()))
		}
		n := mc.stringStep(word)
		mc.SI.Add(n)
		mc.DI.Add(n)
	})
}

// opStringCompare implements CMPSB and CMPSW (0xa6 and 0xa7).
func opStringCompare(mc *CPU) int {
	word := mc.opcode&0x01 == 0x01
	return mc.repeat(6, true, func() {
		src := mc.segment(registers.DS)
		if word {
			mc.sub(uint32(mc.read16(src, mc.SI.Value())), uint32(mc.read16(mc.ES.Value(), mc.DI.Value())), 0, wordWidth)
		} else {
			mc.sub(uint32(mc.read8(src, mc.SI.Value())), uint32(mc.read8(mc.ES.Value(), mc.DI.Value())), 0, byteWidth)
		}
		n := mc.stringStep(word)
		mc.SI.Add(n)
		mc.DI.Add(n)
	})
}

// opStringStore implements STOSB and STOSW (0xaa and 0xab).
func opStringStore(mc *CPU) int {
	word := mc.opcode&0x01 == 0x01
	return mc.repeat(3, false, func() {
		if word {
			mc.write16(mc.ES.Value(), mc.DI.Value(), mc.AX.Value())
		} else {
			mc.write8(mc.ES.Value(), mc.DI.Value(), mc.AX.Lo())
		}
		mc.DI.Add(mc.stringStep(word))
	})
}

// opStringLoad implements LODSB and LODSW (0xac and 0xad).
func opStringLoad(mc *CPU) int {
	word := mc.opcode&0x01 == 0x01
	return mc.repeat(3, false, func() {
		src := mc.segment(registers.DS)
		if word {
			mc.AX.Load(mc.read16(src, mc.SI.Value()))
		} else {
			mc.AX.LoadLo(mc.read8(src, mc.SI.Value()))
		}
		mc.SI.Add(mc.stringStep(word))
	})
}

// opStringScan implements SCASB and SCASW (0xae and 0xaf).
func opStringScan(mc *CPU) int {
	word := mc.opcode&0x01 == 0x01
	return mc.repeat(4, true, func() {
		if word {
			mc.sub(uint32(mc.AX.Value()), uint32(mc.read16(mc.ES.Value(), mc.DI.Value())), 0, wordWidth)
		} else {
			mc.sub(uint32(mc.AX.Lo()), uint32(mc.read8(mc.ES.Value(), mc.DI.Value())), 0, byteWidth)
		}
		mc.DI.Add(mc.stringStep(word))
	})
}

// opStringIn implements INSB and INSW (0x6c and 0x6d).
func opStringIn(mc *CPU) int {
	word := mc.opcode&0x01 == 0x01
	return mc.repeat(6, false, func() {
		port := uint8(mc.DX.Value())
		mc.write8(mc.ES.Value(), mc.DI.Value(), mc.mem.ReadPort(port))
		if word {
			mc.write8(mc.ES.Value(), mc.DI.Value()+1, mc.mem.ReadPort(port+1))
		}
		mc.DI.Add(mc.stringStep(word))
	})
}

// opStringOut implements OUTSB and OUTSW (0x6e and 0x6f).
func opStringOut(mc *CPU) int {
	word := mc.opcode&0x01 == 0x01
	return mc.repeat(6, false, func() {
		port := uint8(mc.DX.Value())
		src := mc.segment(registers.DS)
		mc.mem.WritePort(port, mc.read8(src, mc.SI.Value()))
		if word {
			mc.mem.WritePort(port+1, mc.read8(src, mc.SI.Value()+1))
		}
		mc.SI.Add(mc.stringStep(word))
	})
}
