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

// cycles consumed by each prefix byte
const prefixCycles = 1

// maximum number of prefix bytes in one instruction
const maxPrefixes = 16

// cycles consumed by each call to Step() while the CPU is halted
const haltCycles = 1

// opcodeTable returns the handler for every opcode. The segment override,
// LOCK and REP prefixes are handled by Step() and have no entry.
//
// Undefined opcodes are executed as one cycle NOPs.
func opcodeTable() [256]handler {
	var t [256]handler

	// the eight ALU blocks (ADD, OR, ADC, SBB, AND, SUB, XOR, CMP) share the
	// first six opcodes of each group of eight
	for blk := 0; blk < 0x40; blk += 0x08 {
		for i := range 6 {
			t[blk+i] = opALU
		}
	}
	t[0x06] = opPushSeg
	t[0x07] = opPopSeg
	t[0x0e] = opPushSeg
	t[0x0f] = opNop
	t[0x16] = opPushSeg
	t[0x17] = opPopSeg
	t[0x1e] = opPushSeg
	t[0x1f] = opPopSeg
	t[0x27] = opDAA
	t[0x2f] = opDAS
	t[0x37] = opAAA
	t[0x3f] = opAAS

	for i := 0x40; i <= 0x4f; i++ {
		t[i] = opIncDec16
	}
	for i := 0x50; i <= 0x57; i++ {
		t[i] = opPushReg
	}
	for i := 0x58; i <= 0x5f; i++ {
		t[i] = opPopReg
	}

	t[0x60] = opPushA
	t[0x61] = opPopA
	t[0x62] = opBound
	for i := 0x63; i <= 0x67; i++ {
		t[i] = opNop
	}
	t[0x68] = opPushImm
	t[0x69] = opIMulImm
	t[0x6a] = opPushImm
	t[0x6b] = opIMulImm
	t[0x6c] = opStringIn
	t[0x6d] = opStringIn
	t[0x6e] = opStringOut
	t[0x6f] = opStringOut

	for i := 0x70; i <= 0x7f; i++ {
		t[i] = opJcc
	}

	for i := 0x80; i <= 0x83; i++ {
		t[i] = opGroup1
	}
	t[0x84] = opTest
	t[0x85] = opTest
	t[0x86] = opXchg
	t[0x87] = opXchg
	for i := 0x88; i <= 0x8b; i++ {
		t[i] = opMov
	}
	t[0x8c] = opMovSeg
	t[0x8d] = opLea
	t[0x8e] = opMovSeg
	t[0x8f] = opPopRM

	t[0x90] = opNop
	for i := 0x91; i <= 0x97; i++ {
		t[i] = opXchgAX
	}
	t[0x98] = opCBW
	t[0x99] = opCWD
	t[0x9a] = opCallFar
	t[0x9b] = opWait
	t[0x9c] = opPushF
	t[0x9d] = opPopF
	t[0x9e] = opSAHF
	t[0x9f] = opLAHF

	for i := 0xa0; i <= 0xa3; i++ {
		t[i] = opMovAcc
	}
	t[0xa4] = opStringMove
	t[0xa5] = opStringMove
	t[0xa6] = opStringCompare
	t[0xa7] = opStringCompare
	t[0xa8] = opTest
	t[0xa9] = opTest
	t[0xaa] = opStringStore
	t[0xab] = opStringStore
	t[0xac] = opStringLoad
	t[0xad] = opStringLoad
	t[0xae] = opStringScan
	t[0xaf] = opStringScan

	for i := 0xb0; i <= 0xbf; i++ {
		t[i] = opMovImm
	}

	t[0xc0] = opGroup2
	t[0xc1] = opGroup2
	t[0xc2] = opRet
	t[0xc3] = opRet
	t[0xc4] = opLoadFar
	t[0xc5] = opLoadFar
	t[0xc6] = opMovRMImm
	t[0xc7] = opMovRMImm
	t[0xc8] = opEnter
	t[0xc9] = opLeave
	t[0xca] = opRetFar
	t[0xcb] = opRetFar
	t[0xcc] = opInt
	t[0xcd] = opInt
	t[0xce] = opInt
	t[0xcf] = opIret

	for i := 0xd0; i <= 0xd3; i++ {
		t[i] = opGroup2
	}
	t[0xd4] = opAAM
	t[0xd5] = opAAD
	t[0xd6] = opSALC
	t[0xd7] = opXlat
	for i := 0xd8; i <= 0xdf; i++ {
		t[i] = opEscape
	}

	for i := 0xe0; i <= 0xe3; i++ {
		t[i] = opLoop
	}
	t[0xe4] = opIn
	t[0xe5] = opIn
	t[0xe6] = opOut
	t[0xe7] = opOut
	t[0xe8] = opCallNear
	t[0xe9] = opJmpNear
	t[0xea] = opJmpFar
	t[0xeb] = opJmpShort
	t[0xec] = opIn
	t[0xed] = opIn
	t[0xee] = opOut
	t[0xef] = opOut

	t[0xf1] = opNop
	t[0xf4] = opHalt
	t[0xf5] = opFlags
	t[0xf6] = opGroup3
	t[0xf7] = opGroup3
	for i := 0xf8; i <= 0xfd; i++ {
		t[i] = opFlags
	}
	t[0xfe] = opGroup4
	t[0xff] = opGroup5

	return t
}

// IsPrefix returns true if the opcode is a prefix byte.
func IsPrefix(opcode uint8) bool {
	switch opcode {
	case 0x26, 0x2e, 0x36, 0x3e, 0xf0, 0xf2, 0xf3:
		return true
	}
	return false
}
