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

package registers

import "strings"

// FlagsMask is the set of bits in the flags register that can be set. The
// reserved bits are never set.
const FlagsMask = uint16(0x0fd5)

// Bits in the flags register.
const (
	FlagCarry           = uint16(0x0001)
	FlagParity          = uint16(0x0004)
	FlagAuxiliary       = uint16(0x0010)
	FlagZero            = uint16(0x0040)
	FlagSign            = uint16(0x0080)
	FlagTrap            = uint16(0x0100)
	FlagInterruptEnable = uint16(0x0200)
	FlagDirection       = uint16(0x0400)
	FlagOverflow        = uint16(0x0800)
)

// Flags is the flags register of the CPU.
type Flags struct {
	Carry           bool
	Parity          bool
	Auxiliary       bool
	Zero            bool
	Sign            bool
	Trap            bool
	InterruptEnable bool
	Direction       bool
	Overflow        bool
}

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "PSW"
}

func (fl Flags) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(fl.Overflow, 'O')
	flag(fl.Direction, 'D')
	flag(fl.InterruptEnable, 'I')
	flag(fl.Trap, 'T')
	flag(fl.Sign, 'S')
	flag(fl.Zero, 'Z')
	flag(fl.Auxiliary, 'A')
	flag(fl.Parity, 'P')
	flag(fl.Carry, 'C')

	return s.String()
}

// Reset flags to initial state.
func (fl *Flags) Reset() {
	fl.Load(0)
}

// Value converts the Flags struct into a value suitable for pushing onto the
// stack.
func (fl Flags) Value() uint16 {
	var v uint16

	if fl.Carry {
		v |= FlagCarry
	}
	if fl.Parity {
		v |= FlagParity
	}
	if fl.Auxiliary {
		v |= FlagAuxiliary
	}
	if fl.Zero {
		v |= FlagZero
	}
	if fl.Sign {
		v |= FlagSign
	}
	if fl.Trap {
		v |= FlagTrap
	}
	if fl.InterruptEnable {
		v |= FlagInterruptEnable
	}
	if fl.Direction {
		v |= FlagDirection
	}
	if fl.Overflow {
		v |= FlagOverflow
	}

	return v
}

// Load converts a 16 bit value (taken from the stack, for example) to the
// Flags struct receiver. Reserved bits are ignored.
func (fl *Flags) Load(v uint16) {
	fl.Carry = v&FlagCarry == FlagCarry
	fl.Parity = v&FlagParity == FlagParity
	fl.Auxiliary = v&FlagAuxiliary == FlagAuxiliary
	fl.Zero = v&FlagZero == FlagZero
	fl.Sign = v&FlagSign == FlagSign
	fl.Trap = v&FlagTrap == FlagTrap
	fl.InterruptEnable = v&FlagInterruptEnable == FlagInterruptEnable
	fl.Direction = v&FlagDirection == FlagDirection
	fl.Overflow = v&FlagOverflow == FlagOverflow
}
