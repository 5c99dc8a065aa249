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

import (
	"fmt"

	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
)

// Indexes of the 16 bit registers as they are encoded in instructions.
const (
	AX = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

// Indexes of the segment registers as they are encoded in instructions.
const (
	ES = iota
	CS
	SS
	DS
)

// File is the complete register file of the CPU.
type File struct {
	AX Register
	CX Register
	DX Register
	BX Register
	SP Register
	BP Register
	SI Register
	DI Register

	ES Register
	CS Register
	SS Register
	DS Register

	IP Register

	Flags Flags
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() File {
	return File{
		AX: NewRegister(0, "AX"),
		CX: NewRegister(0, "CX"),
		DX: NewRegister(0, "DX"),
		BX: NewRegister(0, "BX"),
		SP: NewRegister(0, "SP"),
		BP: NewRegister(0, "BP"),
		SI: NewRegister(0, "SI"),
		DI: NewRegister(0, "DI"),
		ES: NewRegister(0, "ES"),
		CS: NewRegister(addresses.ResetCS, "CS"),
		SS: NewRegister(0, "SS"),
		DS: NewRegister(0, "DS"),
		IP: NewRegister(addresses.ResetIP, "IP"),
	}
}

func (f File) String() string {
	return fmt.Sprintf("AX=%s BX=%s CX=%s DX=%s SP=%s BP=%s SI=%s DI=%s ES=%s CS=%s SS=%s DS=%s IP=%s %s",
		f.AX, f.BX, f.CX, f.DX, f.SP, f.BP, f.SI, f.DI, f.ES, f.CS, f.SS, f.DS, f.IP, f.Flags)
}

// Reset loads every register with its value after reset. The CS:IP pair
// points to the reset vector.
func (f *File) Reset() {
	for i := range 8 {
		f.Reg16(i).Load(0)
	}
	for i := range 4 {
		f.Seg(i).Load(0)
	}
	f.CS.Load(addresses.ResetCS)
	f.IP.Load(addresses.ResetIP)
	f.Flags.Reset()
}

// Reg16 returns the 16 bit register with the index. Use the AX, CX, etc.
// constants.
func (f *File) Reg16(i int) *Register {
	switch i & 0x07 {
	case AX:
		return &f.AX
	case CX:
		return &f.CX
	case DX:
		return &f.DX
	case BX:
		return &f.BX
	case SP:
		return &f.SP
	case BP:
		return &f.BP
	case SI:
		return &f.SI
	}
	return &f.DI
}

// Seg returns the segment register with the index. Use the ES, CS, etc.
// constants.
func (f *File) Seg(i int) *Register {
	switch i & 0x03 {
	case ES:
		return &f.ES
	case CS:
		return &f.CS
	case SS:
		return &f.SS
	}
	return &f.DS
}

// Reg8 returns the value of the 8 bit register with the index. Indexes 0 to 3
// are AL, CL, DL, BL and indexes 4 to 7 are AH, CH, DH, BH.
func (f *File) Reg8(i int) uint8 {
	r := f.Reg16(i & 0x03)
	if i&0x04 == 0x04 {
		return r.Hi()
	}
	return r.Lo()
}

// LoadReg8 loads a value into the 8 bit register with the index. See Reg8()
// for the meaning of the index.
func (f *File) LoadReg8(i int, v uint8) {
	r := f.Reg16(i & 0x03)
	if i&0x04 == 0x04 {
		r.LoadHi(v)
	} else {
		r.LoadLo(v)
	}
}
