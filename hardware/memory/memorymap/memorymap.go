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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case SRAM:
		return "SRAM"
	case ROMBank0:
		return "ROM bank 0"
	case ROMBank1:
		return "ROM bank 1"
	case ROMBank2:
		return "ROM bank 2"
	}

	return "undefined"
}

// The different memory areas
const (
	Undefined Area = iota
	RAM
	SRAM
	ROMBank0
	ROMBank1
	ROMBank2
)

// The origin and memory top for each area of memory.
const (
	OriginRAM      = uint32(0x00000)
	MemtopRAM      = uint32(0x0ffff)
	OriginSRAM     = uint32(0x10000)
	MemtopSRAM     = uint32(0x1ffff)
	OriginROMBank0 = uint32(0x20000)
	MemtopROMBank0 = uint32(0x2ffff)
	OriginROMBank1 = uint32(0x30000)
	MemtopROMBank1 = uint32(0x3ffff)
	OriginROMBank2 = uint32(0x40000)
	MemtopROMBank2 = uint32(0xfffff)
)

// Memtop is the top most address of memory.
const Memtop = uint32(0xfffff)

// WindowBits identifies the bits of an address that index a 64KB window.
// Used with the SRAM, bank 0 and bank 1 areas.
const WindowBits = uint32(0x0ffff)

// LinearBits identifies the bits of an address that index the linear ROM
// area.
const LinearBits = uint32(0xfffff)

// MapAddress forces the address into the 20 bit address space and returns the
// area it belongs to.
func MapAddress(address uint32) (uint32, Area) {
	address &= Memtop

	// the order of the checks matters
	switch {
	case address >= OriginROMBank2:
		return address, ROMBank2
	case address >= OriginROMBank1:
		return address, ROMBank1
	case address >= OriginROMBank0:
		return address, ROMBank0
	case address >= OriginSRAM:
		return address, SRAM
	}

	return address, RAM
}
