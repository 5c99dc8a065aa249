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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherswan/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherswan/test"
)

func TestMapAddress(t *testing.T) {
	var a memorymap.Area
	var addr uint32

	addr, a = memorymap.MapAddress(0x00000)
	test.ExpectEquality(t, a, memorymap.RAM)
	test.ExpectEquality(t, addr, 0)

	_, a = memorymap.MapAddress(0x0ffff)
	test.ExpectEquality(t, a, memorymap.RAM)
	_, a = memorymap.MapAddress(0x10000)
	test.ExpectEquality(t, a, memorymap.SRAM)
	_, a = memorymap.MapAddress(0x2abcd)
	test.ExpectEquality(t, a, memorymap.ROMBank0)
	_, a = memorymap.MapAddress(0x3ffff)
	test.ExpectEquality(t, a, memorymap.ROMBank1)
	_, a = memorymap.MapAddress(0x40000)
	test.ExpectEquality(t, a, memorymap.ROMBank2)
	_, a = memorymap.MapAddress(0xfffff)
	test.ExpectEquality(t, a, memorymap.ROMBank2)

	// addresses outside of the 20 bit space wrap
	addr, a = memorymap.MapAddress(0x100123)
	test.ExpectEquality(t, a, memorymap.RAM)
	test.ExpectEquality(t, addr, 0x00123)

	test.ExpectEquality(t, memorymap.ROMBank2.String(), "ROM bank 2")
	test.ExpectEquality(t, memorymap.Undefined.String(), "undefined")
}
