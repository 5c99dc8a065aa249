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

package memory

import (
	"math/rand/v2"

	"github.com/jetsetilly/gopherswan/hardware/memory/memorymap"
)

// RAM is the internal work RAM.
type RAM struct {
	Data [memorymap.MemtopRAM + 1]uint8
}

// Reset clears the contents of RAM. If rnd is not nil the contents are
// randomised instead.
func (ram *RAM) Reset(rnd *rand.Rand) {
	if rnd == nil {
		clear(ram.Data[:])
		return
	}
	for i := range ram.Data {
		ram.Data[i] = uint8(rnd.IntN(256))
	}
}

// ReadMemory implements the bus.Memory interface.
func (ram *RAM) ReadMemory(address uint32) uint8 {
	return ram.Data[address&memorymap.MemtopRAM]
}

// WriteMemory implements the bus.Memory interface.
func (ram *RAM) WriteMemory(address uint32, data uint8) {
	ram.Data[address&memorymap.MemtopRAM] = data
}
