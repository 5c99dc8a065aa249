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

// Package bus defines the interfaces through which the CPU, the DMA
// controllers and the debugging tools see the memory and port address spaces.
//
// The memory address space is 20 bits wide. The port address space is 8 bits
// wide. Reads of an address or port that nothing is mapped to return
// IdleValue. Writes to such an address or port are dropped.
package bus
