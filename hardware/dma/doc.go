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

// Package dma implements the two DMA controllers. The general DMA controller
// copies words from memory to memory and is advanced by the machine until it
// is no longer active, the cycles consumed being added to the cycles of the
// instruction that started it. The sound DMA controller copies bytes from
// memory to one of the sound ports at a rate selected by its control
// register.
//
// Both controllers access memory and ports through the bus. Neither
// controller can read from cartridge SRAM.
package dma
