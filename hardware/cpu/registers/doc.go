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

// Package registers implements the register file of the CPU. The Register
// type is used for the general purpose, pointer, index and segment registers
// and for the instruction pointer. The Flags type is used for the flags
// register.
//
// The four general purpose registers AX, CX, DX and BX can be accessed a byte
// at a time with the Lo() and Hi() functions.
package registers
