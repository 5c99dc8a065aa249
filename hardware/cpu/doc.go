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

// Package cpu emulates the NEC V30MZ CPU. The V30MZ executes the 8086
// instruction set with the 80186 extensions. Each call to Step() executes a
// single instruction, or services a pending interrupt and then executes a
// single instruction, and returns the number of cycles consumed.
//
// Instructions are dispatched through a table of 256 opcode handlers. Prefix
// bytes (segment overrides, REP and LOCK) are consumed by Step() before the
// handler is called. A handler returns the number of cycles it consumed. A
// handler that returns zero cycles indicates an error in the emulation and
// causes a panic.
//
// REP prefixed string instructions perform one iteration per call to Step().
// The instruction pointer is rewound to the first prefix byte until the
// repetition is complete, so interrupts can be serviced between iterations.
//
// Memory and ports are accessed through the bus.Bus interface given to
// NewCPU().
package cpu
