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

package bus

// IdleValue is returned by reads of unmapped memory or ports.
const IdleValue = uint8(0x90)

// Memory defines the operations for the memory address space.
type Memory interface {
	ReadMemory(address uint32) uint8
	WriteMemory(address uint32, data uint8)
}

// Ports defines the operations for the port address space.
type Ports interface {
	ReadPort(port uint8) uint8
	WritePort(port uint8, data uint8)
}

// Bus is the combination of the memory and port address spaces. The CPU is
// given an implementation of Bus when it is created.
type Bus interface {
	Memory
	Ports
}

// PortDevice is implemented by every peripheral that owns one or more ports.
// The port argument is always the absolute port number.
type PortDevice interface {
	Ports
}
