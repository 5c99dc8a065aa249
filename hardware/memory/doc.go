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

// Package memory implements the bus dispatcher. Every access to the memory or
// port address space made by the CPU or a DMA controller passes through the
// Memory type, which routes the access to the one area or peripheral that
// owns the address.
//
// Internal RAM is owned by the dispatcher. Everything else is owned
// elsewhere. The dispatcher holds references that must be refreshed with
// Plumb() whenever the cartridge changes.
//
// Reads of unmapped addresses or ports return bus.IdleValue. Writes are
// dropped.
package memory
