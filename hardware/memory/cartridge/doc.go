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

// Package cartridge fully implements loading of cartridge data and the
// translation of addresses in the cartridge areas of memory to the ROM and
// SRAM of the cartridge.
//
// The final ten bytes of a ROM image are a footer describing the cartridge.
// The footer decides whether the cartridge has SRAM or an EEPROM for saving
// game data, and whether it has a real-time clock. The EEPROM and RTC are
// created by LoadRom() and are owned by the cartridge.
//
// ROM is seen through three windows selected by the bank registers. Two
// windows of 64KB and one linear window of 768KB. SRAM is seen through a
// single 64KB window.
package cartridge
