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

package dma

import (
	"fmt"

	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
)

// Bits in the control register of both controllers.
const (
	ControlActive    = 0x80
	ControlDecrement = 0x40
)

// Cycle costs of the general DMA controller.
const (
	GeneralWordCycles = 2
	GeneralStopCycles = 5
)

// source addresses with this bank nibble are in SRAM
const sramBank = 0x1

// General is the general purpose DMA controller.
type General struct {
	mem bus.Memory

	Source      uint32
	Destination uint16
	Length      uint16
	Control     uint8
}

// NewGeneral is the preferred method of initialisation for the General type.
func NewGeneral(mem bus.Memory) *General {
	return &General{mem: mem}
}

func (dma *General) String() string {
	return fmt.Sprintf("src=%05x dst=%04x len=%04x ctrl=%02x", dma.Source, dma.Destination, dma.Length, dma.Control)
}

// Reset the controller.
func (dma *General) Reset() {
	dma.Source = 0
	dma.Destination = 0
	dma.Length = 0
	dma.Control = 0
}

// Snapshot creates a copy of the controller in its current state.
func (dma *General) Snapshot() *General {
	cp := *dma
	cp.mem = nil
	return &cp
}

// Active returns true if the controller is transferring data.
func (dma *General) Active() bool {
	return dma.Control&ControlActive == ControlActive
}

// Step transfers one word and returns the number of cycles consumed. An
// inactive controller consumes no cycles.
func (dma *General) Step() int {
	if !dma.Active() {
		return 0
	}

	if dma.Length < 2 || (dma.Source>>16)&0x0f == sramBank {
		dma.Control &^= ControlActive
		return GeneralStopCycles
	}

	for range 2 {
		dma.mem.WriteMemory(uint32(dma.Destination), dma.mem.ReadMemory(dma.Source))
		if dma.Control&ControlDecrement == ControlDecrement {
			dma.Source = (dma.Source - 1) & 0xfffff
			dma.Destination--
		} else {
			dma.Source = (dma.Source + 1) & 0xfffff
			dma.Destination++
		}
	}
	dma.Length -= 2

	return GeneralWordCycles
}

// ReadPort implements the bus.PortDevice interface.
func (dma *General) ReadPort(port uint8) uint8 {
	switch port {
	case addresses.DMASourceLo:
		return uint8(dma.Source)
	case addresses.DMASourceMid:
		return uint8(dma.Source >> 8)
	case addresses.DMASourceHi:
		return uint8(dma.Source>>16) & 0x0f
	case addresses.DMADestLo:
		return uint8(dma.Destination)
	case addresses.DMADestHi:
		return uint8(dma.Destination >> 8)
	case addresses.DMALengthLo:
		return uint8(dma.Length)
	case addresses.DMALengthHi:
		return uint8(dma.Length >> 8)
	case addresses.DMAControl:
		return dma.Control
	}
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface.
func (dma *General) WritePort(port uint8, data uint8) {
	switch port {
	case addresses.DMASourceLo:
		dma.Source = dma.Source&0xfff00 | uint32(data)
	case addresses.DMASourceMid:
		dma.Source = dma.Source&0xf00ff | uint32(data)<<8
	case addresses.DMASourceHi:
		dma.Source = dma.Source&0x0ffff | uint32(data&0x0f)<<16
	case addresses.DMADestLo:
		dma.Destination = dma.Destination&0xff00 | uint16(data)
	case addresses.DMADestHi:
		dma.Destination = dma.Destination&0x00ff | uint16(data)<<8
	case addresses.DMALengthLo:
		// transfers are in words
		dma.Length = dma.Length&0xff00 | uint16(data&^0x01)
	case addresses.DMALengthHi:
		dma.Length = dma.Length&0x00ff | uint16(data)<<8
	case addresses.DMAControl:
		dma.Control = data & (ControlActive | ControlDecrement)
	}
}
