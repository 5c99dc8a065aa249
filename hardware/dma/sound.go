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

// Bits in the sound DMA control register. Also see ControlActive and
// ControlDecrement.
const (
	ControlHyperVoice = 0x10
	ControlLoop       = 0x08
	ControlRate       = 0x03
)

// number of cycles between transfers for each rate
var soundThresholds = [4]int{768, 512, 256, 128}

// Sound is the sound DMA controller.
type Sound struct {
	mem bus.Bus

	Source  uint32
	Length  uint32
	Control uint8

	// values latched when the controller becomes active. used to restart
	// the transfer in loop mode
	InitialSource uint32
	InitialLength uint32

	// cycles accumulated towards the next transfer
	Cycles int
}

// NewSound is the preferred method of initialisation for the Sound type.
func NewSound(mem bus.Bus) *Sound {
	return &Sound{mem: mem}
}

func (dma *Sound) String() string {
	return fmt.Sprintf("src=%05x len=%05x ctrl=%02x", dma.Source, dma.Length, dma.Control)
}

// Reset the controller.
func (dma *Sound) Reset() {
	dma.Source = 0
	dma.Length = 0
	dma.Control = 0
	dma.InitialSource = 0
	dma.InitialLength = 0
	dma.Cycles = 0
}

// Snapshot creates a copy of the controller in its current state.
func (dma *Sound) Snapshot() *Sound {
	cp := *dma
	cp.mem = nil
	return &cp
}

// Active returns true if the controller is transferring data.
func (dma *Sound) Active() bool {
	return dma.Control&ControlActive == ControlActive
}

// Destination returns the port that the controller writes to.
func (dma *Sound) Destination() uint8 {
	if dma.Control&ControlHyperVoice == ControlHyperVoice {
		return addresses.SoundHyperVoice
	}
	return addresses.SoundChannel2Volume
}

// Step advances the controller by the number of cycles. A byte is transferred
// every time the threshold for the selected rate is reached.
func (dma *Sound) Step(cycles int) {
	if !dma.Active() {
		dma.Cycles = 0
		return
	}

	threshold := soundThresholds[dma.Control&ControlRate]

	dma.Cycles += cycles
	for dma.Cycles >= threshold && dma.Active() {
		dma.Cycles -= threshold
		dma.transfer()
	}
}

func (dma *Sound) transfer() {
	if dma.Length == 0 {
		dma.Control &^= ControlActive
		return
	}

	dma.mem.WritePort(dma.Destination(), dma.mem.ReadMemory(dma.Source))

	if dma.Control&ControlDecrement == ControlDecrement {
		dma.Source = (dma.Source - 1) & 0xfffff
	} else {
		dma.Source = (dma.Source + 1) & 0xfffff
	}
	dma.Length--

	if dma.Length == 0 {
		if dma.Control&ControlLoop == ControlLoop {
			dma.Source = dma.InitialSource
			dma.Length = dma.InitialLength
		} else {
			dma.Control &^= ControlActive
		}
	}
}

// ReadPort implements the bus.PortDevice interface.
func (dma *Sound) ReadPort(port uint8) uint8 {
	switch port {
	case addresses.SDMASourceLo:
		return uint8(dma.Source)
	case addresses.SDMASourceMid:
		return uint8(dma.Source >> 8)
	case addresses.SDMASourceHi:
		return uint8(dma.Source>>16) & 0x0f
	case addresses.SDMALengthLo:
		return uint8(dma.Length)
	case addresses.SDMALengthMid:
		return uint8(dma.Length >> 8)
	case addresses.SDMALengthHi:
		return uint8(dma.Length>>16) & 0x0f
	case addresses.SDMAControl:
		return dma.Control
	}
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface.
func (dma *Sound) WritePort(port uint8, data uint8) {
	switch port {
	case addresses.SDMASourceLo:
		dma.Source = dma.Source&0xfff00 | uint32(data)
	case addresses.SDMASourceMid:
		dma.Source = dma.Source&0xf00ff | uint32(data)<<8
	case addresses.SDMASourceHi:
		dma.Source = dma.Source&0x0ffff | uint32(data&0x0f)<<16
	case addresses.SDMALengthLo:
		dma.Length = dma.Length&0xfff00 | uint32(data)
	case addresses.SDMALengthMid:
		dma.Length = dma.Length&0xf00ff | uint32(data)<<8
	case addresses.SDMALengthHi:
		dma.Length = dma.Length&0x0ffff | uint32(data&0x0f)<<16
	case addresses.SDMAControl:
		if !dma.Active() && data&ControlActive == ControlActive {
			dma.InitialSource = dma.Source
			dma.InitialLength = dma.Length
			dma.Cycles = 0
		}
		dma.Control = data
	}
}
