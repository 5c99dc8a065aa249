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

// Package interrupts implements the interrupt controller. Peripherals request
// an interrupt on one of eight lines. A request is accepted only if the line
// is enabled. The vector for an accepted request is the vector base plus the
// line number. Requests stay in the status register until acknowledged.
package interrupts

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
)

// Line is an interrupt request line.
type Line int

// List of lines used by the emulation.
const (
	LineSerialTransmit Line = 0
	LineCartridge      Line = 2
	LineSerialReceive  Line = 3
)

// Controller is the interrupt controller.
type Controller struct {
	Base   uint8
	Enable uint8
	Status uint8
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController() *Controller {
	return &Controller{}
}

func (ic *Controller) String() string {
	return fmt.Sprintf("base=%02x enable=%02x status=%02x", ic.Base, ic.Enable, ic.Status)
}

// Reset the controller.
func (ic *Controller) Reset() {
	ic.Base = 0
	ic.Enable = 0
	ic.Status = 0
}

// Snapshot creates a copy of the controller in its current state.
func (ic *Controller) Snapshot() *Controller {
	cp := *ic
	return &cp
}

// Request an interrupt on the line. Returns true if the line is enabled.
func (ic *Controller) Request(line Line) bool {
	b := uint8(1) << line
	if ic.Enable&b == 0 {
		return false
	}
	ic.Status |= b
	return true
}

// Pending returns the vector of the highest priority request. The boolean
// is false if there is no request.
func (ic *Controller) Pending() (uint8, bool) {
	p := ic.Status & ic.Enable
	if p == 0 {
		return 0, false
	}
	line := 7 - bits.LeadingZeros8(p)
	return ic.Base&0xf8 + uint8(line), true
}

// ReadPort implements the bus.PortDevice interface.
func (ic *Controller) ReadPort(port uint8) uint8 {
	switch port {
	case addresses.InterruptBase:
		return ic.Base
	case addresses.InterruptEnable:
		return ic.Enable
	case addresses.InterruptStatus:
		return ic.Status
	}
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface.
func (ic *Controller) WritePort(port uint8, data uint8) {
	switch port {
	case addresses.InterruptBase:
		ic.Base = data & 0xf8
	case addresses.InterruptEnable:
		ic.Enable = data
		ic.Status &= data
	case addresses.InterruptAck:
		ic.Status &^= data
	}
}
