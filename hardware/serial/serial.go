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

// Package serial implements the serial port. Only the transmit side of the
// port is emulated. There is no remote partner and the receive side never
// becomes full.
package serial

import (
	"fmt"

	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
)

// Bits in the status/control register.
const (
	statusEnable       = 0x80
	statusHighBaud     = 0x40
	controlOverrunRst  = 0x20
	statusTxEmpty      = 0x04
	statusRxOverrun    = 0x02
	statusRxFull       = 0x01
	lowBaudDivider     = 4
	bitClocksPerSymbol = 9
)

// Interrupts is returned by Step().
type Interrupts struct {
	Transmit bool
	Receive  bool
}

// Serial is the serial port.
type Serial struct {
	env *environment.Environment

	Data      uint8
	Enabled   bool
	HighBaud  bool
	TxEmpty   bool
	RxOverrun bool
	RxFull    bool

	// the baud divider and the number of bit clocks since the data register
	// was written
	Baud     int
	BitClock int
	Sending  bool
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(env *environment.Environment) *Serial {
	ser := &Serial{env: env}
	ser.Reset()
	return ser
}

func (ser *Serial) String() string {
	return fmt.Sprintf("data=%02x status=%02x", ser.Data, ser.status())
}

// Reset the serial port.
func (ser *Serial) Reset() {
	ser.Data = 0
	ser.Enabled = false
	ser.HighBaud = false
	ser.TxEmpty = true
	ser.RxOverrun = false
	ser.RxFull = false
	ser.Baud = 0
	ser.BitClock = 0
	ser.Sending = false
}

// Snapshot creates a copy of the serial port in its current state.
func (ser *Serial) Snapshot() *Serial {
	cp := *ser
	cp.env = nil
	return &cp
}

// Step advances the serial port by one tick.
func (ser *Serial) Step() Interrupts {
	var ints Interrupts

	if !ser.Enabled {
		return ints
	}

	ser.Baud++
	if !ser.HighBaud && ser.Baud < lowBaudDivider {
		return ints
	}
	ser.Baud = 0

	if ser.Sending {
		ser.BitClock++
		if ser.BitClock >= bitClocksPerSymbol {
			ser.Sending = false
			ser.TxEmpty = true
			ints.Transmit = true
			ser.env.Logf("serial", "sent %02x", ser.Data)
		}
	}

	return ints
}

func (ser *Serial) status() uint8 {
	var s uint8
	if ser.Enabled {
		s |= statusEnable
	}
	if ser.HighBaud {
		s |= statusHighBaud
	}
	if ser.TxEmpty {
		s |= statusTxEmpty
	}
	if ser.RxOverrun {
		s |= statusRxOverrun
	}
	if ser.RxFull {
		s |= statusRxFull
	}
	return s
}

// ReadPort implements the bus.PortDevice interface.
func (ser *Serial) ReadPort(port uint8) uint8 {
	switch port {
	case addresses.SerialData:
		ser.RxFull = false
		return ser.Data
	case addresses.SerialStatus:
		return ser.status()
	}
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface.
func (ser *Serial) WritePort(port uint8, data uint8) {
	switch port {
	case addresses.SerialData:
		ser.Data = data
		ser.TxEmpty = false
		ser.Sending = true
		ser.BitClock = 0
	case addresses.SerialStatus:
		ser.Enabled = data&statusEnable == statusEnable
		ser.HighBaud = data&statusHighBaud == statusHighBaud
		if data&controlOverrunRst == controlOverrunRst {
			ser.RxOverrun = false
		}
	}
}
