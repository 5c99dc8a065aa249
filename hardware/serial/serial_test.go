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

package serial_test

import (
	"testing"

	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
	"github.com/jetsetilly/gopherswan/hardware/serial"
	"github.com/jetsetilly/gopherswan/test"
)

func TestInterfaces(t *testing.T) {
	test.ExpectImplements[bus.PortDevice](t, serial.NewSerial(nil))
}

func TestHighBaud(t *testing.T) {
	ser := serial.NewSerial(nil)
	test.ExpectEquality(t, ser.ReadPort(addresses.SerialStatus), 0x04)

	ser.WritePort(addresses.SerialStatus, 0xc0)
	ser.WritePort(addresses.SerialData, 0x55)
	test.ExpectEquality(t, ser.ReadPort(addresses.SerialStatus), 0xc0)

	for i := range 8 {
		test.ExpectEquality(t, ser.Step().Transmit, false, i)
	}
	test.ExpectEquality(t, ser.Step().Transmit, true)
	test.ExpectEquality(t, ser.ReadPort(addresses.SerialStatus), 0xc4)

	// no further interrupts once the byte has been sent
	test.ExpectEquality(t, ser.Step().Transmit, false)
}

func TestLowBaud(t *testing.T) {
	ser := serial.NewSerial(nil)
	ser.WritePort(addresses.SerialStatus, 0x80)
	ser.WritePort(addresses.SerialData, 0xaa)

	var ticks int
	for !ser.Step().Transmit {
		ticks++
		if ticks > 100 {
			t.Fatalf("transmit did not complete")
		}
	}
	test.ExpectEquality(t, ticks+1, 36)
}

func TestDisabled(t *testing.T) {
	ser := serial.NewSerial(nil)
	ser.WritePort(addresses.SerialData, 0xaa)
	for range 100 {
		test.ExpectEquality(t, ser.Step(), serial.Interrupts{})
	}
	test.ExpectEquality(t, ser.TxEmpty, false)
	test.ExpectEquality(t, ser.RxFull, false)
}

func TestOverrunReset(t *testing.T) {
	ser := serial.NewSerial(nil)
	ser.RxOverrun = true
	ser.WritePort(addresses.SerialStatus, 0xa0)
	test.ExpectEquality(t, ser.RxOverrun, false)
	test.ExpectEquality(t, ser.Enabled, true)
}
