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

package memory

import (
	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
	"github.com/jetsetilly/gopherswan/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherswan/hardware/memory/memorymap"
)

// Memory is the bus dispatcher.
type Memory struct {
	env *environment.Environment

	RAM  *RAM
	Cart *cartridge.Cartridge

	ports [256]bus.PortDevice
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment, cart *cartridge.Cartridge) *Memory {
	mem := &Memory{
		env:  env,
		RAM:  &RAM{},
		Cart: cart,
	}
	mem.Plumb()
	return mem
}

// Reset the contents of internal RAM.
func (mem *Memory) Reset() {
	if mem.env != nil && mem.env.Prefs.RandomState.Get().(bool) {
		mem.RAM.Reset(mem.env.Prefs.RandSrc)
	} else {
		mem.RAM.Reset(nil)
	}
}

// Plumb refreshes the references to the peripherals in the cartridge. Must be
// called whenever a ROM is loaded.
func (mem *Memory) Plumb() {
	mem.AttachPorts(addresses.BankROM2, addresses.BankROM1, mem.Cart)

	if mem.Cart.EEPROM != nil {
		mem.AttachPorts(addresses.EEPROMDataLo, addresses.EEPROMStatus, mem.Cart.EEPROM)
	} else {
		mem.DetachPorts(addresses.EEPROMDataLo, addresses.EEPROMStatus)
	}

	if mem.Cart.RTC != nil {
		mem.AttachPorts(addresses.RTCCommand, addresses.RTCData, mem.Cart.RTC)
	} else {
		mem.DetachPorts(addresses.RTCCommand, addresses.RTCData)
	}
}

// AttachPorts maps the ports from first to last inclusive to the device.
// Previous mappings are replaced.
func (mem *Memory) AttachPorts(first uint8, last uint8, dev bus.PortDevice) {
	for p := int(first); p <= int(last); p++ {
		mem.ports[p] = dev
	}
}

// DetachPorts removes the mappings of the ports from first to last inclusive.
func (mem *Memory) DetachPorts(first uint8, last uint8) {
	mem.AttachPorts(first, last, nil)
}

// PortDevice returns the device mapped to the port. Returns nil if there is
// no device.
func (mem *Memory) PortDevice(port uint8) bus.PortDevice {
	return mem.ports[port]
}

// ReadMemory implements the bus.Memory interface.
func (mem *Memory) ReadMemory(address uint32) uint8 {
	address, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		return mem.RAM.ReadMemory(address)
	}
	return mem.Cart.ReadMemory(address)
}

// WriteMemory implements the bus.Memory interface.
func (mem *Memory) WriteMemory(address uint32, data uint8) {
	address, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		mem.RAM.WriteMemory(address, data)
		return
	}
	mem.Cart.WriteMemory(address, data)
}

// ReadPort implements the bus.Ports interface.
func (mem *Memory) ReadPort(port uint8) uint8 {
	if dev := mem.ports[port]; dev != nil {
		return dev.ReadPort(port)
	}
	return bus.IdleValue
}

// WritePort implements the bus.Ports interface.
func (mem *Memory) WritePort(port uint8, data uint8) {
	if dev := mem.ports[port]; dev != nil {
		dev.WritePort(port, data)
	}
}
