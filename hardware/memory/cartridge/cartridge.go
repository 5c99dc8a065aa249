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

package cartridge

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
	"github.com/jetsetilly/gopherswan/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherswan/hardware/peripherals/eeprom"
	"github.com/jetsetilly/gopherswan/hardware/peripherals/rtc"
)

// value of the bank registers after reset
const resetBank = 0xff

// Cartridge defines the information and operations for a cartridge
type Cartridge struct {
	env *environment.Environment

	Filename string
	Hash     string

	rom  []uint8
	sram []uint8

	Metadata Metadata

	BankROM0 uint8
	BankROM1 uint8
	BankROM2 uint8
	BankSRAM uint8

	// nil if the cartridge does not have the peripheral
	EEPROM *eeprom.EEPROM
	RTC    *rtc.RTC
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The cartridge is empty until LoadRom() is called.
func NewCartridge(env *environment.Environment) *Cartridge {
	cart := &Cartridge{env: env}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return "ejected"
	}
	return fmt.Sprintf("%s (%dKB, %s)", cart.Filename, len(cart.rom)/1024, cart.Metadata.SaveType)
}

// Eject removes all data from the cartridge.
func (cart *Cartridge) Eject() {
	cart.Filename = ""
	cart.Hash = ""
	cart.rom = nil
	cart.sram = nil
	cart.Metadata = Metadata{}
	cart.EEPROM = nil
	cart.RTC = nil
	cart.Reset()
}

// IsEjected returns true if no ROM has been loaded.
func (cart *Cartridge) IsEjected() bool {
	return len(cart.rom) == 0
}

// Reset the bank registers and the registers of the peripherals in the
// cartridge. The contents of ROM, SRAM and EEPROM are not changed.
func (cart *Cartridge) Reset() {
	cart.BankROM0 = resetBank
	cart.BankROM1 = resetBank
	cart.BankROM2 = resetBank
	cart.BankSRAM = resetBank
	if cart.EEPROM != nil {
		cart.EEPROM.Reset()
	}
	if cart.RTC != nil {
		cart.RTC.Reset()
	}
}

// LoadRom replaces the contents of the cartridge with data. The length of
// data must be a power of two. A checksum mismatch is not an error.
func (cart *Cartridge) LoadRom(data []uint8) error {
	if len(data) < FooterSize {
		return fmt.Errorf("cartridge: %w: %d bytes", ErrRomTooSmall, len(data))
	}
	if bits.OnesCount(uint(len(data))) != 1 {
		return fmt.Errorf("cartridge: %w: %d bytes", ErrRomSize, len(data))
	}

	cart.Eject()

	cart.rom = make([]uint8, len(data))
	copy(cart.rom, data)
	cart.Metadata = parseMetadata(cart.rom)

	if !cart.Metadata.IsChecksumValid() {
		cart.env.Logf("cartridge", "checksum mismatch: %04x (calculated %04x)", cart.Metadata.Checksum, cart.Metadata.CalculatedChecksum)
	}

	st := cart.Metadata.SaveType
	if sz, ok := sramSizes[st]; ok {
		cart.sram = make([]uint8, sz)
	} else if g, ok := eepromGeometries[st]; ok {
		cart.EEPROM = eeprom.NewEEPROM(cart.env, addresses.EEPROMDataLo, g.cells, g.bits)
	} else if st != SaveNone {
		cart.env.Logf("cartridge", "unknown save type %02x", uint8(st))
	}

	if cart.Metadata.RTCPresent {
		cart.RTC = rtc.NewRTC(cart.env)
	}

	return nil
}

// Snapshot creates a copy of the cartridge in its current state. ROM is not
// part of the copy and reads from the copy return the idle value.
func (cart *Cartridge) Snapshot() *Cartridge {
	cp := *cart
	cp.env = nil
	cp.rom = nil
	if cart.sram != nil {
		cp.sram = cart.GetSram()
	}
	if cart.EEPROM != nil {
		cp.EEPROM = cart.EEPROM.Snapshot()
	}
	if cart.RTC != nil {
		cp.RTC = cart.RTC.Snapshot()
	}
	return &cp
}

// HasSram returns true if the cartridge has SRAM.
func (cart *Cartridge) HasSram() bool {
	return cart.sram != nil
}

// HasEeprom returns true if the cartridge has an EEPROM.
func (cart *Cartridge) HasEeprom() bool {
	return cart.EEPROM != nil
}

// LoadSram replaces the contents of SRAM. The length of data must match the
// size of SRAM exactly.
func (cart *Cartridge) LoadSram(data []uint8) {
	if len(data) != len(cart.sram) {
		panic(fmt.Sprintf("cartridge: sram data is %d bytes, expected %d", len(data), len(cart.sram)))
	}
	copy(cart.sram, data)
}

// GetSram returns a copy of the contents of SRAM.
func (cart *Cartridge) GetSram() []uint8 {
	cp := make([]uint8, len(cart.sram))
	copy(cp, cart.sram)
	return cp
}

// LoadEeprom replaces the contents of the EEPROM. The length of data must
// match the size of the EEPROM exactly.
func (cart *Cartridge) LoadEeprom(data []uint8) {
	if cart.EEPROM == nil {
		panic("cartridge: no eeprom")
	}
	cart.EEPROM.Load(data)
}

// GetEeprom returns a copy of the contents of the EEPROM. Returns nil if there
// is no EEPROM.
func (cart *Cartridge) GetEeprom() []uint8 {
	if cart.EEPROM == nil {
		return nil
	}
	return cart.EEPROM.Save()
}

// Step advances the RTC by the number of cycles. Returns true if the RTC
// requests an interrupt.
func (cart *Cartridge) Step(cycles int) bool {
	if cart.RTC == nil {
		return false
	}
	return cart.RTC.Step(cycles)
}

// translate an address into an index into ROM or SRAM. the returned slice is
// nil if the area has no backing store
func (cart *Cartridge) translate(address uint32) ([]uint8, int) {
	address, area := memorymap.MapAddress(address)

	var mem []uint8
	var idx uint32

	switch area {
	case memorymap.SRAM:
		mem = cart.sram
		idx = uint32(cart.BankSRAM)<<16 | address&memorymap.WindowBits
	case memorymap.ROMBank0:
		mem = cart.rom
		idx = uint32(cart.BankROM0)<<16 | address&memorymap.WindowBits
	case memorymap.ROMBank1:
		mem = cart.rom
		idx = uint32(cart.BankROM1)<<16 | address&memorymap.WindowBits
	case memorymap.ROMBank2:
		mem = cart.rom
		idx = uint32(cart.BankROM2)<<20 | address&memorymap.LinearBits
	default:
		return nil, 0
	}

	if len(mem) == 0 {
		return nil, 0
	}

	// backing store is always a power of two in length
	return mem, int(idx & uint32(len(mem)-1))
}

// ReadMemory implements the bus.Memory interface.
func (cart *Cartridge) ReadMemory(address uint32) uint8 {
	mem, idx := cart.translate(address)
	if mem == nil {
		return bus.IdleValue
	}
	return mem[idx]
}

// WriteMemory implements the bus.Memory interface. Only SRAM can be written
// to.
func (cart *Cartridge) WriteMemory(address uint32, data uint8) {
	if _, area := memorymap.MapAddress(address); area != memorymap.SRAM {
		return
	}
	mem, idx := cart.translate(address)
	if mem == nil {
		return
	}
	mem[idx] = data
}

// ReadPort implements the bus.PortDevice interface for the bank registers.
func (cart *Cartridge) ReadPort(port uint8) uint8 {
	switch port {
	case addresses.BankROM2:
		return cart.BankROM2
	case addresses.BankSRAM:
		return cart.BankSRAM
	case addresses.BankROM0:
		return cart.BankROM0
	case addresses.BankROM1:
		return cart.BankROM1
	}
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface for the bank registers.
func (cart *Cartridge) WritePort(port uint8, data uint8) {
	switch port {
	case addresses.BankROM2:
		cart.BankROM2 = data
	case addresses.BankSRAM:
		cart.BankSRAM = data
	case addresses.BankROM0:
		cart.BankROM0 = data
	case addresses.BankROM1:
		cart.BankROM1 = data
	}
}
