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

package addresses

import "fmt"

// Reset vector. The CPU begins execution at ResetCS:ResetIP.
const (
	ResetCS = uint16(0xffff)
	ResetIP = uint16(0x0000)
)

// General DMA ports.
const (
	DMASourceLo  = uint8(0x40)
	DMASourceMid = uint8(0x41)
	DMASourceHi  = uint8(0x42)
	DMADestLo    = uint8(0x44)
	DMADestHi    = uint8(0x45)
	DMALengthLo  = uint8(0x46)
	DMALengthHi  = uint8(0x47)
	DMAControl   = uint8(0x48)
)

// Sound DMA ports.
const (
	SDMASourceLo  = uint8(0x4a)
	SDMASourceMid = uint8(0x4b)
	SDMASourceHi  = uint8(0x4c)
	SDMALengthLo  = uint8(0x4e)
	SDMALengthMid = uint8(0x4f)
	SDMALengthHi  = uint8(0x50)
	SDMAControl   = uint8(0x52)
)

// Sound ports that are the destination of sound DMA transfers. The sound
// controller itself is not part of the emulation.
const (
	SoundChannel2Volume = uint8(0x89)
	SoundHyperVoice     = uint8(0x95)
)

// Interrupt controller and serial ports.
const (
	InterruptBase   = uint8(0xb0)
	SerialData      = uint8(0xb1)
	InterruptEnable = uint8(0xb2)
	SerialStatus    = uint8(0xb3)
	InterruptStatus = uint8(0xb4)
	InterruptAck    = uint8(0xb6)
)

// Cartridge ports.
const (
	BankROM2     = uint8(0xc0)
	BankSRAM     = uint8(0xc1)
	BankROM0     = uint8(0xc2)
	BankROM1     = uint8(0xc3)
	EEPROMDataLo = uint8(0xc4)
	EEPROMDataHi = uint8(0xc5)
	EEPROMAddrLo = uint8(0xc6)
	EEPROMAddrHi = uint8(0xc7)
	EEPROMStatus = uint8(0xc8)
	RTCCommand   = uint8(0xca)
	RTCData      = uint8(0xcb)
)

// Port describes a single port.
type Port struct {
	Port  uint8
	Name  string
	Owner string

	// a port that can only be read or only be written. most ports can be
	// both read and written
	ReadOnly  bool
	WriteOnly bool
}

func (p Port) String() string {
	return fmt.Sprintf("%02x %s (%s)", p.Port, p.Name, p.Owner)
}

// Ports lists every port known to the emulation.
var Ports = []Port{
	{Port: DMASourceLo, Name: "DMA_SRC_LO", Owner: "dma"},
	{Port: DMASourceMid, Name: "DMA_SRC_MID", Owner: "dma"},
	{Port: DMASourceHi, Name: "DMA_SRC_HI", Owner: "dma"},
	{Port: DMADestLo, Name: "DMA_DST_LO", Owner: "dma"},
	{Port: DMADestHi, Name: "DMA_DST_HI", Owner: "dma"},
	{Port: DMALengthLo, Name: "DMA_LEN_LO", Owner: "dma"},
	{Port: DMALengthHi, Name: "DMA_LEN_HI", Owner: "dma"},
	{Port: DMAControl, Name: "DMA_CTRL", Owner: "dma"},

	{Port: SDMASourceLo, Name: "SDMA_SRC_LO", Owner: "sound dma"},
	{Port: SDMASourceMid, Name: "SDMA_SRC_MID", Owner: "sound dma"},
	{Port: SDMASourceHi, Name: "SDMA_SRC_HI", Owner: "sound dma"},
	{Port: SDMALengthLo, Name: "SDMA_LEN_LO", Owner: "sound dma"},
	{Port: SDMALengthMid, Name: "SDMA_LEN_MID", Owner: "sound dma"},
	{Port: SDMALengthHi, Name: "SDMA_LEN_HI", Owner: "sound dma"},
	{Port: SDMAControl, Name: "SDMA_CTRL", Owner: "sound dma"},

	{Port: SoundChannel2Volume, Name: "SND_CH2_VOL", Owner: "sound", WriteOnly: true},
	{Port: SoundHyperVoice, Name: "SND_HYPERVOICE", Owner: "sound", WriteOnly: true},

	{Port: InterruptBase, Name: "INT_BASE", Owner: "interrupts"},
	{Port: SerialData, Name: "SER_DATA", Owner: "serial"},
	{Port: InterruptEnable, Name: "INT_ENABLE", Owner: "interrupts"},
	{Port: SerialStatus, Name: "SER_STATUS", Owner: "serial"},
	{Port: InterruptStatus, Name: "INT_STATUS", Owner: "interrupts", ReadOnly: true},
	{Port: InterruptAck, Name: "INT_ACK", Owner: "interrupts", WriteOnly: true},

	{Port: BankROM2, Name: "BANK_ROM2", Owner: "cartridge"},
	{Port: BankSRAM, Name: "BANK_SRAM", Owner: "cartridge"},
	{Port: BankROM0, Name: "BANK_ROM0", Owner: "cartridge"},
	{Port: BankROM1, Name: "BANK_ROM1", Owner: "cartridge"},
	{Port: EEPROMDataLo, Name: "EEP_DATA_LO", Owner: "eeprom"},
	{Port: EEPROMDataHi, Name: "EEP_DATA_HI", Owner: "eeprom"},
	{Port: EEPROMAddrLo, Name: "EEP_ADDR_LO", Owner: "eeprom"},
	{Port: EEPROMAddrHi, Name: "EEP_ADDR_HI", Owner: "eeprom"},
	{Port: EEPROMStatus, Name: "EEP_STATUS", Owner: "eeprom"},
	{Port: RTCCommand, Name: "RTC_CMD", Owner: "rtc"},
	{Port: RTCData, Name: "RTC_DATA", Owner: "rtc"},
}

var lookup map[uint8]Port

func init() {
	lookup = make(map[uint8]Port, len(Ports))
	for _, p := range Ports {
		lookup[p.Port] = p
	}
}

// Lookup returns the description of the port. The boolean is false if the
// port is not known.
func Lookup(port uint8) (Port, bool) {
	p, ok := lookup[port]
	return p, ok
}

// Name returns the canonical name of the port or a hex representation of the
// port if it has no name.
func Name(port uint8) string {
	if p, ok := lookup[port]; ok {
		return p.Name
	}
	return fmt.Sprintf("%02x", port)
}
