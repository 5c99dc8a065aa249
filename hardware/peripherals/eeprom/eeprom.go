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

// Package eeprom implements the serial EEPROM found in some cartridges. The
// EEPROM is driven through five ports: two data registers, two address
// registers and a status/command register.
//
// A command is issued by writing the status/command port with exactly one of
// the request bits (bits 4 to 7) set. The operation to perform is taken from
// the address register, which for an EEPROM with n address bits is laid out
// as follows:
//
//	bit n+2       start bit. no operation executes without it
//	bits n+1..n   opcode
//	bits n-1..0   cell address
//
// When the opcode is zero the top two bits of the cell address select an
// extended operation.
//
// Cells are 16 bits wide and are stored little-endian in the contents array.
package eeprom

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
)

// Opcodes found in the address register.
const (
	opExtended = 0b00
	opWrite    = 0b01
	opRead     = 0b10
	opErase    = 0b11
)

// Extended opcodes. Used when the opcode is opExtended.
const (
	extEWDS = 0b00
	extWRAL = 0b01
	extERAL = 0b10
	extEWEN = 0b11
)

// Registers relative to the first port of the EEPROM.
const (
	regDataLo = iota
	regDataHi
	regAddrLo
	regAddrHi
	regStatus
	numRegisters
)

// Operation names the operation performed by the most recent command.
type Operation int

// List of valid Operation values.
const (
	OpNone Operation = iota
	OpRead
	OpWrite
	OpErase
	OpEWDS
	OpWRAL
	OpERAL
	OpEWEN
)

func (op Operation) String() string {
	switch op {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpErase:
		return "ERASE"
	case OpEWDS:
		return "EWDS"
	case OpWRAL:
		return "WRAL"
	case OpERAL:
		return "ERAL"
	case OpEWEN:
		return "EWEN"
	}
	return "none"
}

// EEPROM is the serial EEPROM state machine.
type EEPROM struct {
	env *environment.Environment

	// the port the data lo register is mapped to. the other registers follow
	base uint8

	// number of bits in the cell address
	AddressBits int

	// the contents of the EEPROM. two bytes for every cell
	Contents []uint8

	DataLo  uint8
	DataHi  uint8
	AddrLo  uint8
	AddrHi  uint8
	Status  uint8
	Enabled bool

	// the most recent operation
	LastOp Operation
}

// NewEEPROM is the preferred method of initialisation for the EEPROM type.
// The EEPROM is mapped to the five ports starting at base. New contents are
// filled with 0xff.
func NewEEPROM(env *environment.Environment, base uint8, cells int, addressBits int) *EEPROM {
	ee := &EEPROM{
		env:         env,
		base:        base,
		AddressBits: addressBits,
		Contents:    make([]uint8, cells*2),
	}
	for i := range ee.Contents {
		ee.Contents[i] = 0xff
	}
	return ee
}

func (ee *EEPROM) String() string {
	return fmt.Sprintf("data=%02x%02x addr=%02x%02x status=%02x ewen=%v", ee.DataHi, ee.DataLo, ee.AddrHi, ee.AddrLo, ee.Status, ee.Enabled)
}

// Reset the registers. The contents are not changed.
func (ee *EEPROM) Reset() {
	ee.DataLo = 0
	ee.DataHi = 0
	ee.AddrLo = 0
	ee.AddrHi = 0
	ee.Status = 0
	ee.Enabled = false
	ee.LastOp = OpNone
}

// Snapshot creates a copy of the EEPROM in its current state.
func (ee *EEPROM) Snapshot() *EEPROM {
	cp := *ee
	cp.env = nil
	cp.Contents = make([]uint8, len(ee.Contents))
	copy(cp.Contents, ee.Contents)
	return &cp
}

// Load replaces the contents of the EEPROM. The length of data must match
// the length of the contents exactly.
func (ee *EEPROM) Load(data []uint8) {
	if len(data) != len(ee.Contents) {
		panic(fmt.Sprintf("eeprom: save data is %d bytes, expected %d", len(data), len(ee.Contents)))
	}
	copy(ee.Contents, data)
}

// Save returns a copy of the contents of the EEPROM.
func (ee *EEPROM) Save() []uint8 {
	cp := make([]uint8, len(ee.Contents))
	copy(cp, ee.Contents)
	return cp
}

// ReadPort implements the bus.PortDevice interface.
func (ee *EEPROM) ReadPort(port uint8) uint8 {
	switch port - ee.base {
	case regDataLo:
		return ee.DataLo
	case regDataHi:
		return ee.DataHi
	case regAddrLo:
		return ee.AddrLo
	case regAddrHi:
		return ee.AddrHi
	case regStatus:
		return ee.Status
	}
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface.
func (ee *EEPROM) WritePort(port uint8, data uint8) {
	switch port - ee.base {
	case regDataLo:
		ee.DataLo = data
	case regDataHi:
		ee.DataHi = data
	case regAddrLo:
		ee.AddrLo = data
	case regAddrHi:
		ee.AddrHi = data
	case regStatus:
		ee.command(data)
	}
}

func (ee *EEPROM) command(data uint8) {
	request := data & 0xf0
	if bits.OnesCount8(request) != 1 {
		ee.env.Logf("eeprom", "ignoring command %02x: one request bit must be set", data)
		return
	}

	address := uint16(ee.AddrHi)<<8 | uint16(ee.AddrLo)
	n := ee.AddressBits

	if (address>>(n+2))&0x01 == 0x01 {
		opcode := (address >> n) & 0x03
		cell := address & (1<<n - 1)
		ee.execute(opcode, cell)
	} else {
		ee.LastOp = OpNone
		ee.env.Logf("eeprom", "no start bit in address %04x", address)
	}

	// done bit is in the low nibble
	ee.Status = (data &^ request) | (request >> 4)
}

func (ee *EEPROM) execute(opcode uint16, cell uint16) {
	idx := (int(cell) * 2) & (len(ee.Contents) - 1)

	switch opcode {
	case opRead:
		ee.LastOp = OpRead
		ee.DataLo = ee.Contents[idx]
		ee.DataHi = ee.Contents[idx+1]

	case opWrite:
		ee.LastOp = OpWrite
		if ee.Enabled {
			ee.Contents[idx] = ee.DataLo
			ee.Contents[idx+1] = ee.DataHi
		}

	case opErase:
		ee.LastOp = OpErase
		ee.DataLo = ee.Contents[idx]
		ee.DataHi = ee.Contents[idx+1]
		if ee.Enabled {
			ee.Contents[idx] = 0xff
			ee.Contents[idx+1] = 0xff
		}

	case opExtended:
		switch cell >> (ee.AddressBits - 2) {
		case extEWDS:
			ee.LastOp = OpEWDS
			ee.Enabled = false
		case extWRAL:
			ee.LastOp = OpWRAL
			if ee.Enabled {
				for i := 0; i < len(ee.Contents); i += 2 {
					ee.Contents[i] = ee.DataLo
					ee.Contents[i+1] = ee.DataHi
				}
			}
		case extERAL:
			ee.LastOp = OpERAL
			if ee.Enabled {
				for i := range ee.Contents {
					ee.Contents[i] = 0xff
				}
			}
		case extEWEN:
			ee.LastOp = OpEWEN
			ee.Enabled = true
		}
	}

	if !ee.Enabled && ee.LastOp != OpRead && ee.LastOp != OpEWDS {
		ee.env.Logf("eeprom", "%s ignored: write not enabled", ee.LastOp)
	}
}
