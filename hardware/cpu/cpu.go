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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/cpu/registers"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
)

// no segment override prefix
const noOverride = -1

// CPU implements the V30MZ. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	env *environment.Environment
	mem bus.Bus

	registers.File

	// the CPU has executed a HLT instruction. only an interrupt request
	// releases the CPU from the halted state
	Halted bool

	// there is a single slot for pending interrupts. a second request before
	// the first has been serviced replaces the first
	pending       bool
	pendingVector uint8

	// transient state. reset at the start of every instruction
	segOverride int
	rep         uint8
	lock        bool
	start       uint16
	opcode      uint8
	modrm       modrm

	// the number of cycles consumed by the most recent call to Step()
	LastCycles int

	opcodes [256]handler

	trace *tracer
}

// handler is the function that executes an instruction. returns the number
// of cycles consumed
type handler func(mc *CPU) int

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(env *environment.Environment, mem bus.Bus) *CPU {
	mc := &CPU{
		env:  env,
		mem:  mem,
		File: registers.NewFile(),
	}
	mc.opcodes = opcodeTable()
	mc.Reset()
	return mc
}

// Plumb a new bus into the CPU.
func (mc *CPU) Plumb(mem bus.Bus) {
	mc.mem = mem
}

// Snapshot creates a copy of the CPU in its current state. The copy is not
// attached to a bus and cannot be stepped.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.env = nil
	n.mem = nil
	n.trace = nil
	n.opcodes = [256]handler{}
	return &n
}

func (mc *CPU) String() string {
	return mc.File.String()
}

// Reset reinitialises all registers. CS:IP points to the reset vector.
func (mc *CPU) Reset() {
	mc.File.Reset()
	if mc.env != nil && mc.env.Prefs.RandomState.Get().(bool) {
		rnd := mc.env.Prefs.RandSrc
		for i := range 8 {
			mc.Reg16(i).Load(uint16(rnd.IntN(0x10000)))
		}
	}
	mc.Halted = false
	mc.pending = false
	mc.pendingVector = 0
	mc.LastCycles = 0
	mc.resetTransient()
}

func (mc *CPU) resetTransient() {
	mc.segOverride = noOverride
	mc.rep = 0
	mc.lock = false
	mc.modrm = modrm{}
}

// PhysicalAddress converts a segment and offset pair to a 20 bit address.
func PhysicalAddress(seg uint16, offset uint16) uint32 {
	return (uint32(seg)<<4 + uint32(offset)) & 0xfffff
}

// Step executes a single instruction and returns the number of cycles
// consumed, including the cycles required to service an interrupt.
func (mc *CPU) Step() int {
	var cycles int

	if mc.pending && mc.Flags.InterruptEnable {
		mc.pending = false
		mc.interrupt(mc.pendingVector)
		cycles += serviceCycles
	}

	if mc.Halted {
		mc.LastCycles = cycles + haltCycles
		return mc.LastCycles
	}

	mc.resetTransient()
	mc.start = mc.IP.Value()

	var prefixCount int

prefixes:
	for {
		mc.opcode = mc.fetch8()
		switch mc.opcode {
		case 0x26:
			mc.segOverride = registers.ES
		case 0x2e:
			mc.segOverride = registers.CS
		case 0x36:
			mc.segOverride = registers.SS
		case 0x3e:
			mc.segOverride = registers.DS
		case 0xf0:
			mc.lock = true
		case 0xf2, 0xf3:
			mc.rep = mc.opcode
		default:
			break prefixes
		}
		cycles += prefixCycles

		// the instruction ends without an opcode after maxPrefixes prefixes
		prefixCount++
		if prefixCount >= maxPrefixes {
			mc.resetTransient()
			mc.LastCycles = cycles
			return cycles
		}
	}

	if mc.trace != nil {
		mc.trace.instruction(mc)
	}

	h := mc.opcodes[mc.opcode]
	if h == nil {
		panic(fmt.Sprintf("cpu: unassigned opcode %02x at %04x:%04x", mc.opcode, mc.CS.Value(), mc.start))
	}

	c := h(mc)
	if c == 0 {
		panic(fmt.Sprintf("cpu: opcode %02x at %04x:%04x consumed zero cycles", mc.opcode, mc.CS.Value(), mc.start))
	}
	cycles += c

	mc.resetTransient()

	mc.LastCycles = cycles
	return cycles
}

// read8 reads a byte from the segment and offset.
func (mc *CPU) read8(seg uint16, offset uint16) uint8 {
	return mc.mem.ReadMemory(PhysicalAddress(seg, offset))
}

// read16 reads a little-endian word from the segment and offset. The offset
// of the second byte wraps within the segment.
func (mc *CPU) read16(seg uint16, offset uint16) uint16 {
	lo := mc.mem.ReadMemory(PhysicalAddress(seg, offset))
	hi := mc.mem.ReadMemory(PhysicalAddress(seg, offset+1))
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write8(seg uint16, offset uint16, data uint8) {
	mc.mem.WriteMemory(PhysicalAddress(seg, offset), data)
}

func (mc *CPU) write16(seg uint16, offset uint16, data uint16) {
	mc.mem.WriteMemory(PhysicalAddress(seg, offset), uint8(data))
	mc.mem.WriteMemory(PhysicalAddress(seg, offset+1), uint8(data>>8))
}

// fetch8 reads the byte at CS:IP and advances IP.
func (mc *CPU) fetch8() uint8 {
	v := mc.read8(mc.CS.Value(), mc.IP.Value())
	mc.IP.Add(1)
	return v
}

// fetch16 reads the word at CS:IP and advances IP.
func (mc *CPU) fetch16() uint16 {
	v := mc.read16(mc.CS.Value(), mc.IP.Value())
	mc.IP.Add(2)
	return v
}

// segment returns the value of the segment register used for a data access.
// The default segment is replaced by any segment override prefix.
func (mc *CPU) segment(def int) uint16 {
	if mc.segOverride != noOverride {
		return mc.Seg(mc.segOverride).Value()
	}
	return mc.Seg(def).Value()
}

func (mc *CPU) push(v uint16) {
	mc.SP.Add(0xfffe)
	mc.write16(mc.SS.Value(), mc.SP.Value(), v)
}

func (mc *CPU) pop() uint16 {
	v := mc.read16(mc.SS.Value(), mc.SP.Value())
	mc.SP.Add(2)
	return v
}
