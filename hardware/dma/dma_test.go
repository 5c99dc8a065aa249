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

package dma_test

import (
	"testing"

	"github.com/jetsetilly/gopherswan/hardware/dma"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
	"github.com/jetsetilly/gopherswan/test"
)

type portWrite struct {
	port uint8
	data uint8
}

type mockBus struct {
	mem    [0x100000]uint8
	writes []portWrite
}

func (m *mockBus) ReadMemory(address uint32) uint8 {
	return m.mem[address&0xfffff]
}

func (m *mockBus) WriteMemory(address uint32, data uint8) {
	m.mem[address&0xfffff] = data
}

func (m *mockBus) ReadPort(port uint8) uint8 {
	return bus.IdleValue
}

func (m *mockBus) WritePort(port uint8, data uint8) {
	m.writes = append(m.writes, portWrite{port: port, data: data})
}

func setGeneral(g *dma.General, src uint32, dst uint16, length uint16, control uint8) {
	g.WritePort(addresses.DMASourceLo, uint8(src))
	g.WritePort(addresses.DMASourceMid, uint8(src>>8))
	g.WritePort(addresses.DMASourceHi, uint8(src>>16))
	g.WritePort(addresses.DMADestLo, uint8(dst))
	g.WritePort(addresses.DMADestHi, uint8(dst>>8))
	g.WritePort(addresses.DMALengthLo, uint8(length))
	g.WritePort(addresses.DMALengthHi, uint8(length>>8))
	g.WritePort(addresses.DMAControl, control)
}

func TestInterfaces(t *testing.T) {
	m := &mockBus{}
	test.ExpectImplements[bus.PortDevice](t, dma.NewGeneral(m))
	test.ExpectImplements[bus.PortDevice](t, dma.NewSound(m))
}

func TestGeneral(t *testing.T) {
	m := &mockBus{}
	copy(m.mem[0x20000:], []uint8{0x01, 0x02, 0x03, 0x04})

	g := dma.NewGeneral(m)
	test.ExpectEquality(t, g.Step(), 0)

	setGeneral(g, 0x20000, 0x1000, 4, dma.ControlActive)
	test.ExpectEquality(t, g.ReadPort(addresses.DMASourceHi), 0x02)

	test.ExpectEquality(t, g.Step(), dma.GeneralWordCycles)
	test.ExpectEquality(t, g.Length, 2)
	test.ExpectEquality(t, m.mem[0x1000], 0x01)
	test.ExpectEquality(t, m.mem[0x1001], 0x02)
	test.ExpectEquality(t, m.mem[0x1002], 0x00)

	test.ExpectEquality(t, g.Step(), dma.GeneralWordCycles)
	test.ExpectEquality(t, g.Length, 0)
	test.ExpectEquality(t, m.mem[0x1002], 0x03)
	test.ExpectEquality(t, m.mem[0x1003], 0x04)
	test.ExpectEquality(t, g.Active(), true)

	test.ExpectEquality(t, g.Step(), dma.GeneralStopCycles)
	test.ExpectEquality(t, g.Active(), false)
	test.ExpectEquality(t, g.Step(), 0)
}

func TestGeneralOddLength(t *testing.T) {
	m := &mockBus{}
	copy(m.mem[0xf0100:], []uint8{0x01, 0x02, 0x03, 0x04})

	g := dma.NewGeneral(m)
	setGeneral(g, 0xf0100, 0x1000, 3, dma.ControlActive)
	test.ExpectEquality(t, g.Length, 2)
	test.ExpectEquality(t, g.ReadPort(addresses.DMALengthLo), 0x02)

	var cycles int
	for g.Active() {
		cycles += g.Step()
	}
	test.ExpectEquality(t, cycles, dma.GeneralWordCycles+dma.GeneralStopCycles)
	test.ExpectEquality(t, m.mem[0x1001], 0x02)
	test.ExpectEquality(t, m.mem[0x1002], 0x00)

	// a length of one left in the register ends the transfer
	g.Length = 1
	g.Control = dma.ControlActive
	test.ExpectEquality(t, g.Step(), dma.GeneralStopCycles)
	test.ExpectEquality(t, g.Active(), false)
	test.ExpectEquality(t, g.Length, 1)
}

func TestGeneralDecrement(t *testing.T) {
	m := &mockBus{}
	m.mem[0x20003] = 0xaa
	m.mem[0x20002] = 0xbb

	g := dma.NewGeneral(m)
	setGeneral(g, 0x20003, 0x2003, 2, dma.ControlActive|dma.ControlDecrement)
	test.ExpectEquality(t, g.Step(), dma.GeneralWordCycles)
	test.ExpectEquality(t, m.mem[0x2003], 0xaa)
	test.ExpectEquality(t, m.mem[0x2002], 0xbb)
	test.ExpectEquality(t, g.Source, 0x20001)
	test.ExpectEquality(t, g.Destination, 0x2001)
}

func TestGeneralFromSRAM(t *testing.T) {
	m := &mockBus{}
	m.mem[0x10000] = 0xff

	g := dma.NewGeneral(m)
	setGeneral(g, 0x10000, 0x1000, 4, dma.ControlActive)
	test.ExpectEquality(t, g.Step(), dma.GeneralStopCycles)
	test.ExpectEquality(t, g.Active(), false)
	test.ExpectEquality(t, m.mem[0x1000], 0x00)
}

func setSound(s *dma.Sound, src uint32, length uint32, control uint8) {
	s.WritePort(addresses.SDMASourceLo, uint8(src))
	s.WritePort(addresses.SDMASourceMid, uint8(src>>8))
	s.WritePort(addresses.SDMASourceHi, uint8(src>>16))
	s.WritePort(addresses.SDMALengthLo, uint8(length))
	s.WritePort(addresses.SDMALengthMid, uint8(length>>8))
	s.WritePort(addresses.SDMALengthHi, uint8(length>>16))
	s.WritePort(addresses.SDMAControl, control)
}

func TestSound(t *testing.T) {
	m := &mockBus{}
	copy(m.mem[0x30000:], []uint8{0x10, 0x20, 0x30})

	s := dma.NewSound(m)
	setSound(s, 0x30000, 3, dma.ControlActive|0x03)

	// rate 3 transfers every 128 cycles
	s.Step(127)
	test.ExpectEquality(t, len(m.writes), 0)
	s.Step(1)
	test.DemandEquality(t, len(m.writes), 1)
	test.ExpectEquality(t, m.writes[0], portWrite{port: addresses.SoundChannel2Volume, data: 0x10})

	s.Step(256)
	test.DemandEquality(t, len(m.writes), 3)
	test.ExpectEquality(t, m.writes[2].data, 0x30)
	test.ExpectEquality(t, s.Active(), false)

	s.Step(1000)
	test.ExpectEquality(t, len(m.writes), 3)
}

func TestSoundLoop(t *testing.T) {
	m := &mockBus{}
	copy(m.mem[0x30000:], []uint8{0x10, 0x20})

	s := dma.NewSound(m)
	setSound(s, 0x30000, 2, dma.ControlActive|dma.ControlLoop|dma.ControlHyperVoice)

	// rate 0 transfers every 768 cycles
	s.Step(768 * 5)
	test.DemandEquality(t, len(m.writes), 5)
	for i, v := range []uint8{0x10, 0x20, 0x10, 0x20, 0x10} {
		test.ExpectEquality(t, m.writes[i], portWrite{port: addresses.SoundHyperVoice, data: v}, i)
	}
	test.ExpectEquality(t, s.Active(), true)
	test.ExpectEquality(t, s.Source, 0x30001)
}

func TestSoundLatch(t *testing.T) {
	m := &mockBus{}
	s := dma.NewSound(m)
	setSound(s, 0x30000, 4, dma.ControlActive|dma.ControlLoop)
	test.ExpectEquality(t, s.InitialSource, 0x30000)

	// changing the source while active does not change the latched value
	s.WritePort(addresses.SDMASourceLo, 0x80)
	s.WritePort(addresses.SDMAControl, dma.ControlActive|dma.ControlLoop)
	test.ExpectEquality(t, s.InitialSource, 0x30000)
	test.ExpectEquality(t, s.InitialLength, 4)
}
