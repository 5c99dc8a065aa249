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

package hardware_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/jetsetilly/gopherswan/govern"
	"github.com/jetsetilly/gopherswan/hardware"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherswan/test"
)

const romSize = 0x20000

// offset in the ROM of the program started by the reset stub. the program is
// at F000:0000
const programOrigin = 0x10000

// makeRom creates a ROM with a reset stub that jumps to the program.
func makeRom(save cartridge.SaveType, program ...uint8) []uint8 {
	data := make([]uint8, romSize)
	for i := 0x100; i < 0x200; i++ {
		data[programOrigin+i] = uint8(i)
	}
	copy(data[programOrigin:], program)

	// JMP F000:0000 at FFFF:0000
	copy(data[romSize-0x10:], []uint8{0xea, 0x00, 0x00, 0x00, 0xf0})

	f := data[romSize-cartridge.FooterSize:]
	f[5] = uint8(save)
	binary.LittleEndian.PutUint16(f[8:], cartridge.Checksum(data))
	return data
}

func newSwan(t *testing.T, save cartridge.SaveType, program ...uint8) *hardware.Swan {
	t.Helper()
	sw, err := hardware.NewSwan(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sw.LoadRom(makeRom(save, program...), "test.ws", ""))
	return sw
}

type mockDevice struct {
	writes []uint8
}

func (m *mockDevice) ReadPort(_ uint8) uint8 {
	return 0x00
}

func (m *mockDevice) WritePort(port uint8, data uint8) {
	m.writes = append(m.writes, port, data)
}

func TestResetVector(t *testing.T) {
	sw, err := hardware.NewSwan(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sw.CPU.CS.Value(), 0xffff)
	test.ExpectEquality(t, sw.CPU.IP.Value(), 0x0000)

	sw = newSwan(t, cartridge.SaveNone,
		0x90, // NOP
	)
	test.ExpectEquality(t, sw.Mem.Cart.Filename, "test.ws")

	test.ExpectEquality(t, sw.Step(), 7) // JMP F000:0000
	test.ExpectEquality(t, sw.CPU.CS.Value(), 0xf000)
	test.ExpectEquality(t, sw.CPU.IP.Value(), 0x0000)
	test.ExpectEquality(t, sw.Step(), 1) // NOP
	test.ExpectEquality(t, sw.Cycles, 8)

	sw.Reset()
	test.ExpectEquality(t, sw.CPU.CS.Value(), 0xffff)
	test.ExpectEquality(t, sw.Cycles, 0)
}

func TestLoadRomErrors(t *testing.T) {
	sw, err := hardware.NewSwan(nil)
	test.DemandSuccess(t, err)

	err = sw.LoadRom(make([]uint8, 4), "", "")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrRomTooSmall))

	err = sw.LoadRom(make([]uint8, 0x30000), "", "")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrRomSize))
}

func TestGeneralDMA(t *testing.T) {
	sw := newSwan(t, cartridge.SaveNone,
		0xb0, 0x80, // MOV AL, 0x80
		0xe6, 0x48, // OUT 0x48, AL
		0x90, // NOP
	)

	// source is F0100, destination is 0200 and length is 4
	sw.Mem.WritePort(addresses.DMASourceLo, 0x00)
	sw.Mem.WritePort(addresses.DMASourceMid, 0x01)
	sw.Mem.WritePort(addresses.DMASourceHi, 0x0f)
	sw.Mem.WritePort(addresses.DMADestLo, 0x00)
	sw.Mem.WritePort(addresses.DMADestHi, 0x02)
	sw.Mem.WritePort(addresses.DMALengthLo, 0x04)
	sw.Mem.WritePort(addresses.DMALengthHi, 0x00)

	sw.Step() // JMP
	sw.Step() // MOV AL, 0x80

	// the transfer takes two words and the stop
	test.ExpectEquality(t, sw.Step(), 6+2+2+5)
	test.ExpectEquality(t, sw.DMA.Active(), false)
	test.ExpectEquality(t, sw.DMA.Length, 0)
	for i := uint32(0); i < 4; i++ {
		test.ExpectEquality(t, sw.Mem.ReadMemory(0x0200+i), uint8(i), i)
	}

	test.ExpectEquality(t, sw.Step(), 1) // NOP
}

func TestSoundDMA(t *testing.T) {
	sw := newSwan(t, cartridge.SaveNone)

	dev := &mockDevice{}
	sw.AttachPorts(addresses.SoundHyperVoice, addresses.SoundHyperVoice, dev)

	sw.Mem.WritePort(addresses.SDMASourceLo, 0x10)
	sw.Mem.WritePort(addresses.SDMASourceMid, 0x01)
	sw.Mem.WritePort(addresses.SDMASourceHi, 0x0f)
	sw.Mem.WritePort(addresses.SDMALengthLo, 0x02)
	sw.Mem.WritePort(addresses.SDMALengthMid, 0x00)
	sw.Mem.WritePort(addresses.SDMALengthHi, 0x00)

	// active, hypervoice and the fastest rate
	sw.Mem.WritePort(addresses.SDMAControl, 0x80|0x10|0x03)

	sw.StepPeripherals(127)
	test.ExpectEquality(t, len(dev.writes), 0)
	sw.StepPeripherals(1)
	test.DemandEquality(t, len(dev.writes), 2)
	test.ExpectEquality(t, dev.writes[0], addresses.SoundHyperVoice)
	test.ExpectEquality(t, dev.writes[1], 0x10)

	sw.StepPeripherals(128)
	test.DemandEquality(t, len(dev.writes), 4)
	test.ExpectEquality(t, dev.writes[3], 0x11)
	test.ExpectEquality(t, sw.SoundDMA.Active(), false)
}

func TestSerialInterrupt(t *testing.T) {
	sw := newSwan(t, cartridge.SaveNone,
		0xeb, 0xfe, // JMP $
	)

	// vector for line zero of base 0x10 points to a handler in RAM
	sw.Mem.WriteMemory(0x0040, 0x00)
	sw.Mem.WriteMemory(0x0041, 0x03)
	sw.Mem.WriteMemory(0x0042, 0x00)
	sw.Mem.WriteMemory(0x0043, 0x00)
	sw.Mem.WriteMemory(0x0300, 0x90) // NOP
	sw.Mem.WriteMemory(0x0301, 0xeb) // JMP $
	sw.Mem.WriteMemory(0x0302, 0xfe)

	sw.Mem.WritePort(addresses.InterruptBase, 0x10)
	sw.Mem.WritePort(addresses.InterruptEnable, 0x01)
	sw.Mem.WritePort(addresses.SerialStatus, 0xc0)
	sw.Mem.WritePort(addresses.SerialData, 0x55)
	test.ExpectEquality(t, sw.Mem.ReadPort(addresses.SerialStatus)&0x04, 0x00)

	sw.CPU.SP.Load(0x1000)
	sw.CPU.Flags.InterruptEnable = true

	// nine serial ticks
	sw.RunForCycles(2000)

	test.ExpectEquality(t, sw.Mem.ReadPort(addresses.SerialStatus)&0x04, 0x04)
	test.ExpectEquality(t, sw.Mem.ReadPort(addresses.InterruptStatus), 0x01)
	test.ExpectEquality(t, sw.CPU.CS.Value(), 0x0000)
	test.ExpectEquality(t, sw.CPU.IP.Value(), 0x0301)
	test.ExpectEquality(t, sw.CPU.Flags.InterruptEnable, false)

	// acknowledge
	sw.Mem.WritePort(addresses.InterruptAck, 0x01)
	test.ExpectEquality(t, sw.Mem.ReadPort(addresses.InterruptStatus), 0x00)
}

func TestSerialInterruptDisabled(t *testing.T) {
	sw := newSwan(t, cartridge.SaveNone,
		0xeb, 0xfe, // JMP $
	)

	sw.Mem.WritePort(addresses.SerialStatus, 0xc0)
	sw.Mem.WritePort(addresses.SerialData, 0x55)
	sw.CPU.Flags.InterruptEnable = true

	sw.RunForCycles(2000)
	test.ExpectEquality(t, sw.Mem.ReadPort(addresses.InterruptStatus), 0x00)
	test.ExpectEquality(t, sw.CPU.CS.Value(), 0xf000)
	_, ok := sw.CPU.PendingInterrupt()
	test.ExpectEquality(t, ok, false)
}

func TestSram(t *testing.T) {
	sw := newSwan(t, cartridge.SaveSram8KB,
		0xb0, 0x00, // MOV AL, 0x00
		0xe6, 0xc1, // OUT 0xc1, AL
		0xb8, 0x00, 0x10, // MOV AX, 0x1000
		0x8e, 0xd8, // MOV DS, AX
		0xc6, 0x06, 0x34, 0x00, 0xab, // MOV BYTE [0x0034], 0xab
	)
	for range 6 {
		sw.Step()
	}
	test.ExpectEquality(t, sw.Mem.Cart.GetSram()[0x34], 0xab)

	// the contents of SRAM survive a reset
	sw.Reset()
	test.ExpectEquality(t, sw.Mem.Cart.GetSram()[0x34], 0xab)
}

func TestState(t *testing.T) {
	sw := newSwan(t, cartridge.SaveEeprom1Kb)
	sw.Step()

	s := sw.State()
	test.ExpectEquality(t, s.CPU.CS.Value(), 0xf000)
	test.ExpectEquality(t, s.Cycles, sw.Cycles)
	test.ExpectEquality(t, s.Cart.EEPROM != nil, true)

	// the state is a copy
	sw.Step()
	test.ExpectInequality(t, s.Cycles, sw.Cycles)
	sw.Mem.Cart.EEPROM.Contents[0] = 0x00
	test.ExpectEquality(t, s.Cart.EEPROM.Contents[0], 0xff)
}

func TestRun(t *testing.T) {
	sw := newSwan(t, cartridge.SaveNone,
		0xeb, 0xfe, // JMP $
	)

	var checks int
	err := sw.Run(func() (govern.State, error) {
		checks++
		if checks == 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, checks, 10)
	test.ExpectEquality(t, sw.Cycles, int64(7+(10*hardware.PerformanceBrake-1)*4))

	// unsupported state
	err = sw.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectFailure(t, err)

	err = sw.Run(func() (govern.State, error) {
		return govern.Running, errors.New("test")
	})
	test.ExpectFailure(t, err)
}

func TestShutdown(t *testing.T) {
	sw := newSwan(t, cartridge.SaveNone)
	test.ExpectSuccess(t, sw.Shutdown())
}
