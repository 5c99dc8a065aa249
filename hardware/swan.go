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

package hardware

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/cpu"
	"github.com/jetsetilly/gopherswan/hardware/dma"
	"github.com/jetsetilly/gopherswan/hardware/interrupts"
	"github.com/jetsetilly/gopherswan/hardware/memory"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
	"github.com/jetsetilly/gopherswan/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherswan/hardware/serial"
)

// Swan struct is the main container for the emulated components of the
// console.
type Swan struct {
	Env *environment.Environment

	CPU        *cpu.CPU
	Mem        *memory.Memory
	DMA        *dma.General
	SoundDMA   *dma.Sound
	Serial     *serial.Serial
	Interrupts *interrupts.Controller

	// number of cycles since the last reset
	Cycles int64

	// cycles accumulated towards the next serial tick
	serialCycles int
}

// NewSwan creates a new console and everything associated with the hardware.
// A nil environment is replaced with the environment for the main emulation.
func NewSwan(env *environment.Environment) (*Swan, error) {
	if env == nil {
		var err error
		env, err = environment.NewEnvironment(environment.MainEmulation, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("swan: %w", err)
		}
	}

	sw := &Swan{
		Env:        env,
		Interrupts: interrupts.NewController(),
		Serial:     serial.NewSerial(env),
	}

	sw.Mem = memory.NewMemory(env, cartridge.NewCartridge(env))
	sw.CPU = cpu.NewCPU(env, sw.Mem)
	sw.DMA = dma.NewGeneral(sw.Mem)
	sw.SoundDMA = dma.NewSound(sw.Mem)

	sw.plumbPorts()
	sw.Reset()

	return sw, nil
}

// attach the ports of the components that are not part of the cartridge
func (sw *Swan) plumbPorts() {
	sw.Mem.AttachPorts(addresses.DMASourceLo, addresses.DMAControl, sw.DMA)
	sw.Mem.AttachPorts(addresses.SDMASourceLo, addresses.SDMAControl, sw.SoundDMA)

	// the serial port and the interrupt controller have interleaved ports
	sw.Mem.AttachPorts(addresses.InterruptBase, addresses.InterruptBase, sw.Interrupts)
	sw.Mem.AttachPorts(addresses.SerialData, addresses.SerialData, sw.Serial)
	sw.Mem.AttachPorts(addresses.InterruptEnable, addresses.InterruptEnable, sw.Interrupts)
	sw.Mem.AttachPorts(addresses.SerialStatus, addresses.SerialStatus, sw.Serial)
	sw.Mem.AttachPorts(addresses.InterruptStatus, addresses.InterruptStatus, sw.Interrupts)
	sw.Mem.AttachPorts(addresses.InterruptAck, addresses.InterruptAck, sw.Interrupts)
}

// LoadRom inserts the ROM data into the console and resets the machine. The
// filename and hash are recorded in the cartridge and can be empty.
func (sw *Swan) LoadRom(data []uint8, filename string, hash string) error {
	if err := sw.Mem.Cart.LoadRom(data); err != nil {
		return fmt.Errorf("swan: %w", err)
	}
	sw.Mem.Cart.Filename = filename
	sw.Mem.Cart.Hash = hash
	sw.Mem.Plumb()
	sw.Reset()
	return nil
}

// Reset emulates the power cycling of the console. The contents of the
// cartridge, including any save data, are not affected.
func (sw *Swan) Reset() {
	sw.Mem.Reset()
	sw.Mem.Cart.Reset()
	sw.CPU.Reset()
	sw.DMA.Reset()
	sw.SoundDMA.Reset()
	sw.Serial.Reset()
	sw.Interrupts.Reset()
	sw.Cycles = 0
	sw.serialCycles = 0
}

// AttachPorts maps the ports from first to last inclusive to a device that is
// not part of the core emulation. For example, the display or the sound
// generator.
func (sw *Swan) AttachPorts(first uint8, last uint8, dev bus.PortDevice) {
	sw.Mem.AttachPorts(first, last, dev)
}

// RaiseInterrupt requests an interrupt directly, bypassing the interrupt
// controller.
func (sw *Swan) RaiseInterrupt(vector uint8) {
	sw.CPU.RaiseInterrupt(vector)
}

// SetTracer sets the destination for the instruction trace. A nil writer turns
// tracing off.
func (sw *Swan) SetTracer(w io.Writer) error {
	return sw.CPU.SetTracer(w)
}

// Shutdown flushes any open resources. The console should not be used after
// Shutdown() has been called.
func (sw *Swan) Shutdown() error {
	return sw.CPU.FlushTrace()
}
