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

import "github.com/jetsetilly/gopherswan/hardware/interrupts"

// Step the emulation one CPU instruction. The peripherals are then advanced
// by the number of cycles consumed. Returns the number of cycles consumed by
// the instruction and by any DMA transfer that took place.
func (sw *Swan) Step() int {
	cycles := sw.CPU.Step()
	cycles += sw.StepPeripherals(cycles)
	return cycles
}

// StepPeripherals advances the peripherals by the number of cycles. It is
// called once per instruction by Step() and should be called in the same way
// by any host loop that steps the CPU directly.
//
// A general DMA transfer that is active is completed in its entirety. Returns
// the number of cycles consumed by the transfer.
func (sw *Swan) StepPeripherals(cycles int) int {
	var dmaCycles int
	for sw.DMA.Active() {
		dmaCycles += sw.DMA.Step()
	}
	cycles += dmaCycles

	sw.SoundDMA.Step(cycles)

	if sw.Mem.Cart.Step(cycles) {
		sw.request(interrupts.LineCartridge)
	}

	tick := sw.Env.Prefs.SerialTickCycles.Get().(int)
	sw.serialCycles += cycles
	for sw.serialCycles >= tick {
		sw.serialCycles -= tick
		ints := sw.Serial.Step()
		if ints.Transmit {
			sw.request(interrupts.LineSerialTransmit)
		}
		if ints.Receive {
			sw.request(interrupts.LineSerialReceive)
		}
	}

	sw.Cycles += int64(cycles)

	sw.raise()

	return dmaCycles
}

// request an interrupt through the interrupt controller. the request is
// ignored if the line is not enabled
func (sw *Swan) request(line interrupts.Line) {
	sw.Interrupts.Request(line)
}

// raise the highest priority request held by the interrupt controller. a
// request stays in the controller until it is acknowledged so it is raised
// again after every step that ends with interrupts enabled in the CPU
func (sw *Swan) raise() {
	if !sw.CPU.Flags.InterruptEnable {
		return
	}
	if v, ok := sw.Interrupts.Pending(); ok {
		sw.CPU.RaiseInterrupt(v)
	}
}
