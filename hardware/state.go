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
	"github.com/jetsetilly/gopherswan/hardware/cpu"
	"github.com/jetsetilly/gopherswan/hardware/dma"
	"github.com/jetsetilly/gopherswan/hardware/interrupts"
	"github.com/jetsetilly/gopherswan/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherswan/hardware/serial"
)

// State stores copies of the console sub-systems. It is produced by the
// State() function and is intended for inspection by debugging tools. The
// copies are not attached to a bus and cannot be stepped.
//
// Internal RAM and ROM are not part of the state.
type State struct {
	CPU        *cpu.CPU
	Cart       *cartridge.Cartridge
	DMA        *dma.General
	SoundDMA   *dma.Sound
	Serial     *serial.Serial
	Interrupts *interrupts.Controller
	Cycles     int64
}

// State returns a snapshot of the console sub-systems.
func (sw *Swan) State() *State {
	return &State{
		CPU:        sw.CPU.Snapshot(),
		Cart:       sw.Mem.Cart.Snapshot(),
		DMA:        sw.DMA.Snapshot(),
		SoundDMA:   sw.SoundDMA.Snapshot(),
		Serial:     sw.Serial.Snapshot(),
		Interrupts: sw.Interrupts.Snapshot(),
		Cycles:     sw.Cycles,
	}
}
