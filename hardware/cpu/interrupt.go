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

// cycles consumed when servicing an interrupt request
const serviceCycles = 32

// RaiseInterrupt requests an interrupt with the vector. The request is
// serviced at the start of the next call to Step() if the interrupt enable
// flag is set. A request made before a previous request has been serviced
// replaces the previous request.
//
// A request always releases the CPU from the halted state.
func (mc *CPU) RaiseInterrupt(vector uint8) {
	mc.pending = true
	mc.pendingVector = vector
	mc.Halted = false
}

// PendingInterrupt returns the vector of the pending interrupt request. The
// boolean is false if there is no request.
func (mc *CPU) PendingInterrupt() (uint8, bool) {
	return mc.pendingVector, mc.pending
}

// interrupt pushes the flags and the return address and loads CS:IP from
// the vector table.
func (mc *CPU) interrupt(vector uint8) {
	mc.push(mc.Flags.Value())
	mc.push(mc.CS.Value())
	mc.push(mc.IP.Value())

	addr := uint16(vector) * 4
	mc.IP.Load(mc.read16(0, addr))
	mc.CS.Load(mc.read16(0, addr+2))

	mc.Flags.InterruptEnable = false
	mc.Flags.Trap = false
}

// divide error is interrupt zero
func (mc *CPU) divideError() int {
	mc.interrupt(0)
	return 16
}
