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

package registers

import "fmt"

// Register is a 16 bit register.
type Register struct {
	label string
	value uint16
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint16, label string) Register {
	return Register{label: label, value: val}
}

// Label returns the canonical name for the register.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Load a value into the register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// Add a value to the register. The result wraps at 16 bits.
func (r *Register) Add(val uint16) {
	r.value += val
}

// Lo returns the low byte of the register.
func (r Register) Lo() uint8 {
	return uint8(r.value)
}

// Hi returns the high byte of the register.
func (r Register) Hi() uint8 {
	return uint8(r.value >> 8)
}

// LoadLo loads a value into the low byte of the register.
func (r *Register) LoadLo(val uint8) {
	r.value = r.value&0xff00 | uint16(val)
}

// LoadHi loads a value into the high byte of the register.
func (r *Register) LoadHi(val uint8) {
	r.value = r.value&0x00ff | uint16(val)<<8
}
