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

// Package clocks defines the constant values that define the speed of the main
// clock in the console. The CPU and every peripheral are stepped in units of
// this clock.
package clocks

// CPU clock in MHz
const CPU = 3.072

// CyclesPerSecond is the number of CPU cycles in one second of emulated time.
const CyclesPerSecond = 3072000

// Seconds converts a cycle count to the number of emulated seconds.
func Seconds(cycles int64) float64 {
	return float64(cycles) / CyclesPerSecond
}
