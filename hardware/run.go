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

	"github.com/jetsetilly/gopherswan/govern"
)

// PerformanceBrake is the number of instructions between calls to the
// continue check function in Run().
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called every PerformanceBrake instructions and the emulation
// stops when it returns govern.Ending or an error. A nil function runs the
// emulation forever.
func (sw *Swan) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			for range PerformanceBrake {
				sw.Step()
			}
		case govern.Paused:
		default:
			return fmt.Errorf("swan: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the emulation until at least the number of cycles have
// elapsed. The instruction that crosses the limit is completed.
func (sw *Swan) RunForCycles(cycles int64) {
	target := sw.Cycles + cycles
	for sw.Cycles < target {
		sw.Step()
	}
}
