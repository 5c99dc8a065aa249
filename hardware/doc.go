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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Swan type is the root of the emulation and contains external references
// to all the sub-systems. From here, the emulation can either be started to
// run continuously (with optional callback to check for continuation); or it
// can be stepped one instruction at a time.
//
// The CPU is the only active component. After every instruction the other
// components are advanced by the number of cycles the instruction consumed.
// This is done by StepPeripherals(), which is exported so that a host loop can
// drive the CPU itself and still keep the peripherals in step.
package hardware
