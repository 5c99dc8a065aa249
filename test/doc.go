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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() function tests for equality between two values of the
// same comparable type. The ExpectSuccess() and ExpectFailure() functions test
// for a "success" value, where success is defined to be a true boolean or a nil
// error, and a "failure" value, which is false or a non-nil error.
//
// The Demand*() functions are equivalent to the Expect*() functions except
// that they stop the test on failure.
//
// All functions accept optional tags which are prefixed to any failure
// message. Tags are useful when a test is performed inside a loop.
package test
