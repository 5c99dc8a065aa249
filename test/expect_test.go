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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherswan/test"
)

func TestSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
}

func TestFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, uint8(0x90), 0x90)
	test.ExpectInequality(t, "a", "b")
	test.DemandEquality(t, true, true)
}

func TestPanic(t *testing.T) {
	test.ExpectPanic(t, func() { panic("test") })
}
