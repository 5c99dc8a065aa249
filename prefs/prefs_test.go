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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherswan/prefs"
	"github.com/jetsetilly/gopherswan/test"
)

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("nonsense"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectFailure(t, b.Set(10))

	var i prefs.Int
	test.ExpectSuccess(t, i.Set("80"))
	test.ExpectEquality(t, i.Get().(int), 80)
	test.ExpectFailure(t, i.Set("eighty"))
	test.ExpectEquality(t, i.Get().(int), 80)

	var s prefs.String
	test.ExpectSuccess(t, s.Set("trace.log"))
	test.ExpectEquality(t, s.String(), "trace.log")
}

func TestHook(t *testing.T) {
	var i prefs.Int
	i.SetHook(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
	test.ExpectSuccess(t, i.Set(10))
	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get().(int), 10)
}

func TestCollection(t *testing.T) {
	var c prefs.Collection
	var b prefs.Bool
	var i prefs.Int

	test.ExpectSuccess(t, c.Add("rtc.hostclock", &b))
	test.ExpectSuccess(t, c.Add("serial.tickcycles", &i))
	test.ExpectFailure(t, c.Add("rtc.hostclock", &b))

	test.ExpectSuccess(t, c.Set("serial.tickcycles", 80))
	test.ExpectFailure(t, c.Set("unknown", 1))
	test.ExpectEquality(t, c.String(), "rtc.hostclock :: false\nserial.tickcycles :: 80\n")
}

func TestCommandLine(t *testing.T) {
	var c prefs.Collection
	var b prefs.Bool
	var i prefs.Int
	test.DemandSuccess(t, c.Add("rtc.hostclock", &b))
	test.DemandSuccess(t, c.Add("serial.tickcycles", &i))

	prefs.PushCommandLineStack("rtc.hostclock::true; serial.tickcycles::40; other::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 40)

	// unused entries are returned on pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
