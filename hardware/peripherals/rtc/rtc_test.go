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

package rtc_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
	"github.com/jetsetilly/gopherswan/hardware/peripherals/rtc"
	"github.com/jetsetilly/gopherswan/test"
)

func command(r *rtc.RTC, cmd rtc.Command, read bool) {
	v := uint8(cmd) << 1
	if read {
		v |= 0x01
	}
	r.WritePort(addresses.RTCCommand, v)
}

func TestInterfaces(t *testing.T) {
	test.ExpectImplements[bus.PortDevice](t, rtc.NewRTC(nil))
}

func TestMinute(t *testing.T) {
	r := rtc.NewRTC(nil)
	for range 60 {
		test.ExpectEquality(t, r.Step(rtc.CyclesInSecond), false)
	}
	test.ExpectEquality(t, r.Second, 0x00)
	test.ExpectEquality(t, r.Minute, 0x01)
}

func TestDay(t *testing.T) {
	r := rtc.NewRTC(nil)
	day := r.Day
	r.Step(rtc.CyclesInSecond * 86400)
	test.ExpectEquality(t, r.Day, day+1)
	test.ExpectEquality(t, r.Hour, 0x00)
	test.ExpectEquality(t, r.PM, false)
	test.ExpectEquality(t, r.DayOfWeek, 0x01)
}

func TestPartialSecond(t *testing.T) {
	r := rtc.NewRTC(nil)
	r.Step(rtc.CyclesInSecond - 1)
	test.ExpectEquality(t, r.Second, 0x00)
	r.Step(1)
	test.ExpectEquality(t, r.Second, 0x01)
	test.ExpectEquality(t, r.Cycles, 0)
}

func TestTwelveHour(t *testing.T) {
	r := rtc.NewRTC(nil)
	r.Hour = 0x11
	r.Minute = 0x59
	r.Second = 0x59
	r.Step(rtc.CyclesInSecond)
	test.ExpectEquality(t, r.Hour, 0x00)
	test.ExpectEquality(t, r.PM, true)
	test.ExpectEquality(t, r.Day, 0x01)
}

func TestCalendar(t *testing.T) {
	lastSecond := func(r *rtc.RTC) {
		r.Mode24 = true
		r.Hour = 0x23
		r.Minute = 0x59
		r.Second = 0x59
		r.Step(rtc.CyclesInSecond)
	}

	r := rtc.NewRTC(nil)

	// 2024 is a leap year
	r.Year, r.Month, r.Day = 0x24, 0x02, 0x28
	lastSecond(r)
	test.ExpectEquality(t, r.Month, 0x02)
	test.ExpectEquality(t, r.Day, 0x29)
	lastSecond(r)
	test.ExpectEquality(t, r.Month, 0x03)
	test.ExpectEquality(t, r.Day, 0x01)

	// 2023 is not
	r.Year, r.Month, r.Day = 0x23, 0x02, 0x28
	lastSecond(r)
	test.ExpectEquality(t, r.Month, 0x03)

	// 2000 is divisible by 400
	r.Year, r.Month, r.Day = 0x00, 0x02, 0x28
	lastSecond(r)
	test.ExpectEquality(t, r.Day, 0x29)

	r.Year, r.Month, r.Day = 0x99, 0x12, 0x31
	lastSecond(r)
	test.ExpectEquality(t, r.Year, 0x00)
	test.ExpectEquality(t, r.Month, 0x01)
	test.ExpectEquality(t, r.Day, 0x01)

	r.Month, r.Day = 0x04, 0x30
	lastSecond(r)
	test.ExpectEquality(t, r.Month, 0x05)
}

func TestDateTimeProtocol(t *testing.T) {
	r := rtc.NewRTC(nil)
	r.Year, r.Month, r.Day, r.DayOfWeek = 0x24, 0x07, 0x15, 0x01
	r.Hour, r.Minute, r.Second = 0x09, 0x30, 0x45

	command(r, rtc.CmdDateTime, true)

	expected := []uint8{0x24, 0x07, 0x15, 0x01, 0x09, 0x30, 0x45}
	for i, v := range expected {
		status := r.ReadPort(addresses.RTCCommand)
		test.ExpectEquality(t, r.ReadPort(addresses.RTCData), v, i)
		test.ExpectEquality(t, status&0x80, 0x80, i)
		test.ExpectEquality(t, status&0x10 == 0x10, i < len(expected)-1, i)
		test.ExpectEquality(t, status&0x0f, uint8(rtc.CmdDateTime)<<1|0x01, i)
	}

	// index has wrapped
	test.ExpectEquality(t, r.Index, 0)
}

func TestTimeWrite(t *testing.T) {
	r := rtc.NewRTC(nil)
	command(r, rtc.CmdTime, false)
	for _, v := range []uint8{0x85, 0x10, 0x20} {
		r.WritePort(addresses.RTCData, v)
		r.ReadPort(addresses.RTCCommand)
	}
	test.ExpectEquality(t, r.Hour, 0x05)
	test.ExpectEquality(t, r.PM, true)
	test.ExpectEquality(t, r.Minute, 0x10)
	test.ExpectEquality(t, r.Second, 0x20)
}

func TestStatusAndReset(t *testing.T) {
	r := rtc.NewRTC(nil)
	command(r, rtc.CmdStatus, false)
	r.WritePort(addresses.RTCData, 0x40|0x20)
	r.ReadPort(addresses.RTCCommand)
	test.ExpectEquality(t, r.Mode24, true)
	test.ExpectEquality(t, r.AlarmInt, true)

	command(r, rtc.CmdStatus, true)
	r.ReadPort(addresses.RTCCommand)
	test.ExpectEquality(t, r.ReadPort(addresses.RTCData), 0x60)

	r.Minute = 0x33
	command(r, rtc.CmdReset, false)
	test.ExpectEquality(t, r.Minute, 0x00)
	test.ExpectEquality(t, r.Mode24, false)
}

func TestInvalidCommand(t *testing.T) {
	r := rtc.NewRTC(nil)
	command(r, rtc.CmdInvalid, true)
	r.ReadPort(addresses.RTCCommand)
	test.ExpectEquality(t, r.ReadPort(addresses.RTCData), 0xff)

	// test mode commands do nothing
	r.Minute = 0x12
	command(r, rtc.CmdTestStart, false)
	command(r, rtc.CmdTestEnd, false)
	test.ExpectEquality(t, r.Minute, 0x12)
}

func TestAlarm(t *testing.T) {
	r := rtc.NewRTC(nil)
	r.AlarmInt = true
	r.Hour, r.Minute, r.Second = 0x07, 0x29, 0x59

	// alarm at 07:30
	command(r, rtc.CmdAlarm, false)
	r.WritePort(addresses.RTCData, 0x07)
	r.ReadPort(addresses.RTCCommand)
	r.WritePort(addresses.RTCData, 0x30)
	r.ReadPort(addresses.RTCCommand)
	test.ExpectEquality(t, r.Alarm, 0x3007)

	test.ExpectEquality(t, r.Step(rtc.CyclesInSecond), true)
	test.ExpectEquality(t, r.Step(rtc.CyclesInSecond), false)

	// combined modes are inert
	r.Hour, r.Minute, r.Second = 0x07, 0x29, 0x59
	r.MinuteInt = true
	test.ExpectEquality(t, r.Step(rtc.CyclesInSecond), false)
}

func TestFrequency(t *testing.T) {
	r := rtc.NewRTC(nil)
	r.FreqInt = true
	test.ExpectEquality(t, r.Step(rtc.CyclesInSecond), false)
	r.Alarm = 0x0001
	test.ExpectEquality(t, r.Step(rtc.CyclesInSecond), true)
}

func TestSetTime(t *testing.T) {
	r := rtc.NewRTC(nil)
	r.SetTime(time.Date(2031, time.December, 25, 18, 5, 9, 0, time.UTC))
	test.ExpectEquality(t, r.String(), "2031-12-25 18:05:09")
	test.ExpectEquality(t, r.DayOfWeek, 0x04)
}
