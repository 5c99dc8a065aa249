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

// Package rtc implements the real-time clock found in some cartridges. All
// date and time fields are stored in BCD.
//
// The RTC is accessed through a command port and a data port. Writing the
// command port selects a command and the direction of the transfer. The
// payload for the command is then transferred one byte at a time through the
// data port, each byte being committed when the command port is read.
package rtc

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/clocks"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
)

// CyclesInSecond is the number of CPU cycles in one second.
const CyclesInSecond = clocks.CyclesPerSecond

// Command selects the payload accessed through the data port.
type Command uint8

// List of valid Command values.
const (
	CmdReset Command = iota
	CmdStatus
	CmdDateTime
	CmdTime
	CmdAlarm
	CmdInvalid
	CmdTestStart
	CmdTestEnd
)

func (c Command) String() string {
	switch c {
	case CmdReset:
		return "reset"
	case CmdStatus:
		return "status"
	case CmdDateTime:
		return "date-time"
	case CmdTime:
		return "time"
	case CmdAlarm:
		return "alarm"
	case CmdInvalid:
		return "invalid"
	case CmdTestStart:
		return "test start"
	case CmdTestEnd:
		return "test end"
	}
	return "unknown"
}

// number of payload bytes for each command
var payloadLength = [8]int{0, 1, 7, 3, 2, 1, 0, 0}

// Bits in the status register.
const (
	statusPower = 0x80
	status24h   = 0x40
	statusINTAE = 0x20
	statusINTME = 0x08
	statusINTFE = 0x02
)

// Bits in the value read from the command port.
const (
	commandReady = 0x80
	commandMore  = 0x10
)

// RTC is the real-time clock.
type RTC struct {
	env *environment.Environment

	Year      uint8
	Month     uint8
	Day       uint8
	DayOfWeek uint8
	Hour      uint8
	Minute    uint8
	Second    uint8

	PM     bool
	Mode24 bool
	Power  bool

	// interrupt enable flags
	AlarmInt  bool
	MinuteInt bool
	FreqInt   bool

	// the alarm register. the low byte is the hour and the high byte is the
	// minute. in frequency mode the whole register is the frequency
	Alarm uint16

	Command Command
	Read    bool
	Data    uint8
	Index   int

	// cycles accumulated towards the next second
	Cycles int
}

// NewRTC is the preferred method of initialisation for the RTC type. If the
// rtc.hostclock preference is set the date and time are taken from the host.
func NewRTC(env *environment.Environment) *RTC {
	rtc := &RTC{env: env}
	rtc.reset()
	if env != nil && env.Prefs.RTCHostClock.Get().(bool) {
		rtc.SetTime(time.Now())
	}
	return rtc
}

func (rtc *RTC) String() string {
	s := fmt.Sprintf("20%02x-%02x-%02x %02x:%02x:%02x", rtc.Year, rtc.Month, rtc.Day, rtc.Hour, rtc.Minute, rtc.Second)
	if !rtc.Mode24 {
		if rtc.PM {
			s = fmt.Sprintf("%s PM", s)
		} else {
			s = fmt.Sprintf("%s AM", s)
		}
	}
	return s
}

// Snapshot creates a copy of the RTC in its current state.
func (rtc *RTC) Snapshot() *RTC {
	cp := *rtc
	cp.env = nil
	return &cp
}

// Reset the command interface. The date and time are not changed.
func (rtc *RTC) Reset() {
	rtc.Command = CmdReset
	rtc.Read = false
	rtc.Data = 0
	rtc.Index = 0
}

// reset is the effect of the reset command.
func (rtc *RTC) reset() {
	rtc.Year = 0x00
	rtc.Month = 0x01
	rtc.Day = 0x01
	rtc.DayOfWeek = 0x00
	rtc.Hour = 0x00
	rtc.Minute = 0x00
	rtc.Second = 0x00
	rtc.PM = false
	rtc.Mode24 = false
	rtc.Power = false
	rtc.AlarmInt = false
	rtc.MinuteInt = false
	rtc.FreqInt = false
	rtc.Alarm = 0
	rtc.Cycles = 0
}

// SetTime sets the date and time from a time.Time value. Only years between
// 2000 and 2099 can be represented. The RTC is put into 24 hour mode.
func (rtc *RTC) SetTime(t time.Time) {
	rtc.Year = toBCD(t.Year() % 100)
	rtc.Month = toBCD(int(t.Month()))
	rtc.Day = toBCD(t.Day())
	rtc.DayOfWeek = toBCD(int(t.Weekday()))
	rtc.Hour = toBCD(t.Hour())
	rtc.Minute = toBCD(t.Minute())
	rtc.Second = toBCD(t.Second())
	rtc.Mode24 = true
	rtc.PM = t.Hour() >= 12
}

// ReadPort implements the bus.PortDevice interface.
func (rtc *RTC) ReadPort(port uint8) uint8 {
	switch port {
	case addresses.RTCCommand:
		rtc.access()

		status := commandReady | uint8(rtc.Command)<<1
		if rtc.Read {
			status |= 0x01
		}

		n := payloadLength[rtc.Command]
		if rtc.Index < n-1 {
			status |= commandMore
		}
		if n > 0 {
			rtc.Index = (rtc.Index + 1) % n
		}

		return status

	case addresses.RTCData:
		return rtc.Data
	}
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface.
func (rtc *RTC) WritePort(port uint8, data uint8) {
	switch port {
	case addresses.RTCCommand:
		rtc.Read = data&0x01 == 0x01
		rtc.Command = Command((data >> 1) & 0x07)
		rtc.Index = 0
		rtc.access()
	case addresses.RTCData:
		rtc.Data = data
	}
}

// access transfers the payload byte at the current index in the direction
// of the current command.
func (rtc *RTC) access() {
	switch rtc.Command {
	case CmdReset:
		rtc.reset()
	case CmdInvalid:
		if rtc.Read {
			rtc.Data = 0xff
		}
		rtc.env.Logf("rtc", "access with invalid command")
	case CmdTestStart, CmdTestEnd:
	default:
		if rtc.Read {
			rtc.Data = rtc.payload(rtc.Index)
		} else {
			rtc.setPayload(rtc.Index, rtc.Data)
		}
	}
}

func (rtc *RTC) hourByte() uint8 {
	if rtc.PM {
		return rtc.Hour | 0x80
	}
	return rtc.Hour
}

func (rtc *RTC) setHourByte(v uint8) {
	rtc.PM = v&0x80 == 0x80
	rtc.Hour = v & 0x3f
}

func (rtc *RTC) status() uint8 {
	var s uint8
	if rtc.Power {
		s |= statusPower
	}
	if rtc.Mode24 {
		s |= status24h
	}
	if rtc.AlarmInt {
		s |= statusINTAE
	}
	if rtc.MinuteInt {
		s |= statusINTME
	}
	if rtc.FreqInt {
		s |= statusINTFE
	}
	return s
}

func (rtc *RTC) setStatus(v uint8) {
	rtc.Power = v&statusPower == statusPower
	rtc.Mode24 = v&status24h == status24h
	rtc.AlarmInt = v&statusINTAE == statusINTAE
	rtc.MinuteInt = v&statusINTME == statusINTME
	rtc.FreqInt = v&statusINTFE == statusINTFE
}

// time fields for the date-time and time commands. the time command is the
// last three fields
func (rtc *RTC) fields() []*uint8 {
	return []*uint8{&rtc.Year, &rtc.Month, &rtc.Day, &rtc.DayOfWeek, nil, &rtc.Minute, &rtc.Second}
}

func (rtc *RTC) payload(idx int) uint8 {
	switch rtc.Command {
	case CmdStatus:
		return rtc.status()
	case CmdDateTime, CmdTime:
		if rtc.Command == CmdTime {
			idx += 4
		}
		if f := rtc.fields()[idx]; f != nil {
			return *f
		}
		return rtc.hourByte()
	case CmdAlarm:
		return uint8(rtc.Alarm >> (8 * idx))
	}
	return 0
}

func (rtc *RTC) setPayload(idx int, v uint8) {
	switch rtc.Command {
	case CmdStatus:
		rtc.setStatus(v)
	case CmdDateTime, CmdTime:
		if rtc.Command == CmdTime {
			idx += 4
		}
		if f := rtc.fields()[idx]; f != nil {
			*f = v
		} else {
			rtc.setHourByte(v)
		}
	case CmdAlarm:
		if idx == 0 {
			rtc.Alarm = rtc.Alarm&0xff00 | uint16(v)
		} else {
			rtc.Alarm = rtc.Alarm&0x00ff | uint16(v)<<8
		}
	}
}

// Step advances the RTC by the number of cycles. Returns true if an interrupt
// has been requested.
func (rtc *RTC) Step(cycles int) bool {
	var irq bool

	rtc.Cycles += cycles
	for rtc.Cycles >= CyclesInSecond {
		rtc.Cycles -= CyclesInSecond
		rtc.tick()
		irq = rtc.interrupt() || irq
	}

	return irq
}

// tick advances the time by one second.
func (rtc *RTC) tick() {
	rtc.Second = incBCD(rtc.Second)
	if rtc.Second < 0x60 {
		return
	}
	rtc.Second = 0x00

	rtc.Minute = incBCD(rtc.Minute)
	if rtc.Minute < 0x60 {
		return
	}
	rtc.Minute = 0x00

	rtc.Hour = incBCD(rtc.Hour)
	if rtc.Mode24 {
		if rtc.Hour < 0x24 {
			rtc.PM = rtc.Hour >= 0x12
			return
		}
		rtc.Hour = 0x00
		rtc.PM = false
	} else {
		if rtc.Hour < 0x12 {
			return
		}
		rtc.Hour = 0x00
		rtc.PM = !rtc.PM
		if rtc.PM {
			return
		}
	}

	rtc.DayOfWeek = (rtc.DayOfWeek + 1) % 7

	rtc.Day = incBCD(rtc.Day)
	if fromBCD(rtc.Day) <= daysInMonth(rtc.Month, rtc.Year) {
		return
	}
	rtc.Day = 0x01

	rtc.Month = incBCD(rtc.Month)
	if rtc.Month <= 0x12 {
		return
	}
	rtc.Month = 0x01

	rtc.Year = incBCD(rtc.Year)
	if rtc.Year > 0x99 {
		rtc.Year = 0x00
	}
}

// interrupt is called after every second update. Only the alarm mode and the
// frequency mode raise interrupts. Other combinations of the interrupt enable
// flags do nothing.
func (rtc *RTC) interrupt() bool {
	switch {
	case rtc.AlarmInt && !rtc.MinuteInt && !rtc.FreqInt:
		return rtc.Second == 0x00 &&
			rtc.hourByte() == uint8(rtc.Alarm) &&
			rtc.Minute == uint8(rtc.Alarm>>8)
	case rtc.FreqInt && !rtc.AlarmInt && !rtc.MinuteInt:
		return rtc.Alarm != 0
	}
	return false
}
