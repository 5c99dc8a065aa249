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

// Package preferences holds the preferences for the emulated hardware.
package preferences

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/gopherswan/prefs"
)

// DefaultSerialTickCycles is the number of CPU cycles in each serial tick.
const DefaultSerialTickCycles = 80

// Preferences for the emulated hardware.
type Preferences struct {
	col prefs.Collection

	// initialise hardware to unknown state after reset. internal RAM and the
	// general purpose registers are affected
	RandomState prefs.Bool

	// set the RTC from the host clock when the RTC is reset
	RTCHostClock prefs.Bool

	// number of CPU cycles in each serial tick
	SerialTickCycles prefs.Int

	// write a line for every executed instruction to the trace file
	CPUTrace prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed uint64
}

func (p *Preferences) String() string {
	return p.col.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Reseed(0)

	p.SerialTickCycles.SetHook(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return errors.New("serial tick cycles must be greater than zero")
		}
		return nil
	})

	if err := p.col.Add("hardware.randstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.col.Add("rtc.hostclock", &p.RTCHostClock); err != nil {
		return nil, err
	}
	if err := p.col.Add("serial.tickcycles", &p.SerialTickCycles); err != nil {
		return nil, err
	}
	if err := p.col.Add("cpu.trace", &p.CPUTrace); err != nil {
		return nil, err
	}

	p.SetDefaults()

	if err := p.col.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.RTCHostClock.Set(false)
	p.SerialTickCycles.Set(DefaultSerialTickCycles)
	p.CPUTrace.Set(false)
}

// Set the preference with the key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.col.Set(key, v)
}

// Reseed the random number source. A seed of zero is replaced by a value
// taken from the host clock.
func (p *Preferences) Reseed(seed uint64) {
	if seed == 0 {
		p.RandSeed = uint64(time.Now().UnixNano())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewPCG(p.RandSeed, p.RandSeed>>32))
}
