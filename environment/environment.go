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

// Package environment provides the context for an emulation: its name, its
// preferences and the log that the hardware writes to.
package environment

import (
	"github.com/jetsetilly/gopherswan/hardware/preferences"
	"github.com/jetsetilly/gopherswan/logger"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// the log used by the hardware. can be nil
	Log *logger.Logger
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil and a new Preferences instance will be
// created. Providing a non-nil value allows the preferences of more than one
// emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences, log *logger.Logger) (*Environment, error) {
	env := &Environment{
		Label: label,
		Log:   log,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Prefs.Reseed(1)
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation writes to the log.
func (env *Environment) AllowLogging() bool {
	return env == nil || env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// Logf writes an entry to the environment's log. A nil environment is
// allowed and the entry is discarded.
func (env *Environment) Logf(tag string, detail string, args ...any) {
	if env == nil {
		return
	}
	env.Log.Logf(env, tag, detail, args...)
}
