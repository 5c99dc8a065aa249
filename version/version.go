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

// Package version reports the version of the application. The number is set
// at link time. Without it the version is taken from the build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopherswan"

// set with -ldflags "-X github.com/jetsetilly/gopherswan/version.number=v0.1.0"
var number string

// Version returns the version string and the vcs revision. The version is
// "unreleased" for builds with vcs information and no version number, and
// "local" for builds with neither. A modified source tree is indicated by a
// "+dirty" suffix on the revision.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	return version(number, info, ok)
}

func version(number string, info *debug.BuildInfo, ok bool) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

// String returns the application name with the version and revision.
func String() string {
	v, r := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
