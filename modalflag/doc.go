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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. Sub-modes are added with AddSubModes() before the call to
// Parse(). The first sub-mode is the default mode and is selected if the
// first non-flag argument does not name a sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		verbose := md.AddBool("verbose", false, "print more information")
//		...
//	}
//
// Flags for the selected mode are added after a call to NewMode() and are
// parsed with another call to Parse(). Non-flag arguments are then available
// through RemainingArgs() and GetArg().
package modalflag
