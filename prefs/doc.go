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

// Package prefs facilitates the storage of preferred values. Preference values
// are typed (Bool, Int and String) and are grouped with a Collection, keyed by
// a dotted name.
//
//	var c prefs.Collection
//	var trace prefs.Bool
//	c.Add("cpu.trace", &trace)
//
// Preferences can be overridden from the command line with a string of the
// form "key::value; key::value". Calling PushCommandLineStack() with such a
// string followed by Collection.ApplyCommandLine() sets the values of any
// matching preference. Entries are removed from the stack as they are used.
//
// Persisting preferences to disk is the responsibility of the caller. The
// String() function of the Collection type is suitable for that purpose.
package prefs
