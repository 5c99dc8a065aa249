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

package modalflag

import (
	"fmt"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended before it is shown.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

// help returns the complete help message.
func (hw *helpWriter) help(banner string, subModes []string, additionalHelp string) string {
	s := hw.buffer.String()

	usage, flags, _ := strings.Cut(s, "\n")

	if flags == "" && len(subModes) == 0 {
		if banner != "" {
			return fmt.Sprintf("No help available for %s\n", banner)
		}
		return "No help available\n"
	}

	var b strings.Builder

	if banner != "" {
		fmt.Fprintf(&b, "%s for %s mode\n", usage, banner)
	} else {
		fmt.Fprintf(&b, "%s\n", usage)
	}

	b.WriteString(flags)

	if len(subModes) > 0 {
		if flags != "" {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(&b, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(&b, "\n%s\n", additionalHelp)
	}

	return b.String()
}
