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

package logger

import (
	"io"
	"strings"
)

const (
	penTag    = "\033[36m"
	penRepeat = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. It is intended to
// be used as the echo writer of a Logger when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := strings.TrimSuffix(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	b := strings.Builder{}
	b.WriteString(penTag)
	b.WriteString(tag)
	b.WriteString(penNormal)
	b.WriteString(": ")

	if i := strings.LastIndex(detail, " (repeat x"); i >= 0 {
		b.WriteString(detail[:i])
		b.WriteString(penRepeat)
		b.WriteString(detail[i:])
		b.WriteString(penNormal)
	} else {
		b.WriteString(detail)
	}
	b.WriteString("\n")

	_, err := c.out.Write([]byte(b.String()))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
