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
	"fmt"
	"io"
	"strings"
	"time"
)

// Logger is a list of tagged log entries. There is no central logger. Every
// emulation instance owns its own Logger, usually through the environment
// package.
//
// A nil Logger is valid and discards every entry.
type Logger struct {
	maxEntries int
	entries    []Entry

	// entries are written to echo as they are logged. nil for no echo
	echo io.Writer

	// index of the first entry that has not been seen by WriteRecent()
	recent int
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the log. The detail argument is normalised: errors are
// logged with their Error() string, Stringers with their String() and
// everything else with the default formatting verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if l == nil || !allowed(perm) {
		return
	}

	switch d := detail.(type) {
	case string:
		l.log(tag, d)
	case error:
		l.log(tag, d.Error())
	case fmt.Stringer:
		l.log(tag, d.String())
	default:
		l.log(tag, fmt.Sprintf("%v", d))
	}
}

// Logf adds a formatted entry to the log.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if l == nil || !allowed(perm) {
		return
	}
	l.log(tag, fmt.Sprintf(detail, args...))
}

func allowed(perm Permission) bool {
	return perm == Allow || (perm != nil && perm.AllowLogging())
}

func (l *Logger) log(tag, detail string) {
	// newlines would break the one entry per line format of Write()
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == detail {
		e.repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		trim := len(l.entries) - l.maxEntries
		l.entries = l.entries[trim:]
		l.recent -= trim
		if l.recent < 0 {
			l.recent = 0
		}
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	if l == nil {
		return
	}
	l.entries = l.entries[:0]
	l.recent = 0
}

// Write contents of the log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	if l == nil {
		return
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	if l == nil {
		return
	}
	for _, e := range l.entries[l.recent:] {
		io.WriteString(output, e.String())
	}
	l.recent = len(l.entries)
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	if l == nil {
		return
	}

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints log entries to io.Writer as they are added. A nil writer
// turns echoing off.
func (l *Logger) SetEcho(output io.Writer) {
	if l == nil {
		return
	}
	l.echo = output
}

// Entries returns a copy of all entries in the log.
func (l *Logger) Entries() []Entry {
	if l == nil {
		return nil
	}
	c := make([]Entry, len(l.entries))
	copy(c, l.entries)
	return c
}
