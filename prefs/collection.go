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

package prefs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateKey is returned by Add() when the key has already been used.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrUnknownKey is returned by Set() when there is no preference for the key.
var ErrUnknownKey = errors.New("unknown key")

// Collection is a keyed group of preference values. The zero value is ready
// to use.
type Collection struct {
	entries map[string]pref
}

// Add a preference value to the collection.
func (c *Collection) Add(key string, p pref) error {
	if c.entries == nil {
		c.entries = make(map[string]pref)
	}
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: %w: %s", ErrDuplicateKey, key)
	}
	c.entries[key] = p
	return nil
}

// Set the value of the preference with the key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("prefs: %w: %s", ErrUnknownKey, key)
	}
	return p.Set(v)
}

// Reset every preference in the collection to its zero value.
func (c *Collection) Reset() error {
	for _, p := range c.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCommandLine sets the value of every preference in the collection that
// has an entry at the top of the command line stack.
func (c *Collection) ApplyCommandLine() error {
	for k, p := range c.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// String returns the collection as a series of key::value lines, sorted by
// key.
func (c *Collection) String() string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, c.entries[k]))
	}
	return s.String()
}
