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
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// pref is implemented by all preference types.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Bool
	hook  func(value Value) error
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) sets the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool

	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHook sets the callback function called before the value is changed. If
// the hook returns an error the value is not changed.
func (p *Bool) SetHook(f func(value Value) error) {
	p.hook = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value atomic.Int64
	hook  func(value Value) error
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.value.Load())
}

// Set new value to Int type. New value can be an int or a string.
func (p *Int) Set(v Value) error {
	var nv int

	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(int64(nv))
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHook sets the callback function called before the value is changed. If
// the hook returns an error the value is not changed.
func (p *Int) SetHook(f func(value Value) error) {
	p.hook = f
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.Value // string
	hook  func(value Value) error
}

func (p *String) String() string {
	if v := p.value.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Set new value to String type. The value is converted with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHook sets the callback function called before the value is changed. If
// the hook returns an error the value is not changed.
func (p *String) SetHook(f func(value Value) error) {
	p.hook = f
}
