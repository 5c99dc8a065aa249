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

package cartridgeloader

import (
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by the Loader type.
var (
	ErrNoFilename        = errors.New("no filename")
	ErrUnexpectedHash    = errors.New("unexpected hash value")
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
	ErrNoSave            = errors.New("no save file")
)

// Loader is used to specify the cartridge to load into the console.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// expected SHA1 hash of the loaded cartridge. empty string indicates that
	// the hash is unknown and need not be validated. after a load operation
	// the value will be the hash of the loaded data
	Hash string

	// MD5 hash of the loaded data. commonly used by ROM databases
	HashMD5 string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	if cl.Filename == "" {
		return fmt.Errorf("cartridgeloader: %w", ErrNoFilename)
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("cartridgeloader: %s", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	case "file", "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			cl.Data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return fmt.Errorf("cartridgeloader: %w", err)
			}
			break
		}
		return fmt.Errorf("cartridgeloader: %w (%s)", ErrUnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return fmt.Errorf("cartridgeloader: %w", ErrUnexpectedHash)
	}

	cl.Hash = hash
	cl.HashMD5 = fmt.Sprintf("%x", md5.Sum(cl.Data))

	return nil
}

// SaveFilename returns the name of the save file for the cartridge. The save
// file is next to the cartridge file with the SaveExtension.
func (cl Loader) SaveFilename() string {
	return strings.TrimSuffix(cl.Filename, filepath.Ext(cl.Filename)) + SaveExtension
}

// LoadSave returns the contents of the save file. Returns ErrNoSave if there
// is no save file.
func (cl Loader) LoadSave() ([]uint8, error) {
	if cl.Filename == "" {
		return nil, fmt.Errorf("cartridgeloader: %w", ErrNoFilename)
	}

	d, err := os.ReadFile(cl.SaveFilename())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cartridgeloader: %w", ErrNoSave)
		}
		return nil, fmt.Errorf("cartridgeloader: %w", err)
	}

	return d, nil
}

// WriteSave replaces the contents of the save file.
func (cl Loader) WriteSave(data []uint8) error {
	if cl.Filename == "" {
		return fmt.Errorf("cartridgeloader: %w", ErrNoFilename)
	}

	if err := os.WriteFile(cl.SaveFilename(), data, 0o644); err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	return nil
}
