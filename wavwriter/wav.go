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

package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/hardware/clocks"
	"github.com/jetsetilly/gopherswan/hardware/memory/bus"
)

// SampleRate is the rate of the fastest sound DMA setting.
const SampleRate = clocks.CyclesPerSecond / 128

const (
	bitDepth       = 8
	numChannels    = 1
	pcmAudioFormat = 1
)

// WavWriter implements the bus.PortDevice interface.
type WavWriter struct {
	env      *environment.Environment
	filename string
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(env *environment.Environment, filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		env:      env,
		filename: filename,
		buffer:   make([]int, 0, SampleRate),
	}

	return aw, nil
}

// ReadPort implements the bus.PortDevice interface. The sound ports are write
// only.
func (aw *WavWriter) ReadPort(_ uint8) uint8 {
	return bus.IdleValue
}

// WritePort implements the bus.PortDevice interface. Every byte written is a
// sample.
func (aw *WavWriter) WritePort(_ uint8, data uint8) {
	aw.buffer = append(aw.buffer, int(data))
}

// Samples returns the number of samples received.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close writes the buffered samples to the file.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, numChannels, pcmAudioFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	aw.env.Logf("wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
