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

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherswan/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherswan/test"
)

// writeRom creates a 128KB ROM file in a temporary directory. The program
// starts at F000:0000.
func writeRom(t *testing.T, save cartridge.SaveType, program ...uint8) string {
	t.Helper()

	const size = 0x20000
	data := make([]uint8, size)
	copy(data[0x10000:], program)

	// JMP F000:0000 at FFFF:0000
	copy(data[size-0x10:], []uint8{0xea, 0x00, 0x00, 0x00, 0xf0})

	f := data[size-cartridge.FooterSize:]
	f[0] = 0x01
	f[2] = 0x23
	f[5] = uint8(save)
	binary.LittleEndian.PutUint16(f[8:], cartridge.Checksum(data))

	fn := filepath.Join(t.TempDir(), "game.ws")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

// infinite loop
var spin = []uint8{0xeb, 0xfe}

func TestHelp(t *testing.T) {
	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &w), 0)
	test.ExpectEquality(t, strings.Contains(w.String(), "RUN, INFO"), true)
}

func TestVersion(t *testing.T) {
	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"-version"}, &w), 0)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "Gopherswan "), true)
}

func TestMissingCartridge(t *testing.T) {
	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"info"}, &w), 20)
	test.ExpectEquality(t, strings.Contains(w.String(), "cartridge required"), true)

	w.Reset()
	test.ExpectEquality(t, launch([]string{"-badflag"}, &w), 20)
}

func TestInfo(t *testing.T) {
	fn := writeRom(t, cartridge.SaveSram32KB, spin...)

	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"info", fn}, &w), 0)

	s := w.String()
	test.ExpectEquality(t, strings.HasPrefix(s, "game\n"), true)
	test.ExpectEquality(t, strings.Contains(s, "sha1: "), true)
	test.ExpectEquality(t, strings.Contains(s, "md5: "), true)
	test.ExpectEquality(t, strings.Contains(s, "publisher: 01"), true)
	test.ExpectEquality(t, strings.Contains(s, "game id: 23"), true)
}

func TestRunSave(t *testing.T) {
	fn := writeRom(t, cartridge.SaveSram32KB,
		0xb8, 0x00, 0x10, // MOV AX, 1000h
		0x8e, 0xd8, // MOV DS, AX
		0xc6, 0x06, 0x00, 0x00, 0x5a, // MOV byte [0000], 5Ah
		0xeb, 0xfe, // JMP $
	)

	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"-cycles", "1000", fn}, &w), 0)
	test.ExpectEquality(t, strings.Contains(w.String(), "cycles"), true)

	sav := strings.TrimSuffix(fn, ".ws") + ".sav"
	d, err := os.ReadFile(sav)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 0x8000)
	test.ExpectEquality(t, d[0], 0x5a)

	// the save file is loaded on the next run. the program writes the same
	// value so change the file to check that it is loaded
	d[1] = 0xa5
	test.DemandSuccess(t, os.WriteFile(sav, d, 0o644))
	test.ExpectEquality(t, launch([]string{"run", "-cycles", "1000", fn}, &w), 0)
	d, err = os.ReadFile(sav)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[1], 0xa5)
}

func TestRunOutputs(t *testing.T) {
	fn := writeRom(t, cartridge.SaveNone,
		0xe6, 0x95, // OUT 95h, AL
		0xfe, 0xc0, // INC AL
		0xeb, 0xfa, // JMP -6
	)

	dir := t.TempDir()
	wav := filepath.Join(dir, "out.wav")
	trace := filepath.Join(dir, "trace.txt")
	viz := filepath.Join(dir, "state.dot")

	var w strings.Builder
	r := launch([]string{"run", "-cycles", "2000", "-wav", wav, "-trace", trace, "-memviz", viz, fn}, &w)
	test.ExpectEquality(t, r, 0)

	for _, f := range []string{wav, trace, viz} {
		s, err := os.Stat(f)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, s.Size() > 0, true)
	}

	d, err := os.ReadFile(trace)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(string(d), "ffff:0000 ea"), true)
	test.ExpectEquality(t, strings.Contains(string(d), "f000:0000 e6"), true)

	// no save file for a cartridge without a save type
	_, err = os.Stat(strings.TrimSuffix(fn, ".ws") + ".sav")
	test.ExpectEquality(t, os.IsNotExist(err), true)
}

func TestRunPrefs(t *testing.T) {
	fn := writeRom(t, cartridge.SaveNone, spin...)

	var w strings.Builder
	r := launch([]string{"-cycles", "100", "-prefs", "serial.tickcycles::0", fn}, &w)
	test.ExpectEquality(t, r, 20)
}
