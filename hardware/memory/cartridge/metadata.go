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

package cartridge

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// FooterSize is the number of bytes in the metadata footer of a ROM image.
const FooterSize = 10

// SaveType is the kind of save memory in the cartridge.
type SaveType uint8

// List of known SaveType values.
const (
	SaveNone       SaveType = 0x00
	SaveSram8KB    SaveType = 0x01
	SaveSram32KB   SaveType = 0x02
	SaveSram128KB  SaveType = 0x03
	SaveSram256KB  SaveType = 0x04
	SaveSram512KB  SaveType = 0x05
	SaveEeprom1Kb  SaveType = 0x10
	SaveEeprom16Kb SaveType = 0x20
	SaveEeprom8Kb  SaveType = 0x50
)

// size of SRAM for each SRAM save type
var sramSizes = map[SaveType]int{
	SaveSram8KB:   0x2000,
	SaveSram32KB:  0x8000,
	SaveSram128KB: 0x20000,
	SaveSram256KB: 0x40000,
	SaveSram512KB: 0x80000,
}

type eepromGeometry struct {
	cells int
	bits  int
}

// number of cells and address bits for each EEPROM save type
var eepromGeometries = map[SaveType]eepromGeometry{
	SaveEeprom1Kb:  {cells: 64, bits: 6},
	SaveEeprom16Kb: {cells: 1024, bits: 10},
	SaveEeprom8Kb:  {cells: 512, bits: 9},
}

func (st SaveType) String() string {
	switch st {
	case SaveNone:
		return "none"
	case SaveEeprom1Kb:
		return "EEPROM 1Kbit"
	case SaveEeprom16Kb:
		return "EEPROM 16Kbit"
	case SaveEeprom8Kb:
		return "EEPROM 8Kbit"
	}
	if sz, ok := sramSizes[st]; ok {
		return fmt.Sprintf("SRAM %dKB", sz/1024)
	}
	return fmt.Sprintf("unknown (%02x)", uint8(st))
}

// IsSram returns true if the save type is one of the SRAM types.
func (st SaveType) IsSram() bool {
	_, ok := sramSizes[st]
	return ok
}

// IsEeprom returns true if the save type is one of the EEPROM types.
func (st SaveType) IsEeprom() bool {
	_, ok := eepromGeometries[st]
	return ok
}

// Metadata is the information found in the footer of a ROM image.
type Metadata struct {
	PublisherID uint8
	SystemType  uint8
	GameID      uint8
	Revision    uint8
	RomSize     uint8
	SaveType    SaveType
	MiscFlags   uint8
	RTCPresent  bool

	// the checksum stored in the footer and the checksum calculated from
	// the ROM data
	Checksum           uint16
	CalculatedChecksum uint16
}

// parseMetadata reads the footer at the end of data. The length of data must
// be at least FooterSize.
func parseMetadata(data []uint8) Metadata {
	f := data[len(data)-FooterSize:]

	md := Metadata{
		PublisherID: f[0],
		SystemType:  f[1],
		GameID:      f[2],
		Revision:    f[3],
		RomSize:     f[4],
		SaveType:    SaveType(f[5]),
		MiscFlags:   f[6],
		RTCPresent:  f[7] != 0,
		Checksum:    binary.LittleEndian.Uint16(f[8:]),
	}

	md.CalculatedChecksum = Checksum(data)

	return md
}

// Checksum returns the sum of all bytes except the final two, modulo 65536.
func Checksum(data []uint8) uint16 {
	var sum uint16
	for _, v := range data[:len(data)-2] {
		sum += uint16(v)
	}
	return sum
}

// IsChecksumValid returns true if the stored checksum matches the calculated
// checksum.
func (md Metadata) IsChecksumValid() bool {
	return md.Checksum == md.CalculatedChecksum
}

// IsColor returns true if the cartridge requires the colour model.
func (md Metadata) IsColor() bool {
	return md.SystemType&0x01 == 0x01
}

// IsVertical returns true if the game is played with the console held
// vertically.
func (md Metadata) IsVertical() bool {
	return md.MiscFlags&0x01 == 0x01
}

func (md Metadata) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("publisher: %02x\n", md.PublisherID))
	s.WriteString(fmt.Sprintf("game id: %02x (rev %02x)\n", md.GameID, md.Revision))
	if md.IsColor() {
		s.WriteString("system: color\n")
	} else {
		s.WriteString("system: mono\n")
	}
	s.WriteString(fmt.Sprintf("rom size: %02x\n", md.RomSize))
	s.WriteString(fmt.Sprintf("save: %s\n", md.SaveType))
	s.WriteString(fmt.Sprintf("rtc: %v\n", md.RTCPresent))
	if md.IsVertical() {
		s.WriteString("orientation: vertical\n")
	} else {
		s.WriteString("orientation: horizontal\n")
	}
	if md.IsChecksumValid() {
		s.WriteString(fmt.Sprintf("checksum: %04x", md.Checksum))
	} else {
		s.WriteString(fmt.Sprintf("checksum: %04x (calculated %04x)", md.Checksum, md.CalculatedChecksum))
	}
	return s.String()
}
