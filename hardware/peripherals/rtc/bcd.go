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

package rtc

// toBCD converts a binary value in the range 0 to 99 to BCD.
func toBCD(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}

// fromBCD converts a BCD value to binary. Invalid digits are not corrected.
func fromBCD(v uint8) int {
	return int(v>>4)*10 + int(v&0x0f)
}

// incBCD returns the BCD value plus one.
func incBCD(v uint8) uint8 {
	return toBCD(fromBCD(v) + 1)
}

// isLeap uses the gregorian rule. the year is a BCD value in the range 00 to
// 99 and represents the years 2000 to 2099.
func isLeap(year uint8) bool {
	y := 2000 + fromBCD(year)
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// daysInMonth returns the number of days in the BCD month. An invalid month
// has 31 days.
func daysInMonth(month uint8, year uint8) int {
	switch fromBCD(month) {
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}
