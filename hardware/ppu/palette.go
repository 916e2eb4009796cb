// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package ppu

// shades is the fixed four-step greyscale of the original handheld display.
// Shade 0 is the lightest.
var shades = [4][3]uint8{
	{0xff, 0xff, 0xff},
	{0xc0, 0xc0, 0xc0},
	{0x60, 0x60, 0x60},
	{0x00, 0x00, 0x00},
}

// shade resolves a 2-bit colour index through an 8-bit palette register. The
// palette packs four shades at two bits each, index 0 in the low bits.
func shade(palette uint8, index uint8) [3]uint8 {
	return shades[(palette>>(index*2))&0x03]
}
