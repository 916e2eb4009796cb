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

// Package memorymap holds the address ranges of the console in one place.
// Both the read and the write path of the bus resolve addresses through
// MapAddress(), guaranteeing the two stay consistent.
package memorymap

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "CartRAM"
	case WRAM:
		return "WRAM"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	}

	return "undefined"
}

// The different areas of the address space. Note that the echo region is not
// an area of its own. MapAddress() resolves echo addresses to the WRAM area.
const (
	Undefined Area = iota
	ROM
	VRAM
	CartRAM
	WRAM
	OAM
	Unusable
	IO
	HRAM
)

// The origin and memory top for each area.
const (
	OriginROM      = uint16(0x0000)
	MemtopROM      = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginCartRAM  = uint16(0xa000)
	MemtopCartRAM  = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
)

// AddressIE is the single interrupt enable byte at the very top of the
// address space. The bus stores it in the last cell of the I/O block.
const AddressIE = uint16(0xffff)

// EchoDistance is the fixed distance between an echo address and the WRAM
// cell it aliases.
const EchoDistance = OriginEcho - OriginWRAM

// MapAddress translates a 16-bit address into an offset within the backing
// store of the area it belongs to. Echo addresses map into the WRAM area and
// the interrupt enable address maps to the last cell of the I/O area.
//
// Every address maps to exactly one (offset, area) pair. Addresses in the
// unusable hole return the Unusable area; the offset in that case has no
// backing cell and must not be used as an index.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important. the areas are
	// checked from the bottom of the address space upwards.
	switch {
	case address <= MemtopROM:
		return address, ROM
	case address <= MemtopVRAM:
		return address - OriginVRAM, VRAM
	case address <= MemtopCartRAM:
		return address - OriginCartRAM, CartRAM
	case address <= MemtopWRAM:
		return address - OriginWRAM, WRAM
	case address <= MemtopEcho:
		return address - OriginEcho, WRAM
	case address <= MemtopOAM:
		return address - OriginOAM, OAM
	case address <= MemtopUnusable:
		return 0, Unusable
	case address <= MemtopIO:
		return address - OriginIO, IO
	case address <= MemtopHRAM:
		return address - OriginHRAM, HRAM
	}

	// 0xffff. the interrupt enable register aliases the last I/O cell
	return MemtopIO - OriginIO, IO
}

// IsArea returns true if the address falls inside the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
