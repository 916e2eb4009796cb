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

package memorymap_test

import (
	"testing"

	"github.com/hatless/gopherboy/hardware/memory/memorymap"
	"github.com/hatless/gopherboy/test"
)

func TestMapAddress(t *testing.T) {
	var offset uint16
	var area memorymap.Area

	offset, area = memorymap.MapAddress(0x0000)
	test.Equate(t, offset, 0x0000)
	test.Equate(t, area == memorymap.ROM, true)

	offset, area = memorymap.MapAddress(0x7fff)
	test.Equate(t, offset, 0x7fff)
	test.Equate(t, area == memorymap.ROM, true)

	offset, area = memorymap.MapAddress(0x9fff)
	test.Equate(t, offset, 0x1fff)
	test.Equate(t, area == memorymap.VRAM, true)

	offset, area = memorymap.MapAddress(0xa100)
	test.Equate(t, offset, 0x0100)
	test.Equate(t, area == memorymap.CartRAM, true)

	offset, area = memorymap.MapAddress(0xc000)
	test.Equate(t, offset, 0x0000)
	test.Equate(t, area == memorymap.WRAM, true)

	offset, area = memorymap.MapAddress(0xfe9f)
	test.Equate(t, offset, 0x009f)
	test.Equate(t, area == memorymap.OAM, true)

	offset, area = memorymap.MapAddress(0xff80)
	test.Equate(t, offset, 0x0000)
	test.Equate(t, area == memorymap.HRAM, true)
}

// every echo address resolves to the WRAM area at the fixed alias distance.
func TestEchoAlias(t *testing.T) {
	for addr := uint32(memorymap.OriginEcho); addr <= uint32(memorymap.MemtopEcho); addr++ {
		offset, area := memorymap.MapAddress(uint16(addr))
		test.Equate(t, area == memorymap.WRAM, true)
		test.Equate(t, offset, uint16(addr)-memorymap.OriginEcho)
	}
}

func TestUnusableHole(t *testing.T) {
	for addr := uint32(memorymap.OriginUnusable); addr <= uint32(memorymap.MemtopUnusable); addr++ {
		_, area := memorymap.MapAddress(uint16(addr))
		test.Equate(t, area == memorymap.Unusable, true)
	}
}

// the interrupt enable register aliases the last cell of the I/O block.
func TestInterruptEnableAlias(t *testing.T) {
	offsetIE, areaIE := memorymap.MapAddress(memorymap.AddressIE)
	offsetIO, areaIO := memorymap.MapAddress(memorymap.MemtopIO)
	test.Equate(t, areaIE == areaIO, true)
	test.Equate(t, offsetIE, offsetIO)
}
