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

package memory

import (
	"fmt"

	"github.com/hatless/gopherboy/hardware/memory/cartridge"
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
)

// Bus presents a monolithic representation of system memory to the CPU. The
// CPU only ever accesses memory through an instance of this structure. Other
// parts of the system, the video chip in particular, read the backing arrays
// directly.
type Bus struct {
	Cart *cartridge.Cartridge

	VRAM []uint8
	WRAM []uint8
	OAM  []uint8
	IO   []uint8
	HRAM []uint8

	// live button state. bit clear means the button is pressed. reads of
	// the joypad address return this byte rather than the I/O cell
	joypad uint8
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	bus := &Bus{
		Cart: cartridge.NewCartridge(),
		VRAM: make([]uint8, memorymap.MemtopVRAM-memorymap.OriginVRAM+1),
		WRAM: make([]uint8, memorymap.MemtopWRAM-memorymap.OriginWRAM+1),
		OAM:  make([]uint8, memorymap.MemtopOAM-memorymap.OriginOAM+1),
		IO:   make([]uint8, memorymap.MemtopIO-memorymap.OriginIO+1),
		HRAM: make([]uint8, memorymap.MemtopHRAM-memorymap.OriginHRAM+1),
	}
	bus.Reset()
	return bus
}

func (bus *Bus) String() string {
	return fmt.Sprintf("cartridge: %s", bus.Cart.String())
}

// Reset the bus to power-on defaults. The attached cartridge stays attached
// but its bank-select state returns to power-on defaults too.
func (bus *Bus) Reset() {
	for i := range bus.VRAM {
		bus.VRAM[i] = 0
	}
	for i := range bus.WRAM {
		bus.WRAM[i] = 0
	}
	for i := range bus.OAM {
		bus.OAM[i] = 0
	}
	for i := range bus.IO {
		bus.IO[i] = 0
	}
	for i := range bus.HRAM {
		bus.HRAM[i] = 0
	}
	bus.joypad = 0xff
	bus.Cart.Reset()
}

// Read an 8-bit value from the specified address. Every address returns a
// value. Addresses in the unusable hole read as 0xff.
func (bus *Bus) Read(address uint16) uint8 {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.ROM:
		return bus.Cart.Read(offset)
	case memorymap.VRAM:
		return bus.VRAM[offset]
	case memorymap.CartRAM:
		return bus.Cart.ReadRAM(offset)
	case memorymap.WRAM:
		return bus.WRAM[offset]
	case memorymap.OAM:
		return bus.OAM[offset]
	case memorymap.IO:
		if address == memorymap.AddressJOYP {
			return bus.joypad
		}
		return bus.IO[offset]
	case memorymap.HRAM:
		return bus.HRAM[offset]
	}

	// the unusable hole
	return 0xff
}

// Write an 8-bit value to the specified address. Writes into the ROM window
// drive the cartridge bank controller. Writes into the unusable hole are
// dropped.
func (bus *Bus) Write(address uint16, data uint8) {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.ROM:
		bus.Cart.Write(offset, data)
	case memorymap.VRAM:
		bus.VRAM[offset] = data
	case memorymap.CartRAM:
		bus.Cart.WriteRAM(offset, data)
	case memorymap.WRAM:
		bus.WRAM[offset] = data
	case memorymap.OAM:
		bus.OAM[offset] = data
	case memorymap.IO:
		if address == memorymap.AddressDIV {
			// any write to the divider resets it
			bus.IO[offset] = 0
			return
		}
		bus.IO[offset] = data
	case memorymap.HRAM:
		bus.HRAM[offset] = data
	}
}

// Button codes accepted by SetButton. The ordering is fixed and matches the
// bit position of each button in the joypad byte.
const (
	ButtonA = iota
	ButtonB
	ButtonStart
	ButtonSelect
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// SetButton sets or clears the pressed state of a single button. Button codes
// follow the fixed ordering A, B, Start, Select, Up, Down, Left, Right. The
// joypad byte uses inverted logic so a pressed button clears its bit.
func (bus *Bus) SetButton(button int, pressed bool) {
	if button < 0 || button > 7 {
		return
	}
	if pressed {
		bus.joypad &= ^(uint8(1) << button)
	} else {
		bus.joypad |= uint8(1) << button
	}
}

// Buttons returns the live joypad byte.
func (bus *Bus) Buttons() uint8 {
	return bus.joypad
}

// RequestInterrupt raises the specified interrupt flag. The mask is one of
// the memorymap.Interrupt values.
func (bus *Bus) RequestInterrupt(mask uint8) {
	bus.IO[memorymap.AddressIF-memorymap.OriginIO] |= mask
}
