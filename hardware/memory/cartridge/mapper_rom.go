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

package cartridge

import "fmt"

// romOnly is the plain 32k cartridge with no bank controller. The whole ROM
// window maps directly onto the image and writes to the window are dropped.
// External RAM, if the header declares any, is a single fixed bank.
type romOnly struct {
	rom []uint8
	ram []uint8
}

func newROMOnly(data []uint8, hdr Header) *romOnly {
	return &romOnly{
		rom: data,
		ram: make([]uint8, hdr.RAMSize),
	}
}

func (cart *romOnly) String() string {
	return fmt.Sprintf("%s banks=%d", cart.ID(), cart.NumBanks())
}

// ID implements the cartMapper interface.
func (cart *romOnly) ID() string {
	return "ROM"
}

// Read implements the cartMapper interface.
func (cart *romOnly) Read(addr uint16) uint8 {
	if int(addr) < len(cart.rom) {
		return cart.rom[addr]
	}
	return 0xff
}

// Write implements the cartMapper interface. ROM-only cartridges have no
// bank-select registers so all writes into the ROM window are dropped.
func (cart *romOnly) Write(_ uint16, _ uint8) {
}

// ReadRAM implements the cartMapper interface.
func (cart *romOnly) ReadRAM(offset uint16) uint8 {
	if len(cart.ram) == 0 {
		return 0xff
	}
	return cart.ram[int(offset)%len(cart.ram)]
}

// WriteRAM implements the cartMapper interface.
func (cart *romOnly) WriteRAM(offset uint16, data uint8) {
	if len(cart.ram) == 0 {
		return
	}
	cart.ram[int(offset)%len(cart.ram)] = data
}

// NumBanks implements the cartMapper interface.
func (cart *romOnly) NumBanks() int {
	return len(cart.rom) / baseBankSize
}

// CurrentBank implements the cartMapper interface. The upper portion of the
// ROM window always shows bank one.
func (cart *romOnly) CurrentBank() int {
	return 1
}

// Reset implements the cartMapper interface.
func (cart *romOnly) Reset() {
	for i := range cart.ram {
		cart.ram[i] = 0
	}
}

// SaveState implements the cartMapper interface.
func (cart *romOnly) SaveState() BankState {
	s := BankState{ROMBank: 1, RAM: cart.ram}
	return s.snapshot()
}

// RestoreState implements the cartMapper interface.
func (cart *romOnly) RestoreState(s BankState) {
	if s.RAM != nil && len(s.RAM) == len(cart.ram) {
		copy(cart.ram, s.RAM)
	}
}
