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

// mbc5 uses a 9-bit ROM bank register split over two address ranges. Unlike
// the earlier controllers bank zero is a legal selection for the upper ROM
// window.
type mbc5 struct {
	rom []uint8
	ram []uint8

	// 9-bit ROM bank register. bit 8 is written separately from the lower
	// eight bits
	romBank uint16

	ramBank uint8

	ramEnabled bool
}

func newMBC5(data []uint8, hdr Header) *mbc5 {
	cart := &mbc5{
		rom: data,
		ram: make([]uint8, hdr.RAMSize),
	}
	cart.Reset()
	return cart
}

func (cart *mbc5) String() string {
	return fmt.Sprintf("%s bank=%d", cart.ID(), cart.CurrentBank())
}

// ID implements the cartMapper interface.
func (cart *mbc5) ID() string {
	return "MBC5"
}

// Read implements the cartMapper interface.
func (cart *mbc5) Read(addr uint16) uint8 {
	if addr < baseBankSize {
		return cart.rom[addr]
	}
	bank := int(cart.romBank) % cart.NumBanks()
	return cart.rom[bank*baseBankSize+int(addr-baseBankSize)]
}

// Write implements the cartMapper interface.
func (cart *mbc5) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a
	case addr < 0x3000:
		cart.romBank = (cart.romBank & 0x0100) | uint16(data)
	case addr < 0x4000:
		cart.romBank = (cart.romBank & 0x00ff) | (uint16(data&0x01) << 8)
	case addr < 0x6000:
		cart.ramBank = data & 0x0f
	}
}

// ReadRAM implements the cartMapper interface.
func (cart *mbc5) ReadRAM(offset uint16) uint8 {
	if !cart.ramEnabled || len(cart.ram) == 0 {
		return 0xff
	}
	idx := (int(cart.ramBank)*ramBankSize + int(offset)) % len(cart.ram)
	return cart.ram[idx]
}

// WriteRAM implements the cartMapper interface.
func (cart *mbc5) WriteRAM(offset uint16, data uint8) {
	if !cart.ramEnabled || len(cart.ram) == 0 {
		return
	}
	idx := (int(cart.ramBank)*ramBankSize + int(offset)) % len(cart.ram)
	cart.ram[idx] = data
}

// NumBanks implements the cartMapper interface.
func (cart *mbc5) NumBanks() int {
	return len(cart.rom) / baseBankSize
}

// CurrentBank implements the cartMapper interface.
func (cart *mbc5) CurrentBank() int {
	return int(cart.romBank) % cart.NumBanks()
}

// Reset implements the cartMapper interface.
func (cart *mbc5) Reset() {
	cart.romBank = 1
	cart.ramBank = 0
	cart.ramEnabled = false
	for i := range cart.ram {
		cart.ram[i] = 0
	}
}

// SaveState implements the cartMapper interface.
func (cart *mbc5) SaveState() BankState {
	s := BankState{
		ROMBank:    int(cart.romBank),
		RAMBank:    int(cart.ramBank),
		RAMEnabled: cart.ramEnabled,
		RAM:        cart.ram,
	}
	return s.snapshot()
}

// RestoreState implements the cartMapper interface.
func (cart *mbc5) RestoreState(s BankState) {
	cart.romBank = uint16(s.ROMBank) & 0x01ff
	cart.ramBank = uint8(s.RAMBank) & 0x0f
	cart.ramEnabled = s.RAMEnabled
	if s.RAM != nil && len(s.RAM) == len(cart.ram) {
		copy(cart.ram, s.RAM)
	}
}
