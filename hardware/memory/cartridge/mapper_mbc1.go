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

// mbc1 is the first bank controller used by the original handheld. ROM banks
// are selected with a 5-bit register and, for larger images, a supplementary
// 2-bit register that doubles as the RAM bank select depending on the banking
// mode.
type mbc1 struct {
	rom []uint8
	ram []uint8

	// 5-bit ROM bank register. never holds zero
	romBank uint8

	// 2-bit supplementary register. high ROM bank bits or RAM bank
	// according to mode
	bank2 uint8

	// banking mode register. only bit 0 is significant
	mode uint8

	ramEnabled bool
}

func newMBC1(data []uint8, hdr Header) *mbc1 {
	cart := &mbc1{
		rom: data,
		ram: make([]uint8, hdr.RAMSize),
	}
	cart.Reset()
	return cart
}

func (cart *mbc1) String() string {
	return fmt.Sprintf("%s bank=%d mode=%d", cart.ID(), cart.CurrentBank(), cart.mode)
}

// ID implements the cartMapper interface.
func (cart *mbc1) ID() string {
	return "MBC1"
}

// lowerBank is the bank visible in the 0x0000 to 0x3fff window. In mode 1 the
// supplementary register applies to the lower window too.
func (cart *mbc1) lowerBank() int {
	if cart.mode&0x01 == 0x01 {
		return (int(cart.bank2) << 5) % cart.NumBanks()
	}
	return 0
}

// upperBank is the bank visible in the 0x4000 to 0x7fff window.
func (cart *mbc1) upperBank() int {
	return ((int(cart.bank2) << 5) | int(cart.romBank)) % cart.NumBanks()
}

func (cart *mbc1) ramBank() int {
	if cart.mode&0x01 == 0x01 {
		return int(cart.bank2)
	}
	return 0
}

// Read implements the cartMapper interface.
func (cart *mbc1) Read(addr uint16) uint8 {
	var bank int
	if addr < baseBankSize {
		bank = cart.lowerBank()
	} else {
		bank = cart.upperBank()
		addr -= baseBankSize
	}
	return cart.rom[bank*baseBankSize+int(addr)]
}

// Write implements the cartMapper interface. Writes into the ROM window drive
// the controller's registers.
func (cart *mbc1) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a
	case addr < 0x4000:
		cart.romBank = data & 0x1f
		if cart.romBank == 0 {
			cart.romBank = 1
		}
	case addr < 0x6000:
		cart.bank2 = data & 0x03
	default:
		cart.mode = data & 0x01
	}
}

// ReadRAM implements the cartMapper interface.
func (cart *mbc1) ReadRAM(offset uint16) uint8 {
	if !cart.ramEnabled || len(cart.ram) == 0 {
		return 0xff
	}
	idx := (cart.ramBank()*ramBankSize + int(offset)) % len(cart.ram)
	return cart.ram[idx]
}

// WriteRAM implements the cartMapper interface.
func (cart *mbc1) WriteRAM(offset uint16, data uint8) {
	if !cart.ramEnabled || len(cart.ram) == 0 {
		return
	}
	idx := (cart.ramBank()*ramBankSize + int(offset)) % len(cart.ram)
	cart.ram[idx] = data
}

// NumBanks implements the cartMapper interface.
func (cart *mbc1) NumBanks() int {
	return len(cart.rom) / baseBankSize
}

// CurrentBank implements the cartMapper interface.
func (cart *mbc1) CurrentBank() int {
	return cart.upperBank()
}

// Reset implements the cartMapper interface.
func (cart *mbc1) Reset() {
	cart.romBank = 1
	cart.bank2 = 0
	cart.mode = 0
	cart.ramEnabled = false
	for i := range cart.ram {
		cart.ram[i] = 0
	}
}

// SaveState implements the cartMapper interface.
func (cart *mbc1) SaveState() BankState {
	s := BankState{
		ROMBank:     int(cart.romBank),
		RAMBank:     int(cart.bank2),
		RAMEnabled:  cart.ramEnabled,
		BankingMode: cart.mode,
		RAM:         cart.ram,
	}
	return s.snapshot()
}

// RestoreState implements the cartMapper interface.
func (cart *mbc1) RestoreState(s BankState) {
	cart.romBank = uint8(s.ROMBank) & 0x1f
	if cart.romBank == 0 {
		cart.romBank = 1
	}
	cart.bank2 = uint8(s.RAMBank) & 0x03
	cart.mode = s.BankingMode & 0x01
	cart.ramEnabled = s.RAMEnabled
	if s.RAM != nil && len(s.RAM) == len(cart.ram) {
		copy(cart.ram, s.RAM)
	}
}
