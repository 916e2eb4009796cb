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

// mbc3 extends the banking scheme with a 7-bit ROM bank register and, on some
// cartridges, a real-time clock. The clock registers are not emulated and read
// as 0xff when selected.
type mbc3 struct {
	rom []uint8
	ram []uint8

	// 7-bit ROM bank register. never holds zero
	romBank uint8

	// values 0x00 to 0x03 select a RAM bank. 0x08 and above select a clock
	// register
	ramBank uint8

	ramEnabled bool
}

func newMBC3(data []uint8, hdr Header) *mbc3 {
	cart := &mbc3{
		rom: data,
		ram: make([]uint8, hdr.RAMSize),
	}
	cart.Reset()
	return cart
}

func (cart *mbc3) String() string {
	return fmt.Sprintf("%s bank=%d", cart.ID(), cart.CurrentBank())
}

// ID implements the cartMapper interface.
func (cart *mbc3) ID() string {
	return "MBC3"
}

// Read implements the cartMapper interface.
func (cart *mbc3) Read(addr uint16) uint8 {
	if addr < baseBankSize {
		return cart.rom[addr]
	}
	bank := int(cart.romBank) % cart.NumBanks()
	return cart.rom[bank*baseBankSize+int(addr-baseBankSize)]
}

// Write implements the cartMapper interface.
func (cart *mbc3) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a
	case addr < 0x4000:
		cart.romBank = data & 0x7f
		if cart.romBank == 0 {
			cart.romBank = 1
		}
	case addr < 0x6000:
		cart.ramBank = data & 0x0f
	default:
		// clock latch register. nothing to do without clock emulation
	}
}

// ReadRAM implements the cartMapper interface.
func (cart *mbc3) ReadRAM(offset uint16) uint8 {
	if !cart.ramEnabled {
		return 0xff
	}
	if cart.ramBank >= 0x08 {
		// unemulated clock register
		return 0xff
	}
	if len(cart.ram) == 0 {
		return 0xff
	}
	idx := (int(cart.ramBank)*ramBankSize + int(offset)) % len(cart.ram)
	return cart.ram[idx]
}

// WriteRAM implements the cartMapper interface.
func (cart *mbc3) WriteRAM(offset uint16, data uint8) {
	if !cart.ramEnabled || cart.ramBank >= 0x08 || len(cart.ram) == 0 {
		return
	}
	idx := (int(cart.ramBank)*ramBankSize + int(offset)) % len(cart.ram)
	cart.ram[idx] = data
}

// NumBanks implements the cartMapper interface.
func (cart *mbc3) NumBanks() int {
	return len(cart.rom) / baseBankSize
}

// CurrentBank implements the cartMapper interface.
func (cart *mbc3) CurrentBank() int {
	return int(cart.romBank) % cart.NumBanks()
}

// Reset implements the cartMapper interface.
func (cart *mbc3) Reset() {
	cart.romBank = 1
	cart.ramBank = 0
	cart.ramEnabled = false
	for i := range cart.ram {
		cart.ram[i] = 0
	}
}

// SaveState implements the cartMapper interface.
func (cart *mbc3) SaveState() BankState {
	s := BankState{
		ROMBank:    int(cart.romBank),
		RAMBank:    int(cart.ramBank),
		RAMEnabled: cart.ramEnabled,
		RAM:        cart.ram,
	}
	return s.snapshot()
}

// RestoreState implements the cartMapper interface.
func (cart *mbc3) RestoreState(s BankState) {
	cart.romBank = uint8(s.ROMBank) & 0x7f
	if cart.romBank == 0 {
		cart.romBank = 1
	}
	cart.ramBank = uint8(s.RAMBank) & 0x0f
	cart.ramEnabled = s.RAMEnabled
	if s.RAM != nil && len(s.RAM) == len(cart.ram) {
		copy(cart.ram, s.RAM)
	}
}
