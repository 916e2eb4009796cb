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

// cartMapper implementations hold the ROM data from the loaded image, keep
// track of which banks are visible in the ROM window, and service the
// external RAM window. For convenience, functions with an address argument
// receive that address normalised to the range of the window: 0x0000 to
// 0x7fff for the ROM window, 0x0000 to 0x1fff for the RAM window.
type cartMapper interface {
	ID() string

	// the ROM window. writes are bank-select commands, never memory writes
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)

	// the external RAM window
	ReadRAM(offset uint16) uint8
	WriteRAM(offset uint16, data uint8)

	NumBanks() int

	// the bank currently visible in the upper portion of the ROM window
	CurrentBank() int

	// return bank-select registers and RAM content to power-on values
	Reset()

	// save-state support. implementations return/accept a BankState
	SaveState() BankState
	RestoreState(BankState)
}

// BankState records the bank controller registers and RAM content of a
// mapper. It is the portable form of mapper state used by the save-state
// machinery: every field is exported so the type can pass through a gob
// encoder untouched.
type BankState struct {
	ROMBank     int
	RAMBank     int
	RAMEnabled  bool
	BankingMode uint8

	// a copy of the external RAM. nil for cartridges without RAM
	RAM []uint8
}

// snapshot returns a deep copy of the BankState. the RAM slice must not be
// shared between the live mapper and a stored state.
func (s BankState) snapshot() BankState {
	n := s
	if s.RAM != nil {
		n.RAM = make([]uint8, len(s.RAM))
		copy(n.RAM, s.RAM)
	}
	return n
}
