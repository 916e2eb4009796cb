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

// ejected stands in for the real bank controller when no cartridge is
// attached. Reads return 0xff, the value the floating bus produces on real
// hardware with nothing in the slot.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) String() string {
	return "ejected"
}

// ID implements the cartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// Read implements the cartMapper interface.
func (cart *ejected) Read(_ uint16) uint8 {
	return 0xff
}

// Write implements the cartMapper interface.
func (cart *ejected) Write(_ uint16, _ uint8) {
}

// ReadRAM implements the cartMapper interface.
func (cart *ejected) ReadRAM(_ uint16) uint8 {
	return 0xff
}

// WriteRAM implements the cartMapper interface.
func (cart *ejected) WriteRAM(_ uint16, _ uint8) {
}

// NumBanks implements the cartMapper interface.
func (cart *ejected) NumBanks() int {
	return 0
}

// CurrentBank implements the cartMapper interface.
func (cart *ejected) CurrentBank() int {
	return 0
}

// Reset implements the cartMapper interface.
func (cart *ejected) Reset() {
}

// SaveState implements the cartMapper interface.
func (cart *ejected) SaveState() BankState {
	return BankState{}
}

// RestoreState implements the cartMapper interface.
func (cart *ejected) RestoreState(_ BankState) {
}
