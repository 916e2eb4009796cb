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

import "github.com/hatless/gopherboy/hardware/memory/cartridge"

// State is a snapshot of the bus. All fields are exported so the snapshot
// can pass through gob encoding untouched. The live joypad byte is input
// state, not machine state, and is deliberately not captured.
type State struct {
	VRAM []uint8
	WRAM []uint8
	OAM  []uint8
	IO   []uint8
	HRAM []uint8
	Cart cartridge.BankState
}

// Snapshot the current state of the bus, including the cartridge's
// bank-controller state.
func (bus *Bus) Snapshot() State {
	s := State{
		VRAM: make([]uint8, len(bus.VRAM)),
		WRAM: make([]uint8, len(bus.WRAM)),
		OAM:  make([]uint8, len(bus.OAM)),
		IO:   make([]uint8, len(bus.IO)),
		HRAM: make([]uint8, len(bus.HRAM)),
		Cart: bus.Cart.SaveState(),
	}
	copy(s.VRAM, bus.VRAM)
	copy(s.WRAM, bus.WRAM)
	copy(s.OAM, bus.OAM)
	copy(s.IO, bus.IO)
	copy(s.HRAM, bus.HRAM)
	return s
}

// Plumb a previously taken snapshot back into the bus. The backing arrays
// are restored in place so references held elsewhere stay valid.
func (bus *Bus) Plumb(s State) {
	copy(bus.VRAM, s.VRAM)
	copy(bus.WRAM, s.WRAM)
	copy(bus.OAM, s.OAM)
	copy(bus.IO, s.IO)
	copy(bus.HRAM, s.HRAM)
	bus.Cart.RestoreState(s.Cart)
}
