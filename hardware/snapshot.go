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

package hardware

import (
	"github.com/hatless/gopherboy/hardware/cpu"
	"github.com/hatless/gopherboy/hardware/memory"
	"github.com/hatless/gopherboy/hardware/ppu"
)

// State is a snapshot of the entire machine. It captures the CPU registers,
// all memory regions, the PPU state and the cartridge's bank-controller
// state. It does not capture the ROM image itself; a snapshot is only
// meaningful for the cartridge it was taken with.
type State struct {
	CPU cpu.State
	PPU ppu.State
	Bus memory.State

	TimerDiv  int
	TimerTima int

	Cycles    uint64
	Overshoot int

	// hash of the cartridge the snapshot was taken with
	CartHash string
}

// Snapshot the current state of the machine.
func (dmg *DMG) Snapshot() *State {
	return &State{
		CPU:       dmg.CPU.Snapshot(),
		PPU:       dmg.PPU.Snapshot(),
		Bus:       dmg.Bus.Snapshot(),
		TimerDiv:  dmg.TMR.DivCycles,
		TimerTima: dmg.TMR.TimaCycles,
		Cycles:    dmg.cycles,
		Overshoot: dmg.overshoot,
		CartHash:  dmg.Bus.Cart.Hash,
	}
}

// Plumb a previously taken snapshot back into the machine.
func (dmg *DMG) Plumb(s *State) {
	dmg.CPU.Plumb(s.CPU)
	dmg.PPU.Plumb(s.PPU)
	dmg.Bus.Plumb(s.Bus)
	dmg.TMR.DivCycles = s.TimerDiv
	dmg.TMR.TimaCycles = s.TimerTima
	dmg.cycles = s.Cycles
	dmg.overshoot = s.Overshoot
}
