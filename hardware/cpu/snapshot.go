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

package cpu

import "github.com/hatless/gopherboy/hardware/cpu/registers"

// State is a snapshot of the CPU. All fields are exported so the snapshot
// can pass through gob encoding untouched.
type State struct {
	Reg       registers.Registers
	IME       bool
	Halted    bool
	EIPending bool
}

// Snapshot the current state of the CPU.
func (cpu *CPU) Snapshot() State {
	return State{
		Reg:       cpu.Reg,
		IME:       cpu.IME,
		Halted:    cpu.Halted,
		EIPending: cpu.eiPending,
	}
}

// Plumb a previously taken snapshot back into the CPU.
func (cpu *CPU) Plumb(s State) {
	cpu.Reg = s.Reg
	cpu.IME = s.IME
	cpu.Halted = s.Halted
	cpu.eiPending = s.EIPending
}
