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

// Package hardware ties the console's components together. The DMG type is
// the root of the emulated machine and the only type a host needs to hold.
package hardware

import (
	"github.com/hatless/gopherboy/cartridgeloader"
	"github.com/hatless/gopherboy/hardware/cpu"
	"github.com/hatless/gopherboy/hardware/memory"
	"github.com/hatless/gopherboy/hardware/ppu"
	"github.com/hatless/gopherboy/hardware/timer"
)

// DMG is the root of the emulated console.
type DMG struct {
	CPU *cpu.CPU
	Bus *memory.Bus
	PPU *ppu.PPU
	TMR *timer.Timer

	// cycles executed since the last reset
	cycles uint64

	// cycles executed beyond the frame budget by the last instruction of
	// a frame. carried into the next frame's budget
	overshoot int

	// pending audio samples in the range [-1, 1]. the core produces none
	// but the buffer contract is stable for hosts and recorders
	audio []float32
}

// NewDMG is the preferred method of initialisation for the DMG type. The
// returned machine is in its power-on state with no cartridge attached.
func NewDMG() (*DMG, error) {
	dmg := &DMG{}
	dmg.Bus = memory.NewBus()
	dmg.CPU = cpu.NewCPU(dmg.Bus)
	dmg.PPU = ppu.NewPPU(dmg.Bus)
	dmg.TMR = timer.NewTimer(dmg.Bus)
	dmg.audio = make([]float32, 0, 1024)
	return dmg, nil
}

func (dmg *DMG) String() string {
	return dmg.Bus.String()
}

// AttachCartridge to the console. The machine is fully reset on a
// successful load. A failed load leaves the machine and any previously
// attached cartridge untouched.
func (dmg *DMG) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := dmg.Bus.Cart.Attach(cartload)
	if err != nil {
		return err
	}
	dmg.Reset()
	return nil
}

// Reset the console to its power-on state. The attached cartridge stays
// attached.
func (dmg *DMG) Reset() {
	dmg.CPU.Reset()
	dmg.Bus.Reset()
	dmg.PPU.Reset()
	dmg.TMR.Reset()
	dmg.cycles = 0
	dmg.overshoot = 0
	dmg.audio = dmg.audio[:0]
}

// Step executes one CPU instruction, or services one interrupt, and advances
// the rest of the machine by the cycles consumed. Returns the cycle count.
func (dmg *DMG) Step() int {
	cycles := dmg.CPU.Step()
	dmg.PPU.Step(cycles)
	dmg.TMR.Step(cycles)
	dmg.cycles += uint64(cycles)
	return cycles
}

// Cycles returns the number of cycles executed since the last reset.
func (dmg *DMG) Cycles() uint64 {
	return dmg.cycles
}

// Pixels returns the frame buffer by reference. The contents are stable
// only between calls to RunFrame().
func (dmg *DMG) Pixels() []uint8 {
	return dmg.PPU.Pixels()
}

// AudioSamples returns the pending audio samples and drains the buffer.
func (dmg *DMG) AudioSamples() []float32 {
	s := dmg.audio
	dmg.audio = dmg.audio[:0]
	return s
}

// SetButton sets or clears the pressed state of a single button. Button
// codes follow the fixed ordering A, B, Start, Select, Up, Down, Left,
// Right.
func (dmg *DMG) SetButton(button int, pressed bool) {
	dmg.Bus.SetButton(button, pressed)
}
