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

// Package timer implements the divider and the programmable timer. Both are
// driven from the same cycle count as the CPU and the video chip.
package timer

import (
	"github.com/hatless/gopherboy/hardware/memory"
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
)

// cycle periods for the divider and for each of the four timer input clocks
// selected by the low two bits of the control register.
const (
	divPeriod = 256

	tacEnable = uint8(0x04)
	tacSelect = uint8(0x03)
)

var timaPeriods = [4]int{1024, 16, 64, 256}

// Timer advances the divider and timer registers in the I/O block.
type Timer struct {
	bus *memory.Bus

	// cycles accumulated towards the next divider or timer increment
	DivCycles  int
	TimaCycles int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(bus *memory.Bus) *Timer {
	return &Timer{bus: bus}
}

// Reset the timer accumulators to power-on defaults.
func (tmr *Timer) Reset() {
	tmr.DivCycles = 0
	tmr.TimaCycles = 0
}

func (tmr *Timer) reg(address uint16) *uint8 {
	return &tmr.bus.IO[address-memorymap.OriginIO]
}

// Step the timer forward by the given number of cycles. On timer overflow the
// counter reloads from the modulo register and the timer interrupt is raised.
func (tmr *Timer) Step(cycles int) {
	tmr.DivCycles += cycles
	for tmr.DivCycles >= divPeriod {
		tmr.DivCycles -= divPeriod
		*tmr.reg(memorymap.AddressDIV)++
	}

	tac := *tmr.reg(memorymap.AddressTAC)
	if tac&tacEnable != tacEnable {
		return
	}

	period := timaPeriods[tac&tacSelect]
	tmr.TimaCycles += cycles
	for tmr.TimaCycles >= period {
		tmr.TimaCycles -= period
		tima := tmr.reg(memorymap.AddressTIMA)
		if *tima == 0xff {
			*tima = *tmr.reg(memorymap.AddressTMA)
			tmr.bus.RequestInterrupt(memorymap.InterruptTimer)
		} else {
			*tima++
		}
	}
}
