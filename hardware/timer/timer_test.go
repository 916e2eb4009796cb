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

package timer_test

import (
	"testing"

	"github.com/hatless/gopherboy/hardware/memory"
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
	"github.com/hatless/gopherboy/hardware/timer"
	"github.com/hatless/gopherboy/test"
)

func TestDivider(t *testing.T) {
	bus := memory.NewBus()
	tmr := timer.NewTimer(bus)

	tmr.Step(255)
	test.Equate(t, bus.Read(memorymap.AddressDIV), 0x00)
	tmr.Step(1)
	test.Equate(t, bus.Read(memorymap.AddressDIV), 0x01)
	tmr.Step(512)
	test.Equate(t, bus.Read(memorymap.AddressDIV), 0x03)
}

func TestTimerDisabled(t *testing.T) {
	bus := memory.NewBus()
	tmr := timer.NewTimer(bus)

	tmr.Step(4096)
	test.Equate(t, bus.Read(memorymap.AddressTIMA), 0x00)
}

func TestTimerClockSelect(t *testing.T) {
	bus := memory.NewBus()
	tmr := timer.NewTimer(bus)

	// enable the timer with the fastest input clock
	bus.Write(memorymap.AddressTAC, 0x05)
	tmr.Step(16)
	test.Equate(t, bus.Read(memorymap.AddressTIMA), 0x01)
	tmr.Step(160)
	test.Equate(t, bus.Read(memorymap.AddressTIMA), 0x0b)

	// the slowest clock
	bus.Write(memorymap.AddressTIMA, 0x00)
	bus.Write(memorymap.AddressTAC, 0x04)
	tmr.Reset()
	tmr.Step(1023)
	test.Equate(t, bus.Read(memorymap.AddressTIMA), 0x00)
	tmr.Step(1)
	test.Equate(t, bus.Read(memorymap.AddressTIMA), 0x01)
}

func TestTimerOverflow(t *testing.T) {
	bus := memory.NewBus()
	tmr := timer.NewTimer(bus)

	bus.Write(memorymap.AddressTAC, 0x05)
	bus.Write(memorymap.AddressTIMA, 0xfe)
	bus.Write(memorymap.AddressTMA, 0x23)

	tmr.Step(16)
	test.Equate(t, bus.Read(memorymap.AddressTIMA), 0xff)
	test.Equate(t, bus.Read(memorymap.AddressIF), 0x00)

	// overflow reloads from the modulo register and raises the interrupt
	tmr.Step(16)
	test.Equate(t, bus.Read(memorymap.AddressTIMA), 0x23)
	test.Equate(t, bus.Read(memorymap.AddressIF)&memorymap.InterruptTimer, memorymap.InterruptTimer)
}
