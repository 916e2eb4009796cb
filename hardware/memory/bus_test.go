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

package memory_test

import (
	"testing"

	"github.com/hatless/gopherboy/hardware/memory"
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
	"github.com/hatless/gopherboy/test"
)

func TestEchoAlias(t *testing.T) {
	bus := memory.NewBus()

	bus.Write(0xc123, 0x5a)
	test.Equate(t, bus.Read(0xe123), 0x5a)

	// the alias works in the other direction too
	bus.Write(0xfdff, 0xa5)
	test.Equate(t, bus.Read(0xddff), 0xa5)
}

func TestUnusableHole(t *testing.T) {
	bus := memory.NewBus()

	for addr := uint16(0xfea0); addr <= 0xfeff; addr++ {
		test.Equate(t, bus.Read(addr), 0xff)
		bus.Write(addr, 0x00)
		test.Equate(t, bus.Read(addr), 0xff)
	}
}

func TestInterruptEnableAlias(t *testing.T) {
	bus := memory.NewBus()

	bus.Write(memorymap.AddressIE, 0x1f)
	test.Equate(t, bus.Read(memorymap.AddressIE), 0x1f)
	test.Equate(t, bus.Read(0xff7f), 0x1f)
}

func TestJoypadIntercept(t *testing.T) {
	bus := memory.NewBus()

	// all bits set at power-on means nothing is pressed
	test.Equate(t, bus.Read(memorymap.AddressJOYP), 0xff)

	// writes land in the I/O cell but the read is intercepted
	bus.Write(memorymap.AddressJOYP, 0x00)
	test.Equate(t, bus.Read(memorymap.AddressJOYP), 0xff)

	// pressed buttons clear their bit
	bus.SetButton(0, true)
	test.Equate(t, bus.Read(memorymap.AddressJOYP), 0xfe)
	bus.SetButton(7, true)
	test.Equate(t, bus.Read(memorymap.AddressJOYP), 0x7e)

	// releasing restores the bit exactly
	bus.SetButton(0, false)
	bus.SetButton(7, false)
	test.Equate(t, bus.Read(memorymap.AddressJOYP), 0xff)
}

func TestDividerWriteResets(t *testing.T) {
	bus := memory.NewBus()

	bus.IO[memorymap.AddressDIV-memorymap.OriginIO] = 0xab
	bus.Write(memorymap.AddressDIV, 0x42)
	test.Equate(t, bus.Read(memorymap.AddressDIV), 0x00)
}

func TestInterruptRequest(t *testing.T) {
	bus := memory.NewBus()

	bus.RequestInterrupt(memorymap.InterruptVBlank)
	bus.RequestInterrupt(memorymap.InterruptTimer)
	test.Equate(t, bus.Read(memorymap.AddressIF), 0x05)
}

func TestHighRAM(t *testing.T) {
	bus := memory.NewBus()

	bus.Write(0xff80, 0x11)
	bus.Write(0xfffe, 0x22)
	test.Equate(t, bus.Read(0xff80), 0x11)
	test.Equate(t, bus.Read(0xfffe), 0x22)
}
