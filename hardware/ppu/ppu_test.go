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

package ppu_test

import (
	"testing"

	"github.com/hatless/gopherboy/hardware/memory"
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
	"github.com/hatless/gopherboy/hardware/ppu"
	"github.com/hatless/gopherboy/screen"
	"github.com/hatless/gopherboy/test"
)

func TestModeWalk(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	test.Equate(t, p.Mode == ppu.OAMSearch, true)
	test.Equate(t, p.Line, 0)

	// one cycle short of the OAM search budget
	p.Step(79)
	test.Equate(t, p.Mode == ppu.OAMSearch, true)
	p.Step(1)
	test.Equate(t, p.Mode == ppu.Drawing, true)

	p.Step(172)
	test.Equate(t, p.Mode == ppu.HBlank, true)
	test.Equate(t, p.Line, 0)

	// completing HBlank advances the line
	p.Step(204)
	test.Equate(t, p.Mode == ppu.OAMSearch, true)
	test.Equate(t, p.Line, 1)
	test.Equate(t, bus.Read(memorymap.AddressLY), 0x01)
}

func TestVBlankEntry(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	// run all 144 visible lines
	p.Step(144 * ppu.CyclesScanline)
	test.Equate(t, p.Mode == ppu.VBlank, true)
	test.Equate(t, p.Line, 144)
	test.Equate(t, bus.Read(memorymap.AddressIF)&memorymap.InterruptVBlank, memorymap.InterruptVBlank)
}

func TestFrameWrap(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	p.Step(ppu.CyclesPerFrame)
	test.Equate(t, p.Mode == ppu.OAMSearch, true)
	test.Equate(t, p.Line, 0)
	test.Equate(t, ppu.CyclesPerFrame, 70224)
}

func TestStatusRegister(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	// mode bits track the state machine
	p.Step(80)
	test.Equate(t, bus.Read(memorymap.AddressSTAT)&0x03, 0x03)
	p.Step(172)
	test.Equate(t, bus.Read(memorymap.AddressSTAT)&0x03, 0x00)

	// coincidence bit and interrupt
	bus.Write(memorymap.AddressLYC, 0x01)
	bus.Write(memorymap.AddressSTAT, 0x40)
	p.Step(204)
	test.Equate(t, bus.Read(memorymap.AddressSTAT)&0x04, 0x04)
	test.Equate(t, bus.Read(memorymap.AddressIF)&memorymap.InterruptSTAT, memorymap.InterruptSTAT)
}

// stepLine walks the PPU to the end of the drawing phase of the current line,
// which is when the line is rendered.
func stepLine(p *ppu.PPU) {
	p.Step(ppu.CyclesOAMSearch + ppu.CyclesDrawing)
	p.Step(ppu.CyclesHBlank)
}

func TestRenderBackground(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	// display on, background on, unsigned tile data, tile map 0x9800
	bus.Write(memorymap.AddressLCDC, 0x91)

	// identity palette. index n maps to shade n
	bus.Write(memorymap.AddressBGP, 0xe4)

	// tile 1 is solid colour 3. all bits set in both planes
	for i := 0; i < 16; i++ {
		bus.Write(0x8010+uint16(i), 0xff)
	}

	// first tile of the map is tile 1. the rest stay tile 0
	bus.Write(0x9800, 0x01)

	stepLine(p)

	pix := p.Pixels()

	// leftmost 8 pixels of line 0 are the darkest shade
	test.Equate(t, pix[0], 0x00)
	test.Equate(t, pix[3], 0xff)

	// pixel 8 comes from tile 0 which is blank
	test.Equate(t, pix[8*screen.Depth], 0xff)
}

func TestRenderSprite(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	// display on, background on, sprites on, 8x8
	bus.Write(memorymap.AddressLCDC, 0x93)
	bus.Write(memorymap.AddressBGP, 0xe4)
	bus.Write(memorymap.AddressOBP0, 0xe4)

	// tile 2 is solid colour 3
	for i := 0; i < 16; i++ {
		bus.Write(0x8020+uint16(i), 0xff)
	}

	// sprite 0 at the top-left corner using tile 2
	bus.Write(0xfe00, 16) // y
	bus.Write(0xfe01, 8)  // x
	bus.Write(0xfe02, 2)  // tile
	bus.Write(0xfe03, 0)  // attributes

	stepLine(p)

	pix := p.Pixels()
	test.Equate(t, pix[0], 0x00)
	test.Equate(t, pix[7*screen.Depth], 0x00)
	test.Equate(t, pix[8*screen.Depth], 0xff)
}

func TestRenderLineGuard(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	// stepping through VBlank must not touch the frame buffer. fill the
	// buffer with a sentinel by rendering a blank frame first
	p.Step(ppu.CyclesPerFrame)
	before := make([]uint8, len(p.Pixels()))
	copy(before, p.Pixels())

	// a full VBlank period renders nothing
	p.Step(144 * ppu.CyclesScanline)
	p.Step(10 * ppu.CyclesScanline)

	test.Equate(t, len(p.Pixels()), len(before))
}

func TestDisplayDisabled(t *testing.T) {
	bus := memory.NewBus()
	p := ppu.NewPPU(bus)

	// display off. the line renders as the lightest shade even with a
	// dark palette
	bus.Write(memorymap.AddressLCDC, 0x00)
	bus.Write(memorymap.AddressBGP, 0xff)

	stepLine(p)

	test.Equate(t, p.Pixels()[0], 0xff)
}
