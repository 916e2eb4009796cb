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

// Package ppu implements the pixel processing unit. The PPU walks a fixed
// state machine for every scanline, rendering pixels into an RGBA frame
// buffer as each visible line completes.
package ppu

import (
	"fmt"

	"github.com/hatless/gopherboy/hardware/memory"
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
	"github.com/hatless/gopherboy/screen"
)

// Mode identifies the current phase of the scanline state machine.
type Mode int

// The four PPU modes. The values follow the mode numbering in the status
// register.
const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	Drawing
)

func (m Mode) String() string {
	switch m {
	case OAMSearch:
		return "OAM search"
	case Drawing:
		return "drawing"
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	}
	return "unknown"
}

// Cycle budgets for each mode. A full scanline is the sum of the three
// visible-line modes. VBlank lines consume a whole scanline each.
const (
	CyclesOAMSearch = 80
	CyclesDrawing   = 172
	CyclesHBlank    = 204
	CyclesScanline  = CyclesOAMSearch + CyclesDrawing + CyclesHBlank

	// scanline indexes
	firstVBlankLine = 144
	lastLine        = 154
)

// CyclesPerFrame is the number of cycles consumed by one complete pass of the
// display, visible lines and VBlank lines together.
const CyclesPerFrame = CyclesScanline * lastLine

// status register bits
const (
	statModeMask    = uint8(0x03)
	statCoincidence = uint8(0x04)
	statIntHBlank   = uint8(0x08)
	statIntVBlank   = uint8(0x10)
	statIntOAM      = uint8(0x20)
	statIntLYC      = uint8(0x40)
)

// PPU is the pixel processing unit.
type PPU struct {
	bus *memory.Bus

	// current phase of the state machine and the cycles accumulated
	// within it
	Mode       Mode
	ModeCycles int

	// current scanline. mirrored into the LY register on every change
	Line int

	// the window keeps its own line counter. it only advances on lines
	// where the window was actually drawn
	windowLine int

	// the frame buffer. screen.Width * screen.Height * screen.Depth
	// bytes, RGBA, row-major, origin top-left
	pixels []uint8
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(bus *memory.Bus) *PPU {
	p := &PPU{
		bus:    bus,
		pixels: make([]uint8, screen.Width*screen.Height*screen.Depth),
	}
	p.Reset()
	return p
}

func (p *PPU) String() string {
	return fmt.Sprintf("%s line=%d cycles=%d", p.Mode, p.Line, p.ModeCycles)
}

// Reset the PPU to power-on defaults. The frame buffer is cleared to the
// lightest shade.
func (p *PPU) Reset() {
	p.Mode = OAMSearch
	p.ModeCycles = 0
	p.Line = 0
	p.windowLine = 0
	for i := 0; i < len(p.pixels); i += screen.Depth {
		p.pixels[i] = shades[0][0]
		p.pixels[i+1] = shades[0][1]
		p.pixels[i+2] = shades[0][2]
		p.pixels[i+3] = 0xff
	}
	p.syncRegisters()
}

// Pixels returns the frame buffer by reference. The contents are stable only
// between frames.
func (p *PPU) Pixels() []uint8 {
	return p.pixels
}

func (p *PPU) reg(address uint16) *uint8 {
	return &p.bus.IO[address-memorymap.OriginIO]
}

// syncRegisters mirrors the scanline counter into LY and the current mode and
// coincidence result into the status register.
func (p *PPU) syncRegisters() {
	*p.reg(memorymap.AddressLY) = uint8(p.Line)

	stat := p.reg(memorymap.AddressSTAT)
	*stat = (*stat &^ statModeMask) | uint8(p.Mode)
	if uint8(p.Line) == *p.reg(memorymap.AddressLYC) {
		*stat |= statCoincidence
	} else {
		*stat &^= statCoincidence
	}
}

// setLine updates the scanline counter, raising the LYC interrupt when the
// comparison succeeds and that interrupt source is enabled.
func (p *PPU) setLine(line int) {
	p.Line = line
	p.syncRegisters()
	stat := *p.reg(memorymap.AddressSTAT)
	if stat&statCoincidence == statCoincidence && stat&statIntLYC == statIntLYC {
		p.bus.RequestInterrupt(memorymap.InterruptSTAT)
	}
}

// setMode transitions the state machine, raising the status interrupt for
// modes with an enabled interrupt source.
func (p *PPU) setMode(mode Mode) {
	p.Mode = mode
	p.syncRegisters()

	stat := *p.reg(memorymap.AddressSTAT)
	var intBit uint8
	switch mode {
	case OAMSearch:
		intBit = statIntOAM
	case HBlank:
		intBit = statIntHBlank
	case VBlank:
		intBit = statIntVBlank
	}
	if intBit != 0 && stat&intBit == intBit {
		p.bus.RequestInterrupt(memorymap.InterruptSTAT)
	}
}

// Step the PPU forward by the given number of cycles.
func (p *PPU) Step(cycles int) {
	p.ModeCycles += cycles

	for {
		switch p.Mode {
		case OAMSearch:
			if p.ModeCycles < CyclesOAMSearch {
				return
			}
			p.ModeCycles -= CyclesOAMSearch
			p.setMode(Drawing)

		case Drawing:
			if p.ModeCycles < CyclesDrawing {
				return
			}
			p.ModeCycles -= CyclesDrawing
			p.renderScanline(p.Line)
			p.setMode(HBlank)

		case HBlank:
			if p.ModeCycles < CyclesHBlank {
				return
			}
			p.ModeCycles -= CyclesHBlank
			p.setLine(p.Line + 1)
			if p.Line < firstVBlankLine {
				p.setMode(OAMSearch)
			} else {
				p.setMode(VBlank)
				p.bus.RequestInterrupt(memorymap.InterruptVBlank)
			}

		case VBlank:
			if p.ModeCycles < CyclesScanline {
				return
			}
			p.ModeCycles -= CyclesScanline
			if p.Line+1 >= lastLine {
				p.setLine(0)
				p.windowLine = 0
				p.setMode(OAMSearch)
			} else {
				p.setLine(p.Line + 1)
			}
		}
	}
}
