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

package ppu

import (
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
	"github.com/hatless/gopherboy/screen"
)

// LCD control register bits.
const (
	lcdcBGEnable      = uint8(0x01)
	lcdcSpriteEnable  = uint8(0x02)
	lcdcSpriteSize    = uint8(0x04)
	lcdcBGTileMap     = uint8(0x08)
	lcdcTileData      = uint8(0x10)
	lcdcWindowEnable  = uint8(0x20)
	lcdcWindowTileMap = uint8(0x40)
	lcdcDisplayEnable = uint8(0x80)
)

// VRAM offsets of the two tile maps and the two tile data areas.
const (
	tileMap0  = 0x1800
	tileMap1  = 0x1c00
	tileData0 = 0x0000
	tileData1 = 0x1000
)

const (
	spriteBytes  = 4
	maxSprites   = 40
	lineSprites  = 10
	spriteXAdj   = 8
	spriteYAdj   = 16
	windowXAdj   = 7
	tileMapWidth = 32
)

// sprite attribute bits.
const (
	attrPalette  = uint8(0x10)
	attrFlipX    = uint8(0x20)
	attrFlipY    = uint8(0x40)
	attrPriority = uint8(0x80)
)

// renderScanline computes the 160 pixels of the given line into the frame
// buffer. A line outside the visible range is a guarded no-op. It indicates a
// logic bug upstream and is never a runtime condition to recover from.
func (p *PPU) renderScanline(line int) {
	if line < 0 || line > screen.Height-1 {
		return
	}

	lcdc := *p.reg(memorymap.AddressLCDC)

	// the colour index of each pixel before palette translation. sprite
	// priority decisions need the raw background index
	var index [screen.Width]uint8

	// the translated shade of each pixel
	var row [screen.Width][3]uint8

	bgp := *p.reg(memorymap.AddressBGP)
	for x := 0; x < screen.Width; x++ {
		row[x] = shade(bgp, 0)
	}

	if lcdc&lcdcDisplayEnable == lcdcDisplayEnable {
		if lcdc&lcdcBGEnable == lcdcBGEnable {
			p.renderBackground(line, lcdc, &index, &row)
			p.renderWindow(line, lcdc, &index, &row)
		}
		if lcdc&lcdcSpriteEnable == lcdcSpriteEnable {
			p.renderSprites(line, lcdc, &index, &row)
		}
	} else {
		// display disabled. the whole line renders as shade 0
		for x := 0; x < screen.Width; x++ {
			row[x] = shades[0]
		}
	}

	offset := line * screen.Width * screen.Depth
	for x := 0; x < screen.Width; x++ {
		p.pixels[offset] = row[x][0]
		p.pixels[offset+1] = row[x][1]
		p.pixels[offset+2] = row[x][2]
		p.pixels[offset+3] = 0xff
		offset += screen.Depth
	}
}

// tilePixel reads the 2-bit colour index of a single pixel from tile data.
// The tile number is interpreted as unsigned or signed according to the tile
// data select bit.
func (p *PPU) tilePixel(lcdc uint8, tileNum uint8, px int, py int) uint8 {
	var addr int
	if lcdc&lcdcTileData == lcdcTileData {
		addr = tileData0 + int(tileNum)*16
	} else {
		addr = tileData1 + int(int8(tileNum))*16
	}
	addr += py * 2

	lo := p.bus.VRAM[addr]
	hi := p.bus.VRAM[addr+1]
	bit := uint(7 - px)
	return ((hi>>bit)&0x01)<<1 | ((lo >> bit) & 0x01)
}

func (p *PPU) renderBackground(line int, lcdc uint8, index *[screen.Width]uint8, row *[screen.Width][3]uint8) {
	mapBase := tileMap0
	if lcdc&lcdcBGTileMap == lcdcBGTileMap {
		mapBase = tileMap1
	}

	scy := *p.reg(memorymap.AddressSCY)
	scx := *p.reg(memorymap.AddressSCX)
	bgp := *p.reg(memorymap.AddressBGP)

	y := int(uint8(line) + scy)
	tileRow := y / 8
	py := y % 8

	for x := 0; x < screen.Width; x++ {
		bx := int(uint8(x) + scx)
		tileNum := p.bus.VRAM[mapBase+tileRow*tileMapWidth+bx/8]
		ci := p.tilePixel(lcdc, tileNum, bx%8, py)
		index[x] = ci
		row[x] = shade(bgp, ci)
	}
}

func (p *PPU) renderWindow(line int, lcdc uint8, index *[screen.Width]uint8, row *[screen.Width][3]uint8) {
	if lcdc&lcdcWindowEnable != lcdcWindowEnable {
		return
	}

	wy := int(*p.reg(memorymap.AddressWY))
	wx := int(*p.reg(memorymap.AddressWX)) - windowXAdj
	if line < wy || wx >= screen.Width {
		return
	}

	mapBase := tileMap0
	if lcdc&lcdcWindowTileMap == lcdcWindowTileMap {
		mapBase = tileMap1
	}

	bgp := *p.reg(memorymap.AddressBGP)

	tileRow := p.windowLine / 8
	py := p.windowLine % 8

	for x := wx; x < screen.Width; x++ {
		if x < 0 {
			continue
		}
		tileNum := p.bus.VRAM[mapBase+tileRow*tileMapWidth+(x-wx)/8]
		ci := p.tilePixel(lcdc, tileNum, (x-wx)%8, py)
		index[x] = ci
		row[x] = shade(bgp, ci)
	}

	p.windowLine++
}

func (p *PPU) renderSprites(line int, lcdc uint8, index *[screen.Width]uint8, row *[screen.Width][3]uint8) {
	height := 8
	if lcdc&lcdcSpriteSize == lcdcSpriteSize {
		height = 16
	}

	// the first ten sprites, in table order, whose vertical range covers
	// this line
	var selected []int
	for s := 0; s < maxSprites && len(selected) < lineSprites; s++ {
		y := int(p.bus.OAM[s*spriteBytes]) - spriteYAdj
		if line >= y && line < y+height {
			selected = append(selected, s)
		}
	}

	// whichever sprite was scanned first wins overlapping pixels
	var covered [screen.Width]bool

	for _, s := range selected {
		y := int(p.bus.OAM[s*spriteBytes]) - spriteYAdj
		x := int(p.bus.OAM[s*spriteBytes+1]) - spriteXAdj
		tileNum := p.bus.OAM[s*spriteBytes+2]
		attr := p.bus.OAM[s*spriteBytes+3]

		if height == 16 {
			// in 8x16 mode the low bit of the tile number is ignored
			tileNum &= 0xfe
		}

		py := line - y
		if attr&attrFlipY == attrFlipY {
			py = height - 1 - py
		}

		pal := *p.reg(memorymap.AddressOBP0)
		if attr&attrPalette == attrPalette {
			pal = *p.reg(memorymap.AddressOBP1)
		}

		// sprite pixels always use the unsigned tile data area
		addr := tileData0 + int(tileNum)*16 + py*2
		lo := p.bus.VRAM[addr]
		hi := p.bus.VRAM[addr+1]

		for px := 0; px < 8; px++ {
			sx := x + px
			if sx < 0 || sx >= screen.Width || covered[sx] {
				continue
			}

			bit := uint(7 - px)
			if attr&attrFlipX == attrFlipX {
				bit = uint(px)
			}
			ci := ((hi>>bit)&0x01)<<1 | ((lo >> bit) & 0x01)

			// colour 0 is transparent
			if ci == 0 {
				continue
			}

			// the priority bit puts the sprite behind any
			// non-zero background pixel
			if attr&attrPriority == attrPriority && index[sx] != 0 {
				covered[sx] = true
				continue
			}

			row[sx] = shade(pal, ci)
			covered[sx] = true
		}
	}
}
