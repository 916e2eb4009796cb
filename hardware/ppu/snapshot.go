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

// State is a snapshot of the PPU. All fields are exported so the snapshot
// can pass through gob encoding untouched.
type State struct {
	Mode       Mode
	ModeCycles int
	Line       int
	WindowLine int
	Pixels     []uint8
}

// Snapshot the current state of the PPU, including a copy of the frame
// buffer.
func (p *PPU) Snapshot() State {
	s := State{
		Mode:       p.Mode,
		ModeCycles: p.ModeCycles,
		Line:       p.Line,
		WindowLine: p.windowLine,
		Pixels:     make([]uint8, len(p.pixels)),
	}
	copy(s.Pixels, p.pixels)
	return s
}

// Plumb a previously taken snapshot back into the PPU. The frame buffer is
// restored in place so references held by a renderer stay valid.
func (p *PPU) Plumb(s State) {
	p.Mode = s.Mode
	p.ModeCycles = s.ModeCycles
	p.Line = s.Line
	p.windowLine = s.WindowLine
	if len(s.Pixels) == len(p.pixels) {
		copy(p.pixels, s.Pixels)
	}
	p.syncRegisters()
}
