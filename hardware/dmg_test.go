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

package hardware_test

import (
	"testing"

	"github.com/hatless/gopherboy/cartridgeloader"
	"github.com/hatless/gopherboy/hardware"
	"github.com/hatless/gopherboy/hardware/ppu"
	"github.com/hatless/gopherboy/screen"
	"github.com/hatless/gopherboy/test"
)

// newTestDMG builds a machine with a plain 32k cartridge attached. The ROM
// body defaults to zero, which executes as an endless run of NOPs.
func newTestDMG(t *testing.T, program ...uint8) *hardware.DMG {
	t.Helper()

	img := make([]uint8, 0x8000)
	copy(img[0x0134:0x0144], []uint8("FRAMES"))
	copy(img[0x0100:], program)

	dmg, err := hardware.NewDMG()
	test.ExpectedSuccess(t, err)

	err = dmg.AttachCartridge(cartridgeloader.NewLoaderFromData("frames.gb", img))
	test.ExpectedSuccess(t, err)

	return dmg
}

func TestFrameCycleBudget(t *testing.T) {
	dmg := newTestDMG(t)

	// an all-NOP program divides the frame budget exactly
	dmg.RunFrame()
	test.Equate(t, dmg.Cycles(), uint64(ppu.CyclesPerFrame))

	dmg.RunFrame()
	test.Equate(t, dmg.Cycles(), uint64(2*ppu.CyclesPerFrame))
}

func TestFrameOvershootCarry(t *testing.T) {
	prog := []uint8{
		0x00,             // NOP (4 cycles)
		0x01, 0x34, 0x12, // LD BC,0x1234 (12 cycles)
		0xc3, 0x00, 0x01, // JP 0x0100 (16 cycles)
	}
	dmg := newTestDMG(t, prog...)

	// each loop iteration is 32 cycles and 70224 is not a multiple of 32,
	// so frames end mid-loop. the running total must stay within one
	// instruction of the ideal boundary, with the overshoot carried
	for frame := 1; frame <= 5; frame++ {
		dmg.RunFrame()
		ideal := uint64(frame * ppu.CyclesPerFrame)
		test.Equate(t, dmg.Cycles() >= ideal, true)
		test.Equate(t, dmg.Cycles() < ideal+20, true)
	}
}

func TestPixelsContract(t *testing.T) {
	dmg := newTestDMG(t)

	pix := dmg.Pixels()
	test.Equate(t, len(pix), screen.Width*screen.Height*screen.Depth)

	// the buffer is reused in place, not reallocated
	dmg.RunFrame()
	test.Equate(t, &pix[0] == &dmg.Pixels()[0], true)
}

func TestResetKeepsCartridge(t *testing.T) {
	dmg := newTestDMG(t)
	dmg.RunFrame()

	dmg.Reset()
	test.Equate(t, dmg.Cycles(), uint64(0))
	test.Equate(t, dmg.Bus.Cart.Header.Title, "FRAMES")
	test.Equate(t, dmg.CPU.Reg.PC, 0x0100)
}

func TestButtonPassThrough(t *testing.T) {
	dmg := newTestDMG(t)

	dmg.SetButton(2, true)
	test.Equate(t, dmg.Bus.Read(0xff00), 0xfb)
	dmg.SetButton(2, false)
	test.Equate(t, dmg.Bus.Read(0xff00), 0xff)
}

func TestStateRoundTrip(t *testing.T) {
	dmg := newTestDMG(t)

	dmg.RunFrame()
	dmg.Bus.Write(0xc100, 0x77)
	dmg.Bus.Write(0x8000, 0x55)

	state, err := dmg.SerialiseState()
	test.ExpectedSuccess(t, err)

	// diverge from the snapshot
	dmg.RunFrame()
	dmg.Bus.Write(0xc100, 0x00)
	cyclesAfter := dmg.Cycles()

	err = dmg.DeserialiseState(state)
	test.ExpectedSuccess(t, err)

	test.Equate(t, dmg.Bus.Read(0xc100), 0x77)
	test.Equate(t, dmg.Bus.Read(0x8000), 0x55)
	test.Equate(t, dmg.Cycles() < cyclesAfter, true)
	test.Equate(t, dmg.Cycles(), uint64(ppu.CyclesPerFrame))
}

func TestStateWrongCartridge(t *testing.T) {
	dmg := newTestDMG(t)
	state, err := dmg.SerialiseState()
	test.ExpectedSuccess(t, err)

	// a machine with a different cartridge refuses the snapshot
	img := make([]uint8, 0x8000)
	copy(img[0x0134:0x0144], []uint8("OTHER"))
	other, err := hardware.NewDMG()
	test.ExpectedSuccess(t, err)
	err = other.AttachCartridge(cartridgeloader.NewLoaderFromData("other.gb", img))
	test.ExpectedSuccess(t, err)

	err = other.DeserialiseState(state)
	test.ExpectedFailure(t, err)
}
