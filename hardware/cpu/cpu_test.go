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

package cpu_test

import (
	"testing"

	"github.com/hatless/gopherboy/hardware/cpu"
	"github.com/hatless/gopherboy/test"
)

// testBus is a flat 64k memory with none of the routing of the real bus.
type testBus struct {
	mem [0x10000]uint8
}

func (b *testBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *testBus) Write(address uint16, data uint8) {
	b.mem[address] = data
}

// newTestCPU loads the program at the power-on program counter.
func newTestCPU(program ...uint8) (*cpu.CPU, *testBus) {
	bus := &testBus{}
	copy(bus.mem[0x0100:], program)
	mc := cpu.NewCPU(bus)
	return mc, bus
}

func TestPowerOnState(t *testing.T) {
	mc, _ := newTestCPU()
	test.Equate(t, mc.Reg.A, 0x01)
	test.Equate(t, mc.Reg.PC, 0x0100)
	test.Equate(t, mc.Reg.SP, 0xfffe)
	test.Equate(t, mc.IME, false)
}

func TestIncFlagBoundaries(t *testing.T) {
	// INC A with A=0x0f sets half-carry
	mc, _ := newTestCPU(0x3c)
	mc.Reg.A = 0x0f
	mc.Reg.F.Carry = true
	cycles := mc.Step()
	test.Equate(t, cycles, 4)
	test.Equate(t, mc.Reg.A, 0x10)
	test.Equate(t, mc.Reg.F.HalfCarry, true)
	test.Equate(t, mc.Reg.F.Zero, false)

	// carry is preserved unconditionally
	test.Equate(t, mc.Reg.F.Carry, true)

	// INC A with A=0xff wraps to zero
	mc, _ = newTestCPU(0x3c)
	mc.Reg.A = 0xff
	mc.Step()
	test.Equate(t, mc.Reg.A, 0x00)
	test.Equate(t, mc.Reg.F.Zero, true)
	test.Equate(t, mc.Reg.F.HalfCarry, true)
}

func TestIncDecRoundTrip(t *testing.T) {
	mc, _ := newTestCPU(0x04, 0x05)
	mc.Reg.B = 0x42
	mc.Step()
	test.Equate(t, mc.Reg.B, 0x43)
	mc.Step()
	test.Equate(t, mc.Reg.B, 0x42)
	test.Equate(t, mc.Reg.F.Zero, false)
}

func TestDecFlagBoundaries(t *testing.T) {
	// DEC B with B=0x10 borrows out of the low nibble
	mc, _ := newTestCPU(0x05)
	mc.Reg.B = 0x10
	mc.Step()
	test.Equate(t, mc.Reg.B, 0x0f)
	test.Equate(t, mc.Reg.F.HalfCarry, true)
	test.Equate(t, mc.Reg.F.Subtract, true)

	// DEC B with B=0x00 wraps
	mc, _ = newTestCPU(0x05)
	mc.Reg.B = 0x00
	mc.Step()
	test.Equate(t, mc.Reg.B, 0xff)
}

func TestAddCarry(t *testing.T) {
	// ADD A,B with a full carry out of bit 7
	mc, _ := newTestCPU(0x80)
	mc.Reg.A = 0xf0
	mc.Reg.B = 0x20
	mc.Step()
	test.Equate(t, mc.Reg.A, 0x10)
	test.Equate(t, mc.Reg.F.Carry, true)
	test.Equate(t, mc.Reg.F.HalfCarry, false)

	// ADC picks up the carry
	mc, _ = newTestCPU(0x88)
	mc.Reg.A = 0x00
	mc.Reg.B = 0x00
	mc.Reg.F.Carry = true
	mc.Step()
	test.Equate(t, mc.Reg.A, 0x01)
}

func TestSubCompare(t *testing.T) {
	// CP A,B leaves A untouched but sets flags
	mc, _ := newTestCPU(0xb8)
	mc.Reg.A = 0x10
	mc.Reg.B = 0x20
	mc.Step()
	test.Equate(t, mc.Reg.A, 0x10)
	test.Equate(t, mc.Reg.F.Carry, true)
	test.Equate(t, mc.Reg.F.Subtract, true)

	// equality sets zero
	mc, _ = newTestCPU(0xb8)
	mc.Reg.A = 0x10
	mc.Reg.B = 0x10
	mc.Step()
	test.Equate(t, mc.Reg.F.Zero, true)
}

func TestLoadBlock(t *testing.T) {
	// LD B,A ; LD (HL),B ; LD C,(HL)
	mc, bus := newTestCPU(0x47, 0x70, 0x4e)
	mc.Reg.A = 0x99
	mc.Reg.SetHL(0xc000)

	test.Equate(t, mc.Step(), 4)
	test.Equate(t, mc.Reg.B, 0x99)

	test.Equate(t, mc.Step(), 8)
	test.Equate(t, bus.mem[0xc000], 0x99)

	test.Equate(t, mc.Step(), 8)
	test.Equate(t, mc.Reg.C, 0x99)
}

func TestStack(t *testing.T) {
	// PUSH BC ; POP DE
	mc, _ := newTestCPU(0xc5, 0xd1)
	mc.Reg.SetBC(0x1234)
	mc.Reg.SP = 0xfffe

	test.Equate(t, mc.Step(), 16)
	test.Equate(t, mc.Reg.SP, 0xfffc)

	test.Equate(t, mc.Step(), 12)
	test.Equate(t, mc.Reg.DE(), 0x1234)
	test.Equate(t, mc.Reg.SP, 0xfffe)
}

func TestConditionalJumpCycles(t *testing.T) {
	// JR NZ,+2 not taken
	mc, _ := newTestCPU(0x20, 0x02)
	mc.Reg.F.Zero = true
	test.Equate(t, mc.Step(), 8)
	test.Equate(t, mc.Reg.PC, 0x0102)

	// JR NZ,+2 taken
	mc, _ = newTestCPU(0x20, 0x02)
	mc.Reg.F.Zero = false
	test.Equate(t, mc.Step(), 12)
	test.Equate(t, mc.Reg.PC, 0x0104)

	// backwards jump
	mc, _ = newTestCPU(0x18, 0xfe)
	test.Equate(t, mc.Step(), 12)
	test.Equate(t, mc.Reg.PC, 0x0100)
}

func TestCallReturn(t *testing.T) {
	// CALL 0x0200 / RET at 0x0200
	mc, bus := newTestCPU(0xcd, 0x00, 0x02)
	bus.mem[0x0200] = 0xc9

	test.Equate(t, mc.Step(), 24)
	test.Equate(t, mc.Reg.PC, 0x0200)

	test.Equate(t, mc.Step(), 16)
	test.Equate(t, mc.Reg.PC, 0x0103)
}

func TestUndefinedOpcodes(t *testing.T) {
	for _, opcode := range []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd} {
		mc, _ := newTestCPU(opcode)
		before := mc.Reg
		test.Equate(t, mc.Step(), 4)
		test.Equate(t, mc.Reg.PC, 0x0101)
		test.Equate(t, mc.Reg.A, before.A)
		test.Equate(t, mc.Reg.SP, before.SP)
	}
}

func TestCBInstructions(t *testing.T) {
	// SWAP A
	mc, _ := newTestCPU(0xcb, 0x37)
	mc.Reg.A = 0xf1
	test.Equate(t, mc.Step(), 8)
	test.Equate(t, mc.Reg.A, 0x1f)

	// BIT 7,H
	mc, _ = newTestCPU(0xcb, 0x7c)
	mc.Reg.H = 0x80
	test.Equate(t, mc.Step(), 8)
	test.Equate(t, mc.Reg.F.Zero, false)
	test.Equate(t, mc.Reg.F.HalfCarry, true)

	// SET 0,(HL) writes back through the bus
	mc, bus := newTestCPU(0xcb, 0xc6)
	mc.Reg.SetHL(0xc000)
	test.Equate(t, mc.Step(), 16)
	test.Equate(t, bus.mem[0xc000], 0x01)
}

func TestEIDelay(t *testing.T) {
	// EI ; NOP ; NOP with a pending interrupt throughout
	mc, bus := newTestCPU(0xfb, 0x00, 0x00)
	bus.mem[0xffff] = 0x01
	bus.mem[0xff0f] = 0x01

	mc.Step()
	test.Equate(t, mc.IME, false)

	// the instruction after EI still executes
	mc.Step()
	test.Equate(t, mc.IME, true)
	test.Equate(t, mc.Reg.PC, 0x0102)

	// only now is the interrupt serviced
	test.Equate(t, mc.Step(), 20)
	test.Equate(t, mc.Reg.PC, 0x0040)
	test.Equate(t, mc.IME, false)
	test.Equate(t, bus.mem[0xff0f], 0x00)
}

func TestInterruptService(t *testing.T) {
	mc, bus := newTestCPU(0x00)
	mc.IME = true
	bus.mem[0xffff] = 0x04
	bus.mem[0xff0f] = 0x04

	test.Equate(t, mc.Step(), 20)
	test.Equate(t, mc.Reg.PC, 0x0050)

	// the return address was pushed
	test.Equate(t, mc.Reg.SP, 0xfffc)
	test.Equate(t, bus.mem[0xfffc], 0x00)
	test.Equate(t, bus.mem[0xfffd], 0x01)
}

func TestHaltWake(t *testing.T) {
	// HALT with IME set. the interrupt is serviced on wake
	mc, bus := newTestCPU(0x76)
	mc.IME = true
	mc.Step()
	test.Equate(t, mc.Halted, true)
	test.Equate(t, mc.Step(), 4)

	bus.mem[0xffff] = 0x01
	bus.mem[0xff0f] = 0x01
	test.Equate(t, mc.Step(), 20)
	test.Equate(t, mc.Halted, false)
	test.Equate(t, mc.Reg.PC, 0x0040)
}

func TestHaltWakeWithoutService(t *testing.T) {
	// HALT with IME clear. a pending and enabled interrupt wakes the CPU
	// but is not serviced
	mc, bus := newTestCPU(0x76, 0x00)
	mc.Step()
	test.Equate(t, mc.Halted, true)

	bus.mem[0xffff] = 0x01
	bus.mem[0xff0f] = 0x01
	mc.Step()
	test.Equate(t, mc.Halted, false)
	test.Equate(t, mc.Reg.PC, 0x0102)
	test.Equate(t, bus.mem[0xff0f], 0x01)
}

func TestDAA(t *testing.T) {
	// 0x15 + 0x27 = 0x42 in BCD
	mc, _ := newTestCPU(0x80, 0x27)
	mc.Reg.A = 0x15
	mc.Reg.B = 0x27
	mc.Step()
	test.Equate(t, mc.Reg.A, 0x3c)
	mc.Step()
	test.Equate(t, mc.Reg.A, 0x42)
}

func TestAddSPFlags(t *testing.T) {
	// ADD SP,+1 with a carry out of the low byte
	mc, _ := newTestCPU(0xe8, 0x01)
	mc.Reg.SP = 0x00ff
	test.Equate(t, mc.Step(), 16)
	test.Equate(t, mc.Reg.SP, 0x0100)
	test.Equate(t, mc.Reg.F.Carry, true)
	test.Equate(t, mc.Reg.F.HalfCarry, true)
	test.Equate(t, mc.Reg.F.Zero, false)

	// negative offset
	mc, _ = newTestCPU(0xe8, 0xff)
	mc.Reg.SP = 0x0100
	mc.Step()
	test.Equate(t, mc.Reg.SP, 0x00ff)
}

func TestFLowNibbleThroughStack(t *testing.T) {
	// PUSH AF ; POP AF discards the low nibble of F
	mc, _ := newTestCPU(0xf5, 0xf1)
	mc.Reg.A = 0x42
	mc.Reg.F.FromValue(0xff)
	mc.Step()
	mc.Step()
	test.Equate(t, mc.Reg.F.Value(), 0xf0)
}
