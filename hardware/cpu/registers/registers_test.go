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

package registers_test

import (
	"testing"

	"github.com/hatless/gopherboy/hardware/cpu/registers"
	"github.com/hatless/gopherboy/test"
)

func TestPowerOnValues(t *testing.T) {
	r := registers.NewRegisters()

	test.Equate(t, r.AF(), 0x01b0)
	test.Equate(t, r.BC(), 0x0013)
	test.Equate(t, r.DE(), 0x00d8)
	test.Equate(t, r.HL(), 0x014d)
	test.Equate(t, r.SP, 0xfffe)
	test.Equate(t, r.PC, 0x0100)
}

func TestPairs(t *testing.T) {
	r := registers.NewRegisters()

	r.SetBC(0x1234)
	test.Equate(t, r.B, 0x12)
	test.Equate(t, r.C, 0x34)
	test.Equate(t, r.BC(), 0x1234)

	r.SetDE(0xfe01)
	test.Equate(t, r.D, 0xfe)
	test.Equate(t, r.E, 0x01)

	r.SetHL(0x8000)
	test.Equate(t, r.H, 0x80)
	test.Equate(t, r.L, 0x00)
}

// the low nibble of the F register reads as zero whatever has been loaded
// into it.
func TestFlagsLowNibble(t *testing.T) {
	r := registers.NewRegisters()

	r.SetAF(0xabcd)
	test.Equate(t, r.A, 0xab)
	test.Equate(t, r.F.Value(), 0xc0)
	test.Equate(t, r.AF(), 0xabc0)

	var f registers.Flags
	f.FromValue(0xff)
	test.Equate(t, f.Value(), 0xf0)
	test.ExpectedSuccess(t, f.Zero)
	test.ExpectedSuccess(t, f.Subtract)
	test.ExpectedSuccess(t, f.HalfCarry)
	test.ExpectedSuccess(t, f.Carry)

	f.Reset()
	test.Equate(t, f.Value(), 0x00)
}

func TestFlagsString(t *testing.T) {
	var f registers.Flags
	f.FromValue(0x90)
	test.Equate(t, f.String(), "ZnhC")
}
