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

// Package registers implements the register file of the SM83. The eight
// 8-bit registers are stored individually and paired into the four 16-bit
// pseudo-registers (AF, BC, DE, HL) on demand.
package registers

import (
	"fmt"
)

// Power-on values for the register file. These are the values left in place
// by the boot ROM on the original hardware, which this emulation does not
// run.
const (
	powerOnA  = uint8(0x01)
	powerOnF  = uint8(0xb0)
	powerOnB  = uint8(0x00)
	powerOnC  = uint8(0x13)
	powerOnD  = uint8(0x00)
	powerOnE  = uint8(0xd8)
	powerOnH  = uint8(0x01)
	powerOnL  = uint8(0x4d)
	powerOnSP = uint16(0xfffe)
	powerOnPC = uint16(0x0100)
)

// Registers is the complete register file of the SM83.
type Registers struct {
	A uint8
	F Flags
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP uint16
	PC uint16
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The register file is created with console-defined power-on values.
func NewRegisters() Registers {
	r := Registers{}
	r.Reset()
	return r
}

// Reset the register file to power-on values.
func (r *Registers) Reset() {
	r.A = powerOnA
	r.F.FromValue(powerOnF)
	r.B = powerOnB
	r.C = powerOnC
	r.D = powerOnD
	r.E = powerOnE
	r.H = powerOnH
	r.L = powerOnL
	r.SP = powerOnSP
	r.PC = powerOnPC
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%02x%02x BC=%02x%02x DE=%02x%02x HL=%02x%02x SP=%04x PC=%04x [%s]",
		r.A, r.F.Value(), r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC, r.F)
}

// AF returns the A and F registers as a 16-bit pseudo-register.
func (r Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Value())
}

// SetAF splits a 16-bit value across the A and F registers. The low nibble of
// the F portion is discarded, per the hardware.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F.FromValue(uint8(v))
}

// BC returns the B and C registers as a 16-bit pseudo-register.
func (r Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC splits a 16-bit value across the B and C registers.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the D and E registers as a 16-bit pseudo-register.
func (r Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE splits a 16-bit value across the D and E registers.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the H and L registers as a 16-bit pseudo-register.
func (r Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL splits a 16-bit value across the H and L registers.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}
