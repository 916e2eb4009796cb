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

package cpu

// the rotate and shift helpers set all four flags. The accumulator forms of
// the rotates (RLCA et al) clear Zero afterwards.

func (cpu *CPU) setRotateFlags(r uint8, carry bool) {
	cpu.Reg.F.Zero = r == 0
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = false
	cpu.Reg.F.Carry = carry
}

func (cpu *CPU) rlc(v uint8) uint8 {
	r := v<<1 | v>>7
	cpu.setRotateFlags(r, v&0x80 == 0x80)
	return r
}

func (cpu *CPU) rrc(v uint8) uint8 {
	r := v>>1 | v<<7
	cpu.setRotateFlags(r, v&0x01 == 0x01)
	return r
}

func (cpu *CPU) rl(v uint8) uint8 {
	r := v << 1
	if cpu.Reg.F.Carry {
		r |= 0x01
	}
	cpu.setRotateFlags(r, v&0x80 == 0x80)
	return r
}

func (cpu *CPU) rr(v uint8) uint8 {
	r := v >> 1
	if cpu.Reg.F.Carry {
		r |= 0x80
	}
	cpu.setRotateFlags(r, v&0x01 == 0x01)
	return r
}

func (cpu *CPU) sla(v uint8) uint8 {
	r := v << 1
	cpu.setRotateFlags(r, v&0x80 == 0x80)
	return r
}

// sra preserves the sign bit.
func (cpu *CPU) sra(v uint8) uint8 {
	r := v>>1 | v&0x80
	cpu.setRotateFlags(r, v&0x01 == 0x01)
	return r
}

func (cpu *CPU) swap(v uint8) uint8 {
	r := v<<4 | v>>4
	cpu.setRotateFlags(r, false)
	return r
}

func (cpu *CPU) srl(v uint8) uint8 {
	r := v >> 1
	cpu.setRotateFlags(r, v&0x01 == 0x01)
	return r
}

// executeCB dispatches the secondary opcode page reached through the 0xcb
// prefix. The page is completely regular: bits 0-2 select the operand, bits
// 3-7 the operation.
func (cpu *CPU) executeCB(opcode uint8) int {
	reg := opcode & 0x07
	v := cpu.getR(reg)

	// cycle cost of the prefix byte plus the operation. operations on the
	// HL memory cell cost more
	cycles := 8
	if reg == 6 {
		cycles = 16
	}

	switch opcode >> 6 {
	case 0: // rotates and shifts
		var r uint8
		switch (opcode >> 3) & 0x07 {
		case 0:
			r = cpu.rlc(v)
		case 1:
			r = cpu.rrc(v)
		case 2:
			r = cpu.rl(v)
		case 3:
			r = cpu.rr(v)
		case 4:
			r = cpu.sla(v)
		case 5:
			r = cpu.sra(v)
		case 6:
			r = cpu.swap(v)
		case 7:
			r = cpu.srl(v)
		}
		cpu.setR(reg, r)

	case 1: // BIT b,r
		bit := (opcode >> 3) & 0x07
		cpu.Reg.F.Zero = v&(1<<bit) == 0
		cpu.Reg.F.Subtract = false
		cpu.Reg.F.HalfCarry = true
		if reg == 6 {
			// BIT does not write back. the memory form is cheaper
			// than the other memory operations
			cycles = 12
		}

	case 2: // RES b,r
		bit := (opcode >> 3) & 0x07
		cpu.setR(reg, v&^(1<<bit))

	case 3: // SET b,r
		bit := (opcode >> 3) & 0x07
		cpu.setR(reg, v|1<<bit)
	}

	return cycles
}
