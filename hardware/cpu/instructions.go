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

// getR and setR address the eight "r" operand encodings shared by large
// blocks of the instruction set. Index 6 is the memory cell addressed by HL.
func (cpu *CPU) getR(i uint8) uint8 {
	switch i & 0x07 {
	case 0:
		return cpu.Reg.B
	case 1:
		return cpu.Reg.C
	case 2:
		return cpu.Reg.D
	case 3:
		return cpu.Reg.E
	case 4:
		return cpu.Reg.H
	case 5:
		return cpu.Reg.L
	case 6:
		return cpu.bus.Read(cpu.Reg.HL())
	}
	return cpu.Reg.A
}

func (cpu *CPU) setR(i uint8, v uint8) {
	switch i & 0x07 {
	case 0:
		cpu.Reg.B = v
	case 1:
		cpu.Reg.C = v
	case 2:
		cpu.Reg.D = v
	case 3:
		cpu.Reg.E = v
	case 4:
		cpu.Reg.H = v
	case 5:
		cpu.Reg.L = v
	case 6:
		cpu.bus.Write(cpu.Reg.HL(), v)
	case 7:
		cpu.Reg.A = v
	}
}

// inc8 and dec8 preserve the Carry flag unconditionally.
func (cpu *CPU) inc8(v uint8) uint8 {
	r := v + 1
	cpu.Reg.F.Zero = r == 0
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = v&0x0f == 0x0f
	return r
}

func (cpu *CPU) dec8(v uint8) uint8 {
	r := v - 1
	cpu.Reg.F.Zero = r == 0
	cpu.Reg.F.Subtract = true
	cpu.Reg.F.HalfCarry = v&0x0f == 0x00
	return r
}

func (cpu *CPU) add8(v uint8, withCarry bool) {
	a := cpu.Reg.A
	var c uint8
	if withCarry && cpu.Reg.F.Carry {
		c = 1
	}
	r := a + v + c
	cpu.Reg.F.Zero = r == 0
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = (a&0x0f)+(v&0x0f)+c > 0x0f
	cpu.Reg.F.Carry = int(a)+int(v)+int(c) > 0xff
	cpu.Reg.A = r
}

func (cpu *CPU) sub8(v uint8, withCarry bool, store bool) {
	a := cpu.Reg.A
	var c uint8
	if withCarry && cpu.Reg.F.Carry {
		c = 1
	}
	r := a - v - c
	cpu.Reg.F.Zero = r == 0
	cpu.Reg.F.Subtract = true
	cpu.Reg.F.HalfCarry = int(a&0x0f) < int(v&0x0f)+int(c)
	cpu.Reg.F.Carry = int(a) < int(v)+int(c)
	if store {
		cpu.Reg.A = r
	}
}

func (cpu *CPU) and8(v uint8) {
	cpu.Reg.A &= v
	cpu.Reg.F.Zero = cpu.Reg.A == 0
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = true
	cpu.Reg.F.Carry = false
}

func (cpu *CPU) or8(v uint8) {
	cpu.Reg.A |= v
	cpu.Reg.F.Zero = cpu.Reg.A == 0
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = false
	cpu.Reg.F.Carry = false
}

func (cpu *CPU) xor8(v uint8) {
	cpu.Reg.A ^= v
	cpu.Reg.F.Zero = cpu.Reg.A == 0
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = false
	cpu.Reg.F.Carry = false
}

// alu dispatches the eight arithmetic operations encoded in bits 3-5 of the
// 0x80 to 0xbf opcode block and the immediate forms.
func (cpu *CPU) alu(op uint8, v uint8) {
	switch op & 0x07 {
	case 0:
		cpu.add8(v, false)
	case 1:
		cpu.add8(v, true)
	case 2:
		cpu.sub8(v, false, true)
	case 3:
		cpu.sub8(v, true, true)
	case 4:
		cpu.and8(v)
	case 5:
		cpu.xor8(v)
	case 6:
		cpu.or8(v)
	case 7:
		cpu.sub8(v, false, false)
	}
}

// addHL implements the 16-bit ADD HL,rr. Half-carry is out of bit 11 and
// carry out of bit 15. Zero is preserved.
func (cpu *CPU) addHL(v uint16) {
	hl := cpu.Reg.HL()
	r := uint32(hl) + uint32(v)
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = (hl&0x0fff)+(v&0x0fff) > 0x0fff
	cpu.Reg.F.Carry = r > 0xffff
	cpu.Reg.SetHL(uint16(r))
}

// addSP implements the signed-offset stack pointer arithmetic shared by ADD
// SP,e8 and LD HL,SP+e8. Flags come from unsigned addition of the low byte.
func (cpu *CPU) addSP(e uint8) uint16 {
	sp := cpu.Reg.SP
	r := sp + uint16(int8(e))
	cpu.Reg.F.Zero = false
	cpu.Reg.F.Subtract = false
	cpu.Reg.F.HalfCarry = (sp&0x0f)+(uint16(e)&0x0f) > 0x0f
	cpu.Reg.F.Carry = (sp&0xff)+(uint16(e)&0xff) > 0xff
	return r
}

func (cpu *CPU) daa() {
	a := cpu.Reg.A
	if !cpu.Reg.F.Subtract {
		if cpu.Reg.F.Carry || a > 0x99 {
			a += 0x60
			cpu.Reg.F.Carry = true
		}
		if cpu.Reg.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if cpu.Reg.F.Carry {
			a -= 0x60
		}
		if cpu.Reg.F.HalfCarry {
			a -= 0x06
		}
	}
	cpu.Reg.F.Zero = a == 0
	cpu.Reg.F.HalfCarry = false
	cpu.Reg.A = a
}

// jr adds the signed operand to PC.
func (cpu *CPU) jr(e uint8) {
	cpu.Reg.PC += uint16(int8(e))
}

func (cpu *CPU) call(addr uint16) {
	cpu.push16(cpu.Reg.PC)
	cpu.Reg.PC = addr
}

// condition tests the four condition codes NZ, Z, NC, C encoded in bits 3-4
// of conditional jumps, calls and returns.
func (cpu *CPU) condition(cc uint8) bool {
	switch cc & 0x03 {
	case 0:
		return !cpu.Reg.F.Zero
	case 1:
		return cpu.Reg.F.Zero
	case 2:
		return !cpu.Reg.F.Carry
	}
	return cpu.Reg.F.Carry
}

// execute dispatches a fetched opcode and returns its cycle cost. Timings
// are a fixed property of each opcode. Conditional jumps, calls and returns
// have two documented costs, one for each outcome. Undefined opcodes consume
// four cycles and change nothing.
func (cpu *CPU) execute(opcode uint8) int {
	// the LD block. every opcode from 0x40 to 0x7f is a register to
	// register copy except 0x76 which is HALT
	if opcode >= 0x40 && opcode <= 0x7f {
		if opcode == 0x76 {
			cpu.Halted = true
			return 4
		}
		src := opcode & 0x07
		dst := (opcode >> 3) & 0x07
		cpu.setR(dst, cpu.getR(src))
		if src == 6 || dst == 6 {
			return 8
		}
		return 4
	}

	// the arithmetic block
	if opcode >= 0x80 && opcode <= 0xbf {
		src := opcode & 0x07
		cpu.alu(opcode>>3, cpu.getR(src))
		if src == 6 {
			return 8
		}
		return 4
	}

	switch opcode {
	case 0x00: // NOP
		return 4
	case 0x01: // LD BC,d16
		cpu.Reg.SetBC(cpu.fetch16())
		return 12
	case 0x02: // LD (BC),A
		cpu.bus.Write(cpu.Reg.BC(), cpu.Reg.A)
		return 8
	case 0x03: // INC BC
		cpu.Reg.SetBC(cpu.Reg.BC() + 1)
		return 8
	case 0x04: // INC B
		cpu.Reg.B = cpu.inc8(cpu.Reg.B)
		return 4
	case 0x05: // DEC B
		cpu.Reg.B = cpu.dec8(cpu.Reg.B)
		return 4
	case 0x06: // LD B,d8
		cpu.Reg.B = cpu.fetch()
		return 8
	case 0x07: // RLCA
		cpu.Reg.A = cpu.rlc(cpu.Reg.A)
		cpu.Reg.F.Zero = false
		return 4
	case 0x08: // LD (a16),SP
		addr := cpu.fetch16()
		cpu.bus.Write(addr, uint8(cpu.Reg.SP))
		cpu.bus.Write(addr+1, uint8(cpu.Reg.SP>>8))
		return 20
	case 0x09: // ADD HL,BC
		cpu.addHL(cpu.Reg.BC())
		return 8
	case 0x0a: // LD A,(BC)
		cpu.Reg.A = cpu.bus.Read(cpu.Reg.BC())
		return 8
	case 0x0b: // DEC BC
		cpu.Reg.SetBC(cpu.Reg.BC() - 1)
		return 8
	case 0x0c: // INC C
		cpu.Reg.C = cpu.inc8(cpu.Reg.C)
		return 4
	case 0x0d: // DEC C
		cpu.Reg.C = cpu.dec8(cpu.Reg.C)
		return 4
	case 0x0e: // LD C,d8
		cpu.Reg.C = cpu.fetch()
		return 8
	case 0x0f: // RRCA
		cpu.Reg.A = cpu.rrc(cpu.Reg.A)
		cpu.Reg.F.Zero = false
		return 4

	case 0x10: // STOP
		// the operand byte is consumed. low-power mode is not emulated
		cpu.fetch()
		return 4
	case 0x11: // LD DE,d16
		cpu.Reg.SetDE(cpu.fetch16())
		return 12
	case 0x12: // LD (DE),A
		cpu.bus.Write(cpu.Reg.DE(), cpu.Reg.A)
		return 8
	case 0x13: // INC DE
		cpu.Reg.SetDE(cpu.Reg.DE() + 1)
		return 8
	case 0x14: // INC D
		cpu.Reg.D = cpu.inc8(cpu.Reg.D)
		return 4
	case 0x15: // DEC D
		cpu.Reg.D = cpu.dec8(cpu.Reg.D)
		return 4
	case 0x16: // LD D,d8
		cpu.Reg.D = cpu.fetch()
		return 8
	case 0x17: // RLA
		cpu.Reg.A = cpu.rl(cpu.Reg.A)
		cpu.Reg.F.Zero = false
		return 4
	case 0x18: // JR e8
		cpu.jr(cpu.fetch())
		return 12
	case 0x19: // ADD HL,DE
		cpu.addHL(cpu.Reg.DE())
		return 8
	case 0x1a: // LD A,(DE)
		cpu.Reg.A = cpu.bus.Read(cpu.Reg.DE())
		return 8
	case 0x1b: // DEC DE
		cpu.Reg.SetDE(cpu.Reg.DE() - 1)
		return 8
	case 0x1c: // INC E
		cpu.Reg.E = cpu.inc8(cpu.Reg.E)
		return 4
	case 0x1d: // DEC E
		cpu.Reg.E = cpu.dec8(cpu.Reg.E)
		return 4
	case 0x1e: // LD E,d8
		cpu.Reg.E = cpu.fetch()
		return 8
	case 0x1f: // RRA
		cpu.Reg.A = cpu.rr(cpu.Reg.A)
		cpu.Reg.F.Zero = false
		return 4

	case 0x20, 0x28, 0x30, 0x38: // JR cc,e8
		e := cpu.fetch()
		if cpu.condition(opcode >> 3) {
			cpu.jr(e)
			return 12
		}
		return 8
	case 0x21: // LD HL,d16
		cpu.Reg.SetHL(cpu.fetch16())
		return 12
	case 0x22: // LD (HL+),A
		cpu.bus.Write(cpu.Reg.HL(), cpu.Reg.A)
		cpu.Reg.SetHL(cpu.Reg.HL() + 1)
		return 8
	case 0x23: // INC HL
		cpu.Reg.SetHL(cpu.Reg.HL() + 1)
		return 8
	case 0x24: // INC H
		cpu.Reg.H = cpu.inc8(cpu.Reg.H)
		return 4
	case 0x25: // DEC H
		cpu.Reg.H = cpu.dec8(cpu.Reg.H)
		return 4
	case 0x26: // LD H,d8
		cpu.Reg.H = cpu.fetch()
		return 8
	case 0x27: // DAA
		cpu.daa()
		return 4
	case 0x29: // ADD HL,HL
		cpu.addHL(cpu.Reg.HL())
		return 8
	case 0x2a: // LD A,(HL+)
		cpu.Reg.A = cpu.bus.Read(cpu.Reg.HL())
		cpu.Reg.SetHL(cpu.Reg.HL() + 1)
		return 8
	case 0x2b: // DEC HL
		cpu.Reg.SetHL(cpu.Reg.HL() - 1)
		return 8
	case 0x2c: // INC L
		cpu.Reg.L = cpu.inc8(cpu.Reg.L)
		return 4
	case 0x2d: // DEC L
		cpu.Reg.L = cpu.dec8(cpu.Reg.L)
		return 4
	case 0x2e: // LD L,d8
		cpu.Reg.L = cpu.fetch()
		return 8
	case 0x2f: // CPL
		cpu.Reg.A = ^cpu.Reg.A
		cpu.Reg.F.Subtract = true
		cpu.Reg.F.HalfCarry = true
		return 4

	case 0x31: // LD SP,d16
		cpu.Reg.SP = cpu.fetch16()
		return 12
	case 0x32: // LD (HL-),A
		cpu.bus.Write(cpu.Reg.HL(), cpu.Reg.A)
		cpu.Reg.SetHL(cpu.Reg.HL() - 1)
		return 8
	case 0x33: // INC SP
		cpu.Reg.SP++
		return 8
	case 0x34: // INC (HL)
		cpu.bus.Write(cpu.Reg.HL(), cpu.inc8(cpu.bus.Read(cpu.Reg.HL())))
		return 12
	case 0x35: // DEC (HL)
		cpu.bus.Write(cpu.Reg.HL(), cpu.dec8(cpu.bus.Read(cpu.Reg.HL())))
		return 12
	case 0x36: // LD (HL),d8
		cpu.bus.Write(cpu.Reg.HL(), cpu.fetch())
		return 12
	case 0x37: // SCF
		cpu.Reg.F.Subtract = false
		cpu.Reg.F.HalfCarry = false
		cpu.Reg.F.Carry = true
		return 4
	case 0x39: // ADD HL,SP
		cpu.addHL(cpu.Reg.SP)
		return 8
	case 0x3a: // LD A,(HL-)
		cpu.Reg.A = cpu.bus.Read(cpu.Reg.HL())
		cpu.Reg.SetHL(cpu.Reg.HL() - 1)
		return 8
	case 0x3b: // DEC SP
		cpu.Reg.SP--
		return 8
	case 0x3c: // INC A
		cpu.Reg.A = cpu.inc8(cpu.Reg.A)
		return 4
	case 0x3d: // DEC A
		cpu.Reg.A = cpu.dec8(cpu.Reg.A)
		return 4
	case 0x3e: // LD A,d8
		cpu.Reg.A = cpu.fetch()
		return 8
	case 0x3f: // CCF
		cpu.Reg.F.Subtract = false
		cpu.Reg.F.HalfCarry = false
		cpu.Reg.F.Carry = !cpu.Reg.F.Carry
		return 4

	case 0xc0, 0xc8, 0xd0, 0xd8: // RET cc
		if cpu.condition(opcode >> 3) {
			cpu.Reg.PC = cpu.pop16()
			return 20
		}
		return 8
	case 0xc1: // POP BC
		cpu.Reg.SetBC(cpu.pop16())
		return 12
	case 0xc2, 0xca, 0xd2, 0xda: // JP cc,a16
		addr := cpu.fetch16()
		if cpu.condition(opcode >> 3) {
			cpu.Reg.PC = addr
			return 16
		}
		return 12
	case 0xc3: // JP a16
		cpu.Reg.PC = cpu.fetch16()
		return 16
	case 0xc4, 0xcc, 0xd4, 0xdc: // CALL cc,a16
		addr := cpu.fetch16()
		if cpu.condition(opcode >> 3) {
			cpu.call(addr)
			return 24
		}
		return 12
	case 0xc5: // PUSH BC
		cpu.push16(cpu.Reg.BC())
		return 16
	case 0xc6, 0xce, 0xd6, 0xde, 0xe6, 0xee, 0xf6, 0xfe: // ALU A,d8
		cpu.alu(opcode>>3, cpu.fetch())
		return 8
	case 0xc7, 0xcf, 0xd7, 0xdf, 0xe7, 0xef, 0xf7, 0xff: // RST
		cpu.call(uint16(opcode & 0x38))
		return 16
	case 0xc9: // RET
		cpu.Reg.PC = cpu.pop16()
		return 16
	case 0xcb: // prefix
		return cpu.executeCB(cpu.fetch())
	case 0xcd: // CALL a16
		cpu.call(cpu.fetch16())
		return 24

	case 0xd1: // POP DE
		cpu.Reg.SetDE(cpu.pop16())
		return 12
	case 0xd5: // PUSH DE
		cpu.push16(cpu.Reg.DE())
		return 16
	case 0xd9: // RETI
		cpu.Reg.PC = cpu.pop16()
		cpu.IME = true
		return 16

	case 0xe0: // LDH (a8),A
		cpu.bus.Write(0xff00+uint16(cpu.fetch()), cpu.Reg.A)
		return 12
	case 0xe1: // POP HL
		cpu.Reg.SetHL(cpu.pop16())
		return 12
	case 0xe2: // LD (C),A
		cpu.bus.Write(0xff00+uint16(cpu.Reg.C), cpu.Reg.A)
		return 8
	case 0xe5: // PUSH HL
		cpu.push16(cpu.Reg.HL())
		return 16
	case 0xe8: // ADD SP,e8
		cpu.Reg.SP = cpu.addSP(cpu.fetch())
		return 16
	case 0xe9: // JP HL
		cpu.Reg.PC = cpu.Reg.HL()
		return 4
	case 0xea: // LD (a16),A
		cpu.bus.Write(cpu.fetch16(), cpu.Reg.A)
		return 16

	case 0xf0: // LDH A,(a8)
		cpu.Reg.A = cpu.bus.Read(0xff00 + uint16(cpu.fetch()))
		return 12
	case 0xf1: // POP AF
		cpu.Reg.SetAF(cpu.pop16())
		return 12
	case 0xf2: // LD A,(C)
		cpu.Reg.A = cpu.bus.Read(0xff00 + uint16(cpu.Reg.C))
		return 8
	case 0xf3: // DI
		cpu.IME = false
		cpu.eiPending = false
		return 4
	case 0xf5: // PUSH AF
		cpu.push16(cpu.Reg.AF())
		return 16
	case 0xf8: // LD HL,SP+e8
		cpu.Reg.SetHL(cpu.addSP(cpu.fetch()))
		return 12
	case 0xf9: // LD SP,HL
		cpu.Reg.SP = cpu.Reg.HL()
		return 8
	case 0xfa: // LD A,(a16)
		cpu.Reg.A = cpu.bus.Read(cpu.fetch16())
		return 16
	case 0xfb: // EI
		cpu.eiPending = true
		return 4
	}

	// 0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd.
	// malformed ROMs and padding bytes must not halt emulation
	return 4
}
