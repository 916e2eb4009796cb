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

// Package cpu implements the SM83 core of the console. The CPU has no
// knowledge of what is attached to the bus. Everything outside the register
// file is reached through the Bus interface.
package cpu

import (
	"fmt"

	"github.com/hatless/gopherboy/hardware/cpu/registers"
	"github.com/hatless/gopherboy/hardware/memory/memorymap"
)

// Bus is the CPU's view of system memory.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// interrupt service constants.
const (
	interruptCycles = 20
	haltCycles      = 4
)

// interrupt vectors in priority order. the bit position in IE/IF is the index
// into this array.
var interruptVectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// CPU is the SM83 core.
type CPU struct {
	Reg registers.Registers

	bus Bus

	// interrupt master enable. gates servicing but not the pending state
	IME bool

	// set by the HALT instruction. cleared when an enabled interrupt
	// becomes pending, whether or not it is serviced
	Halted bool

	// the EI instruction enables interrupts after the following
	// instruction, not immediately
	eiPending bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(bus Bus) *CPU {
	return &CPU{
		Reg: registers.NewRegisters(),
		bus: bus,
	}
}

func (cpu *CPU) String() string {
	return fmt.Sprintf("%s IME=%v halted=%v", cpu.Reg.String(), cpu.IME, cpu.Halted)
}

// Reset the CPU to power-on defaults.
func (cpu *CPU) Reset() {
	cpu.Reg.Reset()
	cpu.IME = false
	cpu.Halted = false
	cpu.eiPending = false
}

// fetch the byte at PC and advance. PC arithmetic always wraps.
func (cpu *CPU) fetch() uint8 {
	v := cpu.bus.Read(cpu.Reg.PC)
	cpu.Reg.PC++
	return v
}

// fetch16 reads a little-endian 16-bit value at PC and advances.
func (cpu *CPU) fetch16() uint16 {
	lo := uint16(cpu.fetch())
	hi := uint16(cpu.fetch())
	return hi<<8 | lo
}

func (cpu *CPU) push16(v uint16) {
	cpu.Reg.SP--
	cpu.bus.Write(cpu.Reg.SP, uint8(v>>8))
	cpu.Reg.SP--
	cpu.bus.Write(cpu.Reg.SP, uint8(v))
}

func (cpu *CPU) pop16() uint16 {
	lo := uint16(cpu.bus.Read(cpu.Reg.SP))
	cpu.Reg.SP++
	hi := uint16(cpu.bus.Read(cpu.Reg.SP))
	cpu.Reg.SP++
	return hi<<8 | lo
}

// pendingInterrupts returns the set of interrupts that are both raised and
// enabled.
func (cpu *CPU) pendingInterrupts() uint8 {
	ie := cpu.bus.Read(memorymap.AddressIE)
	ifl := cpu.bus.Read(memorymap.AddressIF)
	return ie & ifl & 0x1f
}

// serviceInterrupt jumps to the vector of the highest priority pending
// interrupt. Must only be called when an interrupt is pending and IME is set.
func (cpu *CPU) serviceInterrupt(pending uint8) int {
	for bit := 0; bit < len(interruptVectors); bit++ {
		mask := uint8(1) << bit
		if pending&mask == mask {
			ifl := cpu.bus.Read(memorymap.AddressIF)
			cpu.bus.Write(memorymap.AddressIF, ifl&^mask)
			cpu.IME = false
			cpu.push16(cpu.Reg.PC)
			cpu.Reg.PC = interruptVectors[bit]
			return interruptCycles
		}
	}
	return 0
}

// Step executes one instruction, or services one interrupt, and returns the
// number of cycles consumed.
func (cpu *CPU) Step() int {
	pending := cpu.pendingInterrupts()

	// a pending and enabled interrupt always wakes a halted CPU. with IME
	// clear the CPU resumes execution without servicing
	if pending != 0 {
		cpu.Halted = false
		if cpu.IME {
			return cpu.serviceInterrupt(pending)
		}
	}

	if cpu.Halted {
		return haltCycles
	}

	// EI from the previous instruction takes effect after this one
	enableAfter := cpu.eiPending

	opcode := cpu.fetch()
	cycles := cpu.execute(opcode)

	if enableAfter {
		cpu.IME = true
		cpu.eiPending = false
	}

	return cycles
}
