// Package cpu implements the fetch-decode-execute core of a MOS 6502
// compatible processor, cycle accurate for the documented opcode subset
// in this module (see opcodes.go). Decimal mode, interrupts, and
// undocumented opcodes are not implemented.
package cpu

import (
	"fmt"

	"github.com/mpiresgro/cpu-6502-emu/memory"
)

// Status flag bit positions within P, in the 6502's canonical order.
const (
	P_CARRY     = uint8(0x01)
	P_ZERO      = uint8(0x02)
	P_INTERRUPT = uint8(0x04)
	P_DECIMAL   = uint8(0x08)
	P_BREAK     = uint8(0x10)
	P_RESERVED  = uint8(0x20) // unused bit; not canonically assigned, see Reset.
	P_OVERFLOW  = uint8(0x40)
	P_NEGATIVE  = uint8(0x80)
)

// RESET_VECTOR is the default reset vector address used when Reset is
// called with a zero vector argument.
const RESET_VECTOR = uint16(0xFFFC)

// StackBase is the fixed memory page the stack lives in; SP is ORed with
// this to produce the effective stack address.
const StackBase = uint16(0x0100)

// Chip holds the complete architectural state of a 6502 core: the
// accumulator, index registers, stack pointer, status flags and program
// counter. Chip carries no memory image of its own - every operation takes
// one explicitly - so the same Chip value can be reset and rerun over
// different memory images.
type Chip struct {
	A  uint8  // Accumulator
	X  uint8  // X index register
	Y  uint8  // Y index register
	S  uint8  // Stack pointer
	P  uint8  // Status register (flags)
	PC uint16 // Program counter

	budget int // cycle budget remaining for the in-flight Execute call
}

// UnknownOpcode is returned by Execute when the fetched opcode byte has no
// dispatch entry. It is fatal to the in-flight Execute call.
type UnknownOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode %d at PC=0x%04X", e.Opcode, e.PC)
}

// NewChip returns a Chip with all registers and flags cleared. Callers
// should call Reset before Execute to establish a starting PC.
func NewChip() *Chip {
	return &Chip{}
}

// Reset puts the processor in its documented reset state: PC is set to
// vector (defaulting to RESET_VECTOR when vector is zero), SP is set to
// 0xFF, A/X/Y and all flags are cleared, and mem is zeroed.
//
// Note this sets PC directly to vector rather than reading a pointer
// stored at that address; callers wanting indirection through a real
// hardware-style reset vector table should read the word themselves and
// pass the result in.
func (c *Chip) Reset(mem memory.Memory, vector uint16) {
	if vector == 0 {
		vector = RESET_VECTOR
	}
	mem.PowerOn()
	c.PC = vector
	c.S = 0xFF
	c.A, c.X, c.Y = 0, 0, 0
	c.P = 0
}

// StackAddress returns the current effective stack address (0x0100 | SP).
func (c *Chip) StackAddress() uint16 {
	return StackBase | uint16(c.S)
}

// flag returns whether the given status bit is set.
func (c *Chip) flag(bit uint8) bool {
	return c.P&bit != 0
}

// setFlag sets or clears the given status bit.
func (c *Chip) setFlag(bit uint8, on bool) {
	if on {
		c.P |= bit
	} else {
		c.P &^= bit
	}
}

// setZN sets Z and N from v; other flags are unchanged.
func (c *Chip) setZN(v uint8) {
	c.setFlag(P_ZERO, v == 0)
	c.setFlag(P_NEGATIVE, v&0x80 != 0)
}

// setBITFlags implements BIT's flag update: Z comes from the AND of A and
// operand, while N and V come from the operand itself (bits 7 and 6
// respectively) rather than from the AND result. See opcodes.go's bit
// helper for the resolution of the source's deviation from this.
func (c *Chip) setBITFlags(result, operand uint8) {
	c.setFlag(P_ZERO, result == 0)
	c.setFlag(P_NEGATIVE, operand&0x80 != 0)
	c.setFlag(P_OVERFLOW, operand&0x40 != 0)
}
