package cpu

import "github.com/mpiresgro/cpu-6502-emu/memory"

// addrMode is the common shape of every addressing-mode helper once its
// internal details (fetch vs. read, indexed vs. not) are behind us: given
// memory it produces an effective address and has already debited every
// cycle the mode itself costs.
type addrMode func(*Chip, memory.Memory) uint16

// addrImmediate treats the next program byte itself as the operand. It
// debits nothing on its own; the 1 cycle it costs is charged by the
// readByte call that follows in loadReg/logical/bit.
func (c *Chip) addrImmediate(mem memory.Memory) uint16 {
	addr := c.PC
	c.PC++
	return addr
}

func (c *Chip) addrZPX(mem memory.Memory) uint16 { return c.addrZPIndexed(mem, c.X) }
func (c *Chip) addrZPY(mem memory.Memory) uint16 { return c.addrZPIndexed(mem, c.Y) }

func (c *Chip) addrAbsoluteX(mem memory.Memory) uint16 {
	return c.addrAbsoluteIndexedRead(mem, c.X)
}
func (c *Chip) addrAbsoluteY(mem memory.Memory) uint16 {
	return c.addrAbsoluteIndexedRead(mem, c.Y)
}
func (c *Chip) addrAbsoluteXAlways(mem memory.Memory) uint16 {
	return c.addrAbsoluteIndexedAlways(mem, c.X)
}
func (c *Chip) addrAbsoluteYAlways(mem memory.Memory) uint16 {
	return c.addrAbsoluteIndexedAlways(mem, c.Y)
}

// loadReg reads one byte through mode and assigns it to reg, updating Z/N.
func (c *Chip) loadReg(mem memory.Memory, reg *uint8, mode addrMode) {
	addr := mode(c, mem)
	v := c.readByte(mem, addr)
	*reg = v
	c.setZN(v)
}

// storeReg writes val through mode. Flags are never touched by a store.
func (c *Chip) storeReg(mem memory.Memory, val uint8, mode addrMode) {
	addr := mode(c, mem)
	c.writeByte(mem, addr, val)
}

// logical reads one byte through mode, combines it into A via op, and
// updates Z/N from the result. Used by AND/EOR/ORA.
func (c *Chip) logical(mem memory.Memory, mode addrMode, op func(a, v uint8) uint8) {
	addr := mode(c, mem)
	v := c.readByte(mem, addr)
	c.A = op(c.A, v)
	c.setZN(c.A)
}

// bit implements BIT: Z from A&operand, N/V from the operand per the
// resolution in SPEC_FULL.md §9.2.
func (c *Chip) bit(mem memory.Memory, mode addrMode) {
	addr := mode(c, mem)
	v := c.readByte(mem, addr)
	c.setBITFlags(c.A&v, v)
}

// incDec implements INC/DEC: read, a dummy modify cycle, write back,
// update Z/N from the new value. delta is 1 for INC, 0xFF (wrapping -1)
// for DEC.
func (c *Chip) incDec(mem memory.Memory, mode addrMode, delta uint8) {
	addr := mode(c, mem)
	v := c.readByte(mem, addr)
	c.budget-- // dummy modify cycle
	v += delta
	c.writeByte(mem, addr, v)
	c.setZN(v)
}

func andOp(a, v uint8) uint8 { return a & v }
func eorOp(a, v uint8) uint8 { return a ^ v }
func oraOp(a, v uint8) uint8 { return a | v }

// dispatch decodes and executes a single instruction given its opcode
// byte, which has already been fetched (and PC already advanced past it).
// Returns UnknownOpcode if op has no entry in the documented opcode set
// from spec.md §6.
func (c *Chip) dispatch(op uint8, mem memory.Memory) error {
	switch op {

	// LDA
	case 0xA9:
		c.loadReg(mem, &c.A, (*Chip).addrImmediate)
	case 0xA5:
		c.loadReg(mem, &c.A, (*Chip).addrZP)
	case 0xB5:
		c.loadReg(mem, &c.A, (*Chip).addrZPX)
	case 0xAD:
		c.loadReg(mem, &c.A, (*Chip).addrAbsolute)
	case 0xBD:
		c.loadReg(mem, &c.A, (*Chip).addrAbsoluteX)
	case 0xB9:
		c.loadReg(mem, &c.A, (*Chip).addrAbsoluteY)
	case 0xA1:
		c.loadReg(mem, &c.A, (*Chip).addrIndirectX)
	case 0xB1:
		c.loadReg(mem, &c.A, (*Chip).addrIndirectYRead)

	// LDX
	case 0xA2:
		c.loadReg(mem, &c.X, (*Chip).addrImmediate)
	case 0xA6:
		c.loadReg(mem, &c.X, (*Chip).addrZP)
	case 0xB6:
		c.loadReg(mem, &c.X, (*Chip).addrZPY)
	case 0xAE:
		c.loadReg(mem, &c.X, (*Chip).addrAbsolute)
	case 0xBE:
		c.loadReg(mem, &c.X, (*Chip).addrAbsoluteY)

	// LDY
	case 0xA0:
		c.loadReg(mem, &c.Y, (*Chip).addrImmediate)
	case 0xA4:
		c.loadReg(mem, &c.Y, (*Chip).addrZP)
	case 0xB4:
		c.loadReg(mem, &c.Y, (*Chip).addrZPX)
	case 0xAC:
		c.loadReg(mem, &c.Y, (*Chip).addrAbsolute)
	case 0xBC:
		c.loadReg(mem, &c.Y, (*Chip).addrAbsoluteX)

	// STA
	case 0x85:
		c.storeReg(mem, c.A, (*Chip).addrZP)
	case 0x95:
		c.storeReg(mem, c.A, (*Chip).addrZPX)
	case 0x8D:
		c.storeReg(mem, c.A, (*Chip).addrAbsolute)
	case 0x9D:
		c.storeReg(mem, c.A, (*Chip).addrAbsoluteXAlways)
	case 0x99:
		c.storeReg(mem, c.A, (*Chip).addrAbsoluteYAlways)
	case 0x81:
		c.storeReg(mem, c.A, (*Chip).addrIndirectX)
	case 0x91:
		c.storeReg(mem, c.A, (*Chip).addrIndirectYAlways)

	// STX. Zero-page,Y stores X (resolution of spec.md §9.3's likely
	// transcription error).
	case 0x86:
		c.storeReg(mem, c.X, (*Chip).addrZP)
	case 0x96:
		c.storeReg(mem, c.X, (*Chip).addrZPY)
	case 0x8E:
		c.storeReg(mem, c.X, (*Chip).addrAbsolute)

	// STY
	case 0x84:
		c.storeReg(mem, c.Y, (*Chip).addrZP)
	case 0x94:
		c.storeReg(mem, c.Y, (*Chip).addrZPX)
	case 0x8C:
		c.storeReg(mem, c.Y, (*Chip).addrAbsolute)

	// AND
	case 0x29:
		c.logical(mem, (*Chip).addrImmediate, andOp)
	case 0x25:
		c.logical(mem, (*Chip).addrZP, andOp)
	case 0x35:
		c.logical(mem, (*Chip).addrZPX, andOp)
	case 0x2D:
		c.logical(mem, (*Chip).addrAbsolute, andOp)
	case 0x3D:
		c.logical(mem, (*Chip).addrAbsoluteX, andOp)
	case 0x39:
		c.logical(mem, (*Chip).addrAbsoluteY, andOp)
	case 0x21:
		c.logical(mem, (*Chip).addrIndirectX, andOp)
	case 0x31:
		c.logical(mem, (*Chip).addrIndirectYRead, andOp)

	// EOR
	case 0x49:
		c.logical(mem, (*Chip).addrImmediate, eorOp)
	case 0x45:
		c.logical(mem, (*Chip).addrZP, eorOp)
	case 0x55:
		c.logical(mem, (*Chip).addrZPX, eorOp)
	case 0x4D:
		c.logical(mem, (*Chip).addrAbsolute, eorOp)
	case 0x5D:
		c.logical(mem, (*Chip).addrAbsoluteX, eorOp)
	case 0x59:
		c.logical(mem, (*Chip).addrAbsoluteY, eorOp)
	case 0x41:
		c.logical(mem, (*Chip).addrIndirectX, eorOp)
	case 0x51:
		c.logical(mem, (*Chip).addrIndirectYRead, eorOp)

	// ORA
	case 0x09:
		c.logical(mem, (*Chip).addrImmediate, oraOp)
	case 0x05:
		c.logical(mem, (*Chip).addrZP, oraOp)
	case 0x15:
		c.logical(mem, (*Chip).addrZPX, oraOp)
	case 0x0D:
		c.logical(mem, (*Chip).addrAbsolute, oraOp)
	case 0x1D:
		c.logical(mem, (*Chip).addrAbsoluteX, oraOp)
	case 0x19:
		c.logical(mem, (*Chip).addrAbsoluteY, oraOp)
	case 0x01:
		c.logical(mem, (*Chip).addrIndirectX, oraOp)
	case 0x11:
		c.logical(mem, (*Chip).addrIndirectYRead, oraOp)

	// BIT
	case 0x24:
		c.bit(mem, (*Chip).addrZP)
	case 0x2C:
		c.bit(mem, (*Chip).addrAbsolute)

	// Register transfers
	case 0xAA: // TAX
		c.X = c.A
		c.budget--
		c.setZN(c.X)
	case 0xA8: // TAY
		c.Y = c.A
		c.budget--
		c.setZN(c.Y)
	case 0x8A: // TXA
		c.A = c.X
		c.budget--
		c.setZN(c.A)
	case 0x98: // TYA
		c.A = c.Y
		c.budget--
		c.setZN(c.A)

	// Stack
	case 0xBA: // TSX - sets Z/N from A, not X. Resolved per spec.md §9.1:
		// the source does this and this module keeps the documented
		// behavior rather than silently "fixing" it to canonical.
		c.X = c.S
		c.budget--
		c.setZN(c.A)
	case 0x9A: // TXS - no flag changes
		c.S = c.X
		c.budget--
	case 0x48: // PHA
		c.pushByte(mem, c.A)
		c.budget--
	case 0x08: // PHP
		c.pushByte(mem, c.P)
		c.budget--
	case 0x68: // PLA - 2 extra cycles beyond the pop itself; see RTS below
		// for why pull-style ops need this over a literal reading of
		// spec.md §4.3.4's "debit 1" text.
		c.A = c.popByte(mem)
		c.budget -= 2
		c.setZN(c.A)
	case 0x28: // PLP
		c.P = c.popByte(mem)
		c.budget -= 2

	// Jumps and calls
	case 0x4C: // JMP absolute
		c.PC = c.addrAbsolute(mem)
	case 0x6C: // JMP indirect
		ptr := c.fetchWord(mem)
		c.PC = c.readWord(mem, ptr)
	case 0x20: // JSR
		target := c.fetchWord(mem)
		c.pushWord(mem, c.PC-1)
		c.PC = target
		c.budget--
	case 0x60: // RTS. Totals 6 cycles per spec.md §4.3.5 and the worked
		// JSR/RTS scenario in §8; reaching that from opcode fetch(1) +
		// pop word(2) needs 3 more, not the 2 the prose describes, which
		// undercounts the pull's dummy read the same way PLA/PLP do.
		ret := c.popWord(mem)
		c.PC = ret + 1
		c.budget -= 3

	// INC
	case 0xE6:
		c.incDec(mem, (*Chip).addrZP, 1)
	case 0xF6:
		c.incDec(mem, (*Chip).addrZPX, 1)
	case 0xEE:
		c.incDec(mem, (*Chip).addrAbsolute, 1)
	case 0xFE:
		c.incDec(mem, (*Chip).addrAbsoluteXAlways, 1)

	// DEC
	case 0xC6:
		c.incDec(mem, (*Chip).addrZP, 0xFF)
	case 0xD6:
		c.incDec(mem, (*Chip).addrZPX, 0xFF)
	case 0xCE:
		c.incDec(mem, (*Chip).addrAbsolute, 0xFF)
	case 0xDE:
		c.incDec(mem, (*Chip).addrAbsoluteXAlways, 0xFF)

	default:
		return UnknownOpcode{Opcode: op, PC: c.PC - 1}
	}
	return nil
}
