package cpu

import "github.com/mpiresgro/cpu-6502-emu/memory"

// This file holds the cycle-debiting primitives (fetch/read/write/push/pop)
// and the addressing-mode helpers built on top of them. Every primitive
// decrements c.budget by the cycles noted in its comment; the budget may
// run negative when a handler overruns a too-small request, which Execute
// tolerates (see engine.go).

// fetchByte reads the byte at PC and advances PC. 1 cycle.
func (c *Chip) fetchByte(mem memory.Memory) uint8 {
	v := mem.Read(c.PC)
	c.PC++
	c.budget--
	return v
}

// fetchWord fetches two bytes and assembles them little-endian. 2 cycles.
func (c *Chip) fetchWord(mem memory.Memory) uint16 {
	lo := c.fetchByte(mem)
	hi := c.fetchByte(mem)
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads mem[addr]. 1 cycle.
func (c *Chip) readByte(mem memory.Memory, addr uint16) uint8 {
	c.budget--
	return mem.Read(addr)
}

// writeByte writes val to mem[addr]. 1 cycle.
func (c *Chip) writeByte(mem memory.Memory, addr uint16, val uint8) {
	c.budget--
	mem.Write(addr, val)
}

// readWord reads a little-endian word at addr and addr+1 (no zero-page
// wrap; callers needing that use readWordZP). 2 cycles.
func (c *Chip) readWord(mem memory.Memory, addr uint16) uint16 {
	lo := c.readByte(mem, addr)
	hi := c.readByte(mem, addr+1)
	return uint16(hi)<<8 | uint16(lo)
}

// readWordZP reads a little-endian word from a zero-page pointer, wrapping
// the high byte within the zero page (addr 0xFF wraps to 0x00, not
// 0x0100). This resolves the source's indirect zero-page wrapping
// ambiguity (spec.md §9.4) in favor of real hardware behavior. 2 cycles.
func (c *Chip) readWordZP(mem memory.Memory, addr uint8) uint16 {
	lo := c.readByte(mem, uint16(addr))
	hi := c.readByte(mem, uint16(addr+1))
	return uint16(hi)<<8 | uint16(lo)
}

// writeWord writes w little-endian at addr, addr+1. 2 cycles.
func (c *Chip) writeWord(mem memory.Memory, addr uint16, w uint16) {
	c.writeByte(mem, addr, uint8(w))
	c.writeByte(mem, addr+1, uint8(w>>8))
}

// pushByte writes val at the stack address and decrements SP. 1 cycle.
func (c *Chip) pushByte(mem memory.Memory, val uint8) {
	c.writeByte(mem, c.StackAddress(), val)
	c.S--
}

// popByte increments SP and reads at the stack address. 1 cycle.
func (c *Chip) popByte(mem memory.Memory) uint8 {
	c.S++
	return c.readByte(mem, c.StackAddress())
}

// pushWord pushes w as two bytes, high byte first. 2 cycles.
func (c *Chip) pushWord(mem memory.Memory, w uint16) {
	c.pushByte(mem, uint8(w>>8))
	c.pushByte(mem, uint8(w))
}

// popWord pops two bytes, low byte first (the mirror of pushWord). 2 cycles.
func (c *Chip) popWord(mem memory.Memory) uint16 {
	lo := c.popByte(mem)
	hi := c.popByte(mem)
	return uint16(hi)<<8 | uint16(lo)
}

// pageCrossed reports whether adding index to the low byte of base
// overflows into the next page, per spec.md §4.3.2's page-crossing rule.
func pageCrossed(base uint16, index uint8) bool {
	return (base&0xFF)+uint16(index) > 0xFF
}

// addrZP implements zero-page addressing: fetch byte -> addr. No extra
// cycles beyond the fetch.
func (c *Chip) addrZP(mem memory.Memory) uint16 {
	return uint16(c.fetchByte(mem))
}

// addrZPIndexed implements zero-page,X and zero-page,Y addressing: fetch
// byte -> base; addr := (base + index) mod 256. 1 extra cycle.
func (c *Chip) addrZPIndexed(mem memory.Memory, index uint8) uint16 {
	base := c.fetchByte(mem)
	c.budget--
	return uint16(base + index)
}

// addrAbsolute implements absolute addressing: fetch word -> addr. No
// extra cycles beyond the fetch.
func (c *Chip) addrAbsolute(mem memory.Memory) uint16 {
	return c.fetchWord(mem)
}

// addrAbsoluteIndexedRead implements absolute,X / absolute,Y addressing
// for reads: fetch word -> base; addr := base + index; 1 extra cycle only
// if the addition crosses a page boundary.
func (c *Chip) addrAbsoluteIndexedRead(mem memory.Memory, index uint8) uint16 {
	base := c.fetchWord(mem)
	if pageCrossed(base, index) {
		c.budget--
	}
	return base + uint16(index)
}

// addrAbsoluteIndexedAlways implements the "always 5/7-cycle" absolute,X
// form used by indexed writes and read-modify-write instructions: the
// page-cross penalty is always charged, modelling the 6502's dummy read.
func (c *Chip) addrAbsoluteIndexedAlways(mem memory.Memory, index uint8) uint16 {
	base := c.fetchWord(mem)
	c.budget--
	return base + uint16(index)
}

// addrIndirectX implements (indirect,X) addressing: fetch byte -> base;
// zp := (base + X) mod 256; read word at zp (wrapping) -> addr. 1 extra
// cycle for the index calculation.
func (c *Chip) addrIndirectX(mem memory.Memory) uint16 {
	base := c.fetchByte(mem)
	c.budget--
	zp := base + c.X
	return c.readWordZP(mem, zp)
}

// addrIndirectYRead implements (indirect),Y addressing for reads: fetch
// byte -> zp; read word at zp (wrapping) -> base; addr := base + Y; 1
// extra cycle only if the addition crosses a page boundary.
func (c *Chip) addrIndirectYRead(mem memory.Memory) uint16 {
	zp := c.fetchByte(mem)
	base := c.readWordZP(mem, zp)
	if pageCrossed(base, c.Y) {
		c.budget--
	}
	return base + uint16(c.Y)
}

// addrIndirectYAlways implements the "6-cycle form" of (indirect),Y used
// by STA, where the page-cross penalty is always charged.
func (c *Chip) addrIndirectYAlways(mem memory.Memory) uint16 {
	zp := c.fetchByte(mem)
	base := c.readWordZP(mem, zp)
	c.budget--
	return base + uint16(c.Y)
}
