package hw

// Addressing modes. Each one performs the exact bus accesses of the real
// chip, dummy ones included, and returns the effective address.

// imp is used by implied and accumulator modes: the byte following the
// opcode is read and discarded.
func (c *CPU) imp() {
	_ = c.Read8(c.PC) // dummy read
}

func (c *CPU) acc() { c.imp() }

func (c *CPU) zpg() uint16 {
	return uint16(c.fetch8())
}

func (c *CPU) zpx() uint16 {
	base := c.fetch8()
	_ = c.Read8(uint16(base)) // dummy read
	return uint16(base + c.X)
}

func (c *CPU) zpy() uint16 {
	base := c.fetch8()
	_ = c.Read8(uint16(base)) // dummy read
	return uint16(base + c.Y)
}

func (c *CPU) abs() uint16 {
	return c.fetch16()
}

func (c *CPU) abx(dummyread bool) uint16 {
	return c.indexed(c.fetch16(), c.X, dummyread)
}

func (c *CPU) aby(dummyread bool) uint16 {
	return c.indexed(c.fetch16(), c.Y, dummyread)
}

// indexed adds idx to base. On page crossing, or if dummyread is set, the
// address with the unfixed high byte is read first.
func (c *CPU) indexed(base uint16, idx uint8, dummyread bool) uint16 {
	addr := base + uint16(idx)
	if dummyread || pagesDiffer(base, addr) {
		_ = c.Read8(base&0xFF00 | addr&0x00FF) // dummy read
	}
	return addr
}

func (c *CPU) izx() uint16 {
	ptr := c.fetch8()
	_ = c.Read8(uint16(ptr)) // dummy read
	return c.zpr16(ptr + c.X)
}

func (c *CPU) izy(dummyread bool) uint16 {
	return c.indexed(c.zpr16(c.fetch8()), c.Y, dummyread)
}

// ind is only used by JMP. The pointer high byte is fetched without carry
// into the high byte of the pointer address.
func (c *CPU) ind() uint16 {
	ptr := c.fetch16()
	lo := c.Read8(ptr)
	hi := c.Read8(ptr&0xFF00 | uint16(uint8(ptr)+1))
	return uint16(hi)<<8 | uint16(lo)
}

// zpr16 reads a 16-bit pointer from zero page, wrapping at 0xFF.
func (c *CPU) zpr16(ptr uint8) uint16 {
	lo := c.Read8(uint16(ptr))
	hi := c.Read8(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// instruction helpers

func (c *CPU) branch(taken bool) {
	off := int8(c.fetch8())
	if !taken {
		return
	}

	// A taken branch doesn't poll interrupts on its last cycle, unless it
	// crosses a page.
	if c.runIRQ && !c.prevRunIRQ {
		c.runIRQ = false
	}
	_ = c.Read8(c.PC) // dummy read

	dst := c.PC + uint16(int16(off))
	if pagesDiffer(c.PC, dst) {
		_ = c.Read8(c.PC&0xFF00 | dst&0x00FF) // dummy read
	}
	c.PC = dst
}

// setreg sets a register and updates N and Z.
func (c *CPU) setreg(reg *uint8, val uint8) {
	*reg = val
	c.P.setNZ(val)
}

func (c *CPU) add(val uint8) {
	carry := uint16(c.P & Carry)
	sum := uint16(c.A) + uint16(val) + carry
	res := uint8(sum)

	c.P.setFlag(Carry, sum > 0xFF)
	c.P.setFlag(Overflow, (c.A^res)&(val^res)&0x80 != 0)
	c.setreg(&c.A, res)
}

func (c *CPU) compare(reg, val uint8) {
	c.P.setNZ(reg - val)
	c.P.setFlag(Carry, reg >= val)
}

// sh implements the unstable SHA/SHX/SHY/TAS stores: the stored value is
// anded with the high byte of the base address plus one, and on page
// crossing that value also replaces the high byte of the target address.
func (c *CPU) sh(base uint16, idx, val uint8) {
	addr := base + uint16(idx)
	_ = c.Read8(base&0xFF00 | addr&0x00FF) // dummy read

	val &= uint8(base>>8) + 1
	if pagesDiffer(base, addr) {
		addr = uint16(val)<<8 | addr&0x00FF
	}
	c.Write8(addr, val)
}
