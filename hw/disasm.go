package hw

import "fmt"

// Disassembly of each addressing mode, in the nestest log format. Memory is
// only peeked, operand values stored in side-effect ranges are not shown.

func (c *CPU) disasmOp(pc uint16, n int) DisasmOp {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c.peek8(pc + uint16(i))
	}
	return DisasmOp{
		Opcode: opcodeNames[buf[0]],
		Buf:    buf,
		PC:     pc,
	}
}

func (c *CPU) operand16(pc uint16) uint16 {
	return uint16(c.peek8(pc+2))<<8 | uint16(c.peek8(pc+1))
}

// valueAt formats the value stored at addr, if it can be read without side
// effects.
func (c *CPU) valueAt(addr uint16) string {
	val, ok := c.bus.Peek(addr)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" = %02X", val)
}

func disasmImp(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 1)
}

func disasmAcc(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 1)
	op.Oper = "A"
	return op
}

func disasmImm(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 2)
	op.Oper = fmt.Sprintf("#$%02X", op.Buf[1])
	return op
}

func disasmRel(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 2)
	dst := pc + 2 + uint16(int16(int8(op.Buf[1])))
	op.Oper = fmt.Sprintf("$%04X", dst)
	return op
}

func disasmAbs(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 3)
	addr := c.operand16(pc)
	switch op.Opcode {
	case "JMP", "JSR":
		op.Oper = fmt.Sprintf("$%04X", addr)
	default:
		op.Oper = formatAddr(addr) + c.valueAt(addr)
	}
	return op
}

func disasmAbx(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 3)
	addr := c.operand16(pc)
	dst := addr + uint16(c.X)
	op.Oper = fmt.Sprintf("%s,X @ %04X%s", formatAddr(addr), dst, c.valueAt(dst))
	return op
}

func disasmAby(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 3)
	addr := c.operand16(pc)
	dst := addr + uint16(c.Y)
	op.Oper = fmt.Sprintf("%s,Y @ %04X%s", formatAddr(addr), dst, c.valueAt(dst))
	return op
}

func disasmZpg(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 2)
	addr := uint16(op.Buf[1])
	op.Oper = fmt.Sprintf("$%02X%s", addr, c.valueAt(addr))
	return op
}

func disasmZpx(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 2)
	dst := uint16(op.Buf[1] + c.X)
	op.Oper = fmt.Sprintf("$%02X,X @ %02X%s", op.Buf[1], dst, c.valueAt(dst))
	return op
}

func disasmZpy(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 2)
	dst := uint16(op.Buf[1] + c.Y)
	op.Oper = fmt.Sprintf("$%02X,Y @ %02X%s", op.Buf[1], dst, c.valueAt(dst))
	return op
}

// JMP-only.
func disasmInd(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 3)
	ptr := c.operand16(pc)
	lo := c.peek8(ptr)
	hi := c.peek8(ptr&0xFF00 | uint16(uint8(ptr)+1))
	op.Oper = fmt.Sprintf("($%04X) = %04X", ptr, uint16(hi)<<8|uint16(lo))
	return op
}

func disasmIzx(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 2)
	zp := op.Buf[1] + c.X
	dst := uint16(c.peek8(uint16(zp+1)))<<8 | uint16(c.peek8(uint16(zp)))
	op.Oper = fmt.Sprintf("($%02X,X) @ %02X = %04X%s", op.Buf[1], zp, dst, c.valueAt(dst))
	return op
}

func disasmIzy(c *CPU, pc uint16) DisasmOp {
	op := c.disasmOp(pc, 2)
	zp := op.Buf[1]
	base := uint16(c.peek8(uint16(zp+1)))<<8 | uint16(c.peek8(uint16(zp)))
	dst := base + uint16(c.Y)
	op.Oper = fmt.Sprintf("($%02X),Y = %04X @ %04X%s", zp, base, dst, c.valueAt(dst))
	return op
}
