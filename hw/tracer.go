package hw

import (
	"fmt"
	"io"
)

// traceRegs is the CPU state shown on an execution trace line.
type traceRegs struct {
	A, X, Y, SP uint8
	P           P
	PC          uint16

	Cycles   int64
	Scanline int
	Dot      uint32
}

type disasmer interface {
	Disasm(pc uint16) DisasmOp
}

// tracer writes one line per instruction, in the layout of the nestest log.
type tracer struct {
	d   disasmer
	w   io.Writer
	buf []byte
}

const (
	hexDigits = "0123456789ABCDEF"

	opcodeCol = 16 // mnemonic column
	regsCol   = 49 // registers column
)

func appendHex8(b []byte, v uint8) []byte {
	return append(b, hexDigits[v>>4], hexDigits[v&0xF])
}

func padTo(b []byte, col int) []byte {
	for len(b) < col {
		b = append(b, ' ')
	}
	return b
}

func (t *tracer) write(r traceRegs) {
	b := t.d.Disasm(r.PC).AppendText(t.buf[:0])
	b = padTo(b, regsCol)

	regs := [...]struct {
		name byte
		val  uint8
	}{{'A', r.A}, {'X', r.X}, {'Y', r.Y}, {'P', uint8(r.P)}, {'S', r.SP}}
	for _, reg := range regs {
		b = append(b, reg.name, ':')
		b = appendHex8(b, reg.val)
		b = append(b, ' ')
	}

	sl := r.Scanline
	if sl == NumScanlines-1 {
		sl = -1 // pre-render
	}
	b = fmt.Appendf(b, "PPU:%-3d,%-3d %d\n", sl, r.Dot, r.Cycles)

	t.buf = b
	t.w.Write(b)
}

// DisasmOp is a disassembled instruction. Oper shows the effective address
// and the value found there when it can be peeked.
type DisasmOp struct {
	PC     uint16
	Buf    []byte // raw instruction bytes
	Opcode string
	Oper   string
}

// AppendText appends the address, raw bytes and text of the instruction to
// b, padded to 48 columns.
func (d DisasmOp) AppendText(b []byte) []byte {
	const width = regsCol - 1

	start := len(b)
	b = appendHex8(b, uint8(d.PC>>8))
	b = appendHex8(b, uint8(d.PC))
	b = append(b, ' ', ' ')
	for _, v := range d.Buf {
		b = appendHex8(b, v)
		b = append(b, ' ')
	}
	b = padTo(b, start+opcodeCol)
	b = append(b, d.Opcode...)
	b = append(b, ' ')
	b = append(b, d.Oper...)

	if len(b)-start > width {
		return append(b, ' ')
	}
	return padTo(b, start+width)
}

func (d DisasmOp) Bytes() []byte {
	return d.AppendText(make([]byte, 0, 64))
}

func (d DisasmOp) String() string {
	if d.Oper == "" {
		return d.Opcode
	}
	return d.Opcode + " " + d.Oper
}

var (
	ppuRegLabels = [8]string{
		"PpuControl", "PpuMask", "PpuStatus", "OamAddr",
		"OamData", "PpuScroll", "PpuAddr", "PpuData",
	}
	ioRegLabels = [0x18]string{
		"Sq0Duty", "Sq0Sweep", "Sq0Timer", "Sq0Length",
		"Sq1Duty", "Sq1Sweep", "Sq1Timer", "Sq1Length",
		"TrgLinear", "", "TrgTimer", "TrgLength",
		"NoiseVolume", "", "NoisePeriod", "NoiseLength",
		"DmcFreq", "DmcCounter", "DmcAddress", "DmcLength",
		"SpriteDma", "ApuStatus", "Ctrl1", "Ctrl2_FrameCtr",
	}
)

// formatAddr names the I/O registers, other addresses are shown as $NNNN.
func formatAddr(addr uint16) string {
	var label string
	switch {
	case addr >= 0x2000 && addr < 0x2008:
		label = ppuRegLabels[addr-0x2000]
	case addr >= 0x4000 && addr < 0x4018:
		label = ioRegLabels[addr-0x4000]
	}
	if label == "" {
		return fmt.Sprintf("$%04X", addr)
	}
	return fmt.Sprintf("%s_%04X", label, addr)
}
