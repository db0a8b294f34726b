package hw

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func BenchmarkDisasmOpBytes(b *testing.B) {
	const want = `C000  4C F5 C5  JMP $C5F5                       `

	op := DisasmOp{
		Opcode: "JMP",
		Oper:   "$C5F5",
		Buf:    []byte{0x4c, 0xf5, 0xc5},
		PC:     0xC000,
	}

	var opbytes []byte
	for range b.N {
		opbytes = op.Bytes()
	}

	if string(opbytes) != want {
		b.Fatalf("\ngot:  \"%s\"\nwant: \"%s\"\n", string(opbytes), want)
	}
}

// sideEffectBus hides the PPU registers from Peek.
type sideEffectBus struct {
	flatBus
}

func (b *sideEffectBus) Peek(addr uint16) (uint8, bool) {
	if addr >= 0x2000 && addr < 0x4000 {
		return 0, false
	}
	return b.flatBus.Peek(addr)
}

func TestDisasm(t *testing.T) {
	bus := &sideEffectBus{}
	for _, line := range loadDump(t, `
0010: 00 03
0020: 80 02
0080: 5a
0081: 5b
0282: 77
0300: 11
0302: 22
02ff: 34
0200: 12
0600: a9 32
0602: 4c f5 c5
0605: bd 80 02
0608: a5 80
060a: b5 7f
060c: a1 0e
060e: b1 20
0610: 6c ff 02
0613: d0 fe
0615: ad 02 20
0618: 0a
0619: e8`) {
		copy(bus.mem[line.off:], line.bytes)
	}

	cpu := NewCPU(bus)
	cpu.X = 2
	cpu.Y = 2

	tests := []struct {
		pc   uint16
		want string
	}{
		{0x0600, "LDA #$32"},
		{0x0602, "JMP $C5F5"},
		{0x0605, "LDA $0280,X @ 0282 = 77"},
		{0x0608, "LDA $80 = 5A"},
		{0x060A, "LDA $7F,X @ 81 = 5B"},
		{0x060C, "LDA ($0E,X) @ 10 = 0300 = 11"},
		{0x060E, "LDA ($20),Y = 0280 @ 0282 = 77"},
		{0x0610, "JMP ($02FF) = 1234"},
		{0x0613, "BNE $0613"},
		{0x0615, "LDA PpuStatus_2002"},
		{0x0618, "ASL A"},
		{0x0619, "INX"},
	}
	for _, tt := range tests {
		if got := cpu.Disasm(tt.pc).String(); got != tt.want {
			t.Errorf("Disasm($%04X) = %q, want %q", tt.pc, got, tt.want)
		}
	}
}

type dummyDisasm map[uint16]DisasmOp

func (dd dummyDisasm) Disasm(pc uint16) DisasmOp {
	return dd[pc]
}

var traceOps = dummyDisasm{
	0xE052: DisasmOp{
		PC:     0xE052,
		Buf:    []byte{0xA9, 0x32},
		Opcode: "LDA",
		Oper:   "#$32",
	},
	0xE054: DisasmOp{
		PC:     0xE054,
		Buf:    []byte{0x20, 0xEE, 0xE0},
		Opcode: "JSR",
		Oper:   "$E0EE",
	},
}

func TestTraceFormat(t *testing.T) {
	want := []string{
		`E052  A9 32     LDA #$32                         A:00 X:01 Y:00 P:07 S:F4 PPU:0  ,27  8`,
		`E054  20 EE E0  JSR $E0EE                        A:32 X:01 Y:00 P:05 S:F4 PPU:-1 ,33  10`,
	}

	var out bytes.Buffer
	tr := tracer{d: traceOps, w: &out}

	tr.write(traceRegs{
		PC: 0xE052,
		A:  0x00, X: 0x01, Y: 0x00, P: P(0x07), SP: 0xF4,
		Scanline: 0,
		Dot:      27,
		Cycles:   8,
	})
	tr.write(traceRegs{
		PC: 0xE054,
		A:  0x32, X: 0x01, Y: 0x00, P: P(0x05), SP: 0xF4,
		Scanline: NumScanlines - 1,
		Dot:      33,
		Cycles:   10,
	})

	wantstr := strings.Join(want, "\n") + "\n"
	if out.String() != wantstr {
		t.Fatalf("trace differs\ngot:\n%s\nwant:\n%s\n", out.String(), wantstr)
	}
}

func TestTraceOutput(t *testing.T) {
	cpu := loadCPUWith(t, `0600: a9 32 ea`)
	cpu.PC = 0x0600

	var out bytes.Buffer
	cpu.SetTraceOutput(&out, nil)
	cpu.Step()
	cpu.Step()
	cpu.SetTraceOutput(nil, nil)
	cpu.Step()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d trace lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "0600  A9 32     LDA #$32") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0602  EA        NOP") || !strings.Contains(lines[1], "A:32") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func BenchmarkTraceFormat(b *testing.B) {
	tr := tracer{d: traceOps, w: io.Discard}
	s1 := traceRegs{
		PC: 0xE052,
		A:  0x00, X: 0x01, Y: 0x00, P: P(0x07), SP: 0xF4,
		Dot:    27,
		Cycles: 8,
	}
	s2 := traceRegs{
		PC: 0xE054,
		A:  0x32, X: 0x01, Y: 0x00, P: P(0x05), SP: 0xF4,
		Dot:    33,
		Cycles: 10,
	}

	for range b.N {
		tr.write(s1)
		tr.write(s2)
	}
}
