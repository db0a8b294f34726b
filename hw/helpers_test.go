package hw

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

type busCycle struct {
	Addr uint16
	Data uint8
	Kind string // "read" or "write"
}

func (c busCycle) String() string {
	return fmt.Sprintf("%-5s 0x%04x = 0x%02x", c.Kind, c.Addr, c.Data)
}

// flatBus is a 64KB RAM with no mirroring nor side effects. When record is
// set, every access is appended to cycles.
type flatBus struct {
	mem    [0x10000]uint8
	record bool
	cycles []busCycle
}

func (b *flatBus) Read(p *Pins) {
	p.Data = b.mem[p.Addr]
	if b.record {
		b.cycles = append(b.cycles, busCycle{p.Addr, p.Data, "read"})
	}
}

func (b *flatBus) Write(p *Pins) {
	b.mem[p.Addr] = p.Data
	if b.record {
		b.cycles = append(b.cycles, busCycle{p.Addr, p.Data, "write"})
	}
}

func (b *flatBus) Peek(addr uint16) (uint8, bool) {
	return b.mem[addr], true
}

func wantMem(t *testing.T, bus *flatBus, dl dumpline) {
	t.Helper()

	got := bus.mem[dl.off : int(dl.off)+len(dl.bytes)]
	if !bytes.Equal(got, dl.bytes) {
		t.Errorf("memory at $%04X\ngot:  % x\nwant: % x", dl.off, got, dl.bytes)
	}
}

func intOf(v any) int {
	switch v := v.(type) {
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	}
	return v.(int)
}

var flagBits = map[byte]P{
	'n': Negative, 'v': Overflow, 'b': Break, 'd': Decimal,
	'i': Interrupt, 'z': Zero, 'c': Carry,
}

// runAndCheckState runs the cpu for ncycles then checks its state against
// name/value pairs. Names are registers (A, X, Y, PC, SP, P), single
// status bits such as "Pz", or "mem" followed by a memory dump.
func runAndCheckState(t *testing.T, cpu *CPU, ncycles int64, states ...any) {
	t.Helper()

	if len(states)%2 != 0 {
		t.Fatalf("states must be name/value pairs, got %d items", len(states))
	}

	if testing.Verbose() {
		cpu.SetTraceOutput(tbwriter{t}, nil)
		defer cpu.SetTraceOutput(nil, nil)
	}
	cpu.Run(ncycles)

	regs := map[string]int{
		"A": int(cpu.A), "X": int(cpu.X), "Y": int(cpu.Y),
		"PC": int(cpu.PC), "SP": int(cpu.SP),
	}

	for i := 0; i < len(states); i += 2 {
		name, val := states[i].(string), states[i+1]

		if got, ok := regs[name]; ok {
			if want := intOf(val); got != want {
				t.Errorf("%s = $%02X, want $%02X", name, got, want)
			}
			continue
		}

		switch {
		case name == "P":
			if want := P(intOf(val)); cpu.P != want {
				t.Errorf("P = $%02X (%s), want $%02X (%s)", uint8(cpu.P), cpu.P, uint8(want), want)
			}
		case name == "mem":
			for _, dl := range loadDump(t, val.(string)) {
				wantMem(t, cpu.bus.(*flatBus), dl)
			}
		case len(name) == 2 && name[0] == 'P':
			bit, ok := flagBits[name[1]]
			if !ok {
				t.Fatalf("unknown status bit %q", name)
			}
			if got, want := cpu.P.hasFlag(bit), intOf(val) != 0; got != want {
				t.Errorf("%s = %t, want %t", name, got, want)
			}
		default:
			t.Fatalf("unknown state %q", name)
		}
	}

	if t.Failed() {
		t.FailNow()
	}
}

type dumpline struct {
	off   uint16
	bytes []byte
}

// loadDump parses an hex dump, one line per contiguous memory block:
//
//	0600: a2 00 a0 00
//
// Empty lines and those starting with # are ignored.
func loadDump(tb testing.TB, dump string) []dumpline {
	tb.Helper()

	var lines []dumpline
	scan := bufio.NewScanner(strings.NewReader(dump))
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		off, octets, ok := strings.Cut(line, ":")
		if !ok {
			tb.Fatalf("malformed line: %s", line)
		}

		ioff, err := strconv.ParseUint(strings.TrimSpace(off), 16, 16)
		if err != nil {
			tb.Fatalf("malformed offset %s: %s", off, err)
		}
		buf, err := hex.DecodeString(strings.ReplaceAll(octets, " ", ""))
		if err != nil {
			tb.Fatalf("hex decode: %s", err)
		}
		lines = append(lines, dumpline{off: uint16(ioff), bytes: buf})
	}
	if scan.Err() != nil {
		tb.Fatalf("scan error: %s", scan.Err())
	}

	return lines
}

// loadCPUWith loads a flat memory with a dump and returns a CPU connected to
// it, after the reset sequence has been run and the cycle count zeroed.
func loadCPUWith(tb testing.TB, dump string) *CPU {
	bus := &flatBus{}
	for _, line := range loadDump(tb, dump) {
		copy(bus.mem[line.off:], line.bytes)
	}

	cpu := NewCPU(bus)
	cpu.Step()
	cpu.Cycles = 0
	return cpu
}

type tbwriter struct {
	testing.TB
}

func (t tbwriter) Write(p []byte) (int, error) {
	t.TB.Helper()
	t.TB.Log(string(bytes.TrimSpace((p))))
	return len(p), nil
}

func TestLoadDump(t *testing.T) {
	tests := []struct {
		dump string
		want []dumpline
	}{
		{
			dump: `01f0: 0f 0e 0d`,
			want: []dumpline{
				{0x01f0, []byte{0x0f, 0x0e, 0x0d}},
			},
		},
		{
			dump: `
# comment
01f0: 0f 0e 0d 0c 0b 0a 09 08 07 06 05 04 03 02 01 00
0210: 0f 0e
`,
			want: []dumpline{
				{0x01f0, []byte{0x0f, 0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0x00}},
				{0x0210, []byte{0x0f, 0x0e}},
			},
		},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			got := loadDump(t, tt.dump)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].off != tt.want[i].off {
					t.Errorf("got offset %04X, want %04X", got[i].off, tt.want[i].off)
				}
				if !bytes.Equal(got[i].bytes, tt.want[i].bytes) {
					t.Errorf("got bytes % x, want % x", got[i].bytes, tt.want[i].bytes)
				}
			}
		})
	}
}
