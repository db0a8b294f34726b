package hw

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/jx"
	"github.com/google/go-cmp/cmp"

	"dunes/tests"
)

func TestAllOpcodesAreImplemented(t *testing.T) {
	for opcode, op := range ops {
		if op == nil {
			t.Errorf("opcode %02x not implemented", opcode)
		}
		if disasmOps[opcode] == nil {
			t.Errorf("opcode %02x has no disassembler", opcode)
		}
	}
}

// Opcodes for which the processor tests aren't run.
var skippedOps = map[uint8]string{
	// jam the real chip.
	0x02: "JAM", 0x12: "JAM", 0x22: "JAM", 0x32: "JAM",
	0x42: "JAM", 0x52: "JAM", 0x62: "JAM", 0x72: "JAM",
	0x92: "JAM", 0xB2: "JAM", 0xD2: "JAM", 0xF2: "JAM",

	// unstable, the magic constant depends on the chip.
	0x8B: "ANE", 0xAB: "LXA",
}

func TestOpcodes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long test")
	}

	dir := tests.TomHarteProcTestsPath(t)

	for opcode := range 256 {
		opstr := fmt.Sprintf("%02x", opcode)
		if name, ok := skippedOps[uint8(opcode)]; ok {
			t.Run(opstr, func(t *testing.T) { t.Skipf("skipping unsupported opcode %s", name) })
			continue
		}
		t.Run(opstr, testOpcodes(filepath.Join(dir, opstr+".json")))
	}
}

type procState struct {
	PC         uint16
	S, A, X, Y uint8
	P          uint8
	RAM        [][2]int
}

type procTest struct {
	Name    string
	Initial procState
	Final   procState
	Cycles  []busCycle
}

func decodeIntPair(d *jx.Decoder) ([2]int, error) {
	var (
		row [2]int
		i   int
	)
	err := d.Arr(func(d *jx.Decoder) error {
		if i >= len(row) {
			return fmt.Errorf("too many values in ram row")
		}
		v, err := d.Int()
		row[i] = v
		i++
		return err
	})
	return row, err
}

func (s *procState) decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			s.PC, err = d.UInt16()
		case "s":
			s.S, err = d.UInt8()
		case "a":
			s.A, err = d.UInt8()
		case "x":
			s.X, err = d.UInt8()
		case "y":
			s.Y, err = d.UInt8()
		case "p":
			s.P, err = d.UInt8()
		case "ram":
			err = d.Arr(func(d *jx.Decoder) error {
				row, err := decodeIntPair(d)
				s.RAM = append(s.RAM, row)
				return err
			})
		default:
			err = d.Skip()
		}
		return err
	})
}

func decodeCycle(d *jx.Decoder) (busCycle, error) {
	var (
		c busCycle
		i int
	)
	err := d.Arr(func(d *jx.Decoder) error {
		var err error
		switch i {
		case 0:
			c.Addr, err = d.UInt16()
		case 1:
			c.Data, err = d.UInt8()
		case 2:
			c.Kind, err = d.Str()
		default:
			err = d.Skip()
		}
		i++
		return err
	})
	return c, err
}

func decodeProcTests(buf []byte) ([]procTest, error) {
	var all []procTest
	err := jx.DecodeBytes(buf).Arr(func(d *jx.Decoder) error {
		var pt procTest
		err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "name":
				s, err := d.Str()
				pt.Name = s
				return err
			case "initial":
				return pt.Initial.decode(d)
			case "final":
				return pt.Final.decode(d)
			case "cycles":
				return d.Arr(func(d *jx.Decoder) error {
					c, err := decodeCycle(d)
					pt.Cycles = append(pt.Cycles, c)
					return err
				})
			}
			return d.Skip()
		})
		all = append(all, pt)
		return err
	})
	return all, err
}

// testOpcodes runs the processor tests in path. Each test gives the initial
// and final CPU and memory states, and the exact bus accesses in between.
func testOpcodes(path string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		buf, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		all, err := decodeProcTests(buf)
		if err != nil {
			t.Fatal(err)
		}

		bus := &flatBus{}
		cpu := NewCPU(bus)
		cpu.Step() // reset

		for _, tt := range all {
			clear(bus.mem[:])
			for _, row := range tt.Initial.RAM {
				bus.mem[row[0]] = uint8(row[1])
			}

			cpu.PC = tt.Initial.PC
			cpu.SP = tt.Initial.S
			cpu.A = tt.Initial.A
			cpu.X = tt.Initial.X
			cpu.Y = tt.Initial.Y
			cpu.P = P(tt.Initial.P)

			bus.cycles = bus.cycles[:0]
			bus.record = true
			cpu.Step()
			bus.record = false

			if diff := cmp.Diff(tt.Cycles, bus.cycles); diff != "" {
				t.Fatalf("%s: bus cycles mismatch (-want +got):\n%s", tt.Name, diff)
			}

			got := procState{PC: cpu.PC, S: cpu.SP, A: cpu.A, X: cpu.X, Y: cpu.Y, P: uint8(cpu.P)}
			want := tt.Final
			want.RAM = nil
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("%s: cpu state mismatch (-want +got):\n%s", tt.Name, diff)
			}

			for _, row := range tt.Final.RAM {
				if got := bus.mem[row[0]]; got != uint8(row[1]) {
					t.Fatalf("%s: ram[0x%04x] = 0x%02x, want 0x%02x", tt.Name, row[0], got, row[1])
				}
			}
		}
	}
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name   string
		dump   string
		setup  func(cpu *CPU)
		cycles int64
		want   []any // runAndCheckState states
	}{
		{
			name:   "CPX less",
			dump:   `0600: a2 40 e0 41`, // LDX #$40; CPX #$41
			cycles: 4,
			want:   []any{"X", 0x40, "P", 0b10110000},
		},
		{
			name:   "CPX equal",
			dump:   `0600: a2 40 e0 40`, // LDX #$40; CPX #$40
			cycles: 4,
			want:   []any{"X", 0x40, "P", 0b00110011},
		},
		{
			name:   "CPX greater",
			dump:   `0600: a2 40 e0 39`, // LDX #$40; CPX #$39
			cycles: 4,
			want:   []any{"X", 0x40, "P", 0b00110001},
		},
		{
			name:   "LDA STA",
			dump:   `0600: a9 01 8d 00 02 a9 05 8d 01 02 a9 08 8d 02 02`,
			cycles: 6 * 3,
			want:   []any{"A", 0x08, "PC", 0x060F, "SP", 0xFD, "mem", `0200: 01 05 08`},
		},
		{
			name:   "EOR zeropage",
			dump:   "0000: 06\n0600: 45 00",
			setup:  func(cpu *CPU) { cpu.A = 0x80 },
			cycles: 3,
			want:   []any{"A", 0x86, "Pn", 1, "Pz", 0},
		},
		{
			name:   "ROR zeropage",
			dump:   "0000: 55\n0600: 66 00",
			setup:  func(cpu *CPU) { cpu.P.setFlags(Carry) },
			cycles: 5,
			want:   []any{"Pn", 1, "Pc", 1, "Pz", 0, "mem", `0000: aa`},
		},
		{
			name:   "PHA PLA",
			dump:   `0600: a9 aa 48 a9 11 68`,
			setup:  func(cpu *CPU) { cpu.SP = 0xFF },
			cycles: 2 + 3 + 2 + 4,
			want:   []any{"PC", 0x0606, "A", 0xAA, "SP", 0xFF, "Pn", 1},
		},
		{
			// Push 0..15 while storing them at $0200, then pull them back
			// into $0210.
			name: "stack loop",
			dump: `
0600: a2 00 a0 00 8a 99 00 02 48 e8 c8 c0 10 d0 f5 68
0610: 99 00 02 c8 c0 20 d0 f7`,
			setup:  func(cpu *CPU) { cpu.SP = 0xFF },
			cycles: 562,
			want: []any{
				"PC", 0x0618, "A", 0x00, "X", 0x10, "Y", 0x20, "SP", 0xFF,
				"mem", `
01f0: 0f 0e 0d 0c 0b 0a 09 08 07 06 05 04 03 02 01 00
0200: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f
0210: 0f 0e 0d 0c 0b 0a 09 08 07 06 05 04 03 02 01 00`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := loadCPUWith(t, tt.dump)
			cpu.PC = 0x0600
			cpu.P = 0x30
			if tt.setup != nil {
				tt.setup(cpu)
			}
			runAndCheckState(t, cpu, tt.cycles, tt.want...)
		})
	}
}
