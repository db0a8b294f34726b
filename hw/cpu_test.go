package hw

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"dunes/tests"
)

func TestPflag(t *testing.T) {
	p := P(0x40)
	p.setFlags(Interrupt)
	if p != 0x44 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x44))
	}

	p.setFlag(Break, true)
	if p != 0x54 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x54))
	}
	p.clearFlags(Break | Overflow)
	if p != 0x04 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x04))
	}

	for _, tt := range []struct {
		val  uint8
		n, z bool
	}{
		{0xff, true, false},
		{0x7f, false, false},
		{0x80, true, false},
		{0x00, false, true},
		{0x01, false, false},
	} {
		p.setNZ(tt.val)
		if p.hasFlag(Negative) != tt.n || p.hasFlag(Zero) != tt.z {
			t.Errorf("setNZ(0x%02x): P = %s, want n=%t z=%t", tt.val, p, tt.n, tt.z)
		}
		if !p.hasFlag(Interrupt) {
			t.Errorf("setNZ(0x%02x) modified I: P = %s", tt.val, p)
		}
	}
}

func TestPString(t *testing.T) {
	p := P(0b00110100)
	if got := p.String(); got != "nvUBdIzc" {
		t.Errorf("got P = %s, want %s", got, "nvUBdIzc")
	}
	p = P(0b00000100)
	if p.String() != "nvubdIzc" {
		t.Errorf("got P = %s, want %s", p.String(), "nvubdIzc")
	}
}

func TestPowerUpReset(t *testing.T) {
	bus := &flatBus{}
	bus.mem[0xFFFC] = 0x34
	bus.mem[0xFFFD] = 0x12
	bus.record = true

	cpu := NewCPU(bus)
	cpu.Step()

	runAndCheckState(t, cpu, 0,
		"PC", 0x1234,
		"SP", 0xFD,
		"P", 0x34,
	)
	if cpu.Cycles != 7 {
		t.Errorf("reset took %d cycles, want 7", cpu.Cycles)
	}

	// No writes, the stack is only read.
	want := []busCycle{
		{0x0000, 0, "read"},
		{0x0100, 0, "read"},
		{0x01FF, 0, "read"},
		{0x01FE, 0, "read"},
		{0xFFFC, 0x34, "read"},
		{0xFFFD, 0x12, "read"},
	}
	if len(bus.cycles) != len(want)+1 {
		t.Fatalf("got %d bus cycles, want %d", len(bus.cycles), len(want)+1)
	}
	// first access is the dummy opcode read at PC, then the remaining ones.
	for i, c := range bus.cycles[1:] {
		if c != want[i] {
			t.Errorf("cycle %d: got %s, want %s", i+1, c, want[i])
		}
	}
}

func TestResetPin(t *testing.T) {
	cpu := loadCPUWith(t, `
0600: ea ea ea ea
FFFC: 00 06`)

	cpu.Step()
	cpu.pins.RST = true
	cpu.Step()
	cpu.pins.RST = false
	if cpu.PC != 0x0602 {
		t.Fatalf("PC = $%04X, want $0602", cpu.PC)
	}

	// reset sequence runs at the next step, with SP decremented by 3.
	sp := cpu.SP
	cpu.Step()
	runAndCheckState(t, cpu, 0,
		"PC", 0x0600,
		"SP", sp-3,
		"Pi", 1,
	)
}

const (
	nopProgram = `
0600: ea ea ea ea ea ea ea ea
0700: 40
FFFA: 00 07
FFFC: 00 06
FFFE: 00 07`
)

func TestNMI(t *testing.T) {
	cpu := loadCPUWith(t, nopProgram)
	cpu.pins.NMI = true

	// The edge is detected during the first NOP, too late to be serviced
	// before the second one.
	cpu.Step()
	if cpu.PC != 0x0601 {
		t.Fatalf("PC = $%04X, want $0601", cpu.PC)
	}

	cpu.Step()
	runAndCheckState(t, cpu, 0,
		"PC", 0x0700,
		"SP", 0xFA,
		"Pi", 1,
		"mem", `01fb: 24 01 06`,
	)
	if cpu.Cycles != 2+7 {
		t.Errorf("got %d cycles, want %d", cpu.Cycles, 2+7)
	}

	// The line is still high, no new edge, no new NMI.
	cpu.Step() // RTI
	cpu.Step()
	cpu.Step()
	if cpu.PC != 0x0603 {
		t.Errorf("PC = $%04X, want $0603", cpu.PC)
	}
}

func TestIRQ(t *testing.T) {
	t.Run("masked", func(t *testing.T) {
		cpu := loadCPUWith(t, nopProgram)
		cpu.pins.IRQ = true
		cpu.Run(8)
		if cpu.PC != 0x0604 {
			t.Errorf("PC = $%04X, want $0604", cpu.PC)
		}
	})

	t.Run("after CLI", func(t *testing.T) {
		// CLI; NOP; NOP
		cpu := loadCPUWith(t, `
0600: 58 ea ea
0700: 40
FFFC: 00 06
FFFE: 00 07`)
		cpu.pins.IRQ = true

		// The instruction following CLI always runs before the IRQ.
		cpu.Step()
		cpu.Step()
		cpu.Step()
		runAndCheckState(t, cpu, 0,
			"PC", 0x0700,
			"SP", 0xFA,
			"Pi", 1,
			"mem", `01fb: 20 02 06`,
		)
	})

	t.Run("after SEI", func(t *testing.T) {
		// CLI; SEI; NOP
		cpu := loadCPUWith(t, `
0600: 58 78 ea
0700: 40
FFFC: 00 06
FFFE: 00 07`)
		cpu.Step()
		cpu.pins.IRQ = true

		// The IRQ is serviced right after SEI, the pushed P has I set.
		cpu.Step()
		cpu.Step()
		runAndCheckState(t, cpu, 0,
			"PC", 0x0700,
			"mem", `01fb: 24 02 06`,
		)
	})
}

// irqBus raises the IRQ line when irqAt is read.
type irqBus struct {
	flatBus
	irqAt uint16
}

func (b *irqBus) Read(p *Pins) {
	if p.Addr == b.irqAt {
		p.IRQ = true
	}
	b.flatBus.Read(p)
}

func TestBranchDelaysIRQ(t *testing.T) {
	tests := []struct {
		name   string
		branch uint8
		irqAt  uint16
		want   string // pushed PC
	}{
		// A taken branch ignores an IRQ raised during its operand fetch, the
		// following instruction runs first.
		{"taken, irq on operand", 0xD0, 0x0602, `01fc: 04 06`},
		{"taken, irq on opcode", 0xD0, 0x0601, `01fc: 03 06`},
		{"not taken, irq on opcode", 0xF0, 0x0601, `01fc: 03 06`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// CLI; Bxx +0; NOP; NOP
			bus := &irqBus{irqAt: tt.irqAt}
			copy(bus.mem[0x0600:], []byte{0x58, tt.branch, 0x00, 0xEA, 0xEA})
			bus.mem[0x0700] = 0x40
			bus.mem[0xFFFC], bus.mem[0xFFFD] = 0x00, 0x06
			bus.mem[0xFFFE], bus.mem[0xFFFF] = 0x00, 0x07

			cpu := NewCPU(bus)
			cpu.Step() // reset
			for cpu.PC != 0x0700 {
				if cpu.PC > 0x0605 {
					t.Fatalf("IRQ not serviced, PC = $%04X", cpu.PC)
				}
				cpu.Step()
			}
			runAndCheckState(t, cpu, 0, "Pi", 1)
			want := loadDump(t, tt.want)[0]
			wantMem(t, &bus.flatBus, want)
		})
	}
}

func TestBRK(t *testing.T) {
	// BRK; padding; NOP
	cpu := loadCPUWith(t, `
0600: 00 ff ea
0700: 40
FFFC: 00 06
FFFE: 00 07`)
	cpu.P = 0x20

	cpu.Step()
	runAndCheckState(t, cpu, 0,
		"PC", 0x0700,
		"SP", 0xFA,
		"P", 0x24,
		"mem", `01fb: 30 02 06`,
	)
	if cpu.Cycles != 7 {
		t.Errorf("BRK took %d cycles, want 7", cpu.Cycles)
	}

	cpu.Step() // RTI
	runAndCheckState(t, cpu, 0,
		"PC", 0x0602,
		"SP", 0xFD,
		"P", 0x20,
	)
}

func TestCycleCounts(t *testing.T) {
	tests := []struct {
		name string
		prog string
		x, y uint8
		want int64
	}{
		{"LDA abs,X same page", `0600: bd 00 02`, 1, 0, 4},
		{"LDA abs,X page cross", `0600: bd ff 02`, 1, 0, 5},
		{"STA abs,X", `0600: 9d 00 02`, 1, 0, 5},
		{"LDA (zp),Y page cross", `
0010: ff 02
0600: b1 10`, 0, 1, 6},
		{"LDA (zp),Y same page", `
0010: 00 02
0600: b1 10`, 0, 1, 5},
		{"INC abs,X", `0600: fe 00 02`, 0, 0, 7},
		{"JSR", `0600: 20 00 07`, 0, 0, 6},
		{"BEQ not taken", `0600: f0 10`, 0, 0, 2},
		{"BNE taken", `0600: d0 10`, 0, 0, 3},
		{"BNE taken page cross", `0600: d0 80`, 0, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := loadCPUWith(t, tt.prog)
			cpu.PC = 0x0600
			cpu.X, cpu.Y = tt.x, tt.y
			cpu.P.clearFlags(Zero)
			cpu.Step()
			if cpu.Cycles != tt.want {
				t.Errorf("got %d cycles, want %d", cpu.Cycles, tt.want)
			}
		})
	}
}

func TestZeroPageWrap(t *testing.T) {
	t.Run("zp,X", func(t *testing.T) {
		cpu := loadCPUWith(t, `
0001: 42
0600: b5 ff`)
		cpu.PC = 0x0600
		cpu.X = 2
		runAndCheckState(t, cpu, 4, "A", 0x42)
	})
	t.Run("(zp,X)", func(t *testing.T) {
		cpu := loadCPUWith(t, `
0000: 00
00ff: 34
0234: 42
0600: a1 fe`)
		cpu.PC = 0x0600
		cpu.X = 1
		cpu.bus.(*flatBus).mem[0x0000] = 0x02
		runAndCheckState(t, cpu, 6, "A", 0x42)
	})
	t.Run("JMP indirect page bug", func(t *testing.T) {
		cpu := loadCPUWith(t, `
0200: 07
02ff: 00
0300: 08
0600: 6c ff 02`)
		cpu.PC = 0x0600
		runAndCheckState(t, cpu, 5, "PC", 0x0700)
	})
}

func TestOAMDMA(t *testing.T) {
	for _, odd := range []bool{false, true} {
		name := "even"
		if odd {
			name = "odd"
		}
		t.Run(name, func(t *testing.T) {
			cpu := loadCPUWith(t, `0600: ea`)
			bus := cpu.bus.(*flatBus)
			for i := range 256 {
				bus.mem[0x0300+i] = uint8(i)
			}
			cpu.PC = 0x0600
			cpu.Cycles = 0
			if odd {
				cpu.Cycles = 1
			}
			start := cpu.Cycles

			cpu.pins.DMA = true
			cpu.pins.DMAPage = 0x03
			bus.record = true
			cpu.Step()

			want := int64(2 + 512)
			if odd {
				want++
			}
			if got := cpu.Cycles - start; got != want {
				t.Errorf("got %d cycles, want %d", got, want)
			}

			var writes []uint8
			for _, c := range bus.cycles {
				if c.Kind == "write" {
					if c.Addr != 0x2004 {
						t.Fatalf("unexpected write %s", c)
					}
					writes = append(writes, c.Data)
				}
			}
			if len(writes) != 256 {
				t.Fatalf("got %d writes to OAMDATA, want 256", len(writes))
			}
			for i, v := range writes {
				if v != uint8(i) {
					t.Fatalf("write %d = 0x%02x, want 0x%02x", i, v, i)
				}
			}
		})
	}
}

// klausBus is a flat memory with an interrupt feedback register, used by the
// Klaus Dormann functional and interrupt tests.
type klausBus struct {
	flatBus
}

const klausFeedback = 0xBFFC

func (b *klausBus) Write(p *Pins) {
	if p.Addr == klausFeedback {
		p.IRQ = p.Data&0x01 != 0
		p.NMI = p.Data&0x02 != 0
	}
	b.flatBus.Write(p)
}

// klausStops holds the addresses read from a Klaus Dormann assembler
// listing. decimal is the start of the decimal mode tests, zero when the
// listing has none.
type klausStops struct {
	success uint16
	decimal uint16
}

// listingAddr returns the address a listing line was assembled at.
func listingAddr(line string) (uint16, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] != ":" {
		return 0, false
	}
	addr, err := strconv.ParseUint(fields[0], 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(addr), true
}

func parseKlausListing(lst []byte) (klausStops, error) {
	var (
		stops     klausStops
		inDecimal bool
	)
	sc := bufio.NewScanner(bytes.NewReader(lst))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.Contains(line, "decimal add/subtract test"):
			inDecimal = stops.decimal == 0
		case strings.Contains(line, "test passed, no errors"):
			if addr, ok := listingAddr(line); ok {
				stops.success = addr
				return stops, nil
			}
		case inDecimal:
			if addr, ok := listingAddr(line); ok {
				stops.decimal = addr
				inDecimal = false
			}
		}
	}
	if err := sc.Err(); err != nil {
		return stops, err
	}
	return stops, errors.New("success trap not found in listing")
}

func runKlaus(t *testing.T, name string) {
	dir := tests.KlausPath(t)
	rom, err := os.ReadFile(filepath.Join(dir, name+".bin"))
	if err != nil {
		t.Fatal(err)
	}
	lst, err := os.ReadFile(filepath.Join(dir, name+".lst"))
	if err != nil {
		t.Fatal(err)
	}
	stops, err := parseKlausListing(lst)
	if err != nil {
		t.Fatal(err)
	}

	// The published binaries are full 64K images, other builds start at the
	// zero page variables.
	bus := &klausBus{}
	if len(rom) == len(bus.mem) {
		copy(bus.mem[:], rom)
	} else {
		copy(bus.mem[0x000A:], rom)
	}

	cpu := NewCPU(bus)
	cpu.Step()
	cpu.PC = 0x0400

	prev := cpu.PC
	for {
		cpu.Step()
		// The 2A03 has no decimal mode.
		if stops.decimal != 0 && cpu.PC == stops.decimal {
			t.Logf("binary mode tests passed, stopping at decimal tests ($%04X)", cpu.PC)
			return
		}
		if cpu.PC == prev {
			if cpu.PC != stops.success {
				t.Fatalf("trapped at $%04X, success is at $%04X", cpu.PC, stops.success)
			}
			return
		}
		prev = cpu.PC
	}
}

func TestParseKlausListing(t *testing.T) {
	lst := []byte(`                        ; decimal add/subtract test
                        ; *** WARNING - tests documented behavior only! ***
                            if disable_decimal < 1
                                next_test
2f4f : ad0002          >            lda test_case   ;previous test
2f52 : c929            >            cmp #test_num
                        ; S U C C E S S ************************************************
                                success         ;if you get here everything went well
3469 : 4c6934          >        jmp *           ;test passed, no errors
`)
	got, err := parseKlausListing(lst)
	if err != nil {
		t.Fatal(err)
	}
	if want := (klausStops{success: 0x3469, decimal: 0x2F4F}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got, err = parseKlausListing([]byte("06f5 : 4cf506          >        jmp *           ;test passed, no errors\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := (klausStops{success: 0x06F5}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if _, err := parseKlausListing([]byte("0400 : d8   cld\n")); err == nil {
		t.Errorf("want error for listing without success trap")
	}
}

func TestKlausFunctional(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long test")
	}
	runKlaus(t, "6502_functional_test")
}

func TestKlausInterrupt(t *testing.T) {
	runKlaus(t, "6502_interrupt_test")
}

func TestUnstableStores(t *testing.T) {
	tests := []struct {
		name    string
		dump    string
		a, x, y uint8
		read    uint16 // dummy read before the store
		addr    uint16
		val     uint8
	}{
		{name: "SHY abs,X", dump: "0600: 9c 00 12", x: 0x10, y: 0xFF, read: 0x1210, addr: 0x1210, val: 0x13},
		{name: "SHY abs,X page cross", dump: "0600: 9c f0 12", x: 0x20, y: 0x05, read: 0x1210, addr: 0x0110, val: 0x01},
		{name: "SHX abs,Y page cross", dump: "0600: 9e f0 12", x: 0x0E, y: 0x20, read: 0x1210, addr: 0x0210, val: 0x02},
		{name: "SHA abs,Y", dump: "0600: 9f 00 30", a: 0xF0, x: 0x3F, y: 0x05, read: 0x3005, addr: 0x3005, val: 0x30},
		{name: "SHA (zp),Y page cross", dump: "0010: f0 12\n0600: 93 10", a: 0x03, x: 0xFF, y: 0x20, read: 0x1210, addr: 0x0310, val: 0x03},
		{name: "TAS abs,Y page cross", dump: "0600: 9b ff 20", a: 0xFF, x: 0x0F, y: 0x01, read: 0x2000, addr: 0x0100, val: 0x01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := loadCPUWith(t, tt.dump+"\nFFFC: 00 06")
			cpu.PC = 0x0600
			cpu.A, cpu.X, cpu.Y = tt.a, tt.x, tt.y

			bus := cpu.bus.(*flatBus)
			bus.record = true
			cpu.Step()

			n := len(bus.cycles)
			if n < 2 {
				t.Fatalf("got %d bus cycles", n)
			}
			want := []busCycle{
				{tt.read, 0, "read"},
				{tt.addr, tt.val, "write"},
			}
			got := bus.cycles[n-2:]
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("cycle %d: got %s, want %s", n-2+i, got[i], want[i])
				}
			}
		})
	}
}
