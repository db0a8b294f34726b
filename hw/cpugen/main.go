// Command cpugen writes hw/opcodes.go: one function per 6502 opcode, with
// every bus cycle of the instruction, followed by the dispatch,
// disassembly and mnemonic tables.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
)

// Opcode matrix, one row per high nibble.
var mnemonics = [16]string{
	"BRK ORA JAM SLO NOP ORA ASL SLO PHP ORA ASL ANC NOP ORA ASL SLO",
	"BPL ORA JAM SLO NOP ORA ASL SLO CLC ORA NOP SLO NOP ORA ASL SLO",
	"JSR AND JAM RLA BIT AND ROL RLA PLP AND ROL ANC BIT AND ROL RLA",
	"BMI AND JAM RLA NOP AND ROL RLA SEC AND NOP RLA NOP AND ROL RLA",
	"RTI EOR JAM SRE NOP EOR LSR SRE PHA EOR LSR ALR JMP EOR LSR SRE",
	"BVC EOR JAM SRE NOP EOR LSR SRE CLI EOR NOP SRE NOP EOR LSR SRE",
	"RTS ADC JAM RRA NOP ADC ROR RRA PLA ADC ROR ARR JMP ADC ROR RRA",
	"BVS ADC JAM RRA NOP ADC ROR RRA SEI ADC NOP RRA NOP ADC ROR RRA",
	"NOP STA NOP SAX STY STA STX SAX DEY NOP TXA ANE STY STA STX SAX",
	"BCC STA JAM SHA STY STA STX SAX TYA STA TXS TAS SHY STA SHX SHA",
	"LDY LDA LDX LAX LDY LDA LDX LAX TAY LDA TAX LXA LDY LDA LDX LAX",
	"BCS LDA JAM LAX LDY LDA LDX LAX CLV LDA TSX LAS LDY LDA LDX LAX",
	"CPY CMP NOP DCP CPY CMP DEC DCP INY CMP DEX SBX CPY CMP DEC DCP",
	"BNE CMP JAM DCP NOP CMP DEC DCP CLD CMP NOP DCP NOP CMP DEC DCP",
	"CPX SBC NOP ISC CPX SBC INC ISC INX SBC NOP SBC CPX SBC INC ISC",
	"BEQ SBC JAM ISC NOP SBC INC ISC SED SBC NOP ISC NOP SBC INC ISC",
}

// Addressing mode matrix. A '*' suffix means the indexed access always
// performs the dummy read, page crossed or not.
var modeMatrix = [16]string{
	"imp  izx  imp  izx  zpg  zpg  zpg  zpg  imp  imm  acc  imm  abs  abs  abs  abs",
	"rel  izy  imp  izy* zpx  zpx  zpx  zpx  imp  aby  imp  aby* abx  abx  abx* abx*",
	"abs  izx  imp  izx  zpg  zpg  zpg  zpg  imp  imm  acc  imm  abs  abs  abs  abs",
	"rel  izy  imp  izy* zpx  zpx  zpx  zpx  imp  aby  imp  aby* abx  abx  abx* abx*",
	"imp  izx  imp  izx  zpg  zpg  zpg  zpg  imp  imm  acc  imm  abs  abs  abs  abs",
	"rel  izy  imp  izy* zpx  zpx  zpx  zpx  imp  aby  imp  aby* abx  abx  abx* abx*",
	"imp  izx  imp  izx  zpg  zpg  zpg  zpg  imp  imm  acc  imm  ind  abs  abs  abs",
	"rel  izy  imp  izy* zpx  zpx  zpx  zpx  imp  aby  imp  aby* abx  abx  abx* abx*",
	"imm  izx  imm  izx  zpg  zpg  zpg  zpg  imp  imm  imp  imm  abs  abs  abs  abs",
	"rel  izy* imp  izy  zpx  zpx  zpy  zpy  imp  aby* imp  aby  abx  abx* aby  aby",
	"imm  izx  imm  izx  zpg  zpg  zpg  zpg  imp  imm  imp  imm  abs  abs  abs  abs",
	"rel  izy  imp  izy  zpx  zpx  zpy  zpy  imp  aby  imp  aby  abx  abx  aby  aby",
	"imm  izx  imm  izx  zpg  zpg  zpg  zpg  imp  imm  imp  imm  abs  abs  abs  abs",
	"rel  izy  imp  izy* zpx  zpx  zpx  zpx  imp  aby  imp  aby* abx  abx  abx* abx*",
	"imm  izx  imm  izx  zpg  zpg  zpg  zpg  imp  imm  imp  imm  abs  abs  abs  abs",
	"rel  izy  imp  izy* zpx  zpx  zpx  zpx  imp  aby  imp  aby* abx  abx  abx* abx*",
}

type mode struct {
	doc  string
	oper string // expression computing the operand address, if any
}

var modes = map[string]mode{
	"imp":  {doc: "implied addressing.", oper: "cpu.imp()"},
	"acc":  {doc: "adressing accumulator.", oper: "cpu.acc()"},
	"rel":  {doc: "relative addressing."},
	"imm":  {doc: "immediate addressing."},
	"abs":  {doc: "absolute addressing.", oper: "cpu.abs()"},
	"abx":  {doc: "absolute indexed X.", oper: "cpu.abx(false)"},
	"abx*": {doc: "absolute indexed X.", oper: "cpu.abx(true)"},
	"aby":  {doc: "absolute indexed Y.", oper: "cpu.aby(false)"},
	"aby*": {doc: "absolute indexed Y.", oper: "cpu.aby(true)"},
	"ind":  {doc: "indirect addressing.", oper: "cpu.ind()"},
	"izx":  {doc: "indexed addressing (abs, X).", oper: "cpu.izx()"},
	"izy":  {doc: "indexed addressing (abs),Y.", oper: "cpu.izy(false)"},
	"izy*": {doc: "indexed addressing (abs),Y.", oper: "cpu.izy(true)"},
	"zpg":  {doc: "zero page addressing.", oper: "cpu.zpg()"},
	"zpx":  {doc: "indexed addressing: zeropage,X.", oper: "cpu.zpx()"},
	"zpy":  {doc: "indexed addressing: zeropage,Y.", oper: "cpu.zpy()"},
}

type access int

const (
	none     access = iota
	read            // the operand is read into val
	readMod         // val is written back to the operand afterwards
)

type instr struct {
	code byte
	name string
	mode string
}

func (in instr) access() access {
	switch in.name {
	case "ASL", "LSR", "ROL", "ROR":
		if in.mode == "acc" {
			return none
		}
		return readMod
	case "INC", "DEC", "SLO", "RLA", "SRE", "RRA", "DCP", "ISC":
		return readMod
	case "ADC", "SBC", "AND", "ORA", "EOR", "BIT", "CMP", "CPX", "CPY",
		"LDA", "LDX", "LDY", "LAX", "ANC", "ALR", "ARR", "ANE", "LXA", "SBX", "LAS":
		return read
	}
	return none
}

// handwritten reports whether the instruction lives in cpu.go.
func (in instr) handwritten() bool {
	return in.name == "BRK" || in.name == "JSR"
}

// ownAddressing reports whether the body computes the address itself,
// for the unstable stores whose high byte depends on the indexing.
func (in instr) ownAddressing() bool {
	switch in.name {
	case "SHA", "SHX", "SHY", "TAS":
		return true
	}
	return false
}

func (in instr) memory() bool {
	return in.mode != "acc" && in.mode != "imp" && in.mode != "imm"
}

func decode() (instrs [256]instr) {
	for hi := range 16 {
		names := strings.Fields(mnemonics[hi])
		ms := strings.Fields(modeMatrix[hi])
		if len(names) != 16 || len(ms) != 16 {
			log.Fatalf("row %X: want 16 entries", hi)
		}
		for lo := range 16 {
			code := hi<<4 | lo
			if _, ok := modes[ms[lo]]; !ok {
				log.Fatalf("opcode %02X: unknown mode %q", code, ms[lo])
			}
			instrs[code] = instr{code: byte(code), name: names[lo], mode: ms[lo]}
		}
	}
	return instrs
}

type writer struct {
	bytes.Buffer
}

func (w *writer) ln(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}

func (w *writer) setFlag(flag, cond string) { w.ln("cpu.P.setFlag(%s, %s)", flag, cond) }
func (w *writer) nz(v string)               { w.ln("cpu.P.setNZ(%s)", v) }

// ifCarry emits stmt guarded by the carry flag.
func (w *writer) ifCarry(stmt string) {
	w.ln("if cpu.P.hasFlag(Carry) {")
	w.ln("%s", stmt)
	w.ln("}")
}

func (w *writer) dummyRead(addr string) { w.ln("_ = cpu.Read8(%s) // dummy read", addr) }
func (w *writer) dummyWrite()           { w.ln("cpu.Write8(oper, val) // dummy write") }

func (w *writer) pullP() {
	w.ln("var p uint8")
	w.dummyRead("uint16(cpu.SP) + 0x0100")
	w.ln("p = cpu.pull8()")
	w.ln("const mask uint8 = 0b11001111 // ignore B and U bits")
	w.ln("cpu.P = P(uint8(cpu.P)&^mask | p&mask)")
}

func (w *writer) shift(left bool, rotate bool) {
	if left {
		w.ln("carry := val & 0x80")
		w.ln("val <<= 1")
	} else {
		w.ln("carry := val & 0x01")
		w.ln("val >>= 1")
	}
	if rotate {
		if left {
			w.ifCarry("val |= 1 << 0")
		} else {
			w.ifCarry("val |= 1 << 7")
		}
	}
	w.nz("val")
	w.setFlag("Carry", "carry != 0")
}

var branches = map[string]struct {
	flag string
	set  bool
}{
	"BPL": {"Negative", false}, "BMI": {"Negative", true},
	"BVC": {"Overflow", false}, "BVS": {"Overflow", true},
	"BCC": {"Carry", false}, "BCS": {"Carry", true},
	"BNE": {"Zero", false}, "BEQ": {"Zero", true},
}

var flagOps = map[string]struct {
	flag string
	set  bool
}{
	"CLC": {"Carry", false}, "SEC": {"Carry", true},
	"CLI": {"Interrupt", false}, "SEI": {"Interrupt", true},
	"CLD": {"Decimal", false}, "SED": {"Decimal", true},
	"CLV": {"Overflow", false},
}

var transfers = map[string][2]string{
	"TAX": {"A", "X"}, "TAY": {"A", "Y"}, "TSX": {"SP", "X"},
	"TXA": {"X", "A"}, "TXS": {"X", "SP"}, "TYA": {"Y", "A"},
}

// body emits the operation itself, once the operand is available in val
// (or its address in oper).
func (w *writer) body(in instr) {
	if b, ok := branches[in.name]; ok {
		not := "!"
		if b.set {
			not = ""
		}
		w.ln("cpu.branch(%scpu.P.hasFlag(%s))", not, b.flag)
		return
	}
	if f, ok := flagOps[in.name]; ok {
		if f.set {
			w.ln("cpu.P.setFlags(%s)", f.flag)
		} else {
			w.ln("cpu.P.clearFlags(%s)", f.flag)
		}
		return
	}
	if t, ok := transfers[in.name]; ok {
		if t[1] == "SP" {
			w.ln("cpu.%s = cpu.%s", t[1], t[0])
		} else {
			w.ln("cpu.setreg(&cpu.%s, cpu.%s)", t[1], t[0])
		}
		return
	}

	rmw := in.access() == readMod
	switch in.name {
	case "ADC":
		w.ln("cpu.add(val)")
	case "SBC":
		w.ln("cpu.add(^val)")
	case "AND":
		w.ln("cpu.setreg(&cpu.A, cpu.A&val)")
	case "ORA":
		w.ln("cpu.setreg(&cpu.A, cpu.A|val)")
	case "EOR":
		w.ln("cpu.setreg(&cpu.A, cpu.A^val)")
	case "CMP", "CPX", "CPY":
		w.ln("cpu.compare(cpu.%s, val)", in.name[len(in.name)-1:])
	case "LDA", "LDX", "LDY":
		w.ln("cpu.setreg(&cpu.%s, val)", in.name[2:])
	case "LAX":
		w.ln("cpu.setreg(&cpu.A, val)")
		w.ln("cpu.setreg(&cpu.X, val)")
	case "STA", "STX", "STY":
		w.ln("cpu.Write8(oper, cpu.%s)", in.name[2:])
	case "SAX":
		w.ln("cpu.Write8(oper, cpu.A&cpu.X)")
	case "INX", "INY":
		w.ln("cpu.setreg(&cpu.%[1]s, cpu.%[1]s+1)", in.name[2:])
	case "DEX", "DEY":
		w.ln("cpu.setreg(&cpu.%[1]s, cpu.%[1]s-1)", in.name[2:])
	case "BIT":
		w.ln("cpu.P.clearFlags(Zero|Overflow|Negative)")
		w.ln("cpu.P |= P(val & 0b11000000)")
		w.setFlag("Zero", "cpu.A&val == 0")

	case "ASL", "LSR", "ROL", "ROR":
		if rmw {
			w.dummyWrite()
		}
		w.shift(in.name == "ASL" || in.name == "ROL", in.name[0] == 'R')
	case "INC", "DEC":
		w.dummyWrite()
		if in.name == "INC" {
			w.ln("val++")
		} else {
			w.ln("val--")
		}
		w.nz("val")
	case "SLO", "RLA", "SRE", "RRA":
		// shift or rotate the operand, then combine it with A
		w.dummyWrite()
		switch in.name {
		case "SLO":
			w.shift(true, false)
			w.ln("cpu.setreg(&cpu.A, cpu.A|val)")
		case "RLA":
			w.shift(true, true)
			w.ln("cpu.setreg(&cpu.A, cpu.A&val)")
		case "SRE":
			w.shift(false, false)
			w.ln("cpu.setreg(&cpu.A, cpu.A^val)")
		case "RRA":
			w.shift(false, true)
			w.ln("cpu.add(val)")
		}
	case "DCP":
		w.dummyWrite()
		w.ln("val--")
		w.ln("cpu.compare(cpu.A, val)")
	case "ISC":
		w.dummyWrite()
		w.ln("val++")
		w.ln("cpu.add(^val)")

	case "ANC":
		w.ln("cpu.setreg(&cpu.A, cpu.A&val)")
		w.setFlag("Carry", "cpu.A&0x80 != 0")
	case "ALR":
		w.ln("cpu.A &= val")
		w.ln("carry := cpu.A & 0x01")
		w.ln("cpu.setreg(&cpu.A, cpu.A>>1)")
		w.setFlag("Carry", "carry != 0")
	case "ARR":
		w.ln("res := (cpu.A & val) >> 1")
		w.ifCarry("res |= 1 << 7")
		w.ln("cpu.setreg(&cpu.A, res)")
		w.setFlag("Carry", "res&(1<<6) != 0")
		w.setFlag("Overflow", "((res>>6)^(res>>5))&0x01 != 0")
	case "ANE":
		w.ln("const magic = 0xEE")
		w.ln("cpu.setreg(&cpu.A, (cpu.A|magic)&cpu.X&val)")
	case "LXA":
		w.ln("cpu.setreg(&cpu.A, (cpu.A|0xFF)&val)")
		w.ln("cpu.X = cpu.A")
	case "SBX":
		w.ln("ival := int16(cpu.A&cpu.X) - int16(val)")
		w.ln("cpu.setreg(&cpu.X, uint8(ival))")
		w.setFlag("Carry", "ival >= 0")
	case "LAS":
		w.ln("cpu.setreg(&cpu.A, cpu.SP&val)")
		w.ln("cpu.X = cpu.A")
		w.ln("cpu.SP = cpu.A")
	case "SHA":
		if strings.HasPrefix(in.mode, "izy") {
			w.ln("cpu.sh(cpu.zpr16(cpu.fetch8()), cpu.Y, cpu.A&cpu.X)")
		} else {
			w.ln("cpu.sh(cpu.fetch16(), cpu.Y, cpu.A&cpu.X)")
		}
	case "SHX":
		w.ln("cpu.sh(cpu.fetch16(), cpu.Y, cpu.X)")
	case "SHY":
		w.ln("cpu.sh(cpu.fetch16(), cpu.X, cpu.Y)")
	case "TAS":
		w.ln("cpu.SP = cpu.A & cpu.X")
		w.ln("cpu.sh(cpu.fetch16(), cpu.Y, cpu.SP)")

	case "JMP":
		w.ln("cpu.PC = oper")
	case "JAM":
		w.ln("// the chip locks up, run it as a 1-byte NOP.")
	case "NOP":
		if in.memory() {
			w.dummyRead("oper")
		}

	case "PHA":
		w.ln("cpu.push8(cpu.A)")
	case "PHP":
		w.ln("p := cpu.P | Break | Reserved")
		w.ln("cpu.push8(uint8(p))")
	case "PLA":
		w.dummyRead("uint16(cpu.SP) + 0x0100")
		w.ln("cpu.setreg(&cpu.A, cpu.pull8())")
	case "PLP":
		w.pullP()
	case "RTI":
		w.pullP()
		w.ln("cpu.PC = cpu.pull16()")
	case "RTS":
		w.dummyRead("uint16(cpu.SP) + 0x0100")
		w.ln("cpu.PC = cpu.pull16()")
		w.ln("_ = cpu.fetch8()")

	default:
		log.Fatalf("opcode %02X: no body for %s", in.code, in.name)
	}
}

func (w *writer) opcode(in instr) {
	m := modes[in.mode]

	w.ln("")
	w.ln("// %s - %s", in.name, m.doc)
	w.ln("func opcode%02X(cpu *CPU) {", in.code)

	if !in.ownAddressing() && m.oper != "" {
		if in.memory() {
			w.ln("oper := %s", m.oper)
		} else {
			w.ln("%s", m.oper)
		}
	}

	acc := in.access()
	switch {
	case in.mode == "acc":
		w.ln("val := cpu.A")
	case in.mode == "imm":
		w.ln("val := cpu.fetch8()")
	case acc != none:
		w.ln("val := cpu.Read8(oper)")
	}

	w.body(in)

	switch {
	case in.mode == "imm" && in.name == "NOP":
		w.ln("_ = val")
	case in.mode == "acc":
		w.ln("cpu.A = val")
	case acc == readMod:
		w.ln("cpu.Write8(oper, val)")
	}
	w.ln("}")
}

// table emits a 256 entries array, 16 per line.
func (w *writer) table(comment, decl string, entry func(instr) string, instrs *[256]instr) {
	if comment != "" {
		w.ln("// %s", comment)
	}
	w.ln("var %s{", decl)
	for hi := range 16 {
		row := make([]string, 16)
		for lo := range row {
			row[lo] = entry(instrs[hi<<4|lo])
		}
		w.ln("%s,", strings.Join(row, ", "))
	}
	w.ln("}")
}

func generate(instrs *[256]instr) []byte {
	var w writer
	w.ln("// Code generated by cpugen. DO NOT EDIT.")
	w.ln("")
	w.ln("package hw")

	for _, in := range instrs {
		if !in.handwritten() {
			w.opcode(in)
		}
	}
	w.ln("")

	w.table("nes 6502 opcodes table", "ops = [256]func(*CPU)", func(in instr) string {
		if in.handwritten() {
			return in.name
		}
		return fmt.Sprintf("opcode%02X", in.code)
	}, instrs)
	w.ln("")

	w.table("nes 6502 opcodes disassembly table", "disasmOps = [256]func(*CPU, uint16) DisasmOp", func(in instr) string {
		return "disasm" + strings.ToUpper(in.mode[:1]) + in.mode[1:3]
	}, instrs)
	w.ln("")

	w.table("", "opcodeNames = [256]string", func(in instr) string {
		return strconv.Quote(in.name)
	}, instrs)
	return w.Bytes()
}

func main() {
	log.SetFlags(0)
	out := flag.String("out", "opcodes.go", "output file, or stdout")
	flag.Parse()

	instrs := decode()
	src := generate(&instrs)
	if *out == "stdout" {
		os.Stdout.Write(src)
		return
	}

	buf, err := format.Source(src)
	if err != nil {
		os.WriteFile(*out, src, 0o644)
		log.Fatalf("gofmt failed: %v", err)
	}
	if err := os.WriteFile(*out, buf, 0o644); err != nil {
		log.Fatalf("can't write %s: %v", *out, err)
	}
}
