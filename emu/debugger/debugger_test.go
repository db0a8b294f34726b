package debugger

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dunes/hw"
)

type memBus [0x10000]uint8

func (b *memBus) Read(p *hw.Pins)                { p.Data = b[p.Addr] }
func (b *memBus) Write(p *hw.Pins)               { b[p.Addr] = p.Data }
func (b *memBus) Peek(addr uint16) (uint8, bool) { return b[addr], true }

func (b *memBus) load(addr uint16, code ...uint8) {
	copy(b[addr:], code)
}

func (b *memBus) setVector(vec, addr uint16) {
	b[vec], b[vec+1] = uint8(addr), uint8(addr>>8)
}

func TestDebuggerCallStack(t *testing.T) {
	bus := &memBus{}
	bus.setVector(hw.ResetVector, 0x8000)
	bus.load(0x8000,
		0x20, 0x00, 0x90, // JSR $9000
		0xEA,             // NOP
	)
	bus.load(0x9000,
		0x20, 0x00, 0xA0, // JSR $A000
		0x60,             // RTS
	)
	bus.load(0xA000,
		0xEA, // NOP
		0x60, // RTS
	)

	cpu := hw.NewCPU(bus)
	dbg := New(bus.Peek)
	cpu.SetDebugger(dbg)

	cpu.Step() // reset
	cpu.Step() // JSR $9000
	cpu.Step() // JSR $A000
	cpu.Step() // NOP

	var sb strings.Builder
	if err := dbg.WriteCallStack(&sb); err != nil {
		t.Fatal(err)
	}
	want := []frameInfo{
		{"A000", "$A000"},
		{"9000", "$9000"},
		{"[bottom of stack]", "$8000"},
	}
	if diff := cmp.Diff(want, dbg.cstack.build(dbg.pc)); diff != "" {
		t.Errorf("callstack differs (-want +got):\n%s", diff)
	}
	if !strings.Contains(sb.String(), "[bottom of stack]") {
		t.Errorf("WriteCallStack output:\n%s", sb.String())
	}

	cpu.Step() // RTS
	cpu.Step() // RTS
	cpu.Step() // NOP
	if n := dbg.cstack.len(); n != 0 {
		t.Errorf("call stack has %d frames after returning, want 0", n)
	}

	stats := dbg.Stats()
	if stats.Instructions != 6 {
		t.Errorf("instructions = %d, want 6", stats.Instructions)
	}
	if stats.MaxDepth != 2 {
		t.Errorf("max depth = %d, want 2", stats.MaxDepth)
	}
	if dbg.ResetPC() != 0x8000 {
		t.Errorf("reset PC = $%04X, want $8000", dbg.ResetPC())
	}
}

func TestDebuggerInterrupts(t *testing.T) {
	dbg := New(func(uint16) (uint8, bool) { return 0xEA, true })
	dbg.Trace(0x8000)
	dbg.Interrupt(0x8001, 0x9000, true)
	dbg.Interrupt(0x9000, 0xA000, false)
	dbg.FrameEnd()

	stats := dbg.Stats()
	if stats.NMIs != 1 || stats.IRQs != 1 || stats.Frames != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if dbg.cstack.len() != 2 {
		t.Errorf("call stack depth = %d, want 2", dbg.cstack.len())
	}

	var sb strings.Builder
	if err := dbg.WriteStats(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "nmi") {
		t.Errorf("WriteStats output:\n%s", sb.String())
	}
}
