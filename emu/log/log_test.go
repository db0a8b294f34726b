package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	prev := modDebugMask
	t.Cleanup(func() {
		modDebugMask = prev
		SetOutput(&bytes.Buffer{})
	})
	return &buf
}

func TestModuleMask(t *testing.T) {
	buf := captureOutput(t)
	DisableDebugModules(ModuleMaskAll)

	ModPPU.DebugZ("hidden").End()
	if buf.Len() != 0 {
		t.Fatalf("debug entry emitted while module is disabled: %q", buf.String())
	}

	ModPPU.WarnZ("always").Hex16("addr", 0x2002).End()
	if !strings.Contains(buf.String(), "addr=2002") {
		t.Errorf("warn entry missing field, got %q", buf.String())
	}

	buf.Reset()
	EnableDebugModules(ModPPU.Mask())
	ModPPU.DebugZ("visible").Bool("vblank", true).Error("err", errors.New("boom")).End()
	out := buf.String()
	for _, want := range []string{"visible", "vblank=true", "err=boom", "_mod=ppu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q doesn't contain %q", out, want)
		}
	}
}

func TestNilEntryZ(t *testing.T) {
	var z *EntryZ
	// Must not panic.
	z.String("a", "b").Hex8("c", 1).Uint16("d", 2).End()
}

func TestParseModules(t *testing.T) {
	mask, err := ParseModules("cpu, ppu")
	if err != nil {
		t.Fatal(err)
	}
	if want := ModCPU.Mask() | ModPPU.Mask(); mask != want {
		t.Errorf("mask = %x, want %x", mask, want)
	}

	if mask, _ = ParseModules("all"); mask != ModuleMaskAll {
		t.Errorf("all: mask = %x", mask)
	}

	if _, err := ParseModules("cpu,nope"); err == nil {
		t.Errorf("unknown module should fail")
	}
}

type fakeContext struct{ cycle int64 }

func (c *fakeContext) AddLogContext(z *EntryZ) { z.Int64("cycle", c.cycle) }

func TestContext(t *testing.T) {
	buf := captureOutput(t)

	ctx := &fakeContext{cycle: 1234}
	AddContext(ctx)
	defer RemoveContext(ctx)

	ModEmu.ErrorZ("with context").End()
	if !strings.Contains(buf.String(), "cycle=1234") {
		t.Errorf("context field missing: %q", buf.String())
	}
}

func TestPrintf(t *testing.T) {
	buf := captureOutput(t)
	DisableDebugModules(ModuleMaskAll)

	ModMapper.Infof("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("info entry emitted while module is disabled: %q", buf.String())
	}

	ModMapper.Warnf("bank %d of %s", 3, "prg")
	if out := buf.String(); !strings.Contains(out, "bank 3 of prg") || !strings.Contains(out, "_mod=mapper") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFieldValues(t *testing.T) {
	buf := captureOutput(t)

	ModEmu.WarnZ("fields").
		Hex8("h8", 0x0A).
		Hex32("h32", 0xBEEF).
		Int("neg", -5).
		Bool("no", false).
		Duration("d", 1500*time.Millisecond).
		Blob("blob", []byte{0xDE, 0xAD}).
		Stringer("mod", ModPPU).
		End()

	out := buf.String()
	for _, want := range []string{"h8=0A", "h32=0000BEEF", "neg=-5", "no=false", "d=1.5s", "blob=dead", "mod=ppu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q doesn't contain %q", out, want)
		}
	}
}
