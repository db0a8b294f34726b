package emu

import (
	"bytes"
	"image"
	"testing"

	"dunes/hw/hwdefs"
	"dunes/ines"
)

// testRom assembles a 16KB NROM rom. prog is loaded at $8000, the reset
// vector points to it. nmi, if any, is loaded at $8100 and the NMI and IRQ
// vectors point to it.
func testRom(t *testing.T, prog, nmi []byte) *ines.Rom {
	t.Helper()
	return testRomFlags(t, 0, prog, nmi)
}

// testRomFlags is testRom with the given header byte 6.
func testRomFlags(t *testing.T, flags6 uint8, prog, nmi []byte) *ines.Rom {
	t.Helper()

	prg := make([]byte, ines.PRGROMBankSize)
	copy(prg, prog)
	copy(prg[0x100:], nmi)

	// Vectors, $FFFA-$FFFF are mirrored from $BFFA-$BFFF.
	copy(prg[0x3FFA:], []byte{0x00, 0x81, 0x00, 0x80, 0x00, 0x81})

	buf := []byte{'N', 'E', 'S', 0x1A, 1, 1, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	buf = append(buf, prg...)
	buf = append(buf, make([]byte, ines.CHRROMBankSize)...)

	rom := new(ines.Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(buf)); err != nil {
		t.Fatal(err)
	}
	return rom
}

// nmiCounterProg enables NMI and loops forever, nmiCounterHandler increments
// $10.
var (
	nmiCounterProg = []byte{
		0xA9, 0x80,       // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000
		0x4C, 0x05, 0x80, // JMP $8005
	}
	nmiCounterHandler = []byte{
		0xE6, 0x10, // INC $10
		0x40,       // RTI
	}
)

type frameCounterSink struct {
	frames int
}

func (s *frameCounterSink) Frame(*image.RGBA) { s.frames++ }

type sampleCounterSink struct {
	calls, samples int
}

func (s *sampleCounterSink) WriteSamples(samples []int16) {
	s.calls++
	s.samples += len(samples)
}

func solidFrame(c [4]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, hwdefs.ScreenWidth, hwdefs.ScreenHeight))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], c[:])
	}
	return img
}
