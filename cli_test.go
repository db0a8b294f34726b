package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/google/go-cmp/cmp"

	"dunes/hw/input"
	"dunes/ines"
)

func TestParseInputEvent(t *testing.T) {
	tests := []struct {
		in      string
		want    input.Event
		wantErr bool
	}{
		{in: "120:Start", want: input.Event{Frame: 120, Frames: 1, Buttons: "Start"}},
		{in: "200:A+Right:30", want: input.Event{Frame: 200, Frames: 30, Buttons: "A+Right"}},
		{in: "0:select", want: input.Event{Frame: 0, Frames: 1, Buttons: "select"}},
		{in: "Start", wantErr: true},
		{in: "x:Start", wantErr: true},
		{in: "10:Turbo", wantErr: true},
		{in: "10:A:0", wantErr: true},
		{in: "10:A:1:2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseInputEvent(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseInputEvent(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseInputEvent(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func testRom(t *testing.T) *ines.Rom {
	t.Helper()

	buf := []byte{'N', 'E', 'S', 0x1A, 2, 0, 0x01, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	buf = append(buf, make([]byte, 2*ines.PRGROMBankSize)...)

	rom := new(ines.Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(buf)); err != nil {
		t.Fatal(err)
	}
	return rom
}

func TestRomInfos(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRomInfos(&buf, testRom(t)); err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{"PRGROM: 2 x 16KB", "CHRRAM: true", "Mapper: 0", "Mirroring: vertical"} {
		if !strings.Contains(buf.String(), line+"\n") {
			t.Errorf("missing %q in:\n%s", line, buf.String())
		}
	}
}

func TestRomInfosJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRomInfosJSON(&buf, testRom(t)); err != nil {
		t.Fatal(err)
	}

	got := make(map[string]any)
	err := jx.DecodeBytes(buf.Bytes()).Obj(func(d *jx.Decoder, key string) error {
		switch d.Next() {
		case jx.Number:
			v, err := d.Int()
			got[key] = v
			return err
		case jx.Bool:
			v, err := d.Bool()
			got[key] = v
			return err
		default:
			v, err := d.Str()
			got[key] = v
			return err
		}
	})
	if err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}

	want := map[string]any{
		"prgrom_banks": 2,
		"chrrom_banks": 0,
		"chrram":       true,
		"prgram_banks": 1,
		"mapper":       0,
		"mirroring":    "vertical",
		"trainer":      false,
		"persistent":   false,
		"four_screen":  false,
		"nes20":        false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rom infos mismatch (-want +got):\n%s", diff)
	}
}
