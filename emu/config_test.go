package emu

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dunes/emu/log"
	"dunes/hw/hwdefs"
	"dunes/hw/input"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Video.Scale = 3
	cfg.Video.Border = 8
	cfg.Video.BorderColor = "darkslategray"
	cfg.Audio.SampleRate = 48000
	cfg.Audio.Volume = 0.5
	cfg.Emulation.Frames = 600
	cfg.Emulation.ForceNROM = true
	cfg.Input.Script = []input.Event{
		{Frame: 30, Frames: 2, Paddle: 0, Buttons: "Start"},
		{Frame: 60, Frames: 10, Paddle: 0, Buttons: "A+Right"},
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveConfigFile(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFileDefaults(t *testing.T) {
	log.SetOutput(io.Discard)

	const content = `
[video]
scale = 20
border_color = "NotAColor"

[audio]
sample_rate = 0
volume = 3.0

[emulation]
frames = 5
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Emulation.Frames = 5
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfigFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("loading a missing file succeeded")
	}

	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[video\nscale = 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Errorf("loading an invalid file succeeded")
	}
}

func TestVideoConfigCheck(t *testing.T) {
	log.SetOutput(io.Discard)

	vcfg := VideoConfig{Scale: 4, Border: -2, BorderColor: "Crimson"}
	vcfg.Check()

	want := VideoConfig{Scale: 4, Border: 0, BorderColor: "crimson"}
	if vcfg != want {
		t.Errorf("Check() = %+v, want %+v", vcfg, want)
	}

	acfg := AudioConfig{SampleRate: 1, Volume: -1}
	acfg.Check()
	if acfg.SampleRate != hwdefs.AudioSampleRate || acfg.Volume != 0 {
		t.Errorf("Check() = %+v", acfg)
	}
}
