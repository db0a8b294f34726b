package emu

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"dunes/emu/log"
	"dunes/hw/hwdefs"
	"dunes/hw/input"
)

type Config struct {
	Input     input.Config    `toml:"input"`
	Video     VideoConfig     `toml:"video"`
	Audio     AudioConfig     `toml:"audio"`
	Emulation EmulationConfig `toml:"emulation"`

	TraceOut io.WriteCloser `toml:"-"`
}

// VideoConfig controls how frames are rendered into screenshots.
type VideoConfig struct {
	Scale       int    `toml:"scale"`        // integer scale factor, 1 to 8
	Border      int    `toml:"border"`       // border width, in scaled pixels
	BorderColor string `toml:"border_color"` // SVG 1.1 color name
}

const maxScale = 8

// Check replaces invalid video settings with their default values.
func (vcfg *VideoConfig) Check() {
	if vcfg.Scale < 1 || vcfg.Scale > maxScale {
		log.ModEmu.Warnf("Invalid scale %d, fallback to %d", vcfg.Scale, defaultConfig.Video.Scale)
		vcfg.Scale = defaultConfig.Video.Scale
	}
	vcfg.Border = max(vcfg.Border, 0)

	name := strings.ToLower(vcfg.BorderColor)
	if _, ok := colornames.Map[name]; !ok {
		log.ModEmu.Warnf("Invalid border color %q, fallback to %q", vcfg.BorderColor, defaultConfig.Video.BorderColor)
		name = defaultConfig.Video.BorderColor
	}
	vcfg.BorderColor = name
}

func (vcfg *VideoConfig) borderColor() color.RGBA {
	return colornames.Map[vcfg.BorderColor]
}

type AudioConfig struct {
	DisableAudio bool    `toml:"disable_audio"`
	SampleRate   int     `toml:"sample_rate"`
	Volume       float64 `toml:"volume"` // between 0 and 1
}

// Check replaces invalid audio settings with their default values.
func (acfg *AudioConfig) Check() {
	if acfg.SampleRate < 8000 || acfg.SampleRate > 192000 {
		log.ModEmu.Warnf("Invalid sample rate %d, fallback to %d", acfg.SampleRate, hwdefs.AudioSampleRate)
		acfg.SampleRate = hwdefs.AudioSampleRate
	}
	acfg.Volume = min(max(acfg.Volume, 0), 1)
}

type EmulationConfig struct {
	// Number of frames to run, 0 means until stopped.
	Frames uint64 `toml:"frames"`

	// Load any rom as NROM, whatever the mapper in its header.
	ForceNROM bool `toml:"force_nrom"`

	// Track the call stack and count instructions, interrupts and frames.
	Monitor bool `toml:"monitor"`
}

const DefaultFileMode = os.FileMode(0755)

var ConfigDir = sync.OnceValue(func() string {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		log.ModEmu.Fatalf("failed to get user config directory: %v", err)
	}

	dir := filepath.Join(cfgdir, "dunes")
	if err := os.MkdirAll(dir, DefaultFileMode); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

var defaultConfig = Config{
	Input: input.Config{
		Paddles: [2]input.PaddleConfig{
			{Plugged: true},
			{Plugged: false},
		},
	},
	Video: VideoConfig{
		Scale:       2,
		Border:      0,
		BorderColor: "black",
	},
	Audio: AudioConfig{
		SampleRate: hwdefs.AudioSampleRate,
		Volume:     1,
	},
}

// DefaultConfig returns the configuration used when there's no config file.
func DefaultConfig() Config { return defaultConfig }

const cfgFilename = "config.toml"

// ConfigPath returns the path of the config file in the dunes config
// directory.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), cfgFilename)
}

// LoadConfigOrDefault loads the configuration from the dunes config directory,
// or provide a default one.
func LoadConfigOrDefault() Config {
	cfg, err := LoadConfigFile(ConfigPath())
	if err != nil {
		log.ModEmu.InfoZ("using default config").Error("err", err).End()
		return DefaultConfig()
	}
	return cfg
}

// LoadConfigFile decodes the config file at path. Missing settings take
// their default value.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		log.ModEmu.Warnf("Unknown config keys in %s: %v", path, undec)
	}
	cfg.Video.Check()
	cfg.Audio.Check()
	return cfg, nil
}

// SaveConfig into dunes config directory.
func SaveConfig(cfg Config) error {
	return SaveConfigFile(ConfigPath(), cfg)
}

func SaveConfigFile(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
