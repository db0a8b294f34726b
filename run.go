package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/jx"

	"dunes/emu"
	"dunes/emu/log"
	"dunes/ines"
)

// emuMain runs the emulator headless with the given rom.
func emuMain(args Run) {
	rom, err := ines.Open(args.RomPath)
	checkf(err, "error reading ROM")
	if rom.IsNES20() {
		log.ModEmu.Warnf("NES 2.0 header, extended fields are ignored")
	}

	cfg := loadConfig(args.ConfigPath)
	if args.Frames >= 0 {
		cfg.Emulation.Frames = uint64(args.Frames)
	}
	if args.ForceNROM {
		cfg.Emulation.ForceNROM = true
	}
	if args.Stats {
		cfg.Emulation.Monitor = true
	}
	for _, s := range args.Press {
		ev, err := parseInputEvent(s)
		checkf(err, "invalid --press flag")
		cfg.Input.Script = append(cfg.Input.Script, ev)
	}
	if len(args.Press) > 0 {
		cfg.Input.Paddles[0].Plugged = true
	}

	if args.Trace != nil {
		cfg.TraceOut = args.Trace
		defer args.Trace.Close()
	}

	var sinks emu.Sinks
	var pngs *emu.PNGSink
	if args.PNGDir != "" {
		pngs = emu.NewPNGSink(args.PNGDir, args.PNGEvery, cfg.Video)
		sinks.Video = pngs
	}

	var wavs *emu.WAVSink
	if args.WAV != "" && !cfg.Audio.DisableAudio {
		f, err := os.Create(args.WAV)
		checkf(err, "failed to create wav file")
		defer f.Close()

		wavs = emu.NewWAVSink(f, cfg.Audio.SampleRate)
		sinks.Audio = wavs
	}

	emulator, err := emu.Launch(rom, cfg, sinks)
	checkf(err, "failed to start emulator")

	if args.CPUProfile != "" {
		f, err := os.Create(args.CPUProfile)
		checkf(err, "failed to create cpu profile file")
		checkf(pprof.StartCPUProfile(f), "failed to start cpu profile")
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", args.CPUProfile)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := emulator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fatalf("emulation error: %v", err)
	}

	if pngs != nil {
		if err := pngs.Close(); err != nil {
			log.ModEmu.WarnZ("Failed to save screenshots").Error("err", err).End()
		}
		for _, p := range pngs.Paths() {
			fmt.Println("screenshot written to", p)
		}
	}
	if wavs != nil {
		if err := wavs.Close(); err != nil {
			log.ModEmu.WarnZ("Failed to write wav file").Error("err", err).End()
		}
		fmt.Printf("audio written to %s (%d samples)\n", args.WAV, wavs.NumSamples())
	}

	if dbg := emulator.NES.Debugger(); dbg != nil {
		fmt.Println("frames run:", emulator.Frames())
		checkf(dbg.WriteStats(os.Stdout), "failed to write stats")
		fmt.Println("\ncall stack:")
		checkf(dbg.WriteCallStack(os.Stdout), "failed to write call stack")
	}
}

// loadConfig loads the config file at path, or the one from the user config
// directory if path is empty.
func loadConfig(path string) emu.Config {
	if path == "" {
		return emu.LoadConfigOrDefault()
	}
	cfg, err := emu.LoadConfigFile(path)
	checkf(err, "failed to load config")
	return cfg
}

func configMain(args Config) {
	cfg := emu.DefaultConfig()
	if !args.Default {
		cfg = emu.LoadConfigOrDefault()
	}

	checkf(toml.NewEncoder(os.Stdout).Encode(cfg), "failed to encode config")

	if args.Save {
		checkf(emu.SaveConfig(cfg), "failed to save config")
		fmt.Fprintln(os.Stderr, "config saved to", emu.ConfigPath())
	}
}

func romInfosMain(args RomInfos) {
	rom, err := ines.Open(args.RomPath)
	checkf(err, "error reading ROM")

	if args.JSON {
		checkf(writeRomInfosJSON(os.Stdout, rom), "failed to write rom infos")
		return
	}
	checkf(writeRomInfos(os.Stdout, rom), "failed to write rom infos")
}

func writeRomInfos(w io.Writer, rom *ines.Rom) error {
	_, err := fmt.Fprintf(w, `PRGROM: %d x 16KB
CHRROM: %d x 8KB
CHRRAM: %t
PRGRAM: %d x 8KB
Mapper: %d
Mirroring: %s
Trainer: %t
Persistent: %t
FourScreen: %t
NES 2.0: %t
`,
		rom.PRGROMBanks(),
		rom.CHRROMBanks(),
		rom.HasCHRRAM(),
		rom.PRGRAMBanks(),
		rom.Mapper(),
		rom.Mirroring(),
		rom.HasTrainer(),
		rom.HasPersistent(),
		rom.FourScreen(),
		rom.IsNES20(),
	)
	return err
}

func writeRomInfosJSON(w io.Writer, rom *ines.Rom) error {
	var e jx.Encoder
	e.SetIdent(2)
	e.Obj(func(e *jx.Encoder) {
		e.Field("prgrom_banks", func(e *jx.Encoder) { e.Int(rom.PRGROMBanks()) })
		e.Field("chrrom_banks", func(e *jx.Encoder) { e.Int(rom.CHRROMBanks()) })
		e.Field("chrram", func(e *jx.Encoder) { e.Bool(rom.HasCHRRAM()) })
		e.Field("prgram_banks", func(e *jx.Encoder) { e.Int(rom.PRGRAMBanks()) })
		e.Field("mapper", func(e *jx.Encoder) { e.Int(int(rom.Mapper())) })
		e.Field("mirroring", func(e *jx.Encoder) { e.Str(rom.Mirroring().String()) })
		e.Field("trainer", func(e *jx.Encoder) { e.Bool(rom.HasTrainer()) })
		e.Field("persistent", func(e *jx.Encoder) { e.Bool(rom.HasPersistent()) })
		e.Field("four_screen", func(e *jx.Encoder) { e.Bool(rom.FourScreen()) })
		e.Field("nes20", func(e *jx.Encoder) { e.Bool(rom.IsNES20()) })
	})
	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return err
	}
	return nil
}
