// Package emu assembles the NES hardware into a console and runs it
// headless, frame by frame.
package emu

import (
	"context"
	"fmt"
	"sync/atomic"

	"dunes/emu/debugger"
	"dunes/emu/log"
	"dunes/hw/hwdefs"
	"dunes/hw/input"
	"dunes/hw/mappers"
	"dunes/ines"
)

type Emulator struct {
	NES *NES
	cfg EmulationConfig

	// These can be set concurrently with the emulator loop.
	reset   atomic.Bool
	restart atomic.Bool

	frames uint64
}

// Launch powers up a NES with rom plugged in, plugs the controllers and sets
// up tracing. It doesn't start the emulation loop, call Run() for that.
func Launch(rom *ines.Rom, cfg Config, sinks Sinks) (*Emulator, error) {
	var (
		cart mappers.Cartridge
		err  error
	)
	if cfg.Emulation.ForceNROM {
		cart, err = mappers.LoadAs(rom, 0)
	} else {
		cart, err = mappers.Load(rom)
	}
	if err != nil {
		return nil, fmt.Errorf("power up failed: %w", err)
	}

	if cfg.Audio.DisableAudio {
		log.ModEmu.WarnZ("Audio disabled").End()
		sinks.Audio = nil
	}
	if sinks.SampleRate == 0 {
		sinks.SampleRate = cfg.Audio.SampleRate
	}

	nes := powerUp(rom, cart, sinks)
	nes.Mixer.SetVolume(cfg.Audio.Volume)

	inprov, err := input.NewProvider(cfg.Input, nes.PPU.FrameCount)
	if err != nil {
		return nil, err
	}
	nes.Bus.Ports.SetDevice(inprov)

	// CPU execution trace setup.
	if cfg.TraceOut != nil {
		nes.CPU.SetTraceOutput(cfg.TraceOut, nes.Bus)
	}
	if cfg.Emulation.Monitor {
		nes.SetDebugger(debugger.New(nes.Peek))
	}

	return &Emulator{
		NES: nes,
		cfg: cfg.Emulation,
	}, nil
}

// RunOneFrame runs the emulation for one video frame.
func (e *Emulator) RunOneFrame() {
	e.NES.RunOneFrame()
	e.frames++
}

// Frames returns the number of frames run so far.
func (e *Emulator) Frames() uint64 { return e.frames }

// Run runs the emulation loop until the configured number of frames have
// been run, or ctx is done.
func (e *Emulator) Run(ctx context.Context) error {
	log.AddContext(e.NES)
	defer log.RemoveContext(e.NES)
	defer func() {
		log.ModEmu.InfoZ("Emulation loop exited").Uint64("frames", e.frames).End()
	}()

	for e.cfg.Frames == 0 || e.frames < e.cfg.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.RunOneFrame()
		e.handleReset()
	}
	return nil
}

// Reset and Restart request a soft or a hard reset, performed at the end of
// the current frame.
func (e *Emulator) Reset()   { e.reset.Store(true) }
func (e *Emulator) Restart() { e.restart.Store(true) }

func (e *Emulator) handleReset() {
	if e.reset.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing soft reset").End()
		e.NES.Reset(hwdefs.SoftReset)
	} else if e.restart.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing hard reset").End()
		e.NES.Reset(hwdefs.HardReset)
	}
}
