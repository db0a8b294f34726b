package emu

import (
	"dunes/emu/debugger"
	"dunes/emu/log"
	"dunes/hw"
	"dunes/hw/apu"
	"dunes/hw/hwdefs"
	"dunes/hw/mappers"
	"dunes/ines"
)

// NES is the console: the CPU and the chips it drives through the system bus,
// with a cartridge plugged in.
type NES struct {
	CPU   *hw.CPU
	PPU   *hw.PPU
	APU   *apu.APU
	Bus   *hw.SysBus
	Cart  mappers.Cartridge
	Rom   *ines.Rom
	Mixer *apu.Mixer
	Out   *hw.Output

	dbg *debugger.Debugger
}

// Sinks are the destinations of the frames and audio samples produced by the
// NES. Both sinks can be nil.
type Sinks struct {
	Video      hw.VideoSink
	Audio      apu.AudioSink
	SampleRate int
}

func powerUp(rom *ines.Rom, cart mappers.Cartridge, sinks Sinks) *NES {
	nes := &NES{
		Cart: cart,
		Rom:  rom,
	}

	rate := sinks.SampleRate
	if rate == 0 {
		rate = hwdefs.AudioSampleRate
	}
	nes.Mixer = apu.NewMixer(rate, sinks.Audio)
	nes.Out = hw.NewOutput(2, sinks.Video)
	nes.PPU = hw.NewPPU(cart, nes.Out)
	nes.APU = apu.New(nes.Mixer, nes.readDMC)
	nes.Bus = hw.NewSysBus(nes.PPU, nes.APU, cart)
	nes.CPU = hw.NewCPU(nes.Bus)
	nes.Bus.Connect(nes.CPU)

	nes.CPU.Sched.Handle(hw.EventAudioFrame, nes.endAudioFrame)
	nes.Reset(hwdefs.HardReset)
	return nes
}

// readDMC fetches DMC samples. The DMC reads from $8000-$FFFF, which is
// cartridge memory.
func (nes *NES) readDMC(addr uint16) uint8 {
	val, ok := nes.Bus.Peek(addr)
	if !ok {
		log.ModSound.WarnZ("DMC sample fetch from a register").Hex16("addr", addr).End()
	}
	return val
}

// endAudioFrame ends the audio frame every video frame worth of CPU cycles.
func (nes *NES) endAudioFrame() {
	nes.APU.EndFrame()
	nes.CPU.Sched.Queue(hw.EventAudioFrame, hwdefs.CPUCyclesFrame)
}

// Reset performs a soft reset (reset button) or a hard reset (power cycle).
func (nes *NES) Reset(soft bool) {
	nes.Bus.Reset(soft)
	nes.PPU.Reset(soft)
	nes.APU.Reset(soft)
	if soft {
		nes.CPU.Reset()
		return
	}

	// Power up clears the scheduler.
	nes.CPU.PowerUp()
	nes.CPU.Sched.Queue(hw.EventAudioFrame, hwdefs.CPUCyclesFrame)
}

// RunOneFrame runs the CPU for the duration of a video frame.
func (nes *NES) RunOneFrame() {
	nes.CPU.Run(hwdefs.CPUCyclesFrame)
	if nes.dbg != nil {
		nes.dbg.FrameEnd()
	}
}

// Peek reads CPU memory without side effects. It reports false for the
// addresses mapped to registers.
func (nes *NES) Peek(addr uint16) (uint8, bool) {
	return nes.Bus.Peek(addr)
}

// SetDebugger attaches dbg to the CPU, nil detaches the current one.
func (nes *NES) SetDebugger(dbg *debugger.Debugger) {
	nes.dbg = dbg
	if dbg == nil {
		nes.CPU.SetDebugger(nil)
		return
	}
	nes.CPU.SetDebugger(dbg)
}

// Debugger returns the attached debugger, or nil.
func (nes *NES) Debugger() *debugger.Debugger { return nes.dbg }

// AddLogContext tags log entries with the CPU cycle and the PPU position.
func (nes *NES) AddLogContext(z *log.EntryZ) {
	sl, dot := nes.PPU.Position()
	z.Int64("cycle", nes.CPU.Cycles).
		Int("scanline", sl).
		Uint32("dot", dot)
}
