// Package apu implements the NES sound chip: 2 pulse channels, a triangle,
// a noise generator and the delta modulation channel, sequenced by the frame
// counter and clocked once per CPU cycle.
package apu

import (
	"dunes/emu/log"
	"dunes/hw/hwdefs"
	"dunes/hw/hwio"
)

// maximum length of an audio frame, in CPU cycles.
const maxFrameCycles = 2 * hwdefs.CPUCyclesFrame

type APU struct {
	mixer *Mixer

	Square1  squareChannel
	Square2  squareChannel
	Triangle triangleChannel
	Noise    noiseChannel
	DMC      dmcChannel

	frameCounter frameCounter

	cycles  uint64 // CPU cycles since power up
	frameCy uint32 // CPU cycles since the start of the audio frame
	irq     hwdefs.IRQSource

	// readMem reads CPU memory, for DMC sample fetches.
	readMem func(addr uint16) uint8

	STATUS hwio.Reg8 `hwio:"offset=0x15,rcb,wcb"`
}

// New creates an APU sending its output to mixer. readMem is used to fetch
// DMC samples from CPU memory.
func New(mixer *Mixer, readMem func(addr uint16) uint8) *APU {
	a := &APU{
		mixer:   mixer,
		readMem: readMem,
	}
	a.Square1.isChannel1 = true
	a.DMC.apu = a
	a.frameCounter.apu = a
	return a
}

// InitBus maps the APU registers, except $4017, which is shared with the
// second controller port (see WriteFrameCounter).
func (a *APU) InitBus(bus *hwio.Table) {
	hwio.MustInitRegs(a)
	hwio.MustInitRegs(&a.Square1)
	hwio.MustInitRegs(&a.Square2)
	hwio.MustInitRegs(&a.Triangle)
	hwio.MustInitRegs(&a.Noise)
	hwio.MustInitRegs(&a.DMC)

	bus.MapBank(0x4000, &a.Square1, 0)
	bus.MapBank(0x4004, &a.Square2, 0)
	bus.MapBank(0x4000, &a.Triangle, 0)
	bus.MapBank(0x4000, &a.Noise, 0)
	bus.MapBank(0x4000, &a.DMC, 0)
	bus.MapBank(0x4000, a, 0)
}

func (a *APU) Reset(soft bool) {
	a.frameCy = 0
	a.irq = 0

	a.Square1.reset(soft)
	a.Square2.reset(soft)
	a.Triangle.reset(soft)
	a.Noise.reset(soft)
	a.DMC.reset(soft)
	a.frameCounter.reset(soft)
	a.mixer.Reset()
}

// IRQ reports whether the APU asserts the CPU IRQ line.
func (a *APU) IRQ() bool { return a.irq != 0 }

// IRQSources returns the APU interrupt sources currently asserted.
func (a *APU) IRQSources() hwdefs.IRQSource { return a.irq }

func (a *APU) setIRQ(src hwdefs.IRQSource)   { a.irq |= src }
func (a *APU) clearIRQ(src hwdefs.IRQSource) { a.irq &^= src }

// Tick runs the APU for one CPU cycle.
func (a *APU) Tick() {
	a.cycles++
	a.frameCy++
	if a.frameCy >= maxFrameCycles {
		// EndFrame is normally called once per video frame.
		a.EndFrame()
	}

	a.frameCounter.tick()

	// Length counter reloads are applied after the frame counter had the
	// chance to clock them.
	a.Square1.length().reload()
	a.Square2.length().reload()
	a.Triangle.length.reload()
	a.Noise.envelope.length.reload()

	a.Square1.tick()
	a.Square2.tick()
	a.Triangle.tick()
	a.Noise.tick()
	a.DMC.tick()

	a.mixer.update(a.frameCy, [hwdefs.NumAudioChannels]uint8{
		Square1:  a.Square1.out,
		Square2:  a.Square2.out,
		Triangle: a.Triangle.out,
		Noise:    a.Noise.out,
		DMC:      a.DMC.outputLevel,
	})
}

// EndFrame ends the current audio frame, samples produced since the previous
// call are sent to the audio sink.
func (a *APU) EndFrame() {
	a.mixer.endFrame(a.frameCy)
	a.frameCy = 0
}

func (a *APU) clockFrame(ftyp FrameType) {
	// Quarter & half frames clock envelopes & linear counter
	a.Square1.envelope.tick()
	a.Square2.envelope.tick()
	a.Triangle.tickLinearCounter()
	a.Noise.envelope.tick()

	if ftyp == HalfFrame {
		// Half frames clock length counters & sweep units
		a.Square1.length().tick()
		a.Square2.length().tick()
		a.Triangle.length.tick()
		a.Noise.envelope.length.tick()

		a.Square1.tickSweep()
		a.Square2.tickSweep()
	}
}

// WriteFrameCounter handles a write to $4017.
func (a *APU) WriteFrameCounter(val uint8) {
	a.frameCounter.write(val, a.cycles&0x01 != 0)
}

func (a *APU) status() uint8 {
	var status uint8
	if a.Square1.length().status() {
		status |= 0x01
	}
	if a.Square2.length().status() {
		status |= 0x02
	}
	if a.Triangle.length.status() {
		status |= 0x04
	}
	if a.Noise.envelope.length.status() {
		status |= 0x08
	}
	if a.DMC.status() {
		status |= 0x10
	}
	if a.irq&hwdefs.FrameCounter != 0 {
		status |= 0x40
	}
	if a.irq&hwdefs.DMC != 0 {
		status |= 0x80
	}
	return status
}

// STATUS: $4015
func (a *APU) ReadSTATUS(_ uint8, peek bool) uint8 {
	status := a.status()
	if !peek {
		// Reading $4015 clears the frame counter interrupt flag.
		a.clearIRQ(hwdefs.FrameCounter)
	}
	return status
}

func (a *APU) WriteSTATUS(_, val uint8) {
	log.ModSound.DebugZ("write status").Hex8("val", val).End()

	// Writing $4015 clears the DMC interrupt flag, before enabling the DMC
	// which can raise it again.
	a.clearIRQ(hwdefs.DMC)

	a.Square1.length().setEnabled(val&0x01 != 0)
	a.Square2.length().setEnabled(val&0x02 != 0)
	a.Triangle.length.setEnabled(val&0x04 != 0)
	a.Noise.envelope.length.setEnabled(val&0x08 != 0)
	a.DMC.setEnabled(val&0x10 != 0)
}
