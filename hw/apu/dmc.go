package apu

import (
	"dunes/emu/log"
	"dunes/hw/hwdefs"
	"dunes/hw/hwio"
)

var dmcPeriodLUT = [16]uint16{428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54}

// dmcChannel plays delta-encoded 1-bit samples read from CPU memory. The
// sample bytes are fetched without stalling the CPU.
type dmcChannel struct {
	apu   *APU
	timer timer

	sampleAddr   uint16
	sampleLength uint16
	outputLevel  uint8
	irqEnabled   bool
	loop         bool

	curAddr     uint16
	bytesLeft   uint16
	readBuf     uint8
	bufferEmpty bool

	shiftReg uint8
	bitsLeft uint8
	silence  bool

	Flags      hwio.Reg8 `hwio:"offset=0x10,wcb"`
	Load       hwio.Reg8 `hwio:"offset=0x11,wcb"`
	SampleAddr hwio.Reg8 `hwio:"offset=0x12,wcb"`
	SampleLen  hwio.Reg8 `hwio:"offset=0x13,wcb"`
}

func (dc *dmcChannel) WriteFlags(_, val uint8) {
	dc.irqEnabled = val&0x80 != 0
	dc.loop = val&0x40 != 0
	dc.timer.period = dmcPeriodLUT[val&0x0F] - 1

	if !dc.irqEnabled {
		dc.apu.clearIRQ(hwdefs.DMC)
	}
}

func (dc *dmcChannel) WriteLoad(_, val uint8) {
	dc.outputLevel = val & 0x7F
}

func (dc *dmcChannel) WriteSampleAddr(_, val uint8) {
	dc.sampleAddr = 0xC000 | uint16(val)<<6
}

func (dc *dmcChannel) WriteSampleLen(_, val uint8) {
	dc.sampleLength = uint16(val)<<4 | 1
}

func (dc *dmcChannel) setEnabled(enabled bool) {
	if !enabled {
		dc.bytesLeft = 0
		return
	}
	if dc.bytesLeft == 0 {
		dc.restart()
		dc.fetch()
	}
}

func (dc *dmcChannel) restart() {
	dc.curAddr = dc.sampleAddr
	dc.bytesLeft = dc.sampleLength
}

func (dc *dmcChannel) status() bool { return dc.bytesLeft > 0 }

// fetch fills the sample buffer if it's empty.
func (dc *dmcChannel) fetch() {
	if !dc.bufferEmpty || dc.bytesLeft == 0 {
		return
	}

	dc.readBuf = dc.apu.readMem(dc.curAddr)
	dc.bufferEmpty = false

	dc.curAddr++
	if dc.curAddr == 0 {
		dc.curAddr = 0x8000
	}

	dc.bytesLeft--
	if dc.bytesLeft == 0 {
		switch {
		case dc.loop:
			dc.restart()
		case dc.irqEnabled:
			dc.apu.setIRQ(hwdefs.DMC)
			log.ModSound.DebugZ("DMC irq").End()
		}
	}
}

func (dc *dmcChannel) tick() {
	if !dc.timer.tick() {
		return
	}

	if !dc.silence {
		if dc.shiftReg&0x01 != 0 {
			if dc.outputLevel <= 125 {
				dc.outputLevel += 2
			}
		} else if dc.outputLevel >= 2 {
			dc.outputLevel -= 2
		}
		dc.shiftReg >>= 1
	}

	if dc.bitsLeft > 0 {
		dc.bitsLeft--
	}
	if dc.bitsLeft == 0 {
		// new output cycle
		dc.bitsLeft = 8
		if dc.bufferEmpty {
			dc.silence = true
		} else {
			dc.silence = false
			dc.shiftReg = dc.readBuf
			dc.bufferEmpty = true
			dc.fetch()
		}
	}
}

func (dc *dmcChannel) reset(soft bool) {
	if !soft {
		dc.sampleAddr = 0xC000
		dc.sampleLength = 1
	}
	dc.timer.reset()
	dc.timer.period = dmcPeriodLUT[0] - 1
	dc.outputLevel = 0
	dc.irqEnabled = false
	dc.loop = false
	dc.curAddr = 0
	dc.bytesLeft = 0
	dc.readBuf = 0
	dc.bufferEmpty = true
	dc.shiftReg = 0
	dc.bitsLeft = 8
	dc.silence = true
}
