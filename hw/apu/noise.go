package apu

import (
	"dunes/hw/hwio"
)

// noiseChannel generates pseudo-random 1-bit noise at 16 different
// frequencies.
//
//	      Timer --> Shift Register   Length Counter
//	                    |                |
//	                    v                v
//	Envelope -------> Gate ----------> Gate --> (to mixer)
type noiseChannel struct {
	envelope envelope
	timer    timer

	shiftReg uint16
	mode     bool
	out      uint8

	Volume hwio.Reg8 `hwio:"offset=0x0C,wcb"`
	Unused hwio.Reg8 `hwio:"offset=0x0D"`
	Period hwio.Reg8 `hwio:"offset=0x0E,wcb"`
	Length hwio.Reg8 `hwio:"offset=0x0F,wcb"`
}

var noisePeriodLUT = [16]uint16{4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068}

func (nc *noiseChannel) WriteVolume(_, val uint8) {
	nc.envelope.init(val)
}

func (nc *noiseChannel) WritePeriod(_, val uint8) {
	nc.timer.period = noisePeriodLUT[val&0x0F] - 1
	nc.mode = val&0x80 != 0
}

func (nc *noiseChannel) WriteLength(_, val uint8) {
	nc.envelope.length.load(val >> 3)
	nc.envelope.restart()
}

func (nc *noiseChannel) tick() {
	if !nc.timer.tick() {
		return
	}

	// Feedback is bit 0 xor bit 6 in mode 1, bit 0 xor bit 1 otherwise.
	shift := 1
	if nc.mode {
		shift = 6
	}
	feedback := (nc.shiftReg ^ nc.shiftReg>>shift) & 0x01
	nc.shiftReg = nc.shiftReg>>1 | feedback<<14

	// muted when bit 0 is set
	if nc.shiftReg&0x01 != 0 {
		nc.out = 0
	} else {
		nc.out = nc.envelope.output()
	}
}

func (nc *noiseChannel) reset(soft bool) {
	nc.envelope.reset(soft)
	nc.timer.reset()
	nc.timer.period = noisePeriodLUT[0] - 1
	nc.shiftReg = 1
	nc.mode = false
	nc.out = 0
}
