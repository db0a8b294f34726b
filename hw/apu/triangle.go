package apu

import (
	"dunes/emu/log"
	"dunes/hw/hwio"
)

// triangleChannel outputs a quantized triangle wave. It has no volume
// control, the linear counter provides a finer grained duration.
//
//	       Linear Counter   Length Counter
//	             |                |
//	             v                v
//	Timer ---> Gate ----------> Gate ---> Sequencer ---> (to mixer)
type triangleChannel struct {
	timer  timer
	length lengthCounter

	linearCounter uint8
	linearReload  uint8
	reloadFlag    bool
	control       bool

	pos uint8 // position in triangleSequence
	out uint8

	Linear hwio.Reg8 `hwio:"offset=0x08,wcb"`
	Unused hwio.Reg8 `hwio:"offset=0x09"`
	Timer  hwio.Reg8 `hwio:"offset=0x0A,wcb"`
	Length hwio.Reg8 `hwio:"offset=0x0B,wcb"`
}

var triangleSequence = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8,
	7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15,
}

func (tc *triangleChannel) WriteLinear(_, val uint8) {
	tc.control = val&0x80 != 0
	tc.linearReload = val & 0x7F
	tc.length.setHalt(tc.control)
}

func (tc *triangleChannel) WriteTimer(_, val uint8) {
	tc.timer.period = tc.timer.period&0xFF00 | uint16(val)
}

func (tc *triangleChannel) WriteLength(_, val uint8) {
	tc.length.load(val >> 3)
	tc.timer.period = tc.timer.period&0x00FF | uint16(val&0x07)<<8
	tc.reloadFlag = true

	log.ModSound.DebugZ("write triangle length").
		Hex8("val", val).
		Uint16("period", tc.timer.period).
		End()
}

func (tc *triangleChannel) tick() {
	if !tc.timer.tick() {
		return
	}

	// The sequencer is clocked as long as both the linear counter and the
	// length counter are nonzero.
	if tc.length.status() && tc.linearCounter > 0 {
		tc.pos = (tc.pos + 1) & 0x1F

		// Ultrasonic periods are not output, they only produce pops.
		if tc.timer.period >= 2 {
			tc.out = triangleSequence[tc.pos]
		}
	}
}

func (tc *triangleChannel) tickLinearCounter() {
	if tc.reloadFlag {
		tc.linearCounter = tc.linearReload
	} else if tc.linearCounter > 0 {
		tc.linearCounter--
	}

	if !tc.control {
		tc.reloadFlag = false
	}
}

func (tc *triangleChannel) reset(soft bool) {
	tc.timer.reset()
	tc.length.reset(soft, true)

	tc.linearCounter = 0
	tc.linearReload = 0
	tc.reloadFlag = false
	tc.control = false
	tc.pos = 0
	tc.out = 0
}
