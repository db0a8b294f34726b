package apu

import (
	"dunes/emu/log"
	"dunes/hw/hwio"
)

// squareChannel is one of the two pulse channels, at $4000 and $4004. The
// timer clocks an 8-step duty sequencer every other CPU cycle; the output
// is gated by the sweep unit and the length counter, and its level comes
// from the envelope.
type squareChannel struct {
	envelope envelope
	timer    timer
	sweep    sweep

	// Pulse 1 adds the ones' complement when sweeping down, pulse 2 the
	// two's complement.
	isChannel1 bool

	period uint16 // 11-bit raw period
	duty   uint8
	step   uint8 // sequencer position
	out    uint8

	Duty   hwio.Reg8 `hwio:"offset=0x00,wcb"`
	Sweep  hwio.Reg8 `hwio:"offset=0x01,wcb"`
	Timer  hwio.Reg8 `hwio:"offset=0x02,wcb"`
	Length hwio.Reg8 `hwio:"offset=0x03,wcb"`
}

// Sequencer output for each duty setting: 12.5%, 25%, 50% and 75%.
var squareDuty = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 0},
}

func (sc *squareChannel) WriteDuty(_, val uint8) {
	sc.envelope.init(val)
	sc.duty = val >> 6

	log.ModSound.DebugZ("pulse duty").
		Bool("pulse1", sc.isChannel1).
		Uint8("duty", sc.duty).
		End()
}

func (sc *squareChannel) WriteSweep(_, val uint8) {
	sc.sweep.write(val)
}

func (sc *squareChannel) WriteTimer(_, val uint8) {
	sc.setPeriod(sc.period&0x700 | uint16(val))
}

func (sc *squareChannel) WriteLength(_, val uint8) {
	sc.envelope.length.load(val >> 3)
	sc.setPeriod(sc.period&0xFF | uint16(val&0x07)<<8)

	// Restart the sequence and the envelope.
	sc.step = 0
	sc.envelope.restart()

	log.ModSound.DebugZ("pulse length").
		Bool("pulse1", sc.isChannel1).
		Uint16("period", sc.period).
		End()
}

func (sc *squareChannel) setPeriod(period uint16) {
	sc.period = period
	sc.timer.period = period*2 + 1
}

// target is the period the sweep unit is heading to.
func (sc *squareChannel) target() uint16 {
	delta := sc.period >> sc.sweep.shift
	if !sc.sweep.negate {
		return sc.period + delta
	}
	if sc.isChannel1 {
		return sc.period - delta - 1
	}
	return sc.period - delta
}

// A period lower than 8, or a sweep target over 11 bits, silences the
// channel, whether the sweep is enabled or not.
func (sc *squareChannel) muted() bool {
	return sc.period < 8 || !sc.sweep.negate && sc.target() > 0x7FF
}

func (sc *squareChannel) tick() {
	if !sc.timer.tick() {
		return
	}
	sc.step = (sc.step - 1) & 7
	sc.out = 0
	if !sc.muted() {
		sc.out = squareDuty[sc.duty][sc.step] * sc.envelope.output()
	}
}

// tickSweep clocks the sweep unit, on half frames.
func (sc *squareChannel) tickSweep() {
	if sc.sweep.clock() && sc.sweep.shift > 0 && !sc.muted() {
		sc.setPeriod(sc.target())
	}
}

func (sc *squareChannel) reset(soft bool) {
	sc.envelope.reset(soft)
	sc.timer.reset()
	sc.sweep = sweep{}

	sc.period = 0
	sc.duty = 0
	sc.step = 0
	sc.out = 0
}

func (sc *squareChannel) length() *lengthCounter { return &sc.envelope.length }

// sweep is the unit periodically adjusting a pulse channel period, set
// through $4001/$4005: EPPP NSSS, enabled, divider period, negate, shift.
type sweep struct {
	enabled bool
	negate  bool
	shift   uint8
	period  uint8 // divider period, P+1
	divider uint8
	reload  bool
}

func (sw *sweep) write(val uint8) {
	sw.enabled = val&0x80 != 0
	sw.period = (val>>4)&7 + 1
	sw.negate = val&0x08 != 0
	sw.shift = val & 7
	sw.reload = true
}

// clock clocks the divider, it reports whether the period should be
// updated now.
func (sw *sweep) clock() bool {
	sw.divider--
	update := sw.divider == 0 && sw.enabled
	if sw.divider == 0 || sw.reload {
		sw.divider = sw.period
		sw.reload = false
	}
	return update
}
