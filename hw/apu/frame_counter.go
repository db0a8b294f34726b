package apu

import (
	"dunes/emu/log"
	"dunes/hw/hwdefs"
)

// CPU cycles at which each step of the sequence happens, for the 4-step and
// 5-step modes. The sequence restarts after the last step.
var stepCycles = [2][6]int32{
	{7457, 14913, 22371, 29828, 29829, 29830},
	{7457, 14913, 22371, 29829, 37281, 37282},
}

var frameType = [2][6]FrameType{
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
}

// frameCounter generates the quarter and half frame clocks, and the frame
// IRQ in 4-step mode.
type frameCounter struct {
	apu *APU

	cycle      int32
	step       uint8
	mode       uint8 // 0: 4-step, 1: 5-step
	inhibitIRQ bool

	// Frame clocks are blocked for 2 cycles after one happened, so that a
	// $4017 write can't clock twice in a row.
	blockTick uint8

	// A write to $4017 is applied after a delay of 3 or 4 cycles.
	newVal     int16
	writeDelay int8
}

func (fc *frameCounter) reset(soft bool) {
	fc.cycle = 0

	// The mode is kept on soft resets.
	if !soft {
		fc.mode = 0
	}
	fc.step = 0

	// After reset or power-up, the APU acts as if $4017 were written with
	// $00 from 9 to 12 clocks before the first instruction begins.
	fc.newVal = 0
	if fc.mode != 0 {
		fc.newVal = 0x80
	}
	fc.writeDelay = 3
	fc.inhibitIRQ = false
	fc.blockTick = 0
}

// write handles a write to $4017, oddCycle tells whether the write occurs on
// an odd CPU cycle.
func (fc *frameCounter) write(val uint8, oddCycle bool) {
	log.ModSound.DebugZ("write frame counter").Hex8("val", val).Bool("odd", oddCycle).End()

	fc.newVal = int16(val)

	// If the write occurs between APU cycles, the effects occur 4 CPU
	// cycles after the write cycle, 3 otherwise.
	fc.writeDelay = 3
	if oddCycle {
		fc.writeDelay = 4
	}

	fc.inhibitIRQ = val&0x40 != 0
	if fc.inhibitIRQ {
		fc.apu.clearIRQ(hwdefs.FrameCounter)
	}
}

func (fc *frameCounter) tick() {
	fc.cycle++
	if fc.cycle == stepCycles[fc.mode][fc.step] {
		if !fc.inhibitIRQ && fc.mode == 0 && fc.step >= 3 {
			// The IRQ flag is set on the last 3 cycles of 4-step mode.
			fc.apu.setIRQ(hwdefs.FrameCounter)
		}

		ftyp := frameType[fc.mode][fc.step]
		if ftyp != NoFrame && fc.blockTick == 0 {
			fc.apu.clockFrame(ftyp)
			fc.blockTick = 2
		}

		fc.step++
		if fc.step == 6 {
			fc.step = 0
			fc.cycle = 0
		}
	}

	if fc.newVal >= 0 {
		fc.writeDelay--
		if fc.writeDelay == 0 {
			fc.mode = 0
			if fc.newVal&0x80 != 0 {
				fc.mode = 1
			}
			fc.writeDelay = -1
			fc.step = 0
			fc.cycle = 0
			fc.newVal = -1

			// Writing $4017 with bit 7 set immediately clocks both the
			// quarter and half frame units.
			if fc.mode == 1 && fc.blockTick == 0 {
				fc.apu.clockFrame(HalfFrame)
				fc.blockTick = 2
			}
		}
	}

	if fc.blockTick > 0 {
		fc.blockTick--
	}
}
