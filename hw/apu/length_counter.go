package apu

var lengthLUT = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// lengthCounter silences a channel after a given number of half frames.
//
// Writes to the length and halt bits take effect on the next cycle, after
// the frame counter had the chance to clock the counter. Reloading a counter
// clocked on the same cycle is ignored.
type lengthCounter struct {
	enabled bool
	halt    bool
	newHalt bool
	counter uint8

	reloadVal uint8
	prevVal   uint8
}

func (lc *lengthCounter) reset(soft bool, isTriangle bool) {
	lc.enabled = false
	if soft && isTriangle {
		// triangle length counter is unaffected by soft resets
		return
	}
	lc.halt = false
	lc.newHalt = false
	lc.counter = 0
	lc.reloadVal = 0
	lc.prevVal = 0
}

func (lc *lengthCounter) setHalt(halt bool) {
	lc.newHalt = halt
}

func (lc *lengthCounter) load(idx uint8) {
	if lc.enabled {
		lc.reloadVal = lengthLUT[idx&0x1F]
		lc.prevVal = lc.counter
	}
}

// reload applies the pending writes.
func (lc *lengthCounter) reload() {
	if lc.reloadVal != 0 {
		if lc.counter == lc.prevVal {
			lc.counter = lc.reloadVal
		}
		lc.reloadVal = 0
	}
	lc.halt = lc.newHalt
}

func (lc *lengthCounter) tick() {
	if lc.counter > 0 && !lc.halt {
		lc.counter--
	}
}

func (lc *lengthCounter) setEnabled(enabled bool) {
	if !enabled {
		lc.counter = 0
	}
	lc.enabled = enabled
}

func (lc *lengthCounter) status() bool {
	return lc.counter > 0
}
