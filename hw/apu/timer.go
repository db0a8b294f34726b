package apu

// timer is the divider clocking a channel sequencer. It is clocked on every
// CPU cycle and expires once every period+1 cycles.
type timer struct {
	counter uint16
	period  uint16
}

func (t *timer) reset() {
	t.counter = 0
	t.period = 0
}

// tick reports whether the timer expired during this cycle.
func (t *timer) tick() bool {
	if t.counter == 0 {
		t.counter = t.period
		return true
	}
	t.counter--
	return false
}
