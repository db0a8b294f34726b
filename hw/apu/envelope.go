package apu

// envelope generates a decreasing saw volume, or a constant one. The
// length counter halt flag doubles as the envelope loop flag.
type envelope struct {
	constant bool
	volume   uint8

	start   bool
	divider int8
	counter uint8

	length lengthCounter
}

// init sets the envelope from the first channel register (--LC VVVV).
func (env *envelope) init(val uint8) {
	env.length.setHalt(val&0x20 != 0)
	env.constant = val&0x10 != 0
	env.volume = val & 0x0F
}

func (env *envelope) restart() { env.start = true }

func (env *envelope) reset(soft bool) {
	length := env.length
	length.reset(soft, false)
	*env = envelope{length: length}
}

// output returns the current volume, 0 when the length counter expired.
func (env *envelope) output() uint8 {
	switch {
	case !env.length.status():
		return 0
	case env.constant:
		return env.volume
	}
	return env.counter
}

// tick is clocked by the frame counter quarter frames.
func (env *envelope) tick() {
	if env.start {
		env.start = false
		env.reload(15)
		return
	}
	if env.divider > 0 {
		env.divider--
		return
	}

	switch {
	case env.counter > 0:
		env.reload(env.counter - 1)
	case env.length.halt:
		env.reload(15)
	default:
		env.divider = int8(env.volume)
	}
}

func (env *envelope) reload(counter uint8) {
	env.counter = counter
	env.divider = int8(env.volume)
}
