// Package hwdefs holds the hardware constants shared by the emulated
// components.
package hwdefs

import "strconv"

// IRQSource is a bitset of the devices holding the CPU IRQ line low. The
// line stays asserted while any bit is set.
type IRQSource uint8

const (
	FrameCounter IRQSource = 1 << iota
	DMC
)

func (irq IRQSource) String() string {
	switch irq {
	case 0:
		return "none"
	case FrameCounter:
		return "fcnt"
	case DMC:
		return "dmc"
	case FrameCounter | DMC:
		return "fcnt|dmc"
	}
	return "IRQSource(" + strconv.Itoa(int(irq)) + ")"
}

// Reset kinds, as passed to the Reset methods.
const (
	SoftReset = true
	HardReset = false
)

// NTMirroring is the nametable layout selected by the cartridge.
type NTMirroring uint8

const (
	HorzMirroring NTMirroring = iota // $2000=$2400, $2800=$2C00
	VertMirroring                    // $2000=$2800, $2400=$2C00
)

func (m NTMirroring) String() string {
	if m == VertMirroring {
		return "vertical"
	}
	return "horizontal"
}

// Screen dimensions, in pixels.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

const (
	NTSCCPUClock    = 1789773 // Hz
	CPUCyclesFrame  = 29781   // CPU cycles per frame (rounded)
	AudioSampleRate = 44100
)

// Number of sound generators mixed by the APU.
const NumAudioChannels = 5
