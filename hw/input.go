package hw

import (
	"dunes/emu/log"
	"dunes/hw/hwio"
)

// InputDevice is what's plugged into the controller ports.
type InputDevice interface {
	// LoadState returns the buttons currently held on both ports, one bit
	// per button, A first.
	LoadState() (uint8, uint8)
}

// InputPorts are the two serial controller ports at $4016 and $4017.
// While the strobe bit written to $4016 is set, the devices state is
// continuously reloaded; each read then shifts one bit out.
//
// $4017 is only readable here, writes to it go to the APU frame counter.
type InputPorts struct {
	In  hwio.Reg8 `hwio:"offset=0x16,rcb,wcb"`
	Out hwio.Reg8 `hwio:"offset=0x17,rcb,wcb"`

	dev          InputDevice
	frameCounter func(val uint8)

	strobe bool
	shift  [2]uint8
}

func (ip *InputPorts) InitBus(bus *hwio.Table, frameCounter func(uint8)) {
	hwio.MustInitRegs(ip)
	ip.frameCounter = frameCounter
	bus.MapBank(0x4000, ip, 0)
}

// SetDevice connects dev to the ports, nil disconnects it.
func (ip *InputPorts) SetDevice(dev InputDevice) {
	ip.dev = dev
}

func (ip *InputPorts) latch() {
	ip.shift = [2]uint8{}
	if ip.dev != nil {
		ip.shift[0], ip.shift[1] = ip.dev.LoadState()
	}
}

// read shifts out the next bit of port. Once the 8 buttons are out, a
// standard pad keeps returning 1. Bit 6 is what usually remains on the
// open bus.
func (ip *InputPorts) read(port int, peek bool) uint8 {
	if ip.strobe && !peek {
		ip.latch()
	}
	bit := ip.shift[port] & 1
	if !peek {
		ip.shift[port] = ip.shift[port]>>1 | 0x80
	}
	return 0x40 | bit
}

func (ip *InputPorts) WriteIn(_, val uint8) {
	was := ip.strobe
	ip.strobe = val&1 != 0
	if was && !ip.strobe {
		ip.latch()
		log.ModInput.DebugZ("ports latched").
			Hex8("port1", ip.shift[0]).
			Hex8("port2", ip.shift[1]).
			End()
	}
}

func (ip *InputPorts) ReadIn(_ uint8, peek bool) uint8  { return ip.read(0, peek) }
func (ip *InputPorts) ReadOut(_ uint8, peek bool) uint8 { return ip.read(1, peek) }

func (ip *InputPorts) WriteOut(_, val uint8) {
	if ip.frameCounter != nil {
		ip.frameCounter(val)
	}
}
