package hwio

import "dunes/emu/log"

// Access restricts the direction in which a register or a device can be
// accessed by the CPU.
type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) canRead() bool  { return a != WriteOnly }
func (a Access) canWrite() bool { return a != ReadOnly }

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "readonly"
	case WriteOnly:
		return "writeonly"
	}
	return "readwrite"
}

// rejected logs an access that the target does not accept.
func rejected(op, kind, name string, addr uint16) {
	log.ModHwIo.ErrorZ("rejected " + op + " on " + kind).
		String("name", name).
		Hex16("addr", addr).
		End()
}
