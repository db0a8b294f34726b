package hwio

// Device maps a whole address range onto a pair of callbacks, for areas
// whose behavior does not fit a register or a memory buffer. A missing
// callback reads as 0 and ignores writes.
type Device struct {
	Name   string
	Size   int
	Access Access

	ReadCb  func(addr uint16, peek bool) uint8
	WriteCb func(addr uint16, val uint8)
}

func (d *Device) Read8(addr uint16, peek bool) uint8 {
	if !d.Access.canRead() {
		if !peek {
			rejected("Read8", "device", d.Name, addr)
		}
		return 0
	}
	if d.ReadCb == nil {
		return 0
	}
	return d.ReadCb(addr, peek)
}

func (d *Device) Write8(addr uint16, val uint8) {
	if !d.Access.canWrite() {
		rejected("Write8", "device", d.Name, addr)
		return
	}
	if d.WriteCb != nil {
		d.WriteCb(addr, val)
	}
}
