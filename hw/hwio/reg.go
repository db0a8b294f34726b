package hwio

import (
	"strconv"
	"strings"
)

// Reg8 is a single byte register. Writes leave the bits of RoMask
// untouched, then notify WriteCb with the previous and new values.
type Reg8 struct {
	Name   string
	Value  uint8
	RoMask uint8
	Access Access

	ReadCb  func(val uint8, peek bool) uint8
	WriteCb func(old, val uint8)
}

func (reg Reg8) String() string {
	var sb strings.Builder
	sb.WriteString(reg.Name)
	sb.WriteString("{")
	if reg.Value < 0x10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.FormatUint(uint64(reg.Value), 16))
	if reg.ReadCb != nil {
		sb.WriteString(",r!")
	}
	if reg.WriteCb != nil {
		sb.WriteString(",w!")
	}
	sb.WriteString("}")
	return sb.String()
}

// Read8 returns the register value, or what the read callback makes of it.
// With peek set, callbacks must leave the device state untouched.
func (reg *Reg8) Read8(addr uint16, peek bool) uint8 {
	switch {
	case !reg.Access.canRead():
		if !peek {
			rejected("Read8", "reg", reg.Name, addr)
		}
		return 0
	case reg.ReadCb == nil:
		return reg.Value
	}
	return reg.ReadCb(reg.Value, peek)
}

func (reg *Reg8) Write8(addr uint16, val uint8) {
	if !reg.Access.canWrite() {
		rejected("Write8", "reg", reg.Name, addr)
		return
	}
	prev := reg.Value
	reg.Value = prev&reg.RoMask | val&^reg.RoMask
	if reg.WriteCb != nil {
		reg.WriteCb(prev, reg.Value)
	}
}
