package hwio

import (
	"fmt"

	"dunes/emu/log"
)

// Set to log accesses where nothing is mapped. Off by default: many games
// read the open bus on purpose.
const logUnmapped = false

// BankIO8 is anything that answers 8-bit accesses on a bus.
type BankIO8 interface {
	// Read8 reads the byte at addr. With peek set, the read must leave the
	// device untouched, for tracing and debugging.
	Read8(addr uint16, peek bool) uint8
	Write8(addr uint16, val uint8)
}

// Table is a 16-bit address space on which memory areas, registers and
// devices are mapped.
type Table struct {
	Name string

	// Unmapped handles accesses to addresses where nothing is mapped.
	Unmapped BankIO8

	// One entry per address, the NES address space is small enough.
	devs [0x10000]BankIO8

	// Addresses that can be peeked without side effects, that is, plain
	// memory areas.
	peekable addrSet
}

func NewTable(name string) *Table {
	t := &Table{Name: name}
	t.Reset()
	return t
}

// Reset unmaps everything.
func (t *Table) Reset() {
	clear(t.devs[:])
	t.peekable = addrSet{}
}

// MapBank maps the fields of a register bank, a struct holding Reg8, Mem
// or Device fields tagged with "hwio". Two options place a field in the
// bank:
//
//	offset=0x12   position of the field from the start of the bank. Fields
//	              without an offset are not mapped.
//	bank=N        bank number, 0 by default. A struct can hold several
//	              banks mapped at different addresses.
//
// See InitRegs for the other options.
func (t *Table) MapBank(addr uint16, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		at := addr + reg.offset
		switch r := reg.regPtr.(type) {
		case *Reg8:
			t.MapReg8(at, r)
		case *Mem:
			t.MapMem(at, r)
		case *Device:
			t.MapDevice(at, r)
		default:
			panic(fmt.Errorf("hwio: can't map %T", r))
		}
	}
}

// UnmapBank reverts MapBank.
func (t *Table) UnmapBank(addr uint16, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		size := 0
		switch r := reg.regPtr.(type) {
		case *Reg8:
			size = 1
		case *Mem:
			size = r.VSize
		case *Device:
			size = r.Size
		default:
			panic(fmt.Errorf("hwio: can't unmap %T", r))
		}
		at := addr + reg.offset
		t.Unmap(at, at+uint16(size-1))
	}
}

func (t *Table) MapReg8(addr uint16, io *Reg8) {
	t.mapRange(addr, 1, io, false)
}

func (t *Table) MapDevice(addr uint16, io *Device) {
	t.mapRange(addr, io.Size, io, false)
}

func (t *Table) MapMem(addr uint16, mem *Mem) {
	log.ModHwIo.DebugZ("map memory").
		String("bus", t.Name).
		String("area", mem.Name).
		Hex16("addr", addr).
		Int("size", mem.VSize).
		End()

	t.mapRange(addr, mem.VSize, mem.BankIO8(), true)
}

// MapMemorySlice maps buf over [addr, end], mirroring it if needed. Writes
// to a readonly slice are silently dropped.
func (t *Table) MapMemorySlice(addr, end uint16, buf []uint8, readonly bool) {
	m := &Mem{
		Data:  buf,
		VSize: int(end) - int(addr) + 1,
	}
	if readonly {
		m.Flags = MemFlagReadOnly | MemFlagNoROLog
	}
	t.MapMem(addr, m)
}

func (t *Table) mapRange(addr uint16, size int, io BankIO8, peekable bool) {
	last := int(addr) + size - 1
	if size <= 0 || last >= len(t.devs) {
		panic(fmt.Sprintf("hwio: can't map %d bytes at %04X on %s", size, addr, t.Name))
	}
	for i := int(addr); i <= last; i++ {
		t.devs[i] = io
	}
	t.peekable.mark(addr, uint16(last), peekable)
}

// Unmap removes anything mapped in [begin, end].
func (t *Table) Unmap(begin, end uint16) {
	for i := int(begin); i <= int(end); i++ {
		t.devs[i] = nil
	}
	t.peekable.mark(begin, end, false)
}

// Read8 forwards the read to the device mapped at the given address.
func (t *Table) Read8(addr uint16, peek bool) uint8 {
	if io := t.devs[addr]; io != nil {
		return io.Read8(addr, peek)
	}
	if logUnmapped && !peek {
		rejected("Read8", "unmapped address", t.Name, addr)
	}
	if t.Unmapped == nil {
		return 0
	}
	return t.Unmapped.Read8(addr, peek)
}

// Peek reads addr without side effects. It reports false if the address is
// not backed by plain memory, in which case reading it could disturb the
// device mapped there.
func (t *Table) Peek(addr uint16) (uint8, bool) {
	if !t.peekable.has(addr) {
		return 0, false
	}
	return t.devs[addr].Read8(addr, true), true
}

func (t *Table) Write8(addr uint16, val uint8) {
	if io := t.devs[addr]; io != nil {
		io.Write8(addr, val)
		return
	}
	if logUnmapped {
		rejected("Write8", "unmapped address", t.Name, addr)
	}
	if t.Unmapped != nil {
		t.Unmapped.Write8(addr, val)
	}
}
