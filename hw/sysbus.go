package hw

import (
	"dunes/emu/log"
	"dunes/hw/apu"
	"dunes/hw/hwio"
)

// A Cartridge is what's plugged into the cartridge slot. It maps its PRG
// memory onto the CPU bus and provides the PPU with CHR memory and the
// nametable layout.
type Cartridge interface {
	PPUCartridge

	// MapCPU maps the cartridge memory areas onto the CPU bus, from $4020
	// to $FFFF.
	MapCPU(bus *hwio.Table)
}

// SysBus is the CPU side bus of the NES. It decodes CPU accesses and lets
// the other chips run in lockstep with the CPU: each access ticks the PPU 3
// times and the APU once, before the access takes place. The interrupt lines
// are then updated from the PPU and APU outputs.
type SysBus struct {
	Bus *hwio.Table

	RAM hwio.Mem `hwio:"offset=0x0000,size=0x800,vsize=0x2000"`

	PPU   *PPU
	APU   *apu.APU
	DMA   OAMDMA
	Ports InputPorts

	cart Cartridge
	last uint8 // last value on the data bus
}

// NewSysBus creates the system bus and maps all the devices onto it.
func NewSysBus(ppu *PPU, apu *apu.APU, cart Cartridge) *SysBus {
	sb := &SysBus{
		Bus:  hwio.NewTable("cpu"),
		PPU:  ppu,
		APU:  apu,
		cart: cart,
	}
	hwio.MustInitRegs(sb)
	sb.Bus.MapBank(0x0000, sb, 0)

	// Nothing drives the data bus in $4018-$5FFF unless the cartridge maps
	// something there.
	sb.Bus.Unmapped = openBus{sb}

	ppu.InitBus(sb.Bus)
	apu.InitBus(sb.Bus)
	sb.DMA.InitBus(sb.Bus)
	sb.Ports.InitBus(sb.Bus, apu.WriteFrameCounter)
	cart.MapCPU(sb.Bus)

	log.ModMem.DebugZ("system bus ready").End()
	return sb
}

// Connect connects the bus to the CPU pins, on which the OAM DMA port
// requests transfers.
func (sb *SysBus) Connect(cpu *CPU) {
	sb.DMA.Connect(cpu.Pins())
}

// Reset clears the internal RAM, on power up only.
func (sb *SysBus) Reset(soft bool) {
	if !soft {
		clear(sb.RAM.Data)
	}
}

func (sb *SysBus) tick() {
	sb.PPU.Tick()
	sb.PPU.Tick()
	sb.PPU.Tick()
	sb.APU.Tick()
}

func (sb *SysBus) Read(p *Pins) {
	sb.tick()
	p.Data = sb.Bus.Read8(p.Addr, false)
	sb.latch(p)
}

func (sb *SysBus) Write(p *Pins) {
	sb.tick()
	sb.Bus.Write8(p.Addr, p.Data)
	sb.latch(p)
}

func (sb *SysBus) latch(p *Pins) {
	sb.last = p.Data
	p.NMI = sb.PPU.NMI()
	p.IRQ = sb.APU.IRQ()
}

// openBus answers accesses to unmapped addresses: reads return the last
// value seen on the data bus, writes are lost.
type openBus struct{ sb *SysBus }

func (ob openBus) Read8(uint16, bool) uint8 { return ob.sb.last }
func (openBus) Write8(uint16, uint8)        {}

// Peek reads addr without side effects. Only RAM and cartridge memory can
// be peeked, reading registers would disturb the devices mapped there.
func (sb *SysBus) Peek(addr uint16) (uint8, bool) {
	return sb.Bus.Peek(addr)
}

// Position returns the current PPU beam position.
func (sb *SysBus) Position() (int, uint32) {
	return sb.PPU.Position()
}
