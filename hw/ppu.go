package hw

import (
	"fmt"
	"image"

	"dunes/emu/log"
	"dunes/hw/hwdefs"
	"dunes/hw/hwio"
)

const (
	NumScanlines = 262 // Number of scanlines per frame.
	NumCycles    = 341 // Number of PPU cycles per scanline.
)

// PPUCartridge is the part of the cartridge seen by the PPU: the pattern
// tables (CHR ROM or RAM) and the nametable mirroring.
type PPUCartridge interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, val uint8)
	Mirroring() hwdefs.NTMirroring
}

type PPU struct {
	cart  PPUCartridge
	out   *Output
	frame *image.RGBA

	Cycle    int // Current cycle/pixel in scanline
	Scanline int // Current scanline being drawn

	// CPU-exposed memory-mapped PPU registers, mapped from $2000 to $2007,
	// mirrored up to $3FFF. Reading a write-only register returns the
	// content of the open bus latch.
	PPUCTRL   hwio.Reg8 `hwio:"offset=0x0,rcb=ReadOpenBus,wcb"`
	PPUMASK   hwio.Reg8 `hwio:"offset=0x1,rcb=ReadOpenBus,wcb"`
	PPUSTATUS hwio.Reg8 `hwio:"offset=0x2,rcb,wcb=WriteOpenBus"`
	OAMADDR   hwio.Reg8 `hwio:"offset=0x3,rcb=ReadOpenBus,wcb"`
	OAMDATA   hwio.Reg8 `hwio:"offset=0x4,rcb,wcb"`
	PPUSCROLL hwio.Reg8 `hwio:"offset=0x5,rcb=ReadOpenBus,wcb"`
	PPUADDR   hwio.Reg8 `hwio:"offset=0x6,rcb=ReadOpenBus,wcb"`
	PPUDATA   hwio.Reg8 `hwio:"offset=0x7,rcb,wcb"`

	// 2 physical nametables, the cartridge decides how the 4 logical ones
	// are mapped onto them.
	nametables [0x800]byte
	palettes   [32]byte
	oam        [256]byte
	oamAddr    uint8

	// internal registers
	v, t  loopy
	finex uint8
	w     bool

	ctrl   ppuctrl
	mask   ppumask
	status ppustatus

	openbus uint8 // last value written to any register
	readbuf uint8 // PPUDATA read buffer
	nmi     bool  // NMI output

	// background latches, filled during the 8 cycles of a tile fetch.
	bgNT, bgAT, bgLo, bgHi uint8

	// background shifters, the high byte holds the tile being drawn.
	bgShiftLo, bgShiftHi uint16
	atShiftLo, atShiftHi uint16
}

// NewPPU creates a PPU reading its pattern tables from cart and publishing
// its frames to out.
func NewPPU(cart PPUCartridge, out *Output) *PPU {
	p := &PPU{
		cart: cart,
		out:  out,
	}
	p.frame = out.BeginFrame()
	return p
}

// InitBus initializes the PPU registers and maps them onto the CPU bus,
// mirrored every 8 bytes over $2000-$3FFF.
func (p *PPU) InitBus(cpubus *hwio.Table) {
	hwio.MustInitRegs(p)
	for addr := 0x2000; addr < 0x4000; addr += 8 {
		cpubus.MapBank(uint16(addr), p, 0)
	}
}

// Reset puts the PPU registers in their reset state. On hard reset, the
// internal VRAM address and the PPU memories are cleared too.
func (p *PPU) Reset(soft bool) {
	p.Cycle, p.Scanline = 0, 0
	p.ctrl, p.mask = 0, 0
	p.w = false
	p.finex = 0
	p.t = 0
	p.readbuf = 0
	if !soft {
		p.v = 0
		p.status = 0
		p.oamAddr = 0
		p.openbus = 0
		clear(p.nametables[:])
		clear(p.palettes[:])
		clear(p.oam[:])
	}
	p.updateNMI()
}

// NMI reports the state of the PPU NMI output.
func (p *PPU) NMI() bool { return p.nmi }

// Position returns the current scanline and dot.
func (p *PPU) Position() (int, uint32) {
	return p.Scanline, uint32(p.Cycle)
}

// FrameCount returns the number of frames rendered since power up.
func (p *PPU) FrameCount() uint64 { return p.out.FrameCount() }

func (p *PPU) rendering() bool {
	return p.mask.bg() || p.mask.sprites()
}

func (p *PPU) updateNMI() {
	p.nmi = p.ctrl.nmi() && p.status&vblank != 0
}

// Tick advances the PPU by one dot.
func (p *PPU) Tick() {
	switch {
	case p.Scanline < 240:
		p.background()
		if p.Cycle >= 1 && p.Cycle <= 256 {
			p.pixel()
		}
	case p.Scanline == 241:
		if p.Cycle == 1 {
			p.status |= vblank
			p.updateNMI()
			log.ModPPU.DebugZ("vblank start").Uint64("frame", p.out.FrameCount()).End()
		}
	case p.Scanline == 261:
		if p.Cycle == 1 {
			p.status &^= vblank | sprite0Hit | spriteOverflow
			p.updateNMI()
		}
		p.background()
		if p.Cycle >= 280 && p.Cycle <= 304 && p.rendering() {
			p.v.copyy(p.t)
		}
	}

	p.Cycle++
	if p.Cycle == NumCycles {
		p.Cycle = 0
		p.Scanline++
		switch p.Scanline {
		case 261:
			p.out.EndFrame()
			p.frame = p.out.BeginFrame()
		case NumScanlines:
			p.Scanline = 0
		}
	}
}

// background runs the background fetch pipeline, common to the visible
// scanlines and the pre-render line.
func (p *PPU) background() {
	if !p.rendering() {
		return
	}

	c := p.Cycle
	if (c >= 2 && c <= 257) || (c >= 322 && c <= 337) {
		p.shift()
	}

	if (c >= 1 && c <= 256) || (c >= 321 && c <= 337) {
		switch c % 8 {
		case 1:
			p.reload()
			p.bgNT = p.read(0x2000 | p.v.addr()&0x0FFF)
		case 3:
			p.bgAT = p.fetchAttribute()
		case 5:
			p.bgLo = p.read(p.tileAddr())
		case 7:
			p.bgHi = p.read(p.tileAddr() + 8)
		case 0:
			p.v.incCoarsex()
		}
	}

	switch c {
	case 256:
		p.v.incY()
	case 257:
		p.v.copyx(p.t)
	case 339:
		// unused nametable fetch
		_ = p.read(0x2000 | p.v.addr()&0x0FFF)
	}
}

func (p *PPU) fetchAttribute() uint8 {
	cx, cy := uint16(p.v.coarsex()), uint16(p.v.coarsey())
	addr := 0x23C0 | p.v.addr()&0x0C00 | (cy>>2)<<3 | cx>>2
	at := p.read(addr)
	if cy&0x02 != 0 {
		at >>= 4
	}
	if cx&0x02 != 0 {
		at >>= 2
	}
	return at & 0x03
}

func (p *PPU) tileAddr() uint16 {
	return p.ctrl.bgTable() + uint16(p.bgNT)<<4 + uint16(p.v.finey())
}

// reload loads the latched tile into the low byte of the shifters.
func (p *PPU) reload() {
	p.bgShiftLo = p.bgShiftLo&0xFF00 | uint16(p.bgLo)
	p.bgShiftHi = p.bgShiftHi&0xFF00 | uint16(p.bgHi)

	p.atShiftLo &= 0xFF00
	if p.bgAT&0x01 != 0 {
		p.atShiftLo |= 0xFF
	}
	p.atShiftHi &= 0xFF00
	if p.bgAT&0x02 != 0 {
		p.atShiftHi |= 0xFF
	}
}

func (p *PPU) shift() {
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.atShiftLo <<= 1
	p.atShiftHi <<= 1
}

// pixel outputs the pixel for the current dot.
func (p *PPU) pixel() {
	x, y := p.Cycle-1, p.Scanline

	var pal uint16
	if p.mask.bg() && (p.mask.bgLeft() || x >= 8) {
		bit := uint16(0x8000) >> p.finex
		pix := b2u16(p.bgShiftHi&bit != 0)<<1 | b2u16(p.bgShiftLo&bit != 0)
		if pix != 0 {
			attr := b2u16(p.atShiftHi&bit != 0)<<1 | b2u16(p.atShiftLo&bit != 0)
			pal = attr<<2 | pix
		}
	}

	idx := p.palettes[paletteAddr(0x3F00+pal)]
	if p.mask.gray() {
		idx &= 0x30
	}
	rgba := nesPalette[idx&0x3F]

	off := p.frame.PixOffset(x, y)
	pix := p.frame.Pix[off : off+4 : off+4]
	pix[0], pix[1], pix[2], pix[3] = rgba.R, rgba.G, rgba.B, rgba.A
}

/* PPU bus */

func (p *PPU) read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return p.cart.ReadCHR(addr)
	case addr < 0x3F00:
		return p.nametables[p.nametableAddr(addr)]
	case addr < 0x4000:
		return p.palettes[paletteAddr(addr)]
	}
	panic(fmt.Sprintf("ppu: read out of range address $%04X", addr))
}

func (p *PPU) write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		p.cart.WriteCHR(addr, val)
	case addr < 0x3F00:
		p.nametables[p.nametableAddr(addr)] = val
	case addr < 0x4000:
		p.palettes[paletteAddr(addr)] = val
	default:
		panic(fmt.Sprintf("ppu: write out of range address $%04X", addr))
	}
}

// nametableAddr maps addr ($2000-$3EFF) to an offset in the 2 physical
// nametables, $3000-$3EFF mirroring $2000-$2EFF.
func (p *PPU) nametableAddr(addr uint16) uint16 {
	addr &= 0x0FFF
	if p.cart.Mirroring() == hwdefs.HorzMirroring {
		return (addr/2)&0x400 + addr%0x400
	}
	return addr % 0x800
}

// paletteAddr maps addr ($3F00-$3FFF) to an offset in palette RAM. Entries
// $3F10/$3F14/$3F18/$3F1C mirror $3F00/$3F04/$3F08/$3F0C.
func paletteAddr(addr uint16) uint16 {
	addr &= 0x1F
	if addr&0x13 == 0x10 {
		addr &^= 0x10
	}
	return addr
}

func (p *PPU) incrVRAMAddr() {
	p.v = loopy((uint16(p.v) + p.ctrl.incr()) & 0x7FFF)
}

/* registers callbacks */

func (p *PPU) ReadOpenBus(_ uint8, _ bool) uint8 { return p.openbus }

func (p *PPU) WriteOpenBus(_, val uint8) { p.openbus = val }

func (p *PPU) WritePPUCTRL(_, val uint8) {
	p.openbus = val
	p.ctrl = ppuctrl(val)
	p.t.setNametable(p.ctrl.nametable())
	p.updateNMI()

	log.ModPPU.DebugZ("write PPUCTRL").Hex8("val", val).Bool("nmi", p.nmi).End()
}

func (p *PPU) WritePPUMASK(_, val uint8) {
	p.openbus = val
	p.mask = ppumask(val)
}

func (p *PPU) ReadPPUSTATUS(_ uint8, peek bool) uint8 {
	ret := uint8(p.status) | p.openbus&0x1F
	if peek {
		return ret
	}

	p.status &^= vblank
	p.w = false
	p.openbus = ret
	p.updateNMI()
	return ret
}

func (p *PPU) WriteOAMADDR(_, val uint8) {
	p.openbus = val
	p.oamAddr = val
}

func (p *PPU) ReadOAMDATA(_ uint8, peek bool) uint8 {
	val := p.oam[p.oamAddr]
	if !peek {
		p.openbus = val
	}
	return val
}

func (p *PPU) WriteOAMDATA(_, val uint8) {
	p.openbus = val
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

func (p *PPU) WritePPUSCROLL(_, val uint8) {
	p.openbus = val
	if !p.w {
		p.t.setCoarsex(val >> 3)
		p.finex = val & 0x07
	} else {
		p.t.setFiney(val & 0x07)
		p.t.setCoarsey(val >> 3)
	}
	p.w = !p.w
}

func (p *PPU) WritePPUADDR(_, val uint8) {
	p.openbus = val
	if !p.w {
		p.t.setHigh(val)
	} else {
		p.t.setLow(val)
		p.v = p.t
	}
	p.w = !p.w
}

func (p *PPU) ReadPPUDATA(_ uint8, peek bool) uint8 {
	addr := p.v.addr()

	var ret uint8
	if addr >= 0x3F00 {
		// Palette reads are immediate, the buffer gets the nametable byte
		// 'under' the palette.
		ret = p.read(addr)
		if !peek {
			p.readbuf = p.read(addr - 0x1000)
		}
	} else {
		ret = p.readbuf
		if !peek {
			p.readbuf = p.read(addr)
		}
	}

	if !peek {
		p.openbus = ret
		p.incrVRAMAddr()
	}
	return ret
}

func (p *PPU) WritePPUDATA(_, val uint8) {
	p.openbus = val
	p.write(p.v.addr(), val)
	p.incrVRAMAddr()
}
