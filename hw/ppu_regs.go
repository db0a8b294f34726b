package hw

// loopy is the PPU internal VRAM address, named after the person who
// documented it. v and t share the same layout:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) coarsex() uint8   { return uint8(l & 0x1F) }
func (l loopy) coarsey() uint8   { return uint8(l>>5) & 0x1F }
func (l loopy) nametable() uint8 { return uint8(l>>10) & 0x03 }
func (l loopy) finey() uint8     { return uint8(l>>12) & 0x07 }
func (l loopy) val() uint16      { return uint16(l) & 0x7FFF }

// addr is the 14-bit PPU address.
func (l loopy) addr() uint16 { return uint16(l) & 0x3FFF }

func (l *loopy) setCoarsex(v uint8) { *l = *l&^0x001F | loopy(v&0x1F) }
func (l *loopy) setCoarsey(v uint8) { *l = *l&^0x03E0 | loopy(v&0x1F)<<5 }
func (l *loopy) setNametable(v uint8) {
	*l = *l&^0x0C00 | loopy(v&0x03)<<10
}
func (l *loopy) setFiney(v uint8) { *l = *l&^0x7000 | loopy(v&0x07)<<12 }

// setLow sets the low byte, setHigh the 6 upper bits of the address and clears
// bit 14.
func (l *loopy) setLow(v uint8)  { *l = *l&^0x00FF | loopy(v) }
func (l *loopy) setHigh(v uint8) { *l = *l&^0x7F00 | loopy(v&0x3F)<<8 }

func (l *loopy) incCoarsex() {
	if l.coarsex() == 31 {
		l.setCoarsex(0)
		*l ^= 0x0400 // switch horizontal nametable
	} else {
		*l++
	}
}

func (l *loopy) incY() {
	if l.finey() < 7 {
		l.setFiney(l.finey() + 1)
		return
	}

	l.setFiney(0)
	switch y := l.coarsey(); y {
	case 29:
		l.setCoarsey(0)
		*l ^= 0x0800 // switch vertical nametable
	case 31:
		// Out of bounds coarse Y, set by a write to PPUADDR. Attributes
		// are read as tiles, and it wraps without switching nametable.
		l.setCoarsey(0)
	default:
		l.setCoarsey(y + 1)
	}
}

// copyx copies the horizontal position bits from t.
func (l *loopy) copyx(t loopy) {
	const mask = 0x041F
	*l = *l&^mask | t&mask
}

// copyy copies the vertical position bits from t.
func (l *loopy) copyy(t loopy) {
	const mask = 0x7BE0
	*l = *l&^mask | t&mask
}

// ppuctrl register ($2000).
type ppuctrl uint8

func (c ppuctrl) nametable() uint8 { return uint8(c) & 0x03 }

// VRAM address increment per CPU read/write of PPUDATA
// (0: +1 i.e. horizontal; 1: +32 i.e. vertical)
func (c ppuctrl) incr() uint16 {
	if c&0x04 != 0 {
		return 32
	}
	return 1
}

// Sprite pattern table address for 8x8 sprites, ignored in 8x16 mode.
func (c ppuctrl) spriteTable() uint16 { return uint16(c&0x08) << 9 }

// Background pattern table address.
func (c ppuctrl) bgTable() uint16 { return uint16(c&0x10) << 8 }

func (c ppuctrl) spriteSize() bool { return c&0x20 != 0 }

// Generate an NMI at the start of the vertical blanking interval.
func (c ppuctrl) nmi() bool { return c&0x80 != 0 }

// ppumask register ($2001).
type ppumask uint8

func (m ppumask) gray() bool       { return m&0x01 != 0 }
func (m ppumask) bgLeft() bool     { return m&0x02 != 0 }
func (m ppumask) spriteLeft() bool { return m&0x04 != 0 }
func (m ppumask) bg() bool         { return m&0x08 != 0 }
func (m ppumask) sprites() bool    { return m&0x10 != 0 }

// ppustatus register ($2002).
type ppustatus uint8

const (
	// Sprite overflow, cleared at dot 1 of the pre-render line. Sprite
	// evaluation isn't emulated so it's never set.
	spriteOverflow ppustatus = 1 << 5

	// Sprite 0 hit, cleared at dot 1 of the pre-render line.
	sprite0Hit ppustatus = 1 << 6

	// Set at dot 1 of line 241, cleared after reading $2002 and at dot 1 of
	// the pre-render line.
	vblank ppustatus = 1 << 7
)
