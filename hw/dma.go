package hw

import (
	"dunes/emu/log"
	"dunes/hw/hwio"
)

// OAMDMA is the sprite DMA port, at $4014. Writing a page number to it
// requests the transfer of that page into the PPU OAM, the CPU performs the
// transfer at the start of its next bus access.
type OAMDMA struct {
	pins *Pins

	OAMDMA hwio.Reg8 `hwio:"offset=0x00,writeonly,wcb"`
}

func (dma *OAMDMA) InitBus(bus *hwio.Table) {
	hwio.MustInitRegs(dma)
	bus.MapBank(0x4014, dma, 0)
}

// Connect sets the CPU pins on which transfers are requested.
func (dma *OAMDMA) Connect(pins *Pins) {
	dma.pins = pins
}

func (dma *OAMDMA) WriteOAMDMA(_, val uint8) {
	log.ModMem.DebugZ("start OAM DMA transfer").Hex8("page", val).End()
	dma.pins.DMA = true
	dma.pins.DMAPage = val
}

// dmaTransfer runs a pending OAM DMA transfer, 256 read/write pairs, plus one
// cycle to align on an even cycle if needed. The CPU is halted meanwhile.
func (c *CPU) dmaTransfer() {
	if !c.pins.DMA {
		return
	}
	c.pins.DMA = false

	base := uint16(c.pins.DMAPage) << 8
	start := c.Cycles

	if c.Cycles%2 == 1 {
		_ = c.Read8(base)
	}
	for i := range uint16(256) {
		val := c.Read8(base + i)
		c.Write8(0x2004, val)
	}

	log.ModMem.DebugZ("OAM DMA transfer done").
		Hex8("page", c.pins.DMAPage).
		Int64("cycles", c.Cycles-start).
		End()
}
