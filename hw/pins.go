package hw

// Pins is the state of the CPU pins for one bus access. The CPU sets Addr
// (and Data for writes), the bus fills Data for reads and drives the
// interrupt lines.
type Pins struct {
	Addr uint16
	Data uint8

	IRQ bool // level-triggered, masked by the I flag
	NMI bool // edge-triggered
	RST bool // edge-triggered

	// DMA is set by a write to the OAM DMA port, DMAPage holds the source
	// page. The transfer starts on the next CPU access.
	DMA     bool
	DMAPage uint8
}

// Bus is what the CPU is connected to. Every Read or Write is one CPU cycle.
type Bus interface {
	Read(p *Pins)
	Write(p *Pins)

	// Peek reads memory without side effects, it reports false for
	// addresses where a read would disturb the mapped device.
	Peek(addr uint16) (uint8, bool)
}
