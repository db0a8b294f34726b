package hw

//go:generate go run ./cpugen -out ./opcodes.go

import (
	"io"

	"dunes/emu/log"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request
)

// A ClockPosition reports the current PPU beam position, only used to
// annotate the execution trace.
type ClockPosition interface {
	Position() (scanline int, dot uint32)
}

type CPU struct {
	bus  Bus
	pins Pins

	Sched *Scheduler

	// Non-nil when execution tracing is enabled.
	tracer *tracer
	clock  ClockPosition
	dbg    Debugger

	Cycles int64 // CPU cycles

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	// interrupt handling
	prevNMI              bool
	needNMI, prevNeedNMI bool
	runIRQ, prevRunIRQ   bool
	prevRST, rst         bool
}

// NewCPU creates a CPU connected to bus, in its power-up state. The reset
// sequence runs on the first call to Step.
func NewCPU(bus Bus) *CPU {
	cpu := &CPU{
		bus:   bus,
		Sched: NewScheduler(),
		dbg:   nopDebugger{},
	}
	cpu.Sched.Handle(EventReset, func() { cpu.rst = true })
	cpu.PowerUp()
	return cpu
}

// PowerUp puts the CPU in its power-up state and queues a reset.
func (c *CPU) PowerUp() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0x00
	c.PC = 0x0000
	c.P = 0x34
	c.Cycles = 0

	c.prevNMI, c.needNMI, c.prevNeedNMI = false, false, false
	c.runIRQ, c.prevRunIRQ = false, false
	c.prevRST, c.rst = false, false
	c.pins = Pins{}

	c.Sched.Clear()
	c.Reset()
}

// Reset queues a reset sequence, to be run at the start of the next Step.
func (c *CPU) Reset() {
	c.Sched.Queue(EventReset, 0)
	c.dbg.Reset()
}

// Pins returns the CPU pins, so that the bus side can drive the interrupt
// lines and trigger DMA transfers.
func (c *CPU) Pins() *Pins { return &c.pins }

// Step runs either a single instruction or a pending interrupt sequence.
func (c *CPU) Step() {
	c.Sched.HandleEvents()

	switch {
	case c.rst:
		c.rst = false
		_ = c.Read8(c.PC) // dummy read
		c.reset()
	case c.prevNeedNMI:
		c.needNMI = false
		_ = c.Read8(c.PC) // dummy read
		prevpc := c.PC
		c.interrupt(NMIVector)
		c.dbg.Interrupt(prevpc, c.PC, true)
	case c.prevRunIRQ:
		_ = c.Read8(c.PC) // dummy read
		prevpc := c.PC
		c.interrupt(IRQVector)
		c.dbg.Interrupt(prevpc, c.PC, false)
	default:
		c.traceOp()
		opcode := c.fetch8()
		ops[opcode](c)
	}
}

// Run executes instructions until at least ncycles cycles have elapsed.
func (c *CPU) Run(ncycles int64) {
	until := c.Cycles + ncycles
	for c.Cycles < until {
		c.Step()
	}
}

func (c *CPU) traceOp() {
	if c.tracer != nil {
		r := traceRegs{
			A:      c.A,
			X:      c.X,
			Y:      c.Y,
			SP:     c.SP,
			P:      c.P,
			PC:     c.PC,
			Cycles: c.Cycles,
		}
		if c.clock != nil {
			r.Scanline, r.Dot = c.clock.Position()
		}
		c.tracer.write(r)
	}

	c.dbg.Trace(c.PC)
}

/* bus cycles */

func (c *CPU) Read8(addr uint16) uint8 {
	c.dmaTransfer()
	c.Cycles++
	c.Sched.tick()

	c.pins.Addr = addr
	c.bus.Read(&c.pins)
	c.pollInterrupts()
	return c.pins.Data
}

func (c *CPU) Write8(addr uint16, val uint8) {
	c.dmaTransfer()
	c.Cycles++
	c.Sched.tick()

	c.pins.Addr = addr
	c.pins.Data = val
	c.bus.Write(&c.pins)
	c.pollInterrupts()
}

func (c *CPU) Read16(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) fetch8() uint8 {
	val := c.Read8(c.PC)
	c.PC++
	return val
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	top := uint16(c.SP) + 0x0100
	c.Write8(top, val)
	c.SP--
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	top := uint16(c.SP) + 0x0100
	return c.Read8(top)
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* interrupt handling */

func (c *CPU) pollInterrupts() {
	// It's really the status of the interrupt lines at the end of the
	// second-to-last cycle that matters. Keep the IRQ line value from the
	// previous cycle.
	c.prevRunIRQ = c.runIRQ
	c.runIRQ = c.pins.IRQ && !c.P.intDisable()

	// The internal NMI signal goes high during φ1 of the cycle that follows
	// the one where the edge is detected, and stays high until the NMI has
	// been handled.
	c.prevNeedNMI = c.needNMI
	if !c.prevNMI && c.pins.NMI {
		c.needNMI = true
	}
	c.prevNMI = c.pins.NMI

	if !c.prevRST && c.pins.RST {
		c.rst = true
	}
	c.prevRST = c.pins.RST
}

// interrupt runs the IRQ/NMI sequence. With the dummy read done in place of
// the opcode fetch, it takes 7 cycles.
func (c *CPU) interrupt(vector uint16) {
	_ = c.Read8(c.PC) // dummy read
	c.push16(c.PC)

	p := c.P | Reserved
	p.clearFlags(Break)
	c.push8(uint8(p))

	c.P.setFlags(Interrupt)
	c.PC = c.Read16(vector)
}

// reset runs the reset sequence, the same as the interrupt one except that
// the 3 pushes are replaced with stack reads.
func (c *CPU) reset() {
	_ = c.Read8(c.PC) // dummy read
	for range 3 {
		_ = c.Read8(0x0100 + uint16(c.SP))
		c.SP--
	}
	c.P.setFlags(Interrupt)
	c.PC = c.Read16(ResetVector)

	log.ModCPU.DebugZ("reset").
		Hex16("PC", c.PC).
		Int64("cycles", c.Cycles).
		End()
}

func BRK(cpu *CPU) {
	_ = cpu.fetch8() // padding byte
	cpu.push16(cpu.PC)

	p := cpu.P | Break | Reserved
	cpu.push8(uint8(p))
	cpu.P.setFlags(Interrupt)

	// An NMI asserted during BRK hijacks the vector fetch.
	vector := IRQVector
	if cpu.needNMI {
		cpu.needNMI = false
		vector = NMIVector
	}
	cpu.PC = cpu.Read16(vector)

	// The first instruction of the handler always runs before the next
	// interrupt is serviced.
	cpu.prevNeedNMI = false
}

func JSR(cpu *CPU) {
	lo := cpu.fetch8()
	_ = cpu.Read8(0x0100 + uint16(cpu.SP)) // dummy read
	cpu.push16(cpu.PC)
	hi := cpu.Read8(cpu.PC)
	cpu.PC = uint16(hi)<<8 | uint16(lo)
}

/* tracing / debugging */

// SetTraceOutput enables the execution trace, written to w before each
// instruction. pos, if non-nil, annotates lines with the PPU position.
func (c *CPU) SetTraceOutput(w io.Writer, pos ClockPosition) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, d: c}
	c.clock = pos
}

func (c *CPU) SetDebugger(dbg Debugger) {
	if dbg == nil {
		dbg = nopDebugger{}
	}
	c.dbg = dbg
}

func (c *CPU) Disasm(pc uint16) DisasmOp {
	opcode := c.peek8(pc)
	return disasmOps[opcode](c, pc)
}

// peek8 reads memory without side effects, side-effect ranges read as 0.
func (c *CPU) peek8(addr uint16) uint8 {
	val, _ := c.bus.Peek(addr)
	return val
}

type nopDebugger struct{}

func (nopDebugger) Reset()                                     {}
func (nopDebugger) Trace(pc uint16)                            {}
func (nopDebugger) Interrupt(prevpc, curpc uint16, isNMI bool) {}
func (nopDebugger) FrameEnd()                                  {}
