// Package debugger implements a headless CPU monitor. It keeps track of the
// call stack of the running program and counts executed instructions,
// interrupts and frames.
package debugger

import (
	"fmt"
	"io"
	"text/tabwriter"

	"dunes/emu/log"
)

// Stats holds the counters of a Debugger.
type Stats struct {
	Instructions uint64
	NMIs         uint64
	IRQs         uint64
	Resets       uint64
	Frames       uint64
	MaxDepth     int // deepest call stack seen
}

// A Debugger monitors the CPU through the hooks it calls before each
// instruction and after each interrupt sequence. It never blocks the CPU.
type Debugger struct {
	peek func(addr uint16) (uint8, bool)

	prevPC     uint16
	prevOpcode uint8
	resetPC    uint16
	pc         uint16
	afterReset bool

	cstack callStack
	stats  Stats
}

// New creates a Debugger. peek reads memory without side effects, it's used
// to fetch the opcodes of the traced instructions.
func New(peek func(addr uint16) (uint8, bool)) *Debugger {
	return &Debugger{peek: peek, prevOpcode: 0xFF, afterReset: true}
}

func (d *Debugger) Reset() {
	d.stats.Resets++
	d.cstack.reset()
	d.prevOpcode = 0xFF
	d.afterReset = true
}

// Trace must be called before each opcode is executed.
func (d *Debugger) Trace(pc uint16) {
	if d.afterReset {
		d.afterReset = false
		d.resetPC = pc
	}
	d.stats.Instructions++
	d.updateStack(pc, sffNone)

	opcode, ok := d.peek(pc)
	if !ok {
		log.ModEmu.WarnZ("executing from a register").Hex16("pc", pc).End()
		opcode = 0xFF
	}
	d.prevPC = pc
	d.prevOpcode = opcode
	d.pc = pc
}

func (d *Debugger) updateStack(dstPc uint16, sff stackFrameFlag) {
	switch d.prevOpcode {
	case 0x20: // JSR
		d.cstack.push(d.prevPC, dstPc, d.prevPC+3, sff)
		d.stats.MaxDepth = max(d.stats.MaxDepth, d.cstack.len())
	case 0x40, 0x60: // RTI RTS
		d.cstack.pop()
	}
}

// FrameEnd signals the end of the current frame.
func (d *Debugger) FrameEnd() {
	d.stats.Frames++
}

func (d *Debugger) Interrupt(prevpc, curpc uint16, isNMI bool) {
	flag := sffIRQ
	if isNMI {
		flag = sffNMI
		d.stats.NMIs++
	} else {
		d.stats.IRQs++
	}
	d.updateStack(prevpc, flag)
	d.prevOpcode = 0xFF

	d.cstack.push(prevpc, curpc, prevpc, flag)
	d.stats.MaxDepth = max(d.stats.MaxDepth, d.cstack.len())
	d.pc = curpc
}

// Stats returns the counters accumulated so far.
func (d *Debugger) Stats() Stats { return d.stats }

// ResetPC returns the address of the first instruction run after reset.
func (d *Debugger) ResetPC() uint16 { return d.resetPC }

// WriteCallStack writes the current call stack to w, innermost frame first.
func (d *Debugger) WriteCallStack(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, fi := range d.cstack.build(d.pc) {
		fmt.Fprintf(tw, "%s\t%s\n", fi[0], fi[1])
	}
	return tw.Flush()
}

// WriteStats writes a summary of the counters to w.
func (d *Debugger) WriteStats(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "instructions\t%d\n", d.stats.Instructions)
	fmt.Fprintf(tw, "frames\t%d\n", d.stats.Frames)
	fmt.Fprintf(tw, "nmi\t%d\n", d.stats.NMIs)
	fmt.Fprintf(tw, "irq\t%d\n", d.stats.IRQs)
	fmt.Fprintf(tw, "resets\t%d\n", d.stats.Resets)
	fmt.Fprintf(tw, "max call depth\t%d\n", d.stats.MaxDepth)
	fmt.Fprintf(tw, "reset vector\t$%04X\n", d.resetPC)
	return tw.Flush()
}
