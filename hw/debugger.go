package hw

// A Debugger monitors a CPU.
type Debugger interface {
	// Reset is called when a reset sequence is queued.
	Reset()

	// Trace is called before each opcode is executed. The debugger can hold
	// the CPU by blocking until it's done.
	Trace(pc uint16)

	// Interrupt is called when an interrupt sequence has been executed.
	// prevpc is the address of the instruction that was about to be
	// executed, curpc is the address of the interrupt handler.
	Interrupt(prevpc, curpc uint16, isNMI bool)

	// FrameEnd signals the end of the current frame.
	FrameEnd()
}
