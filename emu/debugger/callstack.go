package debugger

import "fmt"

type stackFrameFlag uint8

const (
	sffNone stackFrameFlag = iota
	sffNMI
	sffIRQ
)

// a stackFrame is pushed for each JSR and each interrupt.
type stackFrame struct {
	src    uint16 // address of the JSR, or of the interrupted instruction
	target uint16 // subroutine or interrupt handler address
	ret    uint16 // return address
	flag   stackFrameFlag
}

func (f *stackFrame) entryPoint() string {
	if f == nil {
		return "[bottom of stack]"
	}

	switch f.flag {
	case sffNMI:
		return fmt.Sprintf("[nmi] $%04X", f.target)
	case sffIRQ:
		return fmt.Sprintf("[irq] $%04X", f.target)
	}
	return fmt.Sprintf("%04X", f.target)
}

type callStack []stackFrame

func (cs *callStack) push(src, dst, ret uint16, flag stackFrameFlag) {
	*cs = append(*cs, stackFrame{src: src, target: dst, ret: ret, flag: flag})
}

func (cs *callStack) len() int { return len(*cs) }

func (cs *callStack) pop() {
	if len(*cs) > 0 {
		*cs = (*cs)[:len(*cs)-1]
	}
}

func (cs *callStack) reset() { *cs = (*cs)[:0] }

// frameInfo describes a call stack frame: the routine entry point and the
// current location in that routine.
type frameInfo [2]string

// build returns the call stack, innermost frame first, pc being the current
// location in the innermost routine.
func (cs callStack) build(pc uint16) []frameInfo {
	nfos := make([]frameInfo, 0, len(cs)+1)

	loc := pc
	for i := len(cs) - 1; i >= -1; i-- {
		var cur *stackFrame
		if i >= 0 {
			cur = &cs[i]
		}
		nfos = append(nfos, frameInfo{cur.entryPoint(), fmt.Sprintf("$%04X", loc)})
		if cur != nil {
			loc = cur.src
		}
	}
	return nfos
}
