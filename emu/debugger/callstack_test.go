package debugger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCallStack(t *testing.T) {
	tests := []struct {
		name string
		fill func(cs *callStack)
		pc   uint16
		want []frameInfo
	}{
		{
			name: "nested calls",
			fill: func(cs *callStack) {
				cs.push(0xC7C2, 0xC7E7, 0xC7C5, sffNone)
				cs.push(0xC801, 0xCBAE, 0xC804, sffNone)
			},
			pc: 0xF099,
			want: []frameInfo{
				{"CBAE", "$F099"},
				{"C7E7", "$C801"},
				{"[bottom of stack]", "$C7C2"},
			},
		},
		{
			name: "irq inside nmi",
			fill: func(cs *callStack) {
				cs.push(0x8010, 0x9000, 0x8010, sffNMI)
				cs.push(0x9004, 0xA000, 0x9007, sffNone)
				cs.pop()
				cs.push(0x9008, 0xB000, 0x9008, sffIRQ)
			},
			pc: 0xB002,
			want: []frameInfo{
				{"[irq] $B000", "$B002"},
				{"[nmi] $9000", "$9008"},
				{"[bottom of stack]", "$8010"},
			},
		},
		{
			name: "pop empty stack",
			fill: func(cs *callStack) { cs.pop() },
			pc:   0xF099,
			want: []frameInfo{{"[bottom of stack]", "$F099"}},
		},
		{
			name: "reset",
			fill: func(cs *callStack) {
				cs.push(0xC000, 0xD000, 0xC003, sffNone)
				cs.reset()
			},
			pc:   0xC000,
			want: []frameInfo{{"[bottom of stack]", "$C000"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cs callStack
			tt.fill(&cs)
			if diff := cmp.Diff(tt.want, cs.build(tt.pc)); diff != "" {
				t.Errorf("call stack mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
