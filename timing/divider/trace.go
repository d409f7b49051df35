package divider

import (
	"fmt"
	"io"
)

// CycleTracer writes one line per committed clock tick, carrying the
// cycle number, the control state, the four datapath registers, and the
// ready output. Attach it with WithTracer.
type CycleTracer struct {
	w io.Writer
}

// NewCycleTracer creates a tracer writing to w.
func NewCycleTracer(w io.Writer) *CycleTracer {
	return &CycleTracer{w: w}
}

func (t *CycleTracer) record(cycle uint64, state State, regs Registers) {
	fmt.Fprintf(t.w,
		"cycle=%d state=%s divisor=%d running=%d quotient=%d remainder=%d ready=%t\n",
		cycle, state, regs.Divisor, regs.RunningDividend,
		regs.Quotient, regs.Remainder, state == StateIdle)
}
