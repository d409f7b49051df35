package divider

import (
	"github.com/sarchlab/divsim/emu"
)

// Inputs carries the combinational input lines sampled on a clock edge.
// The divider never registers these; the embedding logic must hold the
// operand lines steady for the duration of a division, exactly as the
// hardware requires (the looping state re-reads the raw dividend every
// cycle for the remainder recomputation).
type Inputs struct {
	// Dividend is the 8-bit unsigned dividend line.
	Dividend uint8
	// Divisor is the 8-bit unsigned divisor line.
	Divisor uint8
	// Start requests a division. It is honored only while the FSM is in
	// StateIdle and ignored in every other state.
	Start bool
	// Reset is the asynchronous reset. When asserted it takes priority
	// over the normal tick: the state register and all four data
	// registers are forced to their zero/Idle values and the normal
	// update is skipped.
	Reset bool
}

// Registers holds the four 8-bit datapath registers. All arithmetic on
// them wraps modulo 256.
type Registers struct {
	// Divisor holds the divisor for the duration of a division.
	Divisor uint8
	// RunningDividend holds the partial remainder being repeatedly
	// decremented.
	RunningDividend uint8
	// Quotient accumulates the subtraction count and becomes the final
	// quotient.
	Quotient uint8
	// Remainder holds the final remainder once the loop settles.
	Remainder uint8
}

// snapshot is the complete registered state committed at a clock edge:
// the control state plus the four datapath registers. Next-state logic
// reads an immutable snapshot and produces a full replacement, so a tick
// can never observe partially updated registers.
type snapshot struct {
	state State
	regs  Registers
}

// Statistics holds lifetime counters for one divider instance.
type Statistics struct {
	// Cycles is the total number of clock ticks applied, resets included.
	Cycles uint64
	// ResetCycles is the number of ticks with reset asserted.
	ResetCycles uint64
	// IdleCycles is the number of ticks sampled in StateIdle.
	IdleCycles uint64
	// SubtractCycles is the number of productive subtraction ticks:
	// ticks in StateSubtracting where the running dividend still covered
	// the divisor. For a general-case division this equals the quotient.
	SubtractCycles uint64
	// DivisionsStarted is the number of start pulses honored in StateIdle.
	DivisionsStarted uint64
	// DivisionsCompleted is the number of transitions back to StateIdle
	// from a busy state.
	DivisionsCompleted uint64
}

// Divider is one divider instance. Each instance owns its state register
// and datapath registers exclusively; nothing is shared between
// instances. The zero value is a divider in reset state, but New should
// be used so options apply.
type Divider struct {
	cur    snapshot
	stats  Statistics
	tracer *CycleTracer
}

// DividerOption is a functional option for configuring the Divider.
type DividerOption func(*Divider)

// WithTracer attaches a per-cycle trace sink. The tracer records the
// committed state after every tick.
func WithTracer(t *CycleTracer) DividerOption {
	return func(d *Divider) {
		d.tracer = t
	}
}

// New creates a Divider in the Idle state with all registers zero.
func New(opts ...DividerOption) *Divider {
	d := &Divider{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ready reports whether the divider is in StateIdle. It reflects the
// current registered state, i.e. the result of the previous tick's
// commit, never the state the machine is moving to.
func (d *Divider) Ready() bool {
	return d.cur.state == StateIdle
}

// QuotientOut returns the registered quotient output. It is valid once
// Ready reasserts after a request.
func (d *Divider) QuotientOut() uint8 {
	return d.cur.regs.Quotient
}

// RemainderOut returns the registered remainder output, valid under the
// same condition as QuotientOut.
func (d *Divider) RemainderOut() uint8 {
	return d.cur.regs.Remainder
}

// CurrentState returns the current registered control state.
func (d *Divider) CurrentState() State {
	return d.cur.state
}

// Registers returns a copy of the current datapath registers.
func (d *Divider) Registers() Registers {
	return d.cur.regs
}

// Stats returns a copy of the lifetime statistics.
func (d *Divider) Stats() Statistics {
	return d.stats
}

// ResetStats clears the lifetime statistics. Asserting the reset line
// does not: reset models the hardware pin and hardware has no view of
// host-side counters.
func (d *Divider) ResetStats() {
	d.stats = Statistics{}
}

// Reset forces the divider to its initial values directly, without
// consuming a clock tick. Equivalent to holding the reset line through
// one edge, minus the cycle accounting.
func (d *Divider) Reset() {
	d.cur = snapshot{}
	if d.tracer != nil {
		d.tracer.record(d.stats.Cycles, d.cur.state, d.cur.regs)
	}
}

// Tick applies one rising clock edge with the given input lines.
//
// Reset takes priority: when asserted, the state register and all four
// data registers are forced to their zero/Idle values and the normal
// update is skipped. Otherwise the next-state logic computes a complete
// replacement snapshot from the current one and commits it atomically.
func (d *Divider) Tick(in Inputs) {
	d.stats.Cycles++

	if in.Reset {
		d.stats.ResetCycles++
		d.cur = snapshot{}
		if d.tracer != nil {
			d.tracer.record(d.stats.Cycles, d.cur.state, d.cur.regs)
		}
		return
	}

	next := nextSnapshot(d.cur, in)

	switch {
	case d.cur.state == StateIdle:
		d.stats.IdleCycles++
		if in.Start {
			d.stats.DivisionsStarted++
		}
	case d.cur.state == StateSubtracting &&
		!emu.RemainderBelowDivisor(d.cur.regs.RunningDividend, d.cur.regs.Divisor):
		d.stats.SubtractCycles++
	}
	if d.cur.state != StateIdle && next.state == StateIdle {
		d.stats.DivisionsCompleted++
	}

	d.cur = next
	if d.tracer != nil {
		d.tracer.record(d.stats.Cycles, d.cur.state, d.cur.regs)
	}
}

// nextSnapshot is the combinational next-state and routing logic: an
// exhaustive switch over the current state producing the full next
// snapshot. Register routing is keyed by the *current* state, so the
// update rule of a state applies on the tick that leaves it. The one-shot
// edge-case states re-sample the raw operand lines fresh; they never rely
// on values carried from a previous state.
func nextSnapshot(cur snapshot, in Inputs) snapshot {
	switch cur.state {
	case StateIdle:
		// Registers carry forward; only the state may move.
		return snapshot{state: idleSuccessor(in), regs: cur.regs}

	case StateZeroDividendZeroDivisor:
		return snapshot{state: StateIdle, regs: Registers{
			Divisor:         in.Divisor,
			RunningDividend: in.Dividend,
			Quotient:        emu.Sentinel,
			Remainder:       emu.Sentinel,
		}}

	case StateZeroDividend:
		return snapshot{state: StateIdle, regs: Registers{
			Divisor:         in.Divisor,
			RunningDividend: in.Dividend,
			Quotient:        0,
			Remainder:       0,
		}}

	case StateZeroDivisor:
		return snapshot{state: StateIdle, regs: Registers{
			Divisor:         in.Divisor,
			RunningDividend: in.Dividend,
			Quotient:        emu.Sentinel,
			Remainder:       emu.Sentinel,
		}}

	case StateDivisorGreaterThanDividend:
		return snapshot{state: StateIdle, regs: Registers{
			Divisor:         in.Divisor,
			RunningDividend: in.Dividend,
			Quotient:        0,
			Remainder:       in.Dividend,
		}}

	case StateOperandsEqual:
		return snapshot{state: StateIdle, regs: Registers{
			Divisor:         in.Divisor,
			RunningDividend: in.Dividend,
			Quotient:        1,
			Remainder:       0,
		}}

	case StateLoad:
		// Seed the quotient accumulator at all-ones so the first loop
		// increment rolls it to zero; it is overwritten before use.
		return snapshot{state: StateSubtracting, regs: Registers{
			Divisor:         in.Divisor,
			RunningDividend: in.Dividend,
			Quotient:        0xFF,
			Remainder:       0,
		}}

	case StateSubtracting:
		state := StateSubtracting
		if emu.RemainderBelowDivisor(cur.regs.RunningDividend, cur.regs.Divisor) {
			state = StateIdle
		}

		// The remainder candidate is recomputed every cycle from the raw
		// dividend line and the verification product (quotient+1)*divisor
		// rather than from the running dividend. It is a running checksum:
		// only the value latched on the exit tick is meaningful.
		incremented := emu.Increment8(cur.regs.Quotient)
		product := emu.Product16(incremented, cur.regs.Divisor)

		return snapshot{state: state, regs: Registers{
			Divisor:         cur.regs.Divisor,
			RunningDividend: emu.Subtract8(cur.regs.RunningDividend, cur.regs.Divisor),
			Quotient:        incremented,
			Remainder:       in.Dividend - uint8(product),
		}}

	default:
		// Unreachable with a well-formed State; fall back to reset values.
		return snapshot{}
	}
}

// idleSuccessor resolves the start-pulse dispatch. The priority order is
// load-bearing: both-zero is checked before zero-dividend, then
// zero-divisor, equal operands, divisor-greater, and finally the general
// Load path.
func idleSuccessor(in Inputs) State {
	if !in.Start {
		return StateIdle
	}

	switch {
	case emu.BothZero(in.Dividend, in.Divisor):
		return StateZeroDividendZeroDivisor
	case emu.DividendIsZero(in.Dividend):
		return StateZeroDividend
	case emu.DivisorIsZero(in.Divisor):
		return StateZeroDivisor
	case emu.OperandsEqual(in.Dividend, in.Divisor):
		return StateOperandsEqual
	case emu.DivisorGreaterThanDividend(in.Dividend, in.Divisor):
		return StateDivisorGreaterThanDividend
	default:
		return StateLoad
	}
}
