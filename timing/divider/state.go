// Package divider implements the cycle-accurate divider model: an
// eight-state control FSM attached to a datapath of four 8-bit registers,
// computing quotient and remainder by repeated subtraction.
package divider

// State identifies the active control-FSM state. Exactly one state is
// active at a time; it is the sole piece of control state. The zero value
// is StateIdle, matching the reset state of the hardware.
type State int

const (
	// StateIdle is the rest state. Ready is asserted, the registers hold
	// their values, and a start pulse is sampled here and nowhere else.
	StateIdle State = iota

	// StateZeroDividendZeroDivisor settles the 0/0 request with the
	// sentinel pair in a single cycle.
	StateZeroDividendZeroDivisor

	// StateZeroDividend settles a zero dividend over a nonzero divisor
	// with a 0 r0 result in a single cycle.
	StateZeroDividend

	// StateZeroDivisor settles a nonzero dividend over a zero divisor
	// with the sentinel pair in a single cycle.
	StateZeroDivisor

	// StateDivisorGreaterThanDividend settles the trivial case with a
	// zero quotient and the dividend as remainder in a single cycle.
	StateDivisorGreaterThanDividend

	// StateOperandsEqual settles equal operands with a 1 r0 result in a
	// single cycle.
	StateOperandsEqual

	// StateLoad latches the operands into the datapath registers and
	// seeds the quotient accumulator before the subtraction loop.
	StateLoad

	// StateSubtracting is the looping state: one subtraction step per
	// cycle until the running dividend drops below the divisor.
	StateSubtracting
)

// String returns the state name for traces and test failure messages.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateZeroDividendZeroDivisor:
		return "ZeroDividendZeroDivisor"
	case StateZeroDividend:
		return "ZeroDividend"
	case StateZeroDivisor:
		return "ZeroDivisor"
	case StateDivisorGreaterThanDividend:
		return "DivisorGreaterThanDividend"
	case StateOperandsEqual:
		return "OperandsEqual"
	case StateLoad:
		return "Load"
	case StateSubtracting:
		return "Subtracting"
	default:
		return "Unknown"
	}
}
