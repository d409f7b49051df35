package emu

// Sentinel is the saturated output pair reported for a zero divisor. The
// divider has no error channel; a divisor of zero yields 0xFF in both the
// quotient and remainder registers. A legitimate 255 r255 result is
// distinguishable only by re-checking the divisor externally.
const Sentinel uint8 = 0xFF

// Divide returns the quotient and remainder the divider settles on for the
// given operands, without modeling clock cycles.
//
// The edge-case conventions match the hardware exactly:
//   - divisor == 0 (dividend anything): Sentinel, Sentinel
//   - dividend == 0, divisor != 0:      0, 0
//   - otherwise: dividend / divisor and dividend % divisor, satisfying
//     dividend == quotient*divisor + remainder with remainder < divisor.
func Divide(dividend, divisor uint8) (quotient, remainder uint8) {
	switch {
	case DivisorIsZero(divisor):
		return Sentinel, Sentinel
	case DividendIsZero(dividend):
		return 0, 0
	default:
		return dividend / divisor, dividend % divisor
	}
}

// Expected describes the full request-to-ready contract for one operand
// pair: the settled outputs plus the number of productive subtraction
// ticks the cycle-accurate model spends in the looping state.
type Expected struct {
	// Quotient is the settled quotient output.
	Quotient uint8
	// Remainder is the settled remainder output.
	Remainder uint8
	// LoopTicks is the number of subtraction-loop ticks for the general
	// case (equal to Quotient); zero for the one-shot edge-case states.
	LoopTicks uint64
}

// Contract returns the expected request-to-ready behavior for the given
// operands.
func Contract(dividend, divisor uint8) Expected {
	q, r := Divide(dividend, divisor)
	e := Expected{Quotient: q, Remainder: r}

	// Only the Load->Subtracting path loops; every edge case settles in a
	// single cycle.
	general := divisor != 0 && dividend != 0 &&
		dividend != divisor && divisor < dividend
	if general {
		e.LoopTicks = uint64(q)
	}
	return e
}
