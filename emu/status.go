package emu

// Status detectors. All are pure predicates recomputed every cycle; none
// carry state. The first five read the raw operand inputs, while
// RemainderBelowDivisor reads the datapath registers and serves as the
// subtraction-loop termination test.

// DividendIsZero reports whether the raw dividend input is zero.
func DividendIsZero(dividend uint8) bool {
	return dividend == 0
}

// DivisorIsZero reports whether the raw divisor input is zero.
func DivisorIsZero(divisor uint8) bool {
	return divisor == 0
}

// DivisorGreaterThanDividend reports whether the raw divisor input exceeds
// the raw dividend input (unsigned compare).
func DivisorGreaterThanDividend(dividend, divisor uint8) bool {
	return divisor > dividend
}

// OperandsEqual reports whether the raw operand inputs are equal.
func OperandsEqual(dividend, divisor uint8) bool {
	return dividend == divisor
}

// BothZero reports whether both raw operand inputs are zero.
func BothZero(dividend, divisor uint8) bool {
	return DividendIsZero(dividend) && DivisorIsZero(divisor)
}

// RemainderBelowDivisor reports whether the running dividend register has
// dropped below the divisor register (unsigned compare). True means the
// subtraction loop is done.
func RemainderBelowDivisor(runningDividend, divisorReg uint8) bool {
	return runningDividend < divisorReg
}
