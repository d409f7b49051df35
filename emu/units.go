// Package emu provides the functional model of the repeated-subtraction
// divider: the combinational functional units, the status detectors, and a
// one-shot reference division used to validate the cycle-accurate model.
package emu

// Increment8 performs the 8-bit increment: v + 1, wrapping modulo 256.
// The datapath uses it to advance the quotient accumulator once per
// subtraction step.
func Increment8(v uint8) uint8 {
	return v + 1
}

// Subtract8 performs the 8-bit subtraction a - b, wrapping modulo 256 on
// unsigned underflow. The result is only meaningful when b <= a; the
// datapath guards consumption with the loop-termination detector.
func Subtract8(a, b uint8) uint8 {
	return a - b
}

// Product16 returns the full 16-bit product a * b. The datapath uses it as
// the remainder-verification product: (quotient + 1) * divisor.
func Product16(a, b uint8) uint16 {
	return uint16(a) * uint16(b)
}
