// Package core provides the high-level interface to the cycle-accurate
// divider. It holds the operand lines steady for the duration of a
// division and manages the start pulse, so callers deal in whole
// request-to-ready transactions rather than individual input samples.
package core

import (
	"github.com/sarchlab/divsim/timing/divider"
)

// maxCyclesPerDivision bounds RunToReady. A division of 8-bit operands
// occupies the looping state for at most 256 ticks, plus one Load tick;
// anything beyond 512 means the model is broken.
const maxCyclesPerDivision = 512

// Result describes one settled division.
type Result struct {
	// Quotient is the settled quotient output.
	Quotient uint8
	// Remainder is the settled remainder output.
	Remainder uint8
	// Cycles is the number of ticks from the tick that sampled the start
	// pulse through the tick that returned the FSM to Idle.
	Cycles uint64
	// LoopTicks is the number of productive subtraction ticks spent in
	// the looping state; for a general-case division it equals Quotient.
	LoopTicks uint64
}

// Core wraps a Divider with held operand lines.
type Core struct {
	div *divider.Divider

	dividend uint8
	divisor  uint8

	// startPending keeps the start line high until the tick that samples
	// it in Idle, modeling a start pulse of exactly the required width.
	startPending bool
}

// NewCore creates a Core around a fresh Divider. Options are forwarded
// to the underlying divider.
func NewCore(opts ...divider.DividerOption) *Core {
	return &Core{div: divider.New(opts...)}
}

// Divider exposes the wrapped divider for register- and state-level
// inspection.
func (c *Core) Divider() *divider.Divider {
	return c.div
}

// Start latches the operand lines and raises the start pulse. The pulse
// stays high until a tick samples it while the divider is ready; a Start
// issued while busy therefore takes effect for the *next* division, it
// never interrupts the one in flight.
func (c *Core) Start(dividend, divisor uint8) {
	c.dividend = dividend
	c.divisor = divisor
	c.startPending = true
}

// Tick applies one clock edge with the held input lines.
func (c *Core) Tick() {
	wasReady := c.div.Ready()
	c.div.Tick(divider.Inputs{
		Dividend: c.dividend,
		Divisor:  c.divisor,
		Start:    c.startPending,
	})
	if c.startPending && wasReady {
		c.startPending = false
	}
}

// Ready reports whether the divider is in its Idle state.
func (c *Core) Ready() bool {
	return c.div.Ready()
}

// Result returns the registered quotient and remainder outputs.
func (c *Core) Result() (quotient, remainder uint8) {
	return c.div.QuotientOut(), c.div.RemainderOut()
}

// Stats returns the lifetime statistics of the wrapped divider.
func (c *Core) Stats() divider.Statistics {
	return c.div.Stats()
}

// Reset asserts the asynchronous reset line for one tick, forcing the
// divider to Idle with all registers zero and dropping any pending start
// pulse.
func (c *Core) Reset() {
	c.startPending = false
	c.div.Tick(divider.Inputs{Reset: true})
}

// Divide runs one full division transaction: pulse start, tick until
// ready reasserts, and report the settled outputs with cycle counts.
func (c *Core) Divide(dividend, divisor uint8) Result {
	before := c.div.Stats()

	c.Start(dividend, divisor)

	var cycles uint64
	c.Tick() // samples the start pulse in Idle
	cycles++
	for !c.div.Ready() && cycles < maxCyclesPerDivision {
		c.Tick()
		cycles++
	}

	after := c.div.Stats()
	quotient, remainder := c.Result()
	return Result{
		Quotient:  quotient,
		Remainder: remainder,
		Cycles:    cycles,
		LoopTicks: after.SubtractCycles - before.SubtractCycles,
	}
}
