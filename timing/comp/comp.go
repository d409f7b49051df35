// Package comp exposes the divider as an Akita ticking component, so it
// can be dropped into event-driven simulations alongside other Akita
// components. One engine tick drives one divider clock edge.
package comp

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/divsim/timing/core"
)

// Request is one queued division.
type Request struct {
	// Dividend is the 8-bit unsigned dividend.
	Dividend uint8
	// Divisor is the 8-bit unsigned divisor.
	Divisor uint8
}

// Response is the settled outcome of one Request, in submission order.
type Response struct {
	// Request is the request this response answers.
	Request Request
	// Quotient is the settled quotient output.
	Quotient uint8
	// Remainder is the settled remainder output.
	Remainder uint8
	// Cycles is the number of divider clock edges the request consumed,
	// start tick included.
	Cycles uint64
}

// Comp drives one divider core from the Akita engine, serving queued
// requests strictly one at a time: the hardware accepts one request per
// idle period, so there is nothing to pipeline.
type Comp struct {
	*sim.TickingComponent

	core      *core.Core
	pending   []Request
	inFlight  *Request
	cycles    uint64
	responses []Response
}

// NewComp creates a divider component bound to the given engine and
// clock frequency.
func NewComp(name string, engine sim.Engine, freq sim.Freq) *Comp {
	c := &Comp{core: core.NewCore()}
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)
	return c
}

// Enqueue queues a division request and wakes the component.
func (c *Comp) Enqueue(r Request) {
	c.pending = append(c.pending, r)
	c.TickLater()
}

// Responses returns the settled responses in submission order.
func (c *Comp) Responses() []Response {
	return c.responses
}

// Tick advances the divider by one clock edge. It returns false once the
// queue is drained and no division is in flight, letting the engine
// quiesce.
func (c *Comp) Tick() bool {
	if c.inFlight == nil {
		if len(c.pending) == 0 {
			return false
		}
		req := c.pending[0]
		c.pending = c.pending[1:]
		c.inFlight = &req
		c.cycles = 0
		c.core.Start(req.Dividend, req.Divisor)
		return true
	}

	c.core.Tick()
	c.cycles++

	if c.core.Ready() {
		quotient, remainder := c.core.Result()
		c.responses = append(c.responses, Response{
			Request:   *c.inFlight,
			Quotient:  quotient,
			Remainder: remainder,
			Cycles:    c.cycles,
		})
		c.inFlight = nil
	}
	return true
}
