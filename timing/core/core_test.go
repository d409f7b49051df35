package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/divsim/timing/core"
	"github.com/sarchlab/divsim/timing/divider"
)

var _ = Describe("Core", func() {
	var c *core.Core

	BeforeEach(func() {
		c = core.NewCore()
	})

	It("should create a core around a divider", func() {
		Expect(c).NotTo(BeNil())
		Expect(c.Divider()).NotTo(BeNil())
		Expect(c.Ready()).To(BeTrue())
	})

	It("should run one general division to completion", func() {
		result := c.Divide(10, 3)
		Expect(result.Quotient).To(Equal(uint8(3)))
		Expect(result.Remainder).To(Equal(uint8(1)))
		Expect(result.LoopTicks).To(Equal(uint64(3)))
		// start + Load + quotient+1 looping-state ticks
		Expect(result.Cycles).To(Equal(uint64(6)))
		Expect(c.Ready()).To(BeTrue())
	})

	It("should settle edge cases in two cycles", func() {
		for _, operands := range [][2]uint8{
			{0, 0}, {0, 9}, {9, 0}, {5, 5}, {5, 9},
		} {
			result := c.Divide(operands[0], operands[1])
			Expect(result.Cycles).To(Equal(uint64(2)))
			Expect(result.LoopTicks).To(BeZero())
		}
	})

	It("should report loop ticks equal to the quotient for general cases", func() {
		Expect(c.Divide(200, 7).LoopTicks).To(Equal(uint64(28)))
		Expect(c.Divide(255, 1).LoopTicks).To(Equal(uint64(255)))
		Expect(c.Divide(254, 2).LoopTicks).To(Equal(uint64(127)))
	})

	It("should support back-to-back divisions on one core", func() {
		first := c.Divide(10, 3)
		second := c.Divide(200, 7)
		third := c.Divide(9, 0)

		Expect(first.Quotient).To(Equal(uint8(3)))
		Expect(second.Quotient).To(Equal(uint8(28)))
		Expect(third.Quotient).To(Equal(uint8(255)))
		Expect(third.Remainder).To(Equal(uint8(255)))

		stats := c.Stats()
		Expect(stats.DivisionsStarted).To(Equal(uint64(3)))
		Expect(stats.DivisionsCompleted).To(Equal(uint64(3)))
	})

	It("should hold the operand lines through manual ticking", func() {
		c.Start(200, 7)
		c.Tick()
		Expect(c.Ready()).To(BeFalse())

		for !c.Ready() {
			c.Tick()
		}
		quotient, remainder := c.Result()
		Expect(quotient).To(Equal(uint8(28)))
		Expect(remainder).To(Equal(uint8(4)))
	})

	It("should drop a pending start on reset", func() {
		c.Start(10, 3)
		c.Reset()
		Expect(c.Ready()).To(BeTrue())

		// No division may begin from the dropped pulse.
		for i := 0; i < 5; i++ {
			c.Tick()
		}
		Expect(c.Stats().DivisionsStarted).To(BeZero())
		quotient, remainder := c.Result()
		Expect(quotient).To(BeZero())
		Expect(remainder).To(BeZero())
	})

	It("should reset mid-flight and stay consistent afterwards", func() {
		c.Start(200, 7)
		c.Tick()
		c.Tick()
		Expect(c.Ready()).To(BeFalse())

		c.Reset()
		Expect(c.Ready()).To(BeTrue())
		Expect(c.Divider().Registers()).To(Equal(divider.Registers{}))

		result := c.Divide(10, 3)
		Expect(result.Quotient).To(Equal(uint8(3)))
		Expect(result.Remainder).To(Equal(uint8(1)))
	})
})
