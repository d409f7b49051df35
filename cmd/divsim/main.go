// Package main provides the divsim command-line interface.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/spf13/cobra"

	"github.com/sarchlab/divsim/emu"
	"github.com/sarchlab/divsim/timing/comp"
	"github.com/sarchlab/divsim/timing/core"
	"github.com/sarchlab/divsim/timing/divider"
	"github.com/sarchlab/divsim/vectors"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "divsim",
		Short: "Cycle-accurate repeated-subtraction divider simulator",
	}

	rootCmd.AddCommand(divCmd(), sweepCmd(), vectorsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// divCmd runs a single division.
func divCmd() *cobra.Command {
	var timing bool
	var trace bool
	var akita bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "div <dividend> <divisor>",
		Short: "Divide two 8-bit unsigned operands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dividend, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			divisor, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			switch {
			case akita:
				return runAkita(dividend, divisor, verbose)
			case timing || trace:
				return runTiming(dividend, divisor, trace, verbose)
			default:
				quotient, remainder := emu.Divide(dividend, divisor)
				report(dividend, divisor, quotient, remainder)
				return nil
			}
		},
	}
	cmd.Flags().BoolVar(&timing, "timing", false, "Run the cycle-accurate model and report cycle counts")
	cmd.Flags().BoolVar(&trace, "trace", false, "Stream one line per clock cycle (implies --timing)")
	cmd.Flags().BoolVar(&akita, "akita", false, "Route the request through the Akita engine component")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	return cmd
}

func runTiming(dividend, divisor uint8, trace, verbose bool) error {
	var opts []divider.DividerOption
	if trace {
		opts = append(opts, divider.WithTracer(divider.NewCycleTracer(os.Stdout)))
	}

	c := core.NewCore(opts...)
	result := c.Divide(dividend, divisor)

	report(dividend, divisor, result.Quotient, result.Remainder)
	fmt.Printf("Cycles: %d\n", result.Cycles)
	if verbose {
		stats := c.Stats()
		fmt.Printf("Subtraction ticks: %d\n", result.LoopTicks)
		fmt.Printf("Divisions started: %d\n", stats.DivisionsStarted)
		fmt.Printf("Divisions completed: %d\n", stats.DivisionsCompleted)
	}
	return nil
}

func runAkita(dividend, divisor uint8, verbose bool) error {
	engine := sim.NewSerialEngine()
	divComp := comp.NewComp("Divider", engine, 1*sim.GHz)

	divComp.Enqueue(comp.Request{Dividend: dividend, Divisor: divisor})

	if err := engine.Run(); err != nil {
		return fmt.Errorf("engine run failed: %w", err)
	}

	responses := divComp.Responses()
	if len(responses) != 1 {
		return fmt.Errorf("expected 1 response, got %d", len(responses))
	}

	resp := responses[0]
	report(dividend, divisor, resp.Quotient, resp.Remainder)
	if verbose {
		fmt.Printf("Cycles: %d\n", resp.Cycles)
	}
	return nil
}

// sweepCmd cross-checks the cycle-accurate model against the functional
// model over the full 256x256 operand space.
func sweepCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Exhaustively cross-check the timing model against the functional model",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := core.NewCore()

			var mismatches, totalCycles uint64
			for dividend := 0; dividend < 256; dividend++ {
				for divisor := 0; divisor < 256; divisor++ {
					result := c.Divide(uint8(dividend), uint8(divisor))
					totalCycles += result.Cycles

					q, r := emu.Divide(uint8(dividend), uint8(divisor))
					if result.Quotient != q || result.Remainder != r {
						mismatches++
						if verbose {
							fmt.Printf("MISMATCH %d/%d: timing %d r%d, functional %d r%d\n",
								dividend, divisor,
								result.Quotient, result.Remainder, q, r)
						}
					}
				}
			}

			fmt.Printf("Operand pairs: %d\n", 256*256)
			fmt.Printf("Total cycles: %d\n", totalCycles)
			fmt.Printf("Mismatches: %d\n", mismatches)
			if mismatches != 0 {
				return fmt.Errorf("%d operand pairs diverged", mismatches)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each mismatching operand pair")
	return cmd
}

// vectorsCmd runs a vector file (or the built-in canonical vectors)
// through the cycle-accurate model.
func vectorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectors [file.json]",
		Short: "Run a JSON vector file through the cycle-accurate model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file *vectors.File
			if len(args) == 1 {
				var err error
				file, err = vectors.Load(args[0])
				if err != nil {
					return err
				}
			} else {
				file = vectors.Canonical()
			}

			c := core.NewCore()
			failures := 0
			for i, v := range file.Vectors {
				result := c.Divide(v.Dividend, v.Divisor)
				ok := result.Quotient == v.Quotient && result.Remainder == v.Remainder
				status := "PASS"
				if !ok {
					status = "FAIL"
					failures++
				}
				fmt.Printf("[%s] %d: %d/%d -> %d r%d (%d cycles)\n",
					status, i, v.Dividend, v.Divisor,
					result.Quotient, result.Remainder, result.Cycles)
			}

			fmt.Printf("\n%s: %d vectors, %d failures\n",
				file.Name, len(file.Vectors), failures)
			if failures != 0 {
				return fmt.Errorf("%d vectors failed", failures)
			}
			return nil
		},
	}
	return cmd
}

// parseOperand parses an 8-bit unsigned operand; 0x and 0b prefixes are
// accepted.
func parseOperand(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	return uint8(v), nil
}

func report(dividend, divisor, quotient, remainder uint8) {
	fmt.Printf("%d / %d = %d remainder %d\n", dividend, divisor, quotient, remainder)
	if divisor == 0 {
		fmt.Println("Note: zero divisor; 255 r255 is the sentinel pair, not a result.")
	}
}
