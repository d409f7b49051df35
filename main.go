// Package main provides the entry point for divsim.
// Divsim is a cycle-accurate model of an 8-bit repeated-subtraction
// divider: a control FSM with an attached register datapath.
//
// For the full CLI, use: go run ./cmd/divsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("divsim - repeated-subtraction divider simulator")
	fmt.Println("")
	fmt.Println("Usage: divsim <command>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  div <dividend> <divisor>   Divide two 8-bit operands")
	fmt.Println("  sweep                      Exhaustive timing-vs-functional cross-check")
	fmt.Println("  vectors [file.json]        Run a vector file")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/divsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/divsim' instead.")
	}
}
