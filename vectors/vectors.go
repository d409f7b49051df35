// Package vectors loads division test-vector files: JSON lists of
// operand pairs with their expected request-to-ready outputs.
package vectors

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/divsim/emu"
)

// Vector is one operand pair with its expected settled outputs.
type Vector struct {
	// Dividend is the 8-bit unsigned dividend.
	Dividend uint8 `json:"dividend"`
	// Divisor is the 8-bit unsigned divisor.
	Divisor uint8 `json:"divisor"`
	// Quotient is the expected quotient output (0xFF for the
	// zero-divisor sentinel).
	Quotient uint8 `json:"quotient"`
	// Remainder is the expected remainder output (0xFF for the
	// zero-divisor sentinel).
	Remainder uint8 `json:"remainder"`
}

// File is a named collection of vectors.
type File struct {
	// Name labels the collection in reports.
	Name string `json:"name"`
	// Vectors are the entries, run in order.
	Vectors []Vector `json:"vectors"`
}

// Load reads and parses a vector file, then validates every expected
// output against the functional model.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vector file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse vector file: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every expected output against the functional model, so
// a bad vector file is reported as such instead of failing the divider.
func (f *File) Validate() error {
	for i, v := range f.Vectors {
		q, r := emu.Divide(v.Dividend, v.Divisor)
		if q != v.Quotient || r != v.Remainder {
			return fmt.Errorf(
				"vector %d (%d/%d): file expects %d r%d, functional model gives %d r%d",
				i, v.Dividend, v.Divisor, v.Quotient, v.Remainder, q, r)
		}
	}
	return nil
}

// Canonical returns the built-in acceptance vectors covering the general
// case and every edge-case state.
func Canonical() *File {
	return &File{
		Name: "canonical",
		Vectors: []Vector{
			{Dividend: 10, Divisor: 3, Quotient: 3, Remainder: 1},
			{Dividend: 200, Divisor: 7, Quotient: 28, Remainder: 4},
			{Dividend: 5, Divisor: 5, Quotient: 1, Remainder: 0},
			{Dividend: 0, Divisor: 0, Quotient: 255, Remainder: 255},
			{Dividend: 0, Divisor: 9, Quotient: 0, Remainder: 0},
			{Dividend: 9, Divisor: 0, Quotient: 255, Remainder: 255},
		},
	}
}
