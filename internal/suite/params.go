// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"errors"
	"fmt"
)

const (
	// MaxFibonacci is the largest n whose Fibonacci number fits in an int64.
	MaxFibonacci = 92
	// MaxTreeDepth bounds the binary tree depth so node counts fit in 32 bits.
	MaxTreeDepth = 30
)

var (
	// ErrInvalidParam is the sentinel error wrapped by InvalidParamError.
	ErrInvalidParam = errors.New("invalid benchmark parameter")
	// ErrInvalidParams is the sentinel error wrapped by InvalidParamsError.
	ErrInvalidParams = errors.New("invalid benchmark parameters")
)

type (
	// Params holds the single input parameter of each workload.
	Params struct {
		Fibonacci   int `json:"fibonacci" mapstructure:"fibonacci"`
		Sieve       int `json:"sieve" mapstructure:"sieve"`
		Mandelbrot  int `json:"mandelbrot" mapstructure:"mandelbrot"`
		Matrix      int `json:"matrix" mapstructure:"matrix"`
		BinaryTrees int `json:"binary_trees" mapstructure:"binary_trees"`
	}

	// InvalidParamError is returned when a single parameter is out of range.
	// It wraps ErrInvalidParam for errors.Is() compatibility.
	InvalidParamError struct {
		Kind  Kind
		Value int
		Max   int // 0 when only the lower bound applies
	}

	// InvalidParamsError collects field-level errors from Params.IsValid.
	// It wraps ErrInvalidParams for errors.Is() compatibility.
	InvalidParamsError struct {
		FieldErrors []error
	}
)

// DefaultParams returns the reference parameters of a plain run.
func DefaultParams() Params {
	return Params{
		Fibonacci:   42,
		Sieve:       10_000_000,
		Mandelbrot:  2000,
		Matrix:      500,
		BinaryTrees: 18,
	}
}

// For returns the parameter of the given workload.
func (p Params) For(k Kind) int {
	switch k {
	case KindFibonacci:
		return p.Fibonacci
	case KindSieve:
		return p.Sieve
	case KindMandelbrot:
		return p.Mandelbrot
	case KindMatrix:
		return p.Matrix
	case KindBinaryTrees:
		return p.BinaryTrees
	default:
		return 0
	}
}

// IsValid reports whether every parameter is non-negative and within the
// caps of the recursive workloads.
func (p Params) IsValid() (bool, []error) {
	var errs []error
	for _, k := range Kinds() {
		if err := checkParam(k, p.For(k)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidParamsError{FieldErrors: errs}}
	}
	return true, nil
}

func checkParam(k Kind, v int) error {
	limit := 0
	switch k {
	case KindFibonacci:
		limit = MaxFibonacci
	case KindBinaryTrees:
		limit = MaxTreeDepth
	}
	if v < 0 || (limit > 0 && v > limit) {
		return &InvalidParamError{Kind: k, Value: v, Max: limit}
	}
	return nil
}

// Error implements the error interface for InvalidParamError.
func (e *InvalidParamError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%s parameter %d out of range [0, %d]", e.Kind, e.Value, e.Max)
	}
	return fmt.Sprintf("%s parameter %d must be non-negative", e.Kind, e.Value)
}

// Unwrap returns ErrInvalidParam for errors.Is() compatibility.
func (e *InvalidParamError) Unwrap() error { return ErrInvalidParam }

// Error implements the error interface for InvalidParamsError.
func (e *InvalidParamsError) Error() string {
	if len(e.FieldErrors) == 1 {
		return e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid benchmark parameters: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidParams followed by the field errors, so errors.Is
// matches both the aggregate and the per-kind sentinel.
func (e *InvalidParamsError) Unwrap() []error {
	return append([]error{ErrInvalidParams}, e.FieldErrors...)
}
