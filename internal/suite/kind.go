// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/benchsuite/internal/workload"
)

const (
	// KindFibonacci is naive recursive Fibonacci.
	KindFibonacci Kind = "fibonacci"
	// KindSieve is the Sieve of Eratosthenes prime count.
	KindSieve Kind = "sieve"
	// KindMandelbrot is the Mandelbrot escape-time sum.
	KindMandelbrot Kind = "mandelbrot"
	// KindMatrix is dense matrix multiplication.
	KindMatrix Kind = "matrix"
	// KindBinaryTrees is perfect binary tree allocation and traversal.
	KindBinaryTrees Kind = "binary-trees"
)

// ErrUnknownKind is the sentinel error wrapped by UnknownKindError.
var ErrUnknownKind = errors.New("unknown benchmark")

type (
	// Kind identifies one of the five workloads.
	Kind string

	// UnknownKindError is returned when a Kind value is not recognized.
	// It wraps ErrUnknownKind for errors.Is() compatibility.
	UnknownKindError struct {
		Value Kind
	}
)

// Kinds returns every workload in canonical run order.
func Kinds() []Kind {
	return []Kind{KindFibonacci, KindSieve, KindMandelbrot, KindMatrix, KindBinaryTrees}
}

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// IsValid returns whether the Kind is one of the defined workloads.
func (k Kind) IsValid() (bool, []error) {
	if k.Ordinal() == 0 {
		return false, []error{&UnknownKindError{Value: k}}
	}
	return true, nil
}

// Ordinal returns the 1-based canonical position of the workload, or 0 for
// unknown kinds.
func (k Kind) Ordinal() int {
	for i, known := range Kinds() {
		if k == known {
			return i + 1
		}
	}
	return 0
}

// Title returns the human name used in report labels.
func (k Kind) Title() string {
	switch k {
	case KindFibonacci:
		return "Fibonacci"
	case KindSieve:
		return "Prime Sieve"
	case KindMandelbrot:
		return "Mandelbrot"
	case KindMatrix:
		return "Matrix Multiply"
	case KindBinaryTrees:
		return "Binary Trees"
	default:
		return string(k)
	}
}

// ParseKind normalizes s (case, surrounding space, '_' for '-') and
// validates it.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if valid, errs := k.IsValid(); !valid {
		return "", errs[0]
	}
	return k, nil
}

// ParseKinds parses each entry with ParseKind. Entries may themselves be
// comma-separated lists; empty entries are skipped.
func ParseKinds(values []string) ([]Kind, error) {
	var kinds []Kind
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			k, err := ParseKind(part)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// run executes the workload for parameter n. This is the timed region.
func (k Kind) run(n int) Value {
	switch k {
	case KindFibonacci:
		return Int(workload.Fibonacci(n))
	case KindSieve:
		return Int(workload.PrimeSieve(n))
	case KindMandelbrot:
		return Int(workload.Mandelbrot(n))
	case KindMatrix:
		return Float(workload.MatrixMultiply(n))
	case KindBinaryTrees:
		return Int(workload.BinaryTrees(n))
	default:
		panic(fmt.Sprintf("suite: run called with unknown kind %q", string(k)))
	}
}

// Error implements the error interface for UnknownKindError.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown benchmark %q (valid: fibonacci, sieve, mandelbrot, matrix, binary-trees)", string(e.Value))
}

// Unwrap returns ErrUnknownKind for errors.Is() compatibility.
func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }
