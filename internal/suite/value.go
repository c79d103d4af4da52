// SPDX-License-Identifier: MPL-2.0

package suite

import "strconv"

type (
	// Value is the scalar a workload returns. Floats print without a
	// trailing ".0" so integral results read like integers.
	Value interface {
		String() string
		isValue()
	}

	// Int is an integral result (counts, Fibonacci numbers).
	Int int64

	// Float is a floating-point result (the matrix center element).
	Float float64
)

func (Int) isValue()   {}
func (Float) isValue() {}

// String formats the integer in base 10.
func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

// String uses the shortest representation that round-trips, so integral
// values print without a fractional part.
func (v Float) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
