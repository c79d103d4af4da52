// SPDX-License-Identifier: MPL-2.0

package suite

import "fmt"

// Benchmark is one planned workload invocation.
type Benchmark struct {
	Kind  Kind `json:"kind" toml:"kind"`
	Param int  `json:"param" toml:"param"`
}

// Label returns the report name, numbered by canonical position, e.g.
// "1. Fibonacci(42)" or "2. Prime Sieve (10M)".
func (b Benchmark) Label() string {
	var detail string
	switch b.Kind {
	case KindFibonacci:
		return fmt.Sprintf("%d. %s(%d)", b.Kind.Ordinal(), b.Kind.Title(), b.Param)
	case KindSieve:
		detail = shortCount(b.Param)
	case KindMandelbrot, KindMatrix:
		detail = fmt.Sprintf("%dx%d", b.Param, b.Param)
	case KindBinaryTrees:
		detail = fmt.Sprintf("depth %d", b.Param)
	default:
		detail = fmt.Sprint(b.Param)
	}
	return fmt.Sprintf("%d. %s (%s)", b.Kind.Ordinal(), b.Kind.Title(), detail)
}

// Plan returns the benchmarks to run in canonical order. With no kinds every
// workload is planned; otherwise only the named ones, each at most once.
func Plan(params Params, only ...Kind) ([]Benchmark, error) {
	if valid, errs := params.IsValid(); !valid {
		return nil, errs[0]
	}

	selected := make(map[Kind]bool, len(only))
	for _, k := range only {
		if valid, errs := k.IsValid(); !valid {
			return nil, errs[0]
		}
		selected[k] = true
	}

	var plan []Benchmark
	for _, k := range Kinds() {
		if len(selected) > 0 && !selected[k] {
			continue
		}
		plan = append(plan, Benchmark{Kind: k, Param: params.For(k)})
	}
	return plan, nil
}
