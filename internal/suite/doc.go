// SPDX-License-Identifier: MPL-2.0

// Package suite is the benchmark driver: it plans which workloads to run with
// which parameters, times each one with a stopwatch, and streams the results to
// a Sink.
//
// Execution is strictly sequential. A benchmark starts only after the previous
// measurement has been recorded and reported, no state is shared between
// benchmarks, and a workload is never interrupted once started: context
// cancellation is only observed between benchmarks.
//
// The text sink produces the console format:
//
//	Starting benchmarks...
//
//	1. Fibonacci(42): 812ms (result: 267914296)
//	...
//
//	Done!
package suite
