// SPDX-License-Identifier: MPL-2.0

// Package workload implements the five compute kernels measured by benchsuite.
//
// Every kernel is a pure function of its single integer parameter: it allocates
// its own working data, holds no package-level state, and returns a scalar so
// that the caller can print a result without output overhead skewing timings.
// Kernels stay naive: no memoization, loop blocking or SIMD.
package workload
