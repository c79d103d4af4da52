// SPDX-License-Identifier: MPL-2.0

package workload

// Fibonacci returns the nth Fibonacci number (fib(0)=0, fib(1)=1) using
// plain double recursion. The exponential call tree is the workload.
func Fibonacci(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
