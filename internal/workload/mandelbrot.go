// SPDX-License-Identifier: MPL-2.0

package workload

// Mandelbrot viewport and iteration cap.
const (
	MandelbrotXMin    = -2.0
	MandelbrotXMax    = 1.0
	MandelbrotYMin    = -1.5
	MandelbrotYMax    = 1.5
	MandelbrotMaxIter = 1000
)

// Mandelbrot samples an n×n grid over the fixed viewport and returns the sum
// of the escape-time iteration counts of all sample points.
func Mandelbrot(n int) int {
	count := 0
	fn := float64(n)

	for py := range n {
		y0 := MandelbrotYMin + (MandelbrotYMax-MandelbrotYMin)*float64(py)/fn
		for px := range n {
			x0 := MandelbrotXMin + (MandelbrotXMax-MandelbrotXMin)*float64(px)/fn
			count += escapeTime(x0, y0)
		}
	}

	return count
}

// escapeTime iterates z <- z*z + c from z=0 until |z|^2 exceeds 4 or the cap
// is reached, and returns the number of updates performed.
func escapeTime(x0, y0 float64) int {
	x, y := 0.0, 0.0
	iter := 0
	for x*x+y*y <= 4.0 && iter < MandelbrotMaxIter {
		xtemp := x*x - y*y + x0
		y = 2.0*x*y + y0
		x = xtemp
		iter++
	}
	return iter
}
