// SPDX-License-Identifier: MPL-2.0

package workload

// MatrixMultiply builds A[i][j]=i+j and B[i][j]=i-j, computes C=A×B with the
// textbook triple loop and returns the center element C[n/2][n/2].
//
// Matrices are stored row-major in flat slices; k is summed in ascending order
// so the result is identical to the nested-slice formulation.
func MatrixMultiply(n int) float64 {
	if n <= 0 {
		return 0
	}

	a := make([]float64, n*n)
	b := make([]float64, n*n)
	c := make([]float64, n*n)

	for i := range n {
		for j := range n {
			a[i*n+j] = float64(i + j)
			b[i*n+j] = float64(i) - float64(j)
		}
	}

	for i := range n {
		row := a[i*n : (i+1)*n]
		for j := range n {
			sum := 0.0
			for k := range n {
				sum += row[k] * b[k*n+j]
			}
			c[i*n+j] = sum
		}
	}

	mid := n / 2
	return c[mid*n+mid]
}
