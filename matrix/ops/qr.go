// Package ops provides advanced matrix operations for the blendsolve/matrix package.
// QR computes the QR decomposition of a square matrix using Householder reflections,
// accumulating the reflection product G = Hₙ₋₁…H₀ into the returned Q, so R = G×m
// and m = Qᵀ×R (Q is the transpose of the conventional QR factor). Solve accounts
// for that orientation when it resolves a small dense linear system, which is how
// trispace turns a floater group's corner simplex into barycentric coordinates.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/blendsolve/matrix"
)

const normZero = 0.0

// QR returns Q and R such that R = Q×m and m = Qᵀ×R (Q holds the accumulated
// Householder reflections, not their transpose).
// It returns ErrNonSquare if m is not square.
// Complexity: O(n³) time, O(n²) memory where n = m.Rows().
func QR(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	rows := m.Rows()
	cols := m.Cols()
	if rows != cols {
		return nil, nil, fmt.Errorf("QR: non-square %dx%d: %w", rows, cols, matrix.ErrNonSquare)
	}
	n := rows

	A := m.Clone()
	Q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = Q.Set(i, i, 1.0) // start from identity
	}
	v := make([]float64, n) // Householder vector, reused per column

	for k := 0; k < n; k++ {
		// norm of A[k:n][k]
		norm := normZero
		for i := k; i < n; i++ {
			val, _ := A.At(i, k)
			norm += val * val
		}
		norm = math.Sqrt(norm)
		if norm == normZero {
			continue // column already zeroed below the pivot
		}
		pivot, _ := A.At(k, k)
		alpha := -math.Copysign(norm, pivot)

		for i := 0; i < n; i++ {
			v[i] = normZero
		}
		for i := k; i < n; i++ {
			val, _ := A.At(i, k)
			v[i] = val
		}
		v[k] -= alpha

		beta := normZero
		for i := k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == normZero {
			continue // degenerate column, nothing to reflect
		}
		tau := 2.0 / beta

		// apply reflection to A (building R)
		for j := k; j < n; j++ {
			sum := normZero
			for i := k; i < n; i++ {
				val, _ := A.At(i, j)
				sum += v[i] * val
			}
			for i := k; i < n; i++ {
				val, _ := A.At(i, j)
				_ = A.Set(i, j, val-tau*v[i]*sum)
			}
		}
		// apply the same reflection to Q (accumulating it transposed)
		for j := 0; j < n; j++ {
			sum := normZero
			for i := k; i < n; i++ {
				val, _ := Q.At(i, j)
				sum += v[i] * val
			}
			for i := k; i < n; i++ {
				val, _ := Q.At(i, j)
				_ = Q.Set(i, j, val-tau*v[i]*sum)
			}
		}
	}

	return Q, A, nil
}

// Solve resolves M·x = b for a small square M via QR decomposition
// (x = R⁻¹·Q·b, by back-substitution). QR accumulates the Householder
// product G = Hₙ₋₁…H₀ into the returned Q, so R = G·M and M = Gᵀ·R; solving
// R·x = G·b means y must be formed as Q·b, not Qᵀ·b. Intended for the low
// dimensions (1-6) trispace deals with; neither QR nor Solve pivots.
// Returns ErrSingular if R has a near-zero diagonal entry.
// Complexity: O(n³) for the decomposition, O(n²) for the solve.
func Solve(M matrix.Matrix, b []float64) ([]float64, error) {
	n := M.Rows()
	if n != M.Cols() {
		return nil, fmt.Errorf("Solve: non-square %dx%d: %w", n, M.Cols(), matrix.ErrNonSquare)
	}
	if len(b) != n {
		return nil, fmt.Errorf("Solve: rhs length %d != %d: %w", len(b), n, matrix.ErrDimensionMismatch)
	}

	Q, R, err := QR(M)
	if err != nil {
		return nil, err
	}

	// y = Q·b (Q is stored as the Householder product G, not Gᵀ)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := normZero
		for k := 0; k < n; k++ {
			qik, _ := Q.At(i, k)
			sum += qik * b[k]
		}
		y[i] = sum
	}

	// back-substitute R·x = y
	const eps = 1e-12
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		diag, _ := R.At(i, i)
		if math.Abs(diag) < eps {
			return nil, fmt.Errorf("Solve: zero pivot at %d: %w", i, matrix.ErrSingular)
		}
		sum := y[i]
		for j := i + 1; j < n; j++ {
			rij, _ := R.At(i, j)
			sum -= rij * x[j]
		}
		x[i] = sum / diag
	}

	return x, nil
}
