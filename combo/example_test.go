package combo_test

import (
	"fmt"

	"github.com/katalvlaran/blendsolve/combo"
)

// ExampleSolve shows the shared scalar-reduction engine gating on sign
// agreement and reducing two clamped magnitudes via AllMul.
func ExampleSolve() {
	vals := []float64{0.5, 1.5}
	tars := []float64{1, 1}
	fmt.Println(combo.Solve(vals, tars, combo.AllMul, true))

	// a sign mismatch on any slider makes the whole combo inactive.
	mismatched := []float64{-0.5, 1.5}
	fmt.Println(combo.Solve(mismatched, tars, combo.AllMul, true))

	// Output:
	// 0.5
	// 0
}
