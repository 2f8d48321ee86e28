package controller_test

import (
	"fmt"

	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/progression"
)

type exampleController struct {
	value, mul float64
	progIndex  int
}

func (c *exampleController) Enabled() bool       { return true }
func (c *exampleController) Value() float64      { return c.value }
func (c *exampleController) Multiplier() float64 { return c.mul }
func (c *exampleController) ProgIndex() int      { return c.progIndex }

// ExampleAccumulate weights a two-shape spline progression (which samples
// linearly with only two pairs) by a controller's
// value and multiplier, and reports the magnitude used for the rest-shape
// weight.
func ExampleAccumulate() {
	p, _ := progression.New("brow", progression.Spline, []progression.Pair{
		{Shape: 0, Param: 0},
		{Shape: 1, Param: 1},
	})
	c := &exampleController{value: 0.4, mul: 1, progIndex: 0}

	output := make([]float64, 2)
	magnitude := controller.Accumulate(c, []*progression.Progression{p}, output)

	fmt.Printf("%.2f %.2f\n", output[0], output[1])
	fmt.Printf("%.2f\n", magnitude)

	// Output:
	// 0.60 0.40
	// 0.40
}
