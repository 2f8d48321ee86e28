package floater_test

import (
	"fmt"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/floater"
)

type exampleSlider struct {
	idx int
	val float64
}

func (s *exampleSlider) Value() float64   { return s.val }
func (s *exampleSlider) SliderIndex() int { return s.idx }

// ExampleGroupKey shows two floaters in the same orthant sharing a key,
// and a third in a different orthant not sharing it.
func ExampleGroupKey() {
	sa := &exampleSlider{idx: 0}
	sb := &exampleSlider{idx: 1}

	f1 := combo.New("F1", 0, 0, []controller.StateEntry{{Slider: sa, Target: 0.3}, {Slider: sb, Target: 0.7}}, true, combo.Min, true)
	f2 := combo.New("F2", 1, 0, []controller.StateEntry{{Slider: sa, Target: 0.6}, {Slider: sb, Target: 0.4}}, true, combo.Min, true)
	f3 := combo.New("F3", 2, 0, []controller.StateEntry{{Slider: sa, Target: -0.3}, {Slider: sb, Target: 0.7}}, true, combo.Min, true)

	fmt.Println(floater.GroupKey(f1) == floater.GroupKey(f2))
	fmt.Println(floater.GroupKey(f1) == floater.GroupKey(f3))

	// Output:
	// true
	// false
}
