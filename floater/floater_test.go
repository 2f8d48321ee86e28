package floater_test

import (
	"testing"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/floater"
	"github.com/stretchr/testify/require"
)

type fakeSlider struct {
	idx int
	val float64
}

func (f *fakeSlider) Value() float64   { return f.val }
func (f *fakeSlider) SliderIndex() int { return f.idx }

func TestGroupKey_SameSliderSetAndOrthantMatch(t *testing.T) {
	sa := &fakeSlider{idx: 0, val: 0.5}
	sb := &fakeSlider{idx: 1, val: 0.5}
	c1 := combo.New("f1", 0, 0, []controller.StateEntry{{Slider: sa, Target: 0.5}, {Slider: sb, Target: 0.5}}, true, combo.Min, true)
	c2 := combo.New("f2", 1, 0, []controller.StateEntry{{Slider: sa, Target: 0.25}, {Slider: sb, Target: 0.75}}, true, combo.Min, true)

	require.Equal(t, floater.GroupKey(c1), floater.GroupKey(c2))
}

func TestGroupKey_DifferentOrthantMismatch(t *testing.T) {
	sa := &fakeSlider{idx: 0, val: 0.5}
	sb := &fakeSlider{idx: 1, val: -0.5}
	c1 := combo.New("f1", 0, 0, []controller.StateEntry{{Slider: sa, Target: 0.5}, {Slider: sb, Target: 0.5}}, true, combo.Min, true)
	c2 := combo.New("f2", 1, 0, []controller.StateEntry{{Slider: sa, Target: 0.5}, {Slider: sb, Target: -0.5}}, true, combo.Min, true)

	require.NotEqual(t, floater.GroupKey(c1), floater.GroupKey(c2))
}

func TestTarget_ReturnsOrderedValues(t *testing.T) {
	sa := &fakeSlider{idx: 3, val: 0}
	sb := &fakeSlider{idx: 1, val: 0}
	c := combo.New("f", 0, 0, []controller.StateEntry{{Slider: sa, Target: 0.9}, {Slider: sb, Target: 0.1}}, true, combo.Min, true)

	require.Equal(t, []float64{0.1, 0.9}, floater.Target(c))
}
