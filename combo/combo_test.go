package combo_test

import (
	"testing"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/stretchr/testify/require"
)

type fakeSlider struct {
	idx int
	val float64
}

func (f *fakeSlider) Value() float64   { return f.val }
func (f *fakeSlider) SliderIndex() int { return f.idx }

func singleEntry(s controller.SliderRef, target float64) []controller.StateEntry {
	return []controller.StateEntry{{Slider: s, Target: target}}
}

func pairEntries(sa controller.SliderRef, ta float64, sb controller.SliderRef, tb float64) []controller.StateEntry {
	return []controller.StateEntry{{Slider: sa, Target: ta}, {Slider: sb, Target: tb}}
}

func TestSolve_SignMismatchIsInactive(t *testing.T) {
	v := combo.Solve([]float64{1, -1}, []float64{1, 1}, combo.Min, true)
	require.Equal(t, 0.0, v)
}

func TestSolve_MinExact(t *testing.T) {
	v := combo.Solve([]float64{1, 1}, []float64{1, 1}, combo.Min, true)
	require.Equal(t, 1.0, v)
}

func TestSolve_MinSoftApproachesButNeverExceeds(t *testing.T) {
	v := combo.Solve([]float64{1, 1}, []float64{1, 1}, combo.Min, false)
	require.Greater(t, v, 0.99)
	require.LessOrEqual(t, v, 1.00)
}

func TestSolve_AllMul(t *testing.T) {
	v := combo.Solve([]float64{0.5, 0.5}, []float64{1, 1}, combo.AllMul, true)
	require.InDelta(t, 0.25, v, 1e-12)
}

func TestSolve_ExtMul(t *testing.T) {
	v := combo.Solve([]float64{0.2, 0.8}, []float64{1, 1}, combo.ExtMul, true)
	require.InDelta(t, 0.16, v, 1e-12)
}

func TestSolve_MulAvgExt_ZeroDenominator(t *testing.T) {
	v := combo.Solve([]float64{0, 0}, []float64{1, 1}, combo.MulAvgExt, true)
	require.Equal(t, 0.0, v)
}

func TestSolve_MulAvgAll_ZeroSum(t *testing.T) {
	v := combo.Solve([]float64{0, 0}, []float64{1, 1}, combo.MulAvgAll, true)
	require.Equal(t, 0.0, v)
}

func TestSolve_ClampsAbove1(t *testing.T) {
	v := combo.Solve([]float64{2, 2}, []float64{1, 1}, combo.AllMul, true)
	require.InDelta(t, 1.0, v, 1e-12)
}

func TestCombo_StoreValue_ExactCombo(t *testing.T) {
	sa := &fakeSlider{idx: 0, val: 1}
	sb := &fakeSlider{idx: 1, val: 1}
	c := combo.New("AB", 0, 0, pairEntries(sa, 1, sb, 1), false, combo.Min, true)
	c.SetExact(true)

	c.StoreValue()
	require.Equal(t, 1.0, c.Value())
}

func TestCombo_StoreValue_OrthantRejection(t *testing.T) {
	sa := &fakeSlider{idx: 0, val: 1}
	sb := &fakeSlider{idx: 1, val: -1}
	c := combo.New("AB", 0, 0, pairEntries(sa, 1, sb, 1), false, combo.Min, true)
	c.SetExact(true)

	c.StoreValue()
	require.Equal(t, 0.0, c.Value())
}

func TestCombo_StoreValue_Disabled(t *testing.T) {
	sa := &fakeSlider{idx: 0, val: 1}
	c := combo.New("A", 0, 0, singleEntry(sa, 1), false, combo.Min, false)
	c.StoreValue()
	require.Equal(t, 0.0, c.Value())
}

func TestCombo_StoreValue_FloaterIsNoOp(t *testing.T) {
	sa := &fakeSlider{idx: 0, val: 1}
	c := combo.New("F", 0, 0, singleEntry(sa, 0.5), true, combo.Min, true)
	c.SetValue(0.37)
	c.StoreValue()
	require.Equal(t, 0.37, c.Value(), "floater StoreValue must not touch Value")
}

func TestCombo_StateListSortedBySliderIndex(t *testing.T) {
	sa := &fakeSlider{idx: 5, val: 1}
	sb := &fakeSlider{idx: 1, val: 1}
	c := combo.New("AB", 0, 0, pairEntries(sa, 1, sb, 1), false, combo.Min, true)

	require.Equal(t, 1, c.StateList()[0].Slider.SliderIndex())
	require.Equal(t, 5, c.StateList()[1].Slider.SliderIndex())
}
