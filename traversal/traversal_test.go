package traversal_test

import (
	"testing"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/slider"
	"github.com/katalvlaran/blendsolve/traversal"
	"github.com/stretchr/testify/require"
)

func TestNewFromEndpoints_ScenarioFive(t *testing.T) {
	sa := slider.New("Sa", 0, -1, true)
	sb := slider.New("Sb", 1, -1, true)

	start := []controller.StateEntry{{Slider: sa, Target: 0}, {Slider: sb, Target: 1}}
	end := []controller.StateEntry{{Slider: sa, Target: 1}, {Slider: sb, Target: 1}}

	tr := traversal.NewFromEndpoints("T", 0, 0, start, end, combo.Min, true)
	tr.SetExact(true)

	sa.StoreValue([]float64{0.4, 1.0})
	sb.StoreValue([]float64{0.4, 1.0})

	tr.StoreValue()
	require.Equal(t, 1.0, tr.Multiplier())
	require.InDelta(t, 0.4, tr.Value(), 1e-12)
}

func TestNewLegacy_SliderProgressAndMultiplier(t *testing.T) {
	sp := slider.New("Sp", 0, -1, true)
	sm := slider.New("Sm", 1, -1, true)

	tr := traversal.NewLegacy("T", 0, 0, sp, sm, false, false, combo.Min, true)
	tr.SetExact(true)

	sp.StoreValue([]float64{0.6, 1.0})
	sm.StoreValue([]float64{0.6, 1.0})

	tr.StoreValue()
	require.InDelta(t, 0.6, tr.Value(), 1e-12)
	require.InDelta(t, 1.0, tr.Multiplier(), 1e-12)
}

func TestNewLegacy_ValueFlip(t *testing.T) {
	sp := slider.New("Sp", 0, -1, true)
	sm := slider.New("Sm", 1, -1, true)

	tr := traversal.NewLegacy("T", 0, 0, sp, sm, true, false, combo.Min, true)
	tr.SetExact(true)

	sp.StoreValue([]float64{0.3, 1.0})
	sm.StoreValue([]float64{0.3, 1.0})

	tr.StoreValue()
	require.InDelta(t, -0.3, tr.Value(), 1e-12)
}

func TestNewLegacy_MultiplierFlip(t *testing.T) {
	sp := slider.New("Sp", 0, -1, true)
	sm := slider.New("Sm", 1, -1, true)

	tr := traversal.NewLegacy("T", 0, 0, sp, sm, false, true, combo.Min, true)
	tr.SetExact(true)

	sp.StoreValue([]float64{0.6, 0.3})
	sm.StoreValue([]float64{0.6, 0.3})

	tr.StoreValue()
	require.InDelta(t, -0.3, tr.Multiplier(), 1e-12)
}

func TestNewLegacy_ComboMultiplier(t *testing.T) {
	sp := slider.New("Sp", 0, -1, true)
	sa := slider.New("Sa", 1, -1, true)
	sbSlider := slider.New("Sb", 2, -1, true)

	mc := combo.New("M", 0, -1, []controller.StateEntry{{Slider: sa, Target: 1}, {Slider: sbSlider, Target: 1}}, false, combo.Min, true)

	tr := traversal.NewLegacy("T", 0, 0, sp, mc, false, false, combo.Min, true)
	tr.SetExact(true)

	raw := []float64{0.5, 1.0, 1.0}
	sp.StoreValue(raw)
	sa.StoreValue(raw)
	sbSlider.StoreValue(raw)
	mc.StoreValue()

	tr.StoreValue()
	require.InDelta(t, 1.0, tr.Multiplier(), 1e-12)
}

func TestStoreValue_DisabledIsNoOp(t *testing.T) {
	sa := slider.New("Sa", 0, -1, true)
	sb := slider.New("Sb", 1, -1, true)
	start := []controller.StateEntry{{Slider: sa, Target: 0}}
	end := []controller.StateEntry{{Slider: sb, Target: 1}}

	tr := traversal.NewFromEndpoints("T", 0, 0, start, end, combo.Min, false)
	tr.StoreValue()
	require.Equal(t, 0.0, tr.Value())
}
