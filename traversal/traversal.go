// Package traversal implements the Traversal ShapeController: a transition
// shape interpolated between two "combo states", with an independently
// solved multiplier. Both of the source's construction forms — legacy
// (single progress- and multiplier-controller, each either a Slider or a
// Combo) and current (two endpoint state lists) — collapse at construction
// time to the same runtime shape: progStart, progDelta, multState.
package traversal

import (
	"sort"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/slider"
)

// Traversal drives a progression along a 1-D path between two combo states,
// with a separately solved multiplier.
type Traversal struct {
	name      string
	index     int
	enabled   bool
	exact     bool
	solveType combo.SolveType
	prog      int

	progStart []controller.StateEntry
	progDelta []controller.StateEntry
	multState []controller.StateEntry
	progSign  float64
	multSign  float64

	value      float64
	multiplier float64
}

// NewLegacy builds a Traversal from the legacy single-progress,
// single-multiplier construction. progressCtrl and multiplierCtrl must each
// be a *slider.Slider or a *combo.Combo; any other controller.Endpoint
// implementation yields an empty (inert) progress or multiplier side.
func NewLegacy(name string, index, prog int, progressCtrl, multiplierCtrl controller.Endpoint, valueFlip, multiplierFlip bool, solveType combo.SolveType, enabled bool) *Traversal {
	t := &Traversal{
		name:       name,
		index:      index,
		enabled:    enabled,
		solveType:  solveType,
		prog:       prog,
		multiplier: 1,
		progSign:   1,
		multSign:   1,
	}

	switch c := progressCtrl.(type) {
	case *slider.Slider:
		t.progStart = []controller.StateEntry{{Slider: c, Target: 0}}
		t.progDelta = []controller.StateEntry{{Slider: c, Target: 1}}
	case *combo.Combo:
		for _, se := range c.StateList() {
			t.progStart = append(t.progStart, controller.StateEntry{Slider: se.Slider, Target: 0})
		}
		t.progDelta = append([]controller.StateEntry(nil), c.StateList()...)
	}
	if valueFlip {
		t.progSign = -1
	}

	switch m := multiplierCtrl.(type) {
	case *slider.Slider:
		t.multState = []controller.StateEntry{{Slider: m, Target: 1}}
	case *combo.Combo:
		t.multState = append([]controller.StateEntry(nil), m.StateList()...)
	}
	if multiplierFlip {
		t.multSign = -1
	}

	return t
}

// NewFromEndpoints builds a Traversal from the current two-endpoint
// construction: for every slider referenced by either start or end, the
// four cases of §4.5 partition it into progStart/progDelta or multState.
func NewFromEndpoints(name string, index, prog int, start, end []controller.StateEntry, solveType combo.SolveType, enabled bool) *Traversal {
	startMap := make(map[int]controller.StateEntry, len(start))
	for _, se := range start {
		startMap[se.Slider.SliderIndex()] = se
	}
	endMap := make(map[int]controller.StateEntry, len(end))
	for _, se := range end {
		endMap[se.Slider.SliderIndex()] = se
	}

	seen := make(map[int]bool, len(startMap)+len(endMap))
	keys := make([]int, 0, len(startMap)+len(endMap))
	for k := range startMap {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range endMap {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)

	t := &Traversal{
		name:       name,
		index:      index,
		enabled:    enabled,
		solveType:  solveType,
		prog:       prog,
		multiplier: 1,
		progSign:   1,
		multSign:   1,
	}

	for _, k := range keys {
		se, inStart := startMap[k]
		ee, inEnd := endMap[k]
		switch {
		case inStart && inEnd:
			if se.Target == ee.Target {
				t.multState = append(t.multState, controller.StateEntry{Slider: se.Slider, Target: se.Target})
			} else {
				t.progStart = append(t.progStart, controller.StateEntry{Slider: se.Slider, Target: se.Target})
				t.progDelta = append(t.progDelta, controller.StateEntry{Slider: se.Slider, Target: ee.Target - se.Target})
			}
		case inEnd:
			t.progStart = append(t.progStart, controller.StateEntry{Slider: ee.Slider, Target: 0})
			t.progDelta = append(t.progDelta, controller.StateEntry{Slider: ee.Slider, Target: ee.Target})
		case inStart:
			t.progStart = append(t.progStart, controller.StateEntry{Slider: se.Slider, Target: se.Target})
			t.progDelta = append(t.progDelta, controller.StateEntry{Slider: se.Slider, Target: -se.Target})
		}
	}

	return t
}

func (t *Traversal) Name() string        { return t.name }
func (t *Traversal) Index() int          { return t.index }
func (t *Traversal) Enabled() bool       { return t.enabled }
func (t *Traversal) ProgIndex() int      { return t.prog }
func (t *Traversal) Value() float64      { return t.value }
func (t *Traversal) Multiplier() float64 { return t.multiplier }

// SetExact sets the process-wide exact-solve flag on this traversal.
func (t *Traversal) SetExact(v bool) { t.exact = v }

// Exact reports whether this traversal currently solves exactly.
func (t *Traversal) Exact() bool { return t.exact }

// Reset clears transient solve state; called once per solve before StoreValue.
func (t *Traversal) Reset() {
	t.value = 0
	t.multiplier = 1
}

// StoreValue solves the multiplier from multState, then the progress value
// from progStart/progDelta, both through combo.Solve — the same scalar
// reduction engine a Combo uses, applied to arbitrary (vals, tars) pairs
// instead of a stateList.
func (t *Traversal) StoreValue() {
	if !t.enabled {
		return
	}

	mvals := make([]float64, len(t.multState))
	mtars := make([]float64, len(t.multState))
	for i, se := range t.multState {
		mvals[i] = se.Slider.Value()
		mtars[i] = se.Target
	}
	t.multiplier = t.multSign * combo.Solve(mvals, mtars, t.solveType, t.exact)

	vals := make([]float64, len(t.progStart))
	tars := make([]float64, len(t.progDelta))
	for i := range t.progStart {
		vals[i] = t.progStart[i].Slider.Value() - t.progStart[i].Target
		tars[i] = t.progDelta[i].Target
	}
	t.value = t.progSign * combo.Solve(vals, tars, t.solveType, t.exact)
}

var _ controller.Controller = (*Traversal)(nil)
