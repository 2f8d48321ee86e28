// Package combo implements the Combo ShapeController: a scalar activation
// derived from a conjunction of slider targets, plus the shared
// scalar-reduction engine (Solve) that Traversal reuses for its own
// progress/multiplier solves. A Floater is a Combo with IsFloater set; see
// package floater.
package combo

import (
	"math"
	"sort"

	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/numeric"
)

// SolveType selects how a Combo (or Traversal) reduces its per-slider
// values to one scalar. There is no separate None value: the parser maps a
// document's "none" (or an empty solveType) to Min.
type SolveType int

const (
	Min SolveType = iota
	AllMul
	ExtMul
	MulAvgExt
	MulAvgAll
)

// Combo is a scalar activation gated by a conjunction of (slider, target)
// pairs. StateList is kept sorted by slider index. IsFloater marks a Combo
// whose Value is driven by a TriSpace instead of its own StoreValue.
type Combo struct {
	name      string
	index     int
	enabled   bool
	isFloater bool
	exact     bool
	solveType SolveType
	prog      int // progression arena index, -1 if none

	stateList []controller.StateEntry

	value      float64
	multiplier float64
}

// New constructs a Combo. pairs need not be pre-sorted; New sorts a copy by
// slider index to satisfy the stateList ordering invariant.
func New(name string, index, prog int, pairs []controller.StateEntry, isFloater bool, solveType SolveType, enabled bool) *Combo {
	sorted := append([]controller.StateEntry(nil), pairs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Slider.SliderIndex() < sorted[j].Slider.SliderIndex()
	})

	return &Combo{
		name:       name,
		index:      index,
		enabled:    enabled,
		isFloater:  isFloater,
		solveType:  solveType,
		prog:       prog,
		stateList:  sorted,
		multiplier: 1,
	}
}

func (c *Combo) Name() string                       { return c.name }
func (c *Combo) Index() int                         { return c.index }
func (c *Combo) Enabled() bool                      { return c.enabled }
func (c *Combo) IsFloater() bool                    { return c.isFloater }
func (c *Combo) SolveType() SolveType               { return c.solveType }
func (c *Combo) ProgIndex() int                     { return c.prog }
func (c *Combo) StateList() []controller.StateEntry { return c.stateList }
func (c *Combo) Value() float64                     { return c.value }
func (c *Combo) Multiplier() float64                { return c.multiplier }

// SetValue is used by trispace to assign a floater's barycentric weight;
// it is a no-op target for every other Combo kind (nothing calls it).
func (c *Combo) SetValue(v float64) { c.value = v }

// SetExact sets the process-wide exact-solve flag on this combo; Simplex
// propagates a single toggle to every combo.
func (c *Combo) SetExact(v bool) { c.exact = v }

// Exact reports whether this combo currently solves exactly.
func (c *Combo) Exact() bool { return c.exact }

// Reset clears transient solve state; called once per solve before StoreValue.
func (c *Combo) Reset() {
	c.value = 0
	c.multiplier = 1
}

// StoreValue reduces stateList to a scalar activation. It is a no-op for
// disabled combos and for floaters, whose value is set later by their
// enclosing TriSpace.
func (c *Combo) StoreValue() {
	if !c.enabled || c.isFloater {
		return
	}
	vals := make([]float64, len(c.stateList))
	tars := make([]float64, len(c.stateList))
	for i, se := range c.stateList {
		vals[i] = se.Slider.Value()
		tars[i] = se.Target
	}
	c.value = Solve(vals, tars, c.solveType, c.exact)
}

// StateEntries satisfies controller.Endpoint: a combo contributes its own
// stateList wholesale, which Traversal's legacy construction unions with
// another endpoint's entries.
func (c *Combo) StateEntries() []controller.StateEntry { return c.stateList }

// Solve reduces paired (vals, tars) vectors to one scalar activation. It is
// shared, unmodified, between Combo.StoreValue and Traversal.StoreValue:
// each vals[i] is gated against sign(tars[i]) — zero is treated as
// positive — then clamped to [0,1] before the solveType reduction runs.
func Solve(vals, tars []float64, mode SolveType, exact bool) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	vi := make([]float64, n)
	for i := 0; i < n; i++ {
		if signPositive(vals[i]) != signPositive(tars[i]) {
			return 0
		}
		av := math.Abs(vals[i])
		if av > 1 {
			av = 1
		}
		vi[i] = av
	}

	switch mode {
	case AllMul:
		product := 1.0
		for _, v := range vi {
			product *= v
		}
		return product
	case ExtMul:
		mx, mn := extrema(vi)
		return mx * mn
	case MulAvgExt:
		mx, mn := extrema(vi)
		denom := mx + mn
		if denom == 0 {
			return 0
		}
		return 2 * mx * mn / denom
	case MulAvgAll:
		sum := 0.0
		product := 1.0
		for _, v := range vi {
			sum += v
			product *= v
		}
		if sum == 0 {
			return 0
		}
		return float64(n) * product / sum
	default: // Min
		mx, mn := extrema(vi)
		if exact {
			return mn
		}
		return numeric.SoftMin(mx, mn)
	}
}

func extrema(vs []float64) (max, min float64) {
	max, min = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max, min
}

// signPositive treats 0 as positive.
func signPositive(v float64) bool { return v >= 0 }

var (
	_ controller.Controller = (*Combo)(nil)
	_ controller.Endpoint   = (*Combo)(nil)
)
