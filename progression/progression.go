// Package progression implements the Progression entity: an ordered
// (parameter → shape) mapping sampled by linear, spline, or split-spline
// interpolation. Progressions are owned by the top-level container and
// referenced by index from every controller; this package only holds the
// value type and the sampling math.
package progression

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/blendsolve/shape"
)

// Index addresses a Progression in the owning container's arena.
type Index int

// Interp selects the sampling algorithm a Progression uses.
type Interp int

const (
	Linear Interp = iota
	Spline
	SplitSpline
)

// Pair is one (shape, parameter) control point of a Progression.
type Pair struct {
	Shape shape.Index
	Param float64
}

// Contribution is one weighted shape emitted by GetOutput.
type Contribution struct {
	Shape  shape.Index
	Weight float64
}

// Progression is an ordered sequence of (shape, parameter) pairs sampled
// under one interpolation mode. Pairs are kept sorted by Param ascending;
// New enforces that invariant and rejects duplicate parameters.
type Progression struct {
	Name   string
	Interp Interp
	Pairs  []Pair
}

// New builds a Progression, sorting pairs by parameter and validating that
// parameters are unique. Shape-index validity is the caller's (parser's)
// responsibility, since this package doesn't have access to the shape arena.
func New(name string, interp Interp, pairs []Pair) (*Progression, error) {
	sorted := append([]Pair(nil), pairs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Param < sorted[j].Param })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Param == sorted[i-1].Param {
			return nil, fmt.Errorf("progression %q: duplicate parameter %g", name, sorted[i].Param)
		}
	}

	return &Progression{Name: name, Interp: interp, Pairs: sorted}, nil
}

// GetOutput samples the progression at t and scales every emitted weight by
// mul. Weights over one call need not sum to 1 — traversal multipliers rely
// on that to scale them down.
func (p *Progression) GetOutput(t, mul float64) []Contribution {
	switch p.Interp {
	case Spline:
		return p.splineOutput(t, mul, p.Pairs)
	case SplitSpline:
		return p.splitSplineOutput(t, mul)
	default:
		return p.linearOutput(t, mul, p.Pairs)
	}
}

func times(pairs []Pair) []float64 {
	ts := make([]float64, len(pairs))
	for i, pr := range pairs {
		ts[i] = pr.Param
	}
	return ts
}

// intervalFor returns the index i such that times[i] <= t < times[i+1],
// clamped to the first/last legal interval when t lies outside the range.
func intervalFor(ts []float64, t float64) int {
	n := len(ts)
	if n < 2 {
		return 0
	}
	i := 0
	for i < n-2 && t >= ts[i+1] {
		i++
	}
	return i
}

func (p *Progression) linearOutput(t, mul float64, pairs []Pair) []Contribution {
	if len(pairs) == 0 {
		return nil
	}
	if len(pairs) == 1 {
		// A lone pair interpolates against the implicit origin (0, 0): the
		// shape is fully off at t=0 and fully on at t=pairs[0].Param.
		param := pairs[0].Param
		if param == 0 {
			return []Contribution{{Shape: pairs[0].Shape, Weight: mul}}
		}

		return []Contribution{{Shape: pairs[0].Shape, Weight: mul * t / param}}
	}
	ts := times(pairs)
	i := intervalFor(ts, t)
	u := (t - ts[i]) / (ts[i+1] - ts[i])

	return []Contribution{
		{Shape: pairs[i].Shape, Weight: mul * (1 - u)},
		{Shape: pairs[i+1].Shape, Weight: mul * u},
	}
}

// splineOutput implements uniform Catmull-Rom sampling. With two or fewer
// pairs, or t outside the sampled range, it falls back to linear.
func (p *Progression) splineOutput(t, mul float64, pairs []Pair) []Contribution {
	n := len(pairs)
	if n <= 2 {
		return p.linearOutput(t, mul, pairs)
	}
	ts := times(pairs)
	if t < ts[0] || t > ts[n-1] {
		return p.linearOutput(t, mul, pairs)
	}

	i := intervalFor(ts, t)
	u := (t - ts[i]) / (ts[i+1] - ts[i])
	u2 := u * u
	u3 := u2 * u
	v0 := -0.5*u3 + u2 - 0.5*u
	v1 := 1.5*u3 - 2.5*u2 + 1
	v2 := -1.5*u3 + 2*u2 + 0.5*u
	v3 := 0.5*u3 - 0.5*u2

	switch {
	case i == 0:
		// missing left neighbor folded in via phantom = 2*P0 - P1.
		return []Contribution{
			{Shape: pairs[0].Shape, Weight: mul * (v1 + 2*v0)},
			{Shape: pairs[1].Shape, Weight: mul * (v2 - v0)},
			{Shape: pairs[2].Shape, Weight: mul * v3},
		}
	case i == n-2:
		// missing right neighbor folded in via phantom = 2*P_{n-1} - P_{n-2}.
		return []Contribution{
			{Shape: pairs[i-1].Shape, Weight: mul * v0},
			{Shape: pairs[i].Shape, Weight: mul * (v1 - v3)},
			{Shape: pairs[i+1].Shape, Weight: mul * (v2 + 2*v3)},
		}
	default:
		return []Contribution{
			{Shape: pairs[i-1].Shape, Weight: mul * v0},
			{Shape: pairs[i].Shape, Weight: mul * v1},
			{Shape: pairs[i+1].Shape, Weight: mul * v2},
			{Shape: pairs[i+2].Shape, Weight: mul * v3},
		}
	}
}

// splitSplineOutput restricts the spline to the pairs on the same side of
// zero as t, so the curve never crosses the origin.
func (p *Progression) splitSplineOutput(t, mul float64) []Contribution {
	var side []Pair
	if t >= 0 {
		for _, pr := range p.Pairs {
			if pr.Param >= 0 {
				side = append(side, pr)
			}
		}
	} else {
		for _, pr := range p.Pairs {
			if pr.Param <= 0 {
				side = append(side, pr)
			}
		}
	}

	return p.splineOutput(t, mul, side)
}
