// Package controller defines the shared contract every ShapeController
// variant (Slider, Combo, Floater, Traversal) satisfies, plus the
// accumulation step common to all of them. Rather than a polymorphic class
// hierarchy with virtual storeValue/solve methods, each variant lives in its
// own package and implements this small interface by ordinary Go method
// sets — idiomatic dispatch instead of a manual tag switch.
package controller

import (
	"math"

	"github.com/katalvlaran/blendsolve/progression"
)

// Controller is the read side every ShapeController variant exposes once its
// StoreValue step (which differs per variant and is not part of this
// interface) has run for the current solve.
type Controller interface {
	// Enabled reports whether this controller participates in the solve.
	Enabled() bool
	// Value returns the controller's current scalar activation.
	Value() float64
	// Multiplier returns the controller's current multiplier (1 unless a
	// Traversal has recomputed it this solve).
	Multiplier() float64
	// ProgIndex returns the index of this controller's progression in the
	// owning container's arena, or -1 if it has none.
	ProgIndex() int
}

// SliderRef is the read-only view of a Slider that Combo and Traversal state
// entries need: its current raw signed value and its position for sorting
// and grouping by slider identity.
type SliderRef interface {
	Value() float64
	SliderIndex() int
}

// StateEntry pairs a slider with a target value — the building block of a
// Combo's stateList, a Traversal's progStart/progDelta/multState, and a
// Floater's target point.
type StateEntry struct {
	Slider SliderRef
	Target float64
}

// Endpoint is satisfied by both Slider and Combo so Traversal's legacy
// construction can accept either as a progress- or multiplier-controller
// without a type switch at every call site.
type Endpoint interface {
	Controller
	// StateEntries returns the entries this endpoint contributes: a single
	// (self, 0) pair for a Slider, or the full stateList for a Combo.
	StateEntries() []StateEntry
}

// Accumulate performs the per-controller contribution step shared by every
// variant: it reads the controller's current value/multiplier, asks its
// progression for weighted shapes, adds them into output, and returns
// |value*multiplier| so the caller can track the solve-wide maximum that
// becomes the rest-shape weight.
func Accumulate(c Controller, progs []*progression.Progression, output []float64) float64 {
	if !c.Enabled() {
		return 0
	}
	idx := c.ProgIndex()
	if idx < 0 || idx >= len(progs) || progs[idx] == nil {
		return 0
	}
	value, mul := c.Value(), c.Multiplier()
	for _, contrib := range progs[idx].GetOutput(value, mul) {
		output[contrib.Shape] += contrib.Weight
	}

	return math.Abs(value * mul)
}
