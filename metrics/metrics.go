// Package metrics collects read-only solve-time telemetry for a Simplex.
// It owns no domain state and performs no I/O: a Counters value is reset
// and incremented once per solve call, then exposed as a Diagnostics
// snapshot the host can read without touching the solver's internals.
package metrics

// Diagnostics is a read-only snapshot of the last completed solve.
type Diagnostics struct {
	ActiveSliders      int
	ActiveCombos       int
	ActiveFloaters     int
	ActiveTraversals   int
	MaxActivation      float64
	TriSpaceRejections uint64
}

// Counters accumulates per-solve activity; Simplex resets it at the start
// of every solve and reads it back via Snapshot once the solve completes.
type Counters struct {
	activeSliders      int
	activeCombos       int
	activeFloaters     int
	activeTraversals   int
	maxActivation      float64
	triSpaceRejections uint64
}

// Reset clears all counters to their zero value, called once per solve.
func (c *Counters) Reset() { *c = Counters{} }

// NoteSlider records one enabled slider contributing this solve.
func (c *Counters) NoteSlider() { c.activeSliders++ }

// NoteCombo records one enabled, active (non-zero) combo this solve.
func (c *Counters) NoteCombo() { c.activeCombos++ }

// NoteFloater records one floater assigned a non-zero barycentric weight.
func (c *Counters) NoteFloater() { c.activeFloaters++ }

// NoteTraversal records one enabled, active traversal this solve.
func (c *Counters) NoteTraversal() { c.activeTraversals++ }

// NoteActivation folds a controller's |value*multiplier| into the running
// solve-wide maximum that becomes the rest-shape weight.
func (c *Counters) NoteActivation(a float64) {
	if a > c.maxActivation {
		c.maxActivation = a
	}
}

// NoteTriSpaceRejection records one TriSpace that assigned no floater
// weight this solve: the input was in another orthant, on an orthant
// boundary, or in no known sub-simplex.
func (c *Counters) NoteTriSpaceRejection() { c.triSpaceRejections++ }

// MaxActivation returns the running maximum NoteActivation has recorded,
// the value that becomes the rest-shape weight for this solve.
func (c *Counters) MaxActivation() float64 { return c.maxActivation }

// Snapshot returns a read-only copy of the current counters.
func (c *Counters) Snapshot() Diagnostics {
	return Diagnostics{
		ActiveSliders:      c.activeSliders,
		ActiveCombos:       c.activeCombos,
		ActiveFloaters:     c.activeFloaters,
		ActiveTraversals:   c.activeTraversals,
		MaxActivation:      c.maxActivation,
		TriSpaceRejections: c.triSpaceRejections,
	}
}
