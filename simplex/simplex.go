package simplex

import (
	"errors"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/metrics"
	"github.com/katalvlaran/blendsolve/parser"
	"github.com/katalvlaran/blendsolve/progression"
	"github.com/katalvlaran/blendsolve/shape"
	"github.com/katalvlaran/blendsolve/simplexerr"
	"github.com/katalvlaran/blendsolve/slider"
	"github.com/katalvlaran/blendsolve/traversal"
	"github.com/katalvlaran/blendsolve/trispace"
)

// Simplex is the ownership root for one parsed rig definition: every
// cross-entity reference below it is an arena index or a non-owning
// interface handle resolved once, at parse or build time.
type Simplex struct {
	shapes     []shape.Shape
	progs      []*progression.Progression
	sliders    []*slider.Slider
	combos     []*combo.Combo
	traversals []*traversal.Traversal
	spaces     []*trispace.TriSpace

	loaded     bool
	built      bool
	exactSolve bool
	parseErr   *simplexerr.ParseError

	counters metrics.Counters
	lastDiag metrics.Diagnostics
}

// New returns an empty, unparsed Simplex.
func New() *Simplex { return &Simplex{} }

// Parse replaces the container's contents with the entities decoded from
// definition. On failure the container is left cleared and the error is
// both returned and retained for ParseError. On success Loaded becomes
// true; Parse never calls Build.
func (s *Simplex) Parse(definition string) error {
	res, err := parser.Parse([]byte(definition))
	if err != nil {
		s.Clear()
		var pe *simplexerr.ParseError
		if errors.As(err, &pe) {
			s.parseErr = pe
		}

		return err
	}

	s.shapes = res.Shapes
	s.progs = res.Progressions
	s.sliders = res.Sliders
	s.combos = res.Combos
	s.traversals = res.Traversals
	s.spaces = nil
	s.built = false
	s.loaded = true
	s.parseErr = nil

	return nil
}

// ParseError returns the record captured by the most recent Parse if it
// failed, or nil if that Parse succeeded (or no Parse has failed since New
// or the last Clear).
func (s *Simplex) ParseError() *simplexerr.ParseError { return s.parseErr }

// Build triangulates every floater group's TriSpace from the currently
// parsed combos. It is a no-op without a successful Parse, and idempotent:
// calling it again simply re-triangulates from the same parsed combos.
func (s *Simplex) Build() {
	if !s.loaded {
		return
	}

	var floaters []*combo.Combo
	for _, c := range s.combos {
		if c.IsFloater() {
			floaters = append(floaters, c)
		}
	}
	s.spaces = trispace.BuildSpaces(floaters)
	s.built = true
}

// Loaded reports whether the container holds a successfully parsed document.
func (s *Simplex) Loaded() bool { return s.loaded }

// Built reports whether Build has run since the last Parse.
func (s *Simplex) Built() bool { return s.built }

// SetExactSolve propagates the exact-vs-soft-min toggle to every combo and
// traversal in the container.
func (s *Simplex) SetExactSolve(flag bool) {
	s.exactSolve = flag
	for _, c := range s.combos {
		c.SetExact(flag)
	}
	for _, t := range s.traversals {
		t.SetExact(flag)
	}
}

// ClearValues resets every controller's transient solve state (value,
// multiplier) without dropping the parsed document or its triangulation.
func (s *Simplex) ClearValues() {
	for _, sl := range s.sliders {
		sl.Reset()
	}
	for _, c := range s.combos {
		c.Reset()
	}
	for _, t := range s.traversals {
		t.Reset()
	}
}

// Clear drops all parsed state, returning the container to its New()
// condition (the exact-solve toggle is preserved across a Clear, since a
// host may clear and re-parse without wanting to re-toggle it).
func (s *Simplex) Clear() {
	exact := s.exactSolve
	*s = Simplex{}
	s.exactSolve = exact
}

// SliderCount returns the number of sliders in the parsed document.
func (s *Simplex) SliderCount() int { return len(s.sliders) }

// ShapeCount returns the number of shapes in the parsed document.
func (s *Simplex) ShapeCount() int { return len(s.shapes) }

// Diagnostics returns a snapshot of the most recently completed solve.
func (s *Simplex) Diagnostics() metrics.Diagnostics { return s.lastDiag }

// Solve evaluates raw slider input into a dense shape-weight vector of
// length ShapeCount. A raw shorter than SliderCount leaves the missing
// trailing sliders at 0; a longer one ignores the extra trailing entries.
// Shape 0 (the rest pose) is assigned 1 minus the solve-wide maximum
// |value*multiplier| any controller reached this solve.
func (s *Simplex) Solve(raw []float64) []float64 {
	s.counters.Reset()
	s.ClearValues()

	for _, sl := range s.sliders {
		sl.StoreValue(raw)
	}
	for _, c := range s.combos {
		c.StoreValue()
	}
	for _, sp := range s.spaces {
		if !sp.StoreValue() {
			s.counters.NoteTriSpaceRejection()
		}
	}
	for _, t := range s.traversals {
		t.StoreValue()
	}

	output := make([]float64, len(s.shapes))
	for _, sl := range s.sliders {
		if sl.Enabled() {
			s.counters.NoteSlider()
		}
		s.counters.NoteActivation(controller.Accumulate(sl, s.progs, output))
	}
	for _, c := range s.combos {
		a := controller.Accumulate(c, s.progs, output)
		s.counters.NoteActivation(a)
		if c.Enabled() && c.Value() != 0 {
			if c.IsFloater() {
				s.counters.NoteFloater()
			} else {
				s.counters.NoteCombo()
			}
		}
	}
	for _, t := range s.traversals {
		a := controller.Accumulate(t, s.progs, output)
		s.counters.NoteActivation(a)
		if t.Enabled() && t.Value() != 0 {
			s.counters.NoteTraversal()
		}
	}

	if len(output) > 0 {
		output[0] = 1 - s.counters.MaxActivation()
	}
	s.lastDiag = s.counters.Snapshot()

	return output
}
