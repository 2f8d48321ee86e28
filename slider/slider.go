// Package slider implements the Slider ShapeController: the trivial case
// that samples one component of the raw input vector. Sliders are the only
// controllers that read the raw signed input directly — every Combo and
// Traversal reads a slider's stored Value instead.
package slider

import "github.com/katalvlaran/blendsolve/controller"

// Slider is a single named scalar input to the rig.
type Slider struct {
	name    string
	index   int // position in both the slider arena and the input vector
	enabled bool
	prog    int // progression arena index, -1 if none

	value float64 // reset to 0, then set from the raw input each solve
}

// New constructs a Slider at arena/input position index, referencing
// progression prog (or -1 for none).
func New(name string, index, prog int, enabled bool) *Slider {
	return &Slider{name: name, index: index, enabled: enabled, prog: prog}
}

// Name returns the slider's declared name.
func (s *Slider) Name() string { return s.name }

// SliderIndex returns this slider's position, which doubles as its slot in
// every raw input vector passed to Solve.
func (s *Slider) SliderIndex() int { return s.index }

// Enabled reports whether this slider participates in the solve.
func (s *Slider) Enabled() bool { return s.enabled }

// SetEnabled overrides the slider's participation flag (parser-time only).
func (s *Slider) SetEnabled(v bool) { s.enabled = v }

// ProgIndex returns the referenced progression's arena index, or -1.
func (s *Slider) ProgIndex() int { return s.prog }

// Value returns the raw, signed value this slider last stored.
func (s *Slider) Value() float64 { return s.value }

// Multiplier is always 1 for a Slider; it has no concept of a multiplier
// controller of its own.
func (s *Slider) Multiplier() float64 { return 1 }

// Reset clears transient solve state; called once per solve before StoreValue.
func (s *Slider) Reset() { s.value = 0 }

// StoreValue samples raw[index] if enabled and in range. An out-of-range
// index (the host passed a shorter input vector than there are sliders)
// leaves the value at its reset 0: missing entries are treated as 0.
func (s *Slider) StoreValue(raw []float64) {
	if !s.enabled {
		return
	}
	if s.index >= 0 && s.index < len(raw) {
		s.value = raw[s.index]
	}
}

// StateEntries satisfies controller.Endpoint: a bare slider contributes
// itself at target 0, the identity entry a Traversal's legacy construction
// folds into progStart/progDelta.
func (s *Slider) StateEntries() []controller.StateEntry {
	return []controller.StateEntry{{Slider: s, Target: 0}}
}

var (
	_ controller.Controller = (*Slider)(nil)
	_ controller.SliderRef  = (*Slider)(nil)
	_ controller.Endpoint   = (*Slider)(nil)
)
