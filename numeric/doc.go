// Package numeric provides the small set of floating-point primitives every
// other package in this module builds on: epsilon-tolerant comparisons, sign
// predicates, the soft-min approximation used by inexact combo solves, and a
// deterministic hash for integer-vector keys. Input rectification (abs, clamp,
// sign) is not done here; each controller does it inline.
//
// Nothing here owns any domain state — these are pure functions, free of
// side effects and safe to call from any goroutine.
package numeric
