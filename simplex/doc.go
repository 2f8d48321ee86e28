// Package simplex assembles the parsed entity packages (shape, progression,
// slider, combo, traversal, trispace) behind a single facade that mirrors
// the host-facing contract: parse a definition document, build its
// triangulated floater spaces, and solve raw slider input into a dense
// shape-weight vector once per evaluation tick.
//
// A Simplex is not safe for concurrent use: parse, build, clearing, and
// solve are all mutually exclusive on one instance. A host wanting
// parallel evaluation should use one Simplex per goroutine.
package simplex
