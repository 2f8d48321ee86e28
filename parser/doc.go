// Package parser reads the three generations of rig-definition JSON
// documents this module accepts:
//
//	v1 — positional arrays: ["name", [shapeIdxs], [params], interp?]
//	v2 — keyed objects with a single legacy traversal shape
//	v3 — keyed objects with the current start/end traversal shape
//
// A missing encodingVersion field defaults to v1. Every cross-reference
// (a progression's shape indices, a combo's or traversal's slider indices)
// is range-checked against the arrays already parsed earlier in the
// document, so a Result's entities never need a second validation pass.
package parser
