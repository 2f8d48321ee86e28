// Package trispace implements the triangulated-space engine for floaters:
// grouping floaters that share a slider set and orthant, implicitly
// triangulating that orthant via Schläfli-orthoscheme encoding, splitting
// the enclosing orthoscheme by every user-placed interior point, and
// resolving a live slider state to barycentric weights on the containing
// sub-simplex.
//
// 🚀 What problem does this solve?
//
//	A floater's target is an arbitrary point strictly inside an n-dimensional
//	unit orthant. There is no single shape that blends smoothly between a
//	sparse, irregular set of such points — so the orthant is triangulated
//	once (at build time) around the group's actual targets, and each solve
//	locates the sub-simplex containing the live input and reads off its
//	barycentric coordinates as the floaters' activations.
//
// ✨ Key pieces:
//   - Schläfli orthoscheme enumeration (n! per orthant) and corner expansion
//   - pointToAdjSimp / pointToSimp: boundary-tolerant and exact simplex lookup
//   - fan-triangulation splitting of an orthoscheme by its contained user points
//   - barycentric resolution via matrix/ops.Solve (Householder QR)
//
// ⚙️ Usage:
//
//	spaces := trispace.BuildSpaces(floaters, trispace.WithEpsilon(1e-6))
//	for _, ts := range spaces {
//	    ts.StoreValue() // assigns each member floater's Value for this solve
//	}
package trispace
