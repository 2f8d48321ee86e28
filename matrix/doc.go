// Package matrix provides a minimal dense linear-algebra substrate used by
// the trispace package to resolve barycentric coordinates.
//
// The matrix package provides:
//
//   - Matrix, a small interface over bounds-checked 2-D float64 storage.
//   - Dense, a row-major implementation backed by a flat slice.
//
// Dimensions handled here are small (the solver never triangulates more
// than a handful of sliders per floater group), so a dense, allocation-light
// representation is sufficient; no sparse or distributed storage is needed.
//
// See matrix/ops for the QR-based solver built on top of this package.
package matrix
