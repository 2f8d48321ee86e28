package trispace

import "errors"

// ErrDegenerateSimplex is returned by barycentric when the corner count
// does not match the point's dimension. A near-singular (but
// dimensionally valid) system surfaces matrix.ErrSingular instead; both
// are recoverable — the caller tries the next candidate sub-simplex.
var ErrDegenerateSimplex = errors.New("trispace: degenerate simplex")
