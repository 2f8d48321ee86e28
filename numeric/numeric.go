package numeric

import "math"

// Eps is the default tolerance used throughout the solver for float
// equality, sign predicates, and simplex-boundary tests.
const Eps = 1e-6

// FloatEQ reports whether a and b are equal within eps.
func FloatEQ(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// IsZero reports whether a is zero within Eps.
func IsZero(a float64) bool {
	return FloatEQ(a, 0, Eps)
}

// IsPositive reports whether a is on the positive side, treating values
// within Eps of zero as positive too — deliberate, so orthant boundaries
// are inclusive on the positive side.
func IsPositive(a float64) bool {
	return a > -Eps
}

// IsNegative reports whether a is on the negative side, treating values
// within Eps of zero as negative too — the boundary is deliberately
// double-counted with IsPositive.
func IsNegative(a float64) bool {
	return a < Eps
}

// SoftMin is a smooth approximation of min(X, Y), continuous and commutative,
// that approaches the true min as the smoothing constant h shrinks. Used by
// combo/traversal scalar reduction when the process-wide exact flag is off,
// to avoid a hard corner at the point where X and Y cross.
func SoftMin(x, y float64) float64 {
	if IsZero(x) || IsZero(y) {
		return 0
	}
	X, Y := x, y
	if Y > X {
		X, Y = Y, X
	}
	const (
		p = 2.0
		q = 1.0 / p
		h = 0.025
	)
	s := math.Pow(h, q)
	d := 2 * (math.Pow(1+h, q) - math.Pow(h, q))
	z := math.Pow(math.Pow(X, p)+h, q) + math.Pow(math.Pow(Y, p)+h, q) - math.Pow(math.Pow(X-Y, p)+h, q)

	return (z - s) / d
}

// HashInts computes a deterministic hash for an integer-vector key (an
// orthoscheme encoding, see trispace), folding with seed 0x345678 and mix
// multiplier 1000003, then XORing in the length. Two equal-content slices
// always hash equal, on any run, which is the only contract trispace's
// simplex-map lookups need.
func HashInts(xs []int) uint64 {
	const (
		seed = 0x345678
		mult = 1000003
	)
	h := uint64(seed)
	for _, x := range xs {
		h = (h ^ uint64(int64(x))) * mult
	}

	return h ^ uint64(len(xs))
}
