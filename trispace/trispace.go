package trispace

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/floater"
	"github.com/katalvlaran/blendsolve/matrix"
	"github.com/katalvlaran/blendsolve/matrix/ops"
	"github.com/katalvlaran/blendsolve/numeric"
)

// Option configures a TriSpace at construction time.
type Option func(*TriSpace)

// WithEpsilon overrides the default tolerance (numeric.Eps) used for
// boundary tests in pointToAdjSimp and the barycentric non-negativity gate.
func WithEpsilon(eps float64) Option {
	return func(ts *TriSpace) { ts.epsilon = eps }
}

// cornerRef identifies one corner of a sub-simplex: either a position in
// the enclosing override orthoscheme's base corner list, or a user point.
type cornerRef struct {
	isUser  bool
	pos     int
	userIdx int
}

type subSimplex []cornerRef

// simplexEntry is one override orthoscheme's triangulation result: its
// base corners (for decode) and the re-encoded sub-simplices it was split
// into.
type simplexEntry struct {
	encoding []int
	base     [][]float64
	subs     [][]int
}

// TriSpace groups floaters sharing one slider set and orthant, and resolves
// a live slider state to each member floater's barycentric activation.
type TriSpace struct {
	floaters   []*combo.Combo
	sliders    []controller.SliderRef
	orthantNeg []bool
	userPoints [][]float64
	epsilon    float64
	simplexMap map[uint64][]simplexEntry
	overrides  [][]int
}

// BuildSpaces partitions floaters into TriSpaces (bucketed by dimension and
// grouped by slider-set-plus-orthant identity, per floater.GroupKey) and
// triangulates each one. Floaters sharing no group key with any peer still
// get a (degenerate, single-member) TriSpace of their own.
func BuildSpaces(floaters []*combo.Combo, opts ...Option) []*TriSpace {
	type group struct {
		key     string
		members []*combo.Combo
	}
	var groups []group
	for _, f := range floaters {
		key := floater.GroupKey(f)
		matched := false
		for i := range groups {
			if groups[i].key == key {
				groups[i].members = append(groups[i].members, f)
				matched = true
				break
			}
		}
		if !matched {
			groups = append(groups, group{key: key, members: []*combo.Combo{f}})
		}
	}

	spaces := make([]*TriSpace, 0, len(groups))
	for _, g := range groups {
		ts := newTriSpace(g.members, opts...)
		ts.build()
		spaces = append(spaces, ts)
	}

	return spaces
}

func newTriSpace(members []*combo.Combo, opts ...Option) *TriSpace {
	n := len(members[0].StateList())
	sliders := make([]controller.SliderRef, n)
	orthantNeg := make([]bool, n)
	for i, se := range members[0].StateList() {
		sliders[i] = se.Slider
		orthantNeg[i] = se.Target < 0
	}

	ts := &TriSpace{
		floaters:   append([]*combo.Combo(nil), members...),
		sliders:    sliders,
		orthantNeg: orthantNeg,
		epsilon:    numeric.Eps,
		simplexMap: make(map[uint64][]simplexEntry),
	}
	for _, opt := range opts {
		opt(ts)
	}
	for _, f := range members {
		ts.userPoints = append(ts.userPoints, floater.Target(f))
	}

	return ts
}

// Floaters returns the member floaters, in group order.
func (ts *TriSpace) Floaters() []*combo.Combo { return ts.floaters }

// OverrideSimplices returns the override orthoschemes (the ones containing
// at least one user point) discovered at build time.
func (ts *TriSpace) OverrideSimplices() [][]int {
	return append([][]int(nil), ts.overrides...)
}

// SimplexMap returns a read-only snapshot of the override-orthoscheme to
// sub-simplex-list mapping, keyed by a human-readable encoding string.
func (ts *TriSpace) SimplexMap() map[string][][]int {
	out := make(map[string][][]int, len(ts.overrides))
	for _, entries := range ts.simplexMap {
		for _, e := range entries {
			out[encodingKey(e.encoding)] = e.subs
		}
	}

	return out
}

// build runs the triangulation procedure once, at Simplex.Build time: for
// every floater target, enumerate its adjacent orthoschemes, bucket user
// points by the orthoscheme they land in, then split each such override
// orthoscheme by every bucketed point via fan triangulation.
func (ts *TriSpace) build() {
	n := len(ts.sliders)
	if n == 0 {
		return
	}

	type bucket struct {
		encoding []int
		userIdxs []int
	}
	var buckets []bucket
	addToBucket := func(enc []int, idx int) {
		for i := range buckets {
			if intsEqual(buckets[i].encoding, enc) {
				buckets[i].userIdxs = append(buckets[i].userIdxs, idx)
				return
			}
		}
		buckets = append(buckets, bucket{encoding: append([]int(nil), enc...), userIdxs: []int{idx}})
	}

	for idx, p := range ts.userPoints {
		for _, enc := range pointToAdjSimp(p, ts.epsilon) {
			addToBucket(enc, idx)
		}
	}

	ts.overrides = make([][]int, 0, len(buckets))
	for _, b := range buckets {
		base := baseCorners(n, b.encoding)
		subs := []subSimplex{identitySub(n)}
		for _, idx := range b.userIdxs {
			subs = splitByPoint(subs, base, ts.userPoints, idx, n, ts.epsilon)
		}

		encs := make([][]int, 0, len(subs))
		for _, s := range subs {
			enc := make([]int, len(s))
			for i, cr := range s {
				if cr.isUser {
					enc[i] = n + 1 + cr.userIdx
				} else {
					enc[i] = b.encoding[i]
				}
			}
			encs = append(encs, enc)
		}

		h := numeric.HashInts(b.encoding)
		ts.simplexMap[h] = append(ts.simplexMap[h], simplexEntry{encoding: b.encoding, base: base, subs: encs})
		ts.overrides = append(ts.overrides, b.encoding)
	}
}

func (ts *TriSpace) lookup(encoding []int) (*simplexEntry, bool) {
	h := numeric.HashInts(encoding)
	entries := ts.simplexMap[h]
	for i := range entries {
		if intsEqual(entries[i].encoding, encoding) {
			return &entries[i], true
		}
	}

	return nil, false
}

// StoreValue resolves the group's current slider state to a containing
// sub-simplex and assigns each member floater's Value to its barycentric
// coordinate, leaving every floater at zero if the orthant disagrees, the
// point lies on a boundary, or no known sub-simplex contains it. It reports
// whether a containing sub-simplex was found, so a caller can tally
// rejections without the package reaching out to a metrics collector itself.
func (ts *TriSpace) StoreValue() bool {
	n := len(ts.sliders)
	if n == 0 {
		return false
	}

	q := make([]float64, n)
	for i, s := range ts.sliders {
		v := s.Value()
		if !numeric.IsZero(v) && (v < 0) != ts.orthantNeg[i] {
			return false
		}
		av := math.Min(math.Abs(v), 1.0)
		if ts.orthantNeg[i] {
			av = -av
		}
		q[i] = av
	}
	for _, v := range q {
		if numeric.IsZero(v) {
			return false
		}
	}

	majorEnc := pointToSimp(q)
	entry, ok := ts.lookup(majorEnc)
	if !ok {
		return false
	}

	for _, sub := range entry.subs {
		corners, floaterIdx := decodeSubSimplex(sub, n, entry.base, ts.userPoints)
		bary, err := barycentric(corners, q)
		if err != nil || !allNonNegative(bary, ts.epsilon) {
			continue
		}
		for i, fi := range floaterIdx {
			if fi >= 0 {
				ts.floaters[fi].SetValue(bary[i])
			}
		}
		return true
	}

	return false
}

// pointToAdjSimp enumerates every orthoscheme encoding whose interior or
// boundary contains p, to tolerance eps, branching on coordinates tied for
// maximum absolute value and double-branching when that maximum is zero
// (within eps).
func pointToAdjSimp(p []float64, eps float64) [][]int {
	n := len(p)
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var results [][]int
	var rec func(prefix []int, remaining []int)
	rec = func(prefix []int, remaining []int) {
		if len(remaining) == 0 {
			enc := make([]int, 0, len(prefix)+1)
			enc = append(enc, 0)
			enc = append(enc, prefix...)
			results = append(results, enc)
			return
		}

		maxAbs := 0.0
		for _, ax := range remaining {
			if v := math.Abs(p[ax]); v > maxAbs {
				maxAbs = v
			}
		}
		var candidates []int
		for _, ax := range remaining {
			if math.Abs(math.Abs(p[ax])-maxAbs) <= eps {
				candidates = append(candidates, ax)
			}
		}

		for _, ax := range candidates {
			next := make([]int, 0, len(remaining)-1)
			for _, r := range remaining {
				if r != ax {
					next = append(next, r)
				}
			}
			if maxAbs <= eps {
				rec(appendInt(prefix, ax+1), next)
				rec(appendInt(prefix, -(ax+1)), next)
			} else {
				sign := 1
				if p[ax] < 0 {
					sign = -1
				}
				rec(appendInt(prefix, sign*(ax+1)), next)
			}
		}
	}
	rec(nil, remaining)

	return results
}

// pointToSimp returns the unique orthoscheme encoding (breaking ties by
// ascending absolute value) whose interior contains p.
func pointToSimp(p []float64) []int {
	n := len(p)
	type axisVal struct {
		axis int
		abs  float64
	}
	axes := make([]axisVal, n)
	for i, v := range p {
		axes[i] = axisVal{axis: i, abs: math.Abs(v)}
	}
	sort.SliceStable(axes, func(i, j int) bool { return axes[i].abs < axes[j].abs })

	enc := make([]int, 0, n+1)
	enc = append(enc, 0)
	for i := n - 1; i >= 0; i-- {
		ax := axes[i].axis
		sign := 1
		if p[ax] < 0 {
			sign = -1
		}
		enc = append(enc, sign*(ax+1))
	}

	return enc
}

// baseCorners expands a pure orthoscheme encoding (no user-point markers)
// into its n+1 corner points in ℝⁿ: a strictly monotonic path of ±1 axis
// flips from the origin.
func baseCorners(n int, encoding []int) [][]float64 {
	corners := make([][]float64, len(encoding))
	cur := make([]float64, n)
	corners[0] = append([]float64(nil), cur...)
	for i := 1; i < len(encoding); i++ {
		s := encoding[i]
		axis := absInt(s) - 1
		if s > 0 {
			cur[axis] = 1
		} else {
			cur[axis] = -1
		}
		corners[i] = append([]float64(nil), cur...)
	}

	return corners
}

// decodeSubSimplex resolves a re-encoded sub-simplex to its corner points
// and, per corner, the floater index it corresponds to (or -1). A position
// is a user-point marker iff its magnitude is ≥ n+1; otherwise it is kept
// at the override orthoscheme's own corner for that position, since
// splitting never relocates an untouched corner.
func decodeSubSimplex(sub []int, n int, base [][]float64, userPoints [][]float64) ([][]float64, []int) {
	corners := make([][]float64, len(sub))
	floaterIdx := make([]int, len(sub))
	for i, s := range sub {
		if absInt(s) >= n+1 {
			idx := absInt(s) - (n + 1)
			corners[i] = userPoints[idx]
			floaterIdx[i] = idx
		} else {
			corners[i] = base[i]
			floaterIdx[i] = -1
		}
	}

	return corners, floaterIdx
}

func identitySub(n int) subSimplex {
	s := make(subSimplex, n+1)
	for i := range s {
		s[i] = cornerRef{pos: i}
	}

	return s
}

func resolveCorners(s subSimplex, base [][]float64, userPoints [][]float64) [][]float64 {
	out := make([][]float64, len(s))
	for i, cr := range s {
		if cr.isUser {
			out[i] = userPoints[cr.userIdx]
		} else {
			out[i] = base[cr.pos]
		}
	}

	return out
}

// splitByPoint applies one round of fan triangulation: every sub-simplex
// whose barycentric coordinates of p are all non-negative is replaced by one
// child per corner with a non-zero barycentric weight (the origin corner
// included), each with that corner swapped for p.
func splitByPoint(subs []subSimplex, base [][]float64, userPoints [][]float64, userIdx, n int, eps float64) []subSimplex {
	p := userPoints[userIdx]
	result := make([]subSimplex, 0, len(subs))
	for _, s := range subs {
		corners := resolveCorners(s, base, userPoints)
		bary, err := barycentric(corners, p)
		if err != nil || !allNonNegative(bary, eps) {
			result = append(result, s)
			continue
		}
		for j := 0; j <= n; j++ {
			if math.Abs(bary[j]) <= eps {
				continue // p lies on the facet opposite corner j
			}
			child := append(subSimplex(nil), s...)
			child[j] = cornerRef{isUser: true, userIdx: userIdx}
			result = append(result, child)
		}
	}

	return result
}

// barycentric solves M·x = b for the barycentric coordinates of p against
// the n+1 corners S, via Householder QR, returning [x0..x_{n-1}, 1-Σx].
func barycentric(corners [][]float64, p []float64) ([]float64, error) {
	n := len(p)
	if len(corners) != n+1 {
		return nil, fmt.Errorf("trispace: %d corners for dimension %d: %w", len(corners), n, ErrDegenerateSimplex)
	}

	last := corners[n]
	M, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("trispace: %w", err)
	}
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		b[i] = p[i] - last[i]
		for j := 0; j < n; j++ {
			if setErr := M.Set(i, j, corners[j][i]-last[i]); setErr != nil {
				return nil, fmt.Errorf("trispace: %w", setErr)
			}
		}
	}

	x, err := ops.Solve(M, b)
	if err != nil {
		return nil, fmt.Errorf("trispace: %w", err)
	}

	sum := 0.0
	for _, xi := range x {
		sum += xi
	}

	return append(x, 1-sum), nil
}

func allNonNegative(vals []float64, eps float64) bool {
	for _, v := range vals {
		if v < -eps {
			return false
		}
	}

	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func appendInt(s []int, v int) []int {
	out := make([]int, len(s)+1)
	copy(out, s)
	out[len(s)] = v

	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func encodingKey(enc []int) string {
	parts := make([]string, len(enc))
	for i, v := range enc {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
