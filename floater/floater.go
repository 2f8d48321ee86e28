// Package floater supplies the grouping key a TriSpace uses to partition
// floaters into triangulated subspaces. A floater is not a distinct Go type:
// it is a *combo.Combo* constructed with IsFloater set, whose value is later
// assigned by its enclosing trispace.TriSpace instead of its own StoreValue.
package floater

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/blendsolve/combo"
)

// GroupKey returns the identity a TriSpace groups floaters by: the ordered
// set of slider indices the floater's stateList references, plus the
// orthant (per-slider sign of its targets). Two floaters with the same key
// belong in the same TriSpace; the dimension (len(stateList)) is implied.
// StateList is already sorted by slider index (combo.New's invariant), so
// the key is order-sensitive without needing an extra sort here.
func GroupKey(c *combo.Combo) string {
	entries := c.StateList()
	parts := make([]string, 0, len(entries))
	for _, se := range entries {
		sign := "+"
		if se.Target < 0 {
			sign = "-"
		}
		parts = append(parts, strconv.Itoa(se.Slider.SliderIndex())+sign)
	}

	return strings.Join(parts, "|")
}

// Target returns the floater's target point: the ordered target values from
// its stateList, the coordinates a TriSpace keys userPoints by.
func Target(c *combo.Combo) []float64 {
	entries := c.StateList()
	pt := make([]float64, len(entries))
	for i, se := range entries {
		pt[i] = se.Target
	}

	return pt
}
