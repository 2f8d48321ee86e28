package parser

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/simplexerr"
	"github.com/katalvlaran/blendsolve/slider"
)

func parseSolveType(s string) (combo.SolveType, error) {
	switch strings.ToLower(s) {
	case "", "min", "none":
		return combo.Min, nil
	case "allmul":
		return combo.AllMul, nil
	case "extmul":
		return combo.ExtMul, nil
	case "mulavgext":
		return combo.MulAvgExt, nil
	case "mulavgall":
		return combo.MulAvgAll, nil
	default:
		return 0, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "unknown solveType %q", s)
	}
}

// isFloater derives the implicit floater flag: a combo is a floater iff at
// least one of its pairs targets a magnitude that is neither 0 nor 1 — the
// marker of an arbitrary interior point rather than a corner conjunction.
func isFloater(pairs []controller.StateEntry) bool {
	for _, p := range pairs {
		m := math.Abs(p.Target)
		if m != 0 && m != 1 {
			return true
		}
	}

	return false
}

func parseCombos(raw []json.RawMessage, version int, numProgs int, sliders []*slider.Slider) ([]*combo.Combo, error) {
	combos := make([]*combo.Combo, len(raw))
	for i, r := range raw {
		name, prog, pairs, solveType, enabled, err := comboFields(r, version, i, sliders)
		if err != nil {
			return nil, err
		}
		if prog < 0 || prog >= numProgs {
			return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combos[%d]: progression index %d out of range", i, prog)
		}
		combos[i] = combo.New(name, i, prog, pairs, isFloater(pairs), solveType, enabled)
	}

	return combos, nil
}

func comboFields(r json.RawMessage, version, i int, sliders []*slider.Slider) (string, int, []controller.StateEntry, combo.SolveType, bool, error) {
	if version == 1 {
		var arr []json.RawMessage
		if err := json.Unmarshal(r, &arr); err != nil || len(arr) < 3 {
			return "", 0, nil, 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combos[%d]: expected [name, progIdx, pairs]", i)
		}
		var name string
		var prog int
		var rawPairs [][2]float64
		if err := json.Unmarshal(arr[0], &name); err != nil {
			return "", 0, nil, 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combos[%d]: name must be a string", i)
		}
		if err := json.Unmarshal(arr[1], &prog); err != nil {
			return "", 0, nil, 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combos[%d]: progIdx must be an int", i)
		}
		if err := json.Unmarshal(arr[2], &rawPairs); err != nil {
			return "", 0, nil, 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combos[%d]: pairs must be a [sliderIdx, value] array", i)
		}
		pairs, err := resolvePairs(rawPairs, sliders, i)
		if err != nil {
			return "", 0, nil, 0, false, err
		}

		return name, prog, pairs, combo.Min, true, nil
	}

	var obj struct {
		Name      string       `json:"name"`
		Prog      int          `json:"prog"`
		Pairs     [][2]float64 `json:"pairs"`
		SolveType string       `json:"solveType"`
		Enabled   *bool        `json:"enabled"`
	}
	if err := json.Unmarshal(r, &obj); err != nil {
		return "", 0, nil, 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combos[%d]: expected {name, prog, pairs, solveType?, enabled?}", i)
	}
	pairs, err := resolvePairs(obj.Pairs, sliders, i)
	if err != nil {
		return "", 0, nil, 0, false, err
	}
	solveType, err := parseSolveType(obj.SolveType)
	if err != nil {
		return "", 0, nil, 0, false, err
	}
	enabled := true
	if obj.Enabled != nil {
		enabled = *obj.Enabled
	}

	return obj.Name, obj.Prog, pairs, solveType, enabled, nil
}

func resolvePairs(raw [][2]float64, sliders []*slider.Slider, i int) ([]controller.StateEntry, error) {
	entries := make([]controller.StateEntry, len(raw))
	for k, pr := range raw {
		idx := int(pr[0])
		if idx < 0 || idx >= len(sliders) {
			return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combos[%d]: slider index %d out of range", i, idx)
		}
		entries[k] = controller.StateEntry{Slider: sliders[idx], Target: pr[1]}
	}

	return entries, nil
}
