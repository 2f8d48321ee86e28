package parser

import (
	"encoding/json"
	"strings"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/controller"
	"github.com/katalvlaran/blendsolve/simplexerr"
	"github.com/katalvlaran/blendsolve/slider"
	"github.com/katalvlaran/blendsolve/traversal"
)

// parseTraversals dispatches to the legacy (single progress/multiplier
// controller) schema for encodingVersion < 3 and the current (start/end
// endpoint) schema for encodingVersion >= 3. Traversals predate neither
// format in a way that splits cleanly at version 1 vs 2, so both share the
// legacy reader below version 3.
func parseTraversals(raw []json.RawMessage, version int, numProgs int, sliders []*slider.Slider, combos []*combo.Combo) ([]*traversal.Traversal, error) {
	traversals := make([]*traversal.Traversal, len(raw))
	for i, r := range raw {
		var t *traversal.Traversal
		var err error
		if version >= 3 {
			t, err = parseTraversalCurrent(r, i, sliders, combos)
		} else {
			t, err = parseTraversalLegacy(r, i, sliders, combos)
		}
		if err != nil {
			return nil, err
		}
		if t.ProgIndex() < 0 || t.ProgIndex() >= numProgs {
			return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "traversals[%d]: progression index %d out of range", i, t.ProgIndex())
		}
		traversals[i] = t
	}

	return traversals, nil
}

func endpointFor(kind string, idx int, sliders []*slider.Slider, combos []*combo.Combo) (controller.Endpoint, error) {
	if strings.HasPrefix(strings.ToUpper(kind), "S") {
		if idx < 0 || idx >= len(sliders) {
			return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "slider index %d out of range", idx)
		}

		return sliders[idx], nil
	}
	if idx < 0 || idx >= len(combos) {
		return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "combo index %d out of range", idx)
	}

	return combos[idx], nil
}

func parseTraversalLegacy(r json.RawMessage, i int, sliders []*slider.Slider, combos []*combo.Combo) (*traversal.Traversal, error) {
	var obj struct {
		Name              string `json:"name"`
		Prog              int    `json:"prog"`
		ProgressType      string `json:"progressType"`
		ProgressControl   int    `json:"progressControl"`
		ProgressFlip      bool   `json:"progressFlip"`
		MultiplierType    string `json:"multiplierType"`
		MultiplierControl int    `json:"multiplierControl"`
		MultiplierFlip    bool   `json:"multiplierFlip"`
		SolveType         string `json:"solveType"`
		Enabled           *bool  `json:"enabled"`
	}
	if err := json.Unmarshal(r, &obj); err != nil {
		return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "traversals[%d]: malformed legacy traversal", i)
	}

	progressCtrl, err := endpointFor(obj.ProgressType, obj.ProgressControl, sliders, combos)
	if err != nil {
		return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "traversals[%d]: progressControl: %v", i, err)
	}
	multiplierCtrl, err := endpointFor(obj.MultiplierType, obj.MultiplierControl, sliders, combos)
	if err != nil {
		return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "traversals[%d]: multiplierControl: %v", i, err)
	}
	solveType, err := parseSolveType(obj.SolveType)
	if err != nil {
		return nil, err
	}
	enabled := true
	if obj.Enabled != nil {
		enabled = *obj.Enabled
	}

	return traversal.NewLegacy(obj.Name, i, obj.Prog, progressCtrl, multiplierCtrl, obj.ProgressFlip, obj.MultiplierFlip, solveType, enabled), nil
}

func parseTraversalCurrent(r json.RawMessage, i int, sliders []*slider.Slider, combos []*combo.Combo) (*traversal.Traversal, error) {
	var obj struct {
		Name      string       `json:"name"`
		Prog      int          `json:"prog"`
		Start     [][2]float64 `json:"start"`
		End       [][2]float64 `json:"end"`
		SolveType string       `json:"solveType"`
		Enabled   *bool        `json:"enabled"`
	}
	if err := json.Unmarshal(r, &obj); err != nil {
		return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "traversals[%d]: malformed traversal", i)
	}
	start, err := resolvePairs(obj.Start, sliders, i)
	if err != nil {
		return nil, err
	}
	end, err := resolvePairs(obj.End, sliders, i)
	if err != nil {
		return nil, err
	}
	solveType, err := parseSolveType(obj.SolveType)
	if err != nil {
		return nil, err
	}
	enabled := true
	if obj.Enabled != nil {
		enabled = *obj.Enabled
	}

	return traversal.NewFromEndpoints(obj.Name, i, obj.Prog, start, end, solveType, enabled), nil
}
