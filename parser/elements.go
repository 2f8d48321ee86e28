package parser

import (
	"encoding/json"
	"strings"

	"github.com/katalvlaran/blendsolve/progression"
	"github.com/katalvlaran/blendsolve/shape"
	"github.com/katalvlaran/blendsolve/simplexerr"
	"github.com/katalvlaran/blendsolve/slider"
)

func parseShapes(raw []json.RawMessage, version int) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, len(raw))
	for i, r := range raw {
		name, err := shapeName(r, version, i)
		if err != nil {
			return nil, err
		}
		shapes[i] = shape.New(name, shape.Index(i))
	}

	return shapes, nil
}

func shapeName(r json.RawMessage, version, i int) (string, error) {
	if version == 1 {
		var name string
		if err := json.Unmarshal(r, &name); err != nil {
			return "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "shapes[%d]: expected a string", i)
		}

		return name, nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(r, &obj); err != nil {
		return "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "shapes[%d]: expected {name}", i)
	}
	if obj.Name == "" {
		return "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "shapes[%d]: name must not be empty", i)
	}

	return obj.Name, nil
}

func parseInterp(s string) (progression.Interp, error) {
	switch strings.ToLower(s) {
	case "", "spline":
		return progression.Spline, nil
	case "linear":
		return progression.Linear, nil
	case "splitspline":
		return progression.SplitSpline, nil
	default:
		return 0, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "unknown interp %q", s)
	}
}

func parseProgressions(raw []json.RawMessage, version int, numShapes int) ([]*progression.Progression, error) {
	progs := make([]*progression.Progression, len(raw))
	for i, r := range raw {
		name, pairs, interpStr, err := progFields(r, version, i)
		if err != nil {
			return nil, err
		}
		interp, err := parseInterp(interpStr)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			if int(p.Shape) < 0 || int(p.Shape) >= numShapes {
				return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: shape index %d out of range", i, p.Shape)
			}
		}
		prog, err := progression.New(name, interp, pairs)
		if err != nil {
			return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: %v", i, err)
		}
		progs[i] = prog
	}

	return progs, nil
}

func progFields(r json.RawMessage, version, i int) (string, []progression.Pair, string, error) {
	if version == 1 {
		var arr []json.RawMessage
		if err := json.Unmarshal(r, &arr); err != nil || len(arr) < 3 {
			return "", nil, "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: expected [name, shapeIdxs, params, interp?]", i)
		}
		var name string
		var shapeIdxs []int
		var params []float64
		if err := json.Unmarshal(arr[0], &name); err != nil {
			return "", nil, "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: name must be a string", i)
		}
		if err := json.Unmarshal(arr[1], &shapeIdxs); err != nil {
			return "", nil, "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: shape indices must be an int array", i)
		}
		if err := json.Unmarshal(arr[2], &params); err != nil {
			return "", nil, "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: params must be a float array", i)
		}
		if len(shapeIdxs) != len(params) {
			return "", nil, "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: shape/param length mismatch", i)
		}
		interpStr := ""
		if len(arr) >= 4 {
			_ = json.Unmarshal(arr[3], &interpStr)
		}
		pairs := make([]progression.Pair, len(shapeIdxs))
		for k, si := range shapeIdxs {
			pairs[k] = progression.Pair{Shape: shape.Index(si), Param: params[k]}
		}

		return name, pairs, interpStr, nil
	}

	var obj struct {
		Name   string       `json:"name"`
		Pairs  [][2]float64 `json:"pairs"`
		Interp string       `json:"interp"`
	}
	if err := json.Unmarshal(r, &obj); err != nil {
		return "", nil, "", simplexerr.New(simplexerr.ErrSchemaViolation, 0, "progressions[%d]: expected {name, pairs, interp?}", i)
	}
	pairs := make([]progression.Pair, len(obj.Pairs))
	for k, pr := range obj.Pairs {
		pairs[k] = progression.Pair{Shape: shape.Index(int(pr[0])), Param: pr[1]}
	}

	return obj.Name, pairs, obj.Interp, nil
}

func parseSliders(raw []json.RawMessage, version int, numProgs int) ([]*slider.Slider, error) {
	sliders := make([]*slider.Slider, len(raw))
	for i, r := range raw {
		name, prog, enabled, err := sliderFields(r, version, i)
		if err != nil {
			return nil, err
		}
		if prog < 0 || prog >= numProgs {
			return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "sliders[%d]: progression index %d out of range", i, prog)
		}
		sliders[i] = slider.New(name, i, prog, enabled)
	}

	return sliders, nil
}

func sliderFields(r json.RawMessage, version, i int) (string, int, bool, error) {
	if version == 1 {
		var arr []json.RawMessage
		if err := json.Unmarshal(r, &arr); err != nil || len(arr) < 2 {
			return "", 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "sliders[%d]: expected [name, progIdx]", i)
		}
		var name string
		var prog int
		if err := json.Unmarshal(arr[0], &name); err != nil {
			return "", 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "sliders[%d]: name must be a string", i)
		}
		if err := json.Unmarshal(arr[1], &prog); err != nil {
			return "", 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "sliders[%d]: progIdx must be an int", i)
		}

		return name, prog, true, nil
	}

	var obj struct {
		Name    string `json:"name"`
		Prog    int    `json:"prog"`
		Enabled *bool  `json:"enabled"`
	}
	if err := json.Unmarshal(r, &obj); err != nil {
		return "", 0, false, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "sliders[%d]: expected {name, prog, enabled?}", i)
	}
	enabled := true
	if obj.Enabled != nil {
		enabled = *obj.Enabled
	}

	return obj.Name, obj.Prog, enabled, nil
}
