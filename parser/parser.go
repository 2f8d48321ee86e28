// Package parser builds a Simplex's in-memory entities from a JSON
// definition document, dispatching per-section to one of three
// backward-compatible schema versions (encodingVersion 1, 2, 3). A
// successful Parse never mutates its input and never panics: any
// structural or referential problem is reported as a *simplexerr.ParseError
// naming the failing section and, where derivable, the byte offset.
package parser

import (
	"encoding/json"
	"errors"

	"github.com/katalvlaran/blendsolve/combo"
	"github.com/katalvlaran/blendsolve/progression"
	"github.com/katalvlaran/blendsolve/shape"
	"github.com/katalvlaran/blendsolve/simplexerr"
	"github.com/katalvlaran/blendsolve/slider"
	"github.com/katalvlaran/blendsolve/traversal"
)

// Result is the fully constructed, cross-referenced entity set a successful
// Parse produces. Every index embedded in a Combo, Slider, or Traversal
// already points within these slices.
type Result struct {
	Shapes       []shape.Shape
	Progressions []*progression.Progression
	Sliders      []*slider.Slider
	Combos       []*combo.Combo
	Traversals   []*traversal.Traversal
}

type rootDoc struct {
	EncodingVersion *int              `json:"encodingVersion"`
	Shapes          []json.RawMessage `json:"shapes"`
	Progressions    []json.RawMessage `json:"progressions"`
	Sliders         []json.RawMessage `json:"sliders"`
	Combos          []json.RawMessage `json:"combos"`
	Traversals      []json.RawMessage `json:"traversals"`
}

// DetectVersion peeks a document's encodingVersion without a full parse,
// returning the schema-version default of 1 when the field is absent.
func DetectVersion(raw []byte) (int, error) {
	var peek struct {
		EncodingVersion *int `json:"encodingVersion"`
	}
	if err := json.Unmarshal(raw, &peek); err != nil {
		return 0, simplexerr.New(simplexerr.ErrMalformedDocument, jsonOffset(err), "invalid JSON: %v", err)
	}
	if peek.EncodingVersion == nil {
		return 1, nil
	}

	return *peek.EncodingVersion, nil
}

// Parse builds a Result from a definition document. On any structural or
// referential-integrity failure it returns a *simplexerr.ParseError and a
// nil Result; the caller (simplex.Simplex) leaves its container cleared.
func Parse(raw []byte) (*Result, error) {
	var root rootDoc
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, simplexerr.New(simplexerr.ErrMalformedDocument, jsonOffset(err), "invalid JSON: %v", err)
	}

	version := 1
	if root.EncodingVersion != nil {
		version = *root.EncodingVersion
	}
	if version < 1 || version > 3 {
		return nil, simplexerr.New(simplexerr.ErrUnsupportedEncoding, 0, "unsupported encodingVersion %d", version)
	}
	if root.Shapes == nil || root.Progressions == nil || root.Sliders == nil {
		return nil, simplexerr.New(simplexerr.ErrSchemaViolation, 0, "document missing a required shapes/progressions/sliders array")
	}

	shapes, err := parseShapes(root.Shapes, version)
	if err != nil {
		return nil, err
	}
	progs, err := parseProgressions(root.Progressions, version, len(shapes))
	if err != nil {
		return nil, err
	}
	sliders, err := parseSliders(root.Sliders, version, len(progs))
	if err != nil {
		return nil, err
	}
	combos, err := parseCombos(root.Combos, version, len(progs), sliders)
	if err != nil {
		return nil, err
	}
	traversals, err := parseTraversals(root.Traversals, version, len(progs), sliders, combos)
	if err != nil {
		return nil, err
	}

	return &Result{
		Shapes:       shapes,
		Progressions: progs,
		Sliders:      sliders,
		Combos:       combos,
		Traversals:   traversals,
	}, nil
}

// jsonOffset extracts the byte offset from a json.SyntaxError, or 0 when
// the error carries none (schema-level violations have no natural offset
// in a DOM-style parse and are reported at offset 0).
func jsonOffset(err error) uint64 {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return uint64(syn.Offset)
	}

	return 0
}
