package parser_test

import (
	"fmt"

	"github.com/katalvlaran/blendsolve/parser"
)

// ExampleParse builds a minimal version-1 document: two shapes, one linear
// progression between them, and a slider driving it directly.
func ExampleParse() {
	doc := `{
		"shapes": ["Rest", "BrowUp"],
		"progressions": [["brow", [0, 1], [0, 1], "linear"]],
		"sliders": [["Brow", 0]]
	}`

	res, err := parser.Parse([]byte(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(res.Shapes), len(res.Progressions), len(res.Sliders))

	// Output:
	// 2 1 1
}
