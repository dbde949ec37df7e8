package provedge_test

import (
	"fmt"

	"github.com/zijistark/libck2/core"
	"github.com/zijistark/libck2/provedge"
	"github.com/zijistark/libck2/provmap"
)

// ExampleTrace traces the borders of a tiny three-province map.
// Scenario:
//
//   - Province 1 fills the left column, province 2 the rest.
//   - The bottom-left corner belongs to province 3.
//
// Each border becomes one maximal polyline; edges appear in the order
// the scan first finished a segment of them.
func ExampleTrace() {
	g, _ := provmap.FromRows([][]core.ProvID{
		{1, 2, 2},
		{1, 2, 2},
		{3, 2, 2},
	})

	set, _ := provedge.Trace(g)
	for _, e := range set.Edges() {
		fmt.Println(e.Relation(), e.Knots())
	}

	// Output:
	// (1, 3) [(0, 2) (1, 2)]
	// (1, 2) [(1, 0) (1, 2)]
	// (2, 3) [(1, 2) (1, 3)]
}
