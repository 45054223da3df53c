package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/reffgrid/builder"
)

// ExampleGrid builds the 3×3 synthetic network and prints its size.
func ExampleGrid() {
	topo, err := builder.BuildTopology(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st := topo.Stats()
	fmt.Println(st.Terminals, st.Connectors, st.Edges)
	// Output: 9 12 24
}

// ExampleDecodeSpec ingests a normalized YAML description.
func ExampleDecodeSpec() {
	doc := `
terminals:
  - {id: A, x: 0, y: 0}
  - {id: B, x: 4, y: 0}
connectors:
  - {id: AB, a: A, b: B, conductance: 9}
`
	s, err := builder.DecodeSpec(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	topo, err := builder.BuildTopology(nil, builder.FromSpec(s))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sa, _ := topo.Sign("A", "AB")
	sb, _ := topo.Sign("B", "AB")
	l, _ := topo.Connector("AB")
	fmt.Println(sa, sb, l.Pos.X)
	// Output: 3 -3 2
}
