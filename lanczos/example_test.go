package lanczos_test

import (
	"fmt"

	"github.com/katalvlaran/reffgrid/builder"
	"github.com/katalvlaran/reffgrid/lanczos"
)

// ExampleRun runs the recurrence between the ends of a two-line path.
func ExampleRun() {
	topo, err := builder.BuildTopology(nil, builder.Path(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := lanczos.Run(topo, lanczos.DefaultSteps(topo), lanczos.UnitSeed("N_0", "N_2"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Len(), res.Truncated)
	fmt.Println(res.Snapshots[1].Support())
	fmt.Printf("%.4f %.4f\n", res.Betas[0], res.Betas[1])
	// Output:
	// 2 true
	// [L_0 L_1]
	// 1.4142 1.0000
}
