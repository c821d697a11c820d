package planarity_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/planarity"
)

func ExampleCheckPlanarity() {
	k5, _ := builder.BuildGraph(nil, nil, builder.Complete(5))
	res, _ := planarity.CheckPlanarity(k5, planarity.WithCounterexample())
	fmt.Println(res.Planar, res.Counterexample.EdgeCount())

	k4, _ := builder.BuildGraph(nil, nil, builder.Complete(4))
	res, _ = planarity.CheckPlanarity(k4)
	fmt.Println(res.Planar, res.Embedding.CheckStructure())
	// Output:
	// false 10
	// true <nil>
}
