package individual_test

import (
	"fmt"

	"github.com/katalvlaran/genep/individual"
	"github.com/katalvlaran/genep/ops"
	"github.com/katalvlaran/genep/tree"
)

// ExampleIndividual_Value evaluates a two-output individual.
func ExampleIndividual_Value() {
	x0, _ := tree.NewVariable[float64](0)
	sq, _ := tree.NewOperation[float64](ops.Sqrt, x0)
	t0, _ := tree.NewTree[float64](sq, 1)
	t1, _ := tree.NewTree[float64](tree.NewConstant(-1.5), 1)

	ind, _ := individual.New(t0, t1)
	out, _ := ind.Value([]float64{16})
	exprs, _ := ind.Expressions()
	fmt.Println(out)
	fmt.Println(exprs)
	// Output:
	// [4 -1.5]
	// [expr] sqrt( x0 )
	// [expr] -1.5
}
