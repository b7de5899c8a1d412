package tree_test

import (
	"testing"

	"github.com/katalvlaran/genep/ops"
	"github.com/katalvlaran/genep/tree"
	"github.com/stretchr/testify/require"
)

// variables returns every variable index reachable from n.
func variables[V ops.Number](n tree.Node[V]) []int {
	switch n := n.(type) {
	case *tree.Variable[V]:
		return []int{n.Index}
	case *tree.Operation[V]:
		var out []int
		for _, c := range n.Children {
			out = append(out, variables(c)...)
		}
		return out
	}
	return nil
}

// sample builds Add(Constant(2), Variable(0)) over one input.
func sample(t *testing.T) *tree.Tree[float64] {
	t.Helper()
	x0, err := tree.NewVariable[float64](0)
	require.NoError(t, err)
	root, err := tree.NewOperation[float64](ops.Add, tree.NewConstant(2.0), x0)
	require.NoError(t, err)
	tr, err := tree.NewTree[float64](root, 1)
	require.NoError(t, err)
	return tr
}

// mustOp builds an operation or fails the test.
func mustOp(t *testing.T, op ops.Operator, children ...tree.Node[float64]) *tree.Operation[float64] {
	t.Helper()
	n, err := tree.NewOperation(op, children...)
	require.NoError(t, err)
	return n
}

// mustVar builds a variable or fails the test.
func mustVar(t *testing.T, i int) *tree.Variable[float64] {
	t.Helper()
	v, err := tree.NewVariable[float64](i)
	require.NoError(t, err)
	return v
}

// balanced builds Add(Add(1,2), Add(3,4)): depth 2, seven nodes.
func balanced(t *testing.T) *tree.Tree[float64] {
	t.Helper()
	c := tree.NewConstant[float64]
	root := mustOp(t, ops.Add,
		mustOp(t, ops.Add, c(1), c(2)),
		mustOp(t, ops.Add, c(3), c(4)),
	)
	tr, err := tree.NewTree[float64](root, 0)
	require.NoError(t, err)
	return tr
}
