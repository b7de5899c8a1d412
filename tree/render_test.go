package tree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/genep/ops"
	"github.com/katalvlaran/genep/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpression_Sample(t *testing.T) {
	s, err := sample(t).Expression()
	require.NoError(t, err)
	assert.Equal(t, "2 + x0", s)
}

func TestExpression_Nested(t *testing.T) {
	c := tree.NewConstant[float64]
	root := mustOp(t, ops.Mul,
		mustOp(t, ops.Sqrt, mustVar(t, 1)),
		mustOp(t, ops.Sub, c(0.5), mustOp(t, ops.Abs, mustVar(t, 0))),
	)
	tr, err := tree.NewTree[float64](root, 2)
	require.NoError(t, err)

	s, err := tr.Expression()
	require.NoError(t, err)
	assert.Equal(t, "sqrt( x1 ) * 0.5 - abs( x0 )", s)
}

func TestExpression_Terminals(t *testing.T) {
	s, err := tree.Expression[float64](tree.NewConstant(-3.25))
	require.NoError(t, err)
	assert.Equal(t, "-3.25", s)

	s, err = tree.Expression[float64](mustVar(t, 12))
	require.NoError(t, err)
	assert.Equal(t, "x12", s)
}

func TestDump(t *testing.T) {
	c := tree.NewConstant[float64]
	root := mustOp(t, ops.Add, c(2), mustOp(t, ops.Abs, mustVar(t, 0)))
	tr, err := tree.NewTree[float64](root, 1)
	require.NoError(t, err)

	cases := []struct {
		name   string
		indent int
		want   string
	}{
		{"default", tree.DefaultIndent, "+\n" +
			"    const: 2\n" +
			"    abs\n" +
			"        var: x0\n"},
		{"two", 2, "+\n" +
			"  const: 2\n" +
			"  abs\n" +
			"    var: x0\n"},
		{"flat", 0, "+\nconst: 2\nabs\nvar: x0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tr.Dump(tc.indent)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Dump(%d) mismatch (-want +got):\n%s", tc.indent, diff)
			}
		})
	}

	assert.Equal(t, cases[0].want, tr.String())
}

func TestRender_Corrupted(t *testing.T) {
	tr := sample(t)
	op := tr.Root().(*tree.Operation[float64])
	op.Children = append(op.Children, tree.NewConstant(1.0))

	_, err := tr.Expression()
	assert.ErrorIs(t, err, tree.ErrInvalidArity)

	_, err = tr.Dump(4)
	assert.ErrorIs(t, err, tree.ErrInvalidArity)

	assert.Contains(t, tr.String(), "<invalid tree:")
}
