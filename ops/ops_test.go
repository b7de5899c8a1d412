package ops_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/genep/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply_Float covers every operator on the float64 domain.
func TestApply_Float(t *testing.T) {
	cases := []struct {
		name string
		op   ops.Operator
		args []float64
		want float64
	}{
		{"add", ops.Add, []float64{3, 4}, 7},
		{"sub", ops.Sub, []float64{3, 4}, -1},
		{"mul", ops.Mul, []float64{3, 4}, 12},
		{"div", ops.Div, []float64{3, 4}, 0.75},
		{"abs", ops.Abs, []float64{-2.5}, 2.5},
		{"sqrt", ops.Sqrt, []float64{16}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ops.Apply(tc.op, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestApply_NonFinite verifies that numeric domain conditions surface as
// IEEE values, not errors.
func TestApply_NonFinite(t *testing.T) {
	got, err := ops.Apply(ops.Div, []float64{5, 0})
	require.NoError(t, err, "division by zero is not an error")
	assert.True(t, math.IsInf(got, 1), "5/0 must be +Inf, got %v", got)

	got, err = ops.Apply(ops.Div, []float64{-5, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1), "-5/0 must be -Inf, got %v", got)

	got, err = ops.Apply(ops.Sqrt, []float64{-1})
	require.NoError(t, err, "sqrt of a negative is not an error")
	assert.True(t, math.IsNaN(got), "sqrt(-1) must be NaN, got %v", got)

	f32, err := ops.Apply(ops.Div, []float32{1, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(f32), 1))
}

// TestApply_Integer checks the protected integer policy.
func TestApply_Integer(t *testing.T) {
	got, err := ops.Apply(ops.Div, []int{7, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, got, "integer division by zero yields 0")

	got, err = ops.Apply(ops.Div, []int{7, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = ops.Apply(ops.Sqrt, []int{-9})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = ops.Apply(ops.Sqrt, []int{17})
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = ops.Apply(ops.Abs, []int{-9})
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	u, err := ops.Apply(ops.Abs, []uint16{9})
	require.NoError(t, err)
	assert.Equal(t, uint16(9), u)

	u, err = ops.Apply(ops.Div, []uint16{9, 0})
	require.NoError(t, err)
	assert.Equal(t, uint16(0), u)
}

// TestApply_InvalidArity ensures argument counts are never truncated or padded.
func TestApply_InvalidArity(t *testing.T) {
	_, err := ops.Apply(ops.Add, []float64{1})
	assert.ErrorIs(t, err, ops.ErrInvalidArity)

	_, err = ops.Apply(ops.Abs, []float64{1, 2})
	assert.ErrorIs(t, err, ops.ErrInvalidArity)

	_, err = ops.Apply[float64](ops.Sqrt, nil)
	assert.ErrorIs(t, err, ops.ErrInvalidArity)

	_, err = ops.Apply(ops.Operator(42), []float64{1})
	assert.ErrorIs(t, err, ops.ErrUnknownOperator)
}

func TestOperator_Metadata(t *testing.T) {
	all := ops.All()
	require.Len(t, all, ops.Count)
	require.Equal(t, 6, ops.Count)

	wantArity := map[ops.Operator]int{
		ops.Add: 2, ops.Sub: 2, ops.Mul: 2, ops.Div: 2, ops.Abs: 1, ops.Sqrt: 1,
	}
	for _, op := range all {
		assert.True(t, op.Valid())
		assert.Equal(t, wantArity[op], op.Arity(), "arity of %s", op)
	}

	bad := ops.Operator(200)
	assert.False(t, bad.Valid())
	assert.Equal(t, 0, bad.Arity())
	assert.Equal(t, "Operator(200)", bad.String())
	assert.Equal(t, "Sqrt", ops.Sqrt.String())
}

func TestLookup(t *testing.T) {
	for _, op := range ops.All() {
		got, err := ops.Lookup(op.Symbol())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	_, err := ops.Lookup("pow")
	assert.ErrorIs(t, err, ops.ErrUnknownOperatorSymbol)
}

func TestRender(t *testing.T) {
	s, err := ops.Render(ops.Add, []string{"2", "x0"})
	require.NoError(t, err)
	assert.Equal(t, "2 + x0", s)

	s, err = ops.Render(ops.Sqrt, []string{"x1 * 3"})
	require.NoError(t, err)
	assert.Equal(t, "sqrt( x1 * 3 )", s)

	_, err = ops.Render(ops.Div, []string{"1"})
	assert.ErrorIs(t, err, ops.ErrInvalidArity)
}

// TestRandom_Uniform checks that every operator is drawn and none dominates.
func TestRandom_Uniform(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const draws = 6000
	counts := make(map[ops.Operator]int)
	for i := 0; i < draws; i++ {
		op := ops.Random(rng)
		require.True(t, op.Valid())
		counts[op]++
	}
	require.Len(t, counts, ops.Count)
	for op, c := range counts {
		assert.InDelta(t, draws/ops.Count, c, 150, "operator %s drawn %d times", op, c)
	}
}

func TestDomainProbes(t *testing.T) {
	assert.True(t, ops.IsFloat[float64]())
	assert.True(t, ops.IsFloat[float32]())
	assert.False(t, ops.IsFloat[int]())
	assert.True(t, ops.IsUnsigned[uint8]())
	assert.False(t, ops.IsUnsigned[int64]())
	assert.False(t, ops.IsUnsigned[float64]())
}

func TestIntBounds(t *testing.T) {
	lo8, hi8, ok := ops.IntBounds[int8]()
	require.True(t, ok)
	assert.Equal(t, int8(math.MinInt8), lo8)
	assert.Equal(t, int8(math.MaxInt8), hi8)

	ulo, uhi, ok := ops.IntBounds[uint16]()
	require.True(t, ok)
	assert.Equal(t, uint16(0), ulo)
	assert.Equal(t, uint16(math.MaxUint16), uhi)

	lo64, hi64, ok := ops.IntBounds[int64]()
	require.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), lo64)
	assert.Equal(t, int64(math.MaxInt64), hi64)

	_, uhi64, ok := ops.IntBounds[uint64]()
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), uhi64)

	_, _, ok = ops.IntBounds[float32]()
	assert.False(t, ok)
}
