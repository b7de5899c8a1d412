package tree_test

import (
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/genep/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	assert.Panics(t, func() { tree.WithRand(nil) })
	assert.Panics(t, func() { tree.WithMutationDepth(-1) })
	assert.Panics(t, func() { tree.WithSelection(tree.Selection(9)) })
	assert.Panics(t, func() { tree.WithLogger(nil) })
}

func TestOptions_Defaults(t *testing.T) {
	b := tree.NewBuilder[float64](nil)
	assert.Equal(t, tree.DefaultMutationDepth, b.MutationDepth())

	// The default generator is seeded with DefaultSeed: same as seed 0 and 1.
	ta, err := b.Generate(5, 2)
	require.NoError(t, err)
	tb, err := tree.NewBuilder[float64](nil, tree.WithSeed(0)).Generate(5, 2)
	require.NoError(t, err)
	tc, err := tree.NewBuilder[float64](nil, tree.WithRand(rand.New(rand.NewSource(tree.DefaultSeed)))).Generate(5, 2)
	require.NoError(t, err)
	assert.True(t, tree.Equal(ta.Root(), tb.Root()))
	assert.True(t, tree.Equal(ta.Root(), tc.Root()))
}

func TestOptions_LastWins(t *testing.T) {
	b := tree.NewBuilder[float64](nil, tree.WithMutationDepth(1), tree.WithMutationDepth(6))
	assert.Equal(t, 6, b.MutationDepth())
	assert.Equal(t, "walk", tree.SelectWalk.String())
	assert.Equal(t, "uniform", tree.SelectUniform.String())
	assert.Equal(t, "unknown", tree.Selection(5).String())
}

// TestWithLogger captures the Debug records emitted by the builder.
func TestWithLogger(t *testing.T) {
	var sb strings.Builder
	logger := slog.New(slog.NewTextHandler(&sb, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := tree.NewBuilder[float64](nil, tree.WithSeed(7), tree.WithLogger(logger))

	x, err := b.Generate(3, 1)
	require.NoError(t, err)
	y, err := b.Generate(3, 1)
	require.NoError(t, err)
	require.NoError(t, b.Mutate(x, 1))
	require.NoError(t, b.Crossover(x, y))

	out := sb.String()
	assert.Contains(t, out, "tree generated")
	assert.Contains(t, out, "tree mutated")
	assert.Contains(t, out, "trees crossed")
	assert.Contains(t, out, "max_depth=3")
}

func TestFork_Deterministic(t *testing.T) {
	expr := func(stream uint64) string {
		b := tree.NewBuilder[float64](nil, tree.WithRand(rand.New(rand.NewSource(10))))
		tr, err := b.Fork(stream).Generate(5, 2)
		require.NoError(t, err)
		s, err := tr.Expression()
		require.NoError(t, err)

		return s
	}
	assert.Equal(t, expr(3), expr(3), "same parent seed and stream must agree")
}
