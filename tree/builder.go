package tree

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/genep/ops"
	"github.com/katalvlaran/genep/term"
)

// Method names used as error prefixes.
const (
	methodGenerate  = "Generate"
	methodMutate    = "Mutate"
	methodCrossover = "Crossover"
)

// Builder owns the pseudorandom generator and the term generator, and runs
// every stochastic operation: Generate, Mutate and Crossover.
//
// A Builder is safe for concurrent use: draws are serialized by an internal
// mutex, so results are deterministic for a fixed seed only when calls are
// made in a fixed order. For parallel workers prefer one Builder per worker
// (see Fork).
type Builder[V ops.Number] struct {
	mu    sync.Mutex // serializes draws from cfg.rng
	cfg   config
	terms term.Generator[V]
}

// NewBuilder returns a Builder drawing constants from terms.
// A nil terms selects term.Default[V]().
func NewBuilder[V ops.Number](terms term.Generator[V], opts ...Option) *Builder[V] {
	if terms == nil {
		terms = term.Default[V]()
	}

	return &Builder[V]{cfg: newConfig(opts...), terms: terms}
}

// Fork returns a Builder with the same settings and its own generator, seeded
// from one draw of this Builder's generator mixed with stream. Forking twice
// with the same stream still yields different generators, since each fork
// consumes a draw. Give every worker goroutine its own fork.
func (b *Builder[V]) Fork(stream uint64) *Builder[V] {
	b.mu.Lock()
	defer b.mu.Unlock()

	cfg := b.cfg
	cfg.rng = rngFromSeed(b.cfg.rng.Int63() ^ int64(stream))

	return &Builder[V]{cfg: cfg, terms: b.terms}
}

// MutationDepth returns the configured replacement subtree depth.
func (b *Builder[V]) MutationDepth() int { return b.cfg.mutationDepth }

// Generate grows a random tree of depth ≤ maxDepth whose variables index
// [0, inputSize).
//
// At depth == maxDepth a Constant is forced. Otherwise an Operation is chosen
// with probability p = (maxDepth-1)/maxDepth, where p is fixed by the top-level
// maxDepth for the whole tree; else a terminal, Constant or Variable with
// equal odds. maxDepth == 0 always yields a single Constant. With inputSize
// == 0 every terminal is a Constant.
//
// Complexity: O(N) in the number of generated nodes.
func (b *Builder[V]) Generate(maxDepth, inputSize int) (*Tree[V], error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%s: max depth %d: %w", methodGenerate, maxDepth, ErrNegativeDepth)
	}
	if inputSize < 0 {
		return nil, fmt.Errorf("%s: input size %d: %w", methodGenerate, inputSize, ErrBadInputSize)
	}

	b.mu.Lock()
	root := b.grow(maxDepth, inputSize, 0)
	b.mu.Unlock()

	t := newTree(root, inputSize)
	b.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "tree generated",
		slog.Int("max_depth", maxDepth),
		slog.Int("input_size", inputSize),
		slog.Uint64("tree", t.id),
	)

	return t, nil
}

// grow builds one subtree. Caller holds b.mu.
func (b *Builder[V]) grow(maxDepth, inputSize, depth int) Node[V] {
	rng := b.cfg.rng
	if depth >= maxDepth {
		return &Constant[V]{Value: b.terms.Term(rng)}
	}

	p := float64(maxDepth-1) / float64(maxDepth)
	if rng.Float64() < p {
		op := ops.Random(rng)
		children := make([]Node[V], op.Arity())
		for i := range children {
			children[i] = b.grow(maxDepth, inputSize, depth+1)
		}

		return &Operation[V]{Op: op, Children: children}
	}

	return b.terminal(inputSize)
}

// terminal draws a Constant or a Variable with equal odds. Caller holds b.mu.
func (b *Builder[V]) terminal(inputSize int) Node[V] {
	rng := b.cfg.rng
	if rng.Intn(2) == 0 || inputSize == 0 {
		return &Constant[V]{Value: b.terms.Term(rng)}
	}

	return &Variable[V]{Index: rng.Intn(inputSize)}
}
