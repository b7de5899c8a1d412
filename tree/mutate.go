package tree

import (
	"context"
	"fmt"
	"log/slog"
)

// Mutate replaces one subtree of t, chosen by the configured selection law,
// with a fresh random subtree of depth ≤ MutationDepth() over inputSize
// variables. Selecting the root replaces the whole tree.
//
// inputSize must lie in [0, t.InputSize()] so the new variables keep the
// tree valid; nothing is drawn or edited when it does not.
//
// Lock order: t, then the builder.
func (b *Builder[V]) Mutate(t *Tree[V], inputSize int) error {
	if t == nil {
		return fmt.Errorf("%s: %w", methodMutate, ErrNilTree)
	}
	if inputSize < 0 || inputSize > t.inputSize {
		return fmt.Errorf("%s: input size %d for tree of input size %d: %w",
			methodMutate, inputSize, t.inputSize, ErrBadInputSize)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	loc := b.locate(t)
	replaced := Size(*loc.slot)
	*loc.slot = b.grow(b.cfg.mutationDepth, inputSize, 0)

	b.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "tree mutated",
		slog.Uint64("tree", t.id),
		slog.Int("level", loc.level),
		slog.Int("replaced_nodes", replaced),
		slog.Int("mutation_depth", b.cfg.mutationDepth),
	)

	return nil
}
