package tree

import (
	"context"
	"fmt"
	"log/slog"
)

// Crossover picks one location in x and one in y, independently and in that
// order, and swaps the two subtrees in place. No node is created or
// destroyed. Selecting both roots exchanges the trees' contents.
//
// x and y must be distinct trees with the same input size; otherwise nothing
// is drawn or edited. Both locks are held for the whole swap, taken in
// ascending tree id order, then the builder lock.
func (b *Builder[V]) Crossover(x, y *Tree[V]) error {
	if x == nil || y == nil {
		return fmt.Errorf("%s: %w", methodCrossover, ErrNilTree)
	}
	if x == y {
		return fmt.Errorf("%s: %w", methodCrossover, ErrSameTree)
	}
	if x.inputSize != y.inputSize {
		return fmt.Errorf("%s: input sizes %d and %d: %w",
			methodCrossover, x.inputSize, y.inputSize, ErrInputSizeMismatch)
	}

	first, second := x, y
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	lx := b.locate(x)
	ly := b.locate(y)
	*lx.slot, *ly.slot = *ly.slot, *lx.slot

	b.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "trees crossed",
		slog.Uint64("tree_a", x.id),
		slog.Uint64("tree_b", y.id),
		slog.Int("level_a", lx.level),
		slog.Int("level_b", ly.level),
	)

	return nil
}
