package individual

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/genep/ops"
	"github.com/katalvlaran/genep/tree"
)

// DefaultDepth is the max depth used for freshly generated trees.
const DefaultDepth = 5

// Line prefixes used by Expressions and String.
const (
	exprPrefix = "[expr] "
	treeHeader = "[tree]\n"
)

// Individual is an ordered set of trees sharing one input size.
type Individual[V ops.Number] struct {
	trees     []*tree.Tree[V]
	inputSize int
}

// New groups existing trees. All trees must share the same input size.
// The individual takes ownership of the trees.
func New[V ops.Number](trees ...*tree.Tree[V]) (*Individual[V], error) {
	if len(trees) == 0 {
		return nil, ErrNoTrees
	}
	for i, t := range trees {
		if t == nil {
			return nil, fmt.Errorf("New: tree %d: %w", i, tree.ErrNilTree)
		}
		if t.InputSize() != trees[0].InputSize() {
			return nil, fmt.Errorf("New: tree %d has input size %d, tree 0 has %d: %w",
				i, t.InputSize(), trees[0].InputSize(), ErrInputSize)
		}
	}

	return &Individual[V]{
		trees:     append([]*tree.Tree[V](nil), trees...),
		inputSize: trees[0].InputSize(),
	}, nil
}

// Generate grows outputSize random trees of depth ≤ depth over inputSize inputs.
func Generate[V ops.Number](b *tree.Builder[V], inputSize, outputSize, depth int) (*Individual[V], error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if outputSize < 1 {
		return nil, fmt.Errorf("Generate: output size %d: %w", outputSize, ErrNoTrees)
	}

	trees := make([]*tree.Tree[V], outputSize)
	for i := range trees {
		t, err := b.Generate(depth, inputSize)
		if err != nil {
			return nil, fmt.Errorf("Generate: output %d: %w", i, err)
		}
		trees[i] = t
	}

	return &Individual[V]{trees: trees, inputSize: inputSize}, nil
}

// InputSize returns the expected input vector length.
func (ind *Individual[V]) InputSize() int { return ind.inputSize }

// OutputSize returns the number of trees.
func (ind *Individual[V]) OutputSize() int { return len(ind.trees) }

// Tree returns the tree for output j.
func (ind *Individual[V]) Tree(j int) *tree.Tree[V] { return ind.trees[j] }

// Value evaluates every tree on inputs. Non-finite outputs are returned as is.
func (ind *Individual[V]) Value(inputs []V) ([]V, error) {
	if len(inputs) != ind.inputSize {
		return nil, fmt.Errorf("Value: got %d inputs, want %d: %w",
			len(inputs), ind.inputSize, ErrInputSize)
	}

	out := make([]V, len(ind.trees))
	for j, t := range ind.trees {
		v, err := t.Value(inputs)
		if err != nil {
			return nil, fmt.Errorf("Value: output %d: %w", j, err)
		}
		out[j] = v
	}

	return out, nil
}

// Expressions renders one "[expr] <expression>" line per tree.
func (ind *Individual[V]) Expressions() (string, error) {
	lines := make([]string, len(ind.trees))
	for j, t := range ind.trees {
		s, err := t.Expression()
		if err != nil {
			return "", fmt.Errorf("Expressions: output %d: %w", j, err)
		}
		lines[j] = exprPrefix + s
	}

	return strings.Join(lines, "\n"), nil
}

// String renders a "[tree]" header followed by the structural dump of each tree.
func (ind *Individual[V]) String() string {
	blocks := make([]string, len(ind.trees))
	for j, t := range ind.trees {
		blocks[j] = treeHeader + t.String()
	}

	return strings.Join(blocks, "\n")
}

// Mutate mutates every tree once, in output order.
func (ind *Individual[V]) Mutate(b *tree.Builder[V]) error {
	if b == nil {
		return ErrNilBuilder
	}
	for j, t := range ind.trees {
		if err := b.Mutate(t, ind.inputSize); err != nil {
			return fmt.Errorf("Mutate: output %d: %w", j, err)
		}
	}

	return nil
}

// Clone deep-copies every tree.
func (ind *Individual[V]) Clone() *Individual[V] {
	trees := make([]*tree.Tree[V], len(ind.trees))
	for j, t := range ind.trees {
		trees[j] = t.Clone()
	}

	return &Individual[V]{trees: trees, inputSize: ind.inputSize}
}

// Crossover crosses tree j of ind with tree j of other, for every output j.
// Both individuals must have the same shape, and no pair may hold the same
// tree twice. Every pair is checked before the first swap, so a rejected
// call leaves both individuals untouched.
func (ind *Individual[V]) Crossover(b *tree.Builder[V], other *Individual[V]) error {
	if b == nil {
		return ErrNilBuilder
	}
	if other == nil {
		return fmt.Errorf("Crossover: %w", ErrNilIndividual)
	}
	if other == ind {
		return fmt.Errorf("Crossover: %w", tree.ErrSameTree)
	}
	if len(other.trees) != len(ind.trees) {
		return fmt.Errorf("Crossover: %d outputs vs %d: %w",
			len(ind.trees), len(other.trees), ErrOutputSize)
	}
	if other.inputSize != ind.inputSize {
		return fmt.Errorf("Crossover: input sizes %d and %d: %w",
			ind.inputSize, other.inputSize, ErrInputSize)
	}
	for j := range ind.trees {
		if ind.trees[j] == other.trees[j] {
			return fmt.Errorf("Crossover: output %d: %w", j, tree.ErrSameTree)
		}
	}

	for j := range ind.trees {
		if err := b.Crossover(ind.trees[j], other.trees[j]); err != nil {
			return fmt.Errorf("Crossover: output %d: %w", j, err)
		}
	}

	return nil
}
