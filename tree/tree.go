// File: tree.go
// Role: the Tree container, its lock, and structural queries.
// Concurrency:
//   - mu guards root. Readers take RLock, editors (Mutate, Crossover) take Lock.
//   - inputSize and id never change after construction and are read lock-free.
//   - Crossover locks two trees in ascending id order.

package tree

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/genep/ops"
)

// treeSeq hands out lock-ordering ids.
var treeSeq atomic.Uint64

// Tree exclusively owns one root Node and remembers the input size it was
// built against. Every Variable index is below InputSize().
type Tree[V ops.Number] struct {
	mu        sync.RWMutex // guards root
	root      Node[V]
	inputSize int
	id        uint64
}

// newTree wraps an already valid root.
func newTree[V ops.Number](root Node[V], inputSize int) *Tree[V] {
	return &Tree[V]{root: root, inputSize: inputSize, id: treeSeq.Add(1)}
}

// NewTree takes ownership of root after checking every invariant
// (see Validate). The caller must not keep or reuse references into root.
func NewTree[V ops.Number](root Node[V], inputSize int) (*Tree[V], error) {
	if inputSize < 0 {
		return nil, fmt.Errorf("NewTree: input size %d: %w", inputSize, ErrBadInputSize)
	}
	if err := validate(root, inputSize); err != nil {
		return nil, fmt.Errorf("NewTree: %w", err)
	}

	return newTree(root, inputSize), nil
}

// InputSize returns the number of inputs the tree was built against.
func (t *Tree[V]) InputSize() int { return t.inputSize }

// Root returns the root node. The node is still owned by t: callers may read
// it but must not edit it or keep it across Mutate/Crossover.
func (t *Tree[V]) Root() Node[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root
}

// Depth returns the depth of the root (0 for a single terminal).
func (t *Tree[V]) Depth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Depth(t.root)
}

// Size returns the number of nodes.
func (t *Tree[V]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Size(t.root)
}

// Clone returns a deep copy with its own lock.
func (t *Tree[V]) Clone() *Tree[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return newTree(clone(t.root), t.inputSize)
}

// Validate checks the three structural invariants:
//  1. every Operation has exactly Op.Arity() children and a catalog operator;
//  2. every Variable index lies in [0, InputSize());
//  3. no node is reachable twice (no sharing, no cycles).
//
// Complexity: O(N) time, O(N) space for the visited set.
func (t *Tree[V]) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return validate(t.root, t.inputSize)
}

func validate[V ops.Number](root Node[V], inputSize int) error {
	seen := make(map[Node[V]]struct{})

	var walk func(n Node[V], path string) error
	walk = func(n Node[V], path string) error {
		if isNil(n) {
			return fmt.Errorf("Validate: %s: %w", path, ErrNilNode)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("Validate: %s: %w", path, ErrSharedNode)
		}
		seen[n] = struct{}{}

		switch n := n.(type) {
		case *Constant[V]:
			return nil
		case *Variable[V]:
			if n.Index < 0 || n.Index >= inputSize {
				return fmt.Errorf("Validate: %s: %s with input size %d: %w",
					path, n.Name(), inputSize, ErrVariableIndexOutOfRange)
			}

			return nil
		case *Operation[V]:
			if !n.Op.Valid() {
				return fmt.Errorf("Validate: %s: %w", path, ops.ErrUnknownOperator)
			}
			if len(n.Children) != n.Op.Arity() {
				return fmt.Errorf("Validate: %s: %s has %d children, want %d: %w",
					path, n.Op, len(n.Children), n.Op.Arity(), ErrInvalidArity)
			}
			for i, c := range n.Children {
				if err := walk(c, fmt.Sprintf("%s/%d", path, i)); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("Validate: %s: %T: %w", path, n, ErrUnknownNode)
	}

	return walk(root, "root")
}
