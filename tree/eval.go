package tree

import (
	"fmt"

	"github.com/katalvlaran/genep/ops"
)

// Value evaluates t against bindings, where bindings[i] is the value of x<i>.
//
// Evaluation is pure: no randomness, no edits. Non-finite results
// (±Inf, NaN) are ordinary return values. Errors mean a corrupted tree:
//   - ErrVariableIndexOutOfRange: a variable index ≥ len(bindings);
//   - ErrInvalidArity:            an operation with the wrong child count.
func (t *Tree[V]) Value(bindings []V) (V, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Eval(t.root, bindings)
}

// Eval evaluates the subtree rooted at n. Children are evaluated left to
// right before the operator is applied.
func Eval[V ops.Number](n Node[V], bindings []V) (V, error) {
	var zero V
	if isNil(n) {
		return zero, fmt.Errorf("Value: %w", ErrNilNode)
	}

	switch n := n.(type) {
	case *Constant[V]:
		return n.Value, nil
	case *Variable[V]:
		if n.Index < 0 || n.Index >= len(bindings) {
			return zero, fmt.Errorf("Value: %s with %d bindings: %w",
				n.Name(), len(bindings), ErrVariableIndexOutOfRange)
		}

		return bindings[n.Index], nil
	case *Operation[V]:
		if len(n.Children) != n.Op.Arity() {
			return zero, fmt.Errorf("Value: %s has %d children, want %d: %w",
				n.Op, len(n.Children), n.Op.Arity(), ErrInvalidArity)
		}
		args := make([]V, len(n.Children))
		for i, c := range n.Children {
			v, err := Eval(c, bindings)
			if err != nil {
				return zero, err
			}
			args[i] = v
		}

		return ops.Apply(n.Op, args)
	}

	return zero, fmt.Errorf("Value: %T: %w", n, ErrUnknownNode)
}
