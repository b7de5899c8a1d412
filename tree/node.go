package tree

import (
	"fmt"

	"github.com/katalvlaran/genep/ops"
)

// Kind tags the three node variants.
type Kind uint8

const (
	// KindConstant marks a literal terminal.
	KindConstant Kind = iota
	// KindVariable marks an input reference terminal.
	KindVariable
	// KindOperation marks an operator with children.
	KindOperation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "const"
	case KindVariable:
		return "var"
	case KindOperation:
		return "op"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is the closed variant Constant | Variable | Operation.
//
// The unexported method seals the set: only the three types in this package
// implement Node, and the V parameter keeps domains apart (a *Constant[int]
// is not a Node[float64]). Every consumer in this package switches over the
// three concrete types and treats anything else as ErrUnknownNode.
type Node[V ops.Number] interface {
	Kind() Kind
	sealed(V)
}

// Constant is a literal terminal.
type Constant[V ops.Number] struct {
	Value V
}

// Variable references bindings[Index] at evaluation time.
type Variable[V ops.Number] struct {
	Index int
}

// Operation applies Op to its children, in order.
// Invariant: len(Children) == Op.Arity().
type Operation[V ops.Number] struct {
	Op       ops.Operator
	Children []Node[V]
}

// Kind implements Node.
func (*Constant[V]) Kind() Kind { return KindConstant }

// Kind implements Node.
func (*Variable[V]) Kind() Kind { return KindVariable }

// Kind implements Node.
func (*Operation[V]) Kind() Kind { return KindOperation }

func (*Constant[V]) sealed(V)  {}
func (*Variable[V]) sealed(V)  {}
func (*Operation[V]) sealed(V) {}

// Name returns the display name of the variable ("x0", "x1", ...).
func (v *Variable[V]) Name() string {
	return VariableName(v.Index)
}

// VariableName renders an input index as "x" + index.
func VariableName(index int) string {
	return fmt.Sprintf("x%d", index)
}

// NewConstant returns a Constant leaf.
func NewConstant[V ops.Number](v V) *Constant[V] {
	return &Constant[V]{Value: v}
}

// NewVariable returns a Variable leaf. A negative index is rejected.
func NewVariable[V ops.Number](index int) (*Variable[V], error) {
	if index < 0 {
		return nil, fmt.Errorf("NewVariable(%d): %w", index, ErrVariableIndexOutOfRange)
	}

	return &Variable[V]{Index: index}, nil
}

// NewOperation returns an Operation after checking the operator and arity.
// The children slice is copied; the nodes themselves are taken over.
func NewOperation[V ops.Number](op ops.Operator, children ...Node[V]) (*Operation[V], error) {
	if !op.Valid() {
		return nil, fmt.Errorf("NewOperation(%s): %w", op, ops.ErrUnknownOperator)
	}
	if len(children) != op.Arity() {
		return nil, fmt.Errorf("NewOperation(%s): got %d children, want %d: %w",
			op, len(children), op.Arity(), ErrInvalidArity)
	}
	for i, c := range children {
		if isNil(c) {
			return nil, fmt.Errorf("NewOperation(%s): child %d: %w", op, i, ErrNilNode)
		}
	}

	return &Operation[V]{Op: op, Children: append([]Node[V](nil), children...)}, nil
}

// isNil reports whether n is a nil interface or a nil pointer to one of
// the three variants.
func isNil[V ops.Number](n Node[V]) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Constant[V]:
		return n == nil
	case *Variable[V]:
		return n == nil
	case *Operation[V]:
		return n == nil
	}

	return false
}

// Depth returns 0 for terminals and 1 + max child depth for operations.
// A nil node has depth 0.
func Depth[V ops.Number](n Node[V]) int {
	op, ok := n.(*Operation[V])
	if !ok || op == nil {
		return 0
	}

	deepest := 0
	for _, c := range op.Children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}

	return 1 + deepest
}

// Size counts the nodes of the subtree rooted at n.
func Size[V ops.Number](n Node[V]) int {
	if isNil(n) {
		return 0
	}

	switch n := n.(type) {
	case *Operation[V]:
		total := 1
		for _, c := range n.Children {
			total += Size(c)
		}

		return total
	default:
		return 1
	}
}

// Equal reports structural equality. NaN constants compare equal to each other.
func Equal[V ops.Number](a, b Node[V]) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	switch a := a.(type) {
	case *Constant[V]:
		bc, ok := b.(*Constant[V])
		if !ok {
			return false
		}

		return a.Value == bc.Value || (a.Value != a.Value && bc.Value != bc.Value)
	case *Variable[V]:
		bv, ok := b.(*Variable[V])

		return ok && a.Index == bv.Index
	case *Operation[V]:
		bo, ok := b.(*Operation[V])
		if !ok || a.Op != bo.Op || len(a.Children) != len(bo.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], bo.Children[i]) {
				return false
			}
		}

		return true
	}

	return false
}

// clone deep-copies the subtree rooted at n.
func clone[V ops.Number](n Node[V]) Node[V] {
	if isNil(n) {
		return nil
	}

	switch n := n.(type) {
	case *Constant[V]:
		return &Constant[V]{Value: n.Value}
	case *Variable[V]:
		return &Variable[V]{Index: n.Index}
	case *Operation[V]:
		children := make([]Node[V], len(n.Children))
		for i, c := range n.Children {
			children[i] = clone(c)
		}

		return &Operation[V]{Op: n.Op, Children: children}
	}

	return nil
}
