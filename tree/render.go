package tree

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/genep/ops"
)

// Expression renders t on one line: constants print their value, variables
// their name, operators apply their infix/prefix rule to the rendered
// children. No parentheses are inserted.
//
//	Operation(Add, [Constant(2), Variable(0)]) → "2 + x0"
func (t *Tree[V]) Expression() (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Expression(t.root)
}

// Expression renders the subtree rooted at n (see Tree.Expression).
func Expression[V ops.Number](n Node[V]) (string, error) {
	if isNil(n) {
		return "", fmt.Errorf("Expression: %w", ErrNilNode)
	}

	switch n := n.(type) {
	case *Constant[V]:
		return fmt.Sprint(n.Value), nil
	case *Variable[V]:
		return n.Name(), nil
	case *Operation[V]:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			s, err := Expression(c)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}

		return ops.Render(n.Op, parts)
	}

	return "", fmt.Errorf("Expression: %T: %w", n, ErrUnknownNode)
}

// Dump renders t one node per line, each level indented by indent spaces:
//
//	+
//	    const: 2
//	    var: x0
//
// Every line ends with '\n'. A negative indent is treated as 0.
func (t *Tree[V]) Dump(indent int) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if indent < 0 {
		indent = 0
	}
	var sb strings.Builder
	if err := dump(&sb, t.root, 0, indent); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// String implements fmt.Stringer with DefaultIndent. A corrupted tree
// renders as "<invalid tree: ...>".
func (t *Tree[V]) String() string {
	s, err := t.Dump(DefaultIndent)
	if err != nil {
		return "<invalid tree: " + err.Error() + ">"
	}

	return s
}

func dump[V ops.Number](sb *strings.Builder, n Node[V], level, indent int) error {
	if isNil(n) {
		return fmt.Errorf("Dump: %w", ErrNilNode)
	}
	pad := strings.Repeat(" ", level*indent)

	switch n := n.(type) {
	case *Constant[V]:
		fmt.Fprintf(sb, "%sconst: %v\n", pad, n.Value)

		return nil
	case *Variable[V]:
		fmt.Fprintf(sb, "%svar: %s\n", pad, n.Name())

		return nil
	case *Operation[V]:
		if len(n.Children) != n.Op.Arity() {
			return fmt.Errorf("Dump: %s has %d children, want %d: %w",
				n.Op, len(n.Children), n.Op.Arity(), ErrInvalidArity)
		}
		sb.WriteString(pad)
		sb.WriteString(n.Op.Symbol())
		sb.WriteByte('\n')
		for _, c := range n.Children {
			if err := dump(sb, c, level+1, indent); err != nil {
				return err
			}
		}

		return nil
	}

	return fmt.Errorf("Dump: %T: %w", n, ErrUnknownNode)
}
