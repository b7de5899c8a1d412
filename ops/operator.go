package ops

import (
	"fmt"
	"math/rand"
)

// Valid reports whether op belongs to the catalog.
func (op Operator) Valid() bool {
	return op < numOperators
}

// Arity returns the number of operands op consumes, or 0 for an invalid operator.
func (op Operator) Arity() int {
	if !op.Valid() {
		return 0
	}

	return catalog[op].arity
}

// Symbol returns the display symbol ("+", "abs", ...).
func (op Operator) Symbol() string {
	if !op.Valid() {
		return "?"
	}

	return catalog[op].symbol
}

// String implements fmt.Stringer.
func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operator(%d)", uint8(op))
	}

	return catalog[op].name
}

// All returns the catalog in declaration order. The slice is freshly allocated.
func All() []Operator {
	out := make([]Operator, 0, Count)
	for op := Add; op < numOperators; op++ {
		out = append(out, op)
	}

	return out
}

// Lookup maps a display symbol back to its operator.
func Lookup(symbol string) (Operator, error) {
	for op := Add; op < numOperators; op++ {
		if catalog[op].symbol == symbol {
			return op, nil
		}
	}

	return 0, fmt.Errorf("Lookup(%q): %w", symbol, ErrUnknownOperatorSymbol)
}

// Random draws an operator uniformly from the catalog.
// rng must be non-nil; the caller owns it and must not share it across goroutines.
func Random(rng *rand.Rand) Operator {
	return Operator(rng.Intn(Count))
}

// Render applies op's infix (binary) or prefix (unary) rule to already
// rendered operands. It does not add parentheses.
func Render(op Operator, children []string) (string, error) {
	if !op.Valid() {
		return "", fmt.Errorf("Render(%s): %w", op, ErrUnknownOperator)
	}
	if len(children) != op.Arity() {
		return "", fmt.Errorf("Render(%s): got %d operands, want %d: %w",
			op, len(children), op.Arity(), ErrInvalidArity)
	}

	if op.Arity() == Unary {
		return op.Symbol() + "( " + children[0] + " )", nil
	}

	return children[0] + " " + op.Symbol() + " " + children[1], nil
}
