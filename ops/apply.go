package ops

import (
	"fmt"
	"math"
)

// Apply evaluates op over args.
//
// Contract:
//   - len(args) must equal op.Arity(), else ErrInvalidArity.
//   - Floating domains return ±Inf/NaN for division by zero and square roots
//     of negatives; no error is raised.
//   - Integer domains return 0 in those two cases.
//
// Complexity: O(1).
func Apply[V Number](op Operator, args []V) (V, error) {
	var zero V
	if !op.Valid() {
		return zero, fmt.Errorf("Apply(%s): %w", op, ErrUnknownOperator)
	}
	if len(args) != op.Arity() {
		return zero, fmt.Errorf("Apply(%s): got %d operands, want %d: %w",
			op, len(args), op.Arity(), ErrInvalidArity)
	}

	switch op {
	case Add:
		return args[0] + args[1], nil
	case Sub:
		return args[0] - args[1], nil
	case Mul:
		return args[0] * args[1], nil
	case Div:
		return div(args[0], args[1]), nil
	case Abs:
		return abs(args[0]), nil
	case Sqrt:
		return sqrt(args[0]), nil
	}

	// Unreachable while the switch covers every catalog entry.
	return zero, fmt.Errorf("Apply(%s): %w", op, ErrUnknownOperator)
}

// IsFloat reports whether V is a floating-point domain.
func IsFloat[V Number]() bool {
	half := 0.5

	return V(half) != 0
}

// IsUnsigned reports whether V is an unsigned integer domain.
func IsUnsigned[V Number]() bool {
	var zero V
	one := V(1)

	return zero-one > zero
}

// IntBounds returns the smallest and largest values of an integer domain V.
// ok is false for floating domains.
func IntBounds[V Number]() (lo, hi V, ok bool) {
	if IsFloat[V]() {
		return 0, 0, false
	}

	// Double until the next step wraps: m ends at the top power of two below max.
	m := V(1)
	for m*2 > m {
		m *= 2
	}
	hi = m + (m - 1)
	if IsUnsigned[V]() {
		return 0, hi, true
	}

	return -hi - 1, hi, true
}

func div[V Number](a, b V) V {
	if b == 0 && !IsFloat[V]() {
		return 0
	}

	return a / b
}

func abs[V Number](a V) V {
	if IsFloat[V]() {
		return V(math.Abs(float64(a)))
	}
	if a < 0 {
		return -a
	}

	return a
}

func sqrt[V Number](a V) V {
	if IsFloat[V]() {
		return V(math.Sqrt(float64(a)))
	}
	if a < 0 {
		return 0
	}

	return V(math.Sqrt(float64(a)))
}
