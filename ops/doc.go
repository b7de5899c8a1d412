// Package ops is the fixed arithmetic operator catalog used by expression trees.
//
// 🚀 What is in the catalog?
//
//	Six operators, closed and exhaustive:
//	  • Add  (+)    arity 2, rendered "a + b"
//	  • Sub  (-)    arity 2, rendered "a - b"
//	  • Mul  (*)    arity 2, rendered "a * b"
//	  • Div  (/)    arity 2, rendered "a / b"
//	  • Abs  (abs)  arity 1, rendered "abs( a )"
//	  • Sqrt (sqrt) arity 1, rendered "sqrt( a )"
//
// ✨ Numeric policy:
//
//   - Floating domains follow IEEE-754: 5/0 is +Inf and sqrt(-1) is NaN.
//     These are valid results, never errors.
//   - Integer domains have no non-finite values. Div by zero yields 0 and
//     Sqrt of a negative yields 0.
//
// Errors:
//
//	ErrInvalidArity          - argument count differs from the operator's arity.
//	ErrUnknownOperatorSymbol - Lookup got a symbol outside the catalog.
//	ErrUnknownOperator       - an Operator value outside the catalog.
//
// ⚙️ Usage:
//
//	v, err := ops.Apply(ops.Add, []float64{3, 4}) // 7, nil
//	s, err := ops.Render(ops.Abs, []string{"x0"}) // "abs( x0 )", nil
//	op := ops.Random(rng)                        // uniform over the six
package ops
