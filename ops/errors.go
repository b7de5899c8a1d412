package ops

import "errors"

// Sentinel errors for the operator catalog.
// Callers MUST branch with errors.Is; messages are part of the public contract.
var (
	// ErrInvalidArity indicates that an operator received a number of arguments
	// (values or rendered children) different from its declared arity.
	// It always signals a corrupted tree, never a user error.
	ErrInvalidArity = errors.New("ops: invalid arity")

	// ErrUnknownOperatorSymbol indicates that Lookup was given a symbol outside
	// the fixed catalog.
	ErrUnknownOperatorSymbol = errors.New("ops: unknown operator symbol")

	// ErrUnknownOperator indicates an Operator value outside [Add, Sqrt].
	ErrUnknownOperator = errors.New("ops: unknown operator")
)
