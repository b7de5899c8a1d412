// SPDX-License-Identifier: MIT
// Package: genep/tree
//
// errors.go: sentinel errors for the tree package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Call sites add context with %w ("Value: x3 with 2 bindings: ...").
//   • Structural errors (arity, index, aliasing) mean a corrupted tree. The
//     operation in progress aborts; nothing is retried or repaired.
//   • Numeric outcomes (±Inf, NaN) are values, never errors.

package tree

import (
	"errors"

	"github.com/katalvlaran/genep/ops"
)

// ErrInvalidArity indicates an Operation whose child count differs from its
// operator's arity. It is the same sentinel as ops.ErrInvalidArity, so either
// may be used with errors.Is.
var ErrInvalidArity = ops.ErrInvalidArity

// ErrVariableIndexOutOfRange indicates a Variable index that is negative or
// not below the bindings length (evaluation) or the tree's input size (validation).
var ErrVariableIndexOutOfRange = errors.New("tree: variable index out of range")

// ErrNilNode indicates a nil Node where a subtree is required.
var ErrNilNode = errors.New("tree: nil node")

// ErrUnknownNode indicates a Node implementation outside Constant, Variable and Operation.
var ErrUnknownNode = errors.New("tree: unknown node variant")

// ErrSharedNode indicates a node reachable twice from the root: a shared
// subtree or a cycle. Trees own every node exclusively.
var ErrSharedNode = errors.New("tree: node is shared or cyclic")

// ErrNilTree indicates a nil *Tree argument.
var ErrNilTree = errors.New("tree: nil tree")

// ErrNegativeDepth indicates a negative max depth for generation or mutation.
var ErrNegativeDepth = errors.New("tree: negative depth")

// ErrBadInputSize indicates a negative input size, or a mutation input size
// larger than the tree was generated against.
var ErrBadInputSize = errors.New("tree: invalid input size")

// ErrInputSizeMismatch indicates crossover between trees of different input sizes.
var ErrInputSizeMismatch = errors.New("tree: input size mismatch")

// ErrSameTree indicates crossover of a tree with itself. Swapping a node with
// one of its own descendants would create a cycle.
var ErrSameTree = errors.New("tree: crossover requires two distinct trees")
