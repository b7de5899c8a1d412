// Package tree is the expression-tree engine for genetic programming:
// node representation, random construction, evaluation, rendering, depth,
// and the two structural operators, mutation and crossover.
//
// 🚀 What is a tree?
//
//	A Tree owns one root Node, a closed variant of exactly three types:
//	  • *Constant[V]  - a literal terminal
//	  • *Variable[V]  - x<i>, read from the bindings at evaluation time
//	  • *Operation[V] - an ops.Operator with exactly Arity() children
//
//	Invariants held by every Tree built here:
//	  1. len(op.Children) == op.Op.Arity()
//	  2. 0 ≤ variable index < InputSize()
//	  3. every node is owned by exactly one parent (no sharing, no cycles)
//
// ✨ Operations:
//
//   - Builder.Generate(maxDepth, inputSize) - stochastic recursive growth.
//   - Tree.Value(bindings)                  - pure evaluation; ±Inf/NaN are values.
//   - Tree.Expression() / Tree.Dump(indent) - one-line and structural rendering.
//   - Tree.Depth()                          - 0 for a terminal, 1+max(children).
//   - Tree.SelectAnywhere(rng)              - depth-biased subtree walk.
//   - Builder.Mutate(t, inputSize)          - replace a subtree with a fresh one.
//   - Builder.Crossover(a, b)               - swap two subtrees across trees.
//
// ⚙️ Usage:
//
//	b := tree.NewBuilder[float64](nil, tree.WithSeed(42))
//	t, err := b.Generate(5, 2)       // depth ≤ 5, variables x0 and x1
//	y, err := t.Value([]float64{1, 2})
//	s, err := t.Expression()
//	err = b.Mutate(t, 2)
//
// Randomness:
//
//	Every draw comes from the Builder's own *rand.Rand (WithSeed/WithRand).
//	There is no package-level generator. A fixed seed and a fixed call order
//	give a fixed result; Fork derives independent streams for workers.
//
// Concurrency:
//
//	Each Tree carries a RWMutex: reads (Value, Expression, Dump, Depth, Size,
//	Clone, Validate) share it, Mutate holds it exclusively, Crossover holds
//	both trees' locks in a stable order. A Builder serializes its own draws.
//
// Errors:
//
//	ErrInvalidArity            - operation child count ≠ arity (corrupted tree).
//	ErrVariableIndexOutOfRange - variable index outside the bindings/input size.
//	ErrSharedNode              - a node reachable twice (validation).
//	ErrNegativeDepth, ErrBadInputSize, ErrInputSizeMismatch,
//	ErrSameTree, ErrNilTree, ErrNilNode, ErrUnknownNode.
package tree
