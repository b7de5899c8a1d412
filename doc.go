// Package genep evolves small numeric expression trees toward a target
// function by genetic programming.
//
// 🚀 What is in genep?
//
//	A compact, deterministic engine for tree-shaped programs:
//		• Operator catalog: + - * / abs sqrt, with IEEE non-finite policy
//		• Term generators: log-scale random constants per value domain
//		• Trees: random growth, evaluation, rendering, depth
//		• Genetic operators: subtree mutation and crossover
//		• Individuals: one tree per output dimension
//
// ✨ Why genep?
//
//   - Explicit randomness – every draw comes from a generator you own
//   - Closed node variant – Constant | Variable | Operation, checked invariants
//   - Per-tree locks – safe to evaluate and edit trees from many goroutines
//   - Generic – float, signed and unsigned value domains
//
// Packages:
//
//	ops/        operator catalog and the Number constraint
//	term/       random terminal generators
//	tree/       Node, Tree, Builder (Generate, Mutate, Crossover), rendering
//	individual/ multi-output candidate solutions
//	cmd/genep/  command-line playground
//
// Quick example:
//
//	b := tree.NewBuilder[float64](nil, tree.WithSeed(7))
//	t, _ := b.Generate(4, 2)
//	s, _ := t.Expression()   // e.g. "x0 * abs( x1 ) - 12.5"
//	v, _ := t.Value([]float64{3, -1})
//
//	go get github.com/katalvlaran/genep
package genep
