// SPDX-License-Identifier: MIT
// Package: genep/tree
//
// options.go: functional options for Builder.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Builder methods themselves never panic.
//   • Determinism is explicit: seeding goes through WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package tree

import (
	"log/slog"
	"math/rand"
)

// Option customizes a Builder before first use.
type Option func(*config)

// Selection chooses how Mutate and Crossover pick a subtree.
type Selection uint8

const (
	// SelectWalk is the depth-biased random walk: stop with probability 1/D at
	// every step, where D is the whole tree's depth. Favours nodes near the root.
	SelectWalk Selection = iota
	// SelectUniform enumerates every node and picks one uniformly.
	SelectUniform
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case SelectWalk:
		return "walk"
	case SelectUniform:
		return "uniform"
	}

	return "unknown"
}

// WithRand provides the generator used for every draw. The Builder takes it
// over; do not use it elsewhere concurrently. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tree: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic generator. Seed 0 maps to DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithMutationDepth sets the max depth of replacement subtrees built by Mutate.
// Panics if depth < 0.
func WithMutationDepth(depth int) Option {
	if depth < 0 {
		panic("tree: WithMutationDepth(depth<0)")
	}
	return func(c *config) {
		c.mutationDepth = depth
	}
}

// WithSelection picks the subtree selection law. Panics on unknown values.
func WithSelection(s Selection) Option {
	if s != SelectWalk && s != SelectUniform {
		panic("tree: WithSelection(unknown)")
	}
	return func(c *config) {
		c.selection = s
	}
}

// WithLogger sets the structured logger. Builder logs at Debug level only.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tree: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
