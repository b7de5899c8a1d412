// SPDX-License-Identifier: MIT
// Package: genep/tree
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = rand.New(rand.NewSource(DefaultSeed))
//   • mutationDepth = DefaultMutationDepth
//   • selection     = SelectWalk
//   • logger        = slog over io.Discard

package tree

import (
	"io"
	"log/slog"
	"math/rand"
)

// DefaultSeed is used when no generator is configured, or when seed 0 is given.
const DefaultSeed int64 = 1

// DefaultMutationDepth is the max depth of subtrees grown by Mutate.
const DefaultMutationDepth = 4

// DefaultIndent is the number of spaces per level in String/Dump.
const DefaultIndent = 4

type config struct {
	rng           *rand.Rand
	mutationDepth int
	selection     Selection
	logger        *slog.Logger
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		mutationDepth: DefaultMutationDepth,
		selection:     SelectWalk,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolved after options so that WithSeed/WithRand never pay for an unused default.
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(DefaultSeed)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return cfg
}

// rngFromSeed returns a deterministic generator; seed 0 means DefaultSeed.
// *rand.Rand is not goroutine-safe: each Builder owns its own.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
