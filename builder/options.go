// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Entropy is a capability: seeding is done via WithSeed or WithRand.
//     WithEntropy exists for interactive/demo use only.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic builders
	"time"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEntropy seeds a fresh RNG from the wall clock. Two calls yield
// structurally different random graphs. Intended for demos and the CLI
// only; tests must use WithSeed.
func WithEntropy() BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// WithCoordinatorShare sets how widely a Gossip coordinator fans out:
// each coordinator links to n/share peers. Panics if share < 1.
func WithCoordinatorShare(share int) BuilderOption {
	if share < 1 {
		panic("builder: WithCoordinatorShare(share<1)")
	}
	return func(c *builderConfig) {
		c.coordinatorShare = share
	}
}

// WithMaxAttempts bounds RandomRegular reshuffles. Panics if attempts < 1.
func WithMaxAttempts(attempts int) BuilderOption {
	if attempts < 1 {
		panic("builder: WithMaxAttempts(attempts<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = attempts
	}
}
