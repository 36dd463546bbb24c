// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng              = nil   (pure/deterministic unless seeded)
//   • coordinatorShare = 4     (a gossip coordinator reaches n/4 peers)
//   • maxAttempts      = 100   (RandomRegular stub-matching retries)

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// coordinatorShare: each gossip coordinator links to n/coordinatorShare peers.
	coordinatorShare int

	// maxAttempts bounds stub-matching reshuffles in RandomRegular.
	maxAttempts int
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultCoordinatorShare = 4
	defaultMaxAttempts      = 100
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:              nil,
		coordinatorShare: defaultCoordinatorShare,
		maxAttempts:      defaultMaxAttempts,
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
