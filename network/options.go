// SPDX-License-Identifier: MIT
// Package: zagreb/network
//
// options.go — functional options for Build.

package network

import "github.com/katalvlaran/zagreb/connectivity"

// Default report knobs.
const (
	DefaultMaxListed = 5
	DefaultMaxLadder = 5
)

// Average-degree band outside which a recommendation is emitted.
const (
	MinHealthyDegree = 4.0
	MaxHealthyDegree = 8.0
)

type options struct {
	mode      connectivity.Mode
	maxListed int
	maxLadder int
}

// Option configures Build.
type Option func(*options)

func defaultOptions() options {
	return options{
		mode:      connectivity.ModeApprox,
		maxListed: DefaultMaxListed,
		maxLadder: DefaultMaxLadder,
	}
}

// WithMode selects the connectivity mode for the analysis and the ladder.
func WithMode(m connectivity.Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithMaxListed caps the low-connectivity and bottleneck lists.
// Panics if n < 1.
func WithMaxListed(n int) Option {
	if n < 1 {
		panic("network: WithMaxListed(n<1)")
	}
	return func(o *options) { o.maxListed = n }
}

// WithMaxLadder sets the highest k probed by the connectivity ladder.
// Panics if k < 2: the redundancy check needs the k = 2 probe.
func WithMaxLadder(k int) Option {
	if k < 2 {
		panic("network: WithMaxLadder(k<2)")
	}
	return func(o *options) { o.maxLadder = k }
}
