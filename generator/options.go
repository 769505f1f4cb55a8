// SPDX-License-Identifier: MIT
// Package: casegen/generator
//
// options.go - functional options for New.
//
// Option constructors validate their input and panic on nil; generation
// itself never panics.

package generator

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a Generator.
type Option func(*config)

// WithSeed seeds a private *rand.Rand. Use it in tests and replays.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. r must not be shared with another
// goroutine while the Generator runs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger sets the logger fallbacks are reported to. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithTestcase sets the testcase index stamped on diagnostics and log
// entries.
func WithTestcase(i int) Option {
	return func(c *config) {
		c.testcase = i
	}
}
