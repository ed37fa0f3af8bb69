// SPDX-License-Identifier: MIT
// Package: outedges/edgestore
//
// options.go - functional options for Store.
//
// Contract:
//   • Option constructors PANIC on nil inputs; Store methods never panic.
//   • Defaults: parallel.Default strategy, zap.NewNop() logger.

package edgestore

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/outedges/parallel"
)

// Option customizes a Store at construction time.
type Option func(*storeConfig)

// storeConfig aggregates all Store knobs. Resolved once in New.
type storeConfig struct {
	strategy parallel.Strategy
	log      *zap.Logger
}

// newStoreConfig applies opts over the defaults, last one wins.
func newStoreConfig(opts ...Option) storeConfig {
	cfg := storeConfig{
		strategy: parallel.Default,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrategy sets the execution strategy used by Discover.
// Panics on nil.
func WithStrategy(s parallel.Strategy) Option {
	if s == nil {
		panic("edgestore: WithStrategy(nil)")
	}
	return func(c *storeConfig) {
		c.strategy = s
	}
}

// WithLogger sets the logger used by Discover. Panics on nil; pass
// zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("edgestore: WithLogger(nil)")
	}
	return func(c *storeConfig) {
		c.log = l
	}
}
