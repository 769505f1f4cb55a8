package engine

import (
	"time"

	"go.uber.org/zap"
)

// Defaults.
const (
	DefaultWorkers  = 4
	DefaultMaxCount = 10000
)

// Option configures Generate.
type Option func(*config)

type config struct {
	seed     int64
	seeded   bool
	workers  int
	maxCount int
	logger   *zap.Logger
	cache    *PlanCache
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers:  DefaultWorkers,
		maxCount: DefaultMaxCount,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = time.Now().UnixNano()
	}

	return cfg
}

// WithSeed fixes the master seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed, c.seeded = seed, true
	}
}

// WithWorkers bounds the number of testcases generated concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("engine: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithMaxCount sets the largest accepted count. Panics if n < 1.
func WithMaxCount(n int) Option {
	if n < 1 {
		panic("engine: WithMaxCount(n<1)")
	}
	return func(c *config) { c.maxCount = n }
}

// WithLogger sets the logger passed down to generators and the formatter.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithPlanCache reuses generation orders across calls. A nil cache
// disables caching.
func WithPlanCache(pc *PlanCache) Option {
	return func(c *config) { c.cache = pc }
}
