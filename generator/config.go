// SPDX-License-Identifier: MIT
// Package: casegen/generator
//
// config.go - resolved generator settings and named defaults.

package generator

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// config is resolved once by New and never changes afterwards.
type config struct {
	rng      *rand.Rand
	logger   *zap.Logger
	testcase int
}

// Defaults applied when a bound is absent.
const (
	defaultScalarMin = int64(1)
	defaultScalarMax = int64(100)

	defaultMinSize    = int64(1)
	defaultMaxSize    = int64(10)
	defaultLinkedSize = int64(5)

	defaultElementMin = int64(1)
	defaultElementMax = int64(100)

	defaultLinkedMatrixSize = int64(3)
	defaultCellMin          = int64(0)
	defaultCellMax          = int64(100)

	defaultMinTreeNodes = int64(3)
	defaultMaxTreeNodes = int64(10)
	defaultNodeValueMin = int64(1)
	defaultNodeValueMax = int64(100)
	defaultMaxChildren  = int64(3)

	defaultMinGraphNodes = int64(3)
	defaultMaxGraphNodes = int64(8)
	defaultMinWeight     = int64(1)
	defaultMaxWeight     = int64(100)
)

// Limits that keep a single value bounded in time and memory.
const (
	maxSize              = int64(1) << 22 // elements, characters, nodes
	maxCells             = int64(1) << 22 // matrix cells
	maxParentArraySlots  = int64(1) << 20
	maxEdges             = int64(1) << 22
	distinctRetries      = 32
	sparseMinFill        = 0.1
	sparseFillSpread     = 0.2
	edgeRejectionFactor  = 4 // rejection attempts per wanted edge
	edgeEnumerateDensity = 0.5
)

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
