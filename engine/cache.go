package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/casegen/model"
	"github.com/katalvlaran/casegen/resolver"
)

// PlanCache remembers generation orders by variable-set fingerprint, so
// repeated requests over the same definitions skip dependency resolution.
// It is safe for concurrent use. Cycles are never cached.
type PlanCache struct {
	orders *lru.Cache[string, []string]
}

// NewPlanCache returns a cache holding up to size orders.
func NewPlanCache(size int) (*PlanCache, error) {
	c, err := lru.New[string, []string](size)
	if err != nil {
		return nil, errors.Wrap(err, "engine: plan cache")
	}
	return &PlanCache{orders: c}, nil
}

// Len returns the number of cached orders.
func (pc *PlanCache) Len() int { return pc.orders.Len() }

// Purge drops every cached order.
func (pc *PlanCache) Purge() { pc.orders.Purge() }

// Order returns resolver.Order(vars), served from the cache when vars was
// seen before.
func (pc *PlanCache) Order(ctx context.Context, vars []model.Variable) ([]model.Variable, error) {
	key, keyed := fingerprint(vars)
	if keyed {
		if ids, ok := pc.orders.Get(key); ok {
			return byIDs(vars, ids), nil
		}
	}

	ordered, err := resolver.Order(vars, resolver.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if keyed {
		ids := make([]string, len(ordered))
		for i, v := range ordered {
			ids[i] = v.ID
		}
		pc.orders.Add(key, ids)
	}

	return ordered, nil
}

// fingerprint hashes the JSON form of vars. ok is false if vars cannot be
// encoded.
func fingerprint(vars []model.Variable) (key string, ok bool) {
	b, err := json.Marshal(vars)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), true
}

func byIDs(vars []model.Variable, ids []string) []model.Variable {
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		if _, dup := index[v.ID]; !dup {
			index[v.ID] = i
		}
	}
	out := make([]model.Variable, len(ids))
	for i, id := range ids {
		out[i] = vars[index[id]]
	}
	return out
}
