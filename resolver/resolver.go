package resolver

import (
	"context"

	"github.com/katalvlaran/casegen/model"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored, already emitted
)

// Option configures Order.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext makes Order observe ctx. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Dependencies returns the ids v's constraint reads, in field order.
func Dependencies(v model.Variable) []string {
	return v.DerivedDependencies()
}

type sorter struct {
	ctx   context.Context
	byID  map[string]int // id -> index into vars
	vars  []model.Variable
	state map[string]int
	order []model.Variable
}

// Order returns vars permuted so that each variable follows every declared
// variable its constraint depends on. The input slice is not modified.
// A cycle yields a *CycleError; cancellation of the WithContext context
// yields ctx.Err().
func Order(vars []model.Variable, opts ...Option) ([]model.Variable, error) {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &sorter{
		ctx:   o.ctx,
		byID:  make(map[string]int, len(vars)),
		vars:  vars,
		state: make(map[string]int, len(vars)),
		order: make([]model.Variable, 0, len(vars)),
	}
	for i, v := range vars {
		if _, dup := s.byID[v.ID]; !dup {
			s.byID[v.ID] = i
		}
	}

	for _, v := range vars {
		if s.state[v.ID] != White {
			continue
		}
		if err := s.visit(v.ID); err != nil {
			return nil, err
		}
	}

	return s.order, nil
}

// OrderIDs is Order reduced to variable ids.
func OrderIDs(vars []model.Variable, opts ...Option) ([]string, error) {
	ordered, err := Order(vars, opts...)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(ordered))
	for i, v := range ordered {
		ids[i] = v.ID
	}

	return ids, nil
}

func (s *sorter) visit(id string) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	idx, declared := s.byID[id]
	if !declared {
		return nil
	}
	v := s.vars[idx]

	switch s.state[id] {
	case Gray:
		return &CycleError{VariableID: v.ID, VariableName: v.Label()}
	case Black:
		return nil
	}
	s.state[id] = Gray

	for _, dep := range Dependencies(v) {
		if err := s.visit(dep); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, v)

	return nil
}

// Graph returns, for every declared variable, the declared variables its
// constraint depends on. Dangling ids are dropped. Every variable has an
// entry, possibly empty.
func Graph(vars []model.Variable) map[string][]string {
	declared := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		declared[v.ID] = struct{}{}
	}

	g := make(map[string][]string, len(vars))
	for _, v := range vars {
		deps := []string{}
		for _, id := range Dependencies(v) {
			if _, ok := declared[id]; ok {
				deps = append(deps, id)
			}
		}
		g[v.ID] = deps
	}

	return g
}

// Levels groups variable ids by dependency depth: level 0 holds variables
// with no declared dependencies, level k those whose deepest dependency sits
// at level k-1. Within a level ids keep their Order position.
func Levels(vars []model.Variable) ([][]string, error) {
	ordered, err := Order(vars)
	if err != nil {
		return nil, err
	}
	g := Graph(vars)

	depth := make(map[string]int, len(ordered))
	var levels [][]string
	for _, v := range ordered {
		d := 0
		for _, dep := range g[v.ID] {
			if depth[dep]+1 > d {
				d = depth[dep] + 1
			}
		}
		depth[v.ID] = d
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], v.ID)
	}

	return levels, nil
}
