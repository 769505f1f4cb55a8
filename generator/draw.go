package generator

import (
	"math"

	"github.com/katalvlaran/casegen/model"
)

// between returns a uniform integer in [lo, hi], or lo when lo >= hi.
func (g *Generator) between(lo, hi int64) int64 {
	if lo >= hi {
		return lo
	}
	span := hi - lo
	if span < 0 || span == math.MaxInt64 {
		// wider than Int63n can express; at least half of all draws land inside
		for {
			x := int64(g.cfg.rng.Uint64())
			if x >= lo && x <= hi {
				return x
			}
		}
	}

	return lo + g.cfg.rng.Int63n(span+1)
}

// intn returns a uniform int in [0, n); n must be positive.
func (g *Generator) intn(n int) int {
	return g.cfg.rng.Intn(n)
}

func orDefault(p *int64, def int64) int64 {
	if p == nil {
		return def
	}
	return *p
}

// sizeSpec describes one size-like bound: an array length, a matrix
// dimension, a string length or a node count.
type sizeSpec struct {
	what      string
	mode      model.SizeMode
	linked    string
	min, max  *int64
	defMin    int64
	defMax    int64
	defLinked int64
	limit     int64
}

// size resolves s. A linked size reads the scalar value of s.linked and
// falls back to s.defLinked when there is none; any other mode draws from
// [min, max]. The result is clamped into [0, s.limit].
func (g *Generator) size(v model.Variable, s sizeSpec, values model.Values) int64 {
	var n int64
	if s.mode == model.SizeLinked {
		val, ok := values.Int(s.linked)
		if !ok {
			g.note(v, "%s link %q has no scalar value, using %d", s.what, s.linked, s.defLinked)
			val = s.defLinked
		}
		n = val
	} else {
		lo, hi := orDefault(s.min, s.defMin), orDefault(s.max, s.defMax)
		if lo > hi {
			g.note(v, "%s range [%d, %d] is empty, using %d", s.what, lo, hi, lo)
		}
		n = g.between(lo, hi)
	}

	limit := s.limit
	if limit == 0 {
		limit = maxSize
	}
	switch {
	case n < 0:
		g.note(v, "%s %d is negative, using 0", s.what, n)
		n = 0
	case n > limit:
		g.note(v, "%s %d exceeds the limit, using %d", s.what, n, limit)
		n = limit
	}

	return n
}

// relation narrows or pins a draw against a dependency value.
type relation struct {
	rel  model.Relationship
	calc int64
}

// lookup resolves d against values. ok is false when d is nil or its
// variable has no scalar value; the latter is recorded.
func (g *Generator) lookup(v model.Variable, d *model.ValueDependency, values model.Values) (relation, bool) {
	if d == nil {
		return relation{}, false
	}
	dep, ok := values.Int(d.VariableID)
	if !ok {
		g.note(v, "dependency %q has no scalar value, using the base range", d.VariableID)
		return relation{}, false
	}

	return relation{rel: d.Relationship, calc: d.Target(dep)}, true
}
