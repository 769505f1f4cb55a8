package generator

import "github.com/katalvlaran/casegen/model"

// Scalar draws an integer for v. The base range is [Min ?? 1, Max ?? 100].
//
// With DependsOnValue set and its variable generated, calc = Target(dep)
// narrows the range: less_than caps max at calc-1, less_equal at calc,
// greater_than lifts min to calc+1, greater_equal to calc. equal_to returns
// calc without drawing. multiple_of, factor_of and custom leave the range
// unchanged. An empty range yields its min.
func (g *Generator) Scalar(v model.Variable, c *model.ScalarConstraint, values model.Values) int64 {
	lo := orDefault(c.Min, defaultScalarMin)
	hi := orDefault(c.Max, defaultScalarMax)

	if r, ok := g.lookup(v, c.DependsOnValue, values); ok {
		switch r.rel {
		case model.LessThan:
			hi = min(hi, r.calc-1)
		case model.LessEqual:
			hi = min(hi, r.calc)
		case model.GreaterThan:
			lo = max(lo, r.calc+1)
		case model.GreaterEqual:
			lo = max(lo, r.calc)
		case model.EqualTo:
			return r.calc
		}
	}

	if lo > hi {
		g.note(v, "range [%d, %d] is empty, using %d", lo, hi, lo)
		return lo
	}

	return g.between(lo, hi)
}
