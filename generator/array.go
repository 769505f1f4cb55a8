package generator

import (
	"slices"

	"github.com/katalvlaran/casegen/model"
)

// Array draws a sequence for v.
//
// Length is the linked scalar (5 when absent) or a draw from
// [MinSize ?? 1, MaxSize ?? 10]. Elements are drawn from
// [ElementMin ?? 1, ElementMax ?? 100] and then adjusted against
// ElementDependsOnValue: less_than/less_equal/bounded_by clamp down,
// greater_than/greater_equal clamp up, equal_to pins. Distinct resamples
// collisions a bounded number of times; Sorted sorts ascending last.
func (g *Generator) Array(v model.Variable, c *model.ArrayConstraint, values model.Values) model.Sequence {
	n := g.size(v, sizeSpec{
		what:      "size",
		mode:      c.SizeType,
		linked:    c.LinkedVariable,
		min:       c.MinSize,
		max:       c.MaxSize,
		defMin:    defaultMinSize,
		defMax:    defaultMaxSize,
		defLinked: defaultLinkedSize,
	}, values)

	lo := orDefault(c.ElementMin, defaultElementMin)
	hi := orDefault(c.ElementMax, defaultElementMax)
	if lo > hi && n > 0 {
		g.note(v, "element range [%d, %d] is empty, using %d", lo, hi, lo)
	}
	r, related := g.lookup(v, c.ElementDependsOnValue, values)

	draw := func() int64 {
		x := g.between(lo, hi)
		if related {
			x = r.clamp(x)
		}
		return x
	}

	out := make(model.Sequence, n)
	var seen map[int64]struct{}
	if c.Distinct {
		seen = make(map[int64]struct{}, n)
	}
	repeats := 0
	for i := range out {
		x := draw()
		if c.Distinct {
			for try := 0; try < distinctRetries; try++ {
				if _, dup := seen[x]; !dup {
					break
				}
				x = draw()
			}
			if _, dup := seen[x]; dup {
				repeats++
			}
			seen[x] = struct{}{}
		}
		out[i] = x
	}
	if repeats > 0 {
		g.note(v, "%d element(s) still repeat after %d retries", repeats, distinctRetries)
	}

	if c.Sorted {
		slices.Sort(out)
	}

	return out
}

// clamp applies an element relationship to x.
func (r relation) clamp(x int64) int64 {
	switch r.rel {
	case model.LessThan:
		return min(x, r.calc-1)
	case model.LessEqual, model.BoundedBy:
		return min(x, r.calc)
	case model.GreaterThan:
		return max(x, r.calc+1)
	case model.GreaterEqual:
		return max(x, r.calc)
	case model.EqualTo:
		return r.calc
	}
	return x
}
