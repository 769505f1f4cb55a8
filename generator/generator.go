// SPDX-License-Identifier: MIT
// Package: casegen/generator
//
// generator.go - Generator type and per-variable dispatch.
//
// Contract:
//   - Generate never fails; unsupported input degrades to a default scalar.
//   - A nil constraint is replaced by model.DefaultConstraint(v.Type).
//   - Every fallback appends exactly one diagnostic for its cause.

package generator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/casegen/model"
)

// Generator produces values for one testcase.
type Generator struct {
	cfg   config
	diags []model.Diagnostic
}

// New returns a Generator configured by opts. Without WithSeed or WithRand
// the random source is seeded from the clock.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// Generate produces the value of v, reading dependency values from values.
// values is not modified.
func (g *Generator) Generate(v model.Variable, values model.Values) model.Value {
	c := v.Constraint
	if c == nil {
		if def, ok := model.DefaultConstraint(v.Type); ok {
			c = def
		}
	}

	switch c := c.(type) {
	case *model.ScalarConstraint:
		return model.Scalar(g.Scalar(v, c, values))
	case *model.ArrayConstraint:
		return g.Array(v, c, values)
	case *model.MatrixConstraint:
		return g.Matrix(v, c, values)
	case *model.StringConstraint:
		return g.String(v, c, values)
	case *model.TreeConstraint:
		return g.Tree(v, c, values)
	case *model.GraphConstraint:
		return g.Graph(v, c, values)
	}

	g.note(v, "no generator for type %q, using a default scalar", v.Type)
	return model.Scalar(g.between(defaultScalarMin, defaultScalarMax))
}

// Fill generates every variable of order into a fresh values map, in order.
// order is expected to come from resolver.Order.
func (g *Generator) Fill(order []model.Variable) model.Values {
	values := make(model.Values, len(order))
	for _, v := range order {
		values[v.ID] = g.Generate(v, values)
	}

	return values
}

// Diagnostics returns the fallbacks recorded so far, oldest first.
func (g *Generator) Diagnostics() []model.Diagnostic {
	return g.diags
}

// note records a non-fatal fallback for v.
func (g *Generator) note(v model.Variable, format string, args ...any) {
	reason := fmt.Sprintf(format, args...)
	g.diags = append(g.diags, model.Diagnostic{
		Testcase:   g.cfg.testcase,
		VariableID: v.ID,
		Variable:   v.Label(),
		Reason:     reason,
	})
	g.cfg.logger.Warn("generation fallback",
		zap.Int("testcase", g.cfg.testcase),
		zap.String("variable", v.Label()),
		zap.String("reason", reason),
	)
}
