package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/casegen/generator"
	"github.com/katalvlaran/casegen/model"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func variable(id string, t model.VarType, c model.Constraint) model.Variable {
	return model.Variable{ID: id, Name: id, Type: t, Constraint: c}
}

// TestGenerate_Dispatch maps each constraint to its value shape.
func TestGenerate_Dispatch(t *testing.T) {
	g := generator.New(generator.WithSeed(1))
	tests := []struct {
		name string
		v    model.Variable
		want any
	}{
		{"scalar", variable("x", model.TypeInt, &model.ScalarConstraint{}), model.Scalar(0)},
		{"array", variable("a", model.TypeArray, &model.ArrayConstraint{}), model.Sequence(nil)},
		{"matrix", variable("m", model.TypeMatrix, &model.MatrixConstraint{}), model.Grid(nil)},
		{"string", variable("s", model.TypeString, &model.StringConstraint{}), model.Text("")},
		{"tree", variable("t", model.TypeTree, &model.TreeConstraint{}), model.Sequence(nil)},
		{"graph", variable("g", model.TypeGraph, &model.GraphConstraint{}), model.Grid(nil)},
		{"nil constraint uses default", variable("d", model.TypeArray, nil), model.Sequence(nil)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.IsType(t, tc.want, g.Generate(tc.v, model.Values{}))
		})
	}
	assert.Empty(t, g.Diagnostics())
}

// TestGenerate_UnknownTypeFallsBack draws a default scalar and records it.
func TestGenerate_UnknownTypeFallsBack(t *testing.T) {
	g := generator.New(generator.WithSeed(2), generator.WithTestcase(4))

	val := g.Generate(model.Variable{ID: "b", Name: "flag", Type: "bool"}, model.Values{})
	s, ok := val.(model.Scalar)
	require.True(t, ok)
	assert.GreaterOrEqual(t, int64(s), int64(1))
	assert.LessOrEqual(t, int64(s), int64(100))

	diags := g.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, 4, diags[0].Testcase)
	assert.Equal(t, "b", diags[0].VariableID)
	assert.Equal(t, "flag", diags[0].Variable)
	assert.Contains(t, diags[0].Reason, `"bool"`)
}

// TestFill_DeterministicForSeed replays identical values for one seed.
func TestFill_DeterministicForSeed(t *testing.T) {
	order := []model.Variable{
		variable("n", model.TypeInt, &model.ScalarConstraint{Min: i64(1), Max: i64(20)}),
		variable("a", model.TypeArray, &model.ArrayConstraint{SizeType: model.SizeLinked, LinkedVariable: "n"}),
		variable("g", model.TypeGraph, &model.GraphConstraint{NodesType: model.SizeLinked, LinkedNodeVariable: "n",
			GraphType: model.GraphUndirected, Connected: true, Weighted: true}),
		variable("t", model.TypeTree, &model.TreeConstraint{TreeType: model.TreeNary}),
	}

	first := generator.New(generator.WithSeed(99)).Fill(order)
	second := generator.New(generator.WithSeed(99)).Fill(order)
	assert.Equal(t, first, second)

	n, ok := first.Int("n")
	require.True(t, ok)
	assert.Len(t, first["a"], int(n))
}

// TestOptions_PanicOnNil rejects nil collaborators at construction.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithLogger(nil) })
}
