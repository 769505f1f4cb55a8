package resolver_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/casegen/model"
	"github.com/katalvlaran/casegen/resolver"
)

func scalar(id string) model.Variable {
	return model.Variable{ID: id, Name: id, Type: model.TypeInt, Constraint: &model.ScalarConstraint{}}
}

func linkedArray(id, size string) model.Variable {
	return model.Variable{ID: id, Name: id, Type: model.TypeArray,
		Constraint: &model.ArrayConstraint{SizeType: model.SizeLinked, LinkedVariable: size}}
}

func below(id, dep string) model.Variable {
	return model.Variable{ID: id, Name: id, Type: model.TypeInt, Constraint: &model.ScalarConstraint{
		DependsOnValue: &model.ValueDependency{VariableID: dep, Relationship: model.LessThan}}}
}

// TestOrder_DependencyFirst moves a dependency ahead of its dependant.
func TestOrder_DependencyFirst(t *testing.T) {
	vars := []model.Variable{linkedArray("arr", "n"), scalar("n")}

	ids, err := resolver.OrderIDs(vars)
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "arr"}, ids)
	assert.Equal(t, "arr", vars[0].ID, "input must not be reordered")
}

// TestOrder_StableForIndependent keeps input order when nothing links.
func TestOrder_StableForIndependent(t *testing.T) {
	vars := []model.Variable{scalar("c"), scalar("a"), scalar("b")}

	ids, err := resolver.OrderIDs(vars)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

// TestOrder_IgnoresStaleDependencyList derives edges from the constraint only.
func TestOrder_IgnoresStaleDependencyList(t *testing.T) {
	n := scalar("n")
	n.Dependencies = []string{"arr"} // stale, would create a cycle if honoured
	arr := linkedArray("arr", "n")
	arr.Dependencies = nil

	ids, err := resolver.OrderIDs([]model.Variable{arr, n})
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "arr"}, ids)
}

// TestOrder_ManualSizeIsNotADependency ignores a leftover link in manual mode.
func TestOrder_ManualSizeIsNotADependency(t *testing.T) {
	arr := model.Variable{ID: "arr", Type: model.TypeArray,
		Constraint: &model.ArrayConstraint{SizeType: model.SizeManual, LinkedVariable: "n"}}
	n := below("n", "arr")

	ids, err := resolver.OrderIDs([]model.Variable{n, arr})
	require.NoError(t, err)
	assert.Equal(t, []string{"arr", "n"}, ids)
}

// TestOrder_DanglingSkipped treats unknown ids as satisfied.
func TestOrder_DanglingSkipped(t *testing.T) {
	vars := []model.Variable{linkedArray("arr", "ghost"), scalar("n")}

	ids, err := resolver.OrderIDs(vars)
	require.NoError(t, err)
	assert.Equal(t, []string{"arr", "n"}, ids)
}

// TestOrder_Cycle fails and names a variable on the cycle.
func TestOrder_Cycle(t *testing.T) {
	tests := []struct {
		name   string
		vars   []model.Variable
		onLoop []string
	}{
		{"two", []model.Variable{below("a", "b"), below("b", "a")}, []string{"a", "b"}},
		{"self", []model.Variable{scalar("n"), below("x", "x")}, []string{"x"}},
		{"three behind root", []model.Variable{below("root", "p"), below("p", "q"), below("q", "r"), below("r", "p")},
			[]string{"p", "q", "r"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolver.Order(tc.vars)
			require.Error(t, err)
			assert.True(t, errors.Is(err, resolver.ErrCycleDetected))

			var ce *resolver.CycleError
			require.True(t, errors.As(err, &ce))
			assert.Contains(t, tc.onLoop, ce.VariableID)
			assert.Equal(t, "circular dependency detected involving "+ce.VariableName, err.Error())
		})
	}
}

// TestOrder_RandomDAG checks the topological property on random inputs.
func TestOrder_RandomDAG(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(30)
		vars := make([]model.Variable, n)
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("v%d", i)
			switch {
			case i == 0 || rng.Intn(3) == 0:
				vars[i] = scalar(id)
			case rng.Intn(2) == 0:
				vars[i] = linkedArray(id, fmt.Sprintf("v%d", rng.Intn(i)))
			default:
				vars[i] = below(id, fmt.Sprintf("v%d", rng.Intn(i)))
			}
		}
		rng.Shuffle(n, func(i, j int) { vars[i], vars[j] = vars[j], vars[i] })

		ordered, err := resolver.Order(vars)
		require.NoError(t, err)
		require.Len(t, ordered, n)

		pos := make(map[string]int, n)
		for i, v := range ordered {
			pos[v.ID] = i
		}
		for _, v := range ordered {
			for _, dep := range resolver.Dependencies(v) {
				assert.Less(t, pos[dep], pos[v.ID], "trial %d: %s before %s", trial, dep, v.ID)
			}
		}
	}
}

// TestOrder_Cancelled honours a done context.
func TestOrder_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.Order([]model.Variable{scalar("n")}, resolver.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGraph drops dangling ids and lists every variable.
func TestGraph(t *testing.T) {
	vars := []model.Variable{scalar("n"), linkedArray("arr", "n"), linkedArray("lost", "ghost")}

	g := resolver.Graph(vars)
	assert.Equal(t, map[string][]string{"n": {}, "arr": {"n"}, "lost": {}}, g)
}

// TestLevels groups by depth.
func TestLevels(t *testing.T) {
	vars := []model.Variable{below("k", "n"), linkedArray("arr", "k"), scalar("n"), scalar("m")}

	levels, err := resolver.Levels(vars)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"n", "m"}, {"k"}, {"arr"}}, levels)
}
