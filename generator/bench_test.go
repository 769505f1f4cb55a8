package generator_test

import (
	"testing"

	"github.com/katalvlaran/casegen/generator"
	"github.com/katalvlaran/casegen/model"
)

// BenchmarkArray_Distinct10000 measures a sorted distinct array of 10,000
// elements drawn from a range twice as wide.
func BenchmarkArray_Distinct10000(b *testing.B) {
	g := generator.New(generator.WithSeed(1))
	v := variable("a", model.TypeArray, nil)
	c := &model.ArrayConstraint{MinSize: i64(10000), MaxSize: i64(10000), ElementMin: i64(1), ElementMax: i64(20000),
		Distinct: true, Sorted: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Array(v, c, model.Values{})
	}
}

// BenchmarkGraph_Sparse measures rejection sampling: 1,000 nodes, 5,000 edges.
func BenchmarkGraph_Sparse(b *testing.B) {
	g := generator.New(generator.WithSeed(1))
	v := variable("g", model.TypeGraph, nil)
	c := &model.GraphConstraint{MinNodes: i64(1000), MaxNodes: i64(1000), MinEdges: i64(5000), MaxEdges: i64(5000),
		GraphType: model.GraphUndirected, Connected: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Graph(v, c, model.Values{})
	}
}

// BenchmarkGraph_Dense measures enumeration: 200 nodes, 90% of all pairs.
func BenchmarkGraph_Dense(b *testing.B) {
	g := generator.New(generator.WithSeed(1))
	v := variable("g", model.TypeGraph, nil)
	c := &model.GraphConstraint{MinNodes: i64(200), MaxNodes: i64(200), MinEdges: i64(17910), MaxEdges: i64(17910),
		GraphType: model.GraphUndirected}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Graph(v, c, model.Values{})
	}
}

// BenchmarkTree_BST1000 measures a balanced search tree in parent-array form.
func BenchmarkTree_BST1000(b *testing.B) {
	g := generator.New(generator.WithSeed(1))
	v := variable("t", model.TypeTree, nil)
	c := &model.TreeConstraint{MinNodes: i64(1000), MaxNodes: i64(1000), TreeType: model.TreeBST}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Tree(v, c, model.Values{})
	}
}
