// SPDX-License-Identifier: MIT
// Package: casegen/generator
//
// graph.go - random graphs over nodes 0..n-1 and their serializations.
//
// Families:
//   - complete: every admissible pair (ordered when directed).
//   - tree: node i attaches to a uniformly chosen earlier node.
//   - dag: only u < v; a spanning tree first when connected.
//   - bipartite: left half [0, n/2), right half [n/2, n), left -> right only.
//   - directed, undirected: a spanning tree first when connected, then
//     uniform distinct pairs. selfLoops admits (u, u); maxDegree caps degree.
//
// Contract:
//   - The edge budget is clamped to what the family can hold, so sampling
//     always terminates.
//   - Undirected pairs are canonicalized as (min, max) before the duplicate
//     check.
//   - Weights come from [minWeight ?? 1, maxWeight ?? 100] when weighted.
//
// Complexity: O(n + m) expected; O(maximum edges) when the budget is dense
// enough that enumeration is cheaper than rejection sampling.

package generator

import (
	"github.com/katalvlaran/casegen/model"
)

// maxDenseNodes bounds n when the output or family is quadratic in n.
const maxDenseNodes = int64(2048)

type edge struct {
	u, v int
	w    int64
}

// graphBuild accumulates edges for one graph.
type graphBuild struct {
	g        *Generator
	n        int
	directed bool
	weighted bool
	wLo, wHi int64
	maxDeg   int
	seen     map[uint64]struct{}
	deg      []int
	edges    []edge
}

func (b *graphBuild) key(u, v int) uint64 {
	if !b.directed && u > v {
		u, v = v, u
	}
	return uint64(u)<<32 | uint64(v)
}

// admit reports whether (u, v) is new and within the degree cap.
func (b *graphBuild) admit(u, v int) bool {
	if _, dup := b.seen[b.key(u, v)]; dup {
		return false
	}
	if b.maxDeg > 0 && (b.deg[u] >= b.maxDeg || b.deg[v] >= b.maxDeg) {
		return false
	}
	return true
}

func (b *graphBuild) add(u, v int) {
	e := edge{u: u, v: v}
	if b.weighted {
		e.w = b.g.between(b.wLo, b.wHi)
	}
	b.seen[b.key(u, v)] = struct{}{}
	if b.maxDeg > 0 {
		b.deg[u]++
		b.deg[v]++
	}
	b.edges = append(b.edges, e)
}

// spanningTree attaches every node i > 0 to an earlier node. Under a degree
// cap a few parents are tried before the cap is ignored.
func (b *graphBuild) spanningTree() {
	for i := 1; i < b.n; i++ {
		p := b.g.intn(i)
		if b.maxDeg > 0 {
			for try := 0; try < 8 && b.deg[p] >= b.maxDeg; try++ {
				p = b.g.intn(i)
			}
		}
		b.add(p, i)
	}
}

// fill adds admissible edges until there are m. pick proposes a random
// candidate; each enumerates all candidates of the family. limit is the
// family's maximum edge count.
func (b *graphBuild) fill(m, limit int64, pick func() (int, int), each func(func(int, int))) {
	want := m - int64(len(b.edges))
	if want <= 0 {
		return
	}

	if float64(m) <= edgeEnumerateDensity*float64(limit) {
		attempts := want*edgeRejectionFactor + 16
		for int64(len(b.edges)) < m && attempts > 0 {
			attempts--
			u, v := pick()
			if b.admit(u, v) {
				b.add(u, v)
			}
		}
	}
	if int64(len(b.edges)) >= m || limit > 4*maxEdges {
		return
	}

	var rest [][2]int
	each(func(u, v int) {
		if _, dup := b.seen[b.key(u, v)]; !dup {
			rest = append(rest, [2]int{u, v})
		}
	})
	b.g.cfg.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for _, p := range rest {
		if int64(len(b.edges)) >= m {
			break
		}
		if b.admit(p[0], p[1]) {
			b.add(p[0], p[1])
		}
	}
}

// Graph draws a graph for v and serializes it per c.Output.
func (g *Generator) Graph(v model.Variable, c *model.GraphConstraint, values model.Values) model.Value {
	nodeLimit := maxSize
	if c.GraphType == model.GraphComplete || c.Output == model.GraphAdjacencyMatrix {
		nodeLimit = maxDenseNodes
	}
	n64 := g.size(v, sizeSpec{
		what:      "node count",
		mode:      c.NodesType,
		linked:    c.LinkedNodeVariable,
		min:       c.MinNodes,
		max:       c.MaxNodes,
		defMin:    defaultMinGraphNodes,
		defMax:    defaultMaxGraphNodes,
		defLinked: defaultLinkedSize,
		limit:     nodeLimit,
	}, values)
	n := int(n64)

	b := &graphBuild{
		g:        g,
		n:        n,
		directed: c.Directed(),
		weighted: c.Weighted,
		wLo:      orDefault(c.MinWeight, defaultMinWeight),
		wHi:      orDefault(c.MaxWeight, defaultMaxWeight),
		seen:     make(map[uint64]struct{}),
	}
	if b.weighted && b.wLo > b.wHi {
		g.note(v, "weight range [%d, %d] is empty, using %d", b.wLo, b.wHi, b.wLo)
	}

	switch c.GraphType {
	case model.GraphComplete:
		for i := 0; i < n; i++ {
			start := i + 1
			if b.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i != j {
					b.add(i, j)
				}
			}
		}

	case model.GraphTree:
		b.spanningTree()

	case model.GraphDAG:
		limit := n64 * (n64 - 1) / 2
		m := g.edgeBudget(v, c, values, n64, limit, true)
		if c.Connected {
			b.spanningTree()
		}
		b.fill(m, limit,
			func() (int, int) {
				u := g.intn(n - 1)
				return u, u + 1 + g.intn(n-u-1)
			},
			func(yield func(int, int)) {
				for u := 0; u < n; u++ {
					for w := u + 1; w < n; w++ {
						yield(u, w)
					}
				}
			})

	case model.GraphBipartite:
		left := n / 2
		right := n - left
		limit := int64(left) * int64(right)
		m := g.edgeBudget(v, c, values, n64, limit, false)
		b.fill(m, limit,
			func() (int, int) { return g.intn(left), left + g.intn(right) },
			func(yield func(int, int)) {
				for u := 0; u < left; u++ {
					for w := left; w < n; w++ {
						yield(u, w)
					}
				}
			})

	default:
		if c.GraphType != model.GraphDirected && c.GraphType != model.GraphUndirected && c.GraphType != "" {
			g.note(v, "graph type %q is not supported, building a simple graph", c.GraphType)
		}
		if d := orDefault(c.MaxDegree, 0); d > 0 {
			b.maxDeg = int(min(d, n64))
			b.deg = make([]int, n)
		}
		limit := n64 * (n64 - 1)
		if !b.directed {
			limit /= 2
		}
		if c.SelfLoops {
			limit += n64
		}
		m := g.edgeBudget(v, c, values, n64, limit, true)
		if c.Connected {
			b.spanningTree()
		}
		b.fill(m, limit,
			func() (int, int) {
				for {
					u, w := g.intn(n), g.intn(n)
					if u != w || c.SelfLoops {
						return u, w
					}
				}
			},
			func(yield func(int, int)) {
				for u := 0; u < n; u++ {
					start := 0
					if !b.directed {
						start = u
					}
					for w := start; w < n; w++ {
						if u != w || c.SelfLoops {
							yield(u, w)
						}
					}
				}
			})
		if int64(len(b.edges)) < m {
			g.note(v, "only %d of %d edges could be placed", len(b.edges), m)
		}
	}

	switch c.Output {
	case model.GraphAdjacencyList:
		return b.adjacencyList()
	case model.GraphAdjacencyMatrix:
		return b.adjacencyMatrix()
	case model.GraphEdgeList, "":
	default:
		g.note(v, "graph output %q is not supported, using edge_list", c.Output)
	}
	return b.edgeList()
}

// edgeBudget resolves the wanted edge count and clamps it to [0, limit].
// When connected applies and n > 1 the budget is at least n-1.
func (g *Generator) edgeBudget(v model.Variable, c *model.GraphConstraint, values model.Values, n, limit int64, spanning bool) int64 {
	limit = min(limit, maxEdges)

	var m int64
	if c.EdgesType == model.SizeLinked {
		val, ok := values.Int(c.LinkedEdgeVariable)
		if !ok {
			val = min(n*3/2, limit)
			g.note(v, "edge count link %q has no scalar value, using %d", c.LinkedEdgeVariable, val)
		}
		m = val
	} else {
		// defaults span from a tree's worth of edges to everything the family holds
		lo := orDefault(c.MinEdges, min(max(1, n-1), limit))
		hi := orDefault(c.MaxEdges, limit)
		if lo > hi {
			g.note(v, "edge range [%d, %d] is empty, using %d", lo, hi, lo)
		}
		m = g.between(lo, hi)
	}

	if m < 0 {
		g.note(v, "edge count %d is negative, using 0", m)
		m = 0
	}
	if m > limit {
		g.note(v, "edge count %d exceeds the %d edges this graph can hold", m, limit)
		m = limit
	}
	if spanning && c.Connected && n > 1 && m < n-1 {
		g.note(v, "edge count %d raised to %d to keep the graph connected", m, n-1)
		m = n - 1
	}

	return m
}

func (b *graphBuild) edgeList() model.Grid {
	out := make(model.Grid, len(b.edges))
	for i, e := range b.edges {
		if b.weighted {
			out[i] = []int64{int64(e.u), int64(e.v), e.w}
		} else {
			out[i] = []int64{int64(e.u), int64(e.v)}
		}
	}
	return out
}

func (b *graphBuild) adjacencyList() model.Grid {
	out := make(model.Grid, b.n)
	for i := range out {
		out[i] = []int64{}
	}
	for _, e := range b.edges {
		out[e.u] = append(out[e.u], int64(e.v))
		if !b.directed && e.u != e.v {
			out[e.v] = append(out[e.v], int64(e.u))
		}
	}
	return out
}

func (b *graphBuild) adjacencyMatrix() model.Grid {
	out := make(model.Grid, b.n)
	for i := range out {
		out[i] = make([]int64, b.n)
	}
	for _, e := range b.edges {
		w := int64(1)
		if b.weighted {
			w = e.w
		}
		out[e.u][e.v] = w
		if !b.directed {
			out[e.v][e.u] = w
		}
	}
	return out
}
