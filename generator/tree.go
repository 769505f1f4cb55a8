// SPDX-License-Identifier: MIT
// Package: casegen/generator
//
// tree.go - rooted tree shapes and their serializations.
//
// Shapes (node 0 is the root):
//   - binary, heap, trie: complete binary layout, children 2i+1 and 2i+2.
//   - nary: nodes in creation order each take 1..maxChildren next nodes.
//   - bst, avl: sorted values split at the midpoint (height balanced).
//
// Serializations:
//   - parent_array: value at heap-style slot, k-ary for nary, -1 in holes.
//   - adjacency_list: children per node, nodes numbered in preorder.
//   - level_order, preorder: node values in traversal order.
//
// Complexity: O(n) time and memory, except parent_array which is bounded
// by maxParentArraySlots.

package generator

import (
	"slices"

	"github.com/katalvlaran/casegen/model"
)

// shape is a realized rooted tree. kids[i] lists child node indices of
// node i by position; -1 marks an empty position of a binary node.
type shape struct {
	values []int64
	kids   [][]int
	arity  int
}

// Tree draws a tree for v and serializes it per c.Output.
func (g *Generator) Tree(v model.Variable, c *model.TreeConstraint, values model.Values) model.Value {
	n := g.size(v, sizeSpec{
		what:      "node count",
		mode:      c.NodeCountType,
		linked:    c.LinkedVariable,
		min:       c.MinNodes,
		max:       c.MaxNodes,
		defMin:    defaultMinTreeNodes,
		defMax:    defaultMaxTreeNodes,
		defLinked: defaultLinkedSize,
	}, values)

	lo := orDefault(c.NodeValueMin, defaultNodeValueMin)
	hi := orDefault(c.NodeValueMax, defaultNodeValueMax)
	if lo > hi && n > 0 {
		g.note(v, "node value range [%d, %d] is empty, using %d", lo, hi, lo)
	}
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = g.between(lo, hi)
	}

	var t shape
	switch c.TreeType {
	case model.TreeNary:
		k := orDefault(c.MaxChildren, defaultMaxChildren)
		if k < 1 {
			g.note(v, "maxChildren %d is not positive, using %d", k, defaultMaxChildren)
			k = defaultMaxChildren
		}
		t = g.naryShape(vals, int(min(k, maxSize)))
	case model.TreeBST, model.TreeAVL:
		slices.Sort(vals)
		t = balancedShape(vals)
	case model.TreeHeap:
		slices.Sort(vals)
		if c.HeapType == "max" {
			slices.Reverse(vals)
		}
		t = binaryShape(vals)
	case model.TreeBinary, "":
		t = binaryShape(vals)
	default:
		g.note(v, "tree type %q is not supported, building a binary tree", c.TreeType)
		t = binaryShape(vals)
	}

	switch c.Output {
	case model.TreeAdjacencyList:
		return t.adjacency()
	case model.TreeLevelOrder:
		return t.levelOrder()
	case model.TreePreorder:
		return t.preorder()
	case model.TreeParentArray, "":
	default:
		g.note(v, "tree output %q is not supported, using parent_array", c.Output)
	}

	pa, ok := t.parentArray()
	if !ok {
		g.note(v, "parent array would exceed %d slots, using level_order", maxParentArraySlots)
		return t.levelOrder()
	}
	return pa
}

func binaryShape(vals []int64) shape {
	t := shape{values: vals, kids: make([][]int, len(vals)), arity: 2}
	for i := range vals {
		l, r := 2*i+1, 2*i+2
		if l >= len(vals) {
			continue
		}
		if r >= len(vals) {
			r = -1
		}
		t.kids[i] = []int{l, r}
	}
	return t
}

func (g *Generator) naryShape(vals []int64, k int) shape {
	n := len(vals)
	t := shape{values: vals, kids: make([][]int, n), arity: k}
	next := 1
	for i := 0; i < n && next < n; i++ {
		cnt := min(1+g.intn(k), n-next)
		for j := 0; j < cnt; j++ {
			t.kids[i] = append(t.kids[i], next)
			next++
		}
	}
	return t
}

// balancedShape builds a height-balanced search tree over sorted values.
func balancedShape(sorted []int64) shape {
	t := shape{
		values: make([]int64, 0, len(sorted)),
		kids:   make([][]int, 0, len(sorted)),
		arity:  2,
	}
	var build func(lo, hi int) int
	build = func(lo, hi int) int {
		if lo > hi {
			return -1
		}
		mid := lo + (hi-lo)/2
		id := len(t.values)
		t.values = append(t.values, sorted[mid])
		t.kids = append(t.kids, nil)
		l := build(lo, mid-1)
		r := build(mid+1, hi)
		if l >= 0 || r >= 0 {
			t.kids[id] = []int{l, r}
		}
		return id
	}
	build(0, len(sorted)-1)
	return t
}

// parentArray lays nodes out at k-ary heap slots. ok is false when the
// layout needs more than maxParentArraySlots slots.
func (t shape) parentArray() (model.Sequence, bool) {
	if len(t.values) == 0 {
		return model.Sequence{}, true
	}
	k := int64(t.arity)
	slot := make([]int64, len(t.values))
	last := int64(0)
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for pos, child := range t.kids[u] {
			if child < 0 {
				continue
			}
			if slot[u] > (maxParentArraySlots-int64(pos)-1)/k {
				return nil, false
			}
			slot[child] = slot[u]*k + int64(pos) + 1
			last = max(last, slot[child])
			queue = append(queue, child)
		}
	}

	out := make(model.Sequence, last+1)
	for i := range out {
		out[i] = -1
	}
	for i, s := range slot {
		out[s] = t.values[i]
	}
	return out, true
}

func (t shape) levelOrder() model.Sequence {
	out := make(model.Sequence, 0, len(t.values))
	if len(t.values) == 0 {
		return out
	}
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		out = append(out, t.values[u])
		for _, child := range t.kids[u] {
			if child >= 0 {
				queue = append(queue, child)
			}
		}
	}
	return out
}

// preorderNodes returns node indices root first, children left to right.
func (t shape) preorderNodes() []int {
	order := make([]int, 0, len(t.values))
	if len(t.values) == 0 {
		return order
	}
	stack := []int{0}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		for i := len(t.kids[u]) - 1; i >= 0; i-- {
			if child := t.kids[u][i]; child >= 0 {
				stack = append(stack, child)
			}
		}
	}
	return order
}

func (t shape) preorder() model.Sequence {
	order := t.preorderNodes()
	out := make(model.Sequence, len(order))
	for i, u := range order {
		out[i] = t.values[u]
	}
	return out
}

// adjacency lists, for each node in preorder, the preorder numbers of its
// children.
func (t shape) adjacency() model.Grid {
	order := t.preorderNodes()
	number := make([]int64, len(t.values))
	for i, u := range order {
		number[u] = int64(i)
	}

	out := make(model.Grid, len(order))
	for i, u := range order {
		row := []int64{}
		for _, child := range t.kids[u] {
			if child >= 0 {
				row = append(row, number[child])
			}
		}
		out[i] = row
	}
	return out
}
