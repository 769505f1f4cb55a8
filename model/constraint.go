package model

import "math"

// Constraint is the rule set attached to a variable. The set of variants is
// closed: only the six *XxxConstraint types in this package implement it.
type Constraint interface {
	// Kind returns the variant discriminant.
	Kind() ConstraintKind
	// Dependencies returns the ids of variables whose generated values this
	// constraint reads, in field order, without duplicates.
	Dependencies() []string

	isConstraint()
}

// SizeMode selects where a size bound comes from.
type SizeMode string

// Size modes.
const (
	SizeManual SizeMode = "manual"
	SizeLinked SizeMode = "linked"
)

// Relationship relates a generated value to a value generated earlier.
type Relationship string

// Relationships. MultipleOf, FactorOf and Custom are accepted but do not
// narrow the range; see generator.Scalar.
const (
	LessThan     Relationship = "less_than"
	LessEqual    Relationship = "less_equal"
	GreaterThan  Relationship = "greater_than"
	GreaterEqual Relationship = "greater_equal"
	EqualTo      Relationship = "equal_to"
	MultipleOf   Relationship = "multiple_of"
	FactorOf     Relationship = "factor_of"
	Custom       Relationship = "custom"
	BoundedBy    Relationship = "bounded_by"
)

// ValueDependency ties a bound to another variable's scalar value.
type ValueDependency struct {
	VariableID    string       `json:"variableId"`
	Relationship  Relationship `json:"relationship"`
	Multiplier    *float64     `json:"multiplier,omitempty"`
	Offset        *float64     `json:"offset,omitempty"`
	CustomFormula string       `json:"customFormula,omitempty"`
}

// Target returns floor(dep*multiplier + offset), with multiplier 1 and
// offset 0 when unset.
func (d *ValueDependency) Target(dep int64) int64 {
	mul, off := 1.0, 0.0
	if d.Multiplier != nil {
		mul = *d.Multiplier
	}
	if d.Offset != nil {
		off = *d.Offset
	}
	return int64(math.Floor(float64(dep)*mul + off))
}

// ScalarConstraint governs int, float and double variables.
type ScalarConstraint struct {
	Min            *int64           `json:"min,omitempty"`
	Max            *int64           `json:"max,omitempty"`
	CustomLogic    string           `json:"customLogic,omitempty"`
	DependsOnValue *ValueDependency `json:"dependsOnValue,omitempty"`
}

// ArrayConstraint governs array variables.
type ArrayConstraint struct {
	SizeType              SizeMode         `json:"sizeType"`
	MinSize               *int64           `json:"minSize,omitempty"`
	MaxSize               *int64           `json:"maxSize,omitempty"`
	LinkedVariable        string           `json:"linkedVariable,omitempty"`
	ElementMin            *int64           `json:"elementMin,omitempty"`
	ElementMax            *int64           `json:"elementMax,omitempty"`
	Distinct              bool             `json:"distinct,omitempty"`
	Sorted                bool             `json:"sorted,omitempty"`
	ElementDependsOnValue *ValueDependency `json:"elementDependsOnValue,omitempty"`
}

// MatrixType selects which cells of a matrix are filled.
type MatrixType string

// Matrix types. The zero value behaves as MatrixRectangular.
const (
	MatrixRectangular MatrixType = "rectangular"
	MatrixSquare      MatrixType = "square"
	MatrixTriangular  MatrixType = "triangular"
	MatrixDiagonal    MatrixType = "diagonal"
	MatrixSparse      MatrixType = "sparse"
)

// MatrixConstraint governs matrix variables.
type MatrixConstraint struct {
	RowsType          SizeMode   `json:"rowsType"`
	ColsType          SizeMode   `json:"colsType"`
	MinRows           *int64     `json:"minRows,omitempty"`
	MaxRows           *int64     `json:"maxRows,omitempty"`
	MinCols           *int64     `json:"minCols,omitempty"`
	MaxCols           *int64     `json:"maxCols,omitempty"`
	LinkedRowVariable string     `json:"linkedRowVariable,omitempty"`
	LinkedColVariable string     `json:"linkedColVariable,omitempty"`
	CellMin           *int64     `json:"cellMin,omitempty"`
	CellMax           *int64     `json:"cellMax,omitempty"`
	MatrixType        MatrixType `json:"matrixType,omitempty"`
	Symmetric         bool       `json:"symmetric,omitempty"`
}

// CharSet names the alphabet of a string variable.
type CharSet string

// Character sets.
const (
	CharsLowercase    CharSet = "lowercase"
	CharsUppercase    CharSet = "uppercase"
	CharsDigits       CharSet = "digits"
	CharsAlphanumeric CharSet = "alphanumeric"
	CharsCustom       CharSet = "custom"
)

// StringConstraint governs string variables.
type StringConstraint struct {
	LengthType     SizeMode `json:"lengthType"`
	MinLength      *int64   `json:"minLength,omitempty"`
	MaxLength      *int64   `json:"maxLength,omitempty"`
	LinkedVariable string   `json:"linkedVariable,omitempty"`
	CharSet        CharSet  `json:"charSet"`
	CustomCharSet  string   `json:"customCharSet,omitempty"`
}

// TreeType selects the tree shape.
type TreeType string

// Tree types.
const (
	TreeBinary TreeType = "binary"
	TreeNary   TreeType = "nary"
	TreeBST    TreeType = "bst"
	TreeAVL    TreeType = "avl"
	TreeHeap   TreeType = "heap"
	TreeTrie   TreeType = "trie"
)

// TreeOutput selects how a tree is serialized into a Value.
type TreeOutput string

// Tree serializations.
const (
	TreeParentArray   TreeOutput = "parent_array"
	TreeAdjacencyList TreeOutput = "adjacency_list"
	TreeLevelOrder    TreeOutput = "level_order"
	TreePreorder      TreeOutput = "preorder"
)

// TreeConstraint governs tree variables.
//
// Depth bounds and the balanced/complete/full/perfect flags are carried for
// the editing UI; shapes come from TreeType alone.
type TreeConstraint struct {
	NodeCountType  SizeMode   `json:"nodeCountType"`
	MinNodes       *int64     `json:"minNodes,omitempty"`
	MaxNodes       *int64     `json:"maxNodes,omitempty"`
	LinkedVariable string     `json:"linkedVariable,omitempty"`
	TreeType       TreeType   `json:"treeType"`
	MaxChildren    *int64     `json:"maxChildren,omitempty"`
	HeapType       string     `json:"heapType,omitempty"`
	MinDepth       *int64     `json:"minDepth,omitempty"`
	MaxDepth       *int64     `json:"maxDepth,omitempty"`
	NodeValueMin   *int64     `json:"nodeValueMin,omitempty"`
	NodeValueMax   *int64     `json:"nodeValueMax,omitempty"`
	Balanced       bool       `json:"balanced,omitempty"`
	Complete       bool       `json:"complete,omitempty"`
	Full           bool       `json:"full,omitempty"`
	Perfect        bool       `json:"perfect,omitempty"`
	Output         TreeOutput `json:"output,omitempty"`
}

// GraphType selects the graph family.
type GraphType string

// Graph types.
const (
	GraphDirected   GraphType = "directed"
	GraphUndirected GraphType = "undirected"
	GraphDAG        GraphType = "dag"
	GraphTree       GraphType = "tree"
	GraphBipartite  GraphType = "bipartite"
	GraphComplete   GraphType = "complete"
)

// GraphOutput selects how a graph is serialized into a Value.
type GraphOutput string

// Graph serializations.
const (
	GraphEdgeList        GraphOutput = "edge_list"
	GraphAdjacencyList   GraphOutput = "adjacency_list"
	GraphAdjacencyMatrix GraphOutput = "adjacency_matrix"
)

// GraphConstraint governs graph variables.
type GraphConstraint struct {
	NodesType          SizeMode    `json:"nodesType"`
	EdgesType          SizeMode    `json:"edgesType"`
	MinNodes           *int64      `json:"minNodes,omitempty"`
	MaxNodes           *int64      `json:"maxNodes,omitempty"`
	MinEdges           *int64      `json:"minEdges,omitempty"`
	MaxEdges           *int64      `json:"maxEdges,omitempty"`
	LinkedNodeVariable string      `json:"linkedNodeVariable,omitempty"`
	LinkedEdgeVariable string      `json:"linkedEdgeVariable,omitempty"`
	GraphType          GraphType   `json:"graphType"`
	Connected          bool        `json:"connected,omitempty"`
	Weighted           bool        `json:"weighted,omitempty"`
	Cyclic             bool        `json:"cyclic,omitempty"`
	SelfLoops          bool        `json:"selfLoops,omitempty"`
	MinDegree          *int64      `json:"minDegree,omitempty"`
	MaxDegree          *int64      `json:"maxDegree,omitempty"`
	MinWeight          *int64      `json:"minWeight,omitempty"`
	MaxWeight          *int64      `json:"maxWeight,omitempty"`
	Output             GraphOutput `json:"output,omitempty"`
}

// Directed reports whether edges of this graph are one-way.
func (c *GraphConstraint) Directed() bool {
	return c.GraphType == GraphDirected || c.GraphType == GraphDAG
}

func (*ScalarConstraint) isConstraint() {}
func (*ArrayConstraint) isConstraint()  {}
func (*MatrixConstraint) isConstraint() {}
func (*StringConstraint) isConstraint() {}
func (*TreeConstraint) isConstraint()   {}
func (*GraphConstraint) isConstraint()  {}

// Kind implements Constraint.
func (*ScalarConstraint) Kind() ConstraintKind { return KindScalar }

// Kind implements Constraint.
func (*ArrayConstraint) Kind() ConstraintKind { return KindArray }

// Kind implements Constraint.
func (*MatrixConstraint) Kind() ConstraintKind { return KindMatrix }

// Kind implements Constraint.
func (*StringConstraint) Kind() ConstraintKind { return KindString }

// Kind implements Constraint.
func (*TreeConstraint) Kind() ConstraintKind { return KindTree }

// Kind implements Constraint.
func (*GraphConstraint) Kind() ConstraintKind { return KindGraph }

// Dependencies implements Constraint.
func (c *ScalarConstraint) Dependencies() []string {
	var d depSet
	if c.DependsOnValue != nil {
		d.add(c.DependsOnValue.VariableID)
	}
	return d.ids
}

// Dependencies implements Constraint. The size link counts only in linked
// mode, mirroring what the array generator reads.
func (c *ArrayConstraint) Dependencies() []string {
	var d depSet
	if c.SizeType == SizeLinked {
		d.add(c.LinkedVariable)
	}
	if c.ElementDependsOnValue != nil {
		d.add(c.ElementDependsOnValue.VariableID)
	}
	return d.ids
}

// Dependencies implements Constraint. A square matrix ignores its column
// link, so it is not a dependency.
func (c *MatrixConstraint) Dependencies() []string {
	var d depSet
	if c.RowsType == SizeLinked {
		d.add(c.LinkedRowVariable)
	}
	if c.ColsType == SizeLinked && c.MatrixType != MatrixSquare {
		d.add(c.LinkedColVariable)
	}
	return d.ids
}

// Dependencies implements Constraint.
func (c *StringConstraint) Dependencies() []string {
	var d depSet
	if c.LengthType == SizeLinked {
		d.add(c.LinkedVariable)
	}
	return d.ids
}

// Dependencies implements Constraint.
func (c *TreeConstraint) Dependencies() []string {
	var d depSet
	if c.NodeCountType == SizeLinked {
		d.add(c.LinkedVariable)
	}
	return d.ids
}

// Dependencies implements Constraint.
func (c *GraphConstraint) Dependencies() []string {
	var d depSet
	if c.NodesType == SizeLinked {
		d.add(c.LinkedNodeVariable)
	}
	if c.EdgesType == SizeLinked && c.GraphType != GraphComplete && c.GraphType != GraphTree {
		d.add(c.LinkedEdgeVariable)
	}
	return d.ids
}

// depSet accumulates non-empty ids in insertion order, skipping repeats.
type depSet struct {
	ids []string
}

func (d *depSet) add(id string) {
	if id == "" {
		return
	}
	for _, have := range d.ids {
		if have == id {
			return
		}
	}
	d.ids = append(d.ids, id)
}
