// Package model defines the data a generation request is made of: typed
// variables, the constraint attached to each of them, the values produced
// for them during one testcase, and the declarative output layout.
//
// The package is pure data plus a few helpers; it has no randomness and no
// I/O. Behavior lives in the resolver, generator and format packages.
//
// Constraint is a closed sum type. Exactly one variant exists per kind:
//
//	*ScalarConstraint  int, float, double
//	*ArrayConstraint   array
//	*MatrixConstraint  matrix
//	*StringConstraint  string
//	*TreeConstraint    tree
//	*GraphConstraint   graph
//
// Every variant reports the ids it depends on through Dependencies. That list
// is the only place a dependency is derived from: the resolver orders
// variables by it and the generators read exactly those fields, so the two
// can never disagree.
//
// Value is the matching sum type for generated data:
//
//	Scalar    one integer
//	Sequence  a row of integers (arrays, tree serializations)
//	Grid      rows of integers, possibly ragged (matrices, adjacency lists, edge lists)
//	Text      a string
//
// JSON is the canonical wire form. A variable's constraint is a tagged object
// whose "type" field names the variant:
//
//	{"id":"n","name":"n","type":"int","constraint":{"type":"scalar","min":1,"max":10}}
package model
