package model

// Value is the generated data for one variable within one testcase.
// Variants: Scalar, Sequence, Grid, Text.
type Value interface {
	isValue()
}

// Scalar is a single integer.
type Scalar int64

// Sequence is a row of integers.
type Sequence []int64

// Grid is a list of integer rows. Rows may differ in length.
type Grid [][]int64

// Text is a character string.
type Text string

func (Scalar) isValue()   {}
func (Sequence) isValue() {}
func (Grid) isValue()     {}
func (Text) isValue()     {}

// Values maps variable id to the value generated for it. One map belongs to
// exactly one testcase.
type Values map[string]Value

// Int returns the scalar stored under id. ok is false when the id is absent
// or holds a non-scalar value.
func (vs Values) Int(id string) (n int64, ok bool) {
	v, found := vs[id]
	if !found {
		return 0, false
	}
	s, isScalar := v.(Scalar)
	if !isScalar {
		return 0, false
	}
	return int64(s), true
}
