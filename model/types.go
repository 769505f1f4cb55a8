package model

// VarType is the user-facing type of a variable.
type VarType string

// Supported variable types.
const (
	TypeInt    VarType = "int"
	TypeFloat  VarType = "float"
	TypeDouble VarType = "double"
	TypeString VarType = "string"
	TypeArray  VarType = "array"
	TypeMatrix VarType = "matrix"
	TypeTree   VarType = "tree"
	TypeGraph  VarType = "graph"
)

// ConstraintKind is the discriminant of the Constraint sum type.
type ConstraintKind string

// Constraint kinds, one per variant.
const (
	KindScalar ConstraintKind = "scalar"
	KindArray  ConstraintKind = "array"
	KindMatrix ConstraintKind = "matrix"
	KindString ConstraintKind = "string"
	KindTree   ConstraintKind = "tree"
	KindGraph  ConstraintKind = "graph"
)

// ExpectedKind returns the constraint kind a variable of type t must carry.
// ok is false for types the engine does not know.
func (t VarType) ExpectedKind() (kind ConstraintKind, ok bool) {
	switch t {
	case TypeInt, TypeFloat, TypeDouble:
		return KindScalar, true
	case TypeString:
		return KindString, true
	case TypeArray:
		return KindArray, true
	case TypeMatrix:
		return KindMatrix, true
	case TypeTree:
		return KindTree, true
	case TypeGraph:
		return KindGraph, true
	}

	return "", false
}

// Known reports whether t is one of the supported variable types.
func (t VarType) Known() bool {
	_, ok := t.ExpectedKind()
	return ok
}

// Variable is a named, typed slot whose value is produced by generation.
//
// Dependencies is a convenience list maintained by the editing UI. It may be
// stale; ordering never relies on it. Use DerivedDependencies instead.
type Variable struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         VarType    `json:"type"`
	Constraint   Constraint `json:"-"`
	Dependencies []string   `json:"dependencies,omitempty"`
}

// Label returns the name used in messages: Name when set, otherwise ID.
func (v Variable) Label() string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}

// DerivedDependencies returns the ids referenced by the variable's
// constraint. A variable without a constraint has none.
func (v Variable) DerivedDependencies() []string {
	if v.Constraint == nil {
		return nil
	}
	return v.Constraint.Dependencies()
}

// Diagnostic records a non-fatal condition met while generating or
// formatting one testcase: a missing dependency, a degenerate range, a
// dangling output reference and the like.
type Diagnostic struct {
	Testcase   int    `json:"testcase"`
	VariableID string `json:"variableId,omitempty"`
	Variable   string `json:"variable,omitempty"`
	Reason     string `json:"reason"`
}
