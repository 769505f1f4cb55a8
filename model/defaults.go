package model

// DefaultConstraint returns the constraint a freshly created variable of type
// t starts with. ok is false for unknown types.
func DefaultConstraint(t VarType) (c Constraint, ok bool) {
	switch t {
	case TypeInt, TypeFloat, TypeDouble:
		return &ScalarConstraint{}, true
	case TypeArray:
		return &ArrayConstraint{SizeType: SizeManual}, true
	case TypeMatrix:
		return &MatrixConstraint{RowsType: SizeManual, ColsType: SizeManual}, true
	case TypeString:
		return &StringConstraint{LengthType: SizeManual, CharSet: CharsLowercase}, true
	case TypeTree:
		return &TreeConstraint{NodeCountType: SizeManual, TreeType: TreeBinary}, true
	case TypeGraph:
		return &GraphConstraint{NodesType: SizeManual, EdgesType: SizeManual, GraphType: GraphUndirected}, true
	}

	return nil, false
}
