package model

import (
	"strconv"
	"strings"
)

// Summary renders a short human description of v's constraint, resolving
// linked ids to names through vars. It returns "" when there is nothing
// worth showing.
func Summary(v Variable, vars []Variable) string {
	name := func(id string) string {
		for _, other := range vars {
			if other.ID == id {
				return other.Label()
			}
		}
		return ""
	}

	switch c := v.Constraint.(type) {
	case *ScalarConstraint:
		var parts []string
		if c.Min != nil {
			parts = append(parts, strconv.FormatInt(*c.Min, 10))
		}
		if c.Max != nil {
			parts = append(parts, strconv.FormatInt(*c.Max, 10))
		}
		if len(parts) == 0 {
			return ""
		}
		return "[" + strings.Join(parts, "-") + "]"

	case *ArrayConstraint:
		if c.SizeType == SizeLinked {
			if n := name(c.LinkedVariable); n != "" {
				return "size: " + n
			}
			return ""
		}
		if c.MinSize == nil {
			return ""
		}
		hi := "∞"
		if c.MaxSize != nil {
			hi = strconv.FormatInt(*c.MaxSize, 10)
		}
		return "[" + strconv.FormatInt(*c.MinSize, 10) + "-" + hi + "]"

	case *MatrixConstraint:
		var parts []string
		if c.MatrixType != "" {
			parts = append(parts, string(c.MatrixType))
		}
		if c.RowsType == SizeManual && c.MinRows != nil {
			cols := "?"
			if c.MinCols != nil {
				cols = strconv.FormatInt(*c.MinCols, 10)
			}
			parts = append(parts, strconv.FormatInt(*c.MinRows, 10)+"×"+cols)
		}
		return strings.Join(parts, " ")

	case *StringConstraint:
		return string(c.CharSet)

	case *TreeConstraint:
		parts := []string{string(c.TreeType)}
		if c.MaxDepth != nil {
			parts = append(parts, "depth≤"+strconv.FormatInt(*c.MaxDepth, 10))
		}
		return strings.Join(parts, " ")

	case *GraphConstraint:
		parts := []string{string(c.GraphType)}
		if c.Connected {
			parts = append(parts, "connected")
		}
		if c.Weighted {
			parts = append(parts, "weighted")
		}
		return strings.Join(parts, " ")
	}

	return ""
}
