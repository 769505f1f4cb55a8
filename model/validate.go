package model

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Severity grades a validation issue.
type Severity string

// Severities. Warnings never block generation.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is one finding of Validate.
type Issue struct {
	VariableID   string   `json:"variableId"`
	VariableName string   `json:"variableName"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
}

// CheckDefinitions enforces the invariants generation cannot work around:
// non-empty unique ids and agreement between a known type and its
// constraint variant. Unknown types are allowed; they fall back to the
// default scalar generator.
func CheckDefinitions(vars []Variable) error {
	seen := make(map[string]struct{}, len(vars))
	for i, v := range vars {
		if v.ID == "" {
			return errors.Wrapf(ErrEmptyID, "variable #%d (%q)", i, v.Name)
		}
		if _, dup := seen[v.ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "id %q", v.ID)
		}
		seen[v.ID] = struct{}{}

		if err := checkKind(v); err != nil {
			return err
		}
	}

	return nil
}

func checkKind(v Variable) error {
	if v.Constraint == nil {
		return nil
	}
	want, known := v.Type.ExpectedKind()
	if !known || want == v.Constraint.Kind() {
		return nil
	}

	return errors.WithHintf(
		errors.Wrapf(ErrConstraintMismatch, "variable %q has type %s but a %s constraint",
			v.Label(), v.Type, v.Constraint.Kind()),
		"use a %s constraint for %s variables", want, v.Type)
}

// Validate reports everything suspicious about a variable set without
// failing: inverted bounds, links to unknown variables, stale entries in the
// convenience dependency list and the hard errors of CheckDefinitions.
// Issues are listed in variable order.
func Validate(vars []Variable) []Issue {
	ids := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		ids[v.ID] = struct{}{}
	}

	var issues []Issue
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		report := func(sev Severity, format string, args ...any) {
			issues = append(issues, Issue{
				VariableID:   v.ID,
				VariableName: v.Label(),
				Severity:     sev,
				Message:      fmt.Sprintf(format, args...),
			})
		}

		if v.ID == "" {
			report(SeverityError, "variable id is empty")
		} else if _, dup := seen[v.ID]; dup {
			report(SeverityError, "duplicate variable id %q", v.ID)
		}
		seen[v.ID] = struct{}{}

		if !v.Type.Known() {
			report(SeverityWarning, "unknown type %q, a default scalar will be generated", v.Type)
		}
		if err := checkKind(v); err != nil {
			report(SeverityError, "type %s does not accept a %s constraint", v.Type, v.Constraint.Kind())
		}

		for _, id := range v.DerivedDependencies() {
			if _, ok := ids[id]; !ok {
				report(SeverityWarning, "constraint references unknown variable %q", id)
			} else if id == v.ID {
				report(SeverityError, "constraint references the variable itself")
			}
		}
		for _, id := range v.Dependencies {
			if _, ok := ids[id]; !ok {
				report(SeverityWarning, "dependency list references unknown variable %q", id)
			}
		}

		for _, b := range bounds(v.Constraint) {
			if b.lo != nil && b.hi != nil && *b.lo > *b.hi {
				report(SeverityWarning, "%s min %d is greater than max %d", b.what, *b.lo, *b.hi)
			}
		}
	}

	return issues
}

type boundPair struct {
	what   string
	lo, hi *int64
}

// bounds lists the min/max pairs of a constraint for range checks.
func bounds(c Constraint) []boundPair {
	switch c := c.(type) {
	case *ScalarConstraint:
		return []boundPair{{"value", c.Min, c.Max}}
	case *ArrayConstraint:
		return []boundPair{{"size", c.MinSize, c.MaxSize}, {"element", c.ElementMin, c.ElementMax}}
	case *MatrixConstraint:
		return []boundPair{{"rows", c.MinRows, c.MaxRows}, {"cols", c.MinCols, c.MaxCols}, {"cell", c.CellMin, c.CellMax}}
	case *StringConstraint:
		return []boundPair{{"length", c.MinLength, c.MaxLength}}
	case *TreeConstraint:
		return []boundPair{{"nodes", c.MinNodes, c.MaxNodes}, {"depth", c.MinDepth, c.MaxDepth}, {"node value", c.NodeValueMin, c.NodeValueMax}}
	case *GraphConstraint:
		return []boundPair{{"nodes", c.MinNodes, c.MaxNodes}, {"edges", c.MinEdges, c.MaxEdges}, {"degree", c.MinDegree, c.MaxDegree}, {"weight", c.MinWeight, c.MaxWeight}}
	}

	return nil
}
