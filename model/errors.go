package model

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownConstraintKind is returned when a constraint's "type" tag
	// does not name any known variant.
	ErrUnknownConstraintKind = errors.New("model: unknown constraint kind")

	// ErrConstraintMismatch indicates a variable whose declared type and
	// constraint variant disagree (for example a scalar constraint on a graph).
	ErrConstraintMismatch = errors.New("model: constraint does not match variable type")

	// ErrDuplicateID indicates two variables sharing the same id.
	ErrDuplicateID = errors.New("model: duplicate variable id")

	// ErrEmptyID indicates a variable without an id.
	ErrEmptyID = errors.New("model: variable id is empty")
)
