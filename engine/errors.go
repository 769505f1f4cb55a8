package engine

import "github.com/cockroachdb/errors"

// Request validation errors. Callers branch with errors.Is.
var (
	ErrNoVariables     = errors.New("engine: no variables")
	ErrNoOutputLines   = errors.New("engine: output format has no lines")
	ErrUnknownVariable = errors.New("engine: unknown variable")
	ErrInvalidCount    = errors.New("engine: count must be positive")
	ErrCountLimit      = errors.New("engine: count exceeds limit")
)
