package resolver

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrCycleDetected indicates a circular dependency among variables.
var ErrCycleDetected = errors.New("resolver: cycle detected")

// CycleError identifies the variable whose revisit closed a cycle.
// errors.Is(err, ErrCycleDetected) holds for every CycleError.
type CycleError struct {
	VariableID   string
	VariableName string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected involving %s", e.VariableName)
}

// Unwrap returns ErrCycleDetected.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }
