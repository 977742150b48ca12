package similarity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTermStatistics is returned when a weight is computed without any
	// term statistics.
	ErrNoTermStatistics = errors.New("at least one term statistic is required")
)

// ParameterError indicates a similarity parameter outside its legal range.
// Parameters are never clamped; construction fails instead.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("illegal %s value: %g, %s", e.Name, e.Value, e.Reason)
}
