package explanation

import (
	"fmt"
	"slices"
	"strings"
)

// Explanation describes how a score factor was computed.
//
// The zero value is not useful; build explanations with New.
type Explanation struct {
	value       float64
	description string
	details     []*Explanation
}

// New creates an Explanation with the given value, description and child details.
// The details slice is cloned, so the tree cannot be mutated through the caller's
// slice afterwards.
func New(value float64, description string, details ...*Explanation) *Explanation {
	return &Explanation{
		value:       value,
		description: description,
		details:     slices.Clone(details),
	}
}

// Newf is New with fmt.Sprintf formatting for the description.
func Newf(value float64, format string, args ...any) *Explanation {
	return New(value, fmt.Sprintf(format, args...))
}

// Value returns the value of this factor.
func (e *Explanation) Value() float64 { return e.value }

// Description returns what this factor represents.
func (e *Explanation) Description() string { return e.description }

// Details returns the sub-factors, in the order they were supplied to New.
// The returned slice must not be modified.
func (e *Explanation) Details() []*Explanation { return e.details }

// String renders the explanation tree with two-space indentation per level.
func (e *Explanation) String() string {
	var sb strings.Builder
	e.render(&sb, 0)
	return sb.String()
}

func (e *Explanation) render(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	fmt.Fprintf(sb, "%g = %s\n", e.value, e.description)
	for _, d := range e.details {
		d.render(sb, depth+1)
	}
}
