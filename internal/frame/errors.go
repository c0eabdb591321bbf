package frame

import "fmt"

// DomainError reports an input outside the range where the geometry is
// defined, such as an angle whose sine is zero.
type DomainError struct {
	Field string
	Value float64
	msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s = %g: %s", e.Field, e.Value, e.msg)
}

// ConstraintError reports geometry that is defined but violates a frame
// constraint: the 500 mm span limit or a non-positive segment length.
type ConstraintError struct {
	Field string
	Value float64
	Limit float64
	msg   string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s = %.2f (limit %.2f): %s", e.Field, e.Value, e.Limit, e.msg)
}

// Kind names the error class for API responses: "domain" or "constraint"
func (e *DomainError) Kind() string { return "domain" }

func (e *ConstraintError) Kind() string { return "constraint" }
