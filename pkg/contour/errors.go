package contour

import "fmt"

// ToleranceError is returned when the endpoint matching tolerance is not a
// positive number.
type ToleranceError struct {
	Tolerance float64
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("tolerance must be a positive number, got %g", e.Tolerance)
}

// OptionsError is returned for extraction options that cannot produce a
// sequence of contour levels.
type OptionsError struct {
	Field  string
	Reason string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid contour option %s: %s", e.Field, e.Reason)
}
