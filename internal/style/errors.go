package style

import "fmt"

// StyleConfigError is returned when a style override fails validation
type StyleConfigError struct {
	Field   string
	Message string
	Cause   error
}

func (e *StyleConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid style configuration at %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid style configuration: %s", e.Message)
}

func (e *StyleConfigError) Unwrap() error {
	return e.Cause
}
