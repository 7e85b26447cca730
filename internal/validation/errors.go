package validation

import "fmt"

// UnknownFieldError is returned when a field key is not registered.
type UnknownFieldError struct {
	Key string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %q", e.Key)
}

// Error represents an inconsistent field registry, such as two fields
// claiming the same key or a rule referencing a missing catalog.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
