package onboarding

import "fmt"

// QuestionNotFoundError is returned for a question key with no prompt.
type QuestionNotFoundError struct {
	Key string
}

func (e *QuestionNotFoundError) Error() string {
	return fmt.Sprintf("no question for key %q", e.Key)
}

// LoadError represents a failure to build the engine's reference state.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
