package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/voice-onboarding/internal/onboarding"
	"github.com/jonathan/voice-onboarding/internal/types"
	"github.com/jonathan/voice-onboarding/internal/validation"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Contract violations (unknown field, bad locale, malformed request) are the
// caller's fault and map to 400.
func HTTPStatus(err error) int {
	var (
		unknownField *validation.UnknownFieldError
		localeErr    *types.LocaleError
		requestErr   *ErrValidation
		fieldErrs    validator.ValidationErrors
		notFound     *onboarding.QuestionNotFoundError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &unknownField),
		errors.As(err, &localeErr),
		errors.As(err, &requestErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
