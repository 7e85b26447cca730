//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// ValidateRequest is the body of a single-answer validation call.
type ValidateRequest struct {
	FieldKey string `json:"field_key" validate:"required"`
	Text     string `json:"text"`
	Locale   string `json:"locale" validate:"required"`
}

// BatchValidateRequest validates a whole set of onboarding answers at once.
type BatchValidateRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
	Locale  string            `json:"locale" validate:"required"`
}

// IntentRequest is the body of an intent classification call.
type IntentRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale" validate:"required"`
}

// ValidateResponse is a ValidationResult plus its localized explanation.
type ValidateResponse struct {
	FieldKey string `json:"field_key"`
	ValidationResult
	ErrorMessage string `json:"error_message,omitempty"`
}

// BatchValidateResponse holds one response per submitted field key.
type BatchValidateResponse struct {
	Results  map[string]ValidateResponse `json:"results"`
	AllValid bool                        `json:"all_valid"`
}

// IntentResponse carries the classified intent and a re-prompt message when unrecognized.
type IntentResponse struct {
	IntentResult
	Message string `json:"message,omitempty"`
}

// Question is an onboarding prompt rendered in one locale.
type Question struct {
	Key    string `json:"key"`
	Locale Locale `json:"locale"`
	Text   string `json:"text"`
}

// Validate validates the ValidateRequest using the validator.
func (r *ValidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchValidateRequest using the validator.
func (r *BatchValidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the IntentRequest using the validator.
func (r *IntentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
