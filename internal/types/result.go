//nolint:revive // types is a standard Go package name pattern
package types

// ErrorCode identifies why an answer was rejected. Codes are stable and are
// rendered to the user's locale by the messages package.
type ErrorCode string

const (
	CodeEmptyInput         ErrorCode = "empty_input"
	CodeNotAName           ErrorCode = "not_a_name"
	CodeAgeOutOfRange      ErrorCode = "age_out_of_range"
	CodeNoNumberFound      ErrorCode = "no_number_found"
	CodeUnknownSkill       ErrorCode = "unknown_skill"
	CodeNoExperienceGiven  ErrorCode = "no_experience_given"
	CodeUnknownGender      ErrorCode = "unknown_gender"
	CodeUnrecognizedIntent ErrorCode = "unrecognized_intent"

	CodeExperienceOutOfRange ErrorCode = "experience_out_of_range"
	CodeInvalidLocation      ErrorCode = "invalid_location"
	CodeInvalidPhone         ErrorCode = "invalid_phone"
	CodeWageOutOfRange       ErrorCode = "wage_out_of_range"
	CodeInvalidEducation     ErrorCode = "invalid_education"
)

// ValidationResult is the outcome of validating one onboarding answer.
// A rejected answer is a normal result, not an error.
type ValidationResult struct {
	Valid        bool      `json:"valid"`
	CleanedValue string    `json:"cleaned_value,omitempty"`
	ErrorCode    ErrorCode `json:"error_code,omitempty"`
	// SubCode narrows ErrorCode, e.g. AgeOutOfRange caused by NoNumberFound.
	SubCode  ErrorCode `json:"sub_code,omitempty"`
	RawInput string    `json:"raw_input"`
}

// Accept builds a valid result carrying the canonical value.
func Accept(raw, cleaned string) ValidationResult {
	return ValidationResult{Valid: true, CleanedValue: cleaned, RawInput: raw}
}

// Reject builds an invalid result with the given code.
func Reject(raw string, code ErrorCode) ValidationResult {
	return ValidationResult{ErrorCode: code, RawInput: raw}
}

// RejectWithDetail builds an invalid result with a code and a narrowing sub-code.
func RejectWithDetail(raw string, code, sub ErrorCode) ValidationResult {
	return ValidationResult{ErrorCode: code, SubCode: sub, RawInput: raw}
}

// MatchResult is the best catalog entry found for a phrase.
type MatchResult struct {
	Canonical string  `json:"canonical"`
	Alias     string  `json:"alias"`
	Score     float64 `json:"score"`
	Matched   bool    `json:"matched"`
}
