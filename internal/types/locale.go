// Package types provides type definitions for structured data used throughout the voice onboarding engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies the language of a user's answer.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
)

// SupportedLocales lists every locale the engine carries reference data for.
func SupportedLocales() []Locale {
	return []Locale{LocaleEnglish, LocaleHindi}
}

// LocaleError reports a missing or unsupported locale tag.
type LocaleError struct {
	Tag     string
	Message string
	Cause   error
}

func (e *LocaleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("locale error: %q: %s: %v", e.Tag, e.Message, e.Cause)
	}
	return fmt.Sprintf("locale error: %q: %s", e.Tag, e.Message)
}

func (e *LocaleError) Unwrap() error {
	return e.Cause
}

// ParseLocale canonicalizes a BCP 47 style tag ("hi", "en-IN", "HI_in") to a supported Locale.
func ParseLocale(tag string) (Locale, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", &LocaleError{Tag: tag, Message: "locale is required"}
	}

	parsed, err := language.Parse(trimmed)
	if err != nil {
		return "", &LocaleError{Tag: tag, Message: "not a valid language tag", Cause: err}
	}

	base, confidence := parsed.Base()
	if confidence == language.No {
		return "", &LocaleError{Tag: tag, Message: "language could not be determined"}
	}

	locale := Locale(base.String())
	for _, supported := range SupportedLocales() {
		if locale == supported {
			return locale, nil
		}
	}
	return "", &LocaleError{Tag: tag, Message: fmt.Sprintf("unsupported language %q", base.String())}
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}
