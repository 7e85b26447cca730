// Package validation turns raw onboarding answers into canonical field values.
package validation

import (
	"fmt"

	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/numeric"
	"github.com/jonathan/voice-onboarding/internal/tokenize"
	"github.com/jonathan/voice-onboarding/internal/types"
)

// Validator applies the field rules of a registry against a reference data
// bundle. It holds no mutable state and is safe for concurrent use.
type Validator struct {
	registry *Registry
	bundle   *catalog.Bundle
	stripper *tokenize.Stripper
	numbers  *numeric.Extractor
}

// New builds a Validator. Every catalog a field rule references must be
// present in the bundle.
func New(registry *Registry, bundle *catalog.Bundle) (*Validator, error) {
	for _, field := range registry.Fields() {
		name := catalogOf(field.Rule)
		if name == "" {
			continue
		}
		if _, err := bundle.Catalog(name); err != nil {
			return nil, &Error{Message: fmt.Sprintf("field %q", field.Key), Cause: err}
		}
	}
	if _, err := bundle.Catalog(catalog.Fresher); err != nil && hasDuration(registry) {
		return nil, &Error{Message: "duration fields need the fresher catalog", Cause: err}
	}

	return &Validator{
		registry: registry,
		bundle:   bundle,
		stripper: tokenize.NewStripper(bundle.Fillers()...),
		numbers:  numeric.NewExtractor(bundle.Vocabularies()...),
	}, nil
}

// Registry returns the field registry.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Stripper returns the filler stripper built from the bundle.
func (v *Validator) Stripper() *tokenize.Stripper {
	return v.stripper
}

// Validate checks one answer. A rejected answer is reported in the result;
// an error is returned only for an unknown field key or unsupported locale.
func (v *Validator) Validate(fieldKey, raw string, locale types.Locale) (types.ValidationResult, error) {
	field, err := v.registry.Lookup(fieldKey)
	if err != nil {
		return types.ValidationResult{}, err
	}
	if !supported(locale) {
		return types.ValidationResult{}, &types.LocaleError{Tag: string(locale), Message: "unsupported locale"}
	}

	tokens := tokenize.Tokenize(raw)
	in := answer{
		raw:      raw,
		locale:   locale,
		tokens:   tokens,
		stripped: v.stripper.Strip(tokens, locale, field.FillerScopes...),
		scopes:   field.FillerScopes,
	}

	switch rule := field.Rule.(type) {
	case types.FreeTextRule:
		return v.freeText(in, rule), nil
	case types.BoundedIntegerRule:
		return v.boundedInteger(in, rule), nil
	case types.CatalogMatchRule:
		return v.catalogMatch(in, rule), nil
	case types.DurationRule:
		return v.duration(in, rule), nil
	case types.EnumRule:
		return v.enum(in, rule), nil
	case types.PhoneRule:
		return v.phone(in, rule), nil
	case types.CatalogListRule:
		return v.catalogList(in, rule), nil
	default:
		return types.ValidationResult{}, &Error{Message: fmt.Sprintf("field %q has unsupported rule %T", field.Key, rule)}
	}
}

// answer is one raw answer prepared for a field.
type answer struct {
	raw      string
	locale   types.Locale
	tokens   []string
	stripped []string
	scopes   []string
}

func (a answer) empty() bool {
	return len(a.stripped) == 0
}

func (a answer) reject(code types.ErrorCode) types.ValidationResult {
	return types.Reject(a.raw, code)
}

func (a answer) accept(cleaned string) types.ValidationResult {
	return types.Accept(a.raw, cleaned)
}

func catalogOf(rule types.Rule) string {
	switch r := rule.(type) {
	case types.CatalogMatchRule:
		return r.Catalog
	case types.EnumRule:
		return r.Catalog
	case types.CatalogListRule:
		return r.Catalog
	default:
		return ""
	}
}

func hasDuration(r *Registry) bool {
	for _, field := range r.Fields() {
		if _, ok := field.Rule.(types.DurationRule); ok {
			return true
		}
	}
	return false
}

func supported(locale types.Locale) bool {
	for _, l := range types.SupportedLocales() {
		if l == locale {
			return true
		}
	}
	return false
}

// mustCatalog returns a catalog New already checked for.
func (v *Validator) mustCatalog(name string) *catalog.Catalog {
	c, err := v.bundle.Catalog(name)
	if err != nil {
		panic(err)
	}
	return c
}
