package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/types"
)

// Keys of the onboarding fields.
const (
	FieldName       = "name"
	FieldAge        = "age"
	FieldSkill      = "skill"
	FieldExperience = "experience"
	FieldLocation   = "location"
	FieldGender     = "gender"
	FieldPhone      = "phone"
	FieldWage       = "wage_expected"
	FieldEducation  = "education"
	FieldLanguages  = "languages_known"
)

// Age and wage bounds, inclusive.
const (
	MinAge         = 16
	MaxAge         = 70
	MinDailyWage   = 50
	MaxDailyWage   = 10000
	MaxExperience  = 50
	maxNameTokens  = 4
	maxPlaceTokens = 3
)

// DefaultFields returns the onboarding fields in the order they are asked.
func DefaultFields() []types.FieldSpec {
	return []types.FieldSpec{
		{
			Key:          FieldName,
			FillerScopes: []string{"name"},
			Rule: types.FreeTextRule{
				MinTokens:     1,
				MaxTokens:     maxNameTokens,
				MinAlphaRatio: 0.7,
				Code:          types.CodeNotAName,
			},
		},
		{
			Key:          FieldSkill,
			FillerScopes: []string{"skill"},
			Rule: types.CatalogMatchRule{
				Catalog: catalog.Skills,
				Strict:  true,
				Code:    types.CodeUnknownSkill,
			},
		},
		{
			Key:          FieldEducation,
			FillerScopes: []string{"education"},
			Rule: types.CatalogMatchRule{
				Catalog:       catalog.Education,
				MaxFreeTokens: maxPlaceTokens,
				Code:          types.CodeInvalidEducation,
			},
		},
		{
			Key:          FieldAge,
			FillerScopes: []string{"age"},
			Rule:         types.BoundedIntegerRule{Min: MinAge, Max: MaxAge, Code: types.CodeAgeOutOfRange},
		},
		{
			Key:     FieldGender,
			Aliases: []string{"sex"},
			Rule:    types.EnumRule{Catalog: catalog.Genders, Code: types.CodeUnknownGender},
		},
		{
			Key:          FieldExperience,
			FillerScopes: []string{"experience"},
			Rule: types.DurationRule{
				MaxYears:  MaxExperience,
				Code:      types.CodeNoExperienceGiven,
				RangeCode: types.CodeExperienceOutOfRange,
			},
		},
		{
			Key:          FieldLocation,
			Aliases:      []string{"city"},
			FillerScopes: []string{"location"},
			Rule: types.CatalogMatchRule{
				Catalog:       catalog.Locations,
				MaxFreeTokens: maxPlaceTokens,
				Code:          types.CodeInvalidLocation,
			},
		},
		{
			Key:          FieldWage,
			Aliases:      []string{"wage"},
			FillerScopes: []string{"wage"},
			Rule:         types.BoundedIntegerRule{Min: MinDailyWage, Max: MaxDailyWage, Code: types.CodeWageOutOfRange},
		},
		{
			Key:          FieldLanguages,
			Aliases:      []string{"languages"},
			FillerScopes: []string{"languages"},
			Rule:         types.CatalogListRule{Catalog: catalog.Languages},
		},
		{
			Key:          FieldPhone,
			Aliases:      []string{"mobile"},
			FillerScopes: []string{"phone"},
			Rule:         types.PhoneRule{Code: types.CodeInvalidPhone},
		},
	}
}

// Registry is the frozen set of fields, addressable by key or alias.
type Registry struct {
	fields []types.FieldSpec
	keys   map[string]int
}

// NewRegistry builds a registry. Keys and aliases must be unique and every
// field needs a rule.
func NewRegistry(fields ...types.FieldSpec) (*Registry, error) {
	r := &Registry{keys: make(map[string]int)}
	for _, field := range fields {
		if field.Rule == nil {
			return nil, &Error{Message: fmt.Sprintf("field %q has no rule", field.Key)}
		}
		index := len(r.fields)
		for _, key := range append([]string{field.Key}, field.Aliases...) {
			key = normalizeKey(key)
			if key == "" {
				return nil, &Error{Message: fmt.Sprintf("field %q has an empty key or alias", field.Key)}
			}
			if existing, ok := r.keys[key]; ok {
				return nil, &Error{Message: fmt.Sprintf("key %q used by both %q and %q", key, r.fields[existing].Key, field.Key)}
			}
			r.keys[key] = index
		}
		r.fields = append(r.fields, field)
	}
	return r, nil
}

// DefaultRegistry returns a registry of DefaultFields.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultFields()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves a field key or alias, case-insensitively.
func (r *Registry) Lookup(key string) (types.FieldSpec, error) {
	index, ok := r.keys[normalizeKey(key)]
	if !ok {
		return types.FieldSpec{}, &UnknownFieldError{Key: key}
	}
	return r.fields[index], nil
}

// Fields returns the registered fields in registration order.
func (r *Registry) Fields() []types.FieldSpec {
	return append([]types.FieldSpec(nil), r.fields...)
}

// Keys returns the primary keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
