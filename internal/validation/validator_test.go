package validation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/types"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	bundle, err := catalog.LoadDefault()
	require.NoError(t, err)
	v, err := New(DefaultRegistry(), bundle)
	require.NoError(t, err)
	return v
}

type validationCase struct {
	name    string
	input   string
	locale  types.Locale
	valid   bool
	cleaned string
	code    types.ErrorCode
	subCode types.ErrorCode
}

func runCases(t *testing.T, field string, cases []validationCase) {
	t.Helper()
	v := newTestValidator(t)
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			locale := tt.locale
			if locale == "" {
				locale = types.LocaleEnglish
			}
			result, err := v.Validate(field, tt.input, locale)
			require.NoError(t, err)
			assert.Equal(t, tt.input, result.RawInput)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Equal(t, tt.cleaned, result.CleanedValue)
				assert.Empty(t, result.ErrorCode)
			} else {
				assert.Equal(t, tt.code, result.ErrorCode)
				assert.Equal(t, tt.subCode, result.SubCode)
				assert.Empty(t, result.CleanedValue)
			}
		})
	}
}

func TestValidate_Name(t *testing.T) {
	runCases(t, FieldName, []validationCase{
		{name: "plain name", input: "Rajesh Kumar", valid: true, cleaned: "Rajesh Kumar"},
		{name: "filler phrase", input: "My name is Rajesh Kumar", valid: true, cleaned: "Rajesh Kumar"},
		{name: "lower case", input: "rajesh", valid: true, cleaned: "Rajesh"},
		{name: "hindi filler", input: "मेरा नाम राम है", locale: types.LocaleHindi, valid: true, cleaned: "राम"},
		{name: "hindi speaker using english filler", input: "my name is Sita", locale: types.LocaleHindi, valid: true, cleaned: "Sita"},
		{name: "digits", input: "123 invalid", code: types.CodeNotAName},
		{name: "too many words", input: "ram shyam mohan sohan rohan", code: types.CodeNotAName},
		{name: "empty", input: "", code: types.CodeEmptyInput},
		{name: "only filler", input: "my name is", code: types.CodeEmptyInput},
	})
}

func TestValidate_Age(t *testing.T) {
	runCases(t, FieldAge, []validationCase{
		{name: "digits", input: "25", valid: true, cleaned: "25"},
		{name: "sentence", input: "I am 25 years old", valid: true, cleaned: "25"},
		{name: "spelled", input: "twenty five", valid: true, cleaned: "25"},
		{name: "lower bound", input: "16", valid: true, cleaned: "16"},
		{name: "upper bound", input: "70", valid: true, cleaned: "70"},
		{name: "devanagari digits", input: "मेरी उम्र २५ साल है", locale: types.LocaleHindi, valid: true, cleaned: "25"},
		{name: "hindi words", input: "बीस", locale: types.LocaleHindi, valid: true, cleaned: "20"},
		{name: "first number wins", input: "30 or 40", valid: true, cleaned: "30"},
		{name: "too young", input: "15", code: types.CodeAgeOutOfRange},
		{name: "too old", input: "71", code: types.CodeAgeOutOfRange},
		{name: "scaled past max int", input: "4611686018427387905 hundred", code: types.CodeAgeOutOfRange},
		{name: "digits past max int", input: "99999999999999999999999", code: types.CodeAgeOutOfRange},
		{name: "no number", input: "I don't know", code: types.CodeAgeOutOfRange, subCode: types.CodeNoNumberFound},
		{name: "empty", input: "   ", code: types.CodeEmptyInput},
	})
}

func TestValidate_Skill(t *testing.T) {
	runCases(t, FieldSkill, []validationCase{
		{name: "typo", input: "I am a paintr", valid: true, cleaned: "Painter"},
		{name: "exact", input: "plumber", valid: true, cleaned: "Plumber"},
		{name: "canonical", input: "Painter", valid: true, cleaned: "Painter"},
		{name: "devanagari", input: "पेंटर", locale: types.LocaleHindi, valid: true, cleaned: "Painter"},
		{name: "longer alias wins", input: "bijli mistri", valid: true, cleaned: "Electrician"},
		{name: "skill filler", input: "I work as a driver", valid: true, cleaned: "Driver"},
		{name: "multi word", input: "security guard", valid: true, cleaned: "Security Guard"},
		{name: "unknown", input: "xyz nonjob", code: types.CodeUnknownSkill},
		{name: "empty", input: "", code: types.CodeEmptyInput},
	})
}

func TestValidate_Experience(t *testing.T) {
	runCases(t, FieldExperience, []validationCase{
		{name: "months carried into years", input: "18 months", valid: true, cleaned: "1 years 6 months"},
		{name: "whole years from months", input: "24 months", valid: true, cleaned: "2 years"},
		{name: "few months", input: "6 months", valid: true, cleaned: "6 months"},
		{name: "years", input: "5 years", valid: true, cleaned: "5 years"},
		{name: "no unit", input: "3", valid: true, cleaned: "3 years"},
		{name: "sentence", input: "I have 5 years of experience", valid: true, cleaned: "5 years"},
		{name: "years and months", input: "5 years and 6 months", valid: true, cleaned: "5 years 6 months"},
		{name: "fresher", input: "I am a fresher", valid: true, cleaned: "Fresher"},
		{name: "no experience", input: "no experience", valid: true, cleaned: "Fresher"},
		{name: "hindi fresher", input: "कोई नहीं", locale: types.LocaleHindi, valid: true, cleaned: "Fresher"},
		{name: "hindi years", input: "5 साल", locale: types.LocaleHindi, valid: true, cleaned: "5 years"},
		{name: "transliterated", input: "2 saal ka anubhav", locale: types.LocaleHindi, valid: true, cleaned: "2 years"},
		{name: "transliterated months", input: "8 mahine", locale: types.LocaleHindi, valid: true, cleaned: "8 months"},
		{name: "spelled", input: "two years", valid: true, cleaned: "2 years"},
		{name: "new as a fresher", input: "I am new", valid: true, cleaned: "Fresher"},
		{name: "hindi new as a fresher", input: "मैं नया हूं", locale: types.LocaleHindi, valid: true, cleaned: "Fresher"},
		{name: "place named new", input: "5 years in New Delhi", valid: true, cleaned: "5 years"},
		{name: "hindi place named new", input: "3 साल नई दिल्ली में", locale: types.LocaleHindi, valid: true, cleaned: "3 years"},
		{name: "unrealistic", input: "60 years", code: types.CodeExperienceOutOfRange},
		{name: "years past max int", input: "99999999999999999999999 years", code: types.CodeExperienceOutOfRange},
		{name: "years and months past max int", input: "4611686018427387905 hundred years 6 months", code: types.CodeExperienceOutOfRange},
		{name: "months past max int", input: "2 years 99999999999999999999999 months", code: types.CodeExperienceOutOfRange},
		{name: "no number", input: "a lot", code: types.CodeNoExperienceGiven},
		{name: "empty", input: "", code: types.CodeEmptyInput},
	})
}

func TestValidate_Location(t *testing.T) {
	runCases(t, FieldLocation, []validationCase{
		{name: "city", input: "Mumbai", valid: true, cleaned: "Mumbai"},
		{name: "old name", input: "bombay", valid: true, cleaned: "Mumbai"},
		{name: "typo", input: "mumbaai", valid: true, cleaned: "Mumbai"},
		{name: "filler", input: "I am from pune", valid: true, cleaned: "Pune"},
		{name: "devanagari", input: "मैं दिल्ली से हूं", locale: types.LocaleHindi, valid: true, cleaned: "Delhi"},
		{name: "state abbreviation", input: "UP", valid: true, cleaned: "Uttar Pradesh"},
		{name: "two word city", input: "navi mumbai", valid: true, cleaned: "Navi Mumbai"},
		{name: "unknown but plausible", input: "Rampur", valid: true, cleaned: "Rampur"},
		{name: "digits", input: "12345", code: types.CodeInvalidLocation},
		{name: "empty", input: "", code: types.CodeEmptyInput},
	})
}

func TestValidate_Gender(t *testing.T) {
	runCases(t, FieldGender, []validationCase{
		{name: "male", input: "male", valid: true, cleaned: "Male"},
		{name: "sentence", input: "I am a female", valid: true, cleaned: "Female"},
		{name: "hindi", input: "पुरुष", locale: types.LocaleHindi, valid: true, cleaned: "Male"},
		{name: "title", input: "Mrs Sharma", valid: true, cleaned: "Female"},
		{name: "earliest wins", input: "boy not girl", valid: true, cleaned: "Male"},
		{name: "no fuzzy matching", input: "femal", code: types.CodeUnknownGender},
		{name: "other", input: "other", code: types.CodeUnknownGender},
		{name: "empty", input: "", code: types.CodeEmptyInput},
	})
}

func TestValidate_Phone(t *testing.T) {
	runCases(t, FieldPhone, []validationCase{
		{name: "plain", input: "9876543210", valid: true, cleaned: "9876543210"},
		{name: "country code", input: "+91 98765 43210", valid: true, cleaned: "9876543210"},
		{name: "trunk prefix", input: "my number is 09876543210", valid: true, cleaned: "9876543210"},
		{name: "devanagari digits", input: "९८७६५४३२१०", locale: types.LocaleHindi, valid: true, cleaned: "9876543210"},
		{name: "spoken digits", input: "nine eight seven six five four three two one zero", valid: true, cleaned: "9876543210"},
		{name: "too short", input: "12345", code: types.CodeInvalidPhone},
		{name: "bad leading digit", input: "5876543210", code: types.CodeInvalidPhone},
		{name: "empty", input: "", code: types.CodeEmptyInput},
	})
}

func TestValidate_Wage(t *testing.T) {
	runCases(t, FieldWage, []validationCase{
		{name: "rupees per day", input: "500 rupees per day", valid: true, cleaned: "500"},
		{name: "spelled", input: "five hundred", valid: true, cleaned: "500"},
		{name: "thousand multiplier", input: "5 thousand", valid: true, cleaned: "5000"},
		{name: "hindi", input: "700 रुपये रोज", locale: types.LocaleHindi, valid: true, cleaned: "700"},
		{name: "too low", input: "20", code: types.CodeWageOutOfRange},
		{name: "too high", input: "1 lakh", code: types.CodeWageOutOfRange},
		{name: "scaled past max int", input: "4611686018427387905 hundred", code: types.CodeWageOutOfRange},
		{name: "hindi scaled past max int", input: "4611686018427387905 हजार", locale: types.LocaleHindi, code: types.CodeWageOutOfRange},
		{name: "no number", input: "whatever you give", code: types.CodeWageOutOfRange, subCode: types.CodeNoNumberFound},
	})
}

func TestValidate_Education(t *testing.T) {
	runCases(t, FieldEducation, []validationCase{
		{name: "exact", input: "10th pass", valid: true, cleaned: "10th Pass"},
		{name: "filler", input: "I studied till 12th", valid: true, cleaned: "12th Pass"},
		{name: "degree", input: "graduate", valid: true, cleaned: "Graduate"},
		{name: "hindi", input: "दसवीं पास", locale: types.LocaleHindi, valid: true, cleaned: "10th Pass"},
		{name: "digits only", input: "123", code: types.CodeInvalidEducation},
	})
}

func TestValidate_Languages(t *testing.T) {
	runCases(t, FieldLanguages, []validationCase{
		{name: "conjunction", input: "Hindi and English", valid: true, cleaned: "Hindi, English"},
		{name: "duplicates removed", input: "hindi, hinglish, english", valid: true, cleaned: "Hindi, English"},
		{name: "misheard", input: "kanada", valid: true, cleaned: "Kannada"},
		{name: "slash", input: "tamil / telugu", valid: true, cleaned: "Tamil, Telugu"},
		{name: "devanagari", input: "हिंदी और अंग्रेजी", locale: types.LocaleHindi, valid: true, cleaned: "Hindi, English"},
		{name: "filler", input: "I know Marathi", valid: true, cleaned: "Marathi"},
		{name: "empty", input: "", code: types.CodeEmptyInput},
	})
}

func TestValidate_Idempotent(t *testing.T) {
	v := newTestValidator(t)

	inputs := map[string]string{
		FieldName:       "my name is rajesh kumar",
		FieldAge:        "I am 30 years old",
		FieldSkill:      "paintr",
		FieldExperience: "18 months",
		FieldLocation:   "bombay",
		FieldGender:     "lady",
		FieldPhone:      "+91 98765 43210",
		FieldWage:       "five hundred",
		FieldEducation:  "matric",
		FieldLanguages:  "hindi aur english",
	}

	for field, input := range inputs {
		t.Run(field, func(t *testing.T) {
			first, err := v.Validate(field, input, types.LocaleEnglish)
			require.NoError(t, err)
			require.True(t, first.Valid, "first pass should be valid: %+v", first)

			second, err := v.Validate(field, first.CleanedValue, types.LocaleEnglish)
			require.NoError(t, err)
			assert.True(t, second.Valid)
			assert.Equal(t, first.CleanedValue, second.CleanedValue)
		})
	}
}

func TestValidate_FieldAliasesAndCase(t *testing.T) {
	v := newTestValidator(t)

	result, err := v.Validate("sex", "male", types.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Male", result.CleanedValue)

	result, err = v.Validate("  AGE ", "25", types.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, "25", result.CleanedValue)
}

func TestValidate_ContractViolations(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.Validate("favourite_colour", "blue", types.LocaleEnglish)
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "favourite_colour", unknown.Key)

	_, err = v.Validate(FieldAge, "25", types.Locale("fr"))
	var localeErr *types.LocaleError
	require.ErrorAs(t, err, &localeErr)

	_, err = v.Validate(FieldAge, "25", "")
	require.ErrorAs(t, err, &localeErr)
}

func TestValidate_Concurrent(t *testing.T) {
	v := newTestValidator(t)

	expected, err := v.Validate(FieldSkill, "I am a paintr", types.LocaleEnglish)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]types.ValidationResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = v.Validate(FieldSkill, "I am a paintr", types.LocaleEnglish)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}

func TestNew_MissingCatalog(t *testing.T) {
	bundle := catalog.NewBundle(nil, nil, nil)
	_, err := New(DefaultRegistry(), bundle)
	require.Error(t, err)

	var notFound *catalog.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
