package onboarding

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-onboarding/internal/types"
	"github.com/jonathan/voice-onboarding/internal/validation"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := New(opts)
	require.NoError(t, err)
	return e
}

func TestEngine_Validate(t *testing.T) {
	e := newTestEngine(t, Options{})

	tests := []struct {
		field    string
		input    string
		locale   string
		expected types.ValidationResult
	}{
		{
			field:    "name",
			input:    "My name is Rajesh Kumar",
			locale:   "en",
			expected: types.Accept("My name is Rajesh Kumar", "Rajesh Kumar"),
		},
		{
			field:    "experience",
			input:    "18 months",
			locale:   "en-IN",
			expected: types.Accept("18 months", "1 years 6 months"),
		},
		{
			field:    "skill",
			input:    "xyz nonjob",
			locale:   "en",
			expected: types.Reject("xyz nonjob", types.CodeUnknownSkill),
		},
		{
			field:    "sex",
			input:    "महिला",
			locale:   "hi-IN",
			expected: types.Accept("महिला", "Female"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			result, err := e.Validate(tt.field, tt.input, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEngine_ValidateContractViolations(t *testing.T) {
	e := newTestEngine(t, Options{})

	_, err := e.Validate("shoe_size", "9", "en")
	var unknown *validation.UnknownFieldError
	assert.ErrorAs(t, err, &unknown)

	_, err = e.Validate("age", "25", "fr")
	var localeErr *types.LocaleError
	assert.ErrorAs(t, err, &localeErr)

	_, err = e.Validate("age", "25", "")
	assert.ErrorAs(t, err, &localeErr)
}

func TestEngine_ClassifyIntent(t *testing.T) {
	e := newTestEngine(t, Options{})

	tests := []struct {
		input    string
		locale   string
		expected types.Intent
	}{
		{input: "I want to apply for job", locale: "en", expected: types.IntentApplyJob},
		{input: "पोस्ट जॉब", locale: "hi", expected: types.IntentPostJob},
		{input: "random unrelated text", locale: "en", expected: types.IntentUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := e.ClassifyIntent(tt.input, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := e.ClassifyIntent("apply", "de")
	assert.Error(t, err)
}

func TestEngine_ValidateAll(t *testing.T) {
	e := newTestEngine(t, Options{})

	answers := map[string]string{
		"name":       "my name is Sita Devi",
		"age":        "twenty five",
		"skill":      "plumbr",
		"experience": "fresher",
		"location":   "dilli",
		"gender":     "lady",
	}

	results, err := e.ValidateAll(context.Background(), answers, "en")
	require.NoError(t, err)
	require.Len(t, results, len(answers))

	assert.Equal(t, "Sita Devi", results["name"].CleanedValue)
	assert.Equal(t, "25", results["age"].CleanedValue)
	assert.Equal(t, "Plumber", results["skill"].CleanedValue)
	assert.Equal(t, "Fresher", results["experience"].CleanedValue)
	assert.Equal(t, "Delhi", results["location"].CleanedValue)
	assert.Equal(t, "Female", results["gender"].CleanedValue)

	// Same answers one at a time give the same results.
	for key, text := range answers {
		single, err := e.Validate(key, text, "en")
		require.NoError(t, err)
		assert.Equal(t, single, results[key])
	}
}

func TestEngine_ValidateAll_UnknownFieldFailsBatch(t *testing.T) {
	e := newTestEngine(t, Options{})

	_, err := e.ValidateAll(context.Background(), map[string]string{
		"name":       "Ravi",
		"blood_type": "O+",
	}, "en")

	var unknown *validation.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "blood_type", unknown.Key)
}

func TestEngine_ValidateAll_CancelledContext(t *testing.T) {
	e := newTestEngine(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ValidateAll(ctx, map[string]string{"name": "Ravi"}, "en")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_MessagesAndQuestions(t *testing.T) {
	e := newTestEngine(t, Options{})

	msg, err := e.Message("sex", types.CodeUnknownGender, "hi")
	require.NoError(t, err)
	assert.Equal(t, "कृपया पुरुष या महिला बताएं।", msg)

	q, err := e.Question("gender", "en")
	require.NoError(t, err)
	assert.Equal(t, "sex", q.Key)
	assert.Equal(t, "What is your sex? Male or female?", q.Text)

	_, err = e.Question("shoe_size", "en")
	var notFound *QuestionNotFoundError
	assert.ErrorAs(t, err, &notFound)

	questions, err := e.Questions("hi")
	require.NoError(t, err)
	assert.Equal(t, "आपका नाम क्या है?", questions[0].Text)

	confirm, err := e.IntentMessage(types.IntentApplyJob, "en")
	require.NoError(t, err)
	assert.NotEmpty(t, confirm)
}

func TestEngine_ReloadSwapsCatalogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.yaml")
	writeSkills := func(canonical string) {
		content := "kind: catalog\nname: skills\nthreshold: 0.6\nentries:\n  - canonical: " + canonical + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	writeSkills("Beekeeper")
	e := newTestEngine(t, Options{CatalogPaths: []string{path}})

	result, err := e.Validate("skill", "beekeeper", "en")
	require.NoError(t, err)
	assert.True(t, result.Valid)

	before := e.Info().LoadedAt

	writeSkills("Glassblower")
	require.NoError(t, e.Reload())

	result, err = e.Validate("skill", "beekeeper", "en")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	result, err = e.Validate("skill", "glassblower", "en")
	require.NoError(t, err)
	assert.Equal(t, "Glassblower", result.CleanedValue)
	assert.False(t, e.Info().LoadedAt.Before(before))
}

func TestEngine_FailedReloadKeepsState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: catalog\nname: skills\nthreshold: 0.6\nentries:\n  - canonical: Beekeeper\n"), 0644))

	e := newTestEngine(t, Options{CatalogPaths: []string{path}})

	require.NoError(t, os.WriteFile(path, []byte("kind: catalog\nname: skills\nthreshold: 7\n"), 0644))
	err := e.Reload()
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)

	result, err := e.Validate("skill", "beekeeper", "en")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestEngine_ConcurrentReload(t *testing.T) {
	e := newTestEngine(t, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, e.Reload())
		}()
		go func() {
			defer wg.Done()
			result, err := e.Validate("skill", "I am a paintr", "en")
			assert.NoError(t, err)
			assert.Equal(t, "Painter", result.CleanedValue)
		}()
	}
	wg.Wait()
}

func TestEngine_Info(t *testing.T) {
	e := newTestEngine(t, Options{})

	info := e.Info()
	assert.False(t, info.LoadedAt.IsZero())
	assert.GreaterOrEqual(t, info.Catalogs["skills"], 80)
	assert.Equal(t, "name", info.Fields[0])
	assert.NotEmpty(t, info.Sources)
}

func TestNew_InvalidFields(t *testing.T) {
	_, err := New(Options{Fields: []types.FieldSpec{
		{Key: "age", Rule: types.BoundedIntegerRule{Min: 1, Max: 2}},
		{Key: "AGE", Rule: types.BoundedIntegerRule{Min: 1, Max: 2}},
	}})
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}
