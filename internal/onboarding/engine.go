// Package onboarding is the entry point for validating onboarding answers and
// classifying intents. It owns the reference data and swaps it atomically on
// reload.
package onboarding

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/intent"
	"github.com/jonathan/voice-onboarding/internal/messages"
	"github.com/jonathan/voice-onboarding/internal/types"
	"github.com/jonathan/voice-onboarding/internal/validation"
)

// Options configures an Engine.
type Options struct {
	// CatalogPaths are YAML files or directories applied over the embedded
	// reference data, in order.
	CatalogPaths []string
	// Fields overrides the default onboarding fields.
	Fields []types.FieldSpec
}

// state is one immutable generation of reference data.
type state struct {
	bundle     *catalog.Bundle
	validator  *validation.Validator
	classifier *intent.Classifier
	messages   *messages.Catalog
	loadedAt   time.Time
}

// Engine validates answers and classifies intents. All methods are safe for
// concurrent use; calls never block on a reload.
type Engine struct {
	opts     Options
	registry *validation.Registry
	current  atomic.Pointer[state]
}

// Info describes the reference data currently in use.
type Info struct {
	LoadedAt time.Time      `json:"loaded_at"`
	Sources  []string       `json:"sources"`
	Catalogs map[string]int `json:"catalogs"`
	Fields   []string       `json:"fields"`
}

// New builds an engine and loads its reference data.
func New(opts Options) (*Engine, error) {
	fields := opts.Fields
	if len(fields) == 0 {
		fields = validation.DefaultFields()
	}
	registry, err := validation.NewRegistry(fields...)
	if err != nil {
		return nil, &LoadError{Message: "invalid field registry", Cause: err}
	}

	e := &Engine{opts: opts, registry: registry}
	if err := e.Reload(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload rebuilds the reference data from the embedded defaults and the
// configured catalog paths. On failure the previous data stays in use.
func (e *Engine) Reload() error {
	s, err := e.load()
	if err != nil {
		return err
	}
	e.current.Store(s)
	return nil
}

func (e *Engine) load() (*state, error) {
	bundle, err := catalog.Load(e.opts.CatalogPaths...)
	if err != nil {
		return nil, &LoadError{Message: "failed to load catalogs", Cause: err}
	}

	validator, err := validation.New(e.registry, bundle)
	if err != nil {
		return nil, &LoadError{Message: "failed to build validator", Cause: err}
	}

	keywords, err := bundle.Catalog(catalog.Intents)
	if err != nil {
		return nil, &LoadError{Message: "failed to build intent classifier", Cause: err}
	}
	classifier, err := intent.NewClassifier(keywords, validator.Stripper())
	if err != nil {
		return nil, &LoadError{Message: "failed to build intent classifier", Cause: err}
	}

	msgs, err := messages.Load()
	if err != nil {
		return nil, &LoadError{Message: "failed to load messages", Cause: err}
	}

	return &state{
		bundle:     bundle,
		validator:  validator,
		classifier: classifier,
		messages:   msgs,
		loadedAt:   time.Now(),
	}, nil
}

func (e *Engine) snapshot() *state {
	return e.current.Load()
}

// Validate checks one onboarding answer. locale is a language tag such as
// "en", "hi" or "hi-IN".
func (e *Engine) Validate(fieldKey, rawText, locale string) (types.ValidationResult, error) {
	loc, err := types.ParseLocale(locale)
	if err != nil {
		return types.ValidationResult{}, err
	}
	return e.snapshot().validator.Validate(fieldKey, rawText, loc)
}

// ClassifyIntent returns the intent declared in rawText.
func (e *Engine) ClassifyIntent(rawText, locale string) (types.Intent, error) {
	result, err := e.ClassifyIntentDetailed(rawText, locale)
	if err != nil {
		return types.IntentUnrecognized, err
	}
	return result.Intent, nil
}

// ClassifyIntentDetailed also reports the keyword that decided the intent.
func (e *Engine) ClassifyIntentDetailed(rawText, locale string) (types.IntentResult, error) {
	loc, err := types.ParseLocale(locale)
	if err != nil {
		return types.IntentResult{}, err
	}
	return e.snapshot().classifier.Classify(rawText, loc), nil
}

// ValidateAll validates a set of answers concurrently against one generation
// of reference data. Results are keyed like answers. A contract violation on
// any answer cancels the batch and is returned.
func (e *Engine) ValidateAll(ctx context.Context, answers map[string]string, locale string) (map[string]types.ValidationResult, error) {
	loc, err := types.ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	s := e.snapshot()

	var mu sync.Mutex
	results := make(map[string]types.ValidationResult, len(answers))

	g, ctx := errgroup.WithContext(ctx)
	for key, text := range answers {
		key, text := key, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.validator.Validate(key, text, loc)
			if err != nil {
				return err
			}
			mu.Lock()
			results[key] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Message renders an error code for a field in the given locale.
func (e *Engine) Message(fieldKey string, code types.ErrorCode, locale string) (string, error) {
	loc, err := types.ParseLocale(locale)
	if err != nil {
		return "", err
	}
	field := fieldKey
	if spec, err := e.registry.Lookup(fieldKey); err == nil {
		field = spec.Key
	}
	return e.snapshot().messages.Message(field, code, loc), nil
}

// IntentMessage confirms a recognized intent or asks the intent question again.
func (e *Engine) IntentMessage(in types.Intent, locale string) (string, error) {
	loc, err := types.ParseLocale(locale)
	if err != nil {
		return "", err
	}
	return e.snapshot().messages.IntentMessage(in, loc), nil
}

// Question returns the prompt for a question key or any key of its field
// ("gender" finds the "sex" prompt).
func (e *Engine) Question(key, locale string) (types.Question, error) {
	loc, err := types.ParseLocale(locale)
	if err != nil {
		return types.Question{}, err
	}
	msgs := e.snapshot().messages

	if q, ok := msgs.Question(key, loc); ok {
		return q, nil
	}
	if spec, err := e.registry.Lookup(key); err == nil {
		for _, candidate := range append([]string{spec.Key}, spec.Aliases...) {
			if q, ok := msgs.Question(candidate, loc); ok {
				return q, nil
			}
		}
	}
	return types.Question{}, &QuestionNotFoundError{Key: key}
}

// Questions returns every prompt in asking order.
func (e *Engine) Questions(locale string) ([]types.Question, error) {
	loc, err := types.ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	return e.snapshot().messages.Questions(loc), nil
}

// Field resolves a field key or alias.
func (e *Engine) Field(key string) (types.FieldSpec, error) {
	return e.registry.Lookup(key)
}

// Fields returns the onboarding fields in asking order.
func (e *Engine) Fields() []types.FieldSpec {
	return e.registry.Fields()
}

// Bundle returns the reference data currently in use.
func (e *Engine) Bundle() *catalog.Bundle {
	return e.snapshot().bundle
}

// Info summarizes the reference data currently in use.
func (e *Engine) Info() Info {
	s := e.snapshot()
	info := Info{
		LoadedAt: s.loadedAt,
		Sources:  s.bundle.Sources(),
		Catalogs: make(map[string]int),
		Fields:   e.registry.Keys(),
	}
	for _, c := range s.bundle.Catalogs() {
		info.Catalogs[c.Name()] = c.Len()
	}
	return info
}
