// Package messages renders error codes and onboarding questions in the
// user's locale.
package messages

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	schemavalidation "github.com/jonathan/voice-onboarding/internal/schemas"
	"github.com/jonathan/voice-onboarding/internal/types"
	"github.com/jonathan/voice-onboarding/schemas"
)

//go:embed data/messages.yaml
var embedded embed.FS

const embeddedPath = "data/messages.yaml"

// IntentQuestionKey is the question asked before routing a user.
const IntentQuestionKey = "intent"

// Localized is one text in every supported locale.
type Localized struct {
	EN string `yaml:"en"`
	HI string `yaml:"hi"`
}

// In returns the text for locale, falling back to English.
func (l Localized) In(locale types.Locale) string {
	if locale == types.LocaleHindi && l.HI != "" {
		return l.HI
	}
	return l.EN
}

type question struct {
	Key       string `yaml:"key"`
	Localized `yaml:",inline"`
}

type document struct {
	Kind      string                                   `yaml:"kind"`
	Fallback  Localized                                `yaml:"fallback"`
	Generic   map[types.ErrorCode]Localized            `yaml:"generic"`
	Fields    map[string]map[types.ErrorCode]Localized `yaml:"fields"`
	Questions []question                               `yaml:"questions"`
	Intents   map[types.Intent]Localized               `yaml:"intents"`
}

// Catalog holds every user-facing text. It is read-only after Load.
type Catalog struct {
	doc       document
	questions map[string]Localized
}

// Load parses the embedded messages.
func Load() (*Catalog, error) {
	data, err := embedded.ReadFile(embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded messages: %w", err)
	}
	return Parse(embeddedPath, data)
}

// Parse validates data against the messages schema and builds a Catalog.
func Parse(source string, data []byte) (*Catalog, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&node); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	if err := schemavalidation.ValidateDocument(schemas.MessagesName, schemas.Messages, source, raw); err != nil {
		return nil, err
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", source, err)
	}

	c := &Catalog{doc: doc, questions: make(map[string]Localized, len(doc.Questions))}
	for _, q := range doc.Questions {
		if _, dup := c.questions[q.Key]; dup {
			return nil, fmt.Errorf("%s: duplicate question %q", source, q.Key)
		}
		c.questions[q.Key] = q.Localized
	}
	return c, nil
}

// Message renders an error code for a field. The field-specific text wins
// over the generic text for the code, which wins over the generic fallback.
func (c *Catalog) Message(field string, code types.ErrorCode, locale types.Locale) string {
	if byCode, ok := c.doc.Fields[field]; ok {
		if text, ok := byCode[code]; ok {
			return text.In(locale)
		}
	}
	if text, ok := c.doc.Generic[code]; ok {
		return text.In(locale)
	}
	return c.doc.Fallback.In(locale)
}

// ResultMessage renders the message for a rejected result, or "" for a valid one.
func (c *Catalog) ResultMessage(field string, result types.ValidationResult, locale types.Locale) string {
	if result.Valid {
		return ""
	}
	return c.Message(field, result.ErrorCode, locale)
}

// IntentMessage confirms a recognized intent or repeats the intent question.
func (c *Catalog) IntentMessage(intent types.Intent, locale types.Locale) string {
	if text, ok := c.doc.Intents[intent]; ok {
		return text.In(locale)
	}
	return c.Message("", types.CodeUnrecognizedIntent, locale)
}

// Question returns the prompt for a question key.
func (c *Catalog) Question(key string, locale types.Locale) (types.Question, bool) {
	text, ok := c.questions[key]
	if !ok {
		return types.Question{}, false
	}
	return types.Question{Key: key, Locale: locale, Text: text.In(locale)}, true
}

// Questions returns every prompt in the order the onboarding asks them.
func (c *Catalog) Questions(locale types.Locale) []types.Question {
	out := make([]types.Question, 0, len(c.doc.Questions))
	for _, q := range c.doc.Questions {
		out = append(out, types.Question{Key: q.Key, Locale: locale, Text: q.In(locale)})
	}
	return out
}
