// Package intent maps a free-form answer to the user's declared goal.
package intent

import (
	"fmt"

	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/tokenize"
	"github.com/jonathan/voice-onboarding/internal/types"
)

// Scope is the stoplist group applied before scanning for keywords.
const Scope = "intent"

// Classifier scans answers for intent keywords. It is immutable and safe for
// concurrent use.
type Classifier struct {
	keywords *catalog.Catalog
	stripper *tokenize.Stripper
}

// NewClassifier builds a classifier from a keyword catalog whose canonical
// terms are intent names.
func NewClassifier(keywords *catalog.Catalog, stripper *tokenize.Stripper) (*Classifier, error) {
	for _, canonical := range keywords.Canonicals() {
		if !types.Intent(canonical).Recognized() {
			return nil, fmt.Errorf("keyword catalog %q: %q is not an intent", keywords.Name(), canonical)
		}
	}
	return &Classifier{keywords: keywords, stripper: stripper}, nil
}

// Classify returns the intent of raw. Keywords may appear anywhere in the
// answer. When keywords of several intents are present the one occurring
// first wins; at the same position the longer keyword wins ("job post" over
// "job"). Position counts tokens after filler removal.
func (c *Classifier) Classify(raw string, locale types.Locale) types.IntentResult {
	tokens := c.stripper.Strip(tokenize.Tokenize(raw), locale, Scope)

	longest := c.keywords.MaxAliasTokens()
	for i := range tokens {
		for n := min(longest, len(tokens)-i); n >= 1; n-- {
			window := tokens[i : i+n]
			if canonical, ok := c.keywords.LookupTokens(window); ok {
				return types.IntentResult{
					Intent:   types.Intent(canonical),
					Keyword:  tokenize.Join(window),
					Position: i,
				}
			}
		}
	}

	return types.IntentResult{
		Intent:    types.IntentUnrecognized,
		Position:  -1,
		ErrorCode: types.CodeUnrecognizedIntent,
	}
}

// Keywords returns the keyword catalog.
func (c *Classifier) Keywords() *catalog.Catalog {
	return c.keywords
}
