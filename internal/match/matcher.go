package match

import (
	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/tokenize"
	"github.com/jonathan/voice-onboarding/internal/types"
)

// MaxNGram is the longest token window scored on its own.
const MaxNGram = 3

// Candidate is one scored pairing of an input window with a catalog alias.
type Candidate struct {
	Phrase    string
	Tokens    int
	Alias     string
	Canonical string
	Score     float64
}

// better orders candidates: higher score, then the longer input window, then
// the alphabetically first canonical term, then the first alias. A longer
// window that matches as well is the more specific reading ("navi mumbai"
// over "mumbai").
func (c Candidate) better(o Candidate) bool {
	if c.Score != o.Score {
		return c.Score > o.Score
	}
	if c.Tokens != o.Tokens {
		return c.Tokens > o.Tokens
	}
	if c.Canonical != o.Canonical {
		return c.Canonical < o.Canonical
	}
	return c.Alias < o.Alias
}

// Windows returns the phrases scored for tokens: every n-gram up to MaxNGram
// tokens, plus the whole phrase when it is longer than that.
func Windows(tokens []string) [][]string {
	var out [][]string
	for n := 1; n <= min(MaxNGram, len(tokens)); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, tokens[i:i+n])
		}
	}
	if len(tokens) > MaxNGram {
		out = append(out, tokens)
	}
	return out
}

// Nearest returns the highest ranked candidate for tokens in c, whatever its
// score. ok is false only when tokens is empty.
func Nearest(tokens []string, c *catalog.Catalog) (Candidate, bool) {
	var best Candidate
	found := false

	for _, window := range Windows(tokens) {
		phrase := tokenize.Join(window)

		if canonical, exact := c.LookupTokens(window); exact {
			cand := Candidate{Phrase: phrase, Tokens: len(window), Alias: phrase, Canonical: canonical, Score: 1}
			if !found || cand.better(best) {
				best, found = cand, true
			}
			continue
		}

		for _, alias := range c.Aliases() {
			cand := Candidate{
				Phrase:    phrase,
				Tokens:    len(window),
				Alias:     alias.Text,
				Canonical: alias.Canonical,
				Score:     Similarity(phrase, alias.Text),
			}
			if !found || cand.better(best) {
				best, found = cand, true
			}
		}
	}

	return best, found
}

// Best matches tokens against c. threshold overrides the catalog threshold
// when it is greater than zero. Below the threshold the result reports the
// nearest alias with Matched false.
func Best(tokens []string, c *catalog.Catalog, threshold float64) types.MatchResult {
	if threshold <= 0 {
		threshold = c.Threshold()
	}

	cand, ok := Nearest(tokens, c)
	if !ok {
		return types.MatchResult{}
	}
	return types.MatchResult{
		Canonical: cand.Canonical,
		Alias:     cand.Alias,
		Score:     cand.Score,
		Matched:   cand.Score >= threshold,
	}
}

// BestPhrase tokenizes phrase and matches it against c.
func BestPhrase(phrase string, c *catalog.Catalog, threshold float64) types.MatchResult {
	return Best(tokenize.Tokenize(phrase), c, threshold)
}
