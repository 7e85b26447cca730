// Package catalog provides immutable, locale-aware sets of canonical terms
// and their aliases (job titles, places, gender terms, intent keywords).
package catalog

import (
	"fmt"
	"sort"

	"github.com/jonathan/voice-onboarding/internal/tokenize"
)

// Names of the catalogs shipped with the engine.
const (
	Skills    = "skills"
	Locations = "locations"
	Genders   = "genders"
	Education = "education"
	Languages = "languages"
	Intents   = "intents"
	Fresher   = "fresher"
)

// Entry is one canonical term with the surface forms that resolve to it.
type Entry struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// Alias is a normalized surface form and the canonical term it resolves to.
type Alias struct {
	Text      string
	Tokens    []string
	Canonical string
}

// Catalog maps aliases onto canonical terms. Every canonical term is its own
// alias and aliases are stored case-folded, NFC-normalized and
// whitespace-collapsed. A Catalog is read-only after New returns.
type Catalog struct {
	name       string
	threshold  float64
	canonicals []string
	aliases    map[string]string
	ordered    []Alias
	maxTokens  int
}

// NormalizeAlias folds a surface form into the key used for lookups.
func NormalizeAlias(s string) string {
	return tokenize.Join(tokenize.Tokenize(s))
}

// New builds a catalog. An alias that resolves to two different canonical
// terms, an empty canonical term, or a threshold outside [0,1] is an error.
func New(name string, threshold float64, entries []Entry) (*Catalog, error) {
	if name == "" {
		return nil, &BuildError{Catalog: name, Message: "catalog name is empty"}
	}
	if threshold < 0 || threshold > 1 {
		return nil, &BuildError{Catalog: name, Message: fmt.Sprintf("threshold %.2f outside [0,1]", threshold)}
	}

	c := &Catalog{
		name:      name,
		threshold: threshold,
		aliases:   make(map[string]string),
	}

	seenCanonical := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if NormalizeAlias(entry.Canonical) == "" {
			return nil, &BuildError{Catalog: name, Message: "entry with empty canonical term"}
		}
		if seenCanonical[entry.Canonical] {
			return nil, &BuildError{Catalog: name, Message: fmt.Sprintf("duplicate canonical term %q", entry.Canonical)}
		}
		seenCanonical[entry.Canonical] = true
		c.canonicals = append(c.canonicals, entry.Canonical)

		forms := append([]string{entry.Canonical}, entry.Aliases...)
		for _, form := range forms {
			key := NormalizeAlias(form)
			if key == "" {
				continue
			}
			if existing, ok := c.aliases[key]; ok {
				if existing == entry.Canonical {
					continue
				}
				return nil, &BuildError{
					Catalog: name,
					Message: fmt.Sprintf("alias %q maps to both %q and %q", key, existing, entry.Canonical),
				}
			}
			c.aliases[key] = entry.Canonical
		}
	}

	sort.Strings(c.canonicals)

	c.ordered = make([]Alias, 0, len(c.aliases))
	for key, canonical := range c.aliases {
		tokens := tokenize.Tokenize(key)
		c.ordered = append(c.ordered, Alias{Text: key, Tokens: tokens, Canonical: canonical})
		c.maxTokens = max(c.maxTokens, len(tokens))
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].Text < c.ordered[j].Text
	})

	return c, nil
}

// MustNew is New for static test fixtures; it panics on a build error.
func MustNew(name string, threshold float64, entries []Entry) *Catalog {
	c, err := New(name, threshold, entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Threshold returns the minimum fuzzy score a match must reach.
func (c *Catalog) Threshold() float64 { return c.threshold }

// Len returns the number of canonical terms.
func (c *Catalog) Len() int { return len(c.canonicals) }

// AliasCount returns the number of distinct aliases, canonical terms included.
func (c *Catalog) AliasCount() int { return len(c.ordered) }

// MaxAliasTokens returns the token length of the longest alias.
func (c *Catalog) MaxAliasTokens() int { return c.maxTokens }

// Canonicals returns the canonical terms in alphabetical order.
func (c *Catalog) Canonicals() []string {
	return append([]string(nil), c.canonicals...)
}

// Aliases returns every alias sorted by its normalized text.
// The returned slice must not be modified.
func (c *Catalog) Aliases() []Alias {
	return c.ordered
}

// Lookup resolves a phrase by exact (normalized) alias match.
func (c *Catalog) Lookup(phrase string) (string, bool) {
	canonical, ok := c.aliases[NormalizeAlias(phrase)]
	return canonical, ok
}

// LookupTokens resolves an already tokenized phrase by exact alias match.
func (c *Catalog) LookupTokens(tokens []string) (string, bool) {
	canonical, ok := c.aliases[tokenize.Join(tokens)]
	return canonical, ok
}

// AliasesOf returns the aliases registered for one canonical term, sorted.
func (c *Catalog) AliasesOf(canonical string) []string {
	var out []string
	for _, a := range c.ordered {
		if a.Canonical == canonical {
			out = append(out, a.Text)
		}
	}
	return out
}
