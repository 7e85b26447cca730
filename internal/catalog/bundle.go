package catalog

import (
	"sort"

	"github.com/jonathan/voice-onboarding/internal/numeric"
	"github.com/jonathan/voice-onboarding/internal/tokenize"
)

// Bundle is a complete, immutable set of reference data: every catalog plus
// the filler and number vocabularies of each locale.
type Bundle struct {
	catalogs     map[string]*Catalog
	fillers      []tokenize.FillerSet
	vocabularies []numeric.Vocabulary
	sources      []string
}

// NewBundle assembles a bundle from already built parts. Later catalogs
// replace earlier ones with the same name.
func NewBundle(catalogs []*Catalog, fillers []tokenize.FillerSet, vocabularies []numeric.Vocabulary) *Bundle {
	b := &Bundle{
		catalogs:     make(map[string]*Catalog, len(catalogs)),
		fillers:      fillers,
		vocabularies: vocabularies,
	}
	for _, c := range catalogs {
		b.catalogs[c.Name()] = c
	}
	return b
}

// Catalog returns the named catalog.
func (b *Bundle) Catalog(name string) (*Catalog, error) {
	c, ok := b.catalogs[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return c, nil
}

// Catalogs returns every catalog ordered by name.
func (b *Bundle) Catalogs() []*Catalog {
	out := make([]*Catalog, 0, len(b.catalogs))
	for _, c := range b.catalogs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Fillers returns the per-locale stoplists.
func (b *Bundle) Fillers() []tokenize.FillerSet {
	return b.fillers
}

// Vocabularies returns the per-locale number and unit words.
func (b *Bundle) Vocabularies() []numeric.Vocabulary {
	return b.vocabularies
}

// Sources lists where the bundle was loaded from, embedded data first.
func (b *Bundle) Sources() []string {
	return append([]string(nil), b.sources...)
}
