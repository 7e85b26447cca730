package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	schemavalidation "github.com/jonathan/voice-onboarding/internal/schemas"
	"github.com/jonathan/voice-onboarding/internal/numeric"
	"github.com/jonathan/voice-onboarding/internal/tokenize"
	"github.com/jonathan/voice-onboarding/internal/types"
	"github.com/jonathan/voice-onboarding/schemas"
)

//go:embed data/*.yaml
var embedded embed.FS

// Document kinds understood by the loader.
const (
	KindCatalog = "catalog"
	KindLocales = "locales"
)

type catalogDocument struct {
	Kind        string  `yaml:"kind"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Threshold   float64 `yaml:"threshold"`
	Entries     []Entry `yaml:"entries"`
}

type localesDocument struct {
	Kind    string       `yaml:"kind"`
	Locales []localeData `yaml:"locales"`
}

type localeData struct {
	Locale   string              `yaml:"locale"`
	Fallback string              `yaml:"fallback"`
	Fillers  map[string][]string `yaml:"fillers"`
	Numbers  map[string]int      `yaml:"numbers"`
	Units    map[string][]string `yaml:"units"`
}

// loader accumulates documents; a later document replaces an earlier one
// with the same catalog name or locale.
type loader struct {
	catalogs map[string]catalogDocument
	locales  map[types.Locale]localeData
	sources  []string
}

func newLoader() *loader {
	return &loader{
		catalogs: make(map[string]catalogDocument),
		locales:  make(map[types.Locale]localeData),
	}
}

// LoadDefault loads the reference data embedded in the binary.
func LoadDefault() (*Bundle, error) {
	return Load()
}

// Load loads the embedded reference data and then applies each override
// path in order. A path may be a YAML file or a directory of YAML files.
// Catalogs in an override replace the embedded catalog of the same name;
// locale data replaces the embedded data of the same locale.
func Load(overrides ...string) (*Bundle, error) {
	l := newLoader()
	if err := l.addFS(embedded, "data", "embedded"); err != nil {
		return nil, err
	}
	for _, override := range overrides {
		if err := l.addPath(override); err != nil {
			return nil, err
		}
	}
	return l.build()
}

// LoadFS loads reference data from the YAML files directly under dir in fsys,
// without the embedded defaults.
func LoadFS(fsys fs.FS, dir string) (*Bundle, error) {
	l := newLoader()
	if err := l.addFS(fsys, dir, dir); err != nil {
		return nil, err
	}
	return l.build()
}

// addFS reads the YAML files directly under dir in name order. label
// prefixes the file names reported in errors and Sources.
func (l *loader) addFS(fsys fs.FS, dir, label string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return &LoadError{Source: label, Message: "failed to list reference data", Cause: err}
	}
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		source := label + "/" + entry.Name()
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return &LoadError{Source: source, Message: "failed to read file", Cause: err}
		}
		if err := l.addDocuments(source, data); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) addPath(file string) error {
	info, err := os.Stat(file)
	if err != nil {
		return &LoadError{Source: file, Message: "reference data not found", Cause: err}
	}
	if info.IsDir() {
		return l.addFS(os.DirFS(file), ".", filepath.Clean(file))
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return &LoadError{Source: file, Message: "failed to read file", Cause: err}
	}
	return l.addDocuments(file, data)
}

// addDocuments decodes every YAML document in data, checks it against the
// schema for its kind, then decodes it into the typed form.
func (l *loader) addDocuments(source string, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for index := 0; ; index++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return &LoadError{Source: source, Message: "invalid YAML", Cause: err}
		}

		var raw map[string]any
		if err := node.Decode(&raw); err != nil {
			return &LoadError{Source: source, Message: fmt.Sprintf("document %d is not a mapping", index), Cause: err}
		}
		if raw == nil {
			continue
		}

		kind, _ := raw["kind"].(string)
		switch kind {
		case KindCatalog:
			if err := schemavalidation.ValidateDocument(schemas.CatalogName, schemas.Catalog, source, raw); err != nil {
				return &LoadError{Source: source, Message: "catalog does not match schema", Cause: err}
			}
			var doc catalogDocument
			if err := node.Decode(&doc); err != nil {
				return &LoadError{Source: source, Message: "failed to decode catalog", Cause: err}
			}
			l.catalogs[doc.Name] = doc

		case KindLocales:
			if err := schemavalidation.ValidateDocument(schemas.LocalesName, schemas.Locales, source, raw); err != nil {
				return &LoadError{Source: source, Message: "locale data does not match schema", Cause: err}
			}
			var doc localesDocument
			if err := node.Decode(&doc); err != nil {
				return &LoadError{Source: source, Message: "failed to decode locale data", Cause: err}
			}
			for _, data := range doc.Locales {
				locale, err := types.ParseLocale(data.Locale)
				if err != nil {
					return &LoadError{Source: source, Message: "invalid locale", Cause: err}
				}
				l.locales[locale] = data
			}

		default:
			return &LoadError{Source: source, Message: fmt.Sprintf("document %d has unknown kind %q", index, kind)}
		}
	}

	l.sources = append(l.sources, source)
	return nil
}

func (l *loader) build() (*Bundle, error) {
	names := make([]string, 0, len(l.catalogs))
	for name := range l.catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	catalogs := make([]*Catalog, 0, len(names))
	for _, name := range names {
		doc := l.catalogs[name]
		c, err := New(doc.Name, doc.Threshold, doc.Entries)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}

	locales := make([]types.Locale, 0, len(l.locales))
	for locale := range l.locales {
		locales = append(locales, locale)
	}
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })

	var fillers []tokenize.FillerSet
	var vocabularies []numeric.Vocabulary
	for _, locale := range locales {
		data := l.locales[locale]

		set := tokenize.FillerSet{Locale: locale, Scopes: data.Fillers}
		if data.Fallback != "" {
			fallback, err := types.ParseLocale(data.Fallback)
			if err != nil {
				return nil, &LoadError{Source: string(locale), Message: "invalid fallback locale", Cause: err}
			}
			set.Fallback = fallback
		}
		fillers = append(fillers, set)

		vocab := numeric.Vocabulary{
			Numbers: data.Numbers,
			Units:   make(map[string]numeric.Unit),
		}
		for unitName, words := range data.Units {
			unit := numeric.ParseUnit(unitName)
			for _, word := range words {
				vocab.Units[word] = unit
			}
		}
		vocabularies = append(vocabularies, vocab)
	}

	bundle := NewBundle(catalogs, fillers, vocabularies)
	bundle.sources = l.sources
	return bundle, nil
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
