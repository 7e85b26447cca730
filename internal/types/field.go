//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// FieldKind is the validation strategy family of an onboarding field.
type FieldKind int

const (
	KindFreeText FieldKind = iota + 1
	KindBoundedInteger
	KindCatalogMatch
	KindDuration
	KindEnum
	KindPhone
	KindCatalogList
)

var fieldKindNames = map[FieldKind]string{
	KindFreeText:       "free_text",
	KindBoundedInteger: "bounded_integer",
	KindCatalogMatch:   "catalog_match",
	KindDuration:       "duration",
	KindEnum:           "enum",
	KindPhone:          "phone",
	KindCatalogList:    "catalog_list",
}

func (k FieldKind) String() string {
	if name, ok := fieldKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// Rule holds the kind-specific constraints of a field. The set of
// implementations is closed; validators dispatch on the concrete type.
type Rule interface {
	Kind() FieldKind
	sealed()
}

// FreeTextRule accepts short alphabetic phrases such as a person's name.
type FreeTextRule struct {
	MinTokens     int
	MaxTokens     int
	MinAlphaRatio float64
	Code          ErrorCode
}

// BoundedIntegerRule accepts a single integer within [Min, Max].
type BoundedIntegerRule struct {
	Min  int
	Max  int
	Code ErrorCode
}

// CatalogMatchRule fuzzy-matches the answer against a named catalog.
// When Strict is false the catalog is advisory and plausible free text is kept.
type CatalogMatchRule struct {
	Catalog string
	// Threshold overrides the catalog's own threshold when non-zero.
	Threshold float64
	Strict    bool
	// MaxFreeTokens bounds the length of unmatched free text in advisory mode.
	MaxFreeTokens int
	Code          ErrorCode
}

// DurationRule normalizes an amount of work experience.
type DurationRule struct {
	MaxYears  int
	Code      ErrorCode
	RangeCode ErrorCode
}

// EnumRule maps the answer onto a small catalog by exact alias lookup.
type EnumRule struct {
	Catalog string
	Code    ErrorCode
}

// PhoneRule accepts an Indian mobile number.
type PhoneRule struct {
	Code ErrorCode
}

// CatalogListRule normalizes an enumeration of catalog terms ("hindi and english").
type CatalogListRule struct {
	Catalog   string
	Threshold float64
}

func (FreeTextRule) Kind() FieldKind       { return KindFreeText }
func (BoundedIntegerRule) Kind() FieldKind { return KindBoundedInteger }
func (CatalogMatchRule) Kind() FieldKind   { return KindCatalogMatch }
func (DurationRule) Kind() FieldKind       { return KindDuration }
func (EnumRule) Kind() FieldKind           { return KindEnum }
func (PhoneRule) Kind() FieldKind          { return KindPhone }
func (CatalogListRule) Kind() FieldKind    { return KindCatalogList }

func (FreeTextRule) sealed()       {}
func (BoundedIntegerRule) sealed() {}
func (CatalogMatchRule) sealed()   {}
func (DurationRule) sealed()       {}
func (EnumRule) sealed()           {}
func (PhoneRule) sealed()          {}
func (CatalogListRule) sealed()    {}

// FieldSpec is the static descriptor of one onboarding question.
type FieldSpec struct {
	Key string
	// Aliases are alternate keys callers may use ("sex" for "gender").
	Aliases []string
	// FillerScopes selects which stoplist groups are stripped before validation.
	FillerScopes []string
	Rule         Rule
}

// Kind returns the field's validation strategy family.
func (f FieldSpec) Kind() FieldKind {
	if f.Rule == nil {
		return 0
	}
	return f.Rule.Kind()
}
