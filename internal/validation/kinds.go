package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/match"
	"github.com/jonathan/voice-onboarding/internal/numeric"
	"github.com/jonathan/voice-onboarding/internal/tokenize"
	"github.com/jonathan/voice-onboarding/internal/types"
)

// minPlausibleRatio is the alphabetic share unmatched advisory answers need.
const minPlausibleRatio = 0.5

func (v *Validator) freeText(in answer, rule types.FreeTextRule) types.ValidationResult {
	if in.empty() {
		return in.reject(types.CodeEmptyInput)
	}
	n := len(in.stripped)
	if n < rule.MinTokens || (rule.MaxTokens > 0 && n > rule.MaxTokens) {
		return in.reject(rule.Code)
	}
	if tokenize.AlphaRatio(tokenize.Join(in.stripped)) < rule.MinAlphaRatio {
		return in.reject(rule.Code)
	}
	return in.accept(tokenize.Title(in.stripped))
}

func (v *Validator) boundedInteger(in answer, rule types.BoundedIntegerRule) types.ValidationResult {
	if in.empty() {
		return in.reject(types.CodeEmptyInput)
	}
	q := v.numbers.Extract(in.stripped)
	if !q.Found {
		return types.RejectWithDetail(in.raw, rule.Code, types.CodeNoNumberFound)
	}
	if q.Value < rule.Min || q.Value > rule.Max {
		return in.reject(rule.Code)
	}
	return in.accept(strconv.Itoa(q.Value))
}

func (v *Validator) catalogMatch(in answer, rule types.CatalogMatchRule) types.ValidationResult {
	if in.empty() {
		return in.reject(types.CodeEmptyInput)
	}
	result := match.Best(in.stripped, v.mustCatalog(rule.Catalog), rule.Threshold)
	if result.Matched {
		return in.accept(result.Canonical)
	}
	if !rule.Strict && plausible(in.stripped, rule.MaxFreeTokens) {
		return in.accept(tokenize.Title(in.stripped))
	}
	return in.reject(rule.Code)
}

// plausible reports whether unmatched text still looks like a short proper
// noun: at most maxTokens tokens, two or more letters, mostly alphabetic.
func plausible(tokens []string, maxTokens int) bool {
	if maxTokens > 0 && len(tokens) > maxTokens {
		return false
	}
	joined := tokenize.Join(tokens)
	letters := 0
	for _, r := range joined {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 2 && tokenize.AlphaRatio(joined) >= minPlausibleRatio
}

func (v *Validator) duration(in answer, rule types.DurationRule) types.ValidationResult {
	fresher := v.mustCatalog(catalog.Fresher)
	if canonical, ok := findAlias(in.tokens, fresher); ok {
		return in.accept(canonical)
	}
	if in.empty() {
		return in.reject(types.CodeEmptyInput)
	}

	q := v.numbers.Extract(in.stripped)
	if !q.Found {
		return in.reject(rule.Code)
	}

	unit := q.Unit
	if unit == numeric.UnitNone {
		// No unit next to the number; fall back to a unit word anywhere.
		switch {
		case v.numbers.HasUnitWord(in.stripped, numeric.UnitMonth):
			unit = numeric.UnitMonth
		case v.numbers.HasUnitWord(in.stripped, numeric.UnitYear):
			unit = numeric.UnitYear
		}
	}

	value := q.Value
	if unit != numeric.UnitMonth && rule.MaxYears > 0 && value > rule.MaxYears {
		return in.reject(rule.RangeCode)
	}
	if unit == numeric.UnitYear {
		// "5 years 6 months" and "5 years and 6 months" combine into months.
		if months, ok := v.trailingMonths(in.stripped[q.End:]); ok {
			if months > math.MaxInt-value*12 {
				return in.reject(rule.RangeCode)
			}
			value, unit = value*12+months, numeric.UnitMonth
		}
	}

	years := value
	if unit == numeric.UnitMonth {
		years = value / 12
	}
	if rule.MaxYears > 0 && years > rule.MaxYears {
		return in.reject(rule.RangeCode)
	}
	return in.accept(FormatDuration(value, unit))
}

// trailingMonths reads "<n> months" right after a year amount, skipping the
// year unit word and an optional conjunction.
func (v *Validator) trailingMonths(rest []string) (int, bool) {
	if len(rest) > 0 && v.numbers.IsUnitWord(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) > 0 && listSeparators[rest[0]] {
		rest = rest[1:]
	}
	q := v.numbers.Extract(rest)
	if !q.Found || q.Start != 0 || q.Unit != numeric.UnitMonth {
		return 0, false
	}
	return q.Value, true
}

// FormatDuration renders an amount of experience. Month amounts above eleven
// are carried into years.
func FormatDuration(value int, unit numeric.Unit) string {
	if unit != numeric.UnitMonth {
		return fmt.Sprintf("%d years", value)
	}
	if value <= 11 {
		return fmt.Sprintf("%d months", value)
	}
	years, months := value/12, value%12
	if months == 0 {
		return fmt.Sprintf("%d years", years)
	}
	return fmt.Sprintf("%d years %d months", years, months)
}

func (v *Validator) enum(in answer, rule types.EnumRule) types.ValidationResult {
	if in.empty() {
		return in.reject(types.CodeEmptyInput)
	}
	if canonical, ok := findAlias(in.stripped, v.mustCatalog(rule.Catalog)); ok {
		return in.accept(canonical)
	}
	return in.reject(rule.Code)
}

// findAlias scans tokens for an exact alias of c. The earliest occurrence
// wins; at the same position the longer alias wins.
func findAlias(tokens []string, c *catalog.Catalog) (string, bool) {
	longest := c.MaxAliasTokens()
	for i := range tokens {
		for n := min(longest, len(tokens)-i); n >= 1; n-- {
			if canonical, ok := c.LookupTokens(tokens[i : i+n]); ok {
				return canonical, true
			}
		}
	}
	return "", false
}

func (v *Validator) phone(in answer, rule types.PhoneRule) types.ValidationResult {
	if in.empty() {
		return in.reject(types.CodeEmptyInput)
	}

	var digits strings.Builder
	for _, tok := range in.stripped {
		if isDigits(tok) {
			digits.WriteString(tok)
			continue
		}
		// Spoken digits: "nine eight seven ..."
		if n, ok := v.numbers.Value(tok); ok && n < 10 {
			digits.WriteString(strconv.Itoa(n))
		}
	}

	number, ok := NormalizePhone(digits.String())
	if !ok {
		return in.reject(rule.Code)
	}
	return in.accept(number)
}

// NormalizePhone drops a +91, 91 or 0 prefix and checks that ten digits
// starting with 6 to 9 remain.
func NormalizePhone(digits string) (string, bool) {
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		digits = digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}
	if len(digits) != 10 || !isDigits(digits) {
		return "", false
	}
	if digits[0] < '6' || digits[0] > '9' {
		return "", false
	}
	return digits, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// listSeparators split a spoken enumeration before tokenizing.
var listSeparators = map[string]bool{
	"and": true, "or": true, "aur": true, "और": true, "तथा": true, "या": true,
}

func (v *Validator) catalogList(in answer, rule types.CatalogListRule) types.ValidationResult {
	c := v.mustCatalog(rule.Catalog)

	var values []string
	seen := make(map[string]bool)
	for _, part := range splitList(in.raw) {
		tokens := v.stripper.Strip(part, in.locale, in.scopes...)
		if len(tokens) == 0 {
			continue
		}
		value := tokenize.Title(tokens)
		if result := match.Best(tokens, c, rule.Threshold); result.Matched {
			value = result.Canonical
		}
		if seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	if len(values) == 0 {
		return in.reject(types.CodeEmptyInput)
	}
	return in.accept(strings.Join(values, ", "))
}

// splitList breaks an enumeration on punctuation and conjunctions and
// tokenizes each part.
func splitList(raw string) [][]string {
	var parts [][]string
	chunks := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(",/;&|+", r)
	})
	for _, chunk := range chunks {
		var current []string
		for _, tok := range tokenize.Tokenize(chunk) {
			if listSeparators[tok] {
				if len(current) > 0 {
					parts = append(parts, current)
				}
				current = nil
				continue
			}
			current = append(current, tok)
		}
		if len(current) > 0 {
			parts = append(parts, current)
		}
	}
	return parts
}
