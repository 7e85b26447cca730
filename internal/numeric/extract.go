// Package numeric pulls integer magnitudes and duration units out of tokenized answers.
package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/voice-onboarding/internal/tokenize"
)

// Unit is a duration unit detected next to a number.
type Unit int

const (
	UnitNone Unit = iota
	UnitYear
	UnitMonth
)

func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitMonth:
		return "month"
	default:
		return "none"
	}
}

// ParseUnit maps "year"/"month" to a Unit; anything else is UnitNone.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "years":
		return UnitYear
	case "month", "months":
		return UnitMonth
	default:
		return UnitNone
	}
}

// Quantity is the first number found in an answer. Found is false when the
// answer carries no number at all; Value is then meaningless.
type Quantity struct {
	Value int
	Found bool
	Unit  Unit
	// Start and End delimit the tokens the number was read from.
	Start int
	End   int
}

// Vocabulary is the spelled-number and unit data of one locale.
type Vocabulary struct {
	Numbers map[string]int
	Units   map[string]Unit
}

// Extractor finds numbers in token sequences. It is immutable after
// construction and safe for concurrent use.
type Extractor struct {
	numbers map[string]int
	units   map[string]Unit
}

// NewExtractor merges the vocabularies of every locale. Spelled numbers do not
// collide across English and Hindi, so one table serves both.
func NewExtractor(vocabularies ...Vocabulary) *Extractor {
	e := &Extractor{
		numbers: make(map[string]int),
		units:   make(map[string]Unit),
	}
	for _, v := range vocabularies {
		for word, n := range v.Numbers {
			e.numbers[tokenize.Normalize(word)] = n
		}
		for word, u := range v.Units {
			e.units[tokenize.Normalize(word)] = u
		}
	}
	return e
}

// Extract returns the first number in tokens, reading digit sequences and
// spelled-out numbers. When several numbers occur the first one is
// authoritative. A unit is reported only when the token right after the
// number (or a suffix glued to its digits, as in "5yrs") is a unit word.
// Digits followed by a multiplier word ("5 thousand", "10 हजार") are scaled.
// Values that do not fit an int are clamped to math.MaxInt so range checks
// reject them.
func (e *Extractor) Extract(tokens []string) Quantity {
	for i, tok := range tokens {
		if value, suffix, ok := leadingDigits(tok); ok {
			q := Quantity{Value: value, Found: true, Start: i, End: i + 1}
			if suffix != "" {
				q.Unit = e.units[suffix]
				return q
			}
			if i+1 < len(tokens) {
				if scale, ok := e.numbers[tokens[i+1]]; ok && scale >= 100 {
					q.Value = mulSat(q.Value, scale)
					q.End++
				}
			}
			if q.End < len(tokens) {
				q.Unit = e.units[tokens[q.End]]
			}
			return q
		}

		if _, ok := e.numbers[tok]; ok {
			value, end := e.readWords(tokens, i)
			q := Quantity{Value: value, Found: true, Start: i, End: end}
			if end < len(tokens) {
				q.Unit = e.units[tokens[end]]
			}
			return q
		}
	}
	return Quantity{}
}

// HasUnitWord reports whether any token is a unit word of the given kind.
func (e *Extractor) HasUnitWord(tokens []string, unit Unit) bool {
	if unit == UnitNone {
		return false
	}
	for _, tok := range tokens {
		if e.units[tok] == unit {
			return true
		}
	}
	return false
}

// Value returns the number a single spelled-out word stands for.
func (e *Extractor) Value(word string) (int, bool) {
	n, ok := e.numbers[word]
	return n, ok
}

// IsUnitWord reports whether tok is a known unit word.
func (e *Extractor) IsUnitWord(tok string) bool {
	_, ok := e.units[tok]
	return ok
}

// readWords composes consecutive number words starting at i ("twenty five",
// "one hundred twenty", "five thousand"). It stops at the first word that
// does not continue the number and returns the value and the index after the
// last consumed token.
func (e *Extractor) readWords(tokens []string, i int) (int, int) {
	total, group, scale := 0, 0, 0
	j := i
	for ; j < len(tokens); j++ {
		val, ok := e.numbers[tokens[j]]
		if !ok {
			break
		}
		if j > i && !composes(group, scale, val) {
			break
		}
		switch {
		case val >= 1000:
			total = addSat(total, mulSat(max(1, group), val))
			group, scale = 0, val
		case val == 100:
			group = mulSat(max(1, group), 100)
		default:
			group = addSat(group, val)
		}
	}
	return addSat(total, group), j
}

// mulSat multiplies non-negative a and b, clamping at math.MaxInt.
func mulSat(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

// addSat adds non-negative a and b, clamping at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// composes reports whether val can extend a number whose current hundreds
// group is group and whose last thousand-or-larger multiplier was scale.
func composes(group, scale, val int) bool {
	switch {
	case val >= 1000:
		return group > 0 && (scale == 0 || val < scale)
	case val == 100:
		return group > 0 && group < 100
	case val >= 10:
		return group%100 == 0
	default:
		rest := group % 100
		return rest == 0 || (rest >= 20 && rest%10 == 0)
	}
}

// leadingDigits parses the ASCII digit prefix of tok. The remaining suffix is
// returned so glued units ("5yrs", "18months") can be recognized. Digit runs
// too large for an int read as math.MaxInt.
func leadingDigits(tok string) (int, string, bool) {
	end := 0
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, "", false
	}
	value, err := strconv.Atoi(tok[:end])
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt, tok[end:], true
		}
		return 0, "", false
	}
	return value, tok[end:], true
}
