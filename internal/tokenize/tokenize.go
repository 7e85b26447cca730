// Package tokenize splits spoken or typed answers into normalized tokens and
// strips locale-specific filler words.
package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// devanagariDigits maps ० through ९ onto their ASCII equivalents.
var devanagariDigits = strings.NewReplacer(
	"०", "0", "१", "1", "२", "2", "३", "3", "४", "4",
	"५", "5", "६", "6", "७", "7", "८", "8", "९", "9",
)

// Normalize applies NFC, maps Devanagari digits to ASCII, drops zero-width
// joiners and lower-cases the text.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = devanagariDigits.Replace(text)
	text = strings.Map(func(r rune) rune {
		if r == '\u200c' || r == '\u200d' || r == '\ufeff' {
			return -1
		}
		return r
	}, text)
	return strings.ToLower(text)
}

// NormalizeDigits maps Devanagari digits to ASCII and leaves everything else untouched.
func NormalizeDigits(text string) string {
	return devanagariDigits.Replace(text)
}

// Tokenize normalizes text and splits it on every rune that is not a letter,
// digit or combining mark. Combining marks stay inside tokens so Devanagari
// vowel signs remain attached to their consonants.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return !isTokenRune(r)
	})
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// IsAlphabetic reports whether r counts as a letter for name-like answers,
// in any script.
func IsAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r)
}

// AlphaRatio returns the share of runes in s that are alphabetic. An empty
// string has ratio 0.
func AlphaRatio(s string) float64 {
	total, alpha := 0, 0
	for _, r := range s {
		total++
		if IsAlphabetic(r) {
			alpha++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alpha) / float64(total)
}

// Title joins tokens with single spaces and title-cases every word.
func Title(tokens []string) string {
	joined := strings.Join(tokens, " ")
	return cases.Title(language.Und).String(joined)
}

// Join joins tokens with single spaces.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}
