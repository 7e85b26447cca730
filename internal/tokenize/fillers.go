package tokenize

import (
	"sort"

	"github.com/jonathan/voice-onboarding/internal/types"
)

// ScopeCommon is applied to every field and to intent classification.
const ScopeCommon = "common"

// FillerSet is the stoplist data of one locale, grouped by scope.
// Entries may be single words or multi-word phrases ("my name is").
type FillerSet struct {
	Locale types.Locale
	// Fallback names a second locale whose stoplist is applied as well.
	Fallback types.Locale
	Scopes   map[string][]string
}

type stoplist struct {
	words   map[string]struct{}
	phrases [][]string
}

// Stripper removes filler tokens. It is immutable after construction and
// safe for concurrent use.
type Stripper struct {
	lists    map[types.Locale]map[string]*stoplist
	fallback map[types.Locale]types.Locale
}

// NewStripper builds a Stripper from per-locale filler data.
func NewStripper(sets ...FillerSet) *Stripper {
	s := &Stripper{
		lists:    make(map[types.Locale]map[string]*stoplist),
		fallback: make(map[types.Locale]types.Locale),
	}

	for _, set := range sets {
		if set.Fallback != "" && set.Fallback != set.Locale {
			s.fallback[set.Locale] = set.Fallback
		}
		scopes, ok := s.lists[set.Locale]
		if !ok {
			scopes = make(map[string]*stoplist)
			s.lists[set.Locale] = scopes
		}
		for scope, entries := range set.Scopes {
			list, ok := scopes[scope]
			if !ok {
				list = &stoplist{words: make(map[string]struct{})}
				scopes[scope] = list
			}
			for _, entry := range entries {
				tokens := Tokenize(entry)
				switch len(tokens) {
				case 0:
					continue
				case 1:
					list.words[tokens[0]] = struct{}{}
				default:
					list.phrases = append(list.phrases, tokens)
				}
			}
		}
	}

	// Longest phrases first so "my name is" wins over "my name".
	for _, scopes := range s.lists {
		for _, list := range scopes {
			sort.SliceStable(list.phrases, func(i, j int) bool {
				return len(list.phrases[i]) > len(list.phrases[j])
			})
		}
	}

	return s
}

// Strip removes the fillers of the locale (and its fallback) in the given
// scopes. ScopeCommon is always included. Order of the remaining tokens is
// preserved; the result may be empty.
func (s *Stripper) Strip(tokens []string, locale types.Locale, scopes ...string) []string {
	lists := s.collect(locale, scopes)
	if len(lists) == 0 {
		return append([]string(nil), tokens...)
	}

	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if n := matchPhrase(lists, tokens[i:]); n > 0 {
			i += n
			continue
		}
		if isWord(lists, tokens[i]) {
			i++
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

// IsFiller reports whether a single token is a filler in the given scopes.
func (s *Stripper) IsFiller(token string, locale types.Locale, scopes ...string) bool {
	return isWord(s.collect(locale, scopes), token)
}

func (s *Stripper) collect(locale types.Locale, scopes []string) []*stoplist {
	locales := []types.Locale{locale}
	if fb, ok := s.fallback[locale]; ok {
		locales = append(locales, fb)
	}

	wanted := append([]string{ScopeCommon}, scopes...)
	var lists []*stoplist
	for _, loc := range locales {
		byScope := s.lists[loc]
		seen := make(map[string]bool, len(wanted))
		for _, scope := range wanted {
			if seen[scope] {
				continue
			}
			seen[scope] = true
			if list, ok := byScope[scope]; ok {
				lists = append(lists, list)
			}
		}
	}
	return lists
}

func matchPhrase(lists []*stoplist, tokens []string) int {
	best := 0
	for _, list := range lists {
		for _, phrase := range list.phrases {
			if len(phrase) <= best || len(phrase) > len(tokens) {
				continue
			}
			if hasPrefix(tokens, phrase) {
				best = len(phrase)
			}
		}
	}
	return best
}

func isWord(lists []*stoplist, token string) bool {
	for _, list := range lists {
		if _, ok := list.words[token]; ok {
			return true
		}
	}
	return false
}

func hasPrefix(tokens, phrase []string) bool {
	for i, p := range phrase {
		if tokens[i] != p {
			return false
		}
	}
	return true
}
