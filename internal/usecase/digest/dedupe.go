package digest

import (
	"strings"
	"unicode"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

const (
	duplicateThreshold = 0.7
	minNormalizedChars = 5
)

// Normalize lower-cases s, strips punctuation and collapses whitespace.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)
	return collapseSpaces(s)
}

// Similarity is the token-set overlap |a∩b| / max(|a|,|b|) of two strings.
func Similarity(a, b string) float64 {
	return setOverlap(tokenSet(Normalize(a)), tokenSet(Normalize(b)))
}

func tokenSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		set[w] = struct{}{}
	}
	return set
}

func setOverlap(a, b map[string]struct{}) float64 {
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger == 0 {
		return 0
	}
	common := 0
	for w := range a {
		if _, ok := b[w]; ok {
			common++
		}
	}
	return float64(common) / float64(larger)
}

// Deduplicate drops items that overlap an earlier accepted item by more
// than 0.7, and items whose normalized form is five characters or fewer.
// First-seen order is kept.
func Deduplicate(items []string) []string {
	var out []string
	var seen []map[string]struct{}
	for _, it := range items {
		if set, ok := acceptable(it, seen); ok {
			out = append(out, it)
			seen = append(seen, set)
		}
	}
	return out
}

// DeduplicateItems applies Deduplicate to the rendered form of each item.
func DeduplicateItems(items []entities.ActionItem) []entities.ActionItem {
	var out []entities.ActionItem
	var seen []map[string]struct{}
	for _, it := range items {
		if set, ok := acceptable(it.String(), seen); ok {
			out = append(out, it)
			seen = append(seen, set)
		}
	}
	return out
}

func acceptable(item string, seen []map[string]struct{}) (map[string]struct{}, bool) {
	norm := Normalize(item)
	if len([]rune(norm)) <= minNormalizedChars {
		return nil, false
	}
	set := tokenSet(norm)
	for _, prev := range seen {
		if setOverlap(set, prev) > duplicateThreshold {
			return nil, false
		}
	}
	return set, true
}
