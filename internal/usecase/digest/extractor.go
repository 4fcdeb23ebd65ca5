package digest

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minActionChars = 15
	maxActionChars = 120
)

// patternFamily is one class of actionable phrasing. Group 1 of re captures
// the clause that becomes the action.
type patternFamily struct {
	name string
	re   *regexp.Regexp
}

const clause = `([^.!?\n]+)`

func compileFamilies() []patternFamily {
	return []patternFamily{
		{"obligation", regexp.MustCompile(`(?i)\b(?:need to|must|should|will|going to)\s+` + clause)},
		{"request", regexp.MustCompile(`(?i)\b(?:please|can you|could you)\s+` + clause)},
		{"label", regexp.MustCompile(`(?i)\b(?:action items?|to-?do|task)\b\s*:?\s*` + clause)},
		{"follow-up", regexp.MustCompile(`(?i)\bfollow[- ]up\s+(?:on|with|about)\s+` + clause)},
		{"reminder", regexp.MustCompile(`(?i)\b(?:remember to|don['’]t forget to|do not forget to)\s+` + clause)},
		{"deadline", regexp.MustCompile(`(?i)\b(?:deadline|due)\s+(?:is|on)\s+` + clause)},
	}
}

// ExtractActions scans text with every pattern family and returns the
// cleaned matches in family order, then match order. Items mentioning a
// farewell or falling outside 15..120 characters are dropped.
func (e *Engine) ExtractActions(text string) []string {
	var out []string
	for _, fam := range e.rules.families {
		for _, m := range fam.re.FindAllStringSubmatch(text, -1) {
			item := e.CleanAction(m[1])
			if e.acceptAction(item) {
				out = append(out, item)
			}
		}
	}
	return out
}

// CleanAction strips a leading speaker label and hedging phrases, collapses
// whitespace, capitalizes and terminates the fragment.
func (e *Engine) CleanAction(text string) string {
	text = strings.TrimSpace(text)
	text = e.rules.speakerLabel.ReplaceAllString(text, "")
	for _, h := range e.rules.hedges {
		text = h.ReplaceAllString(text, "")
	}
	text = collapseSpaces(text)
	if text == "" {
		return ""
	}
	return finishSentence(text)
}

func (e *Engine) acceptAction(item string) bool {
	n := utf8.RuneCountInString(item)
	if n < minActionChars || n > maxActionChars || !hasLetter(item) {
		return false
	}
	return !e.rules.farewell.MatchString(item)
}
