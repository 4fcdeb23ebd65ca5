package digest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minSentenceChars = 5

// Sentence is one segmented unit of a document.
type Sentence struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
}

// Sentences segments text and indexes the result.
func (e *Engine) Sentences(text string) []Sentence {
	parts := e.SplitSentences(text)
	out := make([]Sentence, 0, len(parts))
	for i, p := range parts {
		out = append(out, Sentence{Index: i, Text: p, WordCount: len(tokenize(p))})
	}
	return out
}

// SplitSentences breaks text on terminal punctuation followed by whitespace
// and a capital letter. Abbreviations and initials do not end a sentence and
// informal discourse markers ("okay.", "abeg!") are given room to end one.
// Text without any terminal punctuation is returned as a single sentence.
func (e *Engine) SplitSentences(text string) []string {
	if !strings.ContainsAny(text, ".!?") {
		return keepSentences([]string{text})
	}
	text = e.rules.softBoundary.ReplaceAllString(text, "$0 ")
	return keepSentences(e.splitOnBoundaries(text))
}

func (e *Engine) splitOnBoundaries(text string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			i += size
			continue
		}

		j, newline := i, false
		for j < len(text) {
			r2, s2 := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r2) {
				break
			}
			if r2 == '\n' {
				newline = true
			}
			j += s2
		}

		if j < len(text) {
			next, _ := utf8.DecodeRuneInString(text[j:])
			if unicode.IsUpper(next) && (newline || e.endsSentence(text[start:i])) {
				parts = append(parts, text[start:i])
				start = j
			}
		}
		i = j
	}
	return append(parts, text[start:])
}

// endsSentence reports whether chunk closes on a real sentence terminator.
func (e *Engine) endsSentence(chunk string) bool {
	last, _ := utf8.DecodeLastRuneInString(chunk)
	switch last {
	case '!', '?':
		return true
	case '.':
	default:
		return false
	}

	token := chunk
	if k := strings.LastIndexFunc(chunk, unicode.IsSpace); k >= 0 {
		token = chunk[k+1:]
	}
	token = strings.TrimRight(token, ".")
	token = strings.TrimLeftFunc(token, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	if token == "" {
		return true
	}
	if strings.Contains(token, ".") {
		return false
	}
	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		if unicode.IsUpper(r) {
			return false
		}
	}
	_, abbr := e.rules.abbreviations[strings.ToLower(token)]
	return !abbr
}

func keepSentences(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) <= minSentenceChars || !hasLetter(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// tokenize lower-cases text and returns its alphanumeric runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
