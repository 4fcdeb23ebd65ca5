package digest

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

// FormatActionItems renders items as a numbered list, one per line.
func FormatActionItems(items []entities.ActionItem) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, it.String())
	}
	return strings.Join(lines, "\n")
}

// FormatBreakdown renders the per-sentence actions as "<n>. <action>" lines.
func FormatBreakdown(rows []entities.SentenceAction) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%d. %s", r.Number, r.Action)
	}
	return strings.Join(lines, "\n")
}

// FormatSentences joins the breakdown's cleaned sentences one per line.
func FormatSentences(rows []entities.SentenceAction) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.Sentence
	}
	return strings.Join(lines, "\n")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// endsWithAny reports whether s ends in one of the given runes.
func endsWithAny(s string, terminals string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && strings.ContainsRune(terminals, r)
}

// finishSentence capitalizes s and appends a period unless it already ends
// in terminal punctuation.
func finishSentence(s string) string {
	s = capitalize(strings.TrimSpace(s))
	if s == "" || endsWithAny(s, ".!?") {
		return s
	}
	return s + "."
}
