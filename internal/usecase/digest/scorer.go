package digest

import (
	"math"
	"strings"
	"unicode/utf8"
)

// WordImportance maps a normalized word to a score in (0,1]. Words absent
// from the map score zero.
type WordImportance map[string]float64

// ScoredSentence is a Sentence with its relative ranking score.
type ScoredSentence struct {
	Sentence
	Score float64
}

const (
	emphasisCap = 0.5
	actionCap   = 0.8
)

// WordImportance counts words across sentences and log-smooths the counts
// against the most frequent word. Stop words, words of two characters or
// fewer and singletons get no entry.
func (e *Engine) WordImportance(sentences []Sentence) WordImportance {
	freq := make(map[string]int)
	peak := 0
	for _, s := range sentences {
		for _, w := range tokenize(s.Text) {
			if utf8.RuneCountInString(w) <= 2 {
				continue
			}
			if _, stop := e.rules.stopWords[w]; stop {
				continue
			}
			freq[w]++
			if freq[w] > peak {
				peak = freq[w]
			}
		}
	}

	scores := make(WordImportance)
	if peak <= 1 {
		return scores
	}
	denom := math.Log1p(float64(peak))
	for w, f := range freq {
		if f > 1 {
			scores[w] = math.Log1p(float64(f)) / denom
		}
	}
	return scores
}

// ScoreSentences scores every sentence against the document's word table.
func (e *Engine) ScoreSentences(sentences []Sentence) []ScoredSentence {
	importance := e.WordImportance(sentences)
	out := make([]ScoredSentence, len(sentences))
	for i, s := range sentences {
		out[i] = ScoredSentence{Sentence: s, Score: e.ScoreSentence(s, len(sentences), importance)}
	}
	return out
}

// ScoreSentence sums the position, density, length, punctuation, emphasis
// and action signals for one sentence.
func (e *Engine) ScoreSentence(s Sentence, total int, importance WordImportance) float64 {
	lower := strings.ToLower(s.Text)
	words := tokenize(s.Text)

	score := positionScore(s.Index, total)
	score += densityScore(words, importance)
	score += lengthScore(len(words))
	if strings.Contains(s.Text, "?") {
		score += 0.3
	}
	if e.rules.digits.MatchString(s.Text) {
		score += 0.2
	}
	score += e.emphasisScore(lower)
	score += e.actionScore(lower)
	return score
}

func positionScore(index, total int) float64 {
	switch {
	case index == 0:
		return 1.5
	case index == total-1:
		return 1.2
	case float64(index) < float64(total)*0.2:
		return 0.8
	case float64(index) > float64(total)*0.8:
		return 0.6
	default:
		return 0.5
	}
}

func densityScore(words []string, importance WordImportance) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	important := 0
	for _, w := range words {
		if v, ok := importance[w]; ok {
			sum += v
			important++
		}
	}
	return sum * (float64(important) / float64(len(words))) * 1.2
}

func lengthScore(n int) float64 {
	switch {
	case n >= 8 && n <= 20:
		return 0.8
	case n >= 5 && n <= 25:
		return 0.5
	case n >= 3 && n <= 30:
		return 0.2
	default:
		return 0
	}
}

func (e *Engine) emphasisScore(lower string) float64 {
	var score float64
	for _, w := range e.rules.emphasis {
		if strings.Contains(lower, w) {
			score += 0.1
		}
	}
	for _, w := range e.rules.community {
		if strings.Contains(lower, w) {
			score += 0.15
		}
	}
	return math.Min(score, emphasisCap)
}

func (e *Engine) actionScore(lower string) float64 {
	var score float64
	for _, v := range e.rules.verbs {
		if strings.Contains(lower, v) {
			score += 0.25
		}
	}
	if e.rules.modal.MatchString(lower) {
		score += 0.3
	}
	return math.Min(score, actionCap)
}
