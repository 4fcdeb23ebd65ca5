package digest

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	anchorScore    = 0.5
	adjacencyScore = 1.0
)

// Summarize returns the k best sentences of text in document order. A k of
// zero or less uses the engine default. Documents with k or fewer sentences
// come back unchanged.
func (e *Engine) Summarize(text string, k int) string {
	if k <= 0 {
		k = e.targetSentences
	}
	sentences := e.Sentences(text)
	if len(sentences) <= k {
		return text
	}
	return e.selectSentences(e.ScoreSentences(sentences), k)
}

// SelectSentences picks up to k sentences: the opening sentence when it
// scores above 0.5, then the highest scorers that are not next to an already
// chosen sentence, then the remaining highest scorers regardless of
// adjacency. The result is joined in original order.
func (e *Engine) SelectSentences(scored []ScoredSentence, k int) string {
	if k <= 0 {
		k = e.targetSentences
	}
	if len(scored) <= k {
		texts := make([]string, len(scored))
		for i, s := range scored {
			texts[i] = s.Text
		}
		return strings.Join(texts, " ")
	}
	return e.selectSentences(scored, k)
}

func (e *Engine) selectSentences(scored []ScoredSentence, k int) (summary string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("sentence selection failed, using positional fallback", zap.Any("panic", r))
			summary = positionalFallback(scored)
		}
	}()

	ranked := make([]ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	chosen := make(map[int]ScoredSentence, k)
	if first := scored[0]; first.Index == 0 && first.Score > anchorScore {
		chosen[first.Index] = first
	}

	adjacent := func(idx int) bool {
		_, prev := chosen[idx-1]
		_, next := chosen[idx+1]
		return prev || next
	}

	for _, s := range ranked {
		if len(chosen) >= k {
			break
		}
		if _, ok := chosen[s.Index]; ok {
			continue
		}
		if adjacent(s.Index) && s.Score < adjacencyScore {
			continue
		}
		chosen[s.Index] = s
	}
	for _, s := range ranked {
		if len(chosen) >= k {
			break
		}
		if _, ok := chosen[s.Index]; !ok {
			chosen[s.Index] = s
		}
	}

	picked := make([]ScoredSentence, 0, len(chosen))
	for _, s := range chosen {
		picked = append(picked, s)
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].Index < picked[j].Index })

	texts := make([]string, len(picked))
	for i, s := range picked {
		texts[i] = s.Text
	}
	return finishSentence(collapseSpaces(strings.Join(texts, " ")))
}

// positionalFallback joins the first, middle and last sentences as they are.
func positionalFallback(scored []ScoredSentence) string {
	n := len(scored)
	if n == 0 {
		return ""
	}
	picks := []int{0, n / 2, n - 1}
	texts := make([]string, 0, len(picks))
	seen := make(map[int]bool, len(picks))
	for _, i := range picks {
		if seen[i] {
			continue
		}
		seen[i] = true
		texts = append(texts, scored[i].Text)
	}
	return strings.Join(texts, " ")
}
