package digest

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWordImportance(t *testing.T) {
	e := NewEngine()
	scores := e.WordImportance(e.Sentences("Budget review today. Budget numbers look fine. The budget review is done."))

	if !almostEqual(scores["budget"], 1) {
		t.Fatalf("budget = %v, want 1", scores["budget"])
	}
	if want := math.Log(3) / math.Log(4); !almostEqual(scores["review"], want) {
		t.Fatalf("review = %v, want %v", scores["review"], want)
	}
	for _, w := range []string{"today", "the", "is", "numbers"} {
		if _, ok := scores[w]; ok {
			t.Fatalf("%q should have no entry", w)
		}
	}
}

func TestWordImportanceAllSingletons(t *testing.T) {
	e := NewEngine()
	if got := e.WordImportance(e.Sentences("Every word here appears once only.")); len(got) != 0 {
		t.Fatalf("expected empty table, got %v", got)
	}
}

func TestPositionScore(t *testing.T) {
	cases := []struct {
		index, total int
		want         float64
	}{
		{0, 20, 1.5},
		{19, 20, 1.2},
		{1, 20, 0.8},
		{18, 20, 0.6},
		{10, 20, 0.5},
	}
	for _, tc := range cases {
		if got := positionScore(tc.index, tc.total); got != tc.want {
			t.Fatalf("positionScore(%d, %d) = %v, want %v", tc.index, tc.total, got, tc.want)
		}
	}
}

func TestLengthScore(t *testing.T) {
	cases := map[int]float64{2: 0, 3: 0.2, 5: 0.5, 8: 0.8, 20: 0.8, 24: 0.5, 30: 0.2, 31: 0}
	for n, want := range cases {
		if got := lengthScore(n); got != want {
			t.Fatalf("lengthScore(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestLexiconBonusesAreCapped(t *testing.T) {
	e := NewEngine()
	if got := e.emphasisScore("important critical urgent essential priority decision"); !almostEqual(got, 0.5) {
		t.Fatalf("emphasis = %v, want 0.5", got)
	}
	if got := e.actionScore("create build design write"); !almostEqual(got, 0.8) {
		t.Fatalf("action = %v, want 0.8", got)
	}
	if got := e.actionScore("we should"); !almostEqual(got, 0.3) {
		t.Fatalf("modal = %v, want 0.3", got)
	}
}

func TestScoreSentenceBonuses(t *testing.T) {
	e := NewEngine()
	plain := Sentence{Index: 5, Text: "The room was quiet for most of the afternoon"}
	question := Sentence{Index: 5, Text: "The room was quiet for most of the afternoon?"}
	numeric := Sentence{Index: 5, Text: "The room was quiet for most of the 3pm afternoon"}

	base := e.ScoreSentence(plain, 11, nil)
	if got := e.ScoreSentence(question, 11, nil); !almostEqual(got-base, 0.3) {
		t.Fatalf("question bonus = %v", got-base)
	}
	if got := e.ScoreSentence(numeric, 11, nil); !almostEqual(got-base, 0.2) {
		t.Fatalf("numeric bonus = %v", got-base)
	}
}
