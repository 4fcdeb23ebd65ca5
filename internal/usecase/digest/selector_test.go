package digest

import (
	"strings"
	"testing"
)

func scoredFixture(scores ...float64) []ScoredSentence {
	names := []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven"}
	out := make([]ScoredSentence, len(scores))
	for i, s := range scores {
		out[i] = ScoredSentence{
			Sentence: Sentence{Index: i, Text: names[i] + " went fine."},
			Score:    s,
		}
	}
	return out
}

func TestSummarizeShortDocumentUnchanged(t *testing.T) {
	e := NewEngine()
	for _, in := range []string{
		"just a quick note call the client tomorrow send the proposal",
		"We shipped the release. The client was happy.",
	} {
		if got := e.Summarize(in, 3); got != in {
			t.Fatalf("Summarize(%q) = %q", in, got)
		}
	}
}

func TestSelectSentences(t *testing.T) {
	e := NewEngine()
	cases := []struct {
		name   string
		scores []float64
		k      int
		want   string
	}{
		{"adjacency rule", []float64{0.4, 0.9, 0.95, 0.3, 0.2, 0.1}, 2, "Zero went fine. Two went fine."},
		{"high score overrides adjacency", []float64{0.4, 1.2, 1.3, 0.3, 0.2}, 2, "One went fine. Two went fine."},
		{"anchor first sentence", []float64{0.6, 0.9, 0.1, 0.95, 0.2}, 2, "Zero went fine. Three went fine."},
		{"relaxed fill", []float64{0.1, 0.9, 0.8, 0.7}, 3, "One went fine. Two went fine. Three went fine."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.SelectSentences(scoredFixture(tc.scores...), tc.k); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	e := NewEngine()
	doc := []string{
		"The quarterly planning meeting opened with a budget overview.",
		"Marketing shared the campaign results from last month.",
		"We must review the budget before the board meeting on Friday.",
		"Lunch was ordered for everyone.",
		"The budget needs a new line for cloud hosting costs.",
		"Engineering will deploy the billing fix next week.",
		"Someone mentioned the office plants need water.",
		"Finally, the budget review is the key decision for this quarter.",
	}
	summary := e.Summarize(strings.Join(doc, " "), 3)

	picked := e.SplitSentences(summary)
	if len(picked) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %q", len(picked), summary)
	}
	last := -1
	for _, s := range picked {
		idx := -1
		for i, d := range doc {
			if d == s {
				idx = i
			}
		}
		if idx < 0 {
			t.Fatalf("summary sentence %q not in document", s)
		}
		if idx <= last {
			t.Fatalf("summary out of order or repeated: %q", summary)
		}
		last = idx
	}
}

func TestPositionalFallback(t *testing.T) {
	got := positionalFallback(scoredFixture(1, 1, 1, 1, 1))
	if want := "Zero went fine. Two went fine. Four went fine."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := positionalFallback(scoredFixture(1)); got != "Zero went fine." {
		t.Fatalf("single sentence fallback = %q", got)
	}
}
