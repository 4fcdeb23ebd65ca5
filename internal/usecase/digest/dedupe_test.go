package digest

import (
	"reflect"
	"testing"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

func TestDeduplicate(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "near duplicate",
			in:   []string{"Send the report to the client", "Send report to client"},
			want: []string{"Send the report to the client"},
		},
		{
			name: "distinct items kept in order",
			in:   []string{"Book the venue.", "Draft the press release.", "Update the pricing page."},
			want: []string{"Book the venue.", "Draft the press release.", "Update the pricing page."},
		},
		{
			name: "too short",
			in:   []string{"Go.", "Ship it!", "Ship the release notes."},
			want: []string{"Ship it!", "Ship the release notes."},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Deduplicate(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Deduplicate() = %q, want %q", got, tc.want)
			}
			if again := Deduplicate(got); !reflect.DeepEqual(again, got) {
				t.Fatalf("not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Send the report to the client", "Send report to client"},
		{"Review the deck", "review, the DECK!"},
		{"alpha beta", "gamma"},
		{"", "anything"},
		{"", ""},
	}
	for _, p := range pairs {
		if a, b := Similarity(p[0], p[1]), Similarity(p[1], p[0]); a != b {
			t.Fatalf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], a, b)
		}
	}
	if got := Similarity("Review the deck", "review, the DECK!"); got != 1 {
		t.Fatalf("expected identical normalized strings to score 1, got %v", got)
	}
}

func TestDeduplicateItemsUsesRenderedText(t *testing.T) {
	items := []entities.ActionItem{
		{Person: "Ada", Text: "Review the quarterly budget."},
		{Text: "Review the quarterly budget."},
		{Person: "Bola", Text: "Book the venue for the offsite."},
	}
	got := DeduplicateItems(items)
	want := []entities.ActionItem{items[0], items[2]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DeduplicateItems() = %+v, want %+v", got, want)
	}
}
