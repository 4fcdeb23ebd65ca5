package audio

import (
	"testing"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

func TestComputeStats(t *testing.T) {
	res := &Result{
		Transcript:      "one two three four",
		ProviderSummary: "one two",
		Transcription:   &entities.Transcription{Confidence: 0.876},
		Digest:          entities.Digest{ActionItems: []entities.ActionItem{{Text: "a"}, {Text: "b"}}},
	}
	got := ComputeStats(res)
	want := Stats{
		TranscriptLength: 18,
		SummaryLength:    7,
		Compression:      "61%",
		WordCount:        4,
		ActionItemsCount: 2,
		Confidence:       "88%",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestComputeStats_EmptyTranscript(t *testing.T) {
	got := ComputeStats(&Result{})
	if got.Compression != "0%" || got.Confidence != "0%" || got.WordCount != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestFallbackResult(t *testing.T) {
	res := fallbackResult(entities.StoredFile{Name: "x.mp3"})
	stats := ComputeStats(res)
	if stats.Compression != "100%" || stats.ActionItemsCount != 3 {
		t.Fatalf("got %+v", stats)
	}
	if res.Digest.ActionItems[0].Person != "" {
		t.Fatalf("fallback actions are unattributed")
	}
}
