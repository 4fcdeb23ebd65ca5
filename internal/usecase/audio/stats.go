package audio

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Stats describes how much the transcript was condensed
type Stats struct {
	TranscriptLength int    `json:"transcriptLength"`
	SummaryLength    int    `json:"summaryLength"`
	Compression      string `json:"compression"`
	WordCount        int    `json:"wordCount"`
	ActionItemsCount int    `json:"actionItemsCount"`
	Confidence       string `json:"confidence"`
}

// ComputeStats measures a processed result. Compression compares the
// provider summary to the transcript and is 0% for an empty transcript.
func ComputeStats(res *Result) Stats {
	transcriptLen := utf8.RuneCountInString(res.Transcript)
	summaryLen := utf8.RuneCountInString(res.ProviderSummary)

	compression := 0.0
	if transcriptLen > 0 {
		compression = math.Round((1 - float64(summaryLen)/float64(transcriptLen)) * 100)
	}
	confidence := 0.0
	if res.Transcription != nil {
		confidence = res.Transcription.Confidence
	}

	return Stats{
		TranscriptLength: transcriptLen,
		SummaryLength:    summaryLen,
		Compression:      fmt.Sprintf("%.0f%%", compression),
		WordCount:        len(strings.Fields(res.Transcript)),
		ActionItemsCount: len(res.Digest.ActionItems),
		Confidence:       fmt.Sprintf("%.0f%%", math.Round(confidence*100)),
	}
}
