package audio

import (
	"strings"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

const (
	FallbackTranscript = "Audio received but transcription processing failed."
	FallbackMessage    = "Processed with fallback"
	FallbackNote       = "Transcription provider failed. Check API key and configuration."

	// noProviderSummary is what an empty provider summary used to be
	// reported as; it is treated as no summary at all.
	noProviderSummary = "No summary generated by AI"
)

var (
	fallbackSentences = []string{
		"The audio file was uploaded successfully.",
		"However, transcription processing encountered an issue.",
		"Please check your API key configuration and try again.",
	}
	fallbackActions = []string{
		"Verify the AssemblyAI API key is properly configured",
		"Check internet connection",
		"Ensure audio format is supported",
	}
)

// fallbackResult is returned when the provider cannot produce a transcript.
func fallbackResult(file entities.StoredFile) *Result {
	items := make([]entities.ActionItem, len(fallbackActions))
	for i, a := range fallbackActions {
		items[i] = entities.ActionItem{Text: a}
	}
	return &Result{
		Fallback:   true,
		File:       file,
		Transcript: FallbackTranscript,
		Digest: entities.Digest{
			Summary:     strings.Join(fallbackSentences, "\n"),
			ActionItems: items,
		},
		Note: FallbackNote,
	}
}
