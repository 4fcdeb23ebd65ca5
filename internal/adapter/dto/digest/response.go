package digest

import (
	"time"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

// ActionItemResponse is one action item with its display form
type ActionItemResponse struct {
	Person  string `json:"person,omitempty"`
	Text    string `json:"text"`
	Display string `json:"display"`
}

// DigestResponse is the result of POST /v1/digest
type DigestResponse struct {
	Summary         string                    `json:"summary"`
	ActionItems     []ActionItemResponse      `json:"action_items"`
	FormattedOutput string                    `json:"formatted_output"`
	Breakdown       []entities.SentenceAction `json:"breakdown,omitempty"`
}

// DigestRecordResponse is a stored history entry
type DigestRecordResponse struct {
	ID              string               `json:"id"`
	FileName        string               `json:"file_name"`
	OriginalName    string               `json:"original_name"`
	SizeBytes       int64                `json:"size_bytes"`
	Transcript      string               `json:"transcript,omitempty"`
	ProviderSummary string               `json:"provider_summary,omitempty"`
	Summary         string               `json:"summary"`
	ActionItems     []ActionItemResponse `json:"action_items"`
	Confidence      float64              `json:"confidence"`
	DurationSeconds float64              `json:"duration_seconds"`
	ModelUsed       string               `json:"model_used,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}
