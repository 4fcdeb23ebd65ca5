package audio

import (
	"time"

	"github.com/johnquangdev/summaro/internal/domain/entities"
	usecase "github.com/johnquangdev/summaro/internal/usecase/audio"
)

// FileResponse is one entry of the stored file listing
type FileResponse struct {
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	Uploaded     time.Time `json:"uploaded"`
	URL          string    `json:"url"`
}

// FileListResponse lists stored uploads
type FileListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Files   []FileResponse `json:"files"`
}

// FileInfo describes the uploaded file in a processing response
type FileInfo struct {
	OriginalName string  `json:"originalName"`
	Size         int64   `json:"size"`
	Duration     float64 `json:"duration,omitempty"`
}

// FormattedOutput is the display-ready rendering of a digest
type FormattedOutput struct {
	Summary       string                    `json:"summary"`
	ActionItems   string                    `json:"actionItems"`
	Breakdown     []entities.SentenceAction `json:"breakdown,omitempty"`
	BreakdownText string                    `json:"breakdownText,omitempty"`
}

// ProviderInfo describes the transcription run
type ProviderInfo struct {
	Model       string  `json:"model"`
	Duration    float64 `json:"duration"`
	Confidence  float64 `json:"confidence"`
	SummaryType string  `json:"summaryType"`
}

// ProcessingInfo describes how the response was produced
type ProcessingInfo struct {
	Engine    string    `json:"engine"`
	Features  []string  `json:"features"`
	Timestamp time.Time `json:"timestamp"`
}

// UploadResponse is the result of POST /api/upload-audio
type UploadResponse struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	File            FileInfo        `json:"file"`
	Transcript      string          `json:"transcript"`
	Summary         string          `json:"summary"`
	ActionItems     []string        `json:"actionItems"`
	FormattedOutput FormattedOutput `json:"formattedOutput"`
	Provider        *ProviderInfo   `json:"provider,omitempty"`
	Stats           *usecase.Stats  `json:"stats,omitempty"`
	Processing      *ProcessingInfo `json:"processing,omitempty"`
	Note            string          `json:"note,omitempty"`
	Cached          bool            `json:"cached,omitempty"`
	DigestID        string          `json:"digestId,omitempty"`
}
