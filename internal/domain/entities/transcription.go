package entities

import "time"

// Transcription is what the speech-to-text provider returns for one file.
type Transcription struct {
	ProviderID      string  `json:"provider_id,omitempty"`
	Text            string  `json:"text"`
	Summary         string  `json:"summary"`
	SummaryType     string  `json:"summary_type,omitempty"`
	Language        string  `json:"language,omitempty"`
	Confidence      float64 `json:"confidence"`
	DurationSeconds float64 `json:"duration_seconds"`
	Model           string  `json:"model"`
	SpeakerCount    int     `json:"speaker_count,omitempty"`
}

// StoredFile describes an uploaded audio file on disk.
type StoredFile struct {
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName"`
	Path         string    `json:"-"`
	Size         int64     `json:"size"`
	ContentHash  string    `json:"-"`
	ModTime      time.Time `json:"uploaded"`
}
