package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Digest is the post-processed readout of one conversation.
type Digest struct {
	Summary     string           `json:"summary"`
	ActionItems []ActionItem     `json:"actionItems"`
	Breakdown   []SentenceAction `json:"breakdown,omitempty"`
}

// ActionItemStrings renders every action item for display.
func (d Digest) ActionItemStrings() []string {
	out := make([]string, 0, len(d.ActionItems))
	for _, item := range d.ActionItems {
		out = append(out, item.String())
	}
	return out
}

// DigestRecord is the persisted history entry for a processed upload
type DigestRecord struct {
	ID              uuid.UUID                       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FileName        string                          `json:"file_name" gorm:"type:varchar(255);not null"`
	OriginalName    string                          `json:"original_name" gorm:"type:varchar(255)"`
	SizeBytes       int64                           `json:"size_bytes"`
	ContentHash     string                          `json:"content_hash" gorm:"type:varchar(64);index"`
	Transcript      string                          `json:"transcript" gorm:"type:text"`
	ProviderSummary string                          `json:"provider_summary" gorm:"type:text"`
	Summary         string                          `json:"summary" gorm:"type:text;not null"`
	ActionItems     datatypes.JSONSlice[ActionItem] `json:"action_items" gorm:"type:jsonb"`
	Confidence      float64                         `json:"confidence"`
	DurationSeconds float64                         `json:"duration_seconds"`
	ModelUsed       string                          `json:"model_used" gorm:"type:varchar(100)"`
	CreatedAt       time.Time                       `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (DigestRecord) TableName() string {
	return "digest_records"
}

// NewDigestRecord creates a history entry for a processed file
func NewDigestRecord(file StoredFile, t *Transcription, d Digest) *DigestRecord {
	rec := &DigestRecord{
		ID:           uuid.New(),
		FileName:     file.Name,
		OriginalName: file.OriginalName,
		SizeBytes:    file.Size,
		ContentHash:  file.ContentHash,
		Summary:      d.Summary,
		ActionItems:  datatypes.NewJSONSlice(d.ActionItems),
		CreatedAt:    time.Now(),
	}
	if t != nil {
		rec.Transcript = t.Text
		rec.ProviderSummary = t.Summary
		rec.Confidence = t.Confidence
		rec.DurationSeconds = t.DurationSeconds
		rec.ModelUsed = t.Model
	}
	return rec
}
