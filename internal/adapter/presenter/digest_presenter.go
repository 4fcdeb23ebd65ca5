package presenter

import (
	digestdto "github.com/johnquangdev/summaro/internal/adapter/dto/digest"
	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/internal/usecase/digest"
)

// ToActionItemResponses converts action items with their display strings
func ToActionItemResponses(items []entities.ActionItem) []digestdto.ActionItemResponse {
	out := make([]digestdto.ActionItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, digestdto.ActionItemResponse{
			Person:  it.Person,
			Text:    it.Text,
			Display: it.String(),
		})
	}
	return out
}

// ToDigestResponse converts an engine digest
func ToDigestResponse(d entities.Digest) *digestdto.DigestResponse {
	return &digestdto.DigestResponse{
		Summary:         d.Summary,
		ActionItems:     ToActionItemResponses(d.ActionItems),
		FormattedOutput: digest.FormatActionItems(d.ActionItems),
		Breakdown:       d.Breakdown,
	}
}

// ToDigestRecordResponse converts a history entry. Listings omit the
// transcript.
func ToDigestRecordResponse(r *entities.DigestRecord, withTranscript bool) *digestdto.DigestRecordResponse {
	if r == nil {
		return nil
	}
	resp := &digestdto.DigestRecordResponse{
		ID:              r.ID.String(),
		FileName:        r.FileName,
		OriginalName:    r.OriginalName,
		SizeBytes:       r.SizeBytes,
		ProviderSummary: r.ProviderSummary,
		Summary:         r.Summary,
		ActionItems:     ToActionItemResponses(r.ActionItems),
		Confidence:      r.Confidence,
		DurationSeconds: r.DurationSeconds,
		ModelUsed:       r.ModelUsed,
		CreatedAt:       r.CreatedAt,
	}
	if withTranscript {
		resp.Transcript = r.Transcript
	}
	return resp
}
