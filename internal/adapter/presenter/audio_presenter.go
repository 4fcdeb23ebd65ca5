package presenter

import (
	"strings"

	audiodto "github.com/johnquangdev/summaro/internal/adapter/dto/audio"
	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/internal/usecase/audio"
	"github.com/johnquangdev/summaro/internal/usecase/digest"
)

const (
	processingEngine = "AssemblyAI + Summaro digest"
	successMessage   = "Audio processed with AssemblyAI"
)

var processingFeatures = []string{
	"Speech-to-Text",
	"Speaker Labels",
	"AI Summarization",
	"Extractive Summary",
	"Action Item Extraction",
}

// ToFileResponse converts a stored file to its listing entry
func ToFileResponse(f entities.StoredFile) audiodto.FileResponse {
	return audiodto.FileResponse{
		Name:         f.Name,
		OriginalName: f.OriginalName,
		Size:         f.Size,
		Uploaded:     f.ModTime,
		URL:          "/uploads/" + f.Name,
	}
}

// ToFileListResponse converts a listing
func ToFileListResponse(files []entities.StoredFile) audiodto.FileListResponse {
	out := audiodto.FileListResponse{
		Success: true,
		Count:   len(files),
		Files:   make([]audiodto.FileResponse, 0, len(files)),
	}
	for _, f := range files {
		out.Files = append(out.Files, ToFileResponse(f))
	}
	return out
}

// ToUploadResponse renders a processed upload. Fallback results carry only
// the fixed summary, action list and note.
func ToUploadResponse(res *audio.Result) *audiodto.UploadResponse {
	if res == nil {
		return nil
	}

	resp := &audiodto.UploadResponse{
		Success: true,
		File: audiodto.FileInfo{
			OriginalName: res.File.OriginalName,
			Size:         res.File.Size,
		},
		Transcript:  res.Transcript,
		Summary:     res.Digest.Summary,
		ActionItems: res.Digest.ActionItemStrings(),
		Cached:      res.Cached,
	}

	if res.Fallback {
		resp.Message = audio.FallbackMessage
		resp.Note = res.Note
		resp.FormattedOutput = audiodto.FormattedOutput{
			Summary:     res.Digest.Summary,
			ActionItems: digest.FormatActionItems(res.Digest.ActionItems),
		}
		return resp
	}

	resp.Message = successMessage
	resp.FormattedOutput = ToFormattedOutput(res.Digest)

	if t := res.Transcription; t != nil {
		resp.File.Duration = t.DurationSeconds
		resp.Provider = &audiodto.ProviderInfo{
			Model:       t.Model,
			Duration:    t.DurationSeconds,
			Confidence:  t.Confidence,
			SummaryType: t.SummaryType,
		}
	}
	stats := audio.ComputeStats(res)
	resp.Stats = &stats
	resp.Processing = &audiodto.ProcessingInfo{
		Engine:    processingEngine,
		Features:  processingFeatures,
		Timestamp: res.ProcessedAt,
	}
	if res.DigestID != nil {
		resp.DigestID = res.DigestID.String()
	}
	return resp
}

// ToFormattedOutput renders the display form of a digest. The summary is
// the cleaned provider sentences when a breakdown exists.
func ToFormattedOutput(d entities.Digest) audiodto.FormattedOutput {
	out := audiodto.FormattedOutput{
		Summary:     d.Summary,
		ActionItems: digest.FormatActionItems(d.ActionItems),
	}
	if len(d.Breakdown) > 0 {
		if s := digest.FormatSentences(d.Breakdown); strings.TrimSpace(s) != "" {
			out.Summary = s
		}
		out.Breakdown = d.Breakdown
		out.BreakdownText = digest.FormatBreakdown(d.Breakdown)
	}
	return out
}
