package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/pkg/config"
	"github.com/johnquangdev/summaro/pkg/jobcontext"
)

const assemblyAIModel = "assemblyai"

// ErrNotConfigured is returned when no API key is available
var ErrNotConfigured = errors.New("assemblyai api key not configured")

// AssemblyAI transcribes audio with speaker labels and an informative
// paragraph summary through the official SDK.
type AssemblyAI struct {
	client   *aai.Client
	language string
	logger   *zap.Logger
	newBO    func() backoff.BackOff
}

// NewAssemblyAI creates an AssemblyAI transcriber using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAI(cfg *config.AssemblyAIConfig, logger *zap.Logger) *AssemblyAI {
	var apiKey, language string
	if cfg != nil {
		apiKey = cfg.APIKey
		language = cfg.Language
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if language == "" {
		language = "en"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &AssemblyAI{
		language: language,
		logger:   logger,
		newBO:    defaultBackOff,
	}
	if apiKey != "" {
		a.client = aai.NewClient(apiKey)
	}
	return a
}

func defaultBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second
	return bo
}

// Configured reports whether an API key was found
func (a *AssemblyAI) Configured() bool {
	return a != nil && a.client != nil
}

// Transcribe uploads audio and waits for the finished transcript. Transient
// failures are retried with exponential backoff; audio is rewound before
// each upload attempt.
func (a *AssemblyAI) Transcribe(ctx context.Context, audio io.ReadSeeker) (*entities.Transcription, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}

	var uploadURL string
	upload := func() error {
		if _, err := audio.Seek(0, io.SeekStart); err != nil {
			return backoff.Permanent(fmt.Errorf("rewind audio: %w", err))
		}
		url, err := a.client.Upload(ctx, audio)
		if err != nil {
			a.logger.Warn("assemblyai upload attempt failed", zap.Error(err))
			return classify(err)
		}
		uploadURL = url
		return nil
	}
	if err := backoff.Retry(upload, backoff.WithContext(a.newBO(), ctx)); err != nil {
		return nil, fmt.Errorf("failed to upload audio to AssemblyAI: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		LanguageCode:  aai.TranscriptLanguageCode(a.language),
		SpeakerLabels: aai.Bool(true),
	}
	// Summarization is only offered for English audio.
	if strings.HasPrefix(a.language, "en") {
		params.Summarization = aai.Bool(true)
		params.SummaryModel = aai.SummaryModel("informative")
		params.SummaryType = aai.SummaryType("paragraph")
	}

	var transcript aai.Transcript
	transcribe := func() error {
		t, err := a.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
		if err != nil {
			a.logger.Warn("assemblyai transcription attempt failed", zap.Error(err))
			return classify(err)
		}
		if t.Status == aai.TranscriptStatusError {
			msg := "transcription failed"
			if t.Error != nil {
				msg = *t.Error
			}
			return backoff.Permanent(fmt.Errorf("assemblyai error: %s", msg))
		}
		transcript = t
		return nil
	}
	if err := backoff.Retry(transcribe, backoff.WithContext(a.newBO(), ctx)); err != nil {
		return nil, fmt.Errorf("failed to transcribe with AssemblyAI: %w", err)
	}

	out := toTranscription(transcript)
	a.logger.Info("assemblyai transcript ready",
		zap.String("transcript_id", out.ProviderID),
		zap.Int("text_length", len(out.Text)),
		zap.Int("speakers", out.SpeakerCount),
	)
	return out, nil
}

// classify stops retrying on errors that will not go away by themselves
func classify(err error) error {
	if jobcontext.IsNonRetryableError(err) && !jobcontext.IsRetryableError(err) {
		return backoff.Permanent(err)
	}
	return err
}

func toTranscription(t aai.Transcript) *entities.Transcription {
	out := &entities.Transcription{
		Model:    assemblyAIModel,
		Language: string(t.LanguageCode),
	}
	if t.ID != nil {
		out.ProviderID = *t.ID
	}
	if t.Confidence != nil {
		out.Confidence = *t.Confidence
	}
	if t.AudioDuration != nil {
		out.DurationSeconds = float64(*t.AudioDuration)
	}
	if t.Summary != nil {
		out.Summary = strings.TrimSpace(*t.Summary)
		out.SummaryType = "informative"
	}

	if len(t.Utterances) > 0 {
		out.Text, out.SpeakerCount = RenderUtterances(t.Utterances)
	} else if t.Text != nil {
		out.Text = *t.Text
	}
	return out
}

// RenderUtterances writes one "Speaker N: text" line per utterance. Speakers
// are numbered from zero in order of first appearance.
func RenderUtterances(utterances []aai.TranscriptUtterance) (string, int) {
	numbers := make(map[string]int)
	lines := make([]string, 0, len(utterances))
	for _, u := range utterances {
		if u.Text == nil || strings.TrimSpace(*u.Text) == "" {
			continue
		}
		label := ""
		if u.Speaker != nil {
			label = *u.Speaker
		}
		n, ok := numbers[label]
		if !ok {
			n = len(numbers)
			numbers[label] = n
		}
		lines = append(lines, fmt.Sprintf("Speaker %d: %s", n, strings.TrimSpace(*u.Text)))
	}
	return strings.Join(lines, "\n"), len(numbers)
}
