// Package audio orchestrates an upload from the stored file to a finished
// digest: provider transcription, post-processing, history and caching.
package audio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/internal/domain/repositories"
	"github.com/johnquangdev/summaro/internal/infrastructure/cache"
	"github.com/johnquangdev/summaro/internal/infrastructure/storage"
	"github.com/johnquangdev/summaro/internal/usecase/digest"
	ucerrors "github.com/johnquangdev/summaro/internal/usecase/errors"
)

const cachePrefix = "digest:"

// Transcriber turns stored audio into a transcript and provider summary
type Transcriber interface {
	Configured() bool
	Transcribe(ctx context.Context, audio io.ReadSeeker) (*entities.Transcription, error)
}

// Summarizer backfills a provider summary when the transcriber gave none
type Summarizer interface {
	Configured() bool
	GenerateSummary(ctx context.Context, transcript string) (string, error)
}

// FileStore holds uploaded audio on local disk
type FileStore interface {
	Save(originalName string, r io.Reader, limit int64) (entities.StoredFile, error)
	Open(name string) (*os.File, error)
	List() ([]entities.StoredFile, error)
}

// Archiver keeps a durable copy of processed audio and digests
type Archiver interface {
	ArchiveAudio(ctx context.Context, file entities.StoredFile, r io.Reader) (string, error)
	ArchiveDigest(ctx context.Context, id string, payload []byte) (string, error)
}

// Deps are the collaborators of Service. Summarizer, Cache, History and
// Archive are optional.
type Deps struct {
	Store       FileStore
	Transcriber Transcriber
	Summarizer  Summarizer
	Engine      *digest.Engine
	Cache       cache.Store
	History     repositories.DigestRepository
	Archive     Archiver
}

// Options holds upload policy and timeouts
type Options struct {
	MaxBytes          int64
	AllowedExtensions []string
	ProviderTimeout   time.Duration
	ResultTTL         time.Duration
}

// Upload is one incoming audio file
type Upload struct {
	FileName string
	Size     int64
	Body     io.Reader
}

// Result is everything produced for one upload
type Result struct {
	Fallback        bool                    `json:"fallback"`
	Cached          bool                    `json:"cached"`
	File            entities.StoredFile     `json:"file"`
	Transcript      string                  `json:"transcript"`
	ProviderSummary string                  `json:"providerSummary"`
	Transcription   *entities.Transcription `json:"transcription,omitempty"`
	Digest          entities.Digest         `json:"digest"`
	DigestID        *uuid.UUID              `json:"digestId,omitempty"`
	Note            string                  `json:"note,omitempty"`
	ProcessedAt     time.Time               `json:"processedAt"`
}

// Service processes uploads and serves history
type Service struct {
	deps   Deps
	opts   Options
	logger *zap.Logger
}

// NewService creates an upload processing service
func NewService(deps Deps, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Engine == nil {
		deps.Engine = digest.NewEngine(digest.WithLogger(logger))
	}
	return &Service{deps: deps, opts: opts, logger: logger}
}

// AllowedExtensions returns the accepted extensions
func (s *Service) AllowedExtensions() []string {
	return s.opts.AllowedExtensions
}

// MaxBytes returns the upload limit
func (s *Service) MaxBytes() int64 {
	return s.opts.MaxBytes
}

// Validate checks an upload's name and declared size before anything is
// written to disk.
func (s *Service) Validate(name string, size int64) error {
	if strings.TrimSpace(name) == "" {
		return ucerrors.ErrMissingFile
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(s.opts.AllowedExtensions, ext) {
		return fmt.Errorf("%w: %q", ucerrors.ErrUnsupportedFormat, ext)
	}
	if s.opts.MaxBytes > 0 && size > s.opts.MaxBytes {
		return ucerrors.ErrFileTooLarge
	}
	if size == 0 {
		return ucerrors.ErrEmptyFile
	}
	return nil
}

// Process stores an upload and produces its digest. Provider failures do
// not fail the call: the fixed fallback result is returned instead.
func (s *Service) Process(ctx context.Context, up Upload) (*Result, error) {
	if err := s.Validate(up.FileName, up.Size); err != nil {
		return nil, err
	}

	file, err := s.deps.Store.Save(up.FileName, up.Body, s.opts.MaxBytes)
	if errors.Is(err, storage.ErrTooLarge) {
		return nil, ucerrors.ErrFileTooLarge
	}
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	log := s.logger.With(
		zap.String("file", file.Name),
		zap.String("original_name", file.OriginalName),
		zap.Int64("size", file.Size),
	)
	log.Info("audio stored")

	if res, ok := s.cached(ctx, file); ok {
		log.Info("serving cached digest", zap.String("hash", file.ContentHash))
		return res, nil
	}
	if res, ok := s.fromHistory(ctx, file); ok {
		log.Info("reusing stored transcript", zap.String("digest_id", res.DigestID.String()))
		s.remember(ctx, res)
		return res, nil
	}

	transcription, err := s.transcribe(ctx, file)
	if err != nil {
		log.Error("transcription failed, returning fallback", zap.Error(err))
		return fallbackResult(file), nil
	}

	res := s.build(ctx, file, transcription)
	s.persist(ctx, res)
	s.remember(ctx, res)

	log.Info("audio processed",
		zap.Int("transcript_length", len(res.Transcript)),
		zap.Int("action_items", len(res.Digest.ActionItems)),
	)
	return res, nil
}

func (s *Service) transcribe(ctx context.Context, file entities.StoredFile) (*entities.Transcription, error) {
	if s.deps.Transcriber == nil || !s.deps.Transcriber.Configured() {
		return nil, ucerrors.ErrProviderNotConfigured
	}
	f, err := s.deps.Store.Open(file.Name)
	if err != nil {
		return nil, fmt.Errorf("open stored audio: %w", err)
	}
	defer f.Close()

	if s.opts.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ProviderTimeout)
		defer cancel()
	}

	t, err := s.deps.Transcriber.Transcribe(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrTranscriptionFailed, err)
	}
	if t == nil || strings.TrimSpace(t.Text) == "" {
		return nil, ucerrors.ErrEmptyTranscript
	}
	return t, nil
}

func (s *Service) build(ctx context.Context, file entities.StoredFile, t *entities.Transcription) *Result {
	summary := strings.TrimSpace(t.Summary)
	if summary == noProviderSummary {
		summary = ""
	}
	if summary == "" && s.deps.Summarizer != nil && s.deps.Summarizer.Configured() {
		generated, err := s.deps.Summarizer.GenerateSummary(ctx, t.Text)
		if err != nil {
			s.logger.Warn("summary backfill failed", zap.String("file", file.Name), zap.Error(err))
		} else {
			summary = generated
			t.Summary = generated
			t.SummaryType = "groq"
		}
	}

	return &Result{
		File:            file,
		Transcript:      t.Text,
		ProviderSummary: summary,
		Transcription:   t,
		Digest: s.deps.Engine.Process(digest.Input{
			Transcript:      t.Text,
			ProviderSummary: summary,
		}),
		ProcessedAt: time.Now().UTC(),
	}
}

// persist writes history and archive copies concurrently. Failures are
// logged; the caller still gets its digest.
func (s *Service) persist(ctx context.Context, res *Result) {
	if s.deps.History == nil && s.deps.Archive == nil {
		return
	}
	record := entities.NewDigestRecord(res.File, res.Transcription, res.Digest)
	id := record.ID

	// A plain group: an archive failure must not cancel the history write.
	var (
		g          errgroup.Group
		historyErr error
	)
	if s.deps.History != nil {
		g.Go(func() error {
			historyErr = s.deps.History.Create(ctx, record)
			return nil
		})
	}
	if s.deps.Archive != nil {
		g.Go(func() error {
			return s.archive(ctx, res, id.String())
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("archive failed", zap.String("digest_id", id.String()), zap.Error(err))
	}

	switch {
	case s.deps.History == nil:
	case historyErr != nil:
		s.logger.Warn("history write failed", zap.String("digest_id", id.String()), zap.Error(historyErr))
	default:
		res.DigestID = &id
	}
}

func (s *Service) archive(ctx context.Context, res *Result, id string) error {
	f, err := s.deps.Store.Open(res.File.Name)
	if err != nil {
		return fmt.Errorf("open stored audio: %w", err)
	}
	defer f.Close()

	if _, err := s.deps.Archive.ArchiveAudio(ctx, res.File, f); err != nil {
		return err
	}
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode digest: %w", err)
	}
	_, err = s.deps.Archive.ArchiveDigest(ctx, id, payload)
	return err
}

func (s *Service) cached(ctx context.Context, file entities.StoredFile) (*Result, bool) {
	if s.deps.Cache == nil || file.ContentHash == "" {
		return nil, false
	}
	raw, ok, err := s.deps.Cache.Get(ctx, cachePrefix+file.ContentHash)
	if err != nil {
		s.logger.Warn("cache lookup failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		s.logger.Warn("discarding unreadable cache entry", zap.Error(err))
		return nil, false
	}
	// The cached entry describes an earlier copy of the same audio.
	res.File = file
	res.Cached = true
	return &res, true
}

// fromHistory rebuilds a result from the newest stored transcript of the
// same audio so the provider is not asked twice.
func (s *Service) fromHistory(ctx context.Context, file entities.StoredFile) (*Result, bool) {
	if s.deps.History == nil || file.ContentHash == "" {
		return nil, false
	}
	rec, err := s.deps.History.FindLatestByHash(ctx, file.ContentHash)
	if err != nil {
		if !errors.Is(err, ucerrors.ErrDigestNotFound) {
			s.logger.Warn("history lookup failed", zap.Error(err))
		}
		return nil, false
	}
	if strings.TrimSpace(rec.Transcript) == "" {
		return nil, false
	}

	res := s.build(ctx, file, &entities.Transcription{
		Text:            rec.Transcript,
		Summary:         rec.ProviderSummary,
		Confidence:      rec.Confidence,
		DurationSeconds: rec.DurationSeconds,
		Model:           rec.ModelUsed,
	})
	id := rec.ID
	res.DigestID = &id
	res.Cached = true
	return res, true
}

func (s *Service) remember(ctx context.Context, res *Result) {
	if s.deps.Cache == nil || res.File.ContentHash == "" {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		s.logger.Warn("cache encode failed", zap.Error(err))
		return
	}
	if err := s.deps.Cache.Set(ctx, cachePrefix+res.File.ContentHash, string(raw), s.opts.ResultTTL); err != nil {
		s.logger.Warn("cache write failed", zap.Error(err))
	}
}

// Digest runs the post-processing engine on text the caller already has.
func (s *Service) Digest(in digest.Input) (entities.Digest, error) {
	if strings.TrimSpace(in.Transcript) == "" && strings.TrimSpace(in.ProviderSummary) == "" {
		return entities.Digest{}, ucerrors.ErrEmptyInput
	}
	return s.deps.Engine.Process(in), nil
}

// ListFiles returns the stored uploads, newest first
func (s *Service) ListFiles() ([]entities.StoredFile, error) {
	return s.deps.Store.List()
}

// GetDigest returns one history entry
func (s *Service) GetDigest(ctx context.Context, id uuid.UUID) (*entities.DigestRecord, error) {
	if s.deps.History == nil {
		return nil, ucerrors.ErrHistoryDisabled
	}
	return s.deps.History.FindByID(ctx, id)
}

// ListDigests returns one page of history, newest first
func (s *Service) ListDigests(ctx context.Context, page, pageSize int, search string) ([]*entities.DigestRecord, int64, error) {
	if s.deps.History == nil {
		return nil, 0, ucerrors.ErrHistoryDisabled
	}
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, ucerrors.ErrInvalidPageRange
	}
	return s.deps.History.List(ctx, repositories.DigestFilters{
		Search: search,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
}

// HistoryEnabled reports whether digests are persisted
func (s *Service) HistoryEnabled() bool {
	return s.deps.History != nil
}
