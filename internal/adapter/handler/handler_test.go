package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/summaro/errors"
	audiodto "github.com/johnquangdev/summaro/internal/adapter/dto/audio"
	digestdto "github.com/johnquangdev/summaro/internal/adapter/dto/digest"
	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/internal/infrastructure/storage"
	"github.com/johnquangdev/summaro/internal/usecase/audio"
	"github.com/johnquangdev/summaro/internal/usecase/digest"
	"github.com/johnquangdev/summaro/pkg/config"
	pkgvalidator "github.com/johnquangdev/summaro/pkg/validator"
)

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Configured() bool { return true }

func (s *stubTranscriber) Transcribe(context.Context, io.ReadSeeker) (*entities.Transcription, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entities.Transcription{
		Text:       s.text,
		Summary:    "Sarah will review the budget before Friday.",
		Confidence: 0.95,
		Model:      "assemblyai",
	}, nil
}

type envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Info    string          `json:"info"`
}

func newTestServer(t *testing.T, tr *stubTranscriber) *echo.Echo {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := audio.NewService(audio.Deps{
		Store:       store,
		Transcriber: tr,
		Engine:      digest.NewEngine(),
	}, audio.Options{
		MaxBytes:          1 << 20,
		AllowedExtensions: []string{".mp3", ".wav"},
	}, nil)

	cfg := &config.Config{}
	cfg.Upload.Dir = dir
	cfg.Server.Environment = "test"

	e := echo.New()
	e.Validator = pkgvalidator.New()
	NewRouter(cfg, NewAudioHandler(svc, nil), NewDigestHandler(svc, nil), false).Setup(e)
	return e
}

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if field != "" {
		part, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(content)
	} else {
		w.WriteField("note", "no file here")
	}
	w.Close()
	return body, w.FormDataContentType()
}

func do(e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var env envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, &stubTranscriber{})
	for _, path := range []string{"/health", "/api/health"} {
		rec, _ := do(e, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"healthy"`) {
			t.Fatalf("%s: %d %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestUploadAudio_Rejections(t *testing.T) {
	e := newTestServer(t, &stubTranscriber{})
	tests := []struct {
		name    string
		field   string
		file    string
		content []byte
		wantMsg string
	}{
		{"missing file", "", "", nil, "No audio file uploaded"},
		{"wrong extension", "audio", "notes.txt", []byte("hello"), "Allowed: .mp3, .wav"},
		{"too large", "audio", "big.mp3", bytes.Repeat([]byte("x"), 1<<20+1), "File too large. Maximum size is 1MB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, tt.field, tt.file, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/api/upload-audio", body)
			req.Header.Set(echo.HeaderContentType, ct)

			rec, env := do(e, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(env.Message, tt.wantMsg) {
				t.Fatalf("message %q does not contain %q", env.Message, tt.wantMsg)
			}
		})
	}
}

func TestUploadAudio_Success(t *testing.T) {
	e := newTestServer(t, &stubTranscriber{
		text: "Speaker 0: Sarah, you're responsible for the budget review this week. Speaker 1: Got it.",
	})
	body, ct := multipartBody(t, "audio", "sync.mp3", []byte("audio bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-audio", body)
	req.Header.Set(echo.HeaderContentType, ct)

	rec, env := do(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp audiodto.UploadResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.File.OriginalName != "sync.mp3" || resp.Stats == nil || resp.Provider == nil {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(resp.ActionItems) == 0 || resp.FormattedOutput.ActionItems == "" {
		t.Fatalf("missing action items %+v", resp)
	}
	if len(resp.FormattedOutput.Breakdown) != 1 {
		t.Fatalf("expected one breakdown row, got %+v", resp.FormattedOutput.Breakdown)
	}

	rec, env = do(e, httptest.NewRequest(http.MethodGet, "/api/files", nil))
	var files audiodto.FileListResponse
	json.Unmarshal(env.Data, &files)
	if rec.Code != http.StatusOK || files.Count != 1 || !strings.HasPrefix(files.Files[0].URL, "/uploads/audio-") {
		t.Fatalf("unexpected listing %d %+v", rec.Code, files)
	}
}

func TestUploadAudio_Fallback(t *testing.T) {
	e := newTestServer(t, &stubTranscriber{err: errors.New("provider down")})
	body, ct := multipartBody(t, "audio", "sync.wav", []byte("audio bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-audio", body)
	req.Header.Set(echo.HeaderContentType, ct)

	rec, env := do(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp audiodto.UploadResponse
	json.Unmarshal(env.Data, &resp)
	if resp.Message != audio.FallbackMessage || resp.Transcript != audio.FallbackTranscript {
		t.Fatalf("unexpected fallback %+v", resp)
	}
	if !strings.HasPrefix(resp.FormattedOutput.ActionItems, "1. ") || len(resp.ActionItems) != 3 {
		t.Fatalf("unexpected fallback actions %+v", resp)
	}
	if resp.Note == "" || resp.Stats != nil {
		t.Fatalf("fallback should carry a note and no stats")
	}
}

func TestCreateDigest(t *testing.T) {
	e := newTestServer(t, &stubTranscriber{})

	payload := `{"transcript":"John, your job is to fix the bug. Sarah, you're responsible for the dashboard design."}`
	req := httptest.NewRequest(http.MethodPost, "/v1/digest", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec, env := do(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp digestdto.DigestResponse
	json.Unmarshal(env.Data, &resp)
	if len(resp.ActionItems) < 2 || resp.ActionItems[0].Display != "John: Fix the bug." {
		t.Fatalf("unexpected items %+v", resp.ActionItems)
	}
	if !strings.HasPrefix(resp.FormattedOutput, "1. John: Fix the bug.") {
		t.Fatalf("unexpected formatted output %q", resp.FormattedOutput)
	}
}

func TestCreateDigest_Validation(t *testing.T) {
	e := newTestServer(t, &stubTranscriber{})
	tests := map[string]string{
		"empty":     `{}`,
		"bad count": `{"transcript":"hello there everyone","target_sentence_count":11}`,
		"malformed": `{"transcript":`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/digest", strings.NewReader(payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec, _ := do(e, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDigestHistory_Disabled(t *testing.T) {
	e := newTestServer(t, &stubTranscriber{})
	for _, path := range []string{"/v1/digests", "/v1/digests/7d4c1f0e-2b7a-4a51-9a57-6d5f6f1b3c11"} {
		rec, _ := do(e, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotImplemented {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
		info    string
	}{
		{"plain error", errors.New("disk unavailable"), http.StatusInternalServerError, "1000", "Internal server error", "disk unavailable"},
		{"wrapped app error", fmt.Errorf("lookup: %w", apperrors.ErrNotFound("Digest")), http.StatusNotFound, "1002", "Digest not found", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			if err := HandleError(zap.NewNop(), c, tc.err); err != nil {
				t.Fatalf("HandleError: %v", err)
			}
			if rec.Code != tc.status {
				t.Fatalf("status %d, want %d", rec.Code, tc.status)
			}
			var env envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if string(env.Code) != tc.code || env.Message != tc.message || env.Info != tc.info {
				t.Fatalf("unexpected body %s", rec.Body.String())
			}
		})
	}
}
