package errors

import "errors"

// Upload errors
var (
	ErrMissingFile       = errors.New("no audio file uploaded")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrFileTooLarge      = errors.New("file too large")
	ErrEmptyFile         = errors.New("uploaded file is empty")
)

// Provider errors
var (
	ErrProviderNotConfigured = errors.New("transcription provider not configured")
	ErrTranscriptionFailed   = errors.New("transcription failed")
	ErrEmptyTranscript       = errors.New("provider returned an empty transcript")
)

// History errors
var (
	ErrDigestNotFound   = errors.New("digest not found")
	ErrHistoryDisabled  = errors.New("digest history is disabled")
	ErrInvalidPageRange = errors.New("invalid page or page size")
)

// Input errors
var (
	ErrEmptyInput = errors.New("transcript or provider summary is required")
)
