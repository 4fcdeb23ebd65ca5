// Package jobcontext carries metadata for background runs (janitor sweeps,
// provider calls) through a context and classifies failures for retry.
package jobcontext

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyRunID     KeyContext = "run_id"
	keyRunKind   KeyContext = "run_kind"
	keyTrigger   KeyContext = "run_trigger"
	keyStartTime KeyContext = "run_start_time"
)

// RunMetadata holds metadata for one background run
type RunMetadata struct {
	RunID     uuid.UUID
	Kind      string
	Trigger   string
	StartTime time.Time
}

// Elapsed is the time since the run began
func (m RunMetadata) Elapsed() time.Duration {
	if m.StartTime.IsZero() {
		return 0
	}
	return time.Since(m.StartTime)
}

// RunBegin derives a context tagged with a fresh run ID. A positive timeout
// bounds the run.
func RunBegin(parent context.Context, kind, trigger string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := parent, context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, timeout)
	}
	ctx = context.WithValue(ctx, keyRunID, uuid.New())
	ctx = context.WithValue(ctx, keyRunKind, kind)
	ctx = context.WithValue(ctx, keyTrigger, trigger)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx, cancel
}

// GetRunID extracts the run ID from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyRunID).(uuid.UUID)
	return id, ok
}

// GetRunMetadata extracts all run metadata from context
func GetRunMetadata(ctx context.Context) RunMetadata {
	id, _ := GetRunID(ctx)
	kind, _ := ctx.Value(keyRunKind).(string)
	trigger, _ := ctx.Value(keyTrigger).(string)
	start, _ := ctx.Value(keyStartTime).(time.Time)
	return RunMetadata{RunID: id, Kind: kind, Trigger: trigger, StartTime: start}
}

// IsRetryableError checks if an error should trigger a retry
// Retryable errors include: network errors, timeouts, rate limits, 5xx
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "eof") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") ||
		strings.Contains(errStr, "gateway timeout") {
		return true
	}

	// Temporary failures
	return strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "try again")
}

// IsNonRetryableError checks if an error should NOT trigger a retry
func IsNonRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return true
	}

	errStr := strings.ToLower(err.Error())

	// Client errors (4xx except 429)
	if strings.Contains(errStr, "400") ||
		strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "invalid api key") ||
		strings.Contains(errStr, "bad request") {
		return true
	}

	// Data validation errors
	return strings.Contains(errStr, "validation failed") ||
		strings.Contains(errStr, "malformed") ||
		strings.Contains(errStr, "unsupported") ||
		strings.Contains(errStr, "parse error")
}
