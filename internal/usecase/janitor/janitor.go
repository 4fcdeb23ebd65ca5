// Package janitor keeps the upload directory under a size ceiling by
// deleting the oldest files first.
package janitor

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/pkg/jobcontext"
)

const mb = 1 << 20

// FileStore is the directory being cleaned
type FileStore interface {
	List() ([]entities.StoredFile, error)
	Remove(name string) error
}

// Options configures the cleanup policy
type Options struct {
	MaxBytes    int64
	TargetRatio float64
	Interval    time.Duration
	// WatchDir, when set, triggers a sweep whenever a file appears there.
	WatchDir string
}

// SweepReport describes one sweep
type SweepReport struct {
	RunID       string
	Trigger     string
	TotalBefore int64
	TotalAfter  int64
	Deleted     []string
	Failed      []string
}

// Janitor deletes the oldest stored files once the total exceeds MaxBytes,
// down to MaxBytes*TargetRatio. Sweeps never overlap.
type Janitor struct {
	store  FileStore
	opts   Options
	logger *zap.Logger
	mu     sync.Mutex
}

// New creates a janitor
func New(store FileStore, opts Options, logger *zap.Logger) *Janitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TargetRatio <= 0 || opts.TargetRatio > 1 {
		opts.TargetRatio = 0.8
	}
	if opts.Interval <= 0 {
		opts.Interval = 30 * time.Minute
	}
	return &Janitor{store: store, opts: opts, logger: logger}
}

// Sweep runs one cleanup pass. Only a failure to list the directory is
// returned; individual delete failures are logged and skipped.
func (j *Janitor) Sweep(ctx context.Context, trigger string) (SweepReport, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	ctx, cancel := jobcontext.RunBegin(ctx, "janitor", trigger, 0)
	defer cancel()
	meta := jobcontext.GetRunMetadata(ctx)
	report := SweepReport{RunID: meta.RunID.String(), Trigger: trigger}
	log := j.logger.With(zap.String("run_id", report.RunID), zap.String("trigger", trigger))

	files, err := j.store.List()
	if err != nil {
		log.Error("janitor could not list files", zap.Error(err))
		return report, fmt.Errorf("list files: %w", err)
	}
	for _, f := range files {
		report.TotalBefore += f.Size
	}
	report.TotalAfter = report.TotalBefore

	log.Info("storage usage",
		zap.String("used", formatMB(report.TotalBefore)),
		zap.String("limit", formatMB(j.opts.MaxBytes)),
	)
	if report.TotalBefore <= j.opts.MaxBytes {
		log.Debug("storage under limit, no cleanup needed")
		return report, nil
	}

	sort.SliceStable(files, func(a, b int) bool {
		if files[a].ModTime.Equal(files[b].ModTime) {
			return files[a].Name < files[b].Name
		}
		return files[a].ModTime.Before(files[b].ModTime)
	})

	target := int64(float64(j.opts.MaxBytes) * j.opts.TargetRatio)
	for _, f := range files {
		if report.TotalAfter <= target || ctx.Err() != nil {
			break
		}
		if err := j.store.Remove(f.Name); err != nil {
			log.Warn("failed to delete file", zap.String("file", f.Name), zap.Error(err))
			report.Failed = append(report.Failed, f.Name)
			continue
		}
		report.TotalAfter -= f.Size
		report.Deleted = append(report.Deleted, f.Name)
		log.Info("deleted file", zap.String("file", f.Name), zap.String("size", formatMB(f.Size)))
	}

	log.Info("cleanup complete",
		zap.Int("deleted", len(report.Deleted)),
		zap.Int("failed", len(report.Failed)),
		zap.String("new_size", formatMB(report.TotalAfter)),
		zap.Duration("elapsed", meta.Elapsed()),
	)
	return report, nil
}

// Run sweeps once immediately, then on every interval tick and, when
// WatchDir is set, whenever a new file is created. A failed sweep is logged
// by Sweep and does not stop the loop. It returns when ctx is done.
func (j *Janitor) Run(ctx context.Context) error {
	_, _ = j.Sweep(ctx, "startup")

	ticker := time.NewTicker(j.opts.Interval)
	defer ticker.Stop()

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if j.opts.WatchDir != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer w.Close()
		if err := w.Add(j.opts.WatchDir); err != nil {
			return fmt.Errorf("add watch path: %w", err)
		}
		events, errs = w.Events, w.Errors
		j.logger.Info("janitor watching uploads", zap.String("dir", j.opts.WatchDir))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_, _ = j.Sweep(ctx, "interval")
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Has(fsnotify.Create) {
				_, _ = j.Sweep(ctx, "upload")
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			j.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func formatMB(n int64) string {
	return fmt.Sprintf("%.2fMB", float64(n)/mb)
}
