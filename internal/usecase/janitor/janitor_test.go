package janitor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/internal/infrastructure/storage"
)

func writeAged(t *testing.T, dir, name string, size int, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Repeat("x", size)), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
}

func TestSweep_DeletesOldestUntilTarget(t *testing.T) {
	dir := t.TempDir()
	store, _ := storage.NewLocalStore(dir)
	writeAged(t, dir, "a.mp3", 40, 3*time.Hour)
	writeAged(t, dir, "b.mp3", 40, 2*time.Hour)
	writeAged(t, dir, "c.mp3", 40, time.Hour)

	j := New(store, Options{MaxBytes: 100, TargetRatio: 0.5}, nil)
	report, err := j.Sweep(context.Background(), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalBefore != 120 || report.TotalAfter != 40 {
		t.Fatalf("unexpected totals %+v", report)
	}
	if !slices.Equal(report.Deleted, []string{"a.mp3", "b.mp3"}) {
		t.Fatalf("deleted %v", report.Deleted)
	}
	if _, err := os.Stat(filepath.Join(dir, "c.mp3")); err != nil {
		t.Fatalf("newest file should survive: %v", err)
	}
	if report.RunID == "" {
		t.Fatalf("missing run id")
	}
}

func TestSweep_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	store, _ := storage.NewLocalStore(dir)
	writeAged(t, dir, "a.mp3", 40, time.Hour)

	j := New(store, Options{MaxBytes: 40, TargetRatio: 0.8}, nil)
	report, err := j.Sweep(context.Background(), "test")
	if err != nil || len(report.Deleted) != 0 || report.TotalAfter != 40 {
		t.Fatalf("got %+v %v", report, err)
	}
}

type flakyStore struct {
	files   []entities.StoredFile
	failOn  string
	removed []string
	listErr error
}

func (f *flakyStore) List() ([]entities.StoredFile, error) { return f.files, f.listErr }

func (f *flakyStore) Remove(name string) error {
	if name == f.failOn {
		return errors.New("permission denied")
	}
	f.removed = append(f.removed, name)
	return nil
}

func TestSweep_SkipsFailedDeletes(t *testing.T) {
	now := time.Now()
	store := &flakyStore{
		files: []entities.StoredFile{
			{Name: "y", Size: 60, ModTime: now},
			{Name: "x", Size: 60, ModTime: now.Add(-time.Hour)},
		},
		failOn: "x",
	}
	j := New(store, Options{MaxBytes: 100, TargetRatio: 0.5}, nil)

	report, err := j.Sweep(context.Background(), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(report.Failed, []string{"x"}) || !slices.Equal(report.Deleted, []string{"y"}) {
		t.Fatalf("got %+v", report)
	}
	if report.TotalAfter != 60 {
		t.Fatalf("total after %d", report.TotalAfter)
	}
}

func TestSweep_ListError(t *testing.T) {
	j := New(&flakyStore{listErr: errors.New("boom")}, Options{MaxBytes: 1}, nil)
	if _, err := j.Sweep(context.Background(), "test"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNew_Defaults(t *testing.T) {
	j := New(&flakyStore{}, Options{MaxBytes: 1, TargetRatio: 3}, nil)
	if j.opts.TargetRatio != 0.8 || j.opts.Interval != 30*time.Minute {
		t.Fatalf("defaults not applied: %+v", j.opts)
	}
}

func TestRun_SurvivesFailedSweep(t *testing.T) {
	j := New(&flakyStore{listErr: errors.New("boom")}, Options{MaxBytes: 1, Interval: 10 * time.Millisecond}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := j.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("run returned %v", err)
	}
}

func TestRun_SweepsOnNewUpload(t *testing.T) {
	dir := t.TempDir()
	staging := t.TempDir()
	store, _ := storage.NewLocalStore(dir)
	writeAged(t, dir, "old.mp3", 80, time.Hour)

	j := New(store, Options{MaxBytes: 100, TargetRatio: 0.9, Interval: time.Hour, WatchDir: dir}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	// Give the watcher time to register before the file appears.
	time.Sleep(200 * time.Millisecond)
	src := filepath.Join(staging, "new.mp3")
	if err := os.WriteFile(src, []byte(strings.Repeat("y", 40)), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Rename(src, filepath.Join(dir, "new.mp3")); err != nil {
		t.Skipf("cannot rename across temp dirs: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(filepath.Join(dir, "old.mp3")); os.IsNotExist(err) {
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("old file was not swept after upload")
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("run returned %v", err)
	}
}
