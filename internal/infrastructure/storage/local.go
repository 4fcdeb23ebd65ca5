package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

// ErrTooLarge is returned by Save when the stream exceeds the byte limit
var ErrTooLarge = errors.New("file exceeds size limit")

var generatedName = regexp.MustCompile(`^audio-\d+-\d+`)

// LocalStore keeps uploaded audio in a single flat directory.
type LocalStore struct {
	dir string
	now func() time.Time
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, now: time.Now}, nil
}

// Save writes r under a generated unique name that keeps the extension of
// originalName. At most limit bytes are accepted when limit is positive.
func (s *LocalStore) Save(originalName string, r io.Reader, limit int64) (entities.StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("audio-%d-%d%s", s.now().UnixMilli(), rand.Int64N(1e9), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return entities.StoredFile{}, fmt.Errorf("failed to create %s: %w", name, err)
	}

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}
	hash := sha256.New()
	n, err := io.Copy(io.MultiWriter(f, hash), src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && limit > 0 && n > limit {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		if errors.Is(err, ErrTooLarge) {
			return entities.StoredFile{}, err
		}
		return entities.StoredFile{}, fmt.Errorf("failed to write %s: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return entities.StoredFile{}, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return entities.StoredFile{
		Name:         name,
		OriginalName: originalName,
		Path:         path,
		Size:         n,
		ContentHash:  hex.EncodeToString(hash.Sum(nil)),
		ModTime:      info.ModTime(),
	}, nil
}

// List returns the regular files in the directory, newest first. The
// directory is created when missing.
func (s *LocalStore) List() ([]entities.StoredFile, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload dir: %w", err)
	}

	files := make([]entities.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, entities.StoredFile{
			Name:         entry.Name(),
			OriginalName: DisplayName(entry.Name()),
			Path:         filepath.Join(s.dir, entry.Name()),
			Size:         info.Size(),
			ModTime:      info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ModTime.After(files[j].ModTime) })
	return files, nil
}

// Open opens a stored file for reading
func (s *LocalStore) Open(name string) (*os.File, error) {
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid file name %q", name)
	}
	return os.Open(filepath.Join(s.dir, name))
}

// Remove deletes a stored file
func (s *LocalStore) Remove(name string) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// DisplayName replaces the generated "audio-<ms>-<n>" prefix with
// "uploaded-file".
func DisplayName(name string) string {
	return generatedName.ReplaceAllString(name, "uploaded-file")
}
