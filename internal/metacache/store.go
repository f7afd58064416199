package metacache

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"boxdstats/internal/fileutil"
	"boxdstats/internal/film"
	"boxdstats/internal/logging"
)

// ErrCacheMissing indicates no cache file exists yet.
var ErrCacheMissing = errors.New("metadata cache not found (run `boxdstats fetch` first)")

// ErrCacheBusy indicates another process holds the cache lock.
var ErrCacheBusy = errors.New("metadata cache is locked by another process")

// Store reads and writes the cache file at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// New returns a Store for the cache at path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "metacache"),
	}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) lockPath() string {
	return s.path + ".lock"
}

// Exists reports whether the cache file is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Write replaces the cache with records.
func (s *Store) Write(records []film.Metadata) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write cache header: %w", err)
	}
	for i, record := range records {
		if record.TMDBID <= 0 {
			return fmt.Errorf("record %d (%q) has no tmdb id", i, record.Title)
		}
		row, err := encodeRecord(record)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", record.TMDBID, err)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", record.TMDBID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(s.lockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return ErrCacheBusy
	}
	defer func() { _ = lock.Unlock() }()

	if err := fileutil.WriteAtomic(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}

	s.logger.Info("metadata cache written",
		logging.Int("record_count", len(records)),
		logging.String("path", s.path))
	return nil
}

// Read loads every record from the cache.
func (s *Store) Read() ([]film.Metadata, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCacheMissing, s.path)
		}
		return nil, fmt.Errorf("open cache: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("cache %s is empty", s.path)
		}
		return nil, fmt.Errorf("read cache header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	if _, ok := idx["tmdb_id"]; !ok {
		return nil, fmt.Errorf("cache %s has no tmdb_id column", s.path)
	}

	var records []film.Metadata
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read cache row %d: %w", line, err)
		}
		record, err := decodeRecord(row, idx)
		if err != nil {
			return nil, fmt.Errorf("cache row %d: %w", line, err)
		}
		records = append(records, record)
	}

	s.logger.Debug("metadata cache loaded",
		logging.Int("record_count", len(records)),
		logging.String("path", s.path))
	return records, nil
}

// Remove deletes the cache. A missing cache is not an error.
func (s *Store) Remove() (bool, error) {
	err := os.Remove(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove cache: %w", err)
	}
	_ = os.Remove(s.lockPath())
	s.logger.Info("metadata cache removed", logging.String("path", s.path))
	return true, nil
}
