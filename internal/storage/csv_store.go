package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/logger"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

// ErrMalformed wraps decode failures of an existing data file.
var ErrMalformed = errors.New("malformed data file")

// CSVStore keeps the Log in a single CSV file. Writes go to a temp file in
// the same directory which is then renamed over the target, so readers only
// ever observe a complete old or a complete new file.
//
// There is no cross-process locking: concurrent writers race and the last
// rename wins.
type CSVStore struct {
	path  string
	cache *SnapshotCache
	log   logger.Fields

	now    func() time.Time
	rename func(oldpath, newpath string) error
}

func NewCSVStore(dataPath string) *CSVStore {
	return &CSVStore{
		path:   dataPath,
		cache:  NewSnapshotCache(),
		log:    logger.With("path", dataPath),
		now:    time.Now,
		rename: os.Rename,
	}
}

// ReadLogFile reads and decodes the data file at path. A missing file is
// reported with fs.ErrNotExist, an unreadable one with ErrStorageUnavailable
// and bad content with ErrMalformed.
func ReadLogFile(path string) (models.Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	log, err := DecodeLog(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return log, nil
}

// ReadLogFileLenient reads the data file at path with DecodeLogLenient.
// Errors are reported as in ReadLogFile; rows that could not be parsed come
// back separately and are not part of the log.
func ReadLogFileLenient(path string) (models.Log, []RowError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	log, skipped, err := DecodeLogLenient(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return log, skipped, nil
}

func (s *CSVStore) EnsureInitialized() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: failed to create data directory: %w", ErrStorageUnavailable, err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := s.writeAtomic(models.Log{}); err != nil {
		return err
	}
	s.cache.Invalidate()
	s.log.Info("Initialized data file")
	return nil
}

func (s *CSVStore) LoadAll() models.Log {
	if log, ok := s.cache.Get(); ok {
		return log
	}

	log, err := ReadLogFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("Could not read data file, using empty log", "error", err)
		}
		log = models.Log{}
	}
	if dups := log.DuplicateDates(); len(dups) > 0 {
		s.log.Warn("Data file has more than one entry for a date, run 'pcod-tracker validate --fix'", "dates", dups)
	}

	s.cache.Put(log)
	return log
}

// readForWrite loads the log for a mutation. Unlike LoadAll it never
// consults the cache and never degrades: a malformed file is an error, so
// existing rows are not overwritten. Only a missing file yields an empty log.
func (s *CSVStore) readForWrite() (models.Log, error) {
	log, err := ReadLogFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Log{}, nil
	}
	return log, err
}

func (s *CSVStore) Upsert(entry models.LogEntry) (models.LogEntry, error) {
	if err := entry.Validate(); err != nil {
		return models.LogEntry{}, err
	}

	var saved models.LogEntry
	err := s.withRetry("save entry", func() error {
		if err := s.EnsureInitialized(); err != nil {
			return err
		}
		log, err := s.readForWrite()
		if err != nil {
			return err
		}

		saved = entry
		saved.Date = models.NormalizeDate(entry.Date)
		saved.SavedAt = s.now()

		// Any hand-edited duplicates for the day go too
		kept := log[:0]
		for _, e := range log {
			if e.Day() != saved.Day() {
				kept = append(kept, e)
			}
		}
		log = append(kept, saved)
		log.SortByDate()

		return s.writeAtomic(log)
	})
	if err != nil {
		return models.LogEntry{}, err
	}

	s.cache.Invalidate()
	s.log.Debug("Saved entry", "date", saved.Day())
	return saved, nil
}

func (s *CSVStore) ClearAll() error {
	err := s.withRetry("clear data", func() error {
		if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
			return fmt.Errorf("%w: failed to create data directory: %w", ErrStorageUnavailable, err)
		}
		return s.writeAtomic(models.Log{})
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate()
	s.log.Info("Cleared all entries")
	return nil
}

// ReplaceAll writes log sorted by date in place of the current contents.
// Every entry must be valid; nothing is written otherwise.
func (s *CSVStore) ReplaceAll(log models.Log) error {
	replacement := log.Clone()
	for i, e := range replacement {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		replacement[i].Date = models.NormalizeDate(e.Date)
	}
	replacement.SortByDate()

	err := s.withRetry("replace data", func() error {
		if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
			return fmt.Errorf("%w: failed to create data directory: %w", ErrStorageUnavailable, err)
		}
		return s.writeAtomic(replacement)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate()
	s.log.Info("Replaced all entries", "count", len(replacement))
	return nil
}

func (s *CSVStore) Export(w io.Writer) error {
	return EncodeLog(w, s.LoadAll())
}

func (s *CSVStore) GetDataPath() string {
	return s.path
}

func (s *CSVStore) Invalidate() {
	s.cache.Invalidate()
}

// withRetry runs fn up to MaxSaveAttempts times, keeping the last failure.
func (s *CSVStore) withRetry(op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= constants.MaxSaveAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		s.log.Warn("Write attempt failed", "op", op, "attempt", attempt, "max", constants.MaxSaveAttempts, "error", err)
	}
	return &PersistenceError{Op: op, Attempts: constants.MaxSaveAttempts, Err: lastErr}
}

// writeAtomic replaces the data file with the serialized log.
func (s *CSVStore) writeAtomic(log models.Log) error {
	var buf bytes.Buffer
	if err := EncodeLog(&buf, log); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), constants.TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	// Remove the temp file if it survived; never mask the original error
	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if _, err := os.Stat(tmpName); err == nil {
			if rmErr := os.Remove(tmpName); rmErr != nil {
				s.log.Warn("Failed to remove temp file", "temp", tmpName, "error", rmErr)
			}
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: failed to write temp file: %w", ErrStorageUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: failed to sync temp file: %w", ErrStorageUnavailable, err)
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %w", ErrStorageUnavailable, err)
	}

	if err := s.rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace data file: %w", ErrStorageUnavailable, err)
	}
	return nil
}
