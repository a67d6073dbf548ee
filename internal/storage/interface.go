package storage

import (
	"io"

	"github.com/Radha57/Pcod-Tracker/internal/models"
)

type Provider interface {
	// Lifecycle
	EnsureInitialized() error

	// Entries
	// LoadAll never fails: a missing, unreadable or malformed data file
	// yields an empty Log.
	LoadAll() models.Log
	// Upsert inserts or replaces the entry for entry.Date and returns the
	// entry as persisted (normalized date, SavedAt stamped).
	Upsert(entry models.LogEntry) (models.LogEntry, error)
	ClearAll() error
	// ReplaceAll overwrites the whole Log, e.g. after a repair.
	ReplaceAll(log models.Log) error

	// Export writes the serialized form of LoadAll to w.
	Export(w io.Writer) error

	// Utils
	GetDataPath() string
	// Invalidate drops the cached snapshot after the data file was replaced
	// out of band, e.g. by a backup restore.
	Invalidate()
}
