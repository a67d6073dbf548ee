package export

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/models"

	_ "modernc.org/sqlite"
)

const entriesSchema = `
CREATE TABLE entries (
	date          TEXT PRIMARY KEY,
	exercise      TEXT NOT NULL DEFAULT '',
	water_glasses INTEGER NOT NULL CHECK (water_glasses >= 0),
	notes         TEXT NOT NULL DEFAULT '',
	mood          TEXT NOT NULL,
	cramps        TEXT NOT NULL,
	bloating      TEXT NOT NULL,
	energy_level  INTEGER NOT NULL CHECK (energy_level BETWEEN 1 AND 5),
	saved_at      TEXT
)`

// ErrDuplicateDate is returned when the log holds more than one entry for a
// day, which the entries table cannot store.
var ErrDuplicateDate = errors.New("more than one entry for a date")

// WriteSQLite writes log into a fresh SQLite database at path, replacing
// any existing file. All rows go in one transaction.
func WriteSQLite(path string, log models.Log) error {
	if dups := log.DuplicateDates(); len(dups) > 0 {
		return fmt.Errorf("%w: %s; run 'pcod-tracker validate --fix' first", ErrDuplicateDate, strings.Join(dups, ", "))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(entriesSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO entries
		(date, exercise, water_glasses, notes, mood, cramps, bloating, energy_level, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range log {
		var savedAt sql.NullString
		if !e.SavedAt.IsZero() {
			savedAt = sql.NullString{String: e.SavedAt.Format(time.RFC3339Nano), Valid: true}
		}
		if _, err := stmt.Exec(e.Day(), e.Exercise, e.WaterGlasses, e.Notes,
			string(e.Mood), string(e.Cramps), string(e.Bloating), e.EnergyLevel, savedAt); err != nil {
			return fmt.Errorf("insert entry %s: %w", e.Day(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
