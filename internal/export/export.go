// Package export writes the Log to portable formats.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
)

// Format selects the output encoding of an export.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

var Formats = []Format{FormatCSV, FormatJSON, FormatSQLite}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (use csv, json or sqlite)", s)
}

// Extension returns the file extension used for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatSQLite {
		return "sqlite3"
	}
	return string(f)
}

// DefaultFileName is the file an export lands in when no output is given.
func (f Format) DefaultFileName() string {
	return constants.ExportFileBase + "." + f.Extension()
}

// WriteCSV writes the store's serialized form unchanged.
func WriteCSV(w io.Writer, store storage.Provider) error {
	if err := store.Export(w); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

type jsonEntry struct {
	Date         string `json:"date"`
	Exercise     string `json:"exercise"`
	WaterGlasses int    `json:"water_glasses"`
	Notes        string `json:"notes"`
	Mood         string `json:"mood"`
	Cramps       string `json:"cramps"`
	Bloating     string `json:"bloating"`
	EnergyLevel  int    `json:"energy_level"`
	SavedAt      string `json:"saved_at,omitempty"`
}

func toJSONEntry(e models.LogEntry) jsonEntry {
	je := jsonEntry{
		Date:         e.Day(),
		Exercise:     e.Exercise,
		WaterGlasses: e.WaterGlasses,
		Notes:        e.Notes,
		Mood:         string(e.Mood),
		Cramps:       string(e.Cramps),
		Bloating:     string(e.Bloating),
		EnergyLevel:  e.EnergyLevel,
	}
	if !e.SavedAt.IsZero() {
		je.SavedAt = e.SavedAt.Format(time.RFC3339)
	}
	return je
}

// WriteJSON writes log as an indented JSON array. An empty log is written as [].
func WriteJSON(w io.Writer, log models.Log) error {
	entries := make([]jsonEntry, 0, len(log))
	for _, e := range log {
		entries = append(entries, toJSONEntry(e))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}
