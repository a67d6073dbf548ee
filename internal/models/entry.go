package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
)

// LogEntry is one calendar day's wellness record. Date is the unique key.
type LogEntry struct {
	Date         time.Time `json:"date"`
	Exercise     string    `json:"exercise"`
	WaterGlasses int       `json:"water_glasses"`
	Notes        string    `json:"notes"`
	Mood         Mood      `json:"mood"`
	Cramps       Cramps    `json:"cramps"`
	Bloating     Bloating  `json:"bloating"`
	EnergyLevel  int       `json:"energy_level"`
	SavedAt      time.Time `json:"saved_at"`
}

// ValidationError reports a field value that cannot be stored.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NewLogEntry builds a validated entry from raw form values.
// Exercise and notes are trimmed and the date is normalized to midnight.
func NewLogEntry(date time.Time, exercise string, waterGlasses int, notes, mood, cramps, bloating string, energyLevel int) (LogEntry, error) {
	m, err := ParseMood(mood)
	if err != nil {
		return LogEntry{}, err
	}
	c, err := ParseCramps(cramps)
	if err != nil {
		return LogEntry{}, err
	}
	b, err := ParseBloating(bloating)
	if err != nil {
		return LogEntry{}, err
	}

	entry := LogEntry{
		Date:         NormalizeDate(date),
		Exercise:     strings.TrimSpace(exercise),
		WaterGlasses: waterGlasses,
		Notes:        strings.TrimSpace(notes),
		Mood:         m,
		Cramps:       c,
		Bloating:     b,
		EnergyLevel:  energyLevel,
	}
	if err := entry.Validate(); err != nil {
		return LogEntry{}, err
	}
	return entry, nil
}

// Validate checks every constrained field of the entry.
func (e LogEntry) Validate() error {
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Value: "", Reason: "is required"}
	}
	if e.WaterGlasses < 0 {
		return &ValidationError{Field: "water_glasses", Value: fmt.Sprint(e.WaterGlasses), Reason: "must not be negative"}
	}
	if e.EnergyLevel < constants.MinEnergyLevel || e.EnergyLevel > constants.MaxEnergyLevel {
		return &ValidationError{
			Field:  "energy_level",
			Value:  fmt.Sprint(e.EnergyLevel),
			Reason: fmt.Sprintf("must be between %d and %d", constants.MinEnergyLevel, constants.MaxEnergyLevel),
		}
	}
	if _, err := ParseMood(string(e.Mood)); err != nil {
		return err
	}
	if _, err := ParseCramps(string(e.Cramps)); err != nil {
		return err
	}
	if _, err := ParseBloating(string(e.Bloating)); err != nil {
		return err
	}
	return nil
}

// Day returns the entry's date key (YYYY-MM-DD).
func (e LogEntry) Day() string {
	return e.Date.Format(constants.DateFormat)
}

// NormalizeDate drops the time-of-day, keeping t's location.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
