package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/backup"
	"github.com/Radha57/Pcod-Tracker/internal/config"
	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/logger"
	"github.com/Radha57/Pcod-Tracker/internal/models"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config config.Config

	// Now and Out default to time.Now and os.Stdout
	Now func() time.Time
	Out io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// Today returns the current local date at midnight.
func (c *Context) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return models.NormalizeDate(now())
}

// Backups returns a backup manager for the current data file.
func (c *Context) Backups() *backup.Manager {
	return backup.NewManager(c.Store.GetDataPath()).WithMaxBackups(c.Config.MaxBackups)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, err := os.Stat(c.Store.GetDataPath()); err != nil {
		return
	}
	if _, err := c.Backups().CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseEntryDate accepts YYYY-MM-DD, "today" or "yesterday" (empty means
// today). Dates after today are rejected.
func ParseEntryDate(s string, today time.Time) (time.Time, error) {
	today = models.NormalizeDate(today)

	var date time.Time
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	default:
		d, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(s), time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD, 'today' or 'yesterday')", s)
		}
		date = d
	}

	if date.After(today) {
		return time.Time{}, fmt.Errorf("date %s is in the future", date.Format(constants.DateFormat))
	}
	return date, nil
}

func validateFormBounds(water, energy int) error {
	if water < constants.MinWaterGlasses || water > constants.MaxWaterGlasses {
		return &models.ValidationError{
			Field:  "water_glasses",
			Value:  fmt.Sprint(water),
			Reason: fmt.Sprintf("must be between %d and %d", constants.MinWaterGlasses, constants.MaxWaterGlasses),
		}
	}
	if energy < constants.MinEnergyLevel || energy > constants.MaxEnergyLevel {
		return &models.ValidationError{
			Field:  "energy_level",
			Value:  fmt.Sprint(energy),
			Reason: fmt.Sprintf("must be between %d and %d", constants.MinEnergyLevel, constants.MaxEnergyLevel),
		}
	}
	return nil
}
