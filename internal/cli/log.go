package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/metrics"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

type LogCmd struct {
	Date        string `help:"Entry date (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
	Exercise    string `help:"Exercise done, e.g. '10 squats, 2 min stretch'."`
	Water       int    `help:"Glasses of water (0-20)." default:"0"`
	Notes       string `help:"Free-text notes."`
	Mood        string `help:"Mood." enum:"Good,Okay,Bad" default:"Good"`
	Cramps      string `help:"Cramps." enum:"None,Mild,Severe" default:"None"`
	Bloating    string `help:"Bloating." enum:"No,Yes" default:"No"`
	Energy      int    `help:"Energy level (1=Low, 5=High)." default:"3"`
	Interactive bool   `short:"i" help:"Fill in the entry with an interactive form."`
}

func (c *LogCmd) Run(ctx *Context) error {
	today := ctx.Today()

	if c.Interactive {
		if err := c.fillFromForm(ctx); err != nil {
			return err
		}
	}

	date, err := ParseEntryDate(c.Date, today)
	if err != nil {
		return err
	}
	if err := validateFormBounds(c.Water, c.Energy); err != nil {
		return err
	}

	entry, err := models.NewLogEntry(date, c.Exercise, c.Water, c.Notes, c.Mood, c.Cramps, c.Bloating, c.Energy)
	if err != nil {
		return err
	}

	existed := ctx.Store.LoadAll().IndexOf(date) >= 0
	saved, err := ctx.Store.Upsert(entry)
	if err != nil {
		return fmt.Errorf("could not save entry: %w", err)
	}

	if existed {
		ctx.printf("Updated! ✅ Your entry for %s was replaced.\n", saved.Day())
	} else {
		ctx.println("Saved! ✅ Your entry was recorded.")
	}

	streak := metrics.ComputeStreakAsOf(ctx.Store.LoadAll(), today)
	if metrics.IsStreakMilestone(streak) {
		ctx.printf("🎉 Milestone — %d-day streak! Keep going 💪\n", streak)
	}

	ctx.println()
	ctx.println("Last Saved Entry:")
	printEntryDetail(ctx, saved)

	ctx.println()
	ctx.printf("Coach: %s\n", metrics.DailyTip(saved.WaterGlasses, saved.Exercise))
	return nil
}

func (c *LogCmd) fillFromForm(ctx *Context) error {
	fm := &entryFormModel{
		Date:     c.Date,
		Exercise: c.Exercise,
		Water:    strconv.Itoa(c.Water),
		Notes:    c.Notes,
		Mood:     models.Mood(c.Mood),
		Cramps:   models.Cramps(c.Cramps),
		Bloating: models.Bloating(c.Bloating),
		Energy:   c.Energy,
	}
	if fm.Energy < constants.MinEnergyLevel || fm.Energy > constants.MaxEnergyLevel {
		fm.Energy = constants.DefaultEnergyLevel
	}

	if err := newEntryForm(fm, ctx.Today()).Run(); err != nil {
		return fmt.Errorf("entry form: %w", err)
	}

	water, err := strconv.Atoi(strings.TrimSpace(fm.Water))
	if err != nil {
		return fmt.Errorf("invalid water value %q", fm.Water)
	}
	c.Date = fm.Date
	c.Exercise = fm.Exercise
	c.Water = water
	c.Notes = fm.Notes
	c.Mood = string(fm.Mood)
	c.Cramps = string(fm.Cramps)
	c.Bloating = string(fm.Bloating)
	c.Energy = fm.Energy
	return nil
}

func printEntryDetail(ctx *Context, e models.LogEntry) {
	rows := [][2]string{
		{"date", e.Day()},
		{"exercise", e.Exercise},
		{"water_glasses", strconv.Itoa(e.WaterGlasses)},
		{"mood", string(e.Mood)},
		{"cramps", string(e.Cramps)},
		{"bloating", string(e.Bloating)},
		{"energy_level", strconv.Itoa(e.EnergyLevel)},
		{"notes", e.Notes},
		{"saved_at", formatSavedAt(e)},
	}
	for _, r := range rows {
		ctx.printf("  %-14s %s\n", r[0], r[1])
	}
}

func formatSavedAt(e models.LogEntry) string {
	if e.SavedAt.IsZero() {
		return "-"
	}
	return e.SavedAt.Local().Format(constants.DisplayTimestampFormat)
}
