package cli

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Radha57/Pcod-Tracker/internal/metrics"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

const textColumnWidth = 24

type ShowCmd struct {
	Days int `help:"Only show the last N days (0 shows everything)." default:"0"`
}

func (c *ShowCmd) Run(ctx *Context) error {
	log := ctx.Store.LoadAll()
	if len(log) == 0 {
		ctx.println("No entries yet. Log today's entry to begin your streak!")
		return nil
	}

	if c.Days > 0 {
		log = metrics.WindowLastNDaysAsOf(log, c.Days, ctx.Today())
		if len(log) == 0 {
			ctx.printf("No entries in the last %d days.\n", c.Days)
			return nil
		}
	}

	header := []string{"DATE", "WATER", "ENERGY", "MOOD", "CRAMPS", "BLOATING", "EXERCISE", "NOTES"}
	widths := []int{10, 5, 6, 4, 6, 8, textColumnWidth, textColumnWidth}
	rows := make([][]string, 0, len(log))
	for _, e := range log {
		rows = append(rows, []string{
			e.Day(),
			strconv.Itoa(e.WaterGlasses),
			strconv.Itoa(e.EnergyLevel),
			string(e.Mood),
			string(e.Cramps),
			string(e.Bloating),
			truncate(e.Exercise, textColumnWidth),
			truncate(e.Notes, textColumnWidth),
		})
	}
	for _, r := range rows {
		for i, cell := range r[:6] {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	ctx.println(formatRow(header, widths))
	for _, r := range rows {
		ctx.println(formatRow(r, widths))
	}

	ctx.println()
	ctx.printf("Total logged days: %d\n", len(ctx.Store.LoadAll()))
	if last, ok := lastSaved(log); ok {
		ctx.printf("Last saved: %s (at %s)\n", last.Day(), formatSavedAt(last))
	}
	return nil
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			padded[i] = cell
			continue
		}
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

// truncate shortens s to width display cells, accounting for wide runes and emoji
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// lastSaved returns the entry with the latest saved_at timestamp.
func lastSaved(log models.Log) (models.LogEntry, bool) {
	var last models.LogEntry
	found := false
	for _, e := range log {
		if e.SavedAt.IsZero() {
			continue
		}
		if !found || e.SavedAt.After(last.SavedAt) {
			last = e
			found = true
		}
	}
	return last, found
}
