package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/metrics"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	today := ctx.Today()
	log := ctx.Store.LoadAll()
	summary := metrics.Summarize(log, today)

	ctx.println(titleStyle.Render("Streaks • Badges • Coach"))
	ctx.println()
	ctx.println(stat("Current Streak", fmt.Sprintf("%d day(s)", summary.Streak)))
	ctx.println(stat("Total Logged Days", fmt.Sprint(summary.TotalDays)))

	if len(summary.Badges) > 0 {
		pills := make([]string, 0, len(summary.Badges))
		for _, b := range summary.Badges {
			pills = append(pills, badgeStyle.Render(b.Label()))
		}
		ctx.println()
		ctx.println(labelStyle.Render("Badges earned:"))
		ctx.println(lipgloss.JoinHorizontal(lipgloss.Top, pills...))
	}

	if len(log) == 0 {
		ctx.println()
		ctx.println(mutedStyle.Render("No entries yet. Log today's entry to begin your streak!"))
	} else if summary.WeekEntries > 0 {
		ctx.println()
		ctx.println(titleStyle.Render(fmt.Sprintf("Last %d days", constants.WaterWindowDays)))
		ctx.println(stat("Entries", fmt.Sprint(summary.WeekEntries)))
		ctx.println(stat("Avg water", fmt.Sprintf("%.1f glasses", summary.AvgWater)))
		ctx.println(stat("Avg energy", fmt.Sprintf("%.1f / %d", summary.AvgEnergy, constants.MaxEnergyLevel)))
		ctx.println(stat("Hydration goal met", fmt.Sprintf("%d of %d", summary.HydratedDays, summary.WeekEntries)))
		ctx.println(stat("Mood", moodTally(summary.MoodTally)))
		ctx.println()
		for _, line := range waterBars(log, today) {
			ctx.println(line)
		}
	}

	// Coach advice follows today's entry; without one it nudges from zero
	water, exercise := 0, ""
	if idx := log.IndexOf(today); idx >= 0 {
		water, exercise = log[idx].WaterGlasses, log[idx].Exercise
	}
	ctx.println()
	ctx.println(coachStyle.Render(metrics.DailyTip(water, exercise)))
	return nil
}

func stat(label, value string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-20s", label+":")), valueStyle.Render(value))
}

func moodTally(tally map[models.Mood]int) string {
	parts := make([]string, 0, len(models.Moods))
	for _, m := range models.Moods {
		if n := tally[m]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", m, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// waterBars draws one line per day of the water window, one block per glass.
func waterBars(log models.Log, today time.Time) []string {
	byDay := map[string]int{}
	logged := map[string]bool{}
	for _, v := range metrics.WaterSeries(metrics.WindowLastNDaysAsOf(log, constants.WaterWindowDays, today)) {
		key := v.Date.Format(constants.DateFormat)
		byDay[key] = v.Value
		logged[key] = true
	}

	lines := make([]string, 0, constants.WaterWindowDays)
	start := today.AddDate(0, 0, -(constants.WaterWindowDays - 1))
	for i := 0; i < constants.WaterWindowDays; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(constants.DateFormat)
		label := labelStyle.Render(d.Format("Mon 02"))
		if !logged[key] {
			lines = append(lines, fmt.Sprintf("%s %s", label, mutedStyle.Render("not logged")))
			continue
		}
		bar := waterBarStyle.Render(strings.Repeat("█", byDay[key]))
		lines = append(lines, fmt.Sprintf("%s %s %d", label, bar, byDay[key]))
	}
	return lines
}
