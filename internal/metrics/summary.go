package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

// DayCount is the number of entries recorded on one calendar day.
type DayCount struct {
	Date  time.Time
	Count int
}

// DayValue is a single per-day measurement.
type DayValue struct {
	Date  time.Time
	Value int
}

// Summary collects the figures shown on the insights screen.
type Summary struct {
	Streak       int
	TotalDays    int
	Badges       []Badge
	WeekEntries  int
	AvgWater     float64 // over the last WaterWindowDays, 0 without entries
	AvgEnergy    float64
	MoodTally    map[models.Mood]int
	HydratedDays int // entries meeting the hydration goal in the window
}

// DailyCounts groups entries by calendar day, in log order.
func DailyCounts(log models.Log) []DayCount {
	counts := []DayCount{}
	index := map[string]int{}
	for _, e := range log {
		key := e.Day()
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, DayCount{Date: models.NormalizeDate(e.Date), Count: 1})
	}
	return counts
}

// WaterSeries extracts water intake per entry.
func WaterSeries(log models.Log) []DayValue {
	series := make([]DayValue, 0, len(log))
	for _, e := range log {
		series = append(series, DayValue{Date: models.NormalizeDate(e.Date), Value: e.WaterGlasses})
	}
	return series
}

// Summarize computes streak, badges and last-week averages as of today.
func Summarize(log models.Log, today time.Time) Summary {
	week := WindowLastNDaysAsOf(log, constants.WaterWindowDays, today)

	s := Summary{
		Streak:      ComputeStreakAsOf(log, today),
		TotalDays:   len(log),
		Badges:      AwardBadgesAsOf(log, today),
		WeekEntries: len(week),
		MoodTally:   map[models.Mood]int{},
	}
	if len(week) == 0 {
		return s
	}

	water := make([]float64, 0, len(week))
	energy := make([]float64, 0, len(week))
	for _, e := range week {
		water = append(water, float64(e.WaterGlasses))
		energy = append(energy, float64(e.EnergyLevel))
		s.MoodTally[e.Mood]++
		if e.WaterGlasses >= constants.HydrationGoalGlasses {
			s.HydratedDays++
		}
	}
	s.AvgWater = stat.Mean(water, nil)
	s.AvgEnergy = stat.Mean(energy, nil)
	return s
}
