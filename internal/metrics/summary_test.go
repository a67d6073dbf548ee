package metrics

import (
	"math"
	"testing"

	"github.com/Radha57/Pcod-Tracker/internal/models"
)

func TestDailyCounts(t *testing.T) {
	log := logOf(-3, -1, 0)
	log = append(log, entry(0, 2, ""))

	counts := DailyCounts(log)
	if len(counts) != 3 {
		t.Fatalf("expected 3 days, got %d", len(counts))
	}
	if !counts[2].Date.Equal(day(0)) || counts[2].Count != 2 {
		t.Errorf("unexpected count for today: %+v", counts[2])
	}
	if counts[0].Count != 1 {
		t.Errorf("unexpected count for first day: %+v", counts[0])
	}
}

func TestWaterSeries(t *testing.T) {
	log := models.Log{entry(-1, 4, ""), entry(0, 9, "")}
	series := WaterSeries(log)

	if len(series) != 2 || series[0].Value != 4 || series[1].Value != 9 {
		t.Errorf("unexpected series: %+v", series)
	}
	if len(WaterSeries(nil)) != 0 {
		t.Error("expected empty series for nil log")
	}
}

func TestSummarize(t *testing.T) {
	log := models.Log{
		entry(-20, 12, "old"),
		entry(-2, 4, ""),
		entry(-1, 8, ""),
		entry(0, 12, "10 squats"),
	}
	log[1].Mood = models.MoodBad
	log[3].EnergyLevel = 5

	s := Summarize(log, refToday)

	if s.Streak != 3 {
		t.Errorf("Streak = %d, want 3", s.Streak)
	}
	if s.TotalDays != 4 {
		t.Errorf("TotalDays = %d, want 4", s.TotalDays)
	}
	if s.WeekEntries != 3 {
		t.Errorf("WeekEntries = %d, want 3", s.WeekEntries)
	}
	if math.Abs(s.AvgWater-8) > 1e-9 {
		t.Errorf("AvgWater = %v, want 8", s.AvgWater)
	}
	if math.Abs(s.AvgEnergy-11.0/3.0) > 1e-9 {
		t.Errorf("AvgEnergy = %v, want %v", s.AvgEnergy, 11.0/3.0)
	}
	if s.HydratedDays != 2 {
		t.Errorf("HydratedDays = %d, want 2", s.HydratedDays)
	}
	if s.MoodTally[models.MoodBad] != 1 || s.MoodTally[models.MoodGood] != 2 {
		t.Errorf("unexpected mood tally: %v", s.MoodTally)
	}
	if len(s.Badges) != 1 || s.Badges[0] != BadgeHabitStarter {
		t.Errorf("unexpected badges: %v", s.Badges)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(models.Log{}, refToday)
	if s.Streak != 0 || s.TotalDays != 0 || s.AvgWater != 0 || len(s.Badges) != 0 {
		t.Errorf("unexpected summary for empty log: %+v", s)
	}
}
