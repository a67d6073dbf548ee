// Package metrics derives streaks, badges, tips and summary statistics from a
// Log snapshot. Every function is pure: no storage access and no mutation of
// its input.
package metrics

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

var digitRun = regexp.MustCompile(`\d+`)

// Today returns the current local date at midnight.
func Today() time.Time {
	return models.NormalizeDate(time.Now())
}

// WindowLastNDays returns the entries dated on or after today-(n-1).
func WindowLastNDays(log models.Log, n int) models.Log {
	return WindowLastNDaysAsOf(log, n, Today())
}

func WindowLastNDaysAsOf(log models.Log, n int, today time.Time) models.Log {
	out := models.Log{}
	if n <= 0 {
		return out
	}
	cutoff := models.NormalizeDate(today).AddDate(0, 0, -(n - 1))
	for _, e := range log {
		if !models.NormalizeDate(e.Date).Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// ComputeStreak counts consecutive logged days walking back from today.
// A day without an entry today means a streak of zero.
func ComputeStreak(log models.Log) int {
	return ComputeStreakAsOf(log, Today())
}

func ComputeStreakAsOf(log models.Log, today time.Time) int {
	if len(log) == 0 {
		return 0
	}
	days := log.Dates()
	streak := 0
	for cur := models.NormalizeDate(today); ; cur = cur.AddDate(0, 0, -1) {
		if _, ok := days[cur.Format(constants.DateFormat)]; !ok {
			return streak
		}
		streak++
	}
}

// ParseReps sums every run of ASCII digits in text, e.g. "10 squats, 2 min stretch" is 12.
// Runs too large for an int are ignored and the sum saturates at math.MaxInt.
func ParseReps(text string) int {
	total := 0
	for _, run := range digitRun.FindAllString(text, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		if n > math.MaxInt-total {
			return math.MaxInt
		}
		total += n
	}
	return total
}

// DailyTip builds rule-based advice from the day's water and exercise.
func DailyTip(waterGlasses int, exerciseText string) string {
	var tips []string
	if waterGlasses < constants.HydrationGoalGlasses {
		tips = append(tips, constants.TipHydration)
	}
	if ParseReps(exerciseText) == 0 {
		tips = append(tips, constants.TipActivity)
	} else {
		tips = append(tips, constants.TipEncouragement)
	}
	// Unreachable while the exercise rule always contributes a message
	if len(tips) == 0 {
		tips = append(tips, constants.TipGeneric)
	}
	return strings.Join(tips, constants.TipSeparator)
}

// IsStreakMilestone reports whether a streak deserves a celebration.
func IsStreakMilestone(streak int) bool {
	for _, m := range constants.StreakMilestones {
		if streak == m {
			return true
		}
	}
	return false
}
