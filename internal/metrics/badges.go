package metrics

import (
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

// Badge identifies an achievement unlocked by a threshold rule over the Log.
type Badge string

const (
	BadgeHabitStarter        Badge = "Habit Starter"
	BadgeHydrationHero       Badge = "Hydration Hero"
	BadgeFiveDayStreak       Badge = "5-Day Streak"
	BadgeConsistencyChampion Badge = "Consistency Champion"
)

var badgeLabels = map[Badge]string{
	BadgeHabitStarter:        "🎯 Habit Starter (3+ days)",
	BadgeHydrationHero:       "💧 Hydration Hero (10+ glasses on 3 days)",
	BadgeFiveDayStreak:       "🔥 5-Day Streak",
	BadgeConsistencyChampion: "🌟 Consistency Champion (14+ logs)",
}

// Label returns the decorated display text for the badge.
func (b Badge) Label() string {
	if l, ok := badgeLabels[b]; ok {
		return l
	}
	return string(b)
}

// AwardBadges evaluates every badge rule in a fixed order.
func AwardBadges(log models.Log) []Badge {
	return AwardBadgesAsOf(log, Today())
}

// AwardBadgesAsOf is AwardBadges with an explicit today. Hydration Hero
// counts qualifying days over the whole log, not a window.
func AwardBadgesAsOf(log models.Log, today time.Time) []Badge {
	badges := []Badge{}
	if len(log) == 0 {
		return badges
	}

	total := len(log)
	hydrated := 0
	for _, e := range log {
		if e.WaterGlasses >= constants.HydrationHeroMinGlasses {
			hydrated++
		}
	}
	streak := ComputeStreakAsOf(log, today)

	if total >= constants.HabitStarterMinEntries {
		badges = append(badges, BadgeHabitStarter)
	}
	if hydrated >= constants.HydrationHeroMinDays {
		badges = append(badges, BadgeHydrationHero)
	}
	if streak >= constants.StreakBadgeMinDays {
		badges = append(badges, BadgeFiveDayStreak)
	}
	if total >= constants.ConsistencyChampionMinEntries {
		badges = append(badges, BadgeConsistencyChampion)
	}
	return badges
}
