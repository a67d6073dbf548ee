package constants

const (
	// Tip thresholds and messages
	HydrationGoalGlasses = 8
	TipSeparator         = " • "
	TipHydration         = "Try to reach 8–10 glasses of water today."
	TipActivity          = "Even 10 mins of walk or stretching helps."
	TipEncouragement     = "Nice work — consistency beats intensity."
	TipGeneric           = "Keep steady — sleep well and reduce stress."

	// Badge thresholds
	HabitStarterMinEntries        = 3
	HydrationHeroMinGlasses       = 10
	HydrationHeroMinDays          = 3
	StreakBadgeMinDays            = 5
	ConsistencyChampionMinEntries = 14

	Disclaimer = "Disclaimer: This app is for wellness tracking and educational purposes only — not medical advice."

	WellnessSuggestions = `# Daily Wellness Suggestions

- Drink warm water in the morning to improve metabolism.
- Include fiber-rich foods; choose whole grains, lentils, veggies.
- Keep breakfast protein-rich; avoid long fasting windows.
- 10 minutes of walking after meals helps digestion and glucose control.
- Try deep breathing or yoga for stress reduction.
- Limit sugary drinks and ultra-processed snacks.
- Aim for 7–8 hours of sleep to support hormonal balance.
`
)

// StreakMilestones are the streak lengths that get a celebration after a save.
var StreakMilestones = []int{1, 3, 5, 7, 14}

func init() {
	// Runtime validation: the write path always makes at least one attempt
	if MaxSaveAttempts < 1 {
		panic("MaxSaveAttempts must be at least 1")
	}
}
