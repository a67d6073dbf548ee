package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

// entryFormModel backs the interactive log form
type entryFormModel struct {
	Date     string
	Exercise string
	Water    string
	Notes    string
	Mood     models.Mood
	Cramps   models.Cramps
	Bloating models.Bloating
	Energy   int
}

func newEntryForm(fm *entryFormModel, today time.Time) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, 'today' or 'yesterday'").
				Value(&fm.Date).
				Validate(func(s string) error {
					_, err := ParseEntryDate(s, today)
					return err
				}),
			huh.NewInput().
				Title("Exercise").
				Placeholder("10 squats, 2 min butterfly stretch, walk 15m").
				Value(&fm.Exercise),
			huh.NewInput().
				Title("Water (glasses)").
				Value(&fm.Water).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("use whole numbers for water")
					}
					if i < constants.MinWaterGlasses || i > constants.MaxWaterGlasses {
						return fmt.Errorf("water must be %d-%d glasses", constants.MinWaterGlasses, constants.MaxWaterGlasses)
					}
					return nil
				}),
			huh.NewText().
				Title("Notes / Mood (optional)").
				Value(&fm.Notes),
		),
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(huh.NewOptions(models.Moods...)...).
				Value(&fm.Mood),
			huh.NewSelect[models.Cramps]().
				Title("Cramps").
				Options(huh.NewOptions(models.CrampLevels...)...).
				Value(&fm.Cramps),
			huh.NewSelect[models.Bloating]().
				Title("Bloating").
				Options(huh.NewOptions(models.BloatingOptions...)...).
				Inline(true).
				Value(&fm.Bloating),
			huh.NewSelect[int]().
				Title("Energy Level (1=Low, 5=High)").
				Options(
					huh.NewOption("1", 1),
					huh.NewOption("2", 2),
					huh.NewOption("3", 3),
					huh.NewOption("4", 4),
					huh.NewOption("5", 5),
				).
				Value(&fm.Energy),
		),
	).WithTheme(huh.ThemeDracula())
}

func newConfirmForm(title, description string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
