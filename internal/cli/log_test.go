package cli

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	apperrors "github.com/Radha57/Pcod-Tracker/internal/errors"
	"github.com/Radha57/Pcod-Tracker/internal/models"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
)

func defaultLogCmd() *LogCmd {
	return &LogCmd{
		Date:     "today",
		Mood:     "Good",
		Cramps:   "None",
		Bloating: "No",
		Energy:   3,
	}
}

func TestLogCmd_SavesEntry(t *testing.T) {
	ctx, out, _ := setupTestContext(t)

	cmd := defaultLogCmd()
	cmd.Exercise = "10 squats, 2 min stretch"
	cmd.Water = 9
	cmd.Notes = "  felt fine  "

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	log := ctx.Store.LoadAll()
	if len(log) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(log))
	}
	e := log[0]
	if e.Day() != "2026-04-10" || e.WaterGlasses != 9 || e.Notes != "felt fine" {
		t.Errorf("unexpected entry saved: %+v", e)
	}
	if e.SavedAt.IsZero() {
		t.Error("saved_at should be stamped")
	}

	output := out.String()
	for _, want := range []string{
		"Saved! ✅",
		"Milestone — 1-day streak!",
		"Last Saved Entry:",
		"water_glasses  9",
		"Coach: " + constants.TipEncouragement,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestLogCmd_UpdateReplacesEntry(t *testing.T) {
	ctx, out, _ := setupTestContext(t)
	seedEntries(t, ctx, 2, 0)

	cmd := defaultLogCmd()
	cmd.Water = 10
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	log := ctx.Store.LoadAll()
	if len(log) != 1 {
		t.Fatalf("expected 1 entry after update, got %d", len(log))
	}
	if log[0].WaterGlasses != 10 {
		t.Errorf("water = %d, want 10", log[0].WaterGlasses)
	}
	if !strings.Contains(out.String(), "Updated! ✅ Your entry for 2026-04-10 was replaced.") {
		t.Errorf("expected update message, got:\n%s", out.String())
	}
}

func TestLogCmd_CoachTipFollowsEntry(t *testing.T) {
	ctx, out, _ := setupTestContext(t)

	cmd := defaultLogCmd()
	cmd.Water = 3
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	want := "Coach: " + constants.TipHydration + constants.TipSeparator + constants.TipActivity
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in output:\n%s", want, out.String())
	}
}

func TestLogCmd_MilestoneOnlyOnThresholds(t *testing.T) {
	ctx, out, _ := setupTestContext(t)
	// Yesterday logged: today's save makes a 2-day streak
	seedEntries(t, ctx, 8, -1)

	if err := defaultLogCmd().Run(ctx); err != nil {
		t.Fatalf("log command failed: %v", err)
	}
	if strings.Contains(out.String(), "Milestone") {
		t.Errorf("2-day streak should not celebrate:\n%s", out.String())
	}

	out.Reset()
	seedEntries(t, ctx, 8, -2)
	cmd := defaultLogCmd()
	cmd.Water = 8
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log command failed: %v", err)
	}
	if !strings.Contains(out.String(), "Milestone — 3-day streak!") {
		t.Errorf("3-day streak should celebrate:\n%s", out.String())
	}
}

func TestLogCmd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LogCmd)
	}{
		{"future date", func(c *LogCmd) { c.Date = "2026-04-11" }},
		{"invalid date", func(c *LogCmd) { c.Date = "yesterday-ish" }},
		{"water above form max", func(c *LogCmd) { c.Water = 21 }},
		{"negative water", func(c *LogCmd) { c.Water = -2 }},
		{"energy out of range", func(c *LogCmd) { c.Energy = 7 }},
		{"unknown mood", func(c *LogCmd) { c.Mood = "Great" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := setupTestContext(t)
			cmd := defaultLogCmd()
			tt.modify(cmd)

			if err := cmd.Run(ctx); err == nil {
				t.Fatal("expected an error")
			}
			if n := len(ctx.Store.LoadAll()); n != 0 {
				t.Errorf("nothing should be saved, got %d entries", n)
			}
		})
	}
}

func TestLogCmd_BoundsErrorIsValidationError(t *testing.T) {
	ctx, _, _ := setupTestContext(t)
	cmd := defaultLogCmd()
	cmd.Water = 25

	err := cmd.Run(ctx)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "water_glasses" {
		t.Errorf("field = %q, want water_glasses", verr.Field)
	}
}

func TestLogCmd_KeepsHistoryWhenFileHasBadRow(t *testing.T) {
	ctx, _, dataPath := setupTestContext(t)
	content := "date,exercise,water_glasses,notes,mood,cramps,bloating,energy_level,saved_at\n" +
		"2026-04-07,walk,8,,Good,None,No,4,2026-04-07T20:00:00Z\n" +
		"2026-04-08,yoga,6,,Okay,Mild,No,3,2026-04-08T20:00:00Z\n" +
		"2026-04-09,run,5,,good,None,No,3,2026-04-09T20:00:00Z\n"
	writeDataFile(t, dataPath, content)

	err := defaultLogCmd().Run(ctx)
	if !errors.Is(err, storage.ErrMalformed) {
		t.Fatalf("expected the save to fail on the malformed file, got %v", err)
	}
	if hint := apperrors.Hint(err); !strings.Contains(hint, "validate --fix") {
		t.Errorf("hint = %q, want a pointer to validate --fix", hint)
	}

	data, readErr := os.ReadFile(dataPath)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != content {
		t.Errorf("data file rewritten:\n%s", data)
	}
}
