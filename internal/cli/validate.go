package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Radha57/Pcod-Tracker/internal/storage"
	"github.com/Radha57/Pcod-Tracker/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Merge duplicate dates, drop invalid or unreadable rows and re-sort, after taking a backup."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	ctx.println("Validating data file...")

	log, skipped, err := storage.ReadLogFileLenient(ctx.Store.GetDataPath())
	if errors.Is(err, fs.ErrNotExist) {
		ctx.println("No data file yet. Nothing to validate.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	validator := validation.New()
	result := validator.ValidateFile(log, skipped, ctx.Today())

	ctx.println()
	ctx.println(result.FormatReport())

	if !cmd.Fix || !result.Fixable() {
		return nil
	}

	ctx.PerformAutomaticBackup()
	fixed, actions := validator.Fix(log, result)
	if err := ctx.Store.ReplaceAll(fixed); err != nil {
		return fmt.Errorf("failed to write repaired data: %w", err)
	}

	ctx.println("Applied fixes:")
	for _, a := range actions {
		ctx.printf("- %s\n", a.Action)
	}
	return nil
}
