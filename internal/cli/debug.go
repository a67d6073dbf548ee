package cli

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
)

type DebugCmd struct {
	DataPath  *DebugDataPathCmd  `cmd:"" help:"Show data file path."`
	DumpEntry *DebugDumpEntryCmd `cmd:"" help:"Dump one entry as JSON."`
}

type DebugDataPathCmd struct{}

func (cmd *DebugDataPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path":       ctx.Store.GetDataPath(),
		"backup_dir": ctx.Backups().GetBackupDir(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	ctx.println(string(jsonBytes))
	return nil
}

type DebugDumpEntryCmd struct {
	Date string `arg:"" help:"Date of the entry to dump (YYYY-MM-DD, 'today' or 'yesterday')."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *Context) error {
	date, err := ParseEntryDate(cmd.Date, ctx.Today())
	if err != nil {
		return err
	}

	log := ctx.Store.LoadAll()
	idx := log.IndexOf(date)
	if idx < 0 {
		return fmt.Errorf("no entry found for date: %s", date.Format(constants.DateFormat))
	}

	jsonBytes, err := json.MarshalIndent(log[idx], "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	ctx.println(string(jsonBytes))
	return nil
}
