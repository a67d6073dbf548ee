package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Radha57/Pcod-Tracker/internal/export"
)

type ExportCmd struct {
	Format string `help:"Output format." enum:"csv,json,sqlite" default:"csv"`
	Output string `short:"o" help:"Output file ('-' writes csv/json to stdout). Defaults to pcod_data_export.<ext>."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	output := c.Output
	if output == "" {
		output = format.DefaultFileName()
	}

	log := ctx.Store.LoadAll()

	if format == export.FormatSQLite {
		if output == "-" {
			return fmt.Errorf("sqlite export needs a file path")
		}
		if err := export.WriteSQLite(output, log); err != nil {
			return err
		}
		ctx.printf("✓ Exported %d entries to %s\n", len(log), output)
		return nil
	}

	write := func(w io.Writer) error {
		if format == export.FormatJSON {
			return export.WriteJSON(w, log)
		}
		return export.WriteCSV(w, ctx.Store)
	}

	if output == "-" {
		return write(ctx.out())
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	ctx.printf("✓ Exported %d entries to %s\n", len(log), output)
	return nil
}
