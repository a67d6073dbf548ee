package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Radha57/Pcod-Tracker/internal/cli"
	"github.com/Radha57/Pcod-Tracker/internal/config"
	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/errors"
	"github.com/Radha57/Pcod-Tracker/internal/logger"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/pcod-tracker/config.yaml" env:"PCOD_TRACKER_CONFIG"`
	Data    string `help:"Data file path (overrides data_path from the config file)." type:"path" env:"PCOD_TRACKER_DATA"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Create the data file if it does not exist."`
	Log       cli.LogCmd       `cmd:"" help:"Save or update the entry for a day."`
	Show      cli.ShowCmd      `cmd:"" help:"Show logged entries."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show streak, badges and coach tips." default:"1"`
	Tips      cli.TipsCmd      `cmd:"" help:"Show daily wellness suggestions."`
	Dashboard cli.DashboardCmd `cmd:"" help:"Browse entries and insights in an interactive dashboard."`
	Export    cli.ExportCmd    `cmd:"" help:"Export all entries as CSV, JSON or SQLite."`
	Chart     cli.ChartCmd     `cmd:"" help:"Draw the water or log-count chart."`
	Clear     cli.ClearCmd     `cmd:"" help:"Remove every entry (a backup is taken first)."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Check the data file for duplicate, unsorted or future entries."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Debug     cli.DebugCmd     `cmd:"" help:"Debug commands for troubleshooting."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data file backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description(constants.AppTitle),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Data != "" {
		cfg.DataPath = CLI.Data
	}
	cfg.Debug = cfg.Debug || CLI.Verbose

	if err := logger.Init(logger.Config{
		Debug:  cfg.Debug,
		LogDir: config.LogDir(CLI.Config),
	}); err != nil {
		// Logging is best effort; commands still run without a log file
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store := storage.NewCSVStore(cfg.DataPath)
	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
		Now:    time.Now,
		Out:    os.Stdout,
	}

	// init and doctor inspect the data file themselves
	command := strings.Fields(ctx.Command())
	if len(command) > 0 && command[0] != "init" && command[0] != "doctor" {
		if err := store.EnsureInitialized(); err != nil {
			logger.Warn("Could not initialize data file", "path", cfg.DataPath, "error", err)
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}
