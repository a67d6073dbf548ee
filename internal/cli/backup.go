package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	backupPath, err := ctx.Backups().CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := ctx.Backups()
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.println("No backups found.")
		ctx.printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	ctx.printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), mgr.MaxBackups())
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format(constants.DisplayTimestampFormat)
		ctx.printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	ctx.printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := ctx.Backups()

	// Bare filenames are looked up in the backup directory first
	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		possiblePath := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err == nil {
			backupPath = possiblePath
		}
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if !c.Yes {
		confirmed := false
		form := newConfirmForm(
			fmt.Sprintf("Restore from %s?", filepath.Base(backupPath)),
			"This replaces your current data. A backup of it is created before restoring.",
			&confirmed,
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	previous, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	ctx.Store.Invalidate()

	if previous != "" {
		ctx.printf("Created backup of current data: %s\n", filepath.Base(previous))
	}
	ctx.println("✓ Data restored successfully!")
	return nil
}
