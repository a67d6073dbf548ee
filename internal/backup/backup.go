package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/logger"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
)

var backupTimestampLayouts = []string{"20060102-1504", "20060102-150405"}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int
}

// Manager handles backup operations for the CSV data file
type Manager struct {
	dataPath   string
	backupDir  string
	maxBackups int
	now        func() time.Time
}

// NewManager creates a backup manager keeping backups next to the data file
func NewManager(dataPath string) *Manager {
	return &Manager{
		dataPath:   dataPath,
		backupDir:  filepath.Join(filepath.Dir(dataPath), constants.BackupDirName),
		maxBackups: constants.MaxBackups,
		now:        time.Now,
	}
}

// WithMaxBackups overrides how many backups survive rotation. Values below 1 are ignored.
func (m *Manager) WithMaxBackups(n int) *Manager {
	if n >= 1 {
		m.maxBackups = n
	}
	return m
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) MaxBackups() int {
	return m.maxBackups
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup copies the current data file into the backup directory and
// rotates old backups.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// skipRotation keeps a pre-restore backup from rotating away older ones
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dataPath); errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("data file does not exist: %s", m.dataPath)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if err := copyFile(m.dataPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to back up data file: %w", err)
	}
	logger.Debug("Created backup", "path", backupPath)

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// nextBackupPath names the backup after the current minute, falling back to
// seconds and then a counter when that name is taken.
func (m *Manager) nextBackupPath() (string, error) {
	now := m.now()
	path := m.backupPath(now.Format(backupTimestampLayouts[0]), 0)
	if !exists(path) {
		return path, nil
	}

	timestamp := now.Format(backupTimestampLayouts[1])
	for counter := 0; counter <= 100; counter++ {
		path = m.backupPath(timestamp, counter)
		if !exists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

func (m *Manager) backupPath(timestamp string, counter int) string {
	name := constants.BackupFilePrefix + timestamp
	if counter > 0 {
		name += "-" + strconv.Itoa(counter)
	}
	return filepath.Join(m.backupDir, name+constants.BackupFileSuffix)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListBackups returns all backups, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		timestamp, seq, ok := parseBackupName(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: timestamp,
			Size:      info.Size(),
			seq:       seq,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Timestamp.After(backups[j].Timestamp)
		}
		return backups[i].seq > backups[j].seq
	})
	return backups, nil
}

// parseBackupName extracts the timestamp and collision counter from names
// like pcod-data-20260410-0930.csv or pcod-data-20260410-093015-2.csv.
func parseBackupName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, 0, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)

	seq := 0
	parts := strings.Split(stamp, "-")
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, 0, false
		}
		seq = n
		stamp = parts[0] + "-" + parts[1]
	}

	for _, layout := range backupTimestampLayouts {
		if t, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return t, seq, true
		}
	}
	return time.Time{}, 0, false
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := m.maxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("Rotated backup", "path", backups[i].Path)
	}
	return nil
}

// RestoreBackup replaces the data file with a verified backup. The current
// data file, if any, is backed up first. Returns the path of that backup
// or "" when there was nothing to back up.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := VerifyBackup(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if exists(m.dataPath) {
		var err error
		previous, err = m.createBackup(true)
		if err != nil {
			return "", fmt.Errorf("failed to back up current data before restore: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(m.dataPath), 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	tempPath := m.dataPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.dataPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return "", fmt.Errorf("failed to restore data file: %w", err)
	}

	logger.Info("Restored backup", "from", backupPath, "to", m.dataPath)
	return previous, nil
}

// VerifyBackup checks that path holds a readable data file with the expected columns.
func VerifyBackup(path string) error {
	_, err := storage.ReadLogFile(path)
	return err
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
