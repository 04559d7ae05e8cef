// Package backup manages timestamped copies of the state file, with
// rotation at a fixed retention count.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/zenith/internal/constants"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a single state file. It works
// on whole files, so it serves the JSON and SQLite stores alike as long
// as the store is not mid-write.
type Manager struct {
	statePath string
	backupDir string
	suffix    string
}

// NewManager creates a backup manager for the given state file. Backups
// live in a sibling directory and keep the state file's extension.
func NewManager(statePath string) *Manager {
	configDir := filepath.Dir(statePath)
	suffix := filepath.Ext(statePath)
	if suffix == "" {
		suffix = ".bak"
	}
	return &Manager{
		statePath: statePath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
		suffix:    suffix,
	}
}

// GetBackupDir returns the backup directory path.
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup copies the state file into the backup directory and
// rotates old backups past the retention limit.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup copies the state file; skipRotation prevents recursive
// rotation during restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.statePath); os.IsNotExist(err) {
		return "", fmt.Errorf("state file does not exist: %s", m.statePath)
	}

	backupPath, err := m.uniqueBackupPath()
	if err != nil {
		return "", err
	}

	if err := copyFile(m.statePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy state file: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// A failed rotation should not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// uniqueBackupPath generates a timestamped filename, adding seconds and
// then a counter when the minute-precision name already exists.
func (m *Manager) uniqueBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, m.suffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		stamp = trimCounter(stamp)

		timestamp, err := time.Parse("20060102-1504", stamp)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", stamp)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// trimCounter strips a trailing "-N" collision counter from a backup
// timestamp. Counters are all digits and never 4 or 6 characters, which
// would be a time component.
func trimCounter(stamp string) string {
	parts := strings.Split(stamp, "-")
	if len(parts) <= 2 {
		return stamp
	}
	last := parts[len(parts)-1]
	if len(last) == 4 || len(last) == 6 {
		return stamp
	}
	for _, c := range last {
		if c < '0' || c > '9' {
			return stamp
		}
	}
	return strings.Join(parts[:len(parts)-1], "-")
}

// rotateBackups removes backups beyond the retention limit.
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup replaces the state file with the given backup, keeping
// a backup of the current state first.
func (m *Manager) RestoreBackup(backupPath string) error {
	info, err := os.Stat(backupPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err != nil {
		return fmt.Errorf("failed to access backup file: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("backup file is empty: %s", backupPath)
	}

	if _, err := os.Stat(m.statePath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to backup current state before restore: %w", err)
		}
		fmt.Printf("Created backup of current state: %s\n", filepath.Base(currentBackup))
	}

	// Copy to a temp file and rename so the swap is atomic.
	tempPath := m.statePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.statePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore state file: %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
