package constants

const (
	AppName           = "zenith"
	DefaultConfigPath = "~/.config/zenith/zenith.db"
	Version           = "v0.1.0"

	// TimeFormat is the standard wall-clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "zenith-"
)
