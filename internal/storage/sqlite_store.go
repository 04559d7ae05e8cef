package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/zenith/internal/constants"
	"github.com/julianstephens/zenith/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS time_blocks (
	id            TEXT PRIMARY KEY,
	day           TEXT NOT NULL,
	start_time    TEXT NOT NULL,
	end_time      TEXT NOT NULL,
	type          TEXT NOT NULL,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	activity_type TEXT NOT NULL DEFAULT '',
	color         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS activities (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	type                 TEXT NOT NULL,
	duration             REAL NOT NULL DEFAULT 0,
	priority             TEXT NOT NULL,
	description          TEXT NOT NULL DEFAULT '',
	preferred_start_hour INTEGER,
	preferred_end_hour   INTEGER,
	preferred_days       TEXT NOT NULL DEFAULT '',
	time_block_id        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteStore persists the schedule snapshot in a SQLite database.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings when none are present.
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM settings").Scan(&count); err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if count == 0 {
		if err := s.saveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'zenith init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Tolerate databases created before a schema change.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) State() (models.ScheduleState, error) {
	if s.db == nil {
		return models.ScheduleState{}, fmt.Errorf("storage not loaded")
	}

	state := models.ScheduleState{}

	blocks, err := s.loadTimeBlocks()
	if err != nil {
		return models.ScheduleState{}, err
	}
	state.TimeBlocks = blocks

	activities, err := s.loadActivities()
	if err != nil {
		return models.ScheduleState{}, err
	}
	state.Activities = activities

	settings, err := s.loadSettings()
	if err != nil {
		return models.ScheduleState{}, err
	}
	state.Settings = settings

	state.Normalize()
	return state, nil
}

func (s *SQLiteStore) SaveState(state models.ScheduleState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	state.Normalize()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM time_blocks"); err != nil {
		return fmt.Errorf("failed to clear time blocks: %w", err)
	}
	for _, b := range state.TimeBlocks {
		_, err := tx.Exec(`INSERT INTO time_blocks
			(id, day, start_time, end_time, type, title, description, location, activity_type, color)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, string(b.Day), b.StartTime, b.EndTime, string(b.Type),
			b.Title, b.Description, b.Location, string(b.ActivityType), b.Color)
		if err != nil {
			return fmt.Errorf("failed to insert time block %s: %w", b.ID, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM activities"); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}
	for _, a := range state.Activities {
		var startHour, endHour sql.NullInt64
		if a.PreferredTime != nil {
			startHour = sql.NullInt64{Int64: int64(a.PreferredTime.StartHour), Valid: true}
			endHour = sql.NullInt64{Int64: int64(a.PreferredTime.EndHour), Valid: true}
		}
		days := ""
		if len(a.PreferredDays) > 0 {
			encoded, err := json.Marshal(a.PreferredDays)
			if err != nil {
				return fmt.Errorf("failed to encode preferred days for %s: %w", a.ID, err)
			}
			days = string(encoded)
		}
		_, err := tx.Exec(`INSERT INTO activities
			(id, name, type, duration, priority, description, preferred_start_hour, preferred_end_hour, preferred_days, time_block_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Name, string(a.Type), a.Duration, string(a.Priority),
			a.Description, startHour, endHour, days, a.TimeBlockID)
		if err != nil {
			return fmt.Errorf("failed to insert activity %s: %w", a.ID, err)
		}
	}

	if err := saveSettingsTx(tx, state.Settings); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) loadTimeBlocks() ([]models.TimeBlock, error) {
	rows, err := s.db.Query(`SELECT id, day, start_time, end_time, type, title,
		description, location, activity_type, color FROM time_blocks`)
	if err != nil {
		return nil, fmt.Errorf("failed to query time blocks: %w", err)
	}
	defer rows.Close()

	blocks := []models.TimeBlock{}
	for rows.Next() {
		var b models.TimeBlock
		var day, blockType, activityType string
		if err := rows.Scan(&b.ID, &day, &b.StartTime, &b.EndTime, &blockType,
			&b.Title, &b.Description, &b.Location, &activityType, &b.Color); err != nil {
			return nil, fmt.Errorf("failed to scan time block: %w", err)
		}
		b.Day = models.Weekday(day)
		b.Type = models.BlockType(blockType)
		b.ActivityType = models.ActivityType(activityType)
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (s *SQLiteStore) loadActivities() ([]models.Activity, error) {
	rows, err := s.db.Query(`SELECT id, name, type, duration, priority, description,
		preferred_start_hour, preferred_end_hour, preferred_days, time_block_id FROM activities`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		var actType, priority, days string
		var startHour, endHour sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Name, &actType, &a.Duration, &priority,
			&a.Description, &startHour, &endHour, &days, &a.TimeBlockID); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Type = models.ActivityType(actType)
		a.Priority = models.Priority(priority)
		if startHour.Valid && endHour.Valid {
			a.PreferredTime = &models.PreferredTime{
				StartHour: int(startHour.Int64),
				EndHour:   int(endHour.Int64),
			}
		}
		if days != "" {
			if err := json.Unmarshal([]byte(days), &a.PreferredDays); err != nil {
				return nil, fmt.Errorf("failed to decode preferred days for %s: %w", a.ID, err)
			}
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (s *SQLiteStore) loadSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingPomodoro:
			settings.StudyTechniques.Pomodoro = value == "true"
		case constants.SettingFeynman:
			settings.StudyTechniques.Feynman = value == "true"
		case constants.SettingSpaced:
			settings.StudyTechniques.Spaced = value == "true"
		case constants.SettingConceptMapping:
			settings.StudyTechniques.ConceptMapping = value == "true"
		case constants.SettingMinimumSleepHours:
			if _, err := fmt.Sscanf(value, "%d", &settings.MinimumSleepHours); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		case constants.SettingBreakDurationMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.BreakDuration); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		case constants.SettingMaximumStudySessionMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.MaximumStudySession); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SQLiteStore) saveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := saveSettingsTx(tx, settings); err != nil {
		return err
	}
	return tx.Commit()
}

func saveSettingsTx(tx *sql.Tx, settings models.Settings) error {
	pairs := map[string]string{
		constants.SettingPomodoro:               fmt.Sprintf("%t", settings.StudyTechniques.Pomodoro),
		constants.SettingFeynman:                fmt.Sprintf("%t", settings.StudyTechniques.Feynman),
		constants.SettingSpaced:                 fmt.Sprintf("%t", settings.StudyTechniques.Spaced),
		constants.SettingConceptMapping:         fmt.Sprintf("%t", settings.StudyTechniques.ConceptMapping),
		constants.SettingMinimumSleepHours:      fmt.Sprintf("%d", settings.MinimumSleepHours),
		constants.SettingBreakDurationMin:       fmt.Sprintf("%d", settings.BreakDuration),
		constants.SettingMaximumStudySessionMin: fmt.Sprintf("%d", settings.MaximumStudySession),
	}
	for key, value := range pairs {
		if _, err := tx.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
