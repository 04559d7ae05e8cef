package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/zenith/internal/backup"
	"github.com/julianstephens/zenith/internal/engine"
	"github.com/julianstephens/zenith/internal/logger"
	"github.com/julianstephens/zenith/internal/metrics"
	"github.com/julianstephens/zenith/internal/models"
	"github.com/julianstephens/zenith/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Metrics metrics.Config
}

// Dispatch applies one command to the stored schedule and persists the
// resulting snapshot. The returned state is the new snapshot on
// success, the unchanged one on validation failure.
func (c *Context) Dispatch(cmd engine.Command) (models.ScheduleState, error) {
	state, err := c.Store.State()
	if err != nil {
		return models.ScheduleState{}, err
	}

	next, err := engine.Apply(state, cmd)
	if err != nil {
		return state, err
	}

	c.PerformAutomaticBackup()

	if err := c.Store.SaveState(next); err != nil {
		return state, err
	}
	return next, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDays parses a comma-separated list of weekday labels.
func ParseDays(s string) ([]models.Weekday, error) {
	parts := strings.Split(s, ",")
	var days []models.Weekday
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		day, err := models.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return days, nil
}

// FormatDays renders a weekday list as a comma-separated string.
func FormatDays(days []models.Weekday) string {
	labels := make([]string, 0, len(days))
	for _, d := range days {
		labels = append(labels, string(d))
	}
	return strings.Join(labels, ",")
}

// FormatHours renders an hour total with a trailing unit, e.g. "2.5h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
