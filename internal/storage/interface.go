package storage

import "github.com/julianstephens/zenith/internal/models"

// Provider persists the schedule snapshot. Implementations are not safe
// for concurrent use; the CLI runs one command at a time and saves the
// full state after every successful engine transition.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshot
	State() (models.ScheduleState, error)
	SaveState(models.ScheduleState) error

	// Utils
	GetConfigPath() string
}
