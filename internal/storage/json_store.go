package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/zenith/internal/models"
)

type fileStore struct {
	Version int                  `json:"version"`
	State   models.ScheduleState `json:"state"`
}

// JSONStore keeps the whole schedule snapshot in a single JSON file.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version: 1,
		State:   models.NewScheduleState(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'zenith init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{Version: 1}
	if len(data) > 0 {
		if err := json.Unmarshal(data, s.store); err != nil {
			return fmt.Errorf("failed to parse storage: %w", err)
		}
	}

	s.store.State.Normalize()
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) State() (models.ScheduleState, error) {
	if s.store == nil {
		return models.ScheduleState{}, fmt.Errorf("storage not loaded")
	}
	return s.store.State, nil
}

func (s *JSONStore) SaveState(state models.ScheduleState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	state.Normalize()
	s.store.State = state
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
