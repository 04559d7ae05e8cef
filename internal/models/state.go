package models

// ScheduleState is the full schedule snapshot: the single value the
// reconciliation engine transforms and the stores persist.
type ScheduleState struct {
	TimeBlocks []TimeBlock `json:"time_blocks"`
	Activities []Activity  `json:"activities"`
	Settings   Settings    `json:"settings"`
}

// NewScheduleState returns an empty schedule with default settings.
func NewScheduleState() ScheduleState {
	return ScheduleState{
		TimeBlocks: []TimeBlock{},
		Activities: []Activity{},
		Settings:   DefaultSettings(),
	}
}

// Normalize fills in the pieces a partially-populated snapshot may be
// missing: nil slices become empty and zero-valued settings fall back
// to the defaults. Stores call this after loading so an empty or
// pre-settings snapshot still yields a usable state.
func (s *ScheduleState) Normalize() {
	if s.TimeBlocks == nil {
		s.TimeBlocks = []TimeBlock{}
	}
	if s.Activities == nil {
		s.Activities = []Activity{}
	}
	if s.Settings == (Settings{}) {
		s.Settings = DefaultSettings()
	}
}

// FindTimeBlock returns the block with the given id, if present.
func (s ScheduleState) FindTimeBlock(id string) (TimeBlock, bool) {
	for _, b := range s.TimeBlocks {
		if b.ID == id {
			return b, true
		}
	}
	return TimeBlock{}, false
}

// FindActivity returns the activity with the given id, if present.
func (s ScheduleState) FindActivity(id string) (Activity, bool) {
	for _, a := range s.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}
