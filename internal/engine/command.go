package engine

import "github.com/julianstephens/zenith/internal/models"

// Command is one schedule state transition. Commands are applied one at
// a time by Apply; there is no other way to change a ScheduleState.
type Command interface {
	isCommand()
}

// AddTimeBlock appends a block to the schedule, assigning an id when the
// block carries none. It has no activity side effects.
type AddTimeBlock struct {
	Block models.TimeBlock
}

// RemoveTimeBlock removes the block with the given id. Activities linked
// to the block are de-linked, never deleted.
type RemoveTimeBlock struct {
	ID string
}

// UpdateTimeBlock replaces the block with the matching id, forcing its
// type to occupied, and resyncs the derived fields of any activity
// linked to it.
type UpdateTimeBlock struct {
	Block models.TimeBlock
}

// AddActivity stores an activity, assigning an id when absent. A
// schedulable activity (preferred time plus at least one preferred day)
// also generates one linked time block on its first preferred day.
type AddActivity struct {
	Activity models.Activity
}

// RemoveActivity deletes the activity with the given id along with the
// time block it owns, if any.
type RemoveActivity struct {
	ID string
}

// UpdateActivity replaces the activity record and reconciles its owned
// time block: resynced in place when the preference remains, created
// when the preference is new, and deleted when the preference is gone.
type UpdateActivity struct {
	Activity models.Activity
}

// UpdateSettings merges a partial settings patch into the schedule
// settings.
type UpdateSettings struct {
	Patch models.SettingsPatch
}

// ClearSchedule resets blocks and activities to empty, preserving
// settings.
type ClearSchedule struct{}

// ImportSchedule merges a partial snapshot over the current state. Nil
// sections are left untouched; present sections replace wholesale.
type ImportSchedule struct {
	Snapshot Snapshot
}

// Snapshot is a partial schedule state used for restores and imports.
type Snapshot struct {
	TimeBlocks []models.TimeBlock `json:"time_blocks,omitempty"`
	Activities []models.Activity  `json:"activities,omitempty"`
	Settings   *models.Settings   `json:"settings,omitempty"`
}

func (AddTimeBlock) isCommand()    {}
func (RemoveTimeBlock) isCommand() {}
func (UpdateTimeBlock) isCommand() {}
func (AddActivity) isCommand()     {}
func (RemoveActivity) isCommand()  {}
func (UpdateActivity) isCommand()  {}
func (UpdateSettings) isCommand()  {}
func (ClearSchedule) isCommand()   {}
func (ImportSchedule) isCommand()  {}
