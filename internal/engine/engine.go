// Package engine keeps activities and their generated time blocks
// consistent. Apply is a pure state-transition function: it never
// mutates the input state and performs no I/O, so callers own the
// persistence of each resulting snapshot.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/zenith/internal/models"
	"github.com/julianstephens/zenith/internal/utils"
)

// Apply computes the next schedule state for one command. On a
// validation failure the input state is returned unchanged alongside
// the error; no other condition errors. Referential gaps (ids that no
// longer resolve) degrade to a no-op for the affected linkage step.
func Apply(state models.ScheduleState, cmd Command) (models.ScheduleState, error) {
	switch c := cmd.(type) {
	case AddTimeBlock:
		return addTimeBlock(state, c.Block)
	case RemoveTimeBlock:
		return removeTimeBlock(state, c.ID), nil
	case UpdateTimeBlock:
		return updateTimeBlock(state, c.Block)
	case AddActivity:
		return addActivity(state, c.Activity)
	case RemoveActivity:
		return removeActivity(state, c.ID), nil
	case UpdateActivity:
		return updateActivity(state, c.Activity)
	case UpdateSettings:
		state.Settings = c.Patch.Apply(state.Settings)
		return state, nil
	case ClearSchedule:
		state.TimeBlocks = []models.TimeBlock{}
		state.Activities = []models.Activity{}
		return state, nil
	case ImportSchedule:
		return importSchedule(state, c.Snapshot), nil
	}
	return state, fmt.Errorf("unknown command %T", cmd)
}

func addTimeBlock(state models.ScheduleState, block models.TimeBlock) (models.ScheduleState, error) {
	if err := block.Validate(); err != nil {
		return state, err
	}
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	blocks := make([]models.TimeBlock, 0, len(state.TimeBlocks)+1)
	blocks = append(blocks, state.TimeBlocks...)
	state.TimeBlocks = append(blocks, block)
	return state, nil
}

func removeTimeBlock(state models.ScheduleState, id string) models.ScheduleState {
	// De-link any owning activity first; removing a block never
	// cascade-deletes the activity.
	activities := make([]models.Activity, 0, len(state.Activities))
	for _, a := range state.Activities {
		if a.TimeBlockID == id {
			a = a.Clone()
			a.TimeBlockID = ""
		}
		activities = append(activities, a)
	}

	blocks := make([]models.TimeBlock, 0, len(state.TimeBlocks))
	for _, b := range state.TimeBlocks {
		if b.ID != id {
			blocks = append(blocks, b)
		}
	}

	state.TimeBlocks = blocks
	state.Activities = activities
	return state
}

func updateTimeBlock(state models.ScheduleState, block models.TimeBlock) (models.ScheduleState, error) {
	if err := block.Validate(); err != nil {
		return state, err
	}

	// Resync derived fields on any activity linked to this block.
	activities := make([]models.Activity, 0, len(state.Activities))
	for _, a := range state.Activities {
		if a.TimeBlockID == block.ID {
			a = a.Clone()
			if block.ActivityType != "" {
				a.Type = block.ActivityType
			}
			a.Name = block.Title
			a.Description = block.Description
			a.PreferredTime = &models.PreferredTime{
				StartHour: utils.ClockHour(block.StartTime),
				EndHour:   utils.ClockHour(block.EndTime),
			}
			a.PreferredDays = []models.Weekday{block.Day}
		}
		activities = append(activities, a)
	}

	blocks := make([]models.TimeBlock, 0, len(state.TimeBlocks))
	for _, b := range state.TimeBlocks {
		if b.ID == block.ID {
			// A directly edited block is assumed occupied.
			b = block
			b.Type = models.BlockOccupied
		}
		blocks = append(blocks, b)
	}

	state.TimeBlocks = blocks
	state.Activities = activities
	return state, nil
}

func addActivity(state models.ScheduleState, activity models.Activity) (models.ScheduleState, error) {
	if err := activity.Validate(); err != nil {
		return state, err
	}
	activity = activity.Clone()
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	blocks := make([]models.TimeBlock, 0, len(state.TimeBlocks)+1)
	blocks = append(blocks, state.TimeBlocks...)

	if activity.Schedulable() {
		block := blockForActivity(activity)
		activity.TimeBlockID = block.ID
		blocks = append(blocks, block)
	}

	activities := make([]models.Activity, 0, len(state.Activities)+1)
	activities = append(activities, state.Activities...)

	state.TimeBlocks = blocks
	state.Activities = append(activities, activity)
	return state, nil
}

func removeActivity(state models.ScheduleState, id string) models.ScheduleState {
	activity, ok := state.FindActivity(id)
	if !ok {
		return state
	}

	activities := make([]models.Activity, 0, len(state.Activities))
	for _, a := range state.Activities {
		if a.ID != id {
			activities = append(activities, a)
		}
	}
	state.Activities = activities

	// The owned block must not outlive its activity.
	if activity.TimeBlockID != "" {
		blocks := make([]models.TimeBlock, 0, len(state.TimeBlocks))
		for _, b := range state.TimeBlocks {
			if b.ID != activity.TimeBlockID {
				blocks = append(blocks, b)
			}
		}
		state.TimeBlocks = blocks
	}

	return state
}

func updateActivity(state models.ScheduleState, activity models.Activity) (models.ScheduleState, error) {
	if err := activity.Validate(); err != nil {
		return state, err
	}
	if _, ok := state.FindActivity(activity.ID); !ok {
		// Updating a missing activity is a no-op rather than an error.
		return state, nil
	}
	activity = activity.Clone()

	blocks := append([]models.TimeBlock(nil), state.TimeBlocks...)

	if activity.TimeBlockID != "" {
		_, linked := state.FindTimeBlock(activity.TimeBlockID)
		switch {
		case linked && activity.Schedulable():
			// Resync the owned block in place.
			for i, b := range blocks {
				if b.ID != activity.TimeBlockID {
					continue
				}
				b.Day = activity.PreferredDays[0]
				b.StartTime = utils.FormatHour(activity.PreferredTime.StartHour)
				b.EndTime = utils.FormatHour(activity.PreferredTime.EndHour)
				b.Title = activity.Name
				b.Description = activity.Description
				b.ActivityType = activity.Type
				b.Type = models.BlockOccupied
				blocks[i] = b
			}
		case linked:
			// The scheduling preference is gone: drop the orphaned
			// block and clear the link.
			kept := blocks[:0]
			for _, b := range blocks {
				if b.ID != activity.TimeBlockID {
					kept = append(kept, b)
				}
			}
			blocks = kept
			activity.TimeBlockID = ""
		default:
			// Stale link: the block no longer exists, so the linkage
			// step is skipped and the record stored as given.
		}
	} else if activity.Schedulable() {
		block := blockForActivity(activity)
		activity.TimeBlockID = block.ID
		blocks = append(blocks, block)
	}

	activities := make([]models.Activity, 0, len(state.Activities))
	for _, a := range state.Activities {
		if a.ID == activity.ID {
			a = activity
		}
		activities = append(activities, a)
	}

	state.TimeBlocks = blocks
	state.Activities = activities
	return state, nil
}

// blockForActivity generates the single occupied block a schedulable
// activity owns, placed on its first preferred day.
func blockForActivity(activity models.Activity) models.TimeBlock {
	return models.TimeBlock{
		ID:           uuid.New().String(),
		Day:          activity.PreferredDays[0],
		StartTime:    utils.FormatHour(activity.PreferredTime.StartHour),
		EndTime:      utils.FormatHour(activity.PreferredTime.EndHour),
		Type:         models.BlockOccupied,
		Title:        activity.Name,
		Description:  activity.Description,
		ActivityType: activity.Type,
	}
}

func importSchedule(state models.ScheduleState, snap Snapshot) models.ScheduleState {
	if snap.TimeBlocks != nil {
		state.TimeBlocks = append([]models.TimeBlock(nil), snap.TimeBlocks...)
	}
	if snap.Activities != nil {
		state.Activities = append([]models.Activity(nil), snap.Activities...)
	}
	if snap.Settings != nil {
		state.Settings = *snap.Settings
	}
	return state
}
