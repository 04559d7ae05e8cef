package engine

import (
	"testing"

	"github.com/julianstephens/zenith/internal/models"
)

func gymActivity() models.Activity {
	return models.Activity{
		ID:       "act-gym",
		Name:     "Gym",
		Type:     models.TypeExercise,
		Duration: 1,
		Priority: models.PriorityMedium,
		PreferredTime: &models.PreferredTime{
			StartHour: 18,
			EndHour:   19,
		},
		PreferredDays: []models.Weekday{models.Martes, models.Jueves},
	}
}

func TestAddActivity_GeneratesLinkedBlock(t *testing.T) {
	state := models.NewScheduleState()

	next, err := Apply(state, AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 1 {
		t.Fatalf("Expected 1 generated block, got %d", len(next.TimeBlocks))
	}
	block := next.TimeBlocks[0]
	activity := next.Activities[0]

	if block.Day != models.Martes {
		t.Errorf("Expected block on first preferred day martes, got %s", block.Day)
	}
	if block.StartTime != "18:00" || block.EndTime != "19:00" {
		t.Errorf("Expected block 18:00-19:00, got %s-%s", block.StartTime, block.EndTime)
	}
	if block.Type != models.BlockOccupied {
		t.Errorf("Expected generated block to be occupied, got %s", block.Type)
	}
	if block.Title != "Gym" {
		t.Errorf("Expected block title Gym, got %s", block.Title)
	}
	if block.ActivityType != models.TypeExercise {
		t.Errorf("Expected block activity type exercise, got %s", block.ActivityType)
	}
	if activity.TimeBlockID != block.ID {
		t.Errorf("Expected activity linked to block %s, got %q", block.ID, activity.TimeBlockID)
	}
}

func TestAddActivity_WithoutPreferenceGeneratesNoBlock(t *testing.T) {
	state := models.NewScheduleState()
	activity := gymActivity()
	activity.PreferredTime = nil

	next, err := Apply(state, AddActivity{Activity: activity})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 0 {
		t.Errorf("Expected no blocks, got %d", len(next.TimeBlocks))
	}
	if next.Activities[0].TimeBlockID != "" {
		t.Errorf("Expected no block link, got %q", next.Activities[0].TimeBlockID)
	}
}

func TestAddActivity_AssignsID(t *testing.T) {
	activity := gymActivity()
	activity.ID = ""

	next, err := Apply(models.NewScheduleState(), AddActivity{Activity: activity})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if next.Activities[0].ID == "" {
		t.Errorf("Expected a generated activity ID")
	}
}

func TestRemoveActivity_CascadesOwnedBlock(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	next, err := Apply(state, RemoveActivity{ID: "act-gym"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.Activities) != 0 {
		t.Errorf("Expected activity removed, got %d remaining", len(next.Activities))
	}
	if len(next.TimeBlocks) != 0 {
		t.Errorf("Expected owned block removed, got %d remaining", len(next.TimeBlocks))
	}
}

func TestRemoveActivity_MissingIDIsNoOp(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	next, err := Apply(state, RemoveActivity{ID: "ghost"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(next.Activities) != 1 || len(next.TimeBlocks) != 1 {
		t.Errorf("Expected state unchanged, got %d activities and %d blocks",
			len(next.Activities), len(next.TimeBlocks))
	}
}

func TestRemoveTimeBlock_DelinksActivityWithoutDeletingIt(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	blockID := state.TimeBlocks[0].ID

	next, err := Apply(state, RemoveTimeBlock{ID: blockID})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 0 {
		t.Errorf("Expected block removed, got %d remaining", len(next.TimeBlocks))
	}
	if len(next.Activities) != 1 {
		t.Fatalf("Expected activity kept, got %d", len(next.Activities))
	}
	if next.Activities[0].TimeBlockID != "" {
		t.Errorf("Expected activity de-linked, got %q", next.Activities[0].TimeBlockID)
	}
}

func TestUpdateTimeBlock_ResyncsLinkedActivity(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	block := state.TimeBlocks[0]
	block.Day = models.Viernes
	block.StartTime = "07:00"
	block.EndTime = "08:30"
	block.Title = "Morning Gym"
	block.Type = models.BlockFree // must be forced back to occupied

	next, err := Apply(state, UpdateTimeBlock{Block: block})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	updated := next.TimeBlocks[0]
	if updated.Type != models.BlockOccupied {
		t.Errorf("Expected edited block forced occupied, got %s", updated.Type)
	}

	activity := next.Activities[0]
	if activity.Name != "Morning Gym" {
		t.Errorf("Expected activity renamed to Morning Gym, got %s", activity.Name)
	}
	if activity.PreferredTime == nil || activity.PreferredTime.StartHour != 7 || activity.PreferredTime.EndHour != 8 {
		t.Errorf("Expected preferred time resynced to 7-8, got %+v", activity.PreferredTime)
	}
	if len(activity.PreferredDays) != 1 || activity.PreferredDays[0] != models.Viernes {
		t.Errorf("Expected preferred days resynced to [viernes], got %v", activity.PreferredDays)
	}
}

func TestUpdateActivity_ResyncsOwnedBlockInPlace(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	blockID := state.TimeBlocks[0].ID

	activity := state.Activities[0].Clone()
	activity.Name = "Swimming"
	activity.PreferredTime = &models.PreferredTime{StartHour: 6, EndHour: 7}
	activity.PreferredDays = []models.Weekday{models.Sabado}

	next, err := Apply(state, UpdateActivity{Activity: activity})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 1 {
		t.Fatalf("Expected the block resynced, not recreated; got %d blocks", len(next.TimeBlocks))
	}
	block := next.TimeBlocks[0]
	if block.ID != blockID {
		t.Errorf("Expected block ID stable across resync, got %s", block.ID)
	}
	if block.Day != models.Sabado || block.StartTime != "06:00" || block.EndTime != "07:00" {
		t.Errorf("Expected block resynced to sábado 06:00-07:00, got %s %s-%s",
			block.Day, block.StartTime, block.EndTime)
	}
	if block.Title != "Swimming" {
		t.Errorf("Expected block title resynced to Swimming, got %s", block.Title)
	}
}

func TestUpdateActivity_DroppedPreferenceDeletesOrphanBlock(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	activity := state.Activities[0].Clone()
	activity.PreferredTime = nil
	activity.PreferredDays = nil

	next, err := Apply(state, UpdateActivity{Activity: activity})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 0 {
		t.Errorf("Expected orphaned block deleted, got %d blocks", len(next.TimeBlocks))
	}
	if next.Activities[0].TimeBlockID != "" {
		t.Errorf("Expected link cleared, got %q", next.Activities[0].TimeBlockID)
	}
}

func TestUpdateActivity_NewPreferenceGeneratesBlock(t *testing.T) {
	unscheduled := gymActivity()
	unscheduled.PreferredTime = nil
	unscheduled.PreferredDays = nil
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: unscheduled})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	activity := state.Activities[0].Clone()
	activity.PreferredTime = &models.PreferredTime{StartHour: 18, EndHour: 19}
	activity.PreferredDays = []models.Weekday{models.Martes}

	next, err := Apply(state, UpdateActivity{Activity: activity})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 1 {
		t.Fatalf("Expected a block generated, got %d", len(next.TimeBlocks))
	}
	if next.Activities[0].TimeBlockID != next.TimeBlocks[0].ID {
		t.Errorf("Expected new block linked to the activity")
	}
}

func TestUpdateActivity_StaleLinkSkipsLinkageStep(t *testing.T) {
	activity := gymActivity()
	activity.TimeBlockID = "ghost-block"
	state := models.NewScheduleState()
	state.Activities = []models.Activity{activity}

	updated := activity.Clone()
	updated.Name = "Gym v2"

	next, err := Apply(state, UpdateActivity{Activity: updated})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 0 {
		t.Errorf("Expected no block created for a stale link, got %d", len(next.TimeBlocks))
	}
	got := next.Activities[0]
	if got.Name != "Gym v2" {
		t.Errorf("Expected record stored as given, got name %s", got.Name)
	}
	if got.TimeBlockID != "ghost-block" {
		t.Errorf("Expected stale link stored as given, got %q", got.TimeBlockID)
	}
}

func TestUpdateActivity_MissingIDIsNoOp(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	ghost := gymActivity()
	ghost.ID = "ghost"

	next, err := Apply(state, UpdateActivity{Activity: ghost})
	if err != nil {
		t.Fatalf("Expected no error for a missing activity, got %v", err)
	}
	if len(next.Activities) != 1 || len(next.TimeBlocks) != 1 {
		t.Errorf("Expected state unchanged, got %d activities and %d blocks",
			len(next.Activities), len(next.TimeBlocks))
	}
}

func TestApply_ValidationFailureReturnsInputUnchanged(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cases := []struct {
		name string
		cmd  Command
	}{
		{"block without title", AddTimeBlock{Block: models.TimeBlock{Day: models.Lunes}}},
		{"block with bad day", AddTimeBlock{Block: models.TimeBlock{Title: "X", Day: "someday"}}},
		{"activity without name", AddActivity{Activity: models.Activity{Type: models.TypeStudy}}},
		{"activity with bad type", AddActivity{Activity: models.Activity{Name: "X", Type: "juggling"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Apply(state, tc.cmd)
			if err == nil {
				t.Fatalf("Expected a validation error")
			}
			if len(next.Activities) != len(state.Activities) || len(next.TimeBlocks) != len(state.TimeBlocks) {
				t.Errorf("Expected input state returned unchanged")
			}
		})
	}
}

func TestApply_DoesNotMutateInputState(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	blockID := state.TimeBlocks[0].ID

	if _, err := Apply(state, RemoveTimeBlock{ID: blockID}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(state.TimeBlocks) != 1 {
		t.Errorf("Expected input blocks untouched, got %d", len(state.TimeBlocks))
	}
	if state.Activities[0].TimeBlockID != blockID {
		t.Errorf("Expected input activity link untouched, got %q", state.Activities[0].TimeBlockID)
	}
}

func TestClearSchedule_KeepsSettings(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	sleep := 9
	state.Settings.MinimumSleepHours = sleep

	next, err := Apply(state, ClearSchedule{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 0 || len(next.Activities) != 0 {
		t.Errorf("Expected blocks and activities cleared")
	}
	if next.Settings.MinimumSleepHours != sleep {
		t.Errorf("Expected settings preserved, got %d", next.Settings.MinimumSleepHours)
	}
}

func TestImportSchedule_NilSectionsAreLeftUntouched(t *testing.T) {
	state, err := Apply(models.NewScheduleState(), AddActivity{Activity: gymActivity()})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	snap := Snapshot{
		TimeBlocks: []models.TimeBlock{
			{ID: "b1", Day: models.Lunes, StartTime: "08:00", EndTime: "10:00", Type: models.BlockOccupied, Title: "Algebra"},
		},
	}

	next, err := Apply(state, ImportSchedule{Snapshot: snap})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(next.TimeBlocks) != 1 || next.TimeBlocks[0].ID != "b1" {
		t.Errorf("Expected blocks replaced wholesale, got %v", next.TimeBlocks)
	}
	if len(next.Activities) != 1 {
		t.Errorf("Expected nil activities section to keep existing activities, got %d", len(next.Activities))
	}
}

func TestUpdateSettings_MergesPatch(t *testing.T) {
	state := models.NewScheduleState()
	sleep := 9

	next, err := Apply(state, UpdateSettings{Patch: models.SettingsPatch{MinimumSleepHours: &sleep}})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if next.Settings.MinimumSleepHours != 9 {
		t.Errorf("Expected minimum sleep patched to 9, got %d", next.Settings.MinimumSleepHours)
	}
	if next.Settings.BreakDuration != state.Settings.BreakDuration {
		t.Errorf("Expected untouched fields preserved")
	}
}
