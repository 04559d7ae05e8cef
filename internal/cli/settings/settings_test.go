package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/metrics"
	"github.com/julianstephens/zenith/internal/storage"
)

func setupTestStore(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "zenith.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return &cli.Context{
		Store:   store,
		Metrics: metrics.DefaultConfig(),
	}
}

func TestShowCmd(t *testing.T) {
	ctx := setupTestStore(t)

	if err := (&ShowCmd{}).Run(ctx); err != nil {
		t.Errorf("settings show failed: %v", err)
	}
}

func TestSetCmd_UpdatesFields(t *testing.T) {
	ctx := setupTestStore(t)

	sleep := 9
	pomodoro := false
	cmd := &SetCmd{MinSleep: &sleep, Pomodoro: &pomodoro}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings set failed: %v", err)
	}

	state, err := ctx.Store.State()
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if state.Settings.MinimumSleepHours != 9 {
		t.Errorf("Expected minimum sleep 9, got %d", state.Settings.MinimumSleepHours)
	}
	if state.Settings.StudyTechniques.Pomodoro {
		t.Errorf("Expected pomodoro disabled")
	}
	if state.Settings.BreakDuration != 15 {
		t.Errorf("Expected untouched break duration, got %d", state.Settings.BreakDuration)
	}
}

func TestSetCmd_NoFlagsFails(t *testing.T) {
	ctx := setupTestStore(t)

	if err := (&SetCmd{}).Run(ctx); err == nil {
		t.Errorf("Expected an error when no setting flag is passed")
	}
}

func TestSetCmd_ValidateRejectsBadValues(t *testing.T) {
	tooMuchSleep := 30
	if err := (&SetCmd{MinSleep: &tooMuchSleep}).Validate(); err == nil {
		t.Errorf("Expected validation error for 30h sleep")
	}

	negativeBreak := -5
	if err := (&SetCmd{BreakDuration: &negativeBreak}).Validate(); err == nil {
		t.Errorf("Expected validation error for negative break")
	}
}
