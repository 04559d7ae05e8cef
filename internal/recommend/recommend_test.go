package recommend

import (
	"strings"
	"testing"

	"github.com/julianstephens/zenith/internal/metrics"
	"github.com/julianstephens/zenith/internal/models"
)

func block(id string, day models.Weekday, start, end string, t models.ActivityType) models.TimeBlock {
	return models.TimeBlock{
		ID:           id,
		Day:          day,
		StartTime:    start,
		EndTime:      end,
		Type:         models.BlockOccupied,
		Title:        id,
		ActivityType: t,
	}
}

func containsSubstring(tips []string, substr string) bool {
	for _, tip := range tips {
		if strings.Contains(tip, substr) {
			return true
		}
	}
	return false
}

func TestStudyRecommendations_LowFreeTime(t *testing.T) {
	// 105 occupied hours against a 112-hour window leaves 7h free,
	// under the 10-hour threshold.
	state := models.NewScheduleState()
	for i, day := range models.AllWeekdays() {
		id := string(rune('a' + i))
		state.TimeBlocks = append(state.TimeBlocks, block(id, day, "07:00", "22:00", models.TypeWork))
	}

	advisor := New(metrics.DefaultConfig())
	tips := advisor.StudyRecommendations(state)

	if !containsSubstring(tips, "Pomodoro") {
		t.Errorf("Expected the intensive tip set for low free time, got %v", tips)
	}
}

func TestStudyRecommendations_LowStudyToClassRatio(t *testing.T) {
	state := models.NewScheduleState()
	state.TimeBlocks = []models.TimeBlock{
		block("class", models.Lunes, "08:00", "14:00", models.TypeAcademic), // 6h class
		block("study", models.Martes, "16:00", "17:00", models.TypeStudy),   // 1h study < 3h
	}

	advisor := New(metrics.DefaultConfig())
	tips := advisor.StudyRecommendations(state)

	if !containsSubstring(tips, "Increase your study hours") {
		t.Errorf("Expected the increase-study tip set, got %v", tips)
	}
}

func TestStudyRecommendations_Balanced(t *testing.T) {
	state := models.NewScheduleState()
	state.TimeBlocks = []models.TimeBlock{
		block("class", models.Lunes, "08:00", "12:00", models.TypeAcademic), // 4h class
		block("study", models.Martes, "16:00", "19:00", models.TypeStudy),   // 3h study >= 2h
	}

	advisor := New(metrics.DefaultConfig())
	tips := advisor.StudyRecommendations(state)

	if !containsSubstring(tips, "study balance looks right") {
		t.Errorf("Expected the balanced tip set, got %v", tips)
	}
}

func TestTimeManagementTips_CategoryShortfalls(t *testing.T) {
	// No exercise, rest, or social hours at all and heavy work hours.
	state := models.NewScheduleState()
	for i, day := range models.AllWeekdays() {
		id := string(rune('a' + i))
		state.TimeBlocks = append(state.TimeBlocks, block(id, day, "09:00", "14:00", models.TypeWork))
	}

	advisor := New(metrics.DefaultConfig())
	tips := advisor.TimeManagementTips(state)

	for _, substr := range []string{
		"3 hours of exercise",
		"downtime",
		"social time",
		"a lot of work hours",
	} {
		if !containsSubstring(tips, substr) {
			t.Errorf("Expected a tip mentioning %q, got %v", substr, tips)
		}
	}
}

func TestTimeManagementTips_BalancedFallback(t *testing.T) {
	state := models.NewScheduleState()
	state.TimeBlocks = []models.TimeBlock{
		block("gym", models.Lunes, "07:00", "10:00", models.TypeExercise),  // 3h
		block("rest", models.Martes, "14:00", "21:00", models.TypeRest),    // 7h
		block("social", models.Viernes, "18:00", "22:00", models.TypeSocial), // 4h
	}

	advisor := New(metrics.DefaultConfig())
	tips := advisor.TimeManagementTips(state)

	if !containsSubstring(tips, "looks balanced") {
		t.Errorf("Expected the balanced fallback set, got %v", tips)
	}
	if len(tips) != 3 {
		t.Errorf("Expected only the fallback set, got %d tips", len(tips))
	}
}

func TestAll_ConcatenatesBothSets(t *testing.T) {
	state := models.NewScheduleState()
	advisor := New(metrics.DefaultConfig())

	study := advisor.StudyRecommendations(state)
	tm := advisor.TimeManagementTips(state)
	all := advisor.All(state)

	if len(all) != len(study)+len(tm) {
		t.Errorf("All returned %d tips, want %d", len(all), len(study)+len(tm))
	}
}
