// Package recommend produces rule-based study and time-management
// suggestions from the weekly metrics.
package recommend

import (
	"github.com/julianstephens/zenith/internal/metrics"
	"github.com/julianstephens/zenith/internal/models"
)

// Thresholds below which (or above which, for work) a category earns a
// dedicated tip set.
const (
	lowFreeTimeHours  = 10
	minExerciseHours  = 3
	minRestHours      = 7
	minSocialHours    = 4
	maxWorkHours      = 30
	studyToClassRatio = 0.5
)

// Advisor evaluates recommendation rules against a schedule state.
type Advisor struct {
	cfg metrics.Config
}

// New returns an advisor using the given metrics configuration.
func New(cfg metrics.Config) *Advisor {
	return &Advisor{cfg: cfg}
}

// StudyRecommendations returns study advice keyed off free time and the
// study-to-class hour ratio.
func (a *Advisor) StudyRecommendations(state models.ScheduleState) []string {
	studyHours := metrics.DurationByType(state, models.TypeStudy)
	academicHours := metrics.DurationByType(state, models.TypeAcademic)
	freeTime := a.cfg.TotalFree(state)

	if freeTime < lowFreeTimeHours {
		return []string{
			"Prioritize the most demanding subjects during your highest-energy hours",
			"Use the Pomodoro technique (25 min study / 5 min break) to maximize focus",
			"Set a very specific goal for every study session",
			"Use the small gaps between activities for quick reviews",
			"Mix study methods and media to get more out of limited time",
		}
	}

	if studyHours < academicHours*studyToClassRatio {
		return []string{
			"Increase your study hours: aim for at least 1 hour of study per 2 hours of class",
			"Use spaced repetition to improve retention",
			"Schedule study sessions right after your hardest classes",
			"Build concept maps or summaries to consolidate what you learn",
			"Keep a fixed study slot to turn studying into a habit",
		}
	}

	return []string{
		"Your study balance looks right. Keep it consistent",
		"Rotate study techniques to stay engaged",
		"Consider a study group for the most demanding subjects",
		"Review and adjust your study techniques periodically",
		"Track your progress and celebrate what you complete",
	}
}

// TimeManagementTips returns category-balance advice. When every
// category is inside its healthy range a single balanced set is
// returned instead.
func (a *Advisor) TimeManagementTips(state models.ScheduleState) []string {
	exerciseHours := metrics.DurationByType(state, models.TypeExercise)
	restHours := metrics.DurationByType(state, models.TypeRest)
	socialHours := metrics.DurationByType(state, models.TypeSocial)
	workHours := metrics.DurationByType(state, models.TypeWork)

	var tips []string

	if exerciseHours < minExerciseHours {
		tips = append(tips,
			"Fit in at least 3 hours of exercise a week to improve focus and wellbeing",
			"Short sessions count: walk between classes or do desk exercises",
			"Regular exercise improves memory and lowers stress",
		)
	}

	if restHours < minRestHours {
		tips = append(tips,
			"Schedule more downtime; rest is what sustains productivity",
			"Add short pauses between intense activities",
			"Keep a regular sleep schedule",
		)
	}

	if socialHours < minSocialHours {
		tips = append(tips,
			"Don't underestimate social time for your wellbeing",
			"Plan social activities that also support your academic goals",
			"Balance your responsibilities with your social life",
		)
	}

	if workHours > maxWorkHours {
		tips = append(tips,
			"You are putting in a lot of work hours; watch the balance",
			"Lean on productivity techniques to make work hours count",
			"Block out explicit time for rest and recovery",
		)
	}

	if len(tips) == 0 {
		tips = append(tips,
			"Your time distribution looks balanced. Nice work!",
			"Keep monitoring your week and adjust as needed",
			"Share your organization techniques with others",
		)
	}

	return tips
}

// All returns the study recommendations followed by the
// time-management tips.
func (a *Advisor) All(state models.ScheduleState) []string {
	return append(a.StudyRecommendations(state), a.TimeManagementTips(state)...)
}
