package models

import "github.com/julianstephens/zenith/internal/constants"

// StudyTechniques holds the study-technique preference flags.
type StudyTechniques struct {
	Pomodoro       bool `json:"pomodoro"`
	Feynman        bool `json:"feynman"`
	Spaced         bool `json:"spaced"`
	ConceptMapping bool `json:"concept_mapping"`
}

// Settings represents application-wide settings.
type Settings struct {
	StudyTechniques     StudyTechniques `json:"study_techniques"`
	MinimumSleepHours   int             `json:"minimum_sleep_hours"`
	BreakDuration       int             `json:"break_duration"`        // minutes
	MaximumStudySession int             `json:"maximum_study_session"` // minutes
}

// DefaultSettings returns the settings a fresh schedule starts with.
func DefaultSettings() Settings {
	return Settings{
		StudyTechniques: StudyTechniques{
			Pomodoro:       constants.DefaultPomodoro,
			Feynman:        constants.DefaultFeynman,
			Spaced:         constants.DefaultSpaced,
			ConceptMapping: constants.DefaultConceptMapping,
		},
		MinimumSleepHours:   constants.DefaultMinimumSleepHours,
		BreakDuration:       constants.DefaultBreakDurationMin,
		MaximumStudySession: constants.DefaultMaximumStudySessionMin,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	StudyTechniques     *StudyTechniques `json:"study_techniques,omitempty"`
	MinimumSleepHours   *int             `json:"minimum_sleep_hours,omitempty"`
	BreakDuration       *int             `json:"break_duration,omitempty"`
	MaximumStudySession *int             `json:"maximum_study_session,omitempty"`
}

// Apply merges the patch over the given settings and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.StudyTechniques != nil {
		s.StudyTechniques = *p.StudyTechniques
	}
	if p.MinimumSleepHours != nil {
		s.MinimumSleepHours = *p.MinimumSleepHours
	}
	if p.BreakDuration != nil {
		s.BreakDuration = *p.BreakDuration
	}
	if p.MaximumStudySession != nil {
		s.MaximumStudySession = *p.MaximumStudySession
	}
	return s
}
