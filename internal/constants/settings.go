package constants

const (
	// Settings keys
	SettingPomodoro               = "technique_pomodoro"
	SettingFeynman                = "technique_feynman"
	SettingSpaced                 = "technique_spaced"
	SettingConceptMapping         = "technique_concept_mapping"
	SettingMinimumSleepHours      = "minimum_sleep_hours"
	SettingBreakDurationMin       = "break_duration_min"
	SettingMaximumStudySessionMin = "maximum_study_session_min"

	// Default settings values
	DefaultPomodoro               = true
	DefaultFeynman                = false
	DefaultSpaced                 = false
	DefaultConceptMapping         = false
	DefaultMinimumSleepHours      = 7
	DefaultBreakDurationMin       = 15
	DefaultMaximumStudySessionMin = 120
)
