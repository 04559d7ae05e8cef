package models

import "fmt"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority parses a priority label.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}

// PreferredTime is an activity's desired scheduling window, in whole hours.
type PreferredTime struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Activity is a user-defined task with a target duration and optional
// scheduling preference. An activity with both a preferred time and at
// least one preferred day owns exactly one generated TimeBlock,
// referenced by TimeBlockID.
type Activity struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          ActivityType   `json:"type"`
	Duration      float64        `json:"duration"` // hours
	Priority      Priority       `json:"priority"`
	Description   string         `json:"description,omitempty"`
	PreferredTime *PreferredTime `json:"preferred_time,omitempty"`
	PreferredDays []Weekday      `json:"preferred_days,omitempty"`
	TimeBlockID   string         `json:"time_block_id,omitempty"`
}

// Schedulable reports whether the activity carries enough preference to
// own a generated time block.
func (a Activity) Schedulable() bool {
	return a.PreferredTime != nil && len(a.PreferredDays) > 0
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	if a.PreferredTime != nil {
		pt := *a.PreferredTime
		out.PreferredTime = &pt
	}
	if a.PreferredDays != nil {
		out.PreferredDays = append([]Weekday(nil), a.PreferredDays...)
	}
	return out
}

func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if _, err := ParseActivityType(string(a.Type)); err != nil {
		return err
	}
	return nil
}
