package models

import "fmt"

// Weekday is one of the seven weekday labels used in schedules.
type Weekday string

const (
	Lunes     Weekday = "lunes"
	Martes    Weekday = "martes"
	Miercoles Weekday = "miércoles"
	Jueves    Weekday = "jueves"
	Viernes   Weekday = "viernes"
	Sabado    Weekday = "sábado"
	Domingo   Weekday = "domingo"
)

// AllWeekdays returns the weekday labels in week order.
func AllWeekdays() []Weekday {
	return []Weekday{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}
}

// ParseWeekday parses a weekday label, tolerating the unaccented spellings.
func ParseWeekday(s string) (Weekday, error) {
	switch s {
	case "lunes":
		return Lunes, nil
	case "martes":
		return Martes, nil
	case "miércoles", "miercoles":
		return Miercoles, nil
	case "jueves":
		return Jueves, nil
	case "viernes":
		return Viernes, nil
	case "sábado", "sabado":
		return Sabado, nil
	case "domingo":
		return Domingo, nil
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

type BlockType string

const (
	BlockOccupied BlockType = "occupied"
	BlockFree     BlockType = "free"
)

// ActivityType is the coarse category shared by activities and time blocks.
type ActivityType string

const (
	TypeAcademic ActivityType = "academic"
	TypeWork     ActivityType = "work"
	TypeStudy    ActivityType = "study"
	TypeExercise ActivityType = "exercise"
	TypeRest     ActivityType = "rest"
	TypeSocial   ActivityType = "social"
	TypePersonal ActivityType = "personal"
	TypeOther    ActivityType = "other"
)

// ParseActivityType parses an activity category label.
func ParseActivityType(s string) (ActivityType, error) {
	switch ActivityType(s) {
	case TypeAcademic, TypeWork, TypeStudy, TypeExercise, TypeRest, TypeSocial, TypePersonal, TypeOther:
		return ActivityType(s), nil
	}
	return "", fmt.Errorf("invalid activity type: %s", s)
}

// TimeBlock is a fixed interval on one day of the week. A block with
// EndTime earlier than StartTime crosses midnight.
type TimeBlock struct {
	ID           string       `json:"id"`
	Day          Weekday      `json:"day"`
	StartTime    string       `json:"start_time"` // HH:MM format
	EndTime      string       `json:"end_time"`   // HH:MM format
	Type         BlockType    `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Location     string       `json:"location,omitempty"`
	ActivityType ActivityType `json:"activity_type,omitempty"`
	Color        string       `json:"color,omitempty"`
}

func (b TimeBlock) Validate() error {
	if b.Title == "" {
		return fmt.Errorf("time block title is required")
	}
	if _, err := ParseWeekday(string(b.Day)); err != nil {
		return err
	}
	return nil
}
