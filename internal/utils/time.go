package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/zenith/internal/constants"
)

// ParseTime parses a wall-clock string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ParseClock parses a wall-clock string (HH:MM) into decimal hours from
// midnight, e.g. "09:30" -> 9.5.
func ParseClock(timeStr string) (float64, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", timeStr, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", timeStr, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", timeStr)
	}
	return float64(hour) + float64(minute)/60, nil
}

// ClockHour returns the hour component of a wall-clock string, or 0 when
// the string cannot be parsed.
func ClockHour(timeStr string) int {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

// FormatHour renders a whole hour as a zero-padded wall-clock string,
// e.g. 9 -> "09:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
