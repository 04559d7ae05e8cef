// Package metrics derives weekly totals from a schedule state. All
// functions are pure; a block whose times fail to parse contributes
// zero rather than poisoning aggregates.
package metrics

import (
	"math"

	"github.com/julianstephens/zenith/internal/models"
	"github.com/julianstephens/zenith/internal/utils"
)

const (
	// DefaultAvailableHoursPerWeek assumes 16 waking hours per day
	// (24 minus an 8-hour sleep block) across a 7-day week. Occupied
	// totals are counted in full against this window; there is no
	// sleep-window clipping of individual blocks.
	DefaultAvailableHoursPerWeek = 16 * 7
)

// Config holds the knobs the calculator exposes. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	AvailableHoursPerWeek float64
	ProductiveTypes       []models.ActivityType
}

// DefaultConfig returns the standard metrics configuration.
func DefaultConfig() Config {
	return Config{
		AvailableHoursPerWeek: DefaultAvailableHoursPerWeek,
		ProductiveTypes: []models.ActivityType{
			models.TypeAcademic,
			models.TypeWork,
			models.TypeStudy,
			models.TypeExercise,
			models.TypeRest,
		},
	}
}

// Summary is the full metrics snapshot for a schedule state.
type Summary struct {
	TotalOccupied  float64
	TotalFree      float64
	Productivity   int
	DurationByType map[models.ActivityType]float64
}

// BlockDuration returns the block's length in hours. An end time
// earlier than the start denotes an interval crossing midnight and is
// counted as (24 - start) + end. Unparseable times yield zero; the
// result is never negative.
func BlockDuration(block models.TimeBlock) float64 {
	start, err := utils.ParseClock(block.StartTime)
	if err != nil {
		return 0
	}
	end, err := utils.ParseClock(block.EndTime)
	if err != nil {
		return 0
	}
	if end < start {
		return (24 - start) + end
	}
	return end - start
}

// TotalOccupied sums the durations of all occupied blocks.
func TotalOccupied(state models.ScheduleState) float64 {
	var total float64
	for _, b := range state.TimeBlocks {
		if b.Type == models.BlockOccupied {
			total += BlockDuration(b)
		}
	}
	return total
}

// TotalFree returns the available weekly hours not covered by occupied
// blocks, floored at zero.
func (c Config) TotalFree(state models.ScheduleState) float64 {
	free := c.AvailableHoursPerWeek - TotalOccupied(state)
	if free < 0 {
		return 0
	}
	return free
}

// DurationByType sums weekly hours attributed to one category: the
// occupied blocks tagged with it, plus the raw duration of activities
// of that category that have no resolvable linked block, multiplied by
// their preferred-day count.
func DurationByType(state models.ScheduleState, t models.ActivityType) float64 {
	var total float64
	for _, b := range state.TimeBlocks {
		if b.Type == models.BlockOccupied && b.ActivityType == t {
			total += BlockDuration(b)
		}
	}
	for _, a := range state.Activities {
		if a.Type != t {
			continue
		}
		if a.TimeBlockID != "" {
			if _, ok := state.FindTimeBlock(a.TimeBlockID); ok {
				// Already counted through the owned block.
				continue
			}
		}
		days := len(a.PreferredDays)
		if days < 1 {
			days = 1
		}
		total += a.Duration * float64(days)
	}
	return total
}

// Productivity returns the share of available weekly hours spent on
// productive categories, as an integer percentage capped at 100.
func (c Config) Productivity(state models.ScheduleState) int {
	var productive float64
	for _, t := range c.ProductiveTypes {
		productive += DurationByType(state, t)
	}
	if c.AvailableHoursPerWeek <= 0 {
		return 0
	}
	pct := int(math.Round(productive / c.AvailableHoursPerWeek * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Compute returns the full metrics snapshot for the state.
func (c Config) Compute(state models.ScheduleState) Summary {
	byType := make(map[models.ActivityType]float64)
	for _, t := range []models.ActivityType{
		models.TypeAcademic,
		models.TypeWork,
		models.TypeStudy,
		models.TypeExercise,
		models.TypeRest,
		models.TypeSocial,
		models.TypePersonal,
		models.TypeOther,
	} {
		byType[t] = DurationByType(state, t)
	}
	return Summary{
		TotalOccupied:  TotalOccupied(state),
		TotalFree:      c.TotalFree(state),
		Productivity:   c.Productivity(state),
		DurationByType: byType,
	}
}
