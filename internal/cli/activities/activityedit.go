package activities

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
	"github.com/julianstephens/zenith/internal/models"
)

type ActivityEditCmd struct {
	ID          string  `arg:"" help:"Activity ID."`
	Name        string  `help:"New name."`
	Type        string  `short:"t" help:"New activity category."`
	Duration    float64 `short:"d" help:"New target duration in hours." default:"-1"`
	Priority    string  `short:"p" help:"New priority (high|medium|low)."`
	Description string  `help:"New description."`
	StartHour   int     `help:"New preferred start hour (0-23)." default:"-1"`
	EndHour     int     `help:"New preferred end hour (0-23)." default:"-1"`
	Days        string  `help:"New comma-separated preferred weekdays."`
	NoSchedule  bool    `help:"Drop the scheduling preference; the generated block is removed."`
}

func (c *ActivityEditCmd) Validate() error {
	if c.Type != "" {
		if _, err := models.ParseActivityType(c.Type); err != nil {
			return err
		}
	}
	if c.Priority != "" {
		if _, err := models.ParsePriority(c.Priority); err != nil {
			return err
		}
	}
	if c.StartHour > 23 || c.EndHour > 23 {
		return fmt.Errorf("hours must be between 0 and 23")
	}
	if c.Days != "" {
		if _, err := cli.ParseDays(c.Days); err != nil {
			return err
		}
	}
	if c.NoSchedule && (c.StartHour >= 0 || c.EndHour >= 0 || c.Days != "") {
		return fmt.Errorf("--no-schedule cannot be combined with preference flags")
	}
	return nil
}

func (c *ActivityEditCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	activity, ok := state.FindActivity(c.ID)
	if !ok {
		return fmt.Errorf("activity not found: %s", c.ID)
	}
	activity = activity.Clone()

	if c.Name != "" {
		activity.Name = c.Name
	}
	if c.Type != "" {
		activity.Type = models.ActivityType(c.Type)
	}
	if c.Duration >= 0 {
		activity.Duration = c.Duration
	}
	if c.Priority != "" {
		activity.Priority = models.Priority(c.Priority)
	}
	if c.Description != "" {
		activity.Description = c.Description
	}
	if c.NoSchedule {
		activity.PreferredTime = nil
		activity.PreferredDays = nil
	}
	if c.StartHour >= 0 || c.EndHour >= 0 {
		pt := models.PreferredTime{}
		if activity.PreferredTime != nil {
			pt = *activity.PreferredTime
		}
		if c.StartHour >= 0 {
			pt.StartHour = c.StartHour
		}
		if c.EndHour >= 0 {
			pt.EndHour = c.EndHour
		}
		activity.PreferredTime = &pt
	}
	if c.Days != "" {
		days, err := cli.ParseDays(c.Days)
		if err != nil {
			return err
		}
		activity.PreferredDays = days
	}

	next, err := ctx.Dispatch(engine.UpdateActivity{Activity: activity})
	if err != nil {
		return err
	}

	updated, _ := next.FindActivity(c.ID)
	fmt.Printf("Updated activity: %s\n", updated.Name)
	if updated.TimeBlockID != "" {
		if block, ok := next.FindTimeBlock(updated.TimeBlockID); ok {
			fmt.Printf("Scheduled block on %s %s-%s\n", block.Day, block.StartTime, block.EndTime)
		}
	} else if activity.TimeBlockID != "" || c.NoSchedule {
		fmt.Println("No scheduled block")
	}
	return nil
}
