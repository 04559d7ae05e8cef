package activities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
	"github.com/julianstephens/zenith/internal/models"
)

type ActivityAddCmd struct {
	Name        string  `arg:"" optional:"" help:"Activity name."`
	Type        string  `short:"t" help:"Activity category (academic|work|study|exercise|rest|social|personal|other)."`
	Duration    float64 `short:"d" help:"Target duration in hours."`
	Priority    string  `short:"p" help:"Priority (high|medium|low)." default:"medium"`
	Description string  `help:"Optional description."`
	StartHour   int     `help:"Preferred start hour (0-23). Requires --end-hour and --days." default:"-1"`
	EndHour     int     `help:"Preferred end hour (0-23). Requires --start-hour and --days." default:"-1"`
	Days        string  `help:"Comma-separated preferred weekdays (lunes..domingo)."`
	Interactive bool    `short:"i" help:"Fill in the activity through an interactive form."`
}

func (c *ActivityAddCmd) Validate() error {
	if c.Interactive {
		return nil
	}
	if c.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if c.Type == "" {
		return fmt.Errorf("activity type is required")
	}
	if _, err := models.ParseActivityType(c.Type); err != nil {
		return err
	}
	if _, err := models.ParsePriority(c.Priority); err != nil {
		return err
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if (c.StartHour >= 0) != (c.EndHour >= 0) {
		return fmt.Errorf("--start-hour and --end-hour must be given together")
	}
	if c.StartHour > 23 || c.EndHour > 23 {
		return fmt.Errorf("hours must be between 0 and 23")
	}
	if c.StartHour >= 0 && c.Days == "" {
		return fmt.Errorf("--days is required when a preferred time is given")
	}
	if c.Days != "" {
		if _, err := cli.ParseDays(c.Days); err != nil {
			return err
		}
	}
	return nil
}

func (c *ActivityAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive {
		if err := c.runForm(); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}

	activity := models.Activity{
		Name:        c.Name,
		Type:        models.ActivityType(c.Type),
		Duration:    c.Duration,
		Priority:    models.Priority(c.Priority),
		Description: c.Description,
	}

	if c.StartHour >= 0 && c.EndHour >= 0 && c.Days != "" {
		days, err := cli.ParseDays(c.Days)
		if err != nil {
			return err
		}
		activity.PreferredTime = &models.PreferredTime{
			StartHour: c.StartHour,
			EndHour:   c.EndHour,
		}
		activity.PreferredDays = days
	}

	state, err := ctx.Dispatch(engine.AddActivity{Activity: activity})
	if err != nil {
		return err
	}

	added := state.Activities[len(state.Activities)-1]
	fmt.Printf("Added activity: %s (ID: %s)\n", added.Name, added.ID)
	if added.TimeBlockID != "" {
		block, _ := state.FindTimeBlock(added.TimeBlockID)
		fmt.Printf("Scheduled block on %s %s-%s (ID: %s)\n", block.Day, block.StartTime, block.EndTime, block.ID)
	}
	return nil
}

// runForm collects the activity fields interactively.
func (c *ActivityAddCmd) runForm() error {
	typeOptions := []huh.Option[string]{
		huh.NewOption("Academic", string(models.TypeAcademic)),
		huh.NewOption("Work", string(models.TypeWork)),
		huh.NewOption("Study", string(models.TypeStudy)),
		huh.NewOption("Exercise", string(models.TypeExercise)),
		huh.NewOption("Rest", string(models.TypeRest)),
		huh.NewOption("Social", string(models.TypeSocial)),
		huh.NewOption("Personal", string(models.TypePersonal)),
		huh.NewOption("Other", string(models.TypeOther)),
	}

	var durationStr, startStr, endStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&c.Name),
			huh.NewSelect[string]().Title("Category").Options(typeOptions...).Value(&c.Type),
			huh.NewInput().Title("Duration (hours)").Value(&durationStr),
			huh.NewSelect[string]().Title("Priority").Options(
				huh.NewOption("High", string(models.PriorityHigh)),
				huh.NewOption("Medium", string(models.PriorityMedium)),
				huh.NewOption("Low", string(models.PriorityLow)),
			).Value(&c.Priority),
			huh.NewInput().Title("Description (optional)").Value(&c.Description),
		),
		huh.NewGroup(
			huh.NewInput().Title("Preferred start hour (0-23, empty to skip)").Value(&startStr),
			huh.NewInput().Title("Preferred end hour (0-23, empty to skip)").Value(&endStr),
			huh.NewInput().Title("Preferred days (comma-separated, empty to skip)").Value(&c.Days),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if durationStr != "" {
		d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64)
		if err != nil {
			return fmt.Errorf("invalid duration: %s", durationStr)
		}
		c.Duration = d
	}
	c.StartHour = -1
	c.EndHour = -1
	if startStr != "" {
		h, err := strconv.Atoi(strings.TrimSpace(startStr))
		if err != nil {
			return fmt.Errorf("invalid start hour: %s", startStr)
		}
		c.StartHour = h
	}
	if endStr != "" {
		h, err := strconv.Atoi(strings.TrimSpace(endStr))
		if err != nil {
			return fmt.Errorf("invalid end hour: %s", endStr)
		}
		c.EndHour = h
	}
	return nil
}
