package blocks

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
	"github.com/julianstephens/zenith/internal/models"
	"github.com/julianstephens/zenith/internal/utils"
)

type BlockEditCmd struct {
	ID           string `arg:"" help:"Block ID."`
	Title        string `help:"New title."`
	Day          string `short:"d" help:"New weekday."`
	Start        string `short:"s" help:"New start time (HH:MM)."`
	End          string `short:"e" help:"New end time (HH:MM)."`
	Description  string `help:"New description."`
	Location     string `short:"l" help:"New location."`
	ActivityType string `short:"a" help:"New activity category."`
	Color        string `help:"New display color."`
}

func (c *BlockEditCmd) Validate() error {
	if c.Day != "" {
		if _, err := models.ParseWeekday(c.Day); err != nil {
			return err
		}
	}
	if c.Start != "" && !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	if c.End != "" && !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time format (expected HH:MM): %s", c.End)
	}
	if c.ActivityType != "" {
		if _, err := models.ParseActivityType(c.ActivityType); err != nil {
			return err
		}
	}
	return nil
}

func (c *BlockEditCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	block, ok := state.FindTimeBlock(c.ID)
	if !ok {
		return fmt.Errorf("block not found: %s", c.ID)
	}

	if c.Title != "" {
		block.Title = c.Title
	}
	if c.Day != "" {
		block.Day, _ = models.ParseWeekday(c.Day)
	}
	if c.Start != "" {
		block.StartTime = c.Start
	}
	if c.End != "" {
		block.EndTime = c.End
	}
	if c.Description != "" {
		block.Description = c.Description
	}
	if c.Location != "" {
		block.Location = c.Location
	}
	if c.ActivityType != "" {
		block.ActivityType = models.ActivityType(c.ActivityType)
	}
	if c.Color != "" {
		block.Color = c.Color
	}

	if _, err := ctx.Dispatch(engine.UpdateTimeBlock{Block: block}); err != nil {
		return err
	}

	fmt.Printf("Updated block: %s on %s %s-%s\n", block.Title, block.Day, block.StartTime, block.EndTime)
	return nil
}
