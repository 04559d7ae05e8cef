package blocks

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
	"github.com/julianstephens/zenith/internal/models"
	"github.com/julianstephens/zenith/internal/utils"
)

type BlockAddCmd struct {
	Title        string `arg:"" help:"Block title."`
	Day          string `short:"d" help:"Weekday (lunes..domingo)." required:""`
	Start        string `short:"s" help:"Start time (HH:MM)." required:""`
	End          string `short:"e" help:"End time (HH:MM). An end before the start crosses midnight." required:""`
	Type         string `short:"t" help:"Block type (occupied|free)." default:"occupied"`
	Description  string `help:"Optional description."`
	Location     string `short:"l" help:"Optional location."`
	ActivityType string `short:"a" help:"Optional activity category (academic|work|study|exercise|rest|social|personal|other)."`
	Color        string `help:"Optional display color."`
}

func (c *BlockAddCmd) Validate() error {
	if _, err := models.ParseWeekday(c.Day); err != nil {
		return err
	}
	if !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	if !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time format (expected HH:MM): %s", c.End)
	}
	if c.Type != string(models.BlockOccupied) && c.Type != string(models.BlockFree) {
		return fmt.Errorf("invalid block type: %s", c.Type)
	}
	if c.ActivityType != "" {
		if _, err := models.ParseActivityType(c.ActivityType); err != nil {
			return err
		}
	}
	return nil
}

func (c *BlockAddCmd) Run(ctx *cli.Context) error {
	day, _ := models.ParseWeekday(c.Day)

	block := models.TimeBlock{
		Day:          day,
		StartTime:    c.Start,
		EndTime:      c.End,
		Type:         models.BlockType(c.Type),
		Title:        c.Title,
		Description:  c.Description,
		Location:     c.Location,
		ActivityType: models.ActivityType(c.ActivityType),
		Color:        c.Color,
	}

	state, err := ctx.Dispatch(engine.AddTimeBlock{Block: block})
	if err != nil {
		return err
	}

	added := state.TimeBlocks[len(state.TimeBlocks)-1]
	fmt.Printf("Added block: %s on %s %s-%s (ID: %s)\n", added.Title, added.Day, added.StartTime, added.EndTime, added.ID)
	return nil
}
