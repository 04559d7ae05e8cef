package activities

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
)

type ActivityDeleteCmd struct {
	ID string `arg:"" help:"Activity ID."`
}

func (c *ActivityDeleteCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}
	activity, ok := state.FindActivity(c.ID)
	if !ok {
		return fmt.Errorf("activity not found: %s", c.ID)
	}

	if _, err := ctx.Dispatch(engine.RemoveActivity{ID: c.ID}); err != nil {
		return err
	}

	fmt.Printf("Deleted activity: %s\n", activity.Name)
	if activity.TimeBlockID != "" {
		fmt.Printf("Removed its scheduled block: %s\n", activity.TimeBlockID)
	}
	return nil
}
