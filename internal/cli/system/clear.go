package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
)

type ClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title("Clear all time blocks and activities?").
			Description("Settings are kept. This cannot be undone.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	if _, err := ctx.Dispatch(engine.ClearSchedule{}); err != nil {
		return err
	}
	fmt.Println("Schedule cleared")
	return nil
}
