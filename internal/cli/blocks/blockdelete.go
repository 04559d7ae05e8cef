package blocks

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
)

type BlockDeleteCmd struct {
	ID string `arg:"" help:"Block ID."`
}

func (c *BlockDeleteCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}
	if _, ok := state.FindTimeBlock(c.ID); !ok {
		return fmt.Errorf("block not found: %s", c.ID)
	}

	if _, err := ctx.Dispatch(engine.RemoveTimeBlock{ID: c.ID}); err != nil {
		return err
	}

	fmt.Printf("Deleted block: %s\n", c.ID)
	return nil
}
