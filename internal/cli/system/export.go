package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
)

type ExportCmd struct {
	Output string `short:"o" help:"File to write the snapshot to. Defaults to stdout."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	settings := state.Settings
	snapshot := engine.Snapshot{
		TimeBlocks: state.TimeBlocks,
		Activities: state.Activities,
		Settings:   &settings,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	if c.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	fmt.Printf("Exported schedule to %s\n", c.Output)
	return nil
}
