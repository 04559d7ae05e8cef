package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
)

type ImportCmd struct {
	File string `arg:"" help:"Snapshot file to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot engine.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	state, err := ctx.Dispatch(engine.ImportSchedule{Snapshot: snapshot})
	if err != nil {
		return err
	}

	fmt.Printf("Imported schedule: %d blocks, %d activities\n", len(state.TimeBlocks), len(state.Activities))
	return nil
}
