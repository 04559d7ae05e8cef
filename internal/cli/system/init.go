package system

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized schedule storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
