package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/cli/activities"
	"github.com/julianstephens/zenith/internal/cli/backups"
	"github.com/julianstephens/zenith/internal/cli/blocks"
	"github.com/julianstephens/zenith/internal/cli/insights"
	"github.com/julianstephens/zenith/internal/cli/settings"
	"github.com/julianstephens/zenith/internal/cli/system"
	"github.com/julianstephens/zenith/internal/constants"
	"github.com/julianstephens/zenith/internal/errors"
	"github.com/julianstephens/zenith/internal/logger"
	"github.com/julianstephens/zenith/internal/metrics"
	"github.com/julianstephens/zenith/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path. A .json extension selects the JSON store, anything else SQLite." default:"~/.config/zenith/zenith.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      system.InitCmd        `cmd:"" help:"Initialize zenith storage."`
	Dashboard insights.DashboardCmd `cmd:"" help:"Show the weekly overview." default:"1"`
	Tips      insights.TipsCmd      `cmd:"" help:"Show study and time-management recommendations."`
	Clear     system.ClearCmd       `cmd:"" help:"Remove all blocks and activities."`
	Export    system.ExportCmd      `cmd:"" help:"Export the schedule as a JSON snapshot."`
	Import    system.ImportCmd      `cmd:"" help:"Import a JSON snapshot into the schedule."`
	Block     struct {
		Add    blocks.BlockAddCmd    `cmd:"" help:"Add a new time block."`
		Edit   blocks.BlockEditCmd   `cmd:"" help:"Edit an existing time block."`
		Delete blocks.BlockDeleteCmd `cmd:"" help:"Delete a time block."`
		List   blocks.BlockListCmd   `cmd:"" help:"List time blocks by day."`
	} `cmd:"" help:"Manage weekly time blocks."`
	Activity struct {
		Add    activities.ActivityAddCmd    `cmd:"" help:"Add a new activity."`
		Edit   activities.ActivityEditCmd   `cmd:"" help:"Edit an existing activity."`
		Delete activities.ActivityDeleteCmd `cmd:"" help:"Delete an activity."`
		List   activities.ActivityListCmd   `cmd:"" help:"List all activities."`
	} `cmd:"" help:"Manage planned activities."`
	Backup struct {
		Create  backups.CreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.ListCmd    `cmd:"" help:"List available backups."`
		Restore backups.RestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage state backups."`
	Settings struct {
		Show settings.ShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  settings.SetCmd  `cmd:"" help:"Change one or more settings."`
	} `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly schedule and activity planner for students"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{
		Store:   store,
		Metrics: metrics.DefaultConfig(),
	}

	// The init command creates the store itself.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
