package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/drakoger/tracker/internal/cli"
	"github.com/drakoger/tracker/internal/constants"
	"github.com/drakoger/tracker/internal/errors"
	"github.com/drakoger/tracker/internal/logger"
	"github.com/drakoger/tracker/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize tracker storage."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits (weekly-recurring trackers)."`
	Event    cli.EventCmd    `cmd:"" help:"Manage one-off events."`
	Category cli.CategoryCmd `cmd:"" help:"Manage categories."`
	Day      cli.DayCmd      `cmd:"" help:"Show trackers due on a day." default:"1"`
	Toggle   cli.ToggleCmd   `cmd:"" help:"Toggle completion for a tracker on a day."`
	Remove   cli.RemoveCmd   `cmd:"" help:"Delete a tracker and its completion records."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit and event tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.DB),
	}); err != nil {
		errors.Fatal(err)
	}

	store := sqlite.NewStore(CLI.DB)
	defer store.Close()

	errors.Fatal(ctx.Run(&cli.Context{Store: store}))
}
