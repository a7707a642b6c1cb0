package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/commutewell/internal/cli"
	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/errors"
	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/watch"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (SQLite .db, .json file) or PostgreSQL connection string. Connection strings must NOT embed credentials." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize commutewell storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Checkin cli.CheckinCmd `cmd:"" help:"Record today's mood check-in."`
	Task    struct {
		List   cli.TaskListCmd   `cmd:"" help:"Show a day's wellness checklist." default:"1"`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a checklist task."`
	} `cmd:"" help:"Manage the daily wellness checklist."`
	Commute struct {
		Set  cli.CommuteSetCmd  `cmd:"" help:"Configure the standing commute."`
		Log  cli.CommuteLogCmd  `cmd:"" help:"Log today's commute."`
		Show cli.CommuteShowCmd `cmd:"" help:"Show the commute profile and history." default:"1"`
	} `cmd:"" help:"Manage commute configuration and log."`
	Score  cli.ScoreCmd  `cmd:"" help:"Show the current wellness snapshot."`
	Sync   cli.SyncCmd   `cmd:"" help:"Push the current snapshot to the display device."`
	Serve  cli.ServeCmd  `cmd:"" help:"Run the route/prediction HTTP API."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Key struct {
		Set    cli.SetOpenAIKeyCmd    `cmd:"" help:"Store the OpenAI API key in the OS keyring."`
		Delete cli.DeleteOpenAIKeyCmd `cmd:"" help:"Remove the OpenAI API key from the OS keyring."`
	} `cmd:"" help:"Manage the OpenAI API key used by the prediction annotator."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Commute wellness tracker: daily check-ins, checklist, and a traffic-aware score"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if storage.IsPostgresConn(CLI.Config) && storage.HasEmbeddedCredentials(CLI.Config) {
		fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
		fmt.Fprintln(os.Stderr, "       Use PGPASSWORD, a .pgpass file, or a credential-free connection string.")
		os.Exit(1)
	}

	configDir := filepath.Dir(storage.ExpandPath(CLI.Config))
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store := storage.FromConfig(CLI.Config)
	appCtx := &cli.Context{
		Store: store,
		Hub:   watch.NewHub(),
	}

	// Every command except init expects an existing store
	if sel := ctx.Selected(); sel != nil && sel.Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		errors.Fatal(err)
	}
}
