package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/orgtools/teamdir/pkg/oskeyring"
)

type cliCtx struct {
	context.Context
	Logger    *slog.Logger
	OSKeyring oskeyring.Service
	Debug     bool
}

type cli struct {
	Validate ValidateCmd `cmd:"" help:"Validate the data repository"`
	Checks   ChecksCmd   `cmd:"" help:"List the registered validation checks"`
	Auth     AuthCmd     `cmd:"" help:"Manage GitHub credentials"`

	Verbose bool             `help:"Enable debug logging" short:"v"`
	Version kong.VersionFlag `help:"Show version"`
}

// Execute parses the command line and runs the selected command.
func Execute(version string) {
	// A local .env can carry the directory credentials.
	_ = godotenv.Load()

	var cli cli
	ctx := kong.Parse(&cli,
		kong.UsageOnError(),
		kong.Name("teamdir"),
		kong.Description("teamdir validates the consistency of a team data repository"),
		kong.Vars{"version": version},
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := ctx.Run(&cliCtx{
		Context:   context.Background(),
		Logger:    logger,
		OSKeyring: oskeyring.NewDefaultService(),
		Debug:     cli.Verbose,
	})
	ctx.FatalIfErrorf(err)
}
