package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kickpresence/kick-presence/internal/app"
	"github.com/kickpresence/kick-presence/internal/config"
	"github.com/kickpresence/kick-presence/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// newRunner builds the application for run; tests replace it.
var newRunner = func(store app.SettingsStore, out io.Writer) app.Runner {
	return app.New(store, app.WithOutput(out))
}

func main() {
	printBuildInfo(os.Stdout)

	opts, err := config.LoadOptions()
	if err != nil {
		logger.NewConsole(os.Stderr).Fatal().Err(err).Msg("error getting options")
	}

	if err = run(context.Background(), opts, os.Stdout); err != nil {
		logger.NewConsole(os.Stderr).Fatal().Err(err).Msg("startup error")
	}
}

// run sets up logging, opens the settings store and runs the application,
// writing console logs and the banner to out. It only fails when the store
// cannot be created; an application error is logged.
func run(ctx context.Context, opts *config.Options, out io.Writer) error {
	log := setupLogging(opts.Log, out)

	store, err := config.New(opts.ConfigPath, config.WithLogger(log.Named("config")))
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	// environment values win over the logging section of the settings file
	logOpts, err := opts.Log.WithSettings(store.Settings().Logging)
	if err != nil {
		log.Warn().Err(err).Msg("error applying logging settings")
	} else {
		log = setupLogging(logOpts, out)
	}

	if err = newRunner(store, out).Run(log.WithContext(ctx)); err != nil {
		log.Error().Err(err).Msg("app run error")
	}
	return nil
}

func setupLogging(opts config.LogOptions, console io.Writer) *logger.Logger {
	loggerOpts := opts.LoggerOptions()
	loggerOpts.Console = console
	return logger.Setup(loggerOpts)
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
