package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kickpresence/kick-presence/internal/logger"
)

// App is the kick-presence runtime.
type App struct {
	store SettingsStore
	out   io.Writer
}

var _ Runner = (*App)(nil)

// Option configures an App.
type Option func(*App)

// WithOutput directs the banner to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// New returns an App reading its settings from store and printing to stdout.
func New(store SettingsStore, opts ...Option) *App {
	a := &App{store: store, out: os.Stdout}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run reports the configuration, warns about unusable settings and prints the
// placeholder banner. The logger is taken from ctx.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).Named("app")

	log.Info().Msg("Kick Presence starting...")
	log.Info().
		Str("path", a.store.Path()).
		Msgf("Configuration loaded: %s", a.store.String())

	settings := a.store.Settings()
	if err := settings.Validate(); err != nil {
		for _, problem := range unwrapJoined(err) {
			log.Warn().Err(problem).Msg("invalid setting")
		}
	}

	// TODO: start the Kick channel poller and the Discord presence client
	// once those packages exist; both read their settings from a.store.
	if _, err := fmt.Fprintln(a.out, renderBanner(settings)); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	log.Info().Msg("Kick Presence initialized successfully")
	return nil
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
