// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

package config

import (
	"github.com/kickpresence/kick-presence/internal/logger"
)

// EnvPrefix is prepended to every environment variable read into Options.
const EnvPrefix = "KICK_PRESENCE_"

// Options are the process-level settings resolved before the Store exists.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields, after EnvPrefix.
type Options struct {
	// ConfigPath overrides the settings file location.
	// Env: KICK_PRESENCE_CONFIG
	ConfigPath string `env:"CONFIG"`

	// Log holds the logging bootstrap settings.
	Log LogOptions `envPrefix:"LOG_"`
}

// LogOptions mirrors logger.Options for the values that may come from the
// environment or the settings file.
type LogOptions struct {
	// Level is a level name (DEBUG, INFO, WARNING, ERROR, CRITICAL).
	// Env: KICK_PRESENCE_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional log file path.
	// Env: KICK_PRESENCE_LOG_FILE
	File string `env:"FILE"`

	// Format is the console part order, e.g. "time name level message".
	// Env: KICK_PRESENCE_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// DefaultOptions returns the built-in option values.
func DefaultOptions() *Options {
	return &Options{
		Log: LogOptions{
			Format: logger.DefaultFormat,
		},
	}
}

// LoadOptions merges DefaultOptions with the environment; set environment
// variables win.
func LoadOptions() (*Options, error) {
	return newOptionsBuilder().
		withDefaults().
		withEnv().
		build()
}

// LoggerOptions converts o into logger.Options.
func (o LogOptions) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  o.Level,
		File:   o.File,
		Format: o.Format,
	}
}

// WithSettings fills the fields of o that are still empty from the logging
// section of the settings file.
func (o LogOptions) WithSettings(s LoggingSettings) (LogOptions, error) {
	return fillLogOptions(o, LogOptions{Level: s.Level, File: s.File})
}
