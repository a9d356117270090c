// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

package app

import (
	"context"

	"github.com/kickpresence/kick-presence/internal/config"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/app_mock.go -package=mock

// Runner defines the minimal lifecycle contract for runnable applications.
type Runner interface {
	// Run starts the application and blocks until it is done.
	Run(ctx context.Context) error
}

// SettingsStore is the part of *config.Store the application reads.
type SettingsStore interface {
	// Path returns the location of the settings file.
	Path() string
	// Settings returns a typed snapshot of the well-known sections.
	Settings() config.Settings
	// String renders the whole settings document.
	String() string
}
