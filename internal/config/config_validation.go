// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

package config

import (
	"errors"
	"fmt"

	"github.com/kickpresence/kick-presence/internal/logger"
)

// Validate checks the snapshot for values the application cannot use.
//
// All problems are reported together via errors.Join; each one wraps
// ErrInvalidKickSettings or ErrInvalidLoggingSettings.
func (cfg Settings) Validate() error {
	var errs []error

	if cfg.Kick.CheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: check_interval must be positive, got %s",
			ErrInvalidKickSettings, cfg.Kick.CheckInterval))
	}

	if _, err := logger.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLoggingSettings, err))
	}

	return errors.Join(errs...)
}
