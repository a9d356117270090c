// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

package logger

import "errors"

var (
	// ErrUnknownLevel is returned by ParseLevel for names it does not know.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormatPart reports a format template part other than time,
	// name, level, message or caller.
	ErrUnknownFormatPart = errors.New("unknown log format part")
)
