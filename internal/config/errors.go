package config

import "errors"

// Errors returned by Store.Set and by document decoding.
var (
	// ErrEmptyKey indicates an empty key or a key with an empty segment
	// (for example "kick..username").
	ErrEmptyKey = errors.New("empty config key")
	// ErrNotAMapping indicates that Set had to descend through a value that
	// is not a mapping (for example "kick.username.x" while kick.username
	// holds a string).
	ErrNotAMapping = errors.New("config value is not a mapping")
	// ErrNotAnObject indicates a config file whose top-level JSON value is
	// not an object.
	ErrNotAnObject = errors.New("config root is not a json object")
	// ErrTrailingData indicates extra content after the top-level JSON value.
	ErrTrailingData = errors.New("unexpected data after json config")
)

// Validation errors returned by [Settings.Validate].
var (
	// ErrInvalidKickSettings indicates invalid Kick monitoring settings
	// (for example, a non-positive check interval).
	ErrInvalidKickSettings = errors.New("invalid kick configuration")
	// ErrInvalidLoggingSettings indicates an unknown log level name.
	ErrInvalidLoggingSettings = errors.New("invalid logging configuration")
)
