package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kickpresence/kick-presence/internal/logger"
)

// ── optionsBuilder ────────────────────────────────────────────────────────────

// TestNewOptionsBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewOptionsBuilder_InitialState(t *testing.T) {
	b := newOptionsBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// TestBuild_EmptyBuilder verifies that building with no layers returns zero
// options.
func TestBuild_EmptyBuilder(t *testing.T) {
	opts, err := newOptionsBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &Options{}, opts)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil options.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newOptionsBuilder()
	b.err = assert.AnError

	opts, err := b.build()
	assert.Nil(t, opts)
	require.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that non-zero fields of later layers
// win while zero fields keep earlier values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newOptionsBuilder()
	b.layers = append(b.layers,
		&Options{ConfigPath: "/first.json", Log: LogOptions{Level: "INFO", Format: "time message"}},
		&Options{Log: LogOptions{Level: "DEBUG"}},
	)

	opts, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/first.json", opts.ConfigPath)
	assert.Equal(t, "DEBUG", opts.Log.Level)
	assert.Equal(t, "time message", opts.Log.Format)
}

// ── LoadOptions ───────────────────────────────────────────────────────────────

func TestLoadOptions_Defaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"KICK_PRESENCE_CONFIG":     "",
		"KICK_PRESENCE_LOG_LEVEL":  "",
		"KICK_PRESENCE_LOG_FILE":   "",
		"KICK_PRESENCE_LOG_FORMAT": "",
	})

	opts, err := LoadOptions()

	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
	assert.Equal(t, logger.DefaultFormat, opts.Log.Format)
}

func TestLoadOptions_EnvironmentWins(t *testing.T) {
	setEnvVars(t, map[string]string{
		"KICK_PRESENCE_CONFIG":     "~/elsewhere.json",
		"KICK_PRESENCE_LOG_FORMAT": "level message",
		"KICK_PRESENCE_LOG_FILE":   "",
	})

	opts, err := LoadOptions()

	require.NoError(t, err)
	assert.Equal(t, "~/elsewhere.json", opts.ConfigPath)
	assert.Equal(t, "level message", opts.Log.Format)
	assert.Empty(t, opts.Log.File)
}

// ── LogOptions ────────────────────────────────────────────────────────────────

func TestLogOptions_WithSettingsFillsGaps(t *testing.T) {
	base := LogOptions{Level: "ERROR", Format: "level message"}

	got, err := base.WithSettings(LoggingSettings{Level: "DEBUG", File: "/tmp/kick.log"})

	require.NoError(t, err)
	assert.Equal(t, LogOptions{Level: "ERROR", File: "/tmp/kick.log", Format: "level message"}, got)
}

func TestLogOptions_LoggerOptions(t *testing.T) {
	got := LogOptions{Level: "WARNING", File: "/x.log", Format: "message"}.LoggerOptions()

	assert.Equal(t, logger.Options{Level: "WARNING", File: "/x.log", Format: "message"}, got)
}
