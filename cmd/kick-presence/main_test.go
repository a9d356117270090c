package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kickpresence/kick-presence/internal/app"
	"github.com/kickpresence/kick-presence/internal/config"
	"github.com/kickpresence/kick-presence/internal/logger"
	"github.com/kickpresence/kick-presence/internal/mock"
)

func TestPrintBuildInfo_DefaultsToNA(t *testing.T) {
	buildVersion, buildDate, buildCommit = "", "", ""

	var buf bytes.Buffer
	printBuildInfo(&buf)

	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}

func TestPrintBuildInfo_UsesLinkerValues(t *testing.T) {
	buildVersion, buildDate, buildCommit = "v0.1.0", "2026-10-17", "abc123"
	t.Cleanup(func() { buildVersion, buildDate, buildCommit = "", "", "" })

	var buf bytes.Buffer
	printBuildInfo(&buf)

	assert.Contains(t, buf.String(), "Build version: v0.1.0")
	assert.Contains(t, buf.String(), "Build date: 2026-10-17")
	assert.Contains(t, buf.String(), "Build commit: abc123")
}

// prepareRun isolates HOME and the KICK_PRESENCE_* variables and restores
// process-wide logging when the test ends.
func prepareRun(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{"CONFIG", "LOG_LEVEL", "LOG_FILE", "LOG_FORMAT"} {
		t.Setenv(config.EnvPrefix+name, "")
	}

	t.Cleanup(func() {
		logger.Setup(logger.Options{Level: "INFO", Console: io.Discard, Diagnostics: io.Discard})
	})
	return home
}

func loadOptions(t *testing.T) *config.Options {
	t.Helper()

	opts, err := config.LoadOptions()
	require.NoError(t, err)
	return opts
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_CreatesDefaultConfigAndPrintsBanner(t *testing.T) {
	home := prepareRun(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), loadOptions(t), &out))

	path := filepath.Join(home, config.AppDirName, config.FileName)
	assert.FileExists(t, path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"check_interval": 30`)

	assert.Contains(t, out.String(), "Kick Presence starting...")
	assert.Contains(t, out.String(), "This is a placeholder. Full implementation coming soon.")
	assert.Contains(t, out.String(), "(no channel configured)")
	assert.Contains(t, out.String(), "Kick Presence initialized successfully")
}

func TestRun_UsesConfigFromEnvironment(t *testing.T) {
	dir := prepareRun(t)
	path := writeSettings(t, dir, `{"kick": {"username": "from-env-path"}}`)
	t.Setenv(config.EnvPrefix+"CONFIG", path)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), loadOptions(t), &out))

	assert.Contains(t, out.String(), "Kick channel: from-env-path")
	assert.NoFileExists(t, filepath.Join(dir, config.AppDirName, config.FileName))
}

func TestRun_EnvironmentLevelBeatsSettingsFile(t *testing.T) {
	dir := prepareRun(t)
	path := writeSettings(t, dir, `{"logging": {"level": "DEBUG"}}`)
	t.Setenv(config.EnvPrefix+"CONFIG", path)
	t.Setenv(logger.EnvLevel, "ERROR")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), loadOptions(t), &out))

	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
	assert.NotContains(t, out.String(), "Kick Presence starting...")
	assert.Contains(t, out.String(), "This is a placeholder.")
}

func TestRun_SettingsFileLevelApplies(t *testing.T) {
	dir := prepareRun(t)
	path := writeSettings(t, dir, `{"logging": {"level": "DEBUG"}}`)
	t.Setenv(config.EnvPrefix+"CONFIG", path)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), loadOptions(t), &out))

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestRun_AppFailureIsLoggedNotReturned(t *testing.T) {
	prepareRun(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any()).Return(errors.New("banner broke"))

	saved := newRunner
	newRunner = func(app.SettingsStore, io.Writer) app.Runner { return runner }
	t.Cleanup(func() { newRunner = saved })

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), loadOptions(t), &out))

	assert.Contains(t, out.String(), "app run error")
	assert.Contains(t, out.String(), "banner broke")
}

func TestRun_UnusableHomeFails(t *testing.T) {
	prepareRun(t)

	notADir := filepath.Join(t.TempDir(), "home")
	require.NoError(t, os.WriteFile(notADir, nil, 0o644))
	t.Setenv("HOME", notADir)

	var out bytes.Buffer
	err := run(context.Background(), loadOptions(t), &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading configuration")
}
