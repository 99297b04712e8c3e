package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.festserve.dev/festserve-cli/common/config"
)

func TestIsSameDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	assert.True(t, isSameDay(morning, morning.Add(10*time.Hour)))
	assert.False(t, isSameDay(morning, morning.Add(24*time.Hour)))
	assert.False(t, isSameDay(time.Time{}, morning))
}

//nolint:paralleltest // swaps the config dir and lastLoggedTime
func TestLastLoggedTimeRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "festserve")
	orig := config.GetCLIConfigDir
	//nolint:reassign // test code
	config.GetCLIConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() {
		//nolint:reassign // test code
		config.GetCLIConfigDir = orig
	})

	got, err := getLastLoggedTime()
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	now := time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC)
	require.NoError(t, updateLastLoggedTime(now))

	got, err = getLastLoggedTime()
	require.NoError(t, err)
	assert.True(t, isSameDay(now, got))

	info, err := os.Stat(filepath.Join(dir, timestampFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	lastLoggedTime = got
	t.Cleanup(func() { lastLoggedTime = time.Time{} })
	assert.False(t, shouldCapture(RunningEvent, now.Add(time.Hour)))
	assert.True(t, shouldCapture(RunningEvent, now.Add(24*time.Hour)))
	assert.True(t, shouldCapture(PostInstallationEvent, now))
}

func TestSentryHookLevels(t *testing.T) {
	t.Parallel()

	levels := SentryHook{}.Levels()
	assert.Contains(t, levels, zerolog.ErrorLevel)
	assert.Contains(t, levels, zerolog.WarnLevel)
	assert.NotContains(t, levels, zerolog.DebugLevel)

	// Disabled sentry must make the hook a no-op.
	assert.NotPanics(t, func() { SentryHook{}.Run(nil, zerolog.ErrorLevel, "boom") })
}

//nolint:paralleltest // toggles the package-level sentry state
func TestSentryFlushRepanics(t *testing.T) {
	sentryInitialized = true
	t.Cleanup(func() { sentryInitialized = false })

	assert.PanicsWithValue(t, "boom", func() {
		defer SentryFlush()
		panic("boom")
	})
	assert.False(t, sentryInitialized)
}

//nolint:paralleltest // toggles the package-level sentry state
func TestSentryFlushWithoutPanic(t *testing.T) {
	sentryInitialized = true
	t.Cleanup(func() { sentryInitialized = false })

	assert.NotPanics(t, func() {
		defer SentryFlush()
	})
	assert.False(t, sentryInitialized)
}
