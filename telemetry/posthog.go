package telemetry

import (
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/posthog/posthog-go"
	"github.com/rs/zerolog/log"
	"pkg.festserve.dev/festserve-cli/common/config"
)

const (
	PostInstallationEvent = "FestServe CLI Installation"
	RunningEvent          = "FestServe CLI Running"
	timestampFile         = "last-run"
	machineIDAppID        = "festserve-cli"
)

var (
	posthogClient      posthog.Client
	posthogInitialized bool
	lastLoggedTime     time.Time
)

// PosthogInit enables usage events. An empty key leaves them disabled.
func PosthogInit(posthogAPIKey string) {
	if posthogAPIKey == "" {
		return
	}
	posthogClient = posthog.New(posthogAPIKey)
	posthogInitialized = true

	lastTime, err := getLastLoggedTime()
	if err != nil {
		log.Err(err).Msg("Cannot get last logged time")
	}
	lastLoggedTime = lastTime

	if err := updateLastLoggedTime(time.Now()); err != nil {
		log.Err(err).Msg("Cannot update last logged time")
	}
}

// getLastLoggedTime reads the last run date. A missing file is the zero time.
func getLastLoggedTime() (time.Time, error) {
	filePath, err := getTimestampFilePath()
	if err != nil {
		return time.Time{}, err
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(time.DateOnly, string(data))
}

func getTimestampFilePath() (string, error) {
	dir, err := config.GetCLIConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, timestampFile), nil
}

func updateLastLoggedTime(timestamp time.Time) error {
	if err := config.SetupCLIConfigDir(); err != nil {
		return err
	}
	filePath, err := getTimestampFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(timestamp.Format(time.DateOnly)), 0o600)
}

func isSameDay(time1, time2 time.Time) bool {
	y1, m1, d1 := time1.Date()
	y2, m2, d2 := time2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// shouldCapture limits RunningEvent to once per day; other events always go out.
func shouldCapture(event string, now time.Time) bool {
	return event != RunningEvent || !isSameDay(lastLoggedTime, now)
}

func PosthogCaptureEvent(appVersion, event string) {
	if !posthogInitialized || !shouldCapture(event, time.Now()) {
		return
	}

	machineID, err := machineid.ProtectedID(machineIDAppID)
	if err != nil {
		log.Err(err).Msg("Cannot get machine id")
		return
	}

	err = posthogClient.Enqueue(posthog.Capture{
		DistinctId: machineID,
		Timestamp:  time.Now(),
		Event:      event,
		Properties: posthog.NewProperties().Set("version", appVersion),
	})
	if err != nil {
		log.Err(err).Msg("Cannot capture event")
	}
}

func PosthogClose() {
	if posthogInitialized {
		if err := posthogClient.Close(); err != nil {
			log.Err(err).Msg("Cannot close posthog client")
		}
		posthogInitialized = false
	}
}
