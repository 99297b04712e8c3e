package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"pkg.festserve.dev/festserve-cli/cmd/festserve/root"
	_ "pkg.festserve.dev/festserve-cli/common/logger"
	"pkg.festserve.dev/festserve-cli/telemetry"
)

// This variable will be overridden by ldflags during build
// Example : go build -ldflags "-X main.AppVersion=1.0.0 -X main.PosthogAPIKey=<POSTHOG_API_KEY> -X main.SentryDsn=<SENTRY_DSN>"
var (
	AppVersion    string
	PosthogAPIKey string
	SentryDsn     string
)

func init() {
	if AppVersion == "" {
		AppVersion = "dev"
	}
	root.AppVersion = AppVersion
}

func main() {
	os.Exit(run())
}

func run() int {
	telemetry.SentryInit(SentryDsn, AppVersion)
	defer telemetry.SentryFlush()

	log.Logger = log.Logger.Hook(telemetry.SentryHook{})

	telemetry.PosthogInit(PosthogAPIKey)
	defer telemetry.PosthogClose()

	if len(os.Args) > 1 && os.Args[1] == "post-installation" {
		telemetry.PosthogCaptureEvent(AppVersion, telemetry.PostInstallationEvent)
		return 0
	}

	telemetry.PosthogCaptureEvent(AppVersion, telemetry.RunningEvent)

	return root.Execute()
}
