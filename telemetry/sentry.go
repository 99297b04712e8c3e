package telemetry

import (
	"errors"
	"slices"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const sentryFlushTimeout = 5 * time.Second

var (
	sentryInitialized bool
)

// SentryHook forwards error and warning log events to Sentry. Debug events
// stay local since they can carry request details.
type SentryHook struct{}

// Run is called for every log event and implements the zerolog.Hook interface
func (h SentryHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if !sentryInitialized || !slices.Contains(h.Levels(), level) {
		return
	}
	if level == zerolog.WarnLevel {
		sentry.CaptureMessage(msg)
		return
	}
	sentry.CaptureException(errors.New(msg))
}

// Levels returns the log levels that this hook should be triggered for
func (h SentryHook) Levels() []zerolog.Level {
	return []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel, zerolog.WarnLevel}
}

// SentryInit initializes sentry. An empty dsn leaves it disabled.
func SentryInit(sentryDsn string, appVersion string) {
	if sentryDsn == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDsn,
		Release:          "festserve-cli@" + appVersion,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Err(err).Msg("Cannot initialize sentry")
		return
	}
	sentryInitialized = true
}

// SentryFlush must be deferred directly. A panic in progress is reported,
// flushed, then re-raised so the process still exits non-zero.
func SentryFlush() {
	if sentryInitialized {
		err := recover()
		if err != nil {
			sentry.CurrentHub().Recover(err)
		}

		sentry.Flush(sentryFlushTimeout)
		sentryInitialized = false

		if err != nil {
			panic(err)
		}
	}
}
