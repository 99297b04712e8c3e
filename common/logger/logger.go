package logger

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

func Debug(args ...interface{}) {
	log.Debug().Timestamp().Msg(fmt.Sprint(args...))
}

func Debugf(format string, v ...interface{}) {
	log.Debug().Timestamp().Msgf(format, v...)
}

// DebugWithFields logs msg with structured key/value pairs.
func DebugWithFields(msg string, kv map[string]interface{}) {
	log.Debug().Timestamp().Fields(kv).Msg(msg)
}

func Info(args ...interface{}) {
	log.Info().Timestamp().Msg(fmt.Sprint(args...))
}

func Infof(format string, v ...interface{}) {
	log.Info().Timestamp().Msgf(format, v...)
}

func Warn(args ...interface{}) {
	log.Warn().Timestamp().Msg(fmt.Sprint(args...))
}

func Warnf(format string, v ...interface{}) {
	log.Warn().Timestamp().Msgf(format, v...)
}

// Errors logs err with its full eris chain as the message.
func Errors(err error) {
	if err == nil {
		return
	}
	log.Error().Timestamp().Msg(err.Error())
}
