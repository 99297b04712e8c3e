package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	DefaultTimeFormat           = "15:04:05.000"
	DefaultCallerSkipFrameCount = 3 // logger is wrapped by the helpers in logger.go

	NoColor   = true
	UseCaller = false
	flagDebug = "debug"
)

var (
	logBuffer bytes.Buffer

	// DebugMode controls whether buffered logs are dumped after a command.
	DebugMode = false

	// logOutput is where PrintLogs writes the buffered logs.
	logOutput io.Writer = os.Stderr
)

func init() {
	zerolog.TimeFieldFormat = DefaultTimeFormat
	zerolog.CallerSkipFrameCount = DefaultCallerSkipFrameCount

	consoleWriter := zerolog.ConsoleWriter{
		Out:        &logBuffer,
		NoColor:    NoColor,
		TimeFormat: DefaultTimeFormat,
	}

	lgr := zerolog.New(zerolog.MultiLevelWriter(consoleWriter))
	if UseCaller {
		lgr = lgr.With().Caller().Logger()
	}

	log.Logger = lgr
}

// PrintLogs prints the buffered log lines when debug mode is on.
func PrintLogs() {
	if !DebugMode {
		return
	}
	logs := logBuffer.String()
	if len(logs) > 0 {
		fmt.Fprintln(logOutput, "\n----- Log -----")
		fmt.Fprintln(logOutput, logs)
	}
}

// SetDebugMode reads the --debug flag from cmd.
func SetDebugMode(cmd *cobra.Command) {
	val, err := cmd.Flags().GetBool(flagDebug)
	if err == nil {
		DebugMode = val
	}
}

// AddLogFlag registers --debug on each command.
func AddLogFlag(cmd ...*cobra.Command) {
	for _, c := range cmd {
		c.Flags().Bool(flagDebug, false, "Print debug logs after the command finishes")
	}
}
