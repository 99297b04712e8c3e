//nolint:forbidigo // Printer is used for customer friendly output to terminal
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guumaster/logsymbols"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // swapped only by SetOutput
var (
	out      io.Writer = os.Stdout
	renderer           = lipgloss.NewRenderer(os.Stdout)

	successStyle      = renderer.NewStyle().Bold(true)
	errorStyle        = renderer.NewStyle().Bold(true)
	headerStyle       = renderer.NewStyle().Bold(true).Underline(true)
	notificationStyle = renderer.NewStyle().Foreground(lipgloss.Color("178"))
)

// SetOutput redirects all printer output to w. Styles are rendered without
// colors when w is not a terminal.
func SetOutput(w io.Writer, opts ...termenv.OutputOption) {
	out = w
	renderer = lipgloss.NewRenderer(w, opts...)
	successStyle = renderer.NewStyle().Bold(true)
	errorStyle = renderer.NewStyle().Bold(true)
	headerStyle = renderer.NewStyle().Bold(true).Underline(true)
	notificationStyle = renderer.NewStyle().Foreground(lipgloss.Color("178"))
}

// SetPlainOutput redirects output to w with all styling disabled.
func SetPlainOutput(w io.Writer) {
	SetOutput(w, termenv.WithProfile(termenv.Ascii))
}

func Successln(msg string) {
	fmt.Fprintln(out, successStyle.Render(string(logsymbols.Success)+" "+msg))
}

func Successf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	fmt.Fprint(out, successStyle.Render(string(logsymbols.Success)+" "+fmt.Sprintf(newFormat, args...)))
	NewLine(linesRemoved)
}

func Errorln(msg string) {
	fmt.Fprintln(out, errorStyle.Render(string(logsymbols.Error)+" "+msg))
}

func Errorf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	fmt.Fprint(out, errorStyle.Render(string(logsymbols.Error)+" "+fmt.Sprintf(newFormat, args...)))
	NewLine(linesRemoved)
}

func Infoln(msg string) {
	fmt.Fprintln(out, msg)
}

func Infof(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

func Headerln(msg string) {
	fmt.Fprintln(out, headerStyle.Render(msg))
}

func Notificationln(msg string) {
	fmt.Fprintln(out, notificationStyle.Render(msg))
}

func NewLine(numberOfLines int) {
	if numberOfLines <= 0 {
		return
	}
	fmt.Fprint(out, strings.Repeat("\n", numberOfLines))
}

// SectionDivider prints a divider line of a given symbol and length.
// Default length is 1.
func SectionDivider(symbol string, length int) {
	if length <= 0 {
		length = 1
	}
	fmt.Fprintln(out, strings.Repeat(symbol, length))
}

// trimAndCountTrailingNewlines trims trailing newlines so styles do not
// swallow them, and returns how many were removed.
func trimAndCountTrailingNewlines(s string) (string, int) {
	if s == "" {
		return "", 0
	}

	count := 0
	i := len(s)
	for i > 0 && s[i-1] == '\n' {
		i--
		count++
	}
	return s[:i], count
}
