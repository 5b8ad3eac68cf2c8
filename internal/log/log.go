// Package log provides the shared diagnostic logger for dcj.
// All warnings and debug diagnostics go to standard error so that rendered
// template output and the forwarded command echo keep standard output clean.
package log

import (
	"io"
	"os"

	charm "github.com/charmbracelet/log"
)

var logger = charm.NewWithOptions(os.Stderr, charm.Options{
	Prefix: "dcj",
})

// SetDebug switches the logger between the default warning-and-above level
// and full debug output. Debug mode turns every per-line diagnostic of the
// env-file loader and the orchestrator into visible output.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(charm.DebugLevel)
	} else {
		logger.SetLevel(charm.InfoLevel)
	}
}

// SetOutput redirects the logger, primarily so tests can capture diagnostics.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debugf logs a formatted diagnostic visible only in debug mode.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warnf logs a formatted warning for non-fatal conditions, such as a
// missing override file or an unreadable env file.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
