package coordinator

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before any coordinator operation to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput replaces the console log writer (stdout by default).
// Call before any coordinator operation to take effect.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetLogLevel(internal.ParseLevel(level))
}

// SetTraceLevel sets the level of the transition trace logger.
// It defaults to error, or debug when COORDINATOR_DEBUG is set.
func SetTraceLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLog closes the log file opened by SetLogPath, if any.
func CloseLog() {
	internal.CloseLogger()
}
