// Package constants defines environment variables and defaults shared by
// the coordinator packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	// DebugEnvVar enables debug-level transition tracing when set to any value.
	DebugEnvVar = "COORDINATOR_DEBUG"
	// WindowWidthEnvVar overrides the window width in development mode.
	WindowWidthEnvVar = "WINDOW_WIDTH"
	// WindowHeightEnvVar overrides the window height in development mode.
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Defaults used by the presenters.
const (
	DefaultAnimationDuration       = 300 * time.Millisecond // Simulated container transition time
	DefaultWindowWidth       int32 = 1024
	DefaultWindowHeight      int32 = 768
	DefaultLanguage                = "en"
)
