// Package listkit provides the data and layout core of list controls: an
// item store, a selection state machine, viewport layout for single and
// multi-column lists, per-view-mode item layout for list views, and
// clipboard content for grids.
//
// The package does no drawing. Hosts feed it input (MouseDown, KeyDown,
// Resize), subscribe to its events, and paint from the rectangles it
// computes. See the sdlrender package for an SDL2 host.
package listkit

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// Options configures package initialization.
type Options struct {
	ConfigPath string  // TOML config file; missing files fall back to defaults
	Config     *Config // Used instead of ConfigPath when set
	LogPath    string  // Full path for the log file, overrides the config
	LogLevel   string  // Overrides the config and the environment
}

// Init loads configuration, sets up logging and applies the theme. It
// returns the effective configuration.
func Init(options Options) (Config, error) {
	cfg := DefaultConfig()
	switch {
	case options.Config != nil:
		cfg = *options.Config
		if err := cfg.Validate(); err != nil {
			return DefaultConfig(), fmt.Errorf("init: %w", err)
		}
	case options.ConfigPath != "":
		loaded, err := LoadConfig(options.ConfigPath)
		if err != nil {
			return loaded, fmt.Errorf("init: %w", err)
		}
		cfg = loaded
	}

	logPath := cfg.Log.Path
	if options.LogPath != "" {
		logPath = options.LogPath
	}
	if logPath != "" {
		internal.SetLogPath(logPath)
	}

	level := cfg.Log.Level
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if options.LogLevel != "" {
		level = options.LogLevel
	}
	if constants.IsDevMode() && level == "" {
		level = "debug"
	}
	internal.SetRawLogLevel(level)

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return cfg, fmt.Errorf("init: %w", err)
	}
	internal.SetTheme(theme)

	GetLogger().Debug("listkit initialized",
		"selection_mode", cfg.List.SelectionMode,
		"view", cfg.View.Mode,
		"theme", cfg.Theme.Preset)
	return cfg, nil
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput replaces the console sink. Full-screen terminal hosts pass
// io.Discard and rely on the log file. Call before Init().
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the package logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger flushes and closes the log file, if any.
func CloseLogger() {
	internal.CloseLogger()
}
