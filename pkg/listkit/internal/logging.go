package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string
	logOut  io.Writer = os.Stdout

	setupOnce sync.Once
	sink      io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Must be called before
// the first GetLogger call to take effect.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces the console half of the log sink. Tests use it to
// capture records; hosts running a full-screen terminal use io.Discard.
func SetLogOutput(w io.Writer) {
	logOut = w
}

func setup() {
	setupOnce.Do(func() {
		sink = logOut
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console only
			return
		}

		logFile = f
		sink = io.MultiWriter(logOut, logFile)
	})
}

// GetLogger returns the shared JSON logger. Records carry a "component"
// attribute added by the caller through With.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar.Set(slog.LevelWarn)

		setup()

		handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog
// levels. Anything else maps to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
