package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogPath = "logs/clicksearch.log"

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	output    io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Must be called before the
// first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

func setupOutput() {
	setupOnce.Do(func() {
		target := logPath
		if target == "" {
			target = defaultLogPath
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, stay console-only
			return
		}

		logFile = f
		output = io.MultiWriter(os.Stdout, logFile)
	})
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	setupOutput()
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = newLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used for SDL and window plumbing.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newLogger(internalLevelVar).With("component", "sdl")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel converts "debug", "info", "warn"/"warning" or "error" to a level.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// SetRawLogLevel sets the application level from a string, falling back to
// info for unknown values.
func SetRawLogLevel(raw string) {
	level, err := ParseLevel(raw)
	if err != nil {
		GetLogger().Warn("Unknown log level, using info", "level", raw)
	}
	SetLogLevel(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
