package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogger creates a structured logger writing to stderr. The level comes
// from the LOG_LEVEL environment variable and falls back to INFO.
func SetupLogger() *slog.Logger {
	return NewLogger(os.Stderr)
}

// NewLogger creates a text logger on w using the LOG_LEVEL environment level.
func NewLogger(w io.Writer) *slog.Logger {
	return NewLevelLogger(w, envLevel())
}

// NewLevelLogger creates a text logger on w at the given level.
func NewLevelLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NilLogger returns a logger that discards everything.
func NilLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1, // Above error level to suppress all logs
	}))
}

// ParseLevel maps a level name to a slog level. Unknown names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envLevel() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// FileLogger opens filename for appending and returns a logger writing to it.
// The caller owns the returned file and should close it on exit.
func FileLogger(filename string, level slog.Level) (*slog.Logger, *os.File, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return NewLevelLogger(file, level), file, nil
}
