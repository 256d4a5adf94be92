package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDBPath   = "HEALTHIFY_DB"
	EnvLogLevel = "HEALTHIFY_LOG_LEVEL"
)

// LoadEnv reads the given dotenv files (".env" when none are named).
// Missing files are ignored and variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

func ParseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q (use debug, info, warn or error)", value)
}

// NewLogger writes text records to stderr. The level falls back to
// HEALTHIFY_LOG_LEVEL when value is empty.
func NewLogger(value string) (*slog.Logger, error) {
	if strings.TrimSpace(value) == "" {
		value = os.Getenv(EnvLogLevel)
	}
	level, err := ParseLogLevel(value)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
