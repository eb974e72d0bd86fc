// Package logger holds the shared zerolog instance used by the built-in
// logging interceptors.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dvcrn/fetchkit/internal/env"
)

var (
	once   sync.Once
	logger *zerolog.Logger
)

// Get returns the singleton logger instance, initializing it on first call.
func Get() *zerolog.Logger {
	once.Do(func() {
		logger = newLogger()
	})
	return logger
}

// newLogger creates a logger based on the ENV environment variable.
// LOG_LEVEL overrides the default info level.
func newLogger() *zerolog.Logger {
	logLevel := zerolog.InfoLevel
	if levelStr, ok := env.Lookup("LOG_LEVEL"); ok {
		if parsedLevel, err := zerolog.ParseLevel(strings.ToLower(levelStr)); err == nil {
			logLevel = parsedLevel
		} else {
			fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL %q; defaulting to 'info'\n", levelStr)
		}
	}
	zerolog.SetGlobalLevel(logLevel)

	switch env.Or("ENV", "development") {
	case "development", "dev":
		return newDevelopment()
	default:
		return newProduction()
	}
}

// newDevelopment creates a development logger with console output
func newDevelopment() *zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	zl := zerolog.New(output).With().Timestamp().Logger()
	return &zl
}

// newProduction creates a production logger with JSON output and UNIX timestamps
func newProduction() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &zl
}
