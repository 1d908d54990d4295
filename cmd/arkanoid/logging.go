package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the command logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           level,
	}), nil
}

// consoleLogger logs to stderr. Used by commands that do not take over the terminal.
func consoleLogger() (*log.Logger, error) {
	return newLogger(os.Stderr)
}

// sessionLogger logs to --log-file, or nowhere, so nothing is written over the game screen.
// The returned close function must be called when the session ends.
func sessionLogger() (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
