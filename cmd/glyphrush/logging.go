package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyph-rush/internal/games/glyphrush"
)

// newLogger builds the process logger. Interactive commands own the
// terminal, so without --log-file they log nowhere; serve falls back to
// stderr. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagLogLevel != "" {
		l, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("--log-level: %w", err)
		}
		level = l
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	glyphrush.SetLogger(logger)
	return logger, closeFn, nil
}
