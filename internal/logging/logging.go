// SPDX-License-Identifier: MPL-2.0

// Package logging installs a charmbracelet/log logger as the process-wide
// slog handler. Packages log through log/slog and never import this package.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Options configures the logger.
type Options struct {
	// Verbose lowers the level from warn to debug.
	Verbose bool
	// NoColor strips ANSI styling from log lines.
	NoColor bool
}

// New creates a logger writing to w. Timestamps are omitted: modpack is a
// short-lived CLI and log lines interleave with its regular output.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "modpack",
		ReportTimestamp: false,
	})
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

// Setup creates a logger with New and makes it the slog default.
func Setup(w io.Writer, opts Options) *log.Logger {
	logger := New(w, opts)
	slog.SetDefault(slog.New(logger))
	return logger
}
