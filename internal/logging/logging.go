// Package logging builds the command-line logger.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level. debug overrides the
// level and adds timestamps and caller information.
func New(w io.Writer, level string, debug bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}

	opts := log.Options{
		Level:  lvl,
		Prefix: "blackjack",
	}
	if debug {
		opts.Level = log.DebugLevel
		opts.ReportTimestamp = true
		opts.ReportCaller = true
		opts.TimeFormat = time.TimeOnly
	}

	return log.NewWithOptions(w, opts)
}
