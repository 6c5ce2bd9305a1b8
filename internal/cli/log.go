// Package cli implements the depvis command-line interface.
//
// The commands follow the stages of an analysis: print the configuration,
// look up direct dependencies, build the bounded graph, report cycles and
// reverse dependencies, then render DOT and an ASCII tree. The CLI is built
// using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - params: print the effective configuration
//   - direct: print the direct dependencies of the configured package
//   - analyze: run the full workflow and print the text or JSON report
//   - render: write DOT, tree, JSON, SVG or PNG output
//   - explore: browse the graph interactively
//   - serve: expose the analysis over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so stdout carries only reports and renderings.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Resolved 42 packages (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
