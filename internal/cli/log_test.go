package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("built") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("fetched") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("fetched") }, true},
		{"error at fatal level", log.FatalLevel, func(l *log.Logger) { l.Error("aborted") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("hello", "root", "requests")

	out := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(out) {
		t.Errorf("log line %q does not start with a HH:MM:SS.ms timestamp", out)
	}
	if !strings.Contains(out, "root=requests") {
		t.Errorf("log line %q missing key/value pair", out)
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Resolved 3 packages")

	out := buf.String()
	if !strings.Contains(out, "Resolved 3 packages (") {
		t.Errorf("progress.done() output = %q, want message with duration", out)
	}
}
