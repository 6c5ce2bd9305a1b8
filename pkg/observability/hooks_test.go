package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopBuildHooks{}
	h.OnBuildStart(ctx, "requests", 10)
	h.OnFetch(ctx, "requests", 0, 4, time.Second, nil)
	h.OnBuildComplete(ctx, "requests", 5, time.Second, nil)
}

func TestOrDefault(t *testing.T) {
	if _, ok := OrDefault(nil).(NoopBuildHooks); !ok {
		t.Error("OrDefault(nil) should return NoopBuildHooks")
	}

	custom := NewLogHooks(nil)
	if OrDefault(custom) != custom {
		t.Error("OrDefault should return the given hooks")
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		level   log.Level
		emit    func(*LogHooks)
		want    string
		wantLog bool
	}{
		{
			name:    "fetch at debug level",
			level:   log.DebugLevel,
			emit:    func(h *LogHooks) { h.OnFetch(ctx, "idna", 1, 0, time.Millisecond, nil) },
			want:    "idna",
			wantLog: true,
		},
		{
			name:    "fetch hidden at info level",
			level:   log.InfoLevel,
			emit:    func(h *LogHooks) { h.OnFetch(ctx, "idna", 1, 0, time.Millisecond, nil) },
			wantLog: false,
		},
		{
			name:    "fetch failure at info level",
			level:   log.InfoLevel,
			emit:    func(h *LogHooks) { h.OnFetch(ctx, "idna", 1, 0, 0, errors.New("timeout")) },
			want:    "timeout",
			wantLog: true,
		},
		{
			name:    "completion at info level",
			level:   log.InfoLevel,
			emit:    func(h *LogHooks) { h.OnBuildComplete(ctx, "requests", 5, time.Second, nil) },
			want:    "built dependency graph",
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: tt.level})))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Fatalf("got log output = %v, want %v (%q)", got, tt.wantLog, buf.String())
			}
			if tt.want != "" && !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output %q missing %q", buf.String(), tt.want)
			}
		})
	}
}
