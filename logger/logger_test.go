package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/formatter"
	"github.com/richlog/richlog/handler"
)

func newTestLogger(level core.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := handler.NewWriterHandler(handler.WriterConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.TextConfig{Format: formatter.MessageSimple}),
	})
	l := NewBuilder().
		WithName("test").
		WithHandler(h).
		WithLevel(level).
		Build()
	return l, &buf
}

func TestLoggerLevels(t *testing.T) {
	l, buf := newTestLogger(core.WarningLevel)

	l.Debug("debug message")
	l.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("messages below threshold emitted: %q", buf.String())
	}

	l.Warning("warning message")
	l.Error("error message")
	l.Critical("critical message")

	out := buf.String()
	for _, want := range []string{
		"WARNING: warning message",
		"ERROR: error message",
		"CRITICAL: critical message",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerSetLevel(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("DEBUG emitted at INFO level")
	}

	l.SetLevel(core.DebugLevel)
	if l.Level() != core.DebugLevel {
		t.Errorf("Level() = %v after SetLevel", l.Level())
	}
	l.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("DEBUG not emitted after SetLevel(DEBUG)")
	}
}

func TestLoggerFields(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)

	l.Info("login", String("user", "alice"), Int("attempt", 2))
	if got := buf.String(); got != "INFO: login user=alice attempt=2\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLoggerWith(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)

	child := l.With(String("component", "db"))
	child.Info("connected", Bool("tls", true))

	if got := buf.String(); got != "INFO: connected component=db tls=true\n" {
		t.Errorf("output = %q", got)
	}

	// Child levels are independent of the parent.
	child.SetLevel(core.ErrorLevel)
	if l.Level() != core.InfoLevel {
		t.Error("child SetLevel leaked to parent")
	}
}

func TestLoggerName(t *testing.T) {
	var buf bytes.Buffer
	h := handler.NewWriterHandler(handler.WriterConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.JSONConfig{}),
	})
	l := NewBuilder().WithName("app.worker").WithHandler(h).Build()

	l.Info("tick")

	var obj map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &obj); err != nil {
		t.Fatalf("output not JSON: %v", err)
	}
	if obj["name"] != "app.worker" {
		t.Errorf("name = %v", obj["name"])
	}
}

func TestLoggerLogError(t *testing.T) {
	var buf bytes.Buffer
	h := handler.NewWriterHandler(handler.WriterConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.JSONConfig{}),
	})
	l := NewBuilder().
		WithName("test").
		WithHandler(h).
		WithTracebacks(true).
		Build()

	l.LogError(core.ErrorLevel, "query failed", errors.New("connection reset"))

	var obj map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &obj); err != nil {
		t.Fatalf("output not JSON: %v", err)
	}
	excInfo, _ := obj["exc_info"].(string)
	if !strings.Contains(excInfo, "connection reset") {
		t.Errorf("exc_info = %q", excInfo)
	}
}

func TestLoggerCaller(t *testing.T) {
	var buf bytes.Buffer
	h := handler.NewWriterHandler(handler.WriterConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.TextConfig{Format: formatter.RawMessageFormat("%(filename)s:%(message)s")}),
	})
	l := NewBuilder().WithHandler(h).WithCaller(true).Build()

	l.Info("here")
	if got := buf.String(); got != "logger_test.go:here\n" {
		t.Errorf("output = %q, caller skip is off", got)
	}
}

func TestLoggerNilHandler(t *testing.T) {
	l := NewBuilder().Build()
	l.Info("into the void") // must not panic
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"Warning", WarningLevel},
		{"WARN", WarningLevel},
		{"error", ErrorLevel},
		{"critical", CriticalLevel},
		{"FATAL", CriticalLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
