package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/formatter"
)

func newSlogPair(t *testing.T, level core.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	wh := NewWriterHandler(WriterConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.JSONConfig{}),
	})
	return slog.New(NewSlogHandler(wh, level)), &buf
}

func TestSlogHandler(t *testing.T) {
	log, buf := newSlogPair(t, core.DebugLevel)

	log.Info("request served", "user_id", "123", "status", 200)

	var obj map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &obj); err != nil {
		t.Fatalf("output not JSON: %v", err)
	}
	if obj["message"] != "request served" {
		t.Errorf("message = %v", obj["message"])
	}
	if obj["level"] != "INFO" {
		t.Errorf("level = %v", obj["level"])
	}
	extra, _ := obj["extra"].(map[string]interface{})
	if extra["user_id"] != "123" || extra["status"] != float64(200) {
		t.Errorf("extra = %v", extra)
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	log, buf := newSlogPair(t, core.WarningLevel)

	log.Info("filtered out")
	if buf.Len() != 0 {
		t.Errorf("INFO emitted below WARNING threshold: %q", buf.String())
	}

	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("WARNING not emitted")
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	log, buf := newSlogPair(t, core.DebugLevel)

	log.With("service", "api").WithGroup("req").Info("done", "id", 7)

	var obj map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &obj); err != nil {
		t.Fatalf("output not JSON: %v", err)
	}
	extra, _ := obj["extra"].(map[string]interface{})
	if extra["service"] != "api" {
		t.Errorf("extra.service = %v", extra["service"])
	}
	if extra["req.id"] != float64(7) {
		t.Errorf("extra[req.id] = %v", extra["req.id"])
	}
}

func TestSlogLevelMapping(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarningLevel},
		{slog.LevelError, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	h := NewSlogHandler(&recordingHandler{}, core.InfoLevel)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("DEBUG enabled at INFO threshold")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("ERROR disabled at INFO threshold")
	}
}
