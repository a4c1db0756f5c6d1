package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/logger"
)

func TestPresetSettings(t *testing.T) {
	tests := []struct {
		preset     Preset
		level      string
		format     string
		dateFormat string
		tracebacks bool
	}{
		{Development, "DEBUG", "DETAILED", "DEFAULT", true},
		{Production, "INFO", "VERBOSE", "ISO8601", false},
		{Testing, "DEBUG", "SIMPLE", "NOTHING", true},
		{Preset("unknown"), "DEBUG", "DETAILED", "DEFAULT", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			s := PresetSettings(tt.preset)
			assert.Equal(t, tt.level, s.Level)
			assert.Equal(t, tt.format, s.Format)
			assert.Equal(t, tt.dateFormat, s.DateFormat)
			assert.Equal(t, tt.tracebacks, s.RichTracebacks)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestBuildLogger(t *testing.T) {
	s := PresetSettings(Production)
	l := s.BuildLogger("api")
	defer l.Close()

	assert.Equal(t, "api", l.Name())
	assert.Equal(t, core.InfoLevel, l.Level())
	assert.False(t, l.Enabled(core.DebugLevel))
	assert.True(t, l.Enabled(core.ErrorLevel))
}

func TestSetupPreset(t *testing.T) {
	l := SetupPreset("worker", Testing)
	defer l.Close()
	assert.Equal(t, core.DebugLevel, l.Level())
}

func TestSetupFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := SetupFileLogger("app", FileLoggerConfig{
		Filename: path,
		Level:    logger.InfoLevel,
	})
	require.NoError(t, err)

	l.Info("started")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &obj), "file output must be JSON")
	assert.Equal(t, "started", obj["message"])
	assert.Equal(t, "app", obj["name"])
}
