package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{
			name:   "default config",
			config: nil,
		},
		{
			name: "debug level",
			config: &Config{
				Level:  zapcore.DebugLevel,
				Output: &bytes.Buffer{},
			},
		},
		{
			name: "error level",
			config: &Config{
				Level:  zapcore.ErrorLevel,
				Output: &bytes.Buffer{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.config)
			if logger == nil {
				t.Error("NewLogger() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: zapcore.InfoLevel, Output: &buf})

	logger.Debug("below threshold")
	logger.Info("at threshold")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "below threshold") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "at threshold") {
		t.Error("info message should pass at info level")
	}
}

func TestDefaultLogger(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
	if Default() != logger {
		t.Error("Default() should return the same instance")
	}

	var buf bytes.Buffer
	replacement := NewLogger(&Config{Level: zapcore.DebugLevel, Output: &buf})
	SetDefault(replacement)
	defer SetDefault(logger)

	if Default() != replacement {
		t.Error("SetDefault did not take effect")
	}
}
