package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected default level to be Info, got %s", cfg.Level)
	}

	if cfg.Pretty != false {
		t.Error("Expected default pretty to be false")
	}
}

func TestSetup_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{
		Level:  LevelDebug,
		Pretty: false,
		Output: &buf,
	})

	logger.Info().Str("item_id", "1").Msg("warm-up complete")

	out := buf.String()
	if !strings.Contains(out, "warm-up complete") {
		t.Errorf("Expected output to contain message, got %s", out)
	}
	if !strings.Contains(out, `"item_id":"1"`) {
		t.Errorf("Expected output to contain item_id field, got %s", out)
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{
		Level:  LevelError,
		Pretty: false,
		Output: &buf,
	})

	logger.Debug().Msg("should be filtered")
	logger.Info().Msg("should be filtered too")

	if buf.Len() != 0 {
		t.Errorf("Expected no output below error level, got %s", buf.String())
	}

	logger.Error().Msg("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Expected error message in output, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input LogLevel
		want  zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{LogLevel("warning"), zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{LogLevel("bogus"), zerolog.InfoLevel},
		{LogLevel(""), zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: LevelDebug, Output: &buf})

	logger := NewLogger("price-manager")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"price-manager"`) {
		t.Errorf("Expected component field in output, got %s", buf.String())
	}
}
