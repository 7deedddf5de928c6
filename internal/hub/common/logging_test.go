package common

import "testing"

func TestNewSilentLogger(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("NewSilentLogger returned nil")
	}
	// Must not panic or write anywhere
	logger.Info().Str("key", "value").Msg("silent")
	logger.Error().Msg("also silent")
}

func TestNewLoggerFromConfig_DefaultLevel(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{
		Outputs: []string{"console"},
	})
	if logger == nil {
		t.Fatal("NewLoggerFromConfig returned nil")
	}
}

func TestWithCorrelationId(t *testing.T) {
	logger := NewSilentLogger()
	child := logger.WithCorrelationId("abc-123")
	if child == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	child.Debug().Msg("correlated")
}
