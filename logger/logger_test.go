package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	config := Config{
		Level:  "warn",
		Output: "stdout",
	}

	if err := Init(config); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logger := GetLogger()
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %v", logger.GetLevel())
	}
}

func TestInitDebugOverridesLevel(t *testing.T) {
	if err := Init(Config{Level: "error", Debug: true, Console: Bool(true)}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if GetLogger().GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", GetLogger().GetLevel())
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init(Config{Level: "loud"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestSetLevel(t *testing.T) {
	SetLevel(zerolog.ErrorLevel)

	if GetLogger().GetLevel() != zerolog.ErrorLevel {
		t.Errorf("Expected error level after SetLevel, got %v", GetLogger().GetLevel())
	}

	SetLevel(zerolog.InfoLevel)
}

func TestWithComponent(t *testing.T) {
	componentLogger := WithComponent("probe")

	if componentLogger.GetLevel() == zerolog.Disabled {
		t.Error("Component logger should not be disabled")
	}
}
