package utils

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitLoggerLevels(t *testing.T) {
	t.Cleanup(func() { InitLogger("production") })

	dev := InitLogger("development")
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("development logger should log debug")
	}
	if GetLogger() != dev {
		t.Fatalf("GetLogger should return the initialized logger")
	}

	prod := InitLogger("production")
	if prod.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("production logger should not log debug")
	}
}
