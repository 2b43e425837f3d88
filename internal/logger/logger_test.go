package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestFileLogging(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	if err := InitWithFileConfig("debug", DefaultFileConfig(logPath), false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}

	Info("test message", zap.Int("value", 42))
	Debug("debug message")
	Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log file to contain entries")
	}
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	saved, savedSugar := Log, Sugar
	Log, Sugar = nil, nil
	defer func() { Log, Sugar = saved, savedSugar }()

	// Must not panic.
	Info("dropped")
	Warn("dropped")
	Error("dropped")
	Sync()
}
