package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestFormatCount(t *testing.T) {
	tc := []struct {
		name string
		n    int
		want string
	}{
		{name: "zero", n: 0, want: "0"},
		{name: "three digits", n: 999, want: "999"},
		{name: "thousands", n: 12500, want: "12,500"},
		{name: "millions", n: 1234567, want: "1,234,567"},
		{name: "exact group", n: 100000, want: "100,000"},
		{name: "negative", n: -4200, want: "-4,200"},
		{name: "billions", n: 2_000_000_001, want: "2,000,000,001"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatCount(tt.n); got != tt.want {
				t.Errorf("FormatCount(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestLoggers(t *testing.T) {
	t.Run("SetLogLevel", func(t *testing.T) {
		logger := NewLogger(&bytes.Buffer{})

		SetLogLevel(logger, "debug")
		if logger.GetLevel() != log.DebugLevel {
			t.Errorf("expected debug level, got %v", logger.GetLevel())
		}

		SetLogLevel(logger, "nonsense")
		if logger.GetLevel() != log.InfoLevel {
			t.Errorf("expected fallback to info level, got %v", logger.GetLevel())
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "nova.log")

		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("failed to create file logger: %v", err)
		}
		logger.Info("hello from test")

		if _, err := os.Stat(path); err != nil {
			t.Errorf("log file should exist: %v", err)
		}
	})

	t.Run("WithLogger adds fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := WithLogger(NewLogger(buf), "component", "chat")
		logger.Info("sent")

		if !strings.Contains(buf.String(), "component=chat") {
			t.Errorf("expected component field in output, got %q", buf.String())
		}
	})
}

func TestGenerateID(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := GenerateID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
