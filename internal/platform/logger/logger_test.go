// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/platform/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := logger.ParseLevel(tc.input); got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "warn"})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if l == nil {
		t.Fatal("Setup returned nil logger")
	}
	if slog.Default() != l {
		t.Error("Expected Setup to install the logger as the default")
	}
	if l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected info to be disabled at warn level")
	}
	if !l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Expected warn to be enabled at warn level")
	}
}

func TestNewWritesJSON(t *testing.T) {
	l, buf := logger.NewTestLogger(t)

	l.Info("task created", "task_id", "abc", "tag", "Quick")

	entries, err := buf.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry["msg"] != "task created" {
		t.Errorf("Expected msg %q, got %v", "task created", entry["msg"])
	}
	if entry["task_id"] != "abc" {
		t.Errorf("Expected task_id %q, got %v", "abc", entry["task_id"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("Expected level INFO, got %v", entry["level"])
	}
}

func TestContextLogger(t *testing.T) {
	fallback, fallbackBuf := logger.NewTestLogger(t)
	scoped, scopedBuf := logger.NewTestLogger(t)

	ctx := context.Background()
	if got := logger.FromContextOrDefault(ctx, fallback); got != fallback {
		t.Error("Expected fallback logger when context has none")
	}
	if got := logger.FromContextOrDefault(ctx, nil); got != slog.Default() {
		t.Error("Expected slog.Default() when context has none and fallback is nil")
	}
	if got := logger.FromContext(ctx); got != slog.Default() {
		t.Error("Expected FromContext to fall back to slog.Default()")
	}

	ctx = logger.WithContext(ctx, scoped.With("trace_id", "t-123"))
	logger.FromContextOrDefault(ctx, fallback).Info("from context")

	logger.AssertLogContains(t, scopedBuf, "t-123")
	if fallbackBuf.String() != "" {
		t.Errorf("Expected nothing written to fallback logger, got %q", fallbackBuf.String())
	}
}
