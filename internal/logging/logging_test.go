package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("resolving patterns", "count", 3)

	output := buf.String()
	if !strings.Contains(output, "resolving patterns") {
		t.Errorf("output missing message: %q", output)
	}
	if !strings.Contains(output, "count=3") {
		t.Errorf("output missing attribute: %q", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("output missing level: %q", output)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("installing server", "server", "filesystem")

	output := buf.String()
	if !strings.Contains(output, `"msg":"installing server"`) {
		t.Errorf("output not JSON encoded: %q", output)
	}
	if !strings.Contains(output, `"server":"filesystem"`) {
		t.Errorf("output missing attribute: %q", output)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "should be dropped") {
		t.Errorf("info message should have been filtered: %q", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("warn message missing: %q", output)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Must not panic and must not write anywhere observable.
	logger.Error("discarded")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelInfo},
		{1, slog.LevelDebug},
		{2, LevelTrace},
		{5, LevelTrace},
		{-1, slog.LevelInfo},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &buf,
	})

	logger.Log(t.Context(), LevelTrace, "exec", "argv", "claude mcp list")

	output := buf.String()
	if !strings.Contains(output, "TRACE") {
		t.Errorf("trace level should render as TRACE: %q", output)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.With("pattern", "aws").Info("resolved")

	output := buf.String()
	if !strings.Contains(output, "pattern=aws") {
		t.Errorf("output missing inherited attribute: %q", output)
	}
}

func TestMultiHandler_DispatchesToAll(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		NewHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	logger := slog.New(handler)

	logger.Info("both sinks")

	if !strings.Contains(a.String(), "both sinks") {
		t.Error("text sink missing record")
	}
	if !strings.Contains(b.String(), "both sinks") {
		t.Error("JSON sink missing record")
	}
}

func TestMultiHandler_LevelIsPerHandler(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		NewHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(handler)

	logger.Debug("debug only")

	if strings.Contains(a.String(), "debug only") {
		t.Error("error-level sink should not receive debug records")
	}
	if !strings.Contains(b.String(), "debug only") {
		t.Error("debug-level sink missing record")
	}
}

func TestSupportsColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if supportsColor(true) {
		t.Error("NO_COLOR should disable color even on a TTY")
	}
}

func TestSupportsColor_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if supportsColor(true) {
		t.Error("TERM=dumb should disable color")
	}
}

func TestSupportsColor_NotTTY(t *testing.T) {
	var buf bytes.Buffer
	if SupportsColor(&buf) {
		t.Error("a bytes.Buffer is not a TTY")
	}
}
