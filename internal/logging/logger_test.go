package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// readLines returns the raw JSON objects written to dir/debug.log.
func readLines(t *testing.T, dir string) []map[string]any {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	var out []map[string]any
	for i, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestNewLogger(t *testing.T) {
	t.Run("creates the log file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "state")
		logger, err := NewLogger(dir, LevelDebug)
		if err != nil {
			t.Fatalf("NewLogger() error = %v", err)
		}
		defer func() { _ = logger.Close() }()

		if _, err := os.Stat(filepath.Join(dir, LogFileName)); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty directory means stderr", func(t *testing.T) {
		logger, err := NewLogger("", LevelInfo)
		if err != nil {
			t.Fatalf("NewLogger() error = %v", err)
		}
		if logger.out.closer != nil {
			t.Error("expected no file when the directory is empty")
		}
		if err := logger.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{LevelDebug, []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{LevelWarn, []string{"WARN", "ERROR"}},
		{"error", []string{"ERROR"}},
		{"verbose", []string{"INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			dir := t.TempDir()
			logger, err := NewLogger(dir, tt.level)
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			logger.Debug("step rendered", "index", 1)
			logger.Info("run loaded", "index", 1)
			logger.Warn("playback paused", "index", 1)
			logger.Error("render failed", "index", 1)
			_ = logger.Close()

			var got []string
			for _, entry := range readLines(t, dir) {
				got = append(got, entry["level"].(string))
				if entry["index"] != float64(1) {
					t.Errorf("index = %v, want 1", entry["index"])
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("levels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChildLoggers(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	engine := logger.WithComponent("playback")
	run := engine.WithRun("merge-sort-3").WithAlgorithm("merge-sort")
	run.Info("play", "interval_ms", 250)
	engine.With("speed", 7, 99, "dropped").Info("speed changed")
	logger.Info("plain")
	_ = logger.Close()

	lines := readLines(t, dir)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	want := map[string]any{
		"component":   "playback",
		"run_id":      "merge-sort-3",
		"algorithm":   "merge-sort",
		"interval_ms": float64(250),
	}
	for k, v := range want {
		if lines[0][k] != v {
			t.Errorf("line 0 %s = %v, want %v", k, lines[0][k], v)
		}
	}

	if lines[1]["speed"] != float64(7) || lines[1]["component"] != "playback" {
		t.Errorf("line 1 = %v", lines[1])
	}
	if _, ok := lines[1]["run_id"]; ok {
		t.Error("sibling logger inherited run_id")
	}
	if _, ok := lines[2]["component"]; ok {
		t.Error("parent logger picked up child attributes")
	}
}

func TestWithNoArgsReturnsSameLogger(t *testing.T) {
	logger := NopLogger()
	if logger.With() != logger {
		t.Error("With() without args should return the receiver")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.WithRun("r").Error("error")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"DEBUG":   LevelDebug,
		"debug":   LevelDebug,
		"Info":    LevelInfo,
		"warn":    LevelWarn,
		"ERROR":   LevelError,
		"invalid": LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidLevels(t *testing.T) {
	want := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if diff := cmp.Diff(want, ValidLevels()); diff != "" {
		t.Errorf("ValidLevels() mismatch (-want +got):\n%s", diff)
	}
}

func TestClose(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	child := logger.WithRun("bubble-sort-1")
	child.Info("before close")

	if err := child.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("parent Close() after child Close() error = %v", err)
	}
	if got := len(readLines(t, dir)); got != 1 {
		t.Errorf("got %d lines, want 1", got)
	}
}

func TestConcurrentWrites(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := logger.WithRun("run").With("goroutine", i)
			for j := range 100 {
				l.Info("tick", "iteration", j)
			}
		}()
	}
	wg.Wait()
	_ = logger.Close()

	if got := len(readLines(t, dir)); got != 1000 {
		t.Errorf("got %d lines, want 1000", got)
	}
}
