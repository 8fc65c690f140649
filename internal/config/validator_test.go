package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "playback.speed",
		Value:   11,
		Message: "must be between 1 and 10",
	}

	expected := "playback.speed: must be between 1 and 10 (got: 11)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got errors: %v", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"speed too low", func(c *Config) { c.Playback.Speed = 0 }, "playback.speed"},
		{"speed too high", func(c *Config) { c.Playback.Speed = 11 }, "playback.speed"},
		{"min delay zero", func(c *Config) { c.Playback.MinDelayMs = 0 }, "playback.min_delay_ms"},
		{"max delay below min", func(c *Config) { c.Playback.MaxDelayMs = 10 }, "playback.max_delay_ms"},
		{"max delay too large", func(c *Config) { c.Playback.MaxDelayMs = MaxDelayLimit + 1 }, "playback.max_delay_ms"},
		{"empty algorithm", func(c *Config) { c.Input.Algorithm = " " }, "input.algorithm"},
		{"negative size", func(c *Config) { c.Input.Size = -1 }, "input.size"},
		{"size too large", func(c *Config) { c.Input.Size = MaxInputSize + 1 }, "input.size"},
		{"inverted value range", func(c *Config) { c.Input.MinValue, c.Input.MaxValue = 50, 10 }, "input.max_value"},
		{"too few nodes", func(c *Config) { c.Input.Nodes = 1 }, "input.nodes"},
		{"too many nodes", func(c *Config) { c.Input.Nodes = MaxGraphNodes + 1 }, "input.nodes"},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "solarized" }, "tui.theme"},
		{"negative bar height", func(c *Config) { c.TUI.MaxBarHeight = -2 }, "tui.max_bar_height"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"zero log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"huge log size", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatalf("Validate() returned no errors, want one for %s", tt.wantField)
			}
			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors = %v, want one for %s", errs, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_EqualDelays(t *testing.T) {
	cfg := Default()
	cfg.Playback.MinDelayMs = 200
	cfg.Playback.MaxDelayMs = 200
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("equal delays should be valid, got %v", errs)
	}
}
