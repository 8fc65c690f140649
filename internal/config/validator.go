package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "playback.speed")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Input and delay limits
const (
	MaxInputSize  = 64
	MinGraphNodes = 2
	MaxGraphNodes = 20
	MaxDelayLimit = 60000
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePlayback()...)
	errors = append(errors, c.validateInput()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validatePlayback validates the PlaybackConfig
func (c *Config) validatePlayback() []ValidationError {
	var errors []ValidationError
	p := c.Playback

	if p.Speed < MinSpeed || p.Speed > MaxSpeed {
		errors = append(errors, ValidationError{
			Field:   "playback.speed",
			Value:   p.Speed,
			Message: fmt.Sprintf("must be between %d and %d", MinSpeed, MaxSpeed),
		})
	}

	if p.MinDelayMs < 1 {
		errors = append(errors, ValidationError{
			Field:   "playback.min_delay_ms",
			Value:   p.MinDelayMs,
			Message: "must be at least 1",
		})
	}

	if p.MaxDelayMs > MaxDelayLimit {
		errors = append(errors, ValidationError{
			Field:   "playback.max_delay_ms",
			Value:   p.MaxDelayMs,
			Message: fmt.Sprintf("exceeds maximum of %d", MaxDelayLimit),
		})
	}

	// An equal pair is allowed and makes every speed the same delay.
	if p.MaxDelayMs < p.MinDelayMs {
		errors = append(errors, ValidationError{
			Field:   "playback.max_delay_ms",
			Value:   p.MaxDelayMs,
			Message: fmt.Sprintf("must not be less than min_delay_ms (%d)", p.MinDelayMs),
		})
	}

	return errors
}

// validateInput validates the InputConfig
func (c *Config) validateInput() []ValidationError {
	var errors []ValidationError
	in := c.Input

	if strings.TrimSpace(in.Algorithm) == "" {
		errors = append(errors, ValidationError{
			Field:   "input.algorithm",
			Value:   in.Algorithm,
			Message: "must not be empty",
		})
	}

	if in.Size < 0 || in.Size > MaxInputSize {
		errors = append(errors, ValidationError{
			Field:   "input.size",
			Value:   in.Size,
			Message: fmt.Sprintf("must be between 0 and %d", MaxInputSize),
		})
	}

	if in.MaxValue < in.MinValue {
		errors = append(errors, ValidationError{
			Field:   "input.max_value",
			Value:   in.MaxValue,
			Message: fmt.Sprintf("must not be less than min_value (%d)", in.MinValue),
		})
	}

	if in.Nodes < MinGraphNodes || in.Nodes > MaxGraphNodes {
		errors = append(errors, ValidationError{
			Field:   "input.nodes",
			Value:   in.Nodes,
			Message: fmt.Sprintf("must be between %d and %d", MinGraphNodes, MaxGraphNodes),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.MaxBarHeight < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_bar_height",
			Value:   c.TUI.MaxBarHeight,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
