// Package errors provides centralized error definitions and error handling utilities
// for algoviz. It defines sentinel errors, domain error types carrying playback
// and generation context, semantic error types, and classification helpers.
//
// # Error Types
//
// Domain-specific errors:
//   - RenderError: a renderer failed to draw a step during playback
//   - GeneratorError: a step generator produced a malformed sequence
//
// Semantic errors:
//   - NotFoundError: resource not found (unknown algorithm, unknown theme)
//   - ValidationError: invalid input or configuration
//
// # Usage
//
//	err := errors.NewRenderError("bars handle rejected payload", errors.ErrHandleMismatch).
//		WithStep(12, "swap")
//
//	if errors.Is(err, errors.ErrHandleMismatch) { ... }
//
//	var renderErr *errors.RenderError
//	if errors.As(err, &renderErr) { ... }
//
// # Error Classification
//
// Errors carry a Severity and a user-facing flag. Render failures are never
// retryable: a failed render indicates a malformed step, which retrying cannot fix.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Generation sentinel errors
var (
	// ErrUnknownAlgorithm indicates that no generator is registered under a name.
	ErrUnknownAlgorithm = New("unknown algorithm")
	// ErrMalformedStep indicates a step whose payload does not match its kind.
	ErrMalformedStep = New("malformed step")
	// ErrMalformedSequence indicates a sequence that is empty or badly terminated.
	ErrMalformedSequence = New("malformed step sequence")
)

// Playback sentinel errors
var (
	// ErrNoRun indicates an operation that needs a loaded run.
	ErrNoRun = New("no run loaded")
	// ErrHandleMismatch indicates a step payload the presentation handle cannot draw.
	ErrHandleMismatch = New("payload does not match presentation handle")
	// ErrRenderPanic indicates a renderer panicked.
	ErrRenderPanic = New("renderer panicked")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// AppError is the base interface for all algoviz errors.
type AppError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// in the status line.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// RenderError represents a failure to draw a step onto a presentation handle.
//
// Example:
//
//	err := errors.NewRenderError("bar count changed", errors.ErrHandleMismatch).WithStep(4, "swap")
//	fmt.Println(err) // "render error [step=4, kind=swap]: bar count changed: payload does not match presentation handle"
type RenderError struct {
	baseError
	StepIndex int
	Kind      string
	Algorithm string
}

// NewRenderError creates a new RenderError.
func NewRenderError(message string, cause error) *RenderError {
	return &RenderError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
		StepIndex: -1, // -1 indicates not set
	}
}

// WithStep adds the step index and kind to the error context.
func (e *RenderError) WithStep(index int, kind string) *RenderError {
	e.StepIndex = index
	e.Kind = kind
	return e
}

// WithAlgorithm adds the algorithm name to the error context.
func (e *RenderError) WithAlgorithm(name string) *RenderError {
	e.Algorithm = name
	return e
}

// WithSeverity sets the error severity.
func (e *RenderError) WithSeverity(s Severity) *RenderError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *RenderError) Error() string {
	var parts []string
	if e.Algorithm != "" {
		parts = append(parts, fmt.Sprintf("algorithm=%s", e.Algorithm))
	}
	if e.StepIndex >= 0 {
		parts = append(parts, fmt.Sprintf("step=%d", e.StepIndex))
	}
	if e.Kind != "" {
		parts = append(parts, fmt.Sprintf("kind=%s", e.Kind))
	}
	return formatWithPrefix("render error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *RenderError) Is(target error) bool {
	if _, ok := target.(*RenderError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// GeneratorError represents a generator that violated the step contract.
// This is a programming defect in the generator, not a runtime condition.
//
// Example:
//
//	err := errors.NewGeneratorError("last step is not terminal", errors.ErrMalformedSequence).
//		WithAlgorithm("merge-sort")
type GeneratorError struct {
	baseError
	Algorithm string
	StepIndex int
}

// NewGeneratorError creates a new GeneratorError.
func NewGeneratorError(message string, cause error) *GeneratorError {
	return &GeneratorError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityCritical,
			userFacing: false,
		},
		StepIndex: -1,
	}
}

// WithAlgorithm adds the algorithm name to the error context.
func (e *GeneratorError) WithAlgorithm(name string) *GeneratorError {
	e.Algorithm = name
	return e
}

// WithStepIndex adds the offending step index to the error context.
func (e *GeneratorError) WithStepIndex(index int) *GeneratorError {
	e.StepIndex = index
	return e
}

// Error returns the formatted error message.
func (e *GeneratorError) Error() string {
	var parts []string
	if e.Algorithm != "" {
		parts = append(parts, fmt.Sprintf("algorithm=%s", e.Algorithm))
	}
	if e.StepIndex >= 0 {
		parts = append(parts, fmt.Sprintf("step=%d", e.StepIndex))
	}
	return formatWithPrefix("generator error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *GeneratorError) Is(target error) bool {
	if _, ok := target.(*GeneratorError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("algorithm", "timsort")
//	fmt.Println(err) // "algorithm 'timsort' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("values must be integers").WithField("values").WithValue("3,x")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return formatWithPrefix("validation error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// formatWithPrefix builds "prefix [k=v, ...]: message: cause".
func formatWithPrefix(prefix string, parts []string, message string, cause error) string {
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, ", "))
	}
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, message, cause)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display in the
// status line. Errors that don't implement AppError are treated as internal.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var appErr AppError
	if As(err, &appErr) {
		return appErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement AppError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var appErr AppError
	if As(err, &appErr) {
		return appErr.Severity()
	}
	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
