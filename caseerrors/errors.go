package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrTransform indicates a transform failed inside a command chain.
	ErrTransform = errors.New("transform error")

	// ErrURI indicates malformed percent-encoding or invalid UTF-8.
	ErrURI = errors.New("uri error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// TransformError represents a transform failure while folding a command chain.
type TransformError struct {
	// Key is the command key that failed (e.g. 'd')
	Key rune
	// Name is the display name of the transform (e.g. "decode-uri")
	Name string
	// Position is the zero-based index of the command within the chain
	Position int
	// Cause is the error returned by the transform
	Cause error
}

// Error returns a human-readable error message.
func (e *TransformError) Error() string {
	msg := "transform error"
	if e.Name != "" {
		msg += " in " + e.Name
	}
	if e.Key != 0 {
		msg += fmt.Sprintf(" (/%c at position %d)", e.Key, e.Position)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TransformError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// URIError represents a percent-encoding failure.
type URIError struct {
	// Op is the failing operation: "encode" or "decode"
	Op string
	// Input is the string that could not be processed
	Input string
	// Offset is the byte offset of the offending sequence (-1 if unknown)
	Offset int
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *URIError) Error() string {
	msg := "uri error"
	if e.Op != "" {
		msg = "uri " + e.Op + " error"
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as URIError has no underlying cause.
func (e *URIError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *URIError) Is(target error) bool {
	return target == ErrURI
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents input rejected for exceeding a limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "input_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
