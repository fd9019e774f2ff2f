// Package caseerrors provides structured error types for the casekit library.
//
// Import path: github.com/erraggy/casekit/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a failed transform apart from bad configuration or
// oversized input.
//
// # Error Types
//
//   - [TransformError]: a transform failed while a command chain was being folded
//   - [URIError]: malformed percent-encoding or invalid UTF-8 in the URI transforms
//   - [ConfigError]: invalid options or environment configuration
//   - [ResourceLimitError]: input rejected because it exceeds a configured limit
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrTransform]: Matches any [TransformError]
//   - [ErrURI]: Matches any [URIError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage Examples
//
//	res, err := chain.Run("100%", chain.Parse("d"))
//	if errors.Is(err, caseerrors.ErrURI) {
//	    // The subject was not valid percent-encoding
//	}
//
// Extract the failing command with errors.As():
//
//	var tErr *caseerrors.TransformError
//	if errors.As(err, &tErr) {
//	    fmt.Printf("command %c (%s) failed at position %d\n", tErr.Key, tErr.Name, tErr.Position)
//	}
//
// # Error Chaining
//
// [TransformError] wraps the error returned by the transform through its Cause
// field, so a chain failure caused by a bad escape matches both [ErrTransform]
// and [ErrURI].
package caseerrors
