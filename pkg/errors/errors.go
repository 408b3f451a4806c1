// Package errors provides the structured error type used for failures that
// originate in this module itself: invalid construction parameters,
// configuration loading problems, and a windowing library that could not be
// initialised.
//
// Errors reported by the windowing library through its error callback are
// deliberately NOT represented with this package. Those reports are forwarded
// verbatim by package errbridge and keep the library's own integer codes.
//
// # Error Codes
//
// Each error carries a machine-readable code following the pattern
// CATEGORY_NNN (e.g., "VAL_002"). The categories in use are:
//
//   - VAL: invalid input or missing required values
//   - CONF: an operation conflicts with the current state
//   - INT: configuration that could not be loaded
//   - UNAVAIL: a dependency (such as the native library) is not available
//
// # Usage
//
//	err := errors.New(errors.CodeValidationRequired, "errbridge: handler must not be nil")
//
//	if errors.IsUnavailable(err) {
//	    // fall back to a simulated library
//	}
package errors
