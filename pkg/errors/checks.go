package errors

import (
	"errors"
)

// AsError finds the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetCode returns the code of the first *Error in err's chain, or "" if
// there is none.
func GetCode(err error) Code {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsConflict reports whether err is a conflict error (CONF_xxx), such as
// an unmatched glfw Terminate.
func IsConflict(err error) bool {
	return hasCategory(err, "CONF")
}

// IsUnavailable reports whether err is an unavailability error
// (UNAVAIL_xxx).
//
// Example:
//
//	if err := lib.Init(); errors.IsUnavailable(err) {
//	    // the binary was built without the glfw tag
//	}
func IsUnavailable(err error) bool {
	return hasCategory(err, "UNAVAIL")
}

func hasCategory(err error, category string) bool {
	e, ok := AsError(err)
	return ok && e.Code.Category() == category
}
