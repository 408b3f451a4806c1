package glfw

import (
	"fmt"
)

// ErrorCode is a GLFW error code as passed to the error callback. The
// values are owned by GLFW; this package only names them.
type ErrorCode int

// GLFW 3.4 error codes.
const (
	NoError              ErrorCode = 0
	NotInitialized       ErrorCode = 0x00010001
	NoCurrentContext     ErrorCode = 0x00010002
	InvalidEnum          ErrorCode = 0x00010003
	InvalidValue         ErrorCode = 0x00010004
	OutOfMemory          ErrorCode = 0x00010005
	APIUnavailable       ErrorCode = 0x00010006
	VersionUnavailable   ErrorCode = 0x00010007
	PlatformError        ErrorCode = 0x00010008
	FormatUnavailable    ErrorCode = 0x00010009
	NoWindowContext      ErrorCode = 0x0001000A
	CursorUnavailable    ErrorCode = 0x0001000B
	FeatureUnavailable   ErrorCode = 0x0001000C
	FeatureUnimplemented ErrorCode = 0x0001000D
	PlatformUnavailable  ErrorCode = 0x0001000E
)

var codeNames = map[ErrorCode]string{
	NoError:              "GLFW_NO_ERROR",
	NotInitialized:       "GLFW_NOT_INITIALIZED",
	NoCurrentContext:     "GLFW_NO_CURRENT_CONTEXT",
	InvalidEnum:          "GLFW_INVALID_ENUM",
	InvalidValue:         "GLFW_INVALID_VALUE",
	OutOfMemory:          "GLFW_OUT_OF_MEMORY",
	APIUnavailable:       "GLFW_API_UNAVAILABLE",
	VersionUnavailable:   "GLFW_VERSION_UNAVAILABLE",
	PlatformError:        "GLFW_PLATFORM_ERROR",
	FormatUnavailable:    "GLFW_FORMAT_UNAVAILABLE",
	NoWindowContext:      "GLFW_NO_WINDOW_CONTEXT",
	CursorUnavailable:    "GLFW_CURSOR_UNAVAILABLE",
	FeatureUnavailable:   "GLFW_FEATURE_UNAVAILABLE",
	FeatureUnimplemented: "GLFW_FEATURE_UNIMPLEMENTED",
	PlatformUnavailable:  "GLFW_PLATFORM_UNAVAILABLE",
}

// String returns the GLFW macro name of the code, or "ErrorCode(0x...)"
// for codes this package does not know.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(0x%08X)", int(c))
}

// Known reports whether c is one of the codes defined by GLFW 3.4.
func (c ErrorCode) Known() bool {
	_, ok := codeNames[c]
	return ok
}
