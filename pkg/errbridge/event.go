package errbridge

import (
	"fmt"
)

// Callback is the function shape the windowing library invokes when it
// detects an internal error. code is defined by the library's own error
// taxonomy; message is a human-readable description.
type Callback func(code int, message string)

// Handler is the host application's error handler. The bridge calls it
// with exactly the code and message the library supplied.
type Handler func(code int, message string)

// Registrar is the windowing library's error callback registration point.
// Implementations hold a single slot: SetErrorCallback replaces any
// previously installed callback, and a nil cb clears the slot.
type Registrar interface {
	SetErrorCallback(cb Callback)
}

// RegistrarFunc adapts a plain function to the [Registrar] interface.
type RegistrarFunc func(cb Callback)

// SetErrorCallback calls f(cb).
func (f RegistrarFunc) SetErrorCallback(cb Callback) {
	f(cb)
}

// Event is the value form of a single library error report. The bridge
// never constructs or stores Events; they exist for handlers that choose
// to retain a report, such as [LastError].
type Event struct {
	Code    int
	Message string
}

// Error implements the error interface so an Event can travel through
// ordinary Go error plumbing.
func (e Event) Error() string {
	return fmt.Sprintf("windowing library error 0x%08X: %s", e.Code, e.Message)
}
