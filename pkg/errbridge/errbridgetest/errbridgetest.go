// Package errbridgetest provides test doubles for code built on package
// errbridge: a fake windowing library with a single error callback slot
// and a handler that records what it receives.
package errbridgetest

import (
	"sync"

	"github.com/StricklySoft/stricklysoft-glfw/pkg/errbridge"
)

// Library is an in-memory stand-in for a windowing library. Like GLFW it
// has exactly one error callback slot; [Library.SetErrorCallback] replaces
// its contents. [Library.Raise] reports an error to whatever is installed,
// or drops it when the slot is empty.
//
// Library is safe for concurrent use. The callback is invoked without any
// lock held, so it may call back into the Library.
type Library struct {
	mu            sync.Mutex
	cb            errbridge.Callback
	registrations int
}

var _ errbridge.Registrar = (*Library)(nil)

// NewLibrary creates a Library with an empty callback slot.
func NewLibrary() *Library {
	return &Library{}
}

// SetErrorCallback installs cb, replacing any previous callback.
func (l *Library) SetErrorCallback(cb errbridge.Callback) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cb = cb
	l.registrations++
}

// Raise reports an error the way the native library would. It returns
// true if a callback was installed to receive it.
func (l *Library) Raise(code int, message string) bool {
	l.mu.Lock()
	cb := l.cb
	l.mu.Unlock()

	if cb == nil {
		return false
	}
	cb(code, message)
	return true
}

// Registered reports whether the callback slot is occupied.
func (l *Library) Registered() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cb != nil
}

// Registrations returns how many times SetErrorCallback has been called.
func (l *Library) Registrations() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registrations
}

// Recorder is a host handler that appends every report it receives.
type Recorder struct {
	mu     sync.Mutex
	events []errbridge.Event
}

// Handle records a report. It has the [errbridge.Handler] signature.
func (r *Recorder) Handle(code int, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, errbridge.Event{Code: code, Message: message})
}

// Events returns a copy of the reports received so far, in arrival order.
func (r *Recorder) Events() []errbridge.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]errbridge.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of reports received so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
