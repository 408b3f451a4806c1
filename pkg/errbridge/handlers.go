package errbridge

import (
	"fmt"
	"log/slog"
)

// LogHandler returns a [Handler] that writes every report to logger at
// Error level. A nil logger selects [slog.Default].
func LogHandler(logger *slog.Logger) Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(code int, message string) {
		logger.Error("windowing library error",
			"code", code,
			"code_hex", fmt.Sprintf("0x%08X", code),
			"message", message,
		)
	}
}

// LastError is a host handler that keeps only the most recent unread
// report. It never blocks the reporting goroutine: a new report replaces
// an older one that has not been taken yet.
//
// A typical use is enriching the failure of a library call that reports
// its cause through the error callback:
//
//	last := errbridge.NewLastError()
//	errbridge.Install(lib, last.Handle)
//	if err := lib.Init(); err != nil {
//	    return fmt.Errorf("%w: %v", err, last.Err())
//	}
//
// The zero value is not usable; use [NewLastError].
type LastError struct {
	ch chan Event
}

// NewLastError creates an empty [LastError].
func NewLastError() *LastError {
	return &LastError{ch: make(chan Event, 1)}
}

// Handle records a report. It has the [Handler] signature.
func (l *LastError) Handle(code int, message string) {
	ev := Event{Code: code, Message: message}
	for {
		select {
		case l.ch <- ev:
			return
		default:
		}
		// Slot occupied: drop the stale report and retry.
		select {
		case <-l.ch:
		default:
		}
	}
}

// Err takes the pending report, if any. It returns nil when no report is
// waiting. The returned error is an [Event].
func (l *LastError) Err() error {
	select {
	case ev := <-l.ch:
		return ev
	default:
		return nil
	}
}

// C returns the channel the pending report is delivered on, for use in a
// select statement. Receiving from it takes the report.
func (l *LastError) C() <-chan Event {
	return l.ch
}
