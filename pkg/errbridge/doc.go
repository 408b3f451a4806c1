// Package errbridge forwards errors reported by a native windowing library
// to a handler supplied by the host application.
//
// A windowing library such as GLFW exposes exactly one process-wide error
// callback slot. Errors it detects (invalid parameters, platform failures,
// API misuse) are delivered through that slot or lost. A [Bridge] installs
// a single forwarding function into the slot via [Bridge.Initialize]; from
// then on every report reaches the host [Handler] unchanged and in the
// order the library raised it.
//
// # Registration
//
// The slot is modelled by the [Registrar] interface so tests can substitute
// a fake library (see package errbridgetest). Registration replaces whatever
// callback was installed before, so calling Initialize repeatedly never
// causes double delivery. Errors raised before Initialize are not observed;
// there is no buffering or replay.
//
// # Message Lifetime
//
// The library owns the description buffer only for the duration of the
// callback. Registrar implementations must hand the bridge a Go string,
// which is an immutable copy, so handlers may retain it freely.
//
// # Threading
//
// The handler runs synchronously on whichever goroutine the library invokes
// the callback from (for GLFW, the thread servicing the event loop).
// Handlers should return quickly. A panicking handler is recovered and
// logged so the panic never unwinds into native code.
//
// # OpenTelemetry Integration
//
// Each forwarded report is recorded as a span named "errbridge.LibraryError"
// under the tracer scope
// "github.com/StricklySoft/stricklysoft-glfw/pkg/errbridge".
package errbridge
