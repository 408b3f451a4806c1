package errbridge

import (
	"context"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	sserr "github.com/StricklySoft/stricklysoft-glfw/pkg/errors"
)

// tracerName is the OpenTelemetry instrumentation scope name for this package.
const tracerName = "github.com/StricklySoft/stricklysoft-glfw/pkg/errbridge"

// Span attribute keys for forwarded reports.
const (
	attrErrorCode    = "glfw.error.code"
	attrErrorMessage = "glfw.error.message"
)

// Bridge installs a forwarding callback into a windowing library and relays
// every report to the host [Handler]. Use [NewBridgeBuilder] to create one.
//
// All methods are safe for concurrent use. The registrar and handler are
// fixed at construction.
type Bridge struct {
	registrar Registrar
	handler   Handler

	registered atomic.Bool

	tracer trace.Tracer
	logger *slog.Logger
}

// Initialize installs the bridge's forwarding callback into the registrar's
// slot. It must be called before any library operation whose errors the
// host wants to observe. Calling it again replaces the slot's contents with
// the same forwarding function, so each later report is still delivered
// exactly once.
//
// Initialize has no failure mode.
func (b *Bridge) Initialize() {
	b.registrar.SetErrorCallback(b.onLibraryError)
	if b.registered.CompareAndSwap(false, true) {
		b.logger.Debug("errbridge: error callback registered")
	}
}

// State reports whether the forwarding callback has been installed.
func (b *Bridge) State() State {
	if b.registered.Load() {
		return StateRegistered
	}
	return StateUnregistered
}

// onLibraryError is the callback handed to the registrar. It passes code
// and message to the host handler untouched. Panics raised by the handler
// are recovered and logged.
func (b *Bridge) onLibraryError(code int, message string) {
	_, span := b.tracer.Start(context.Background(), "errbridge.LibraryError",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.Int(attrErrorCode, code),
			attribute.String(attrErrorMessage, message),
		),
	)
	defer span.End()
	span.SetStatus(codes.Error, message)

	defer func() {
		if r := recover(); r != nil {
			span.AddEvent("handler panicked")
			b.logger.Error("errbridge: error handler panicked",
				"panic", r,
				"code", code,
				"message", message,
			)
		}
	}()
	b.handler(code, message)
}

// Install builds a Bridge with default settings and initializes it. It is
// the one-call setup for hosts that need no custom logger.
//
// Example:
//
//	bridge, err := errbridge.Install(glfw.Default(), func(code int, msg string) {
//	    log.Printf("glfw: %s (0x%X)", msg, code)
//	})
func Install(registrar Registrar, handler Handler) (*Bridge, error) {
	b, err := NewBridgeBuilder(registrar, handler).Build()
	if err != nil {
		return nil, err
	}
	b.Initialize()
	return b, nil
}

// =========================================================================
// BridgeBuilder
// =========================================================================

// BridgeBuilder constructs a [Bridge] with validated configuration. All
// configuration methods return the builder for chaining.
//
// Example:
//
//	bridge, err := errbridge.NewBridgeBuilder(glfw.Default(), handler).
//	    WithLogger(logger).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	bridge.Initialize()
type BridgeBuilder struct {
	registrar Registrar
	handler   Handler
	logger    *slog.Logger
}

// NewBridgeBuilder creates a builder for a bridge between registrar and
// handler. Both are validated by [BridgeBuilder.Build].
func NewBridgeBuilder(registrar Registrar, handler Handler) *BridgeBuilder {
	return &BridgeBuilder{
		registrar: registrar,
		handler:   handler,
	}
}

// WithLogger sets the logger used for registration and panic recovery
// messages. If not called, [slog.Default] is used.
func (b *BridgeBuilder) WithLogger(logger *slog.Logger) *BridgeBuilder {
	b.logger = logger
	return b
}

// Build validates the configuration and returns an unregistered [*Bridge].
// Returns a [*sserr.Error] with code [sserr.CodeValidationRequired] if the
// registrar or handler is nil.
func (b *BridgeBuilder) Build() (*Bridge, error) {
	if b.registrar == nil {
		return nil, sserr.New(sserr.CodeValidationRequired,
			"errbridge: registrar must not be nil")
	}
	if b.handler == nil {
		return nil, sserr.New(sserr.CodeValidationRequired,
			"errbridge: handler must not be nil")
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Bridge{
		registrar: b.registrar,
		handler:   b.handler,
		tracer:    otel.Tracer(tracerName),
		logger:    logger,
	}, nil
}
