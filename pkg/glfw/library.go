package glfw

import (
	"sync"
	"sync/atomic"

	"github.com/StricklySoft/stricklysoft-glfw/pkg/errbridge"
	sserr "github.com/StricklySoft/stricklysoft-glfw/pkg/errors"
)

// driver is the native surface a Library drives.
type driver interface {
	init() error
	terminate()
	setErrorCallback(cb errbridge.Callback)
}

// Library is a handle to the process-wide GLFW instance. Several
// independent clients may share it: the native library is initialised by
// the first [Library.Init] and terminated by the [Library.Terminate] that
// releases the last client.
//
// Init and Terminate are serialised by a lock held while GLFW runs, and
// GLFW reports errors synchronously from inside those calls. An error
// handler may call Clients and SetErrorCallback, but must not call Init or
// Terminate.
type Library struct {
	// initMu serialises client transitions. SetErrorCallback and Clients
	// never take it.
	initMu  sync.Mutex
	drv     driver
	clients atomic.Int32
}

var _ errbridge.Registrar = (*Library)(nil)

var defaultLibrary = &Library{drv: newNativeDriver()}

// Default returns the process-wide Library backed by the native binding.
func Default() *Library {
	return defaultLibrary
}

// Init registers a client, initialising GLFW if no other client is
// active. On failure the client is not registered and a
// [sserr.CodeUnavailableLibrary] error is returned; GLFW reports the
// specific cause through the error callback before Init returns.
//
// Every successful Init must be paired with a call to Terminate.
func (l *Library) Init() error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.clients.Load() == 0 {
		if err := l.drv.init(); err != nil {
			return sserr.Wrap(err, sserr.CodeUnavailableLibrary,
				"glfw: initialization failed")
		}
	}
	l.clients.Add(1)
	return nil
}

// Terminate releases a client. When the last client is released GLFW is
// terminated and all remaining windows are destroyed. Returns a
// [sserr.CodeConflict] error if there is no active client.
func (l *Library) Terminate() error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.clients.Load() == 0 {
		return sserr.New(sserr.CodeConflict,
			"glfw: Terminate called without a matching Init")
	}
	if l.clients.Add(-1) == 0 {
		l.drv.terminate()
	}
	return nil
}

// Clients returns the number of active clients. It does not block and is
// safe to call from an error handler.
func (l *Library) Clients() int {
	return int(l.clients.Load())
}

// SetErrorCallback installs cb as GLFW's error callback, replacing any
// previous one. A nil cb removes it. Unlike most GLFW functions it may be
// called before Init, which is how errors raised during initialisation
// become observable. It does not wait for a running Init or Terminate.
// The driver keeps the slot consistent on its own.
func (l *Library) SetErrorCallback(cb errbridge.Callback) {
	l.drv.setErrorCallback(cb)
}
