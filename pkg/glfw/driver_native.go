//go:build glfw && cgo

package glfw

// #cgo LDFLAGS: -lglfw
// #include <GLFW/glfw3.h>
//
// void installErrorCallback(void);
// void removeErrorCallback(void);
import "C"

import (
	"sync/atomic"

	"github.com/StricklySoft/stricklysoft-glfw/pkg/errbridge"
	sserr "github.com/StricklySoft/stricklysoft-glfw/pkg/errors"
)

// nativeCallback holds the Go callback the C trampoline dispatches to.
// GLFW keeps a single global slot, so this is global as well.
var nativeCallback atomic.Pointer[errbridge.Callback]

//export goErrorCallback
func goErrorCallback(code C.int, desc *C.char) {
	cb := nativeCallback.Load()
	if cb == nil {
		return
	}
	// desc is owned by GLFW and only valid during this call; GoString copies it.
	(*cb)(int(code), C.GoString(desc))
}

type nativeDriver struct{}

func newNativeDriver() driver {
	return nativeDriver{}
}

func (nativeDriver) init() error {
	if C.glfwInit() == C.GLFW_FALSE {
		return sserr.New(sserr.CodeUnavailableLibrary, "glfw: glfwInit returned GLFW_FALSE")
	}
	return nil
}

func (nativeDriver) terminate() {
	C.glfwTerminate()
}

func (nativeDriver) setErrorCallback(cb errbridge.Callback) {
	if cb == nil {
		nativeCallback.Store(nil)
		C.removeErrorCallback()
		return
	}
	nativeCallback.Store(&cb)
	C.installErrorCallback()
}
