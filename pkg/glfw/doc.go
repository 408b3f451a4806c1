// Package glfw connects package errbridge to the GLFW 3 windowing library.
//
// It provides the GLFW error code taxonomy ([ErrorCode]) and a refcounted
// [Library] handle whose SetErrorCallback method satisfies
// [errbridge.Registrar]:
//
//	lib := glfw.Default()
//	bridge, err := errbridge.Install(lib, func(code int, msg string) {
//	    slog.Error("glfw", "code", glfw.ErrorCode(code), "message", msg)
//	})
//	if err != nil {
//	    return err
//	}
//	if err := lib.Init(); err != nil {
//	    return err
//	}
//	defer lib.Terminate()
//
// The native binding is compiled only with the "glfw" build tag and cgo
// enabled, and links against the system libglfw. Without the tag a stub
// is used whose Init always fails with [sserr.CodeUnavailableLibrary],
// which keeps the rest of the module buildable on machines without GLFW.
//
// GLFW requires Init and Terminate to be called from the main thread.
// Use runtime.LockOSThread in main to pin it.
package glfw
