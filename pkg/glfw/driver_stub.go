//go:build !glfw || !cgo

package glfw

import (
	"github.com/StricklySoft/stricklysoft-glfw/pkg/errbridge"
	sserr "github.com/StricklySoft/stricklysoft-glfw/pkg/errors"
)

// stubDriver stands in for the native binding in builds without the glfw
// tag. It never reports errors because there is no library to raise them.
type stubDriver struct{}

func newNativeDriver() driver {
	return stubDriver{}
}

func (stubDriver) init() error {
	return sserr.New(sserr.CodeUnavailableLibrary,
		"glfw: native library not linked (build with -tags glfw and cgo enabled)")
}

func (stubDriver) terminate() {}

func (stubDriver) setErrorCallback(errbridge.Callback) {}
