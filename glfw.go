//go:build !ios && !android && (amd64 || arm64)

// Package glfw provides bindings to GLFW 3.3 for creating windows, OpenGL
// contexts and receiving input, without CGO using purego.
//
// The GLFW shared library is located at runtime; set GLFW_LIBRARY to an
// explicit path or GLFW_LIBRARY_PATH to extra directories to search.
//
// GLFW is not thread safe. Init, window creation, the event functions and
// every callback must run on the main thread, so programs lock it in init:
//
//	func init() {
//		runtime.LockOSThread()
//	}
//
// Callbacks never run concurrently: they are invoked synchronously from
// PollEvents, WaitEvents and WaitEventsTimeout, in the order GLFW delivers
// them.
package glfw

import (
	"fmt"
	"sync/atomic"

	"github.com/obinnaokechukwu/glfw/internal/bindings"
)

// loadLibrary is swapped out by tests that run against fake bindings.
var loadLibrary = bindings.Load

// initialized is true between a successful Init and Terminate.
var initialized atomic.Bool

// Init loads the GLFW library and initializes it. Errors GLFW reports from
// this point on go to the callback set with SetErrorCallback.
// Calling Init again after Terminate re-initializes GLFW.
func Init() error {
	if err := loadLibrary(); err != nil {
		logger().Warn("glfw library not loaded", "error", err, "searched", bindings.LibrarySearchPaths())
		return err
	}
	logger().Info("glfw library loaded", "path", bindings.LibraryPath())

	installErrorCallback()

	if bindings.Init() != True {
		if err := lastError(); err != nil {
			return fmt.Errorf("%w: %w", ErrInitFailed, err)
		}
		return ErrInitFailed
	}
	initialized.Store(true)
	logger().Debug("glfw initialized", "version", VersionString())
	return nil
}

// Terminate destroys all remaining windows and cursors and frees GLFW
// resources. Wrappers of destroyed windows stop receiving events.
func Terminate() {
	if bindings.Terminate == nil {
		return
	}
	bindings.Terminate()
	initialized.Store(false)
	detachAllWindows()
}

// ensureInitialized reports why a native object cannot be created yet.
func ensureInitialized() error {
	if !initialized.Load() {
		return ErrNotInitialized
	}
	return nil
}

// IsLoaded returns true if the GLFW library has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// LibraryPath returns the path the GLFW library was loaded from.
func LibraryPath() string {
	return bindings.LibraryPath()
}

// FindLibrary reports where Init would find the GLFW library without
// loading it. When nothing is found the error lists the directories
// searched.
func FindLibrary() (string, error) {
	return bindings.FindLibrary()
}

// Version returns the version of the loaded GLFW library.
func Version() (major, minor, rev int) {
	if bindings.GetVersion == nil {
		return 0, 0, 0
	}
	var ma, mi, re int32
	bindings.GetVersion(&ma, &mi, &re)
	return int(ma), int(mi), int(re)
}

// VersionString returns the compile-time description GLFW reports, for
// example "3.3.8 X11 GLX EGL OSMesa clock_gettime evdev shared".
func VersionString() string {
	if bindings.GetVersionString == nil {
		return ""
	}
	return bindings.GetVersionString()
}

// PollEvents processes pending events and returns immediately.
// Window callbacks are invoked from inside this call.
func PollEvents() {
	if bindings.PollEvents == nil {
		return
	}
	bindings.PollEvents()
}

// WaitEvents blocks until at least one event is available, then processes
// all pending events. It returns immediately if GLFW is not loaded.
func WaitEvents() {
	if bindings.WaitEvents == nil {
		return
	}
	bindings.WaitEvents()
}

// WaitEventsTimeout is like WaitEvents but returns after timeout seconds
// even if no event arrived.
func WaitEventsTimeout(timeout float64) {
	if bindings.WaitEventsTimeout == nil {
		return
	}
	bindings.WaitEventsTimeout(timeout)
}

// PostEmptyEvent wakes up a blocked WaitEvents. It may be called from any
// goroutine.
func PostEmptyEvent() {
	if bindings.PostEmptyEvent == nil {
		return
	}
	bindings.PostEmptyEvent()
}

// GetTime returns the GLFW timer in seconds since Init or the last SetTime,
// or 0 if GLFW is not loaded.
func GetTime() float64 {
	if bindings.GetTime == nil {
		return 0
	}
	return bindings.GetTime()
}

// SetTime resets the GLFW timer.
func SetTime(t float64) {
	if bindings.SetTime == nil {
		return
	}
	bindings.SetTime(t)
}

// SwapInterval sets the number of screen updates to wait for before
// swapping buffers of the current context.
func SwapInterval(interval int) {
	if bindings.SwapInterval == nil {
		return
	}
	bindings.SwapInterval(int32(interval))
}
