//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfw/internal/bindings"
)

// ErrorCallback is called for each error GLFW reports. description may be
// empty.
type ErrorCallback func(code ErrorCode, description string)

// ErrorHandlers is the process-wide slot for the GLFW error callback. GLFW
// reports errors without any window or user context, so there is exactly
// one slot; setting it replaces the previous callback.
//
// The zero value is an empty slot ready to use.
type ErrorHandlers struct {
	mu sync.RWMutex
	cb ErrorCallback
}

// Set installs cb and returns the previously installed callback.
// Pass nil to clear the slot.
func (h *ErrorHandlers) Set(cb ErrorCallback) ErrorCallback {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.cb
	h.cb = cb
	return prev
}

// Get returns the installed callback, or nil.
func (h *ErrorHandlers) Get() ErrorCallback {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cb
}

// Dispatch invokes the installed callback with code and description.
// It reports false if no callback is installed.
func (h *ErrorHandlers) Dispatch(code ErrorCode, description string) bool {
	cb := h.Get()
	if cb == nil {
		return false
	}
	cb(code, description)
	return true
}

var errorHandlers ErrorHandlers

// DefaultErrorHandlers returns the slot consulted by the native error
// callback.
func DefaultErrorHandlers() *ErrorHandlers {
	return &errorHandlers
}

// SetErrorCallback sets the process-wide error callback and returns the
// previous one. The last callback set wins. Errors reported while no
// callback is set are written to the package logger.
//
// The callback is invoked on the thread that triggered the error, which for
// a correctly used GLFW is the main thread.
func SetErrorCallback(cb ErrorCallback) ErrorCallback {
	prev := errorHandlers.Set(cb)
	installErrorCallback()
	return prev
}

var errorCallback = &nativeCallback{fn: errorTrampoline}

// installErrorCallback points GLFW at errorTrampoline once the library is
// loaded. glfwSetErrorCallback may be called before glfwInit.
func installErrorCallback() {
	if bindings.SetErrorCallback == nil {
		return
	}
	bindings.SetErrorCallback(errorCallback.pointer())
}

// errorTrampoline is called by GLFW and forwards to the Go callback.
// Signature: void (*)(int error_code, const char *description)
func errorTrampoline(_ purego.CDecl, code int32, description *byte) {
	dispatchError(ErrorCode(code), bindings.GoString(description))
}

func dispatchError(code ErrorCode, description string) {
	if errorHandlers.Dispatch(code, description) {
		return
	}
	logger().Warn("unhandled glfw error", "code", code.String(), "description", description)
}
