//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/glfw/internal/bindings"
)

// Common errors
var (
	// ErrNotLoaded indicates the GLFW library is not loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates the GLFW shared library could not be found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrInitFailed indicates glfwInit reported failure.
	ErrInitFailed = errors.New("glfw: initialization failed")

	// ErrNotInitialized indicates the library is loaded but Init has not
	// succeeded, or Terminate has been called since.
	ErrNotInitialized = errors.New("glfw: not initialized; call glfw.Init() first")

	// ErrDestroyed indicates a Window passed as an argument was already
	// released by Destroy or Terminate.
	ErrDestroyed = errors.New("glfw: object already destroyed")

	// ErrInvalidHint indicates a hint passed to CreateWindow that cannot be
	// applied as a numeric HintValue.
	ErrInvalidHint = errors.New("glfw: invalid hint")

	// ErrCreateFailed is matched by every CreationError.
	ErrCreateFailed = errors.New("glfw: failed to create native object")
)

// ErrorCode is a GLFW error code as reported to the error callback.
type ErrorCode int

// GLFW error codes.
const (
	NoError            ErrorCode = 0
	NotInitialized     ErrorCode = 0x00010001 // GLFW has not been initialized
	NoCurrentContext   ErrorCode = 0x00010002 // No context is current for this thread
	InvalidEnum        ErrorCode = 0x00010003 // One of the arguments was an invalid enum value
	InvalidValue       ErrorCode = 0x00010004 // One of the arguments was an invalid value
	OutOfMemory        ErrorCode = 0x00010005 // A memory allocation failed
	APIUnavailable     ErrorCode = 0x00010006 // GLFW could not find support for the requested API
	VersionUnavailable ErrorCode = 0x00010007 // The requested OpenGL or OpenGL ES version is not available
	PlatformError      ErrorCode = 0x00010008 // A platform-specific error occurred
	FormatUnavailable  ErrorCode = 0x00010009 // The requested format is not supported or available
	NoWindowContext    ErrorCode = 0x0001000A // The window does not have an OpenGL or OpenGL ES context
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "no error"
	case NotInitialized:
		return "not initialized"
	case NoCurrentContext:
		return "no current context"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case OutOfMemory:
		return "out of memory"
	case APIUnavailable:
		return "API unavailable"
	case VersionUnavailable:
		return "version unavailable"
	case PlatformError:
		return "platform error"
	case FormatUnavailable:
		return "format unavailable"
	case NoWindowContext:
		return "no window context"
	}
	return fmt.Sprintf("ErrorCode(0x%08X)", int(c))
}

// Error is an error reported by GLFW.
type Error struct {
	Code        ErrorCode // Raw GLFW error code
	Description string    // Human-readable description, may be empty
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Description == "" {
		return "glfw: " + e.Code.String()
	}
	return fmt.Sprintf("glfw: %s: %s", e.Code, e.Description)
}

// Code returns the GLFW error code from an error, or NoError if err does not
// wrap an *Error.
func Code(err error) ErrorCode {
	var glfwErr *Error
	if errors.As(err, &glfwErr) {
		return glfwErr.Code
	}
	return NoError
}

// IsCode reports whether err wraps a GLFW error with the given code.
func IsCode(err error, code ErrorCode) bool {
	return code != NoError && Code(err) == code
}

// CreationError reports that GLFW returned a null handle for a window or
// cursor. Err is the GLFW error describing why, if GLFW reported one.
type CreationError struct {
	Kind string // "window" or "cursor"
	Err    error
}

func (e *CreationError) Error() string {
	if e.Err == nil {
		return "glfw: failed to create " + e.Kind
	}
	return fmt.Sprintf("glfw: failed to create %s: %v", e.Kind, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCreateFailed) true for every CreationError.
func (e *CreationError) Is(target error) bool {
	return target == ErrCreateFailed
}

func newCreationError(kind string) error {
	err := &CreationError{Kind: kind}
	if last := lastError(); last != nil {
		err.Err = last
	}
	return err
}

// lastError drains GLFW's last error for this thread.
// Returns nil when there is none or the library predates glfwGetError.
func lastError() *Error {
	if bindings.GetError == nil {
		return nil
	}
	var desc *byte
	code := bindings.GetError(&desc)
	if code == int32(NoError) {
		return nil
	}
	return &Error{Code: ErrorCode(code), Description: bindings.GoString(desc)}
}
