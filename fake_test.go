//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/obinnaokechukwu/glfw/internal/bindings"
)

// fakeNative stands in for the GLFW library by replacing the function
// bindings the package calls.
type fakeNative struct {
	nextHandle uintptr
	failCreate bool

	hints         []HintValue
	created       [][]HintValue // hints in effect at each glfwCreateWindow
	defaultsCalls int
	titles        []string
	destroyed     []uintptr

	cursorsDestroyed []uintptr
	cursorSet        []uintptr
	cursorPos        [][2]float64

	windowWidth, windowHeight int32

	errCode int32
	errDesc []byte

	monitorName []byte
	terminated  int
}

func installFakeNative(t *testing.T) *fakeNative {
	t.Helper()

	restore := bindings.Stash()
	wasInitialized := initialized.Swap(true)

	f := &fakeNative{nextHandle: 0x1000, windowWidth: 640, windowHeight: 480}

	bindings.CreateWindow = func(width, height int32, title string, monitor, share uintptr) uintptr {
		f.created = append(f.created, append([]HintValue(nil), f.hints...))
		if f.failCreate {
			return 0
		}
		f.titles = append(f.titles, title)
		f.nextHandle += 0x10
		return f.nextHandle
	}
	bindings.DestroyWindow = func(window uintptr) {
		f.destroyed = append(f.destroyed, window)
	}
	bindings.WindowHint = func(hint, value int32) {
		f.hints = append(f.hints, HintValue{Hint: Hint(hint), Value: int(value)})
	}
	bindings.DefaultWindowHints = func() {
		f.defaultsCalls++
		f.hints = nil
	}
	bindings.GetError = func(description **byte) int32 {
		code := f.errCode
		if code == 0 {
			return 0
		}
		f.errCode = 0
		if description != nil && len(f.errDesc) > 0 {
			*description = &f.errDesc[0]
		}
		return code
	}
	bindings.CreateStandardCursor = func(shape int32) uintptr {
		if f.failCreate {
			return 0
		}
		f.nextHandle += 0x10
		return f.nextHandle
	}
	bindings.DestroyCursor = func(cursor uintptr) {
		f.cursorsDestroyed = append(f.cursorsDestroyed, cursor)
	}
	bindings.SetCursor = func(window, cursor uintptr) {
		f.cursorSet = append(f.cursorSet, cursor)
	}
	bindings.GetWindowSize = func(window uintptr, width, height *int32) {
		*width, *height = f.windowWidth, f.windowHeight
	}
	bindings.SetCursorPos = func(window uintptr, x, y float64) {
		f.cursorPos = append(f.cursorPos, [2]float64{x, y})
	}
	bindings.GetPrimaryMonitor = func() uintptr {
		if f.monitorName == nil {
			return 0
		}
		return 0x9000
	}
	bindings.GetMonitorName = func(monitor uintptr) *byte {
		return &f.monitorName[0]
	}
	bindings.Terminate = func() {
		f.terminated++
	}

	t.Cleanup(func() {
		restore()
		initialized.Store(wasInitialized)
		windows.DetachAll()
		cursors.DetachAll()
	})
	return f
}

// setError makes the next glfwGetError report code and description.
func (f *fakeNative) setError(code ErrorCode, description string) {
	f.errCode = int32(code)
	f.errDesc = append([]byte(description), 0)
}

// newTestWindow wraps a made-up handle. It installs fakes so no call can
// reach a real GLFW library with the made-up handle.
func newTestWindow(t *testing.T, handle uintptr) *Window {
	t.Helper()
	installFakeNative(t)
	w := newWindow(handle)
	t.Cleanup(func() { windows.Detach(handle) })
	return w
}

// captureLogs routes package diagnostics into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}
