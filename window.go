//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/glfw/internal/bindings"
	"github.com/obinnaokechukwu/glfw/internal/handles"
)

// windows resolves native window handles to their wrappers for the callback
// trampolines.
var windows = handles.NewRegistry[Window]()

// Window is a GLFW window and its OpenGL or OpenGL ES context.
//
// A Window exclusively owns its native handle. Always use it through the
// pointer returned by CreateWindow and release it with Destroy. Methods on a
// destroyed window are no-ops returning zero values.
type Window struct {
	mu       sync.Mutex
	handle   uintptr
	cursor   *Cursor
	handlers windowHandlers

	destroyOnce sync.Once
}

// CreateWindow creates a window and its context.
//
// monitor selects full screen mode on that monitor; nil creates a windowed
// window. share is a window whose context objects the new context shares,
// or nil. hints are applied immediately before creation. Afterwards every
// window hint is reset to its default, including ones set earlier with
// WindowHint, so hints affect only the window created next.
//
// CreateWindow returns ErrNotInitialized before Init, ErrDestroyed if share
// was destroyed and ErrInvalidHint for string hints. When GLFW fails to
// create the window, the returned error is a *CreationError wrapping the
// *Error GLFW reported.
func CreateWindow(width, height int, title string, monitor *Monitor, share *Window, hints ...HintValue) (*Window, error) {
	if bindings.CreateWindow == nil {
		return nil, ErrNotLoaded
	}
	if err := ensureInitialized(); err != nil {
		return nil, err
	}
	for _, h := range hints {
		if h.Hint.takesString() {
			return nil, fmt.Errorf("%w: 0x%08X takes a string, use WindowHintString", ErrInvalidHint, int(h.Hint))
		}
	}
	var shareHandle uintptr
	if share != nil {
		if shareHandle = share.Handle(); shareHandle == 0 {
			return nil, fmt.Errorf("%w: shared context window", ErrDestroyed)
		}
	}

	for _, h := range hints {
		WindowHint(h.Hint, h.Value)
	}
	h := bindings.CreateWindow(int32(width), int32(height), title, monitor.Handle(), shareHandle)
	DefaultWindowHints()
	if h == 0 {
		err := newCreationError("window")
		logger().Debug("window creation failed", "title", title, "error", err)
		return nil, err
	}

	w := newWindow(h)
	logger().Debug("window created", "handle", h, "title", title, "width", width, "height", height)
	return w, nil
}

// newWindow wraps an existing native handle and attaches it to the bridge
// before any event pump can deliver callbacks for it.
func newWindow(handle uintptr) *Window {
	w := &Window{handle: handle}
	windows.Attach(handle, w)
	return w
}

// Destroy destroys the window and its context. Callbacks stop immediately:
// events GLFW still delivers for the handle are dropped. Calling Destroy
// more than once is safe.
func (w *Window) Destroy() {
	w.destroyOnce.Do(func() {
		h := w.release()
		if h == 0 {
			return
		}
		windows.Detach(h)
		if bindings.DestroyWindow != nil {
			bindings.DestroyWindow(h)
		}
		logger().Debug("window destroyed", "handle", h)
	})
}

// release clears the handle and every handler, returning the old handle.
func (w *Window) release() uintptr {
	w.mu.Lock()
	defer w.mu.Unlock()
	h := w.handle
	w.handle = 0
	w.cursor = nil
	w.handlers = windowHandlers{}
	return h
}

// detachAllWindows marks every live wrapper destroyed after glfwTerminate
// already freed the native windows.
func detachAllWindows() {
	for _, w := range windows.DetachAll() {
		w.destroyOnce.Do(func() { w.release() })
	}
	for _, c := range cursors.DetachAll() {
		c.destroyOnce.Do(func() { c.release() })
	}
}

// Handle returns the native GLFWwindow pointer, or 0 for a nil or destroyed
// window.
func (w *Window) Handle() uintptr {
	if w == nil {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handle
}

// ShouldClose reports whether the user or SetShouldClose asked the window
// to close. A destroyed window always reports true.
func (w *Window) ShouldClose() bool {
	h := w.Handle()
	if h == 0 {
		return true
	}
	return bindings.WindowShouldClose(h) == True
}

// SetShouldClose sets the close flag of the window.
func (w *Window) SetShouldClose(value bool) {
	if h := w.Handle(); h != 0 {
		bindings.SetWindowShouldClose(h, int32(boolInt(value)))
	}
}

// Close asks the window to close by setting its close flag. The window
// stays alive until Destroy.
func (w *Window) Close() {
	w.SetShouldClose(true)
}

// Show makes the window visible.
func (w *Window) Show() {
	if h := w.Handle(); h != 0 {
		bindings.ShowWindow(h)
	}
}

// Hide hides the window.
func (w *Window) Hide() {
	if h := w.Handle(); h != 0 {
		bindings.HideWindow(h)
	}
}

// Focus brings the window to front and gives it input focus.
func (w *Window) Focus() {
	if h := w.Handle(); h != 0 {
		bindings.FocusWindow(h)
	}
}

// Iconify minimizes the window.
func (w *Window) Iconify() {
	if h := w.Handle(); h != 0 {
		bindings.IconifyWindow(h)
	}
}

// Restore restores an iconified or maximized window.
func (w *Window) Restore() {
	if h := w.Handle(); h != 0 {
		bindings.RestoreWindow(h)
	}
}

// Maximize maximizes the window.
func (w *Window) Maximize() {
	if h := w.Handle(); h != 0 {
		bindings.MaximizeWindow(h)
	}
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	if h := w.Handle(); h != 0 {
		bindings.SetWindowTitle(h, title)
	}
}

// Size returns the size of the content area in screen coordinates.
func (w *Window) Size() (width, height int) {
	h := w.Handle()
	if h == 0 {
		return 0, 0
	}
	var cw, ch int32
	bindings.GetWindowSize(h, &cw, &ch)
	return int(cw), int(ch)
}

// Width returns the width of the content area in screen coordinates.
func (w *Window) Width() int {
	width, _ := w.Size()
	return width
}

// Height returns the height of the content area in screen coordinates.
func (w *Window) Height() int {
	_, height := w.Size()
	return height
}

// SetSize resizes the content area.
func (w *Window) SetSize(width, height int) {
	if h := w.Handle(); h != 0 {
		bindings.SetWindowSize(h, int32(width), int32(height))
	}
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	h := w.Handle()
	if h == 0 {
		return 0, 0
	}
	var fw, fh int32
	bindings.GetFramebufferSize(h, &fw, &fh)
	return int(fw), int(fh)
}

// FrameWidth returns the framebuffer width in pixels.
func (w *Window) FrameWidth() int {
	width, _ := w.FramebufferSize()
	return width
}

// FrameHeight returns the framebuffer height in pixels.
func (w *Window) FrameHeight() int {
	_, height := w.FramebufferSize()
	return height
}

// Pos returns the position of the upper-left corner of the content area.
func (w *Window) Pos() (x, y int) {
	h := w.Handle()
	if h == 0 {
		return 0, 0
	}
	var px, py int32
	bindings.GetWindowPos(h, &px, &py)
	return int(px), int(py)
}

// SetPos moves the upper-left corner of the content area.
func (w *Window) SetPos(x, y int) {
	if h := w.Handle(); h != 0 {
		bindings.SetWindowPos(h, int32(x), int32(y))
	}
}

// Attrib returns a window attribute such as Focused, Iconified or Hovered.
func (w *Window) Attrib(attrib Hint) int {
	h := w.Handle()
	if h == 0 {
		return 0
	}
	return int(bindings.GetWindowAttrib(h, int32(attrib)))
}

// SetAttrib changes one of Decorated, Resizable, Floating, AutoIconify or
// FocusOnShow. It is a no-op when the loaded GLFW predates it.
func (w *Window) SetAttrib(attrib Hint, value int) {
	h := w.Handle()
	if h == 0 || bindings.SetWindowAttrib == nil {
		return
	}
	bindings.SetWindowAttrib(h, int32(attrib), int32(value))
}

// MakeContextCurrent makes the window's context current on the calling
// thread.
func (w *Window) MakeContextCurrent() {
	if h := w.Handle(); h != 0 {
		bindings.MakeContextCurrent(h)
	}
}

// DetachCurrentContext detaches whatever context is current on the calling
// thread.
func DetachCurrentContext() {
	if bindings.MakeContextCurrent == nil {
		return
	}
	bindings.MakeContextCurrent(0)
}

// SwapBuffers swaps the front and back buffers of the window.
func (w *Window) SwapBuffers() {
	if h := w.Handle(); h != 0 {
		bindings.SwapBuffers(h)
	}
}

// CursorPos returns the cursor position relative to the content area.
func (w *Window) CursorPos() (x, y float64) {
	h := w.Handle()
	if h == 0 {
		return 0, 0
	}
	bindings.GetCursorPos(h, &x, &y)
	return x, y
}

// SetCursorPos moves the cursor relative to the content area.
func (w *Window) SetCursorPos(x, y float64) {
	if h := w.Handle(); h != 0 {
		bindings.SetCursorPos(h, x, y)
	}
}

// CenterCursor moves the cursor to the center of the content area.
func (w *Window) CenterCursor() {
	width, height := w.Size()
	w.SetCursorPos(float64(width/2), float64(height/2))
}

// SetCursor sets the cursor image shown over the content area.
// nil restores the default arrow.
func (w *Window) SetCursor(c *Cursor) {
	h := w.Handle()
	if h == 0 {
		return
	}
	bindings.SetCursor(h, c.Handle())
	w.mu.Lock()
	w.cursor = c
	w.mu.Unlock()
}

// Cursor returns the cursor last set with SetCursor, or nil.
func (w *Window) Cursor() *Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// GetKey returns the last state reported for key: Press or Release.
func (w *Window) GetKey(key Key) Action {
	h := w.Handle()
	if h == 0 || !key.Known() {
		return Release
	}
	return ActionFromRaw(int(bindings.GetKey(h, int32(key))))
}

// GetMouseButton returns the last state reported for button.
func (w *Window) GetMouseButton(button MouseButton) Action {
	h := w.Handle()
	if h == 0 || button == MouseButtonUnknown {
		return Release
	}
	return ActionFromRaw(int(bindings.GetMouseButton(h, int32(button))))
}

// InputMode returns the value of an input mode.
func (w *Window) InputMode(mode InputMode) int {
	h := w.Handle()
	if h == 0 {
		return 0
	}
	return int(bindings.GetInputMode(h, int32(mode)))
}

// SetInputMode sets an input mode, for example CursorMode to CursorDisabled.
func (w *Window) SetInputMode(mode InputMode, value int) {
	if h := w.Handle(); h != 0 {
		bindings.SetInputMode(h, int32(mode), int32(value))
	}
}

// KeyName returns the layout-specific name of a printable key, or "" when
// the key has none. If key is KeyUnknown, scancode identifies the key.
func KeyName(key Key, scancode int) string {
	if bindings.GetKeyName == nil {
		return ""
	}
	return bindings.GoString(bindings.GetKeyName(int32(key), int32(scancode)))
}

// KeyScancode returns the platform-specific scancode of key, or -1.
func KeyScancode(key Key) int {
	if bindings.GetKeyScancode == nil {
		return -1
	}
	return int(bindings.GetKeyScancode(int32(key)))
}
