//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfw/internal/bindings"
)

// KeyCallback receives physical key events. scancode is platform specific
// and stays meaningful even when key is KeyUnknown.
type KeyCallback func(w *Window, key Key, scancode int, action Action, mods ModifierKey)

// CharCallback receives Unicode text input.
type CharCallback func(w *Window, char rune)

// MouseButtonCallback receives mouse button presses and releases.
type MouseButtonCallback func(w *Window, button MouseButton, action Action, mods ModifierKey)

// CursorPosCallback receives cursor movement relative to the content area.
type CursorPosCallback func(w *Window, x, y float64)

// ScrollCallback receives scroll wheel and touchpad offsets.
type ScrollCallback func(w *Window, xoff, yoff float64)

// SizeCallback receives the new content area size in screen coordinates.
type SizeCallback func(w *Window, width, height int)

// FramebufferSizeCallback receives the new framebuffer size in pixels.
type FramebufferSizeCallback func(w *Window, width, height int)

// CloseCallback is called when the user attempts to close the window.
type CloseCallback func(w *Window)

// FocusCallback is called when the window gains or loses input focus.
type FocusCallback func(w *Window, focused bool)

// windowHandlers holds at most one handler per event category.
type windowHandlers struct {
	key             KeyCallback
	char            CharCallback
	mouseButton     MouseButtonCallback
	cursorPos       CursorPosCallback
	scroll          ScrollCallback
	size            SizeCallback
	framebufferSize FramebufferSizeCallback
	close           CloseCallback
	focus           FocusCallback
}

// nativeCallback lazily turns a trampoline into a C function pointer.
// purego callbacks are never freed, so each category gets exactly one
// pointer per process, shared by every window.
type nativeCallback struct {
	once sync.Once
	fn   any
	ptr  uintptr
}

func (c *nativeCallback) pointer() uintptr {
	c.once.Do(func() {
		c.ptr = purego.NewCallback(c.fn)
	})
	return c.ptr
}

var (
	keyCallback             = &nativeCallback{fn: keyTrampoline}
	charCallback            = &nativeCallback{fn: charTrampoline}
	mouseButtonCallback     = &nativeCallback{fn: mouseButtonTrampoline}
	cursorPosCallback       = &nativeCallback{fn: cursorPosTrampoline}
	scrollCallback          = &nativeCallback{fn: scrollTrampoline}
	sizeCallback            = &nativeCallback{fn: sizeTrampoline}
	framebufferSizeCallback = &nativeCallback{fn: framebufferSizeTrampoline}
	closeCallback           = &nativeCallback{fn: closeTrampoline}
	focusCallback           = &nativeCallback{fn: focusTrampoline}
)

// setNative points GLFW at the category trampoline, or clears it.
func (w *Window) setNative(set func(window, cb uintptr) uintptr, cb *nativeCallback, enabled bool) {
	h := w.Handle()
	if h == 0 || set == nil {
		return
	}
	var ptr uintptr
	if enabled {
		ptr = cb.pointer()
	}
	set(h, ptr)
}

// update swaps a handler under the window lock.
func (w *Window) update(fn func(*windowHandlers)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.handlers)
}

// snapshot copies the current handlers so they can be invoked unlocked,
// which lets a handler replace itself or destroy the window.
func (w *Window) snapshot() windowHandlers {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handlers
}

// SetKeyCallback sets the key callback and returns the previous one.
// The last callback set wins; nil removes it.
func (w *Window) SetKeyCallback(cb KeyCallback) (previous KeyCallback) {
	w.update(func(h *windowHandlers) { previous, h.key = h.key, cb })
	w.setNative(bindings.SetKeyCallback, keyCallback, cb != nil)
	return previous
}

// SetCharCallback sets the character callback and returns the previous one.
func (w *Window) SetCharCallback(cb CharCallback) (previous CharCallback) {
	w.update(func(h *windowHandlers) { previous, h.char = h.char, cb })
	w.setNative(bindings.SetCharCallback, charCallback, cb != nil)
	return previous
}

// SetMouseButtonCallback sets the mouse button callback and returns the
// previous one.
func (w *Window) SetMouseButtonCallback(cb MouseButtonCallback) (previous MouseButtonCallback) {
	w.update(func(h *windowHandlers) { previous, h.mouseButton = h.mouseButton, cb })
	w.setNative(bindings.SetMouseButtonCallback, mouseButtonCallback, cb != nil)
	return previous
}

// SetCursorPosCallback sets the cursor position callback and returns the
// previous one.
func (w *Window) SetCursorPosCallback(cb CursorPosCallback) (previous CursorPosCallback) {
	w.update(func(h *windowHandlers) { previous, h.cursorPos = h.cursorPos, cb })
	w.setNative(bindings.SetCursorPosCallback, cursorPosCallback, cb != nil)
	return previous
}

// SetScrollCallback sets the scroll callback and returns the previous one.
func (w *Window) SetScrollCallback(cb ScrollCallback) (previous ScrollCallback) {
	w.update(func(h *windowHandlers) { previous, h.scroll = h.scroll, cb })
	w.setNative(bindings.SetScrollCallback, scrollCallback, cb != nil)
	return previous
}

// SetSizeCallback sets the window size callback and returns the previous
// one.
func (w *Window) SetSizeCallback(cb SizeCallback) (previous SizeCallback) {
	w.update(func(h *windowHandlers) { previous, h.size = h.size, cb })
	w.setNative(bindings.SetWindowSizeCallback, sizeCallback, cb != nil)
	return previous
}

// SetFramebufferSizeCallback sets the framebuffer size callback and returns
// the previous one.
func (w *Window) SetFramebufferSizeCallback(cb FramebufferSizeCallback) (previous FramebufferSizeCallback) {
	w.update(func(h *windowHandlers) { previous, h.framebufferSize = h.framebufferSize, cb })
	w.setNative(bindings.SetFramebufferSizeCallback, framebufferSizeCallback, cb != nil)
	return previous
}

// SetCloseCallback sets the close callback and returns the previous one.
// The close flag is already set when it runs; clear it with
// SetShouldClose(false) to veto the close.
func (w *Window) SetCloseCallback(cb CloseCallback) (previous CloseCallback) {
	w.update(func(h *windowHandlers) { previous, h.close = h.close, cb })
	w.setNative(bindings.SetWindowCloseCallback, closeCallback, cb != nil)
	return previous
}

// SetFocusCallback sets the focus callback and returns the previous one.
func (w *Window) SetFocusCallback(cb FocusCallback) (previous FocusCallback) {
	w.update(func(h *windowHandlers) { previous, h.focus = h.focus, cb })
	w.setNative(bindings.SetWindowFocusCallback, focusCallback, cb != nil)
	return previous
}

// resolveWindow finds the wrapper for a handle GLFW passed to a trampoline.
// Events for handles without a live wrapper, such as ones in flight while a
// window is destroyed, are dropped.
func resolveWindow(handle uintptr, event string) *Window {
	w := windows.Resolve(handle)
	if w == nil {
		logger().Debug("dropped event for unknown window", "event", event, "handle", handle)
	}
	return w
}

func dropped(w *Window, event string) {
	logger().Debug("dropped event without handler", "event", event, "handle", w.Handle())
}

// Trampolines below are called by GLFW from inside the event functions.
// Their parameters follow the GLFW callback signatures.

// void (*)(GLFWwindow*, int key, int scancode, int action, int mods)
func keyTrampoline(_ purego.CDecl, handle uintptr, key, scancode, action, mods int32) {
	k, a, m := KeyFromRaw(int(key)), ActionFromRaw(int(action)), ModifiersFromRaw(int(mods))
	w := resolveWindow(handle, "key")
	if w == nil {
		return
	}
	cb := w.snapshot().key
	if cb == nil {
		dropped(w, "key")
		return
	}
	cb(w, k, int(scancode), a, m)
}

// void (*)(GLFWwindow*, unsigned int codepoint)
func charTrampoline(_ purego.CDecl, handle uintptr, codepoint uint32) {
	w := resolveWindow(handle, "char")
	if w == nil {
		return
	}
	cb := w.snapshot().char
	if cb == nil {
		dropped(w, "char")
		return
	}
	cb(w, rune(codepoint))
}

// void (*)(GLFWwindow*, int button, int action, int mods)
func mouseButtonTrampoline(_ purego.CDecl, handle uintptr, button, action, mods int32) {
	b, a, m := MouseButtonFromRaw(int(button)), ActionFromRaw(int(action)), ModifiersFromRaw(int(mods))
	w := resolveWindow(handle, "mouse button")
	if w == nil {
		return
	}
	cb := w.snapshot().mouseButton
	if cb == nil {
		dropped(w, "mouse button")
		return
	}
	cb(w, b, a, m)
}

// void (*)(GLFWwindow*, double xpos, double ypos)
func cursorPosTrampoline(_ purego.CDecl, handle uintptr, x, y float64) {
	w := resolveWindow(handle, "cursor position")
	if w == nil {
		return
	}
	cb := w.snapshot().cursorPos
	if cb == nil {
		dropped(w, "cursor position")
		return
	}
	cb(w, x, y)
}

// void (*)(GLFWwindow*, double xoffset, double yoffset)
func scrollTrampoline(_ purego.CDecl, handle uintptr, xoff, yoff float64) {
	w := resolveWindow(handle, "scroll")
	if w == nil {
		return
	}
	cb := w.snapshot().scroll
	if cb == nil {
		dropped(w, "scroll")
		return
	}
	cb(w, xoff, yoff)
}

// void (*)(GLFWwindow*, int width, int height)
func sizeTrampoline(_ purego.CDecl, handle uintptr, width, height int32) {
	w := resolveWindow(handle, "size")
	if w == nil {
		return
	}
	cb := w.snapshot().size
	if cb == nil {
		dropped(w, "size")
		return
	}
	cb(w, int(width), int(height))
}

// void (*)(GLFWwindow*, int width, int height)
func framebufferSizeTrampoline(_ purego.CDecl, handle uintptr, width, height int32) {
	w := resolveWindow(handle, "framebuffer size")
	if w == nil {
		return
	}
	cb := w.snapshot().framebufferSize
	if cb == nil {
		dropped(w, "framebuffer size")
		return
	}
	cb(w, int(width), int(height))
}

// void (*)(GLFWwindow*)
func closeTrampoline(_ purego.CDecl, handle uintptr) {
	w := resolveWindow(handle, "close")
	if w == nil {
		return
	}
	cb := w.snapshot().close
	if cb == nil {
		dropped(w, "close")
		return
	}
	cb(w)
}

// void (*)(GLFWwindow*, int focused)
func focusTrampoline(_ purego.CDecl, handle uintptr, focused int32) {
	w := resolveWindow(handle, "focus")
	if w == nil {
		return
	}
	cb := w.snapshot().focus
	if cb == nil {
		dropped(w, "focus")
		return
	}
	cb(w, focused == True)
}
