//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"testing"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfw/internal/bindings"
)

func TestCreateDestroyLeavesNoRegistration(t *testing.T) {
	f := installFakeNative(t)

	w, err := CreateWindow(640, 480, "create-destroy", nil, nil)
	require.NoError(t, err)
	h := w.Handle()
	require.NotZero(t, h)
	assert.Same(t, w, windows.Resolve(h))
	assert.Equal(t, []string{"create-destroy"}, f.titles)

	called := false
	w.SetKeyCallback(func(*Window, Key, int, Action, ModifierKey) { called = true })

	w.Destroy()

	assert.Nil(t, windows.Resolve(h), "destroyed window must not resolve")
	assert.NotPanics(t, func() {
		keyTrampoline(purego.CDecl{}, h, int32(KeyA), 38, int32(Press), 0)
	})
	assert.False(t, called, "handler ran after Destroy")
	assert.Zero(t, w.Handle())

	w.Destroy()
	assert.Equal(t, []uintptr{h}, f.destroyed, "native handle must be released exactly once")
}

func TestCreateWindowFailure(t *testing.T) {
	f := installFakeNative(t)
	f.failCreate = true
	f.setError(PlatformError, "X11: Failed to open display")

	w, err := CreateWindow(640, 480, "no display", nil, nil)
	assert.Nil(t, w)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCreateFailed)
	assert.True(t, IsCode(err, PlatformError))

	var ce *CreationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "window", ce.Kind)
	assert.Equal(t, "glfw: failed to create window: glfw: platform error: X11: Failed to open display", err.Error())
	assert.Zero(t, windows.Len())
}

func TestCreateWindowFailureWithoutGLFWError(t *testing.T) {
	f := installFakeNative(t)
	f.failCreate = true

	_, err := CreateWindow(1, 1, "", nil, nil)
	var ce *CreationError
	require.ErrorAs(t, err, &ce)
	assert.NoError(t, ce.Unwrap())
	assert.Equal(t, "glfw: failed to create window", err.Error())
}

func TestCreateWindowNotLoaded(t *testing.T) {
	installFakeNative(t)
	bindings.CreateWindow = nil

	w, err := CreateWindow(640, 480, "unloaded", nil, nil)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestCreateWindowHintsAreConsumed(t *testing.T) {
	f := installFakeNative(t)

	w, err := CreateWindow(320, 240, "hinted", nil, nil,
		HintBool(Resizable, false),
		HintValue{Hint: ContextVersionMajor, Value: 3},
	)
	require.NoError(t, err)
	defer w.Destroy()

	w2, err := CreateWindow(320, 240, "plain", nil, nil)
	require.NoError(t, err)
	defer w2.Destroy()

	assert.Equal(t, [][]HintValue{
		{{Hint: Resizable, Value: False}, {Hint: ContextVersionMajor, Value: 3}},
		nil,
	}, f.created, "hints must apply to the next window only")
	assert.Equal(t, 2, f.defaultsCalls, "every creation resets hints")
	assert.Empty(t, f.hints)
}

func TestWindowHintAppliesToOneWindow(t *testing.T) {
	f := installFakeNative(t)

	WindowHintBool(Visible, false)

	w, err := CreateWindow(320, 240, "hidden", nil, nil)
	require.NoError(t, err)
	defer w.Destroy()
	w2, err := CreateWindow(320, 240, "visible", nil, nil)
	require.NoError(t, err)
	defer w2.Destroy()

	assert.Equal(t, [][]HintValue{{{Hint: Visible, Value: False}}, nil}, f.created)
}

func TestCreateWindowFailureResetsHints(t *testing.T) {
	f := installFakeNative(t)
	f.failCreate = true

	_, err := CreateWindow(320, 240, "failed", nil, nil, HintBool(Decorated, false))
	require.Error(t, err)
	assert.Equal(t, 1, f.defaultsCalls)
	assert.Empty(t, f.hints)
}

func TestCreateWindowRejectsStringHints(t *testing.T) {
	f := installFakeNative(t)

	w, err := CreateWindow(320, 240, "named", nil, nil,
		HintBool(Resizable, false),
		HintValue{Hint: X11ClassName, Value: 1},
	)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrInvalidHint)
	assert.Empty(t, f.hints, "no hint may be applied when one is rejected")
	assert.Empty(t, f.created)
}

func TestCreateWindowNotInitialized(t *testing.T) {
	f := installFakeNative(t)
	initialized.Store(false)

	w, err := CreateWindow(320, 240, "early", nil, nil)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Empty(t, f.created)

	c, err := CreateStandardCursor(ArrowCursor)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestCreateWindowDestroyedShare(t *testing.T) {
	f := installFakeNative(t)

	share, err := CreateWindow(100, 100, "share", nil, nil)
	require.NoError(t, err)
	share.Destroy()

	w, err := CreateWindow(100, 100, "shared", nil, share)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.Len(t, f.created, 1)
}

func TestSetKeyCallbackOverwrites(t *testing.T) {
	w := newTestWindow(t, 0x2000)

	var first, second int
	prev := w.SetKeyCallback(func(*Window, Key, int, Action, ModifierKey) { first++ })
	assert.Nil(t, prev)

	prev = w.SetKeyCallback(func(*Window, Key, int, Action, ModifierKey) { second++ })
	assert.NotNil(t, prev)

	keyTrampoline(purego.CDecl{}, 0x2000, int32(KeySpace), 65, int32(Press), 0)
	keyTrampoline(purego.CDecl{}, 0x2000, int32(KeySpace), 65, int32(Release), 0)

	assert.Zero(t, first, "overwritten handler must never run")
	assert.Equal(t, 2, second)
}

func TestSetCallbackNilRemoves(t *testing.T) {
	w := newTestWindow(t, 0x2100)

	count := 0
	w.SetScrollCallback(func(*Window, float64, float64) { count++ })
	w.SetScrollCallback(nil)

	assert.NotPanics(t, func() {
		scrollTrampoline(purego.CDecl{}, 0x2100, 0, 1)
	})
	assert.Zero(t, count)
}

func TestKeyTrampolineTranslatesArguments(t *testing.T) {
	w := newTestWindow(t, 0x2200)

	var (
		gotWindow   *Window
		gotKey      Key
		gotScancode int
		gotAction   Action
		gotMods     ModifierKey
	)
	w.SetKeyCallback(func(win *Window, key Key, scancode int, action Action, mods ModifierKey) {
		gotWindow, gotKey, gotScancode, gotAction, gotMods = win, key, scancode, action, mods
	})

	keyTrampoline(purego.CDecl{}, 0x2200, 65, 38, 2, 0x0003|0x0100)

	assert.Same(t, w, gotWindow)
	assert.Equal(t, KeyA, gotKey)
	assert.Equal(t, 38, gotScancode)
	assert.Equal(t, Repeat, gotAction)
	assert.Equal(t, ModShift|ModControl, gotMods)
}

func TestKeyTrampolineUnknownCodes(t *testing.T) {
	w := newTestWindow(t, 0x2300)

	var gotKey Key
	var gotAction Action
	w.SetKeyCallback(func(_ *Window, key Key, _ int, action Action, _ ModifierKey) {
		gotKey, gotAction = key, action
	})

	keyTrampoline(purego.CDecl{}, 0x2300, 9999, 0, 7, 0)

	assert.Equal(t, KeyUnknown, gotKey)
	assert.Equal(t, ActionUnknown, gotAction)
}

func TestTrampolinesWithoutHandlers(t *testing.T) {
	newTestWindow(t, 0x2400)
	logs := captureLogs(t)

	assert.NotPanics(t, func() {
		keyTrampoline(purego.CDecl{}, 0x2400, int32(KeyA), 0, int32(Press), 0)
		charTrampoline(purego.CDecl{}, 0x2400, 'a')
		mouseButtonTrampoline(purego.CDecl{}, 0x2400, 0, 1, 0)
		cursorPosTrampoline(purego.CDecl{}, 0x2400, 1, 2)
		scrollTrampoline(purego.CDecl{}, 0x2400, 0, 1)
		sizeTrampoline(purego.CDecl{}, 0x2400, 10, 20)
		framebufferSizeTrampoline(purego.CDecl{}, 0x2400, 20, 40)
		closeTrampoline(purego.CDecl{}, 0x2400)
		focusTrampoline(purego.CDecl{}, 0x2400, 1)
	})
	assert.Contains(t, logs.String(), "dropped event without handler")
}

func TestTrampolinesUnknownHandle(t *testing.T) {
	logs := captureLogs(t)

	assert.NotPanics(t, func() {
		keyTrampoline(purego.CDecl{}, 0xdead, int32(KeyA), 0, int32(Press), 0)
		charTrampoline(purego.CDecl{}, 0xdead, 'a')
		mouseButtonTrampoline(purego.CDecl{}, 0xdead, 0, 1, 0)
		cursorPosTrampoline(purego.CDecl{}, 0xdead, 1, 2)
		scrollTrampoline(purego.CDecl{}, 0xdead, 0, 1)
		sizeTrampoline(purego.CDecl{}, 0xdead, 10, 20)
		framebufferSizeTrampoline(purego.CDecl{}, 0xdead, 20, 40)
		closeTrampoline(purego.CDecl{}, 0xdead)
		focusTrampoline(purego.CDecl{}, 0xdead, 0)
	})
	assert.Contains(t, logs.String(), "dropped event for unknown window")
}

func TestTrampolinesDeliverEvents(t *testing.T) {
	w := newTestWindow(t, 0x2500)

	var events []string
	record := func(s string) { events = append(events, s) }

	w.SetCharCallback(func(_ *Window, r rune) { record("char " + string(r)) })
	w.SetMouseButtonCallback(func(_ *Window, b MouseButton, a Action, m ModifierKey) {
		record("button " + b.String() + " " + a.String() + " " + m.String())
	})
	w.SetCursorPosCallback(func(_ *Window, x, y float64) {
		assert.Equal(t, 12.5, x)
		assert.Equal(t, 7.25, y)
		record("cursor")
	})
	w.SetScrollCallback(func(_ *Window, xoff, yoff float64) {
		assert.Equal(t, 0.0, xoff)
		assert.Equal(t, -1.0, yoff)
		record("scroll")
	})
	w.SetSizeCallback(func(_ *Window, width, height int) {
		assert.Equal(t, []int{800, 600}, []int{width, height})
		record("size")
	})
	w.SetFramebufferSizeCallback(func(_ *Window, width, height int) {
		assert.Equal(t, []int{1600, 1200}, []int{width, height})
		record("framebuffer")
	})
	w.SetCloseCallback(func(*Window) { record("close") })
	w.SetFocusCallback(func(_ *Window, focused bool) {
		if focused {
			record("focus")
		} else {
			record("blur")
		}
	})

	charTrampoline(purego.CDecl{}, 0x2500, 'é')
	mouseButtonTrampoline(purego.CDecl{}, 0x2500, 1, 1, int32(ModAlt))
	cursorPosTrampoline(purego.CDecl{}, 0x2500, 12.5, 7.25)
	scrollTrampoline(purego.CDecl{}, 0x2500, 0, -1)
	sizeTrampoline(purego.CDecl{}, 0x2500, 800, 600)
	framebufferSizeTrampoline(purego.CDecl{}, 0x2500, 1600, 1200)
	focusTrampoline(purego.CDecl{}, 0x2500, 1)
	focusTrampoline(purego.CDecl{}, 0x2500, 0)
	closeTrampoline(purego.CDecl{}, 0x2500)

	assert.Equal(t, []string{
		"char é",
		"button right press alt",
		"cursor",
		"scroll",
		"size",
		"framebuffer",
		"focus",
		"blur",
		"close",
	}, events, "events must arrive in delivery order")
}

func TestDestroyInsideCallback(t *testing.T) {
	f := installFakeNative(t)

	w, err := CreateWindow(100, 100, "self-destroying", nil, nil)
	require.NoError(t, err)
	h := w.Handle()

	calls := 0
	w.SetCloseCallback(func(win *Window) {
		calls++
		win.Destroy()
	})

	closeTrampoline(purego.CDecl{}, h)
	assert.Nil(t, windows.Resolve(h))

	closeTrampoline(purego.CDecl{}, h)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []uintptr{h}, f.destroyed)
}

func TestDestroyDuringInFlightResolution(t *testing.T) {
	w := newTestWindow(t, 0x2600)

	called := false
	w.SetKeyCallback(func(*Window, Key, int, Action, ModifierKey) { called = true })

	// A trampoline resolved the wrapper, then the window is destroyed before
	// it reads the handler.
	inFlight := windows.Resolve(0x2600)
	require.Same(t, w, inFlight)

	w.Destroy()

	assert.Nil(t, windows.Resolve(0x2600))
	assert.Nil(t, inFlight.snapshot().key, "destroyed window must not expose handlers")
	keyTrampoline(purego.CDecl{}, 0x2600, int32(KeyA), 0, int32(Press), 0)
	assert.False(t, called)
}

func TestCallbackReplacesItself(t *testing.T) {
	w := newTestWindow(t, 0x2700)

	var order []string
	w.SetCharCallback(func(win *Window, r rune) {
		order = append(order, "first")
		win.SetCharCallback(func(*Window, rune) { order = append(order, "second") })
	})

	charTrampoline(purego.CDecl{}, 0x2700, 'x')
	charTrampoline(purego.CDecl{}, 0x2700, 'y')

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDestroyedWindowIsInert(t *testing.T) {
	w := newTestWindow(t, 0x2800)
	w.Destroy()

	assert.NotPanics(t, func() {
		w.Show()
		w.Hide()
		w.Close()
		w.SetTitle("gone")
		w.SetSize(1, 1)
		w.SwapBuffers()
		w.SetCursor(nil)
		w.SetKeyCallback(func(*Window, Key, int, Action, ModifierKey) {})
	})
	assert.True(t, w.ShouldClose())
	width, height := w.Size()
	assert.Zero(t, width)
	assert.Zero(t, height)
	assert.Equal(t, Release, w.GetKey(KeyA))
	assert.Zero(t, w.Attrib(Focused))
}

func TestNilWindowHandle(t *testing.T) {
	var w *Window
	assert.Zero(t, w.Handle())
}

func TestCenterCursor(t *testing.T) {
	f := installFakeNative(t)
	f.windowWidth, f.windowHeight = 801, 600

	w, err := CreateWindow(801, 600, "center", nil, nil)
	require.NoError(t, err)
	defer w.Destroy()

	assert.Equal(t, 801, w.Width())
	assert.Equal(t, 600, w.Height())

	w.CenterCursor()
	assert.Equal(t, [][2]float64{{400, 300}}, f.cursorPos)
}

func TestTerminateInvalidatesWrappers(t *testing.T) {
	f := installFakeNative(t)

	w, err := CreateWindow(100, 100, "terminated", nil, nil)
	require.NoError(t, err)
	c, err := CreateStandardCursor(HandCursor)
	require.NoError(t, err)
	h := w.Handle()

	Terminate()

	assert.Equal(t, 1, f.terminated)
	assert.False(t, initialized.Load())
	assert.Zero(t, w.Handle())
	assert.Zero(t, c.Handle())
	assert.Nil(t, windows.Resolve(h))

	w.Destroy()
	c.Destroy()
	assert.Empty(t, f.destroyed, "GLFW already freed the window")
	assert.Empty(t, f.cursorsDestroyed, "GLFW already freed the cursor")
}
