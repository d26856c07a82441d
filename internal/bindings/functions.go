//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
)

// Function bindings - nil until Load succeeds.
//
// Handles (GLFWwindow*, GLFWmonitor*, GLFWcursor*) are passed as uintptr;
// callback setters take and return C function pointers created with
// purego.NewCallback.
var (
	Init             func() int32
	Terminate        func()
	InitHint         func(hint, value int32)
	GetVersion       func(major, minor, rev *int32)
	GetVersionString func() string
	GetError         func(description **byte) int32
	SetErrorCallback func(cb uintptr) uintptr

	PollEvents        func()
	WaitEvents        func()
	WaitEventsTimeout func(timeout float64)
	PostEmptyEvent    func()

	GetTime      func() float64
	SetTime      func(t float64)
	SwapInterval func(interval int32)

	DefaultWindowHints func()
	WindowHint         func(hint, value int32)
	WindowHintString   func(hint int32, value string)

	CreateWindow         func(width, height int32, title string, monitor, share uintptr) uintptr
	DestroyWindow        func(window uintptr)
	WindowShouldClose    func(window uintptr) int32
	SetWindowShouldClose func(window uintptr, value int32)
	SetWindowTitle       func(window uintptr, title string)
	GetWindowSize        func(window uintptr, width, height *int32)
	SetWindowSize        func(window uintptr, width, height int32)
	GetFramebufferSize   func(window uintptr, width, height *int32)
	GetWindowPos         func(window uintptr, x, y *int32)
	SetWindowPos         func(window uintptr, x, y int32)
	ShowWindow           func(window uintptr)
	HideWindow           func(window uintptr)
	FocusWindow          func(window uintptr)
	IconifyWindow        func(window uintptr)
	RestoreWindow        func(window uintptr)
	MaximizeWindow       func(window uintptr)
	GetWindowAttrib      func(window uintptr, attrib int32) int32
	SetWindowAttrib      func(window uintptr, attrib, value int32)
	MakeContextCurrent   func(window uintptr)
	SwapBuffers          func(window uintptr)

	GetCursorPos   func(window uintptr, x, y *float64)
	SetCursorPos   func(window uintptr, x, y float64)
	GetKey         func(window uintptr, key int32) int32
	GetMouseButton func(window uintptr, button int32) int32
	GetKeyName     func(key, scancode int32) *byte
	GetKeyScancode func(key int32) int32
	GetInputMode   func(window uintptr, mode int32) int32
	SetInputMode   func(window uintptr, mode, value int32)

	SetCursor            func(window, cursor uintptr)
	CreateStandardCursor func(shape int32) uintptr
	DestroyCursor        func(cursor uintptr)

	GetPrimaryMonitor func() uintptr
	GetMonitorName    func(monitor uintptr) *byte

	SetKeyCallback             func(window, cb uintptr) uintptr
	SetCharCallback            func(window, cb uintptr) uintptr
	SetMouseButtonCallback     func(window, cb uintptr) uintptr
	SetCursorPosCallback       func(window, cb uintptr) uintptr
	SetScrollCallback          func(window, cb uintptr) uintptr
	SetWindowSizeCallback      func(window, cb uintptr) uintptr
	SetFramebufferSizeCallback func(window, cb uintptr) uintptr
	SetWindowCloseCallback     func(window, cb uintptr) uintptr
	SetWindowFocusCallback     func(window, cb uintptr) uintptr
)

type binding struct {
	fptr     any
	name     string
	optional bool // added after GLFW 3.2; missing symbols leave the variable nil
}

func bindingTable() []binding {
	return []binding{
		{&Init, "glfwInit", false},
		{&Terminate, "glfwTerminate", false},
		{&InitHint, "glfwInitHint", true},
		{&GetVersion, "glfwGetVersion", false},
		{&GetVersionString, "glfwGetVersionString", false},
		{&GetError, "glfwGetError", true},
		{&SetErrorCallback, "glfwSetErrorCallback", false},

		{&PollEvents, "glfwPollEvents", false},
		{&WaitEvents, "glfwWaitEvents", false},
		{&WaitEventsTimeout, "glfwWaitEventsTimeout", false},
		{&PostEmptyEvent, "glfwPostEmptyEvent", false},

		{&GetTime, "glfwGetTime", false},
		{&SetTime, "glfwSetTime", false},
		{&SwapInterval, "glfwSwapInterval", false},

		{&DefaultWindowHints, "glfwDefaultWindowHints", false},
		{&WindowHint, "glfwWindowHint", false},
		{&WindowHintString, "glfwWindowHintString", true},

		{&CreateWindow, "glfwCreateWindow", false},
		{&DestroyWindow, "glfwDestroyWindow", false},
		{&WindowShouldClose, "glfwWindowShouldClose", false},
		{&SetWindowShouldClose, "glfwSetWindowShouldClose", false},
		{&SetWindowTitle, "glfwSetWindowTitle", false},
		{&GetWindowSize, "glfwGetWindowSize", false},
		{&SetWindowSize, "glfwSetWindowSize", false},
		{&GetFramebufferSize, "glfwGetFramebufferSize", false},
		{&GetWindowPos, "glfwGetWindowPos", false},
		{&SetWindowPos, "glfwSetWindowPos", false},
		{&ShowWindow, "glfwShowWindow", false},
		{&HideWindow, "glfwHideWindow", false},
		{&FocusWindow, "glfwFocusWindow", false},
		{&IconifyWindow, "glfwIconifyWindow", false},
		{&RestoreWindow, "glfwRestoreWindow", false},
		{&MaximizeWindow, "glfwMaximizeWindow", false},
		{&GetWindowAttrib, "glfwGetWindowAttrib", false},
		{&SetWindowAttrib, "glfwSetWindowAttrib", true},
		{&MakeContextCurrent, "glfwMakeContextCurrent", false},
		{&SwapBuffers, "glfwSwapBuffers", false},

		{&GetCursorPos, "glfwGetCursorPos", false},
		{&SetCursorPos, "glfwSetCursorPos", false},
		{&GetKey, "glfwGetKey", false},
		{&GetMouseButton, "glfwGetMouseButton", false},
		{&GetKeyName, "glfwGetKeyName", false},
		{&GetKeyScancode, "glfwGetKeyScancode", true},
		{&GetInputMode, "glfwGetInputMode", false},
		{&SetInputMode, "glfwSetInputMode", false},

		{&SetCursor, "glfwSetCursor", false},
		{&CreateStandardCursor, "glfwCreateStandardCursor", false},
		{&DestroyCursor, "glfwDestroyCursor", false},

		{&GetPrimaryMonitor, "glfwGetPrimaryMonitor", false},
		{&GetMonitorName, "glfwGetMonitorName", false},

		{&SetKeyCallback, "glfwSetKeyCallback", false},
		{&SetCharCallback, "glfwSetCharCallback", false},
		{&SetMouseButtonCallback, "glfwSetMouseButtonCallback", false},
		{&SetCursorPosCallback, "glfwSetCursorPosCallback", false},
		{&SetScrollCallback, "glfwSetScrollCallback", false},
		{&SetWindowSizeCallback, "glfwSetWindowSizeCallback", false},
		{&SetFramebufferSizeCallback, "glfwSetFramebufferSizeCallback", false},
		{&SetWindowCloseCallback, "glfwSetWindowCloseCallback", false},
		{&SetWindowFocusCallback, "glfwSetWindowFocusCallback", false},
	}
}

// registerFunctions resolves every symbol in the binding table.
// purego.RegisterLibFunc panics on a missing symbol, so each symbol is
// looked up first and optional ones are skipped when absent.
func registerFunctions(lib uintptr) error {
	for _, b := range bindingTable() {
		sym, err := purego.Dlsym(lib, b.name)
		if err != nil || sym == 0 {
			if b.optional {
				continue
			}
			return fmt.Errorf("missing symbol %s: %v", b.name, err)
		}
		purego.RegisterFunc(b.fptr, sym)
	}
	return nil
}

// clearFunctions resets every binding to nil.
func clearFunctions() {
	for _, b := range bindingTable() {
		v := reflect.ValueOf(b.fptr).Elem()
		v.Set(reflect.Zero(v.Type()))
	}
}

// Stash clears every function binding and returns a function that restores
// them. Tests use it to run against fakes even after the real library was
// loaded.
func Stash() (restore func()) {
	table := bindingTable()
	saved := make([]reflect.Value, len(table))
	for i, b := range table {
		v := reflect.ValueOf(b.fptr).Elem()
		saved[i] = reflect.ValueOf(v.Interface())
	}
	clearFunctions()
	return func() {
		for i, b := range table {
			reflect.ValueOf(b.fptr).Elem().Set(saved[i])
		}
	}
}
