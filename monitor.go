//go:build !ios && !android && (amd64 || arm64)

package glfw

import "github.com/obinnaokechukwu/glfw/internal/bindings"

// Monitor is a display connected to the system. GLFW owns monitor handles;
// they stay valid until the monitor is disconnected or Terminate is called.
type Monitor struct {
	handle uintptr
}

// PrimaryMonitor returns the user's primary monitor, or nil if none is
// connected or GLFW is not loaded.
func PrimaryMonitor() *Monitor {
	if bindings.GetPrimaryMonitor == nil {
		return nil
	}
	h := bindings.GetPrimaryMonitor()
	if h == 0 {
		return nil
	}
	return &Monitor{handle: h}
}

// Handle returns the native GLFWmonitor pointer, or 0 for a nil monitor.
func (m *Monitor) Handle() uintptr {
	if m == nil {
		return 0
	}
	return m.handle
}

// Name returns the human-readable name of the monitor.
func (m *Monitor) Name() string {
	h := m.Handle()
	if h == 0 || bindings.GetMonitorName == nil {
		return ""
	}
	return bindings.GoString(bindings.GetMonitorName(h))
}
