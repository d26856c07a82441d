//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/glfw/internal/bindings"
	"github.com/obinnaokechukwu/glfw/internal/handles"
)

// cursors tracks live cursors so Terminate can invalidate them.
var cursors = handles.NewRegistry[Cursor]()

// StandardCursor is one of the system cursor shapes.
type StandardCursor int

// Standard cursor shapes.
const (
	ArrowCursor     StandardCursor = 0x00036001
	IBeamCursor     StandardCursor = 0x00036002
	CrosshairCursor StandardCursor = 0x00036003
	HandCursor      StandardCursor = 0x00036004
	HResizeCursor   StandardCursor = 0x00036005
	VResizeCursor   StandardCursor = 0x00036006
)

func (s StandardCursor) String() string {
	switch s {
	case ArrowCursor:
		return "arrow"
	case IBeamCursor:
		return "ibeam"
	case CrosshairCursor:
		return "crosshair"
	case HandCursor:
		return "hand"
	case HResizeCursor:
		return "hresize"
	case VResizeCursor:
		return "vresize"
	}
	return fmt.Sprintf("StandardCursor(0x%08X)", int(s))
}

// Cursor is a cursor image that can be set on windows.
type Cursor struct {
	mu          sync.Mutex
	handle      uintptr
	shape       StandardCursor
	destroyOnce sync.Once
}

// CreateStandardCursor creates a cursor with a system shape.
// The cursor must be released with Destroy. It returns ErrNotInitialized
// before Init.
func CreateStandardCursor(shape StandardCursor) (*Cursor, error) {
	if bindings.CreateStandardCursor == nil {
		return nil, ErrNotLoaded
	}
	if err := ensureInitialized(); err != nil {
		return nil, err
	}
	h := bindings.CreateStandardCursor(int32(shape))
	if h == 0 {
		return nil, newCreationError("cursor")
	}
	c := &Cursor{handle: h, shape: shape}
	cursors.Attach(h, c)
	logger().Debug("cursor created", "handle", h, "shape", shape.String())
	return c, nil
}

// Shape returns the standard shape the cursor was created with.
func (c *Cursor) Shape() StandardCursor {
	return c.shape
}

// Handle returns the native GLFWcursor pointer, or 0 for a nil or destroyed
// cursor.
func (c *Cursor) Handle() uintptr {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle
}

// Destroy destroys the cursor. Windows using it revert to the default
// cursor. Calling Destroy more than once is safe.
func (c *Cursor) Destroy() {
	c.destroyOnce.Do(func() {
		h := c.release()
		if h == 0 {
			return
		}
		cursors.Detach(h)
		if bindings.DestroyCursor != nil {
			bindings.DestroyCursor(h)
		}
		logger().Debug("cursor destroyed", "handle", h)
	})
}

func (c *Cursor) release() uintptr {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := c.handle
	c.handle = 0
	return h
}
