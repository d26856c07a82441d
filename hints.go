//go:build !ios && !android && (amd64 || arm64)

package glfw

import "github.com/obinnaokechukwu/glfw/internal/bindings"

// Hint is a window, framebuffer or context creation hint. Most window hints
// double as window attributes readable through Window.Attrib.
type Hint int

// Window related hints and attributes.
const (
	Focused                Hint = 0x00020001
	Iconified              Hint = 0x00020002 // attribute only
	Resizable              Hint = 0x00020003
	Visible                Hint = 0x00020004
	Decorated              Hint = 0x00020005
	AutoIconify            Hint = 0x00020006
	Floating               Hint = 0x00020007
	Maximized              Hint = 0x00020008
	CenterCursor           Hint = 0x00020009
	TransparentFramebuffer Hint = 0x0002000A
	Hovered                Hint = 0x0002000B // attribute only
	FocusOnShow            Hint = 0x0002000C
)

// Framebuffer related hints.
const (
	RedBits        Hint = 0x00021001
	GreenBits      Hint = 0x00021002
	BlueBits       Hint = 0x00021003
	AlphaBits      Hint = 0x00021004
	DepthBits      Hint = 0x00021005
	StencilBits    Hint = 0x00021006
	AccumRedBits   Hint = 0x00021007
	AccumGreenBits Hint = 0x00021008
	AccumBlueBits  Hint = 0x00021009
	AccumAlphaBits Hint = 0x0002100A
	AuxBuffers     Hint = 0x0002100B
	Stereo         Hint = 0x0002100C
	Samples        Hint = 0x0002100D
	SRGBCapable    Hint = 0x0002100E
	RefreshRate    Hint = 0x0002100F
	DoubleBuffer   Hint = 0x00021010
)

// Context related hints.
const (
	ClientAPI               Hint = 0x00022001
	ContextVersionMajor     Hint = 0x00022002
	ContextVersionMinor     Hint = 0x00022003
	ContextRevision         Hint = 0x00022004
	ContextRobustness       Hint = 0x00022005
	OpenGLForwardCompatible Hint = 0x00022006
	OpenGLDebugContext      Hint = 0x00022007
	OpenGLProfile           Hint = 0x00022008
	ContextReleaseBehavior  Hint = 0x00022009
	ContextNoError          Hint = 0x0002200A
	ContextCreationAPI      Hint = 0x0002200B
	ScaleToMonitor          Hint = 0x0002200C
)

// Platform specific hints.
const (
	CocoaRetinaFramebuffer Hint = 0x00023001
	CocoaFrameName         Hint = 0x00023002 // string hint
	CocoaGraphicsSwitching Hint = 0x00023003
	X11ClassName           Hint = 0x00024001 // string hint
	X11InstanceName        Hint = 0x00024002 // string hint
)

// Boolean hint values.
const (
	True  = 1
	False = 0
)

// DontCare lets GLFW pick any value for a numeric hint.
const DontCare = -1

// Values for the ClientAPI hint.
const (
	NoAPI       = 0
	OpenGLAPI   = 0x00030001
	OpenGLESAPI = 0x00030002
)

// Values for the ContextRobustness hint.
const (
	NoRobustness        = 0
	NoResetNotification = 0x00031001
	LoseContextOnReset  = 0x00031002
)

// Values for the OpenGLProfile hint.
const (
	OpenGLAnyProfile    = 0
	OpenGLCoreProfile   = 0x00032001
	OpenGLCompatProfile = 0x00032002
)

// Values for the ContextReleaseBehavior hint.
const (
	AnyReleaseBehavior   = 0
	ReleaseBehaviorFlush = 0x00035001
	ReleaseBehaviorNone  = 0x00035002
)

// Values for the ContextCreationAPI hint.
const (
	NativeContextAPI = 0x00036001
	EGLContextAPI    = 0x00036002
	OSMesaContextAPI = 0x00036003
)

// InitHint configures GLFW before Init.
type InitHint int

// Init hints.
const (
	JoystickHatButtons  InitHint = 0x00050001
	CocoaChdirResources InitHint = 0x00051001
	CocoaMenubar        InitHint = 0x00051002
)

// HintValue pairs a numeric hint with the value CreateWindow applies for
// it. String hints such as X11ClassName are set with WindowHintString.
type HintValue struct {
	Hint  Hint
	Value int
}

// HintBool returns a HintValue for a boolean hint.
func HintBool(h Hint, v bool) HintValue {
	return HintValue{Hint: h, Value: boolInt(v)}
}

// WindowHint sets a hint for the next window creation. CreateWindow resets
// every hint to its default once the window is created, so a hint applies
// to exactly one window.
func WindowHint(hint Hint, value int) {
	if bindings.WindowHint == nil {
		return
	}
	bindings.WindowHint(int32(hint), int32(value))
}

// WindowHintBool sets a boolean hint for the next window creation.
func WindowHintBool(hint Hint, value bool) {
	WindowHint(hint, boolInt(value))
}

// WindowHintString sets a string hint such as X11ClassName for the next
// window creation. It is a no-op when the loaded GLFW predates string hints.
func WindowHintString(hint Hint, value string) {
	if bindings.WindowHintString == nil {
		return
	}
	bindings.WindowHintString(int32(hint), value)
}

// DefaultWindowHints resets all window hints to their default values.
func DefaultWindowHints() {
	if bindings.DefaultWindowHints == nil {
		return
	}
	bindings.DefaultWindowHints()
}

// SetInitHint sets a hint for the next Init call.
func SetInitHint(hint InitHint, value int) {
	if bindings.InitHint == nil {
		return
	}
	bindings.InitHint(int32(hint), int32(value))
}

// takesString reports whether h is set through glfwWindowHintString.
func (h Hint) takesString() bool {
	switch h {
	case CocoaFrameName, X11ClassName, X11InstanceName:
		return true
	}
	return false
}

func boolInt(v bool) int {
	if v {
		return True
	}
	return False
}
