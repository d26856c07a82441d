//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"strconv"
	"strings"
)

// Key is a keyboard key. Values mirror GLFW's GLFW_KEY_* constants, which
// are based on the US layout.
type Key int

// KeyUnknown is reported for keys GLFW cannot identify and for raw codes
// this package does not know about.
const KeyUnknown Key = -1

// Printable and function keys.
const (
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96
	KeyWorld1       Key = 161
	KeyWorld2       Key = 162
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyF13          Key = 302
	KeyF14          Key = 303
	KeyF15          Key = 304
	KeyF16          Key = 305
	KeyF17          Key = 306
	KeyF18          Key = 307
	KeyF19          Key = 308
	KeyF20          Key = 309
	KeyF21          Key = 310
	KeyF22          Key = 311
	KeyF23          Key = 312
	KeyF24          Key = 313
	KeyF25          Key = 314
	KeyKP0          Key = 320
	KeyKP1          Key = 321
	KeyKP2          Key = 322
	KeyKP3          Key = 323
	KeyKP4          Key = 324
	KeyKP5          Key = 325
	KeyKP6          Key = 326
	KeyKP7          Key = 327
	KeyKP8          Key = 328
	KeyKP9          Key = 329
	KeyKPDecimal    Key = 330
	KeyKPDivide     Key = 331
	KeyKPMultiply   Key = 332
	KeyKPSubtract   Key = 333
	KeyKPAdd        Key = 334
	KeyKPEnter      Key = 335
	KeyKPEqual      Key = 336
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348

	KeyLast = KeyMenu
)

var keyNames = map[Key]string{
	KeySpace:        "space",
	KeyApostrophe:   "'",
	KeyComma:        ",",
	KeyMinus:        "-",
	KeyPeriod:       ".",
	KeySlash:        "/",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeySemicolon:    ";",
	KeyEqual:        "=",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	KeyLeftBracket:  "[",
	KeyBackslash:    "\\",
	KeyRightBracket: "]",
	KeyGraveAccent:  "`",
	KeyWorld1:       "world 1",
	KeyWorld2:       "world 2",
	KeyEscape:       "escape",
	KeyEnter:        "enter",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyInsert:       "insert",
	KeyDelete:       "delete",
	KeyRight:        "right",
	KeyLeft:         "left",
	KeyDown:         "down",
	KeyUp:           "up",
	KeyPageUp:       "page up",
	KeyPageDown:     "page down",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyCapsLock:     "caps lock",
	KeyScrollLock:   "scroll lock",
	KeyNumLock:      "num lock",
	KeyPrintScreen:  "print screen",
	KeyPause:        "pause",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyF13:          "F13",
	KeyF14:          "F14",
	KeyF15:          "F15",
	KeyF16:          "F16",
	KeyF17:          "F17",
	KeyF18:          "F18",
	KeyF19:          "F19",
	KeyF20:          "F20",
	KeyF21:          "F21",
	KeyF22:          "F22",
	KeyF23:          "F23",
	KeyF24:          "F24",
	KeyF25:          "F25",
	KeyKP0:          "keypad 0",
	KeyKP1:          "keypad 1",
	KeyKP2:          "keypad 2",
	KeyKP3:          "keypad 3",
	KeyKP4:          "keypad 4",
	KeyKP5:          "keypad 5",
	KeyKP6:          "keypad 6",
	KeyKP7:          "keypad 7",
	KeyKP8:          "keypad 8",
	KeyKP9:          "keypad 9",
	KeyKPDecimal:    "keypad .",
	KeyKPDivide:     "keypad /",
	KeyKPMultiply:   "keypad *",
	KeyKPSubtract:   "keypad -",
	KeyKPAdd:        "keypad +",
	KeyKPEnter:      "keypad enter",
	KeyKPEqual:      "keypad =",
	KeyLeftShift:    "left shift",
	KeyLeftControl:  "left control",
	KeyLeftAlt:      "left alt",
	KeyLeftSuper:    "left super",
	KeyRightShift:   "right shift",
	KeyRightControl: "right control",
	KeyRightAlt:     "right alt",
	KeyRightSuper:   "right super",
	KeyMenu:         "menu",
}

// KeyFromRaw translates a raw GLFW key code. Codes outside the known set,
// including ones added by newer GLFW releases, map to KeyUnknown.
func KeyFromRaw(raw int) Key {
	if _, ok := keyNames[Key(raw)]; ok {
		return Key(raw)
	}
	return KeyUnknown
}

// Known reports whether k is a key this package can name.
func (k Key) Known() bool {
	_, ok := keyNames[k]
	return ok
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyUnknown {
		return "unknown"
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Action is the state change reported by key and mouse button events.
type Action int

// Action values.
const (
	ActionUnknown Action = -1
	Release       Action = 0
	Press         Action = 1
	Repeat        Action = 2
)

// ActionFromRaw translates a raw GLFW action, mapping unknown values to
// ActionUnknown.
func ActionFromRaw(raw int) Action {
	switch a := Action(raw); a {
	case Release, Press, Repeat:
		return a
	}
	return ActionUnknown
}

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// ModifierKey is a bitmask of modifier keys held during an event.
type ModifierKey int

// Modifier bits.
const (
	ModShift    ModifierKey = 0x0001
	ModControl  ModifierKey = 0x0002
	ModAlt      ModifierKey = 0x0004
	ModSuper    ModifierKey = 0x0008
	ModCapsLock ModifierKey = 0x0010
	ModNumLock  ModifierKey = 0x0020

	modAll = ModShift | ModControl | ModAlt | ModSuper | ModCapsLock | ModNumLock
)

var modNames = []struct {
	mod  ModifierKey
	name string
}{
	{ModShift, "shift"},
	{ModControl, "control"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
	{ModCapsLock, "caps lock"},
	{ModNumLock, "num lock"},
}

// ModifiersFromRaw translates a raw GLFW modifier bitmask. Bits this package
// does not know about are dropped.
func ModifiersFromRaw(raw int) ModifierKey {
	return ModifierKey(raw) & modAll
}

// Has reports whether every bit of m2 is set in m.
func (m ModifierKey) Has(m2 ModifierKey) bool {
	return m&m2 == m2
}

func (m ModifierKey) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, n := range modNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	if rest := m &^ modAll; rest != 0 {
		parts = append(parts, "0x"+strconv.FormatInt(int64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// MouseButton identifies a mouse button.
type MouseButton int

// Mouse buttons.
const (
	MouseButtonUnknown MouseButton = -1
	MouseButton1       MouseButton = 0
	MouseButton2       MouseButton = 1
	MouseButton3       MouseButton = 2
	MouseButton4       MouseButton = 3
	MouseButton5       MouseButton = 4
	MouseButton6       MouseButton = 5
	MouseButton7       MouseButton = 6
	MouseButton8       MouseButton = 7

	MouseButtonLast   = MouseButton8
	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
)

// MouseButtonFromRaw translates a raw GLFW button index, mapping values
// outside 0..7 to MouseButtonUnknown.
func MouseButtonFromRaw(raw int) MouseButton {
	if raw < int(MouseButton1) || raw > int(MouseButtonLast) {
		return MouseButtonUnknown
	}
	return MouseButton(raw)
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonUnknown:
		return "unknown"
	}
	if b > MouseButtonMiddle && b <= MouseButtonLast {
		return "button " + strconv.Itoa(int(b)+1)
	}
	return "MouseButton(" + strconv.Itoa(int(b)) + ")"
}

// InputMode selects an input behavior for SetInputMode.
type InputMode int

// Input modes.
const (
	CursorMode             InputMode = 0x00033001
	StickyKeysMode         InputMode = 0x00033002
	StickyMouseButtonsMode InputMode = 0x00033003
	LockKeyModsMode        InputMode = 0x00033004
	RawMouseMotionMode     InputMode = 0x00033005
)

// Values for CursorMode.
const (
	CursorNormal   = 0x00034001
	CursorHidden   = 0x00034002
	CursorDisabled = 0x00034003
)
