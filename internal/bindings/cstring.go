//go:build !ios && !android && (amd64 || arm64)

package bindings

import "unsafe"

// GoString copies a NUL-terminated C string into a Go string.
// A nil pointer yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
