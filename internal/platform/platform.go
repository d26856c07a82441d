//go:build !ios && !android && (amd64 || arm64)

// Package platform provides platform detection for the glfw binding.
// It determines how the GLFW shared library is named on the running
// operating system.
package platform

import (
	"fmt"
	"runtime"
)

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	LibraryPrefix, LibraryExtension = naming(runtime.GOOS)
}

func naming(goos string) (prefix, ext string) {
	switch goos {
	case "darwin":
		return "lib", ".dylib"
	case "windows":
		return "", ".dll"
	default: // linux, freebsd, etc.
		return "lib", ".so"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// If version is 0, returns the unversioned library name.
//
// Examples:
//   - Linux:   FormatLibraryName("glfw", 3) -> "libglfw.so.3"
//   - macOS:   FormatLibraryName("glfw", 3) -> "libglfw.3.dylib"
//   - Windows: FormatLibraryName("glfw", 3) -> "glfw3.dll"
func FormatLibraryName(name string, version int) string {
	return formatLibraryName(runtime.GOOS, name, version)
}

func formatLibraryName(goos, name string, version int) string {
	prefix, ext := naming(goos)
	if version <= 0 {
		return prefix + name + ext
	}
	switch goos {
	case "darwin":
		return fmt.Sprintf("%s%s.%d%s", prefix, name, version, ext)
	case "windows":
		// GLFW ships glfw3.dll, with no separator before the major version.
		return fmt.Sprintf("%s%s%d%s", prefix, name, version, ext)
	default:
		return fmt.Sprintf("%s%s%s.%d", prefix, name, ext, version)
	}
}
