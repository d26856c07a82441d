//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles loading the GLFW shared library and registering
// function bindings using purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfw/internal/platform"
)

// ErrNotLoaded is returned when GLFW functions are called before Load().
var ErrNotLoaded = errors.New("glfw: GLFW library not loaded; call glfw.Init() first")

// ErrLibraryNotFound is returned when the GLFW shared library cannot be found.
var ErrLibraryNotFound = errors.New("glfw: GLFW library not found")

// Environment variables consulted by Load.
const (
	// EnvLibrary names an explicit path to the GLFW shared library.
	EnvLibrary = "GLFW_LIBRARY"
	// EnvLibraryPath lists extra directories searched before the platform defaults.
	EnvLibraryPath = "GLFW_LIBRARY_PATH"
)

const libraryName = "glfw"

// Library major versions, most specific first.
var libraryVersions = []int{3}

var (
	libraryPath string

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if the GLFW library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// LibraryPath returns the path the GLFW library was opened from, or "" if
// it is not loaded.
func LibraryPath() string {
	return libraryPath
}

// Load loads the GLFW library and registers all function bindings.
// It is safe to call multiple times; subsequent calls are no-ops.
// Returns an error if the library cannot be found or loaded.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

// Seams for tests; Load uses the real loader.
var (
	openLibrary     = tryOpen
	registerLibrary = registerFunctions
)

// doLoad tries each candidate in order. A library that opens but lacks a
// required symbol is skipped, and whatever it registered is cleared.
func doLoad() error {
	var lastErr error
	for _, candidate := range libraryCandidates() {
		lib, err := openLibrary(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		if err := registerLibrary(lib); err != nil {
			clearFunctions()
			lastErr = fmt.Errorf("registering GLFW functions from %s: %w", candidate, err)
			continue
		}
		libraryPath = candidate
		return nil
	}
	if lastErr != nil {
		return fmt.Errorf("%w: %s (last error: %v)", ErrLibraryNotFound, libraryName, lastErr)
	}
	return fmt.Errorf("%w: %s", ErrLibraryNotFound, libraryName)
}

// libraryCandidates returns every path Load tries, in order.
func libraryCandidates() []string {
	var candidates []string

	if explicit := os.Getenv(EnvLibrary); explicit != "" {
		candidates = append(candidates, explicit)
	}

	for _, searchPath := range LibrarySearchPaths() {
		// Versioned names first (more specific)
		for _, ver := range libraryVersions {
			candidates = append(candidates, filepath.Join(searchPath, platform.FormatLibraryName(libraryName, ver)))
		}
		candidates = append(candidates, filepath.Join(searchPath, platform.FormatLibraryName(libraryName, 0)))
	}

	// Bare names (let the system loader find it)
	for _, ver := range libraryVersions {
		candidates = append(candidates, platform.FormatLibraryName(libraryName, ver))
	}
	candidates = append(candidates, platform.FormatLibraryName(libraryName, 0))

	return candidates
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary returns the first GLFW library file present on disk, checking
// GLFW_LIBRARY and then the search paths. It does not load anything and is
// meant for diagnostics; the system loader may still find a library it misses.
func FindLibrary() (string, error) {
	if explicit := os.Getenv(EnvLibrary); explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
	}
	paths := LibrarySearchPaths()
	for _, searchPath := range paths {
		for _, ver := range libraryVersions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName(libraryName, ver))
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		// Try unversioned
		fullPath := filepath.Join(searchPath, platform.FormatLibraryName(libraryName, 0))
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s)", ErrLibraryNotFound, libraryName,
		strings.Join(paths, string(os.PathListSeparator)))
}

// LibrarySearchPaths returns platform-specific library search paths.
// Directories listed in GLFW_LIBRARY_PATH come first.
func LibrarySearchPaths() []string {
	var paths []string

	if extra := os.Getenv(EnvLibraryPath); extra != "" {
		paths = append(paths, filepath.SplitList(extra)...)
	}

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib64",
			"/usr/local/lib",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		// Homebrew (Apple Silicon, then Intel) and MacPorts
		paths = append(paths,
			"/opt/homebrew/lib",
			"/opt/homebrew/opt/glfw/lib",
			"/usr/local/lib",
			"/usr/local/opt/glfw/lib",
			"/opt/local/lib",
		)

	case "windows":
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		paths = append(paths,
			"C:\\glfw\\lib-vc2022",
			"C:\\Program Files\\GLFW\\lib",
		)

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}
