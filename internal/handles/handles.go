//go:build !ios && !android && (amd64 || arm64)

// Package handles maps native GLFW handles back to the Go wrappers that own
// them.
//
// GLFW callbacks only receive the native handle (a GLFWwindow*), never any
// Go context. Rather than storing Go pointers inside the native user-pointer
// slot, each wrapper is attached to a Registry keyed by its handle, and the
// callback trampolines resolve the wrapper from there.
//
// The registry holds weak references: it never keeps a wrapper alive on its
// own, and a handle whose wrapper was detached or collected resolves to nil.
package handles

import (
	"sync"
	"weak"
)

// Registry associates native handles with wrappers of type T.
//
// Thread-safe.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[uintptr]weak.Pointer[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[uintptr]weak.Pointer[T])}
}

// Attach associates handle with v, replacing any previous association.
// A zero handle or nil v is ignored.
func (r *Registry[T]) Attach(handle uintptr, v *T) {
	if handle == 0 || v == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[handle] = weak.Make(v)
}

// Resolve returns the wrapper attached to handle, or nil if there is none.
func (r *Registry[T]) Resolve(handle uintptr) *T {
	r.mu.RLock()
	wp, ok := r.entries[handle]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	v := wp.Value()
	if v == nil {
		// Wrapper was collected without being detached.
		r.mu.Lock()
		if cur, ok := r.entries[handle]; ok && cur == wp {
			delete(r.entries, handle)
		}
		r.mu.Unlock()
	}
	return v
}

// Detach removes the association for handle. Detaching an unknown handle is
// a no-op.
func (r *Registry[T]) Detach(handle uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, handle)
}

// DetachAll removes every association and returns the wrappers that were
// still alive.
func (r *Registry[T]) DetachAll() []*T {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := make([]*T, 0, len(r.entries))
	for handle, wp := range r.entries {
		if v := wp.Value(); v != nil {
			live = append(live, v)
		}
		delete(r.entries, handle)
	}
	return live
}

// Len returns the number of attached handles.
// Useful for debugging and testing leaks.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
