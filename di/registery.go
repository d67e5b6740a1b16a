package di

import "sync"

// DefaultNamespace is the namespace used by every call that carries no In
// option.
const DefaultNamespace = "default"

// frame is one scope's locally provided bindings. Frames start empty and grow
// only through Provide calls made while the frame is on top.
type frame map[string]any

// registry holds the shared root frame of every namespace.
//
// It is intentionally:
// - the only structure shared across flows of control
// - the only structure in the package that carries a lock
// - storage only: resolution order lives in the Injector
//
// Scope frames never land here; they travel in the context chain and stay
// local to the flow that pushed them. Namespaces are created lazily on first
// write and live for the rest of the process — the root frame of a namespace
// is never popped, only reset by purge.
type registry struct {
	mu    sync.RWMutex
	roots map[string]frame
}

func newRegistry() *registry {
	return &registry{roots: map[string]frame{}}
}

// bind writes (key, value) into the root frame of namespace, creating the
// namespace on first use.
func (r *registry) bind(namespace, key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	root, ok := r.roots[namespace]
	if !ok {
		root = frame{}
		r.roots[namespace] = root
	}
	root[key] = value
}

// lookup returns the root binding for key. A namespace that was never written
// to behaves as empty rather than being created on read.
func (r *registry) lookup(namespace, key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.roots[namespace][key]
	return v, ok
}

// update applies fn to the current root binding and writes the result back in
// place. It reports whether the key was present.
func (r *registry) update(namespace, key string, fn func(any) any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	root, ok := r.roots[namespace]
	if !ok {
		return false
	}
	v, ok := root[key]
	if !ok {
		return false
	}
	root[key] = fn(v)
	return true
}

// purge resets the listed namespaces to a single empty root frame, or every
// namespace when none are listed. Unknown namespaces are a no-op. Dropping the
// entry entirely is observably the same as an empty root frame, since lookup
// treats absent namespaces as empty and bind recreates them.
func (r *registry) purge(namespaces ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(namespaces) == 0 {
		r.roots = map[string]frame{}
		return
	}
	for _, ns := range namespaces {
		delete(r.roots, ns)
	}
}
