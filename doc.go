// Package scopedi provides contextual, scope-aware dependency resolution for Go.
//
// Values are registered under string keys ("provide") and looked up later by
// the same key ("inject"). Resolution is hierarchical: a nested scope can
// temporarily override or add bindings without touching the enclosing state,
// and the overrides vanish when the scope ends.
//
// The goal is to keep wiring explicit and the surface area intentionally small:
// no constructor discovery, no dependency graphs, no lifetimes — just keys,
// namespaces, and a stack of frames per flow of control.
//
// Start with the README and examples in the repo for end-to-end usage.
//
// See subpackages:
//   - di: the library package (Injector, scopes, auto-injection)
//   - cmd/reqsim: demo binary simulating concurrent request handling
//   - examples/*: runnable examples
package scopedi
