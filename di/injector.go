package di

import (
	"context"
	"reflect"
)

// Injector owns one independent binding universe: the shared root frames plus
// resolution against the calling flow's scope chain.
//
// Most programs use the package-level functions, which operate on a single
// process-wide injector (see Default). Separate injectors are handy in tests
// and in libraries that must not leak bindings into the host program.
type Injector struct {
	reg *registry
}

// New returns an empty Injector with no namespaces. Namespaces come into
// existence on first use and live for the rest of the process.
func New() *Injector {
	return &Injector{reg: newRegistry()}
}

// innermost returns the innermost live scope in ctx's chain that belongs to
// this injector and covers namespace, or nil when the flow holds no such
// scope.
func (in *Injector) innermost(ctx context.Context, namespace string) *Scope {
	for s := scopeFrom(ctx); s != nil; s = s.parent {
		if s.inj != in || s.released || !s.covers(namespace) {
			continue
		}
		return s
	}
	return nil
}

// resolve scans the flow's scope chain innermost to outermost, then the shared
// root frame, and returns the first binding for key.
func (in *Injector) resolve(ctx context.Context, key, namespace string) (any, bool) {
	for s := scopeFrom(ctx); s != nil; s = s.parent {
		if s.inj != in || s.released || !s.covers(namespace) {
			continue
		}
		if v, ok := s.frames[namespace][key]; ok {
			return v, true
		}
	}
	return in.reg.lookup(namespace, key)
}

// Provide binds value under key in the innermost active scope of the calling
// flow, or in the shared root frame when the flow holds no scope.
//
// A Provide inside a scope shadows an enclosing binding for the same key; it
// never overwrites the outer entry, and the outer value reappears when the
// scope is released. Use In to target a namespace other than DefaultNamespace.
func (in *Injector) Provide(ctx context.Context, key string, value any, opts ...Option) {
	ns := newCallConfig(opts).namespace()
	if s := in.innermost(ctx, ns); s != nil {
		f, ok := s.frames[ns]
		if !ok {
			f = frame{}
			s.frames[ns] = f
		}
		f[key] = value
		return
	}
	in.reg.bind(ns, key, value)
}

// Inject returns the value bound under key, searching the calling flow's
// frames innermost to outermost and the shared root last. An inner frame's
// binding wins over any outer binding for the same key.
//
// It returns NotFoundError when no active frame binds the key. A namespace
// that was never touched behaves as empty.
func (in *Injector) Inject(ctx context.Context, key string, opts ...Option) (any, error) {
	ns := newCallConfig(opts).namespace()
	if v, ok := in.resolve(ctx, key, ns); ok {
		return v, nil
	}
	return nil, NotFoundError{Key: key, Namespace: ns}
}

// TryInject is Inject without the error: ok is false when the key is not
// bound. Useful where a miss is an expected outcome rather than a failure.
func (in *Injector) TryInject(ctx context.Context, key string, opts ...Option) (any, bool) {
	return in.resolve(ctx, key, newCallConfig(opts).namespace())
}

// MustInject is Inject or panic. It panics with NotFoundError, so the panic
// value carries the key and namespace.
func (in *Injector) MustInject(ctx context.Context, key string, opts ...Option) any {
	v, err := in.Inject(ctx, key, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Update applies fn to the currently visible binding for key and writes the
// result back into the frame where the binding was found. It does not create
// a shadow: updating a root binding from inside a scope mutates the root.
//
// It returns NotFoundError when the key is not bound anywhere.
func (in *Injector) Update(ctx context.Context, key string, fn func(any) any, opts ...Option) error {
	ns := newCallConfig(opts).namespace()
	for s := scopeFrom(ctx); s != nil; s = s.parent {
		if s.inj != in || s.released || !s.covers(ns) {
			continue
		}
		if v, ok := s.frames[ns][key]; ok {
			s.frames[ns][key] = fn(v)
			return nil
		}
	}
	if in.reg.update(ns, key, fn) {
		return nil
	}
	return NotFoundError{Key: key, Namespace: ns}
}

// Purge resets the named namespaces to a single empty root frame, or every
// namespace when called with no arguments. Purging a namespace that was never
// touched is a no-op.
//
// Purge is a state-resetting escape hatch, not a scoped operation: it only
// resets the shared root state. Frames held by currently open scopes — in this
// flow or any other — are untouched, and releasing those scopes later behaves
// normally. The usual home for Purge is test cleanup.
func (in *Injector) Purge(namespaces ...string) {
	in.reg.purge(namespaces...)
}

// InjectAs resolves key like (*Injector).Inject and asserts the value to T.
//
// It returns:
//   - NotFoundError if the key is not bound
//   - WrongTypeError if the bound value is not a T
//
// It is a free function because Go methods cannot take type parameters.
func InjectAs[T any](ctx context.Context, in *Injector, key string, opts ...Option) (T, error) {
	var zero T
	ns := newCallConfig(opts).namespace()
	v, ok := in.resolve(ctx, key, ns)
	if !ok {
		return zero, NotFoundError{Key: key, Namespace: ns}
	}
	t, ok := v.(T)
	if !ok {
		return zero, WrongTypeError{Key: key, Namespace: ns, GotType: typeName(v)}
	}
	return t, nil
}

// typeName names a bound value's dynamic type for error messages.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
