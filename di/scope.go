package di

import (
	"context"
	"strconv"
)

// scopeKey carries the innermost *Scope of the current flow through the
// context chain.
type scopeKey struct{}

// Scope is the guard object for one pushed frame. EnterScope returns it
// alongside the derived context; Release pops the frame and discards every
// binding provided while it was active.
//
// A Scope belongs to the flow of control that entered it. The frame it guards
// is written without locking, so it must not be shared between concurrently
// running goroutines — hand child goroutines the outer context (or a scope of
// their own) instead.
type Scope struct {
	inj    *Injector
	parent *Scope
	label  string

	// only restricts the namespaces this scope covers; empty covers all.
	only []string

	frames   map[string]frame
	released bool
}

// scopeFrom returns the innermost scope carried by ctx, released or not.
func scopeFrom(ctx context.Context) *Scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(scopeKey{}).(*Scope)
	return s
}

// EnterScope pushes a fresh frame for the calling flow and returns a derived
// context carrying it, plus the guard that pops it again.
//
// Provide calls made with the derived context land in the new frame and shadow
// enclosing bindings for the same key; they never mutate outer frames. Release
// the scope on every exit path:
//
//	ctx, scope := injector.EnterScope(ctx)
//	defer scope.Release()
//
// With no options the scope covers every namespace touched within it. In
// restricts it to the named namespaces; Provide calls for other namespaces
// pass through to the enclosing frame (or the shared root). WithLabel attaches
// a diagnostic label.
//
// Scopes nest strictly: entering with a context that already carries a scope
// stacks the new frame on top, and resolution walks the chain innermost to
// outermost.
func (in *Injector) EnterScope(ctx context.Context, opts ...Option) (context.Context, *Scope) {
	cfg := newCallConfig(opts)
	s := &Scope{
		inj:    in,
		parent: scopeFrom(ctx),
		label:  cfg.label,
		only:   cfg.namespaces,
		frames: map[string]frame{},
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, scopeKey{}, s), s
}

// covers reports whether this scope accepts bindings for namespace.
func (s *Scope) covers(namespace string) bool {
	if len(s.only) == 0 {
		return true
	}
	for _, ns := range s.only {
		if ns == namespace {
			return true
		}
	}
	return false
}

// Release pops the scope's frame. Everything provided inside the scope
// vanishes; bindings the frame shadowed become visible again. Contexts still
// holding the released scope resolve straight through it.
//
// Releasing a scope twice panics with ScopeReleasedError: the pairing of push
// and pop is broken at the call site, and that is an invariant violation, not
// a runtime condition to recover from. The root frame has no Scope guard, so
// popping below the root cannot be expressed at all.
func (s *Scope) Release() {
	if s.released {
		panic(ScopeReleasedError{Label: s.label})
	}
	s.released = true
	s.frames = nil
}

// Label returns the diagnostic label given via WithLabel, or "".
func (s *Scope) Label() string { return s.label }

// String implements fmt.Stringer for log and panic output.
func (s *Scope) String() string {
	if s.label == "" {
		return "di.Scope"
	}
	return "di.Scope(" + strconv.Quote(s.label) + ")"
}

// Scoped wraps fn so that every call runs inside its own fresh scope: a frame
// is pushed before the body and popped after it, whether fn returns normally,
// returns an error, or panics. Sequential nested calls to the same wrapped
// function each get their own frame.
//
// The scope accepts the same options as EnterScope (In, WithLabel). Errors
// from fn propagate unchanged.
//
// Scoped panics on a nil fn: wrapping happens at setup time, where a nil
// function is a wiring bug.
func (in *Injector) Scoped(fn func(context.Context) error, opts ...Option) func(context.Context) error {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return func(ctx context.Context) error {
		ctx, scope := in.EnterScope(ctx, opts...)
		defer scope.Release()
		return fn(ctx)
	}
}
