package di

import "context"

// A process-wide injector backs the package-level API, mirroring every
// Injector method for programs that want the zero-setup surface. Anything
// linking several independent components through the package-level functions
// shares one binding universe; use New for isolation.
var std = New()

// Default returns the process-wide injector behind the package-level
// functions. Handy for the free functions that need an explicit injector,
// such as InjectAs.
func Default() *Injector { return std }

// Provide binds value under key on the default injector.
// See (*Injector).Provide.
func Provide(ctx context.Context, key string, value any, opts ...Option) {
	std.Provide(ctx, key, value, opts...)
}

// Inject resolves key on the default injector. See (*Injector).Inject.
func Inject(ctx context.Context, key string, opts ...Option) (any, error) {
	return std.Inject(ctx, key, opts...)
}

// TryInject resolves key on the default injector without an error.
// See (*Injector).TryInject.
func TryInject(ctx context.Context, key string, opts ...Option) (any, bool) {
	return std.TryInject(ctx, key, opts...)
}

// MustInject resolves key on the default injector or panics.
// See (*Injector).MustInject.
func MustInject(ctx context.Context, key string, opts ...Option) any {
	return std.MustInject(ctx, key, opts...)
}

// Update rewrites the visible binding for key on the default injector.
// See (*Injector).Update.
func Update(ctx context.Context, key string, fn func(any) any, opts ...Option) error {
	return std.Update(ctx, key, fn, opts...)
}

// Purge resets namespaces on the default injector. See (*Injector).Purge.
func Purge(namespaces ...string) {
	std.Purge(namespaces...)
}

// EnterScope pushes a frame on the default injector.
// See (*Injector).EnterScope.
func EnterScope(ctx context.Context, opts ...Option) (context.Context, *Scope) {
	return std.EnterScope(ctx, opts...)
}

// Scoped wraps fn in a per-call scope on the default injector.
// See (*Injector).Scoped.
func Scoped(fn func(context.Context) error, opts ...Option) func(context.Context) error {
	return std.Scoped(fn, opts...)
}

// AutoInject wraps fn for call-time resolution on the default injector.
// See (*Injector).AutoInject.
func AutoInject(fn any, markers ...Marker) (func(ctx context.Context, args ...any) ([]any, error), error) {
	return std.AutoInject(fn, markers...)
}

// Fill resolves a struct's inject-tagged fields on the default injector.
// See (*Injector).Fill.
func Fill(ctx context.Context, target any) error {
	return std.Fill(ctx, target)
}
